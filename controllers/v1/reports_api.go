package apiv1

import (
	"ats-backend/controllers"
	"ats-backend/lib/reports"
	apimodels "ats-backend/models/api"
	reportsapimodels "ats-backend/models/api/reports"

	"github.com/gofiber/fiber/v2"
)

type reportsApiController struct {
	controllers.BaseAPIController
}

func InitReportsApiRouters(app fiber.Router) {
	controller := reportsApiController{}
	app.Route("reports", func(router fiber.Router) {
		router.Get("dashboard-stats", controller.dashboardStats)
		router.Get("stats", controller.globalStats)
		router.Get("clients", controller.activeClients)
		router.Get("client/:id/requirements", controller.clientRequirements)
		router.Get("requirement/:id/stats", controller.requirementStats)
		router.Get("requirement/:id/stage/candidates", controller.stageCandidates)
		router.Get("requirement/:id/export", controller.exportRequirement)
		router.Get("candidate/:id/tracker", controller.exportTracker)
	})
}

// @Summary Dashboard stats
// @Tags Reports
// @Description Requirement counters for the dashboard
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=reportsapimodels.DashboardStats}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/dashboard-stats [get]
func (c *reportsApiController) dashboardStats(ctx *fiber.Ctx) error {
	resp, err := reports.Instance.DashboardStats()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to get dashboard stats")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Global stats
// @Tags Reports
// @Description Requirements, candidates, selections and per client counts
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=reportsapimodels.GlobalStats}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/stats [get]
func (c *reportsApiController) globalStats(ctx *fiber.Ctx) error {
	resp, err := reports.Instance.GlobalStats()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to get stats")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Active clients
// @Tags Reports
// @Description Clients for the report filters
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]reportsapimodels.ClientItem}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/clients [get]
func (c *reportsApiController) activeClients(ctx *fiber.Ctx) error {
	resp, err := reports.Instance.ActiveClients()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to list clients")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Client requirements
// @Tags Reports
// @Description Requirements of the client for the report filters
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "client ID"
// @Success 200 {object} apimodels.Response{data=[]reportsapimodels.ClientRequirement}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/client/{id}/requirements [get]
func (c *reportsApiController) clientRequirements(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := reports.Instance.ClientRequirements(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to list client requirements")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Requirement stats
// @Tags Reports
// @Description Candidate counts per stage and status
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "requirement ID"
// @Success 200 {object} apimodels.Response{data=reportsapimodels.RequirementStats}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/requirement/{id}/stats [get]
func (c *reportsApiController) requirementStats(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := reports.Instance.RequirementStats(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to get requirement stats")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Stage candidates
// @Tags Reports
// @Description Candidates whose progress is at the stage
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "requirement ID"
// @Param   stage_name			query		string	true	"stage name"
// @Success 200 {object} apimodels.Response{data=[]reportsapimodels.StageCandidate}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/requirement/{id}/stage/candidates [get]
func (c *reportsApiController) stageCandidates(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var filter reportsapimodels.StageCandidatesFilter
	if err = ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := reports.Instance.StageCandidates(id, filter.StageName)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to list stage candidates")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Export requirement pipeline
// @Tags Reports
// @Description XLSX with every candidate row of the requirement
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "requirement ID"
// @Success 200
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/requirement/{id}/export [get]
func (c *reportsApiController) exportRequirement(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	data, fileName, err := reports.Instance.ExportRequirementXls(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to export requirement pipeline")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Export candidate tracker
// @Tags Reports
// @Description PDF with the candidate tracker
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Success 200
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/candidate/{id}/tracker [get]
func (c *reportsApiController) exportTracker(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	data, fileName, err := reports.Instance.ExportTrackerPdf(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to export tracker")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(data)
}
