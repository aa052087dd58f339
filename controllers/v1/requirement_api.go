package apiv1

import (
	"ats-backend/controllers"
	"ats-backend/lib/pipeline"
	"ats-backend/lib/requirement"
	"ats-backend/middleware"
	"ats-backend/models"
	apimodels "ats-backend/models/api"
	pipelineapimodels "ats-backend/models/api/pipeline"
	requirementapimodels "ats-backend/models/api/requirement"

	"github.com/gofiber/fiber/v2"
)

type requirementApiController struct {
	controllers.BaseAPIController
}

func InitRequirementApiRouters(app fiber.Router) {
	controller := requirementApiController{}
	app.Route("requirements", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Get("recent", controller.recent)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Get("stages", controller.stageList)
			idRoute.Post("stages", controller.stagesCreate)
			idRoute.Get("allocations", controller.allocationList)
			idRoute.Post("allocations", controller.allocate)
		})
	})
}

// @Summary Create requirement
// @Tags Requirements
// @Description Creates the requirement with its interview rounds
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requirementapimodels.RequirementData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requirements [post]
func (c *requirementApiController) create(ctx *fiber.Ctx) error {
	var payload requirementapimodels.RequirementData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := requirement.Instance.Create(middleware.GetUserInfo(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to create requirement")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update requirement
// @Tags Requirements
// @Description Update requirement; rounds are managed through stages
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requirementapimodels.RequirementData	true	"request body"
// @Param   id          		path    string  				    	true         "requirement ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requirements/{id} [put]
func (c *requirementApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload requirementapimodels.RequirementData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = requirement.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to update requirement")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Get requirement
// @Tags Requirements
// @Description Get requirement by ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "requirement ID"
// @Success 200 {object} apimodels.Response{data=requirementapimodels.RequirementView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requirements/{id} [get]
func (c *requirementApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := requirement.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to get requirement")
	}
	user := middleware.GetUserInfo(ctx)
	if user.Role == models.UserRoleClient && resp.ClientID != user.ClientID {
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not permitted"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Requirement list
// @Tags Requirements
// @Description Requirements visible to the caller
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   client_id			query		string	false	"client ID"
// @Param   status				query		string	false	"OPEN | ON_HOLD | CLOSED"
// @Param   search				query		string	false	"title or location substring"
// @Success 200 {object} apimodels.Response{data=[]requirementapimodels.RequirementView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requirements [get]
func (c *requirementApiController) list(ctx *fiber.Ctx) error {
	var filter requirementapimodels.RequirementFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := requirement.Instance.List(middleware.GetUserInfo(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to list requirements")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Recent requirements
// @Tags Requirements
// @Description Latest requirements for the dashboard
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]requirementapimodels.RecentRequirementView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requirements/recent [get]
func (c *requirementApiController) recent(ctx *fiber.Ctx) error {
	resp, err := requirement.Instance.Recent()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to list recent requirements")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete requirement
// @Tags Requirements
// @Description Deletes the requirement with its stages, allocations and pipeline records
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "requirement ID"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requirements/{id} [delete]
func (c *requirementApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = requirement.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to delete requirement")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Requirement stages
// @Tags Pipeline
// @Description Interview rounds ordered by stage_order
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "requirement ID"
// @Success 200 {object} apimodels.Response{data=[]pipelineapimodels.StageView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requirements/{id}/stages [get]
func (c *requirementApiController) stageList(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := pipeline.Instance.StageList(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to list stages")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Create stages
// @Tags Pipeline
// @Description Creates the interview rounds of a requirement that has none
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 pipelineapimodels.StagesCreate	true	"request body"
// @Param   id          		path    string  				    	true         "requirement ID"
// @Success 200 {object} apimodels.Response{data=[]pipelineapimodels.StageView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requirements/{id}/stages [post]
func (c *requirementApiController) stagesCreate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload pipelineapimodels.StagesCreate
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := pipeline.Instance.StagesCreate(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to create stages")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Allocate recruiter
// @Tags Requirements
// @Description Assigns a recruiter or team lead to the requirement and mails them
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requirementapimodels.AllocationCreate	true	"request body"
// @Param   id          		path    string  				    	true         "requirement ID"
// @Success 200 {object} apimodels.Response{data=requirementapimodels.AllocationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requirements/{id}/allocations [post]
func (c *requirementApiController) allocate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload requirementapimodels.AllocationCreate
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload.AssignedBy = middleware.GetUserID(ctx)
	resp, err := requirement.Instance.Allocate(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to allocate requirement")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Requirement allocations
// @Tags Requirements
// @Description Recruiters allocated to the requirement
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "requirement ID"
// @Success 200 {object} apimodels.Response{data=[]requirementapimodels.AllocationView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requirements/{id}/allocations [get]
func (c *requirementApiController) allocationList(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := requirement.Instance.AllocationList(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to list allocations")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
