package apiv1

import (
	"ats-backend/controllers"
	"ats-backend/lib/candidate"
	"ats-backend/lib/screening"
	"ats-backend/middleware"
	apimodels "ats-backend/models/api"
	candidateapimodels "ats-backend/models/api/candidate"

	"github.com/gofiber/fiber/v2"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app fiber.Router) {
	controller := candidateApiController{}
	app.Route("candidates", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Get("resume", controller.resume)
			idRoute.Get("screenings", controller.screenings)
		})
	})
}

// @Summary Create candidate
// @Tags Candidates
// @Description Multipart form with an optional resume (pdf, doc, docx)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	name				formData	string	true	"full name"
// @Param	email				formData	string	true	"e-mail"
// @Param	phone				formData	string	false	"phone"
// @Param	skills				formData	string	false	"skills"
// @Param	resume				formData	file	false	"resume"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates [post]
func (c *candidateApiController) create(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resume, closer, err := c.FormFile(ctx, "resume")
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to read resume")
	}
	if closer != nil {
		defer closer.Close()
	}
	id, err := candidate.Instance.Create(ctx.UserContext(), middleware.GetUserInfo(ctx), payload, resume)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to create candidate")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update candidate
// @Tags Candidates
// @Description Multipart form; a new resume replaces the stored one
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Param	name				formData	string	true	"full name"
// @Param	email				formData	string	true	"e-mail"
// @Param	resume				formData	file	false	"resume"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/{id} [put]
func (c *candidateApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload candidateapimodels.CandidateData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resume, closer, err := c.FormFile(ctx, "resume")
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to read resume")
	}
	if closer != nil {
		defer closer.Close()
	}
	if err = candidate.Instance.Update(ctx.UserContext(), id, payload, resume); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to update candidate")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Get candidate
// @Tags Candidates
// @Description Get candidate by ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/{id} [get]
func (c *candidateApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := candidate.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to get candidate")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Candidate list
// @Tags Candidates
// @Description Recruiters see the candidates they created
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search				query		string	false	"name, e-mail or skills substring"
// @Param   page				query		int		false	"page number, from 1"
// @Param   limit				query		int		false	"rows per page, at most 100"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]candidateapimodels.CandidateView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates [get]
func (c *candidateApiController) list(ctx *fiber.Ctx) error {
	var filter candidateapimodels.CandidateFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, rowCount, err := candidate.Instance.List(middleware.GetUserInfo(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to list candidates")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(resp, rowCount))
}

// @Summary Delete candidate
// @Tags Candidates
// @Description Deletes the candidate with progress, interviews, screenings and resume
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/{id} [delete]
func (c *candidateApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = candidate.Instance.Delete(ctx.UserContext(), id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to delete candidate")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Download resume
// @Tags Candidates
// @Description Streams the stored resume
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Success 200
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/{id}/resume [get]
func (c *candidateApiController) resume(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	file, fileName, err := candidate.Instance.GetResume(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to get resume")
	}
	ctx.Set(fiber.HeaderContentType, file.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, `inline; filename="`+fileName+`"`)
	return ctx.SendStream(file.Body, int(file.Size))
}

// @Summary Candidate screenings
// @Tags Screening
// @Description AI screening history of the candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Success 200 {object} apimodels.Response{data=[]screeningapimodels.ScreeningView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/{id}/screenings [get]
func (c *candidateApiController) screenings(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := screening.Instance.ScreeningList(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to list screenings")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
