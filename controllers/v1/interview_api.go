package apiv1

import (
	"ats-backend/controllers"
	"ats-backend/lib/pipeline"
	apimodels "ats-backend/models/api"
	pipelineapimodels "ats-backend/models/api/pipeline"

	"github.com/gofiber/fiber/v2"
)

type interviewApiController struct {
	controllers.BaseAPIController
}

func InitInterviewApiRouters(app fiber.Router) {
	controller := interviewApiController{}
	app.Route("interviews", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Put(":id/stage", controller.updateStage)
		router.Put(":id/status", controller.updateStatus)
	})
}

// @Summary Schedule interview
// @Tags Interviews
// @Description Creates the interview and moves the candidate to its stage
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 pipelineapimodels.InterviewCreate	true	"request body"
// @Success 200 {object} apimodels.Response{data=pipelineapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews [post]
func (c *interviewApiController) create(ctx *fiber.Ctx) error {
	var payload pipelineapimodels.InterviewCreate
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := pipeline.Instance.ScheduleInterview(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to schedule interview")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Interview list
// @Tags Interviews
// @Description Interviews that are not cancelled
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   candidate_id		query		string	false	"candidate ID"
// @Param   requirement_id		query		string	false	"requirement ID"
// @Param   status				query		string	false	"interview status"
// @Success 200 {object} apimodels.Response{data=[]pipelineapimodels.InterviewView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews [get]
func (c *interviewApiController) list(ctx *fiber.Ctx) error {
	var filter pipelineapimodels.InterviewFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := pipeline.Instance.InterviewList(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to list interviews")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Change interview stage
// @Tags Interviews
// @Description Change interview stage
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 pipelineapimodels.InterviewStageUpdate	true	"request body"
// @Param   id          		path    string  				    	true         "interview ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{id}/stage [put]
func (c *interviewApiController) updateStage(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload pipelineapimodels.InterviewStageUpdate
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = pipeline.Instance.InterviewUpdateStage(id, payload.Stage); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to change interview stage")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Change interview status
// @Tags Interviews
// @Description Change interview status
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 pipelineapimodels.InterviewStatusUpdate	true	"request body"
// @Param   id          		path    string  				    	true         "interview ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{id}/status [put]
func (c *interviewApiController) updateStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload pipelineapimodels.InterviewStatusUpdate
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = pipeline.Instance.InterviewUpdateStatus(id, payload.Status); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to change interview status")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
