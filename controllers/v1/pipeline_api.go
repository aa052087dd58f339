package apiv1

import (
	"ats-backend/controllers"
	"ats-backend/lib/pipeline"
	"ats-backend/middleware"
	apimodels "ats-backend/models/api"
	pipelineapimodels "ats-backend/models/api/pipeline"

	"github.com/gofiber/fiber/v2"
)

type pipelineApiController struct {
	controllers.BaseAPIController
}

type MessageResponse struct {
	Message string `json:"message"`
}

func InitPipelineApiRouters(app fiber.Router) {
	controller := pipelineApiController{}
	app.Get("tracker/:candidate_id", controller.tracker)
	app.Post("stage-status", controller.stageStatus)
	app.Post("recruiter-decision", controller.recruiterDecision)
	app.Post("assign-candidate", controller.assignCandidate)
	app.Route("candidate-progress", func(router fiber.Router) {
		router.Get("", controller.currentProgress)
		router.Get(":candidate_id/:req_ref", controller.candidateProgress)
	})
}

// @Summary Candidate tracker
// @Tags Pipeline
// @Description Every requirement of the candidate with merged stage progress and the current stage
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   candidate_id		path    string  				    	true         "candidate ID"
// @Success 200 {object} apimodels.Response{data=[]pipelineapimodels.TrackerItem}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/tracker/{candidate_id} [get]
func (c *pipelineApiController) tracker(ctx *fiber.Ctx) error {
	candidateID, err := c.GetParam(ctx, "candidate_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := pipeline.Instance.GetTracker(candidateID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to get tracker")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update stage status
// @Tags Pipeline
// @Description Sets status and decision of the candidate at a defined stage
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 pipelineapimodels.StageStatusUpdate	true	"request body"
// @Success 200 {object} apimodels.Response{data=MessageResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/stage-status [post]
func (c *pipelineApiController) stageStatus(ctx *fiber.Ctx) error {
	var payload pipelineapimodels.StageStatusUpdate
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	message, err := pipeline.Instance.UpdateStageStatus(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to update stage status")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(MessageResponse{Message: message}))
}

// @Summary Recruiter decision
// @Tags Pipeline
// @Description MOVE_NEXT, HOLD or REJECT the candidate on a requirement
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 pipelineapimodels.RecruiterDecision	true	"request body"
// @Success 200 {object} apimodels.Response{data=pipelineapimodels.DecisionResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruiter-decision [post]
func (c *pipelineApiController) recruiterDecision(ctx *fiber.Ctx) error {
	var payload pipelineapimodels.RecruiterDecision
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	user := middleware.GetUserInfo(ctx)
	payload.Recruiter = user.Name
	if payload.Recruiter == "" {
		payload.Recruiter = user.ID
	}
	resp, err := pipeline.Instance.RecruiterDecision(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to apply recruiter decision")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Assign candidate
// @Tags Pipeline
// @Description Puts the candidate on a requirement without resetting existing progress
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 pipelineapimodels.AssignCandidate	true	"request body"
// @Success 200 {object} apimodels.Response{data=pipelineapimodels.ProgressView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assign-candidate [post]
func (c *pipelineApiController) assignCandidate(ctx *fiber.Ctx) error {
	var payload pipelineapimodels.AssignCandidate
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := pipeline.Instance.AssignCandidate(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to assign candidate")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Pipeline overview
// @Tags Pipeline
// @Description Latest progress row per candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]pipelineapimodels.CurrentProgressView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate-progress [get]
func (c *pipelineApiController) currentProgress(ctx *fiber.Ctx) error {
	resp, err := pipeline.Instance.ListCurrentProgress()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to list candidate progress")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Candidate progress on a requirement
// @Tags Pipeline
// @Description Progress rows, latest screening and interviews
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   candidate_id		path    string  				    	true         "candidate ID"
// @Param   req_ref				path    string  				    	true         "requirement ID or title"
// @Success 200 {object} apimodels.Response{data=pipelineapimodels.CandidateProgressDetails}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate-progress/{candidate_id}/{req_ref} [get]
func (c *pipelineApiController) candidateProgress(ctx *fiber.Ctx) error {
	candidateID, err := c.GetParam(ctx, "candidate_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	reqRef, err := c.GetParam(ctx, "req_ref")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := pipeline.Instance.GetCandidateProgress(candidateID, reqRef)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to get candidate progress")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
