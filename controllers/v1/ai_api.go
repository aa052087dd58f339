package apiv1

import (
	"ats-backend/controllers"
	"ats-backend/lib/ai/chat"
	"ats-backend/middleware"
	apimodels "ats-backend/models/api"
	aiapimodels "ats-backend/models/api/ai"

	"github.com/gofiber/fiber/v2"
)

type aiApiController struct {
	controllers.BaseAPIController
}

func InitAiApiRouters(app fiber.Router) {
	controller := aiApiController{}
	app.Route("ai", func(router fiber.Router) {
		router.Post("chat", controller.chat)
		router.Post("job-description", controller.jobDescription)
	})
}

// @Summary AI assistant
// @Tags AI
// @Description Answers a question using the data visible to the caller
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 aiapimodels.ChatRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=aiapimodels.ChatResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ai/chat [post]
func (c *aiApiController) chat(ctx *fiber.Ctx) error {
	var payload aiapimodels.ChatRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := chat.Instance.Chat(ctx.UserContext(), middleware.GetUserInfo(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, err.Error())
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Generate job description
// @Tags AI
// @Description Drafts a requirement description
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 aiapimodels.JobDescriptionRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=aiapimodels.JobDescriptionResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ai/job-description [post]
func (c *aiApiController) jobDescription(ctx *fiber.Ctx) error {
	var payload aiapimodels.JobDescriptionRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := chat.Instance.GenerateJobDescription(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, err.Error())
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
