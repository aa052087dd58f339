package apiv1

import (
	"ats-backend/controllers"
	"ats-backend/lib/screening"
	apimodels "ats-backend/models/api"
	screeningapimodels "ats-backend/models/api/screening"

	"github.com/gofiber/fiber/v2"
)

type screeningApiController struct {
	controllers.BaseAPIController
}

func InitScreeningApiRouters(app fiber.Router) {
	controller := screeningApiController{}
	app.Post("screen-candidate", controller.screen)
}

// @Summary AI screening
// @Tags Screening
// @Description Scores the candidate against the requirement; a failed model call answers MANUAL_REVIEW
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 screeningapimodels.ScreenRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=screeningapimodels.ScreenResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/screen-candidate [post]
func (c *screeningApiController) screen(ctx *fiber.Ctx) error {
	var payload screeningapimodels.ScreenRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := screening.Instance.ScreenCandidate(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to screen candidate")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
