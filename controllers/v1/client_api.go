package apiv1

import (
	"ats-backend/controllers"
	"ats-backend/lib/client"
	"ats-backend/middleware"
	"ats-backend/models"
	apimodels "ats-backend/models/api"
	clientapimodels "ats-backend/models/api/client"

	"github.com/gofiber/fiber/v2"
)

type clientApiController struct {
	controllers.BaseAPIController
}

func InitClientApiRouters(app fiber.Router) {
	controller := clientApiController{}
	app.Route("clients", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
		})
	})
}

// @Summary Create client
// @Tags Clients
// @Description Create client
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 clientapimodels.ClientData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/clients [post]
func (c *clientApiController) create(ctx *fiber.Ctx) error {
	var payload clientapimodels.ClientData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := client.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to create client")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update client
// @Tags Clients
// @Description Update client
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 clientapimodels.ClientData	true	"request body"
// @Param   id          		path    string  				    	true         "client ID"
// @Success 200 {object} apimodels.Response{data=clientapimodels.ClientView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/clients/{id} [put]
func (c *clientApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload clientapimodels.ClientData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := client.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to update client")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get client
// @Tags Clients
// @Description Get client by ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "client ID"
// @Success 200 {object} apimodels.Response{data=clientapimodels.ClientView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/clients/{id} [get]
func (c *clientApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	user := middleware.GetUserInfo(ctx)
	if user.Role == models.UserRoleClient && user.ClientID != id {
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not permitted"))
	}
	resp, err := client.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to get client")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Client list
// @Tags Clients
// @Description Clients visible to the caller
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]clientapimodels.ClientView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/clients [get]
func (c *clientApiController) list(ctx *fiber.Ctx) error {
	resp, err := client.Instance.List(middleware.GetUserInfo(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to list clients")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete client
// @Tags Clients
// @Description Clients with requirements cannot be deleted
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "client ID"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/clients/{id} [delete]
func (c *clientApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = client.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to delete client")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
