package apiv1

import (
	"ats-backend/controllers"
	"ats-backend/lib/rbac"
	"ats-backend/lib/requirement"
	"ats-backend/lib/users"
	"ats-backend/middleware"
	"ats-backend/models"
	apimodels "ats-backend/models/api"
	usersapimodels "ats-backend/models/api/users"

	"github.com/gofiber/fiber/v2"
)

type usersApiController struct {
	controllers.BaseAPIController
}

type RolesResponse struct {
	Roles       []usersapimodels.RoleView             `json:"roles"`
	Permissions map[models.Module][]models.Permission `json:"permissions"` // permissions of the caller's role
}

func InitUsersApiRouters(app fiber.Router) {
	controller := usersApiController{}
	app.Get("roles", controller.roles)
	app.Route("users", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Put("status", controller.updateStatus)
			idRoute.Get("details", controller.details)
		})
	})
	app.Route("recruiters", func(router fiber.Router) {
		router.Get("", controller.recruiters)
		router.Get(":id/requirements", controller.recruiterRequirements)
	})
}

// @Summary Roles
// @Tags Users
// @Description Known roles and the permissions of the caller's role
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=RolesResponse}
// @Failure 403
// @router /api/v1/roles [get]
func (c *usersApiController) roles(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(RolesResponse{
		Roles:       users.Instance.Roles(),
		Permissions: rbac.Instance.GetPermissions(middleware.GetUserRole(ctx)),
	}))
}

// @Summary Create user
// @Tags Users
// @Description Creates a user; without a password the user completes signup later
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 usersapimodels.UserData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users [post]
func (c *usersApiController) create(ctx *fiber.Ctx) error {
	var payload usersapimodels.UserData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := users.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to create user")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update user
// @Tags Users
// @Description Update user
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 usersapimodels.UserData	true	"request body"
// @Param   id          		path    string  				    	true         "user ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id} [put]
func (c *usersApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload usersapimodels.UserData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = users.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to update user")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Change user status
// @Tags Users
// @Description ACTIVE or INACTIVE; inactive users cannot log in
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 usersapimodels.StatusUpdate	true	"request body"
// @Param   id          		path    string  				    	true         "user ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id}/status [put]
func (c *usersApiController) updateStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload usersapimodels.StatusUpdate
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = users.Instance.UpdateStatus(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to change user status")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Get user
// @Tags Users
// @Description Get user by ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "user ID"
// @Success 200 {object} apimodels.Response{data=usersapimodels.UserView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id} [get]
func (c *usersApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := users.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to get user")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary User details
// @Tags Users
// @Description User with assigned requirements and created candidates
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "user ID"
// @Success 200 {object} apimodels.Response{data=usersapimodels.UserDetails}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id}/details [get]
func (c *usersApiController) details(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := users.Instance.Details(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to get user details")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary User list
// @Tags Users
// @Description User list
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]usersapimodels.UserView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users [get]
func (c *usersApiController) list(ctx *fiber.Ctx) error {
	resp, err := users.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to list users")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete user
// @Tags Users
// @Description Delete user
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "user ID"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id} [delete]
func (c *usersApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = users.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to delete user")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Recruiters
// @Tags Users
// @Description Active recruiters and team leads available for allocation
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]usersapimodels.RecruiterView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruiters [get]
func (c *usersApiController) recruiters(ctx *fiber.Ctx) error {
	resp, err := users.Instance.Recruiters()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to list recruiters")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Recruiter requirements
// @Tags Users
// @Description Requirements allocated to the recruiter
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "recruiter ID"
// @Success 200 {object} apimodels.Response{data=[]requirementapimodels.RecruiterRequirementView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruiters/{id}/requirements [get]
func (c *usersApiController) recruiterRequirements(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := requirement.Instance.RecruiterRequirements(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to list recruiter requirements")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
