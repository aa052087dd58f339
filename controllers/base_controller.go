package controllers

import (
	"io"

	filestorage "ats-backend/lib/file-storage"
	apperrors "ats-backend/lib/utils/app-errors"
	apimodels "ats-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("request body parse error")
		return errors.New("unable to read request data")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetParam(ctx, "id")
}

func (c *BaseAPIController) GetParam(ctx *fiber.Ctx, name string) (string, error) {
	value := ctx.Params(name)
	if value == "" {
		return "", errors.Errorf("%s is required", name)
	}
	return value, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	logger := log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
	if requestID, ok := ctx.Locals("requestid").(string); ok && requestID != "" {
		logger = logger.WithField("request_id", requestID)
	}
	return logger
}

// SendError answers with the status matching the error kind. Unknown errors are logged and reported as 500 with msg.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	switch {
	case apperrors.IsValidation(err):
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	case apperrors.IsUnauthorized(err):
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
	case apperrors.IsForbidden(err):
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
	case apperrors.IsNotFound(err):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	case apperrors.IsConflict(err):
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
	}
	logger.WithError(err).Error(msg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(msg))
}

// FormFile returns the uploaded file under name, nil when the form has none.
func (c *BaseAPIController) FormFile(ctx *fiber.Ctx, name string) (*filestorage.UploadFile, io.Closer, error) {
	header, err := ctx.FormFile(name)
	if err != nil || header == nil {
		// not multipart or no such field
		return nil, nil, nil
	}
	file, err := header.Open()
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to open uploaded file")
	}
	return &filestorage.UploadFile{
		FileName:    header.Filename,
		ContentType: header.Header.Get(fiber.HeaderContentType),
		Size:        header.Size,
		Reader:      file,
	}, file, nil
}
