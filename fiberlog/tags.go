package fiberlog

import (
	"regexp"
	"time"

	authutils "ats-backend/lib/utils/auth-utils"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid     = "pid"
	TagLatency = "latency"
	TagStatus  = "status"
	TagMethod  = "method"
	TagPath    = "path"
	TagIP      = "ip"
	TagBody    = "body"
	TagResBody = "res_body"
	TagUserID  = "user_id"
	RequestID  = "request_id"
)

const defaultMaxBodyLen = 2048

var passwordRe = regexp.MustCompile(`("password"\s*:\s*)"[^"]*"`)

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag produces the value logged under a tag.
type FuncTag func(c *fiber.Ctx, d *data) interface{}

func getFuncTagMap(cfg Config) map[string]FuncTag {
	maxBodyLen := cfg.MaxBodyLen
	if maxBodyLen <= 0 {
		maxBodyLen = defaultMaxBodyLen
	}
	all := map[string]FuncTag{
		TagPid: func(c *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagLatency: func(c *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagStatus: func(c *fiber.Ctx, d *data) interface{} {
			return c.Response().StatusCode()
		},
		TagMethod: func(c *fiber.Ctx, d *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, d *data) interface{} {
			return c.Path()
		},
		TagIP: func(c *fiber.Ctx, d *data) interface{} {
			return c.IP()
		},
		TagBody: func(c *fiber.Ctx, d *data) interface{} {
			if isMultipart(c) {
				return ""
			}
			return cleanBody(c.Body(), maxBodyLen)
		},
		TagResBody: func(c *fiber.Ctx, d *data) interface{} {
			if !isJSONResponse(c) {
				return ""
			}
			return cleanBody(c.Response().Body(), maxBodyLen)
		},
		TagUserID: func(c *fiber.Ctx, d *data) interface{} {
			return authutils.ClaimsToUserInfo(authutils.GetClaims(c)).ID
		},
		RequestID: func(c *fiber.Ctx, d *data) interface{} {
			if id, ok := c.Locals("requestid").(string); ok {
				return id
			}
			return c.GetRespHeader(fiber.HeaderXRequestID)
		},
	}
	result := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			result[tag] = ft
		}
	}
	return result
}

func isMultipart(c *fiber.Ctx) bool {
	return len(c.Request().Header.MultipartFormBoundary()) != 0
}

func isJSONResponse(c *fiber.Ctx) bool {
	contentType := string(c.Response().Header.ContentType())
	return len(contentType) >= len(fiber.MIMEApplicationJSON) &&
		contentType[:len(fiber.MIMEApplicationJSON)] == fiber.MIMEApplicationJSON
}

func cleanBody(body []byte, maxBodyLen int) string {
	if len(body) == 0 {
		return ""
	}
	result := passwordRe.ReplaceAllString(string(body), `$1"***"`)
	if len(result) > maxBodyLen {
		result = result[:maxBodyLen] + "..."
	}
	return result
}
