// Package handler holds the Fiber controllers. They parse requests, call the
// use cases and translate errors into the JSON error body.
package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"resto-backend/internal/apperror"
	"resto-backend/internal/metrics"
	"resto-backend/internal/pagination"
)

// Responder renders failures. Production hides diagnostic fields.
type Responder struct {
	Log        *zap.Logger
	Production bool
}

func NewResponder(log *zap.Logger, production bool) Responder {
	if log == nil {
		log = zap.NewNop()
	}
	return Responder{Log: log, Production: production}
}

func (r Responder) fail(c *fiber.Ctx, err error) error {
	status := apperror.Status(err)
	body := apperror.Format(err, r.Production)

	fields := []zap.Field{
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", status),
		zap.String("code", body.Code),
		zap.Error(err),
	}
	if e, ok := apperror.As(err); ok {
		fields = append(fields, zap.String("operation", e.Operation), zap.String("layer", e.Layer))
	}
	if status >= fiber.StatusInternalServerError {
		r.Log.Error("request failed", fields...)
	} else {
		r.Log.Warn("request rejected", fields...)
	}
	metrics.IncHTTPError(strconv.Itoa(status), body.Code)
	return c.Status(status).JSON(body)
}

// Result is the envelope used by the schedule and menu endpoints.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

func ok[T any](c *fiber.Ctx, status int, data T, message string) error {
	return c.Status(status).JSON(Result[T]{Success: true, Data: data, Message: message})
}

// parseID reads a positive numeric path parameter.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperror.New(apperror.CodeMissingID, "Valid numeric ID is required")
	}
	return uint(id), nil
}

func pageQuery(c *fiber.Ctx) (int, int, error) {
	return pagination.Parse(c.Query("page"), c.Query("limit"))
}

// bind decodes a JSON body into dst. An empty body leaves dst untouched so the
// use case reports the missing fields itself.
func bind(c *fiber.Ctx, dst any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(dst); err != nil {
		return apperror.New(apperror.CodeInvalidData, "Request body is not valid JSON")
	}
	return nil
}
