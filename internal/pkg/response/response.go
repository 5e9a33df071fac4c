package response

import (
	"errors"

	"takuezy-housing/internal/core/domain"

	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the error payload returned to callers
type ErrorBody struct {
	Success bool   `json:"success"`
	Detail  string `json:"detail"`
}

// Items wraps a list result
type Items struct {
	Items interface{} `json:"items"`
}

// Created is returned by create operations
type Created struct {
	ID string `json:"id"`
}

// Ack is returned by update operations
type Ack struct {
	Success bool `json:"success"`
}

// OK sends a 200 response with data as the body
func OK(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

// List sends {"items": items}, never null
func List(c *fiber.Ctx, items interface{}) error {
	return c.JSON(Items{Items: items})
}

// CreatedID sends {"id": id}
func CreatedID(c *fiber.Ctx, id string) error {
	return c.JSON(Created{ID: id})
}

// Success sends {"success": true}
func Success(c *fiber.Ctx) error {
	return c.JSON(Ack{Success: true})
}

// Error sends an error response
func Error(c *fiber.Ctx, statusCode int, detail string) error {
	return c.Status(statusCode).JSON(ErrorBody{
		Success: false,
		Detail:  detail,
	})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *fiber.Ctx, detail string) error {
	return Error(c, fiber.StatusBadRequest, detail)
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *fiber.Ctx, detail string) error {
	return Error(c, fiber.StatusUnauthorized, detail)
}

// InternalServerError sends a 500 internal server error response
func InternalServerError(c *fiber.Ctx) error {
	return Error(c, fiber.StatusInternalServerError, "Internal Server Error")
}

// StatusFor maps a domain error kind to its HTTP status
func StatusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindValidation:
		return fiber.StatusBadRequest
	case domain.KindUnauthorized:
		return fiber.StatusUnauthorized
	case domain.KindForbidden:
		return fiber.StatusForbidden
	case domain.KindNotFound:
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

// FromError writes domain errors with their status and detail.
// Anything else is returned unchanged for the app error handler to log as a 500.
func FromError(c *fiber.Ctx, err error) error {
	var de *domain.Error
	if !errors.As(err, &de) || de.Kind == domain.KindInternal {
		return err
	}
	if de.Kind == domain.KindUnauthorized {
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	}
	return Error(c, StatusFor(de.Kind), de.Message)
}
