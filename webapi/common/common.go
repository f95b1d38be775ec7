// Package common holds the response helpers shared by the HTTP handlers.
package common

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error" example:"account not found"`
}

// SuccessResponse is the body of write operations that return no entity.
type SuccessResponse struct {
	Success int `json:"success" example:"200"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ErrorJSON writes an ErrorResponse with the given status.
func ErrorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{Error: message})
}

// HandleError maps err to a status code and writes it as an ErrorResponse.
func HandleError(c *fiber.Ctx, err error) error {
	return ErrorJSON(c, ErrorToStatusCode(err), err.Error())
}

// SuccessJSON writes {"success":200}.
func SuccessJSON(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(SuccessResponse{Success: fiber.StatusOK})
}

// ErrorToStatusCode maps domain errors to appropriate HTTP status codes.
func ErrorToStatusCode(err error) int {
	var fiberErr *fiber.Error
	switch {
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrAlreadyExists):
		return fiber.StatusConflict
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler renders framework errors (unknown route, body too large,
// unrecovered handler errors) in the ErrorResponse shape.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return HandleError(c, err)
}

// BindAndValidate parses the request body and validates it using go-playground/validator.
// Returns a pointer to the struct (populated), or writes an error response and returns nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorJSON(c, fiber.StatusBadRequest, "Invalid request body: "+err.Error())
	}
	if err := validate.Struct(input); err != nil {
		return nil, ErrorJSON(c, fiber.StatusBadRequest, validationMessage(err))
	}
	return &input, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid params: " + err.Error()
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return "Invalid params: " + strings.Join(fields, ", ")
}

// ParseID reads a positive integer path parameter. On failure it writes a 400
// response and returns ok=false.
func ParseID(c *fiber.Ctx, name string) (id uint, ok bool, err error) {
	raw := c.Params(name)
	n, perr := strconv.ParseUint(raw, 10, 64)
	if perr != nil || n == 0 {
		return 0, false, ErrorJSON(c, fiber.StatusBadRequest, fmt.Sprintf("Invalid param [%s]: %q", name, raw))
	}
	return uint(n), true, nil
}
