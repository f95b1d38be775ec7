package person

import (
	personsvc "github.com/amirasaad/backoffice/pkg/service/person"
	"github.com/amirasaad/backoffice/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the person endpoints on router.
func Routes(router fiber.Router, svc *personsvc.Service) {
	router.Get("/person", ListPersons(svc))
	router.Get("/person/:id", GetPerson(svc))
	router.Post("/person", CreatePerson(svc))
}

// ListPersons returns a Fiber handler listing every person.
// @Summary List persons
// @Description List every registered person, newest first
// @Tags persons
// @Produce json
// @Success 200 {object} PersonsResponse
// @Failure 500 {object} common.ErrorResponse
// @Router /person [get]
// @Security Bearer
func ListPersons(svc *personsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		persons, err := svc.ListPersons(c.UserContext())
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(PersonsResponse{Persons: persons})
	}
}

// GetPerson returns a Fiber handler for retrieving a person by ID.
// @Summary Get person by ID
// @Tags persons
// @Produce json
// @Param id path int true "Person ID"
// @Success 200 {object} PersonResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /person/{id} [get]
// @Security Bearer
func GetPerson(svc *personsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		p, err := svc.GetPerson(c.UserContext(), id)
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(PersonResponse{Person: p})
	}
}

// CreatePerson registers a new person.
// @Summary Create a person
// @Description Register a person with name, national id and birth date (YYYY-MM-DD)
// @Tags persons
// @Accept json
// @Produce json
// @Param request body NewPerson true "Person data"
// @Success 200 {object} PersonResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 500 {object} common.ErrorResponse
// @Router /person [post]
// @Security Bearer
func CreatePerson(svc *personsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[NewPerson](c)
		if input == nil {
			return err
		}
		p, err := svc.RegisterPerson(c.UserContext(), input.Name, input.NationalID, input.BirthDate.Time())
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(PersonResponse{Person: p})
	}
}
