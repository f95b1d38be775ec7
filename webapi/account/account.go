package account

import (
	accountsvc "github.com/amirasaad/backoffice/pkg/service/account"
	"github.com/amirasaad/backoffice/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the account endpoints on router.
func Routes(router fiber.Router, svc *accountsvc.Service) {
	router.Get("/account", ListAccounts(svc))
	router.Get("/account/person/:personId", ListAccountsByOwner(svc))
	router.Get("/account/:id/balance", GetBalance(svc))
	router.Get("/account/:id", GetAccount(svc))
	router.Post("/account", CreateAccount(svc))
	router.Put("/account/:id/block", BlockAccount(svc))
}

// ListAccounts returns a Fiber handler listing every account.
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Success 200 {object} AccountsResponse
// @Failure 500 {object} common.ErrorResponse
// @Router /account [get]
// @Security Bearer
func ListAccounts(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accounts, err := svc.ListAccounts(c.UserContext())
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(AccountsResponse{Accounts: accounts})
	}
}

// GetAccount returns a Fiber handler for retrieving an account by ID.
// @Summary Get account by ID
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} AccountResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /account/{id} [get]
// @Security Bearer
func GetAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		acc, err := svc.GetAccount(c.UserContext(), id)
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(AccountResponse{Account: acc})
	}
}

// ListAccountsByOwner returns a Fiber handler listing the accounts of a person.
// @Summary List accounts of a person
// @Tags accounts
// @Produce json
// @Param personId path int true "Person ID"
// @Success 200 {object} AccountsResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /account/person/{personId} [get]
// @Security Bearer
func ListAccountsByOwner(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, ok, err := common.ParseID(c, "personId")
		if !ok {
			return err
		}
		accounts, err := svc.ListAccountsByOwner(c.UserContext(), ownerID)
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(AccountsResponse{Accounts: accounts})
	}
}

// CreateAccount opens an account for an existing person.
// @Summary Open an account
// @Description Balance defaults to 0, daily withdraw limit to 1000, active to true and type to 1 (checking)
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body NewAccount true "Account data"
// @Success 200 {object} AccountResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /account [post]
// @Security Bearer
func CreateAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[NewAccount](c)
		if input == nil {
			return err
		}
		acc, err := svc.CreateAccount(c.UserContext(), input.command())
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(AccountResponse{Account: acc})
	}
}

// GetBalance returns a Fiber handler for an account's balance.
// @Summary Get account balance
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} BalanceResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /account/{id}/balance [get]
// @Security Bearer
func GetBalance(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		bal, err := svc.GetBalance(c.UserContext(), id)
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(BalanceResponse{Balance: bal})
	}
}

// BlockAccount marks an account inactive. Unknown ids succeed silently.
// @Summary Block an account
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} common.SuccessResponse
// @Failure 400 {object} common.ErrorResponse
// @Router /account/{id}/block [put]
// @Security Bearer
func BlockAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		if err := svc.BlockAccount(c.UserContext(), id); err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c)
	}
}
