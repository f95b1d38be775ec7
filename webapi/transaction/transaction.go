package transaction

import (
	"time"

	"github.com/amirasaad/backoffice/pkg/domain/account"
	"github.com/amirasaad/backoffice/pkg/domain/person"
	txsvc "github.com/amirasaad/backoffice/pkg/service/transaction"
	"github.com/amirasaad/backoffice/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the ledger endpoints on router.
func Routes(router fiber.Router, svc *txsvc.Service) {
	router.Put("/transaction/deposit", Deposit(svc))
	router.Put("/transaction/withdraw", Withdraw(svc))
	router.Get("/transaction/:accountId/extract", Extract(svc))
}

// Deposit returns a Fiber handler that credits an account.
// @Summary Deposit into an account
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body MutationRequest true "Account and amount"
// @Success 200 {object} common.SuccessResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /transaction/deposit [put]
// @Security Bearer
func Deposit(svc *txsvc.Service) fiber.Handler {
	return mutate(svc, account.Deposit)
}

// Withdraw returns a Fiber handler that debits an account.
// @Summary Withdraw from an account
// @Description No overdraft or daily limit check is applied.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body MutationRequest true "Account and amount"
// @Success 200 {object} common.SuccessResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /transaction/withdraw [put]
// @Security Bearer
func Withdraw(svc *txsvc.Service) fiber.Handler {
	return mutate(svc, account.Withdraw)
}

func mutate(svc *txsvc.Service, direction account.Direction) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[MutationRequest](c)
		if input == nil {
			return err
		}
		if _, err := svc.ApplySignedAmount(c.UserContext(), input.AccountID, *input.Amount, direction); err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessJSON(c)
	}
}

// Extract returns a Fiber handler for an account statement.
// @Summary Account statement
// @Description Entries newest first. from and to (YYYY-MM-DD) filter whole days and apply only when both are given.
// @Tags transactions
// @Produce json
// @Param accountId path int true "Account ID"
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Success 200 {object} ExtractResponse
// @Failure 400 {object} common.ErrorResponse
// @Router /transaction/{accountId}/extract [get]
// @Security Bearer
func Extract(svc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, ok, err := common.ParseID(c, "accountId")
		if !ok {
			return err
		}
		from, err := parseDay(c.Query("from"))
		if err != nil {
			return common.HandleError(c, err)
		}
		to, err := parseDay(c.Query("to"))
		if err != nil {
			return common.HandleError(c, err)
		}
		entries, err := svc.Extract(c.UserContext(), accountID, from, to)
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(ExtractResponse{Extract: entries})
	}
}

func parseDay(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := person.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
