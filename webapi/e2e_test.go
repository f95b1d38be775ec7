package webapi_test

import (
	"fmt"
	"sync"
	"testing"

	accountweb "github.com/amirasaad/backoffice/webapi/account"
	"github.com/amirasaad/backoffice/webapi/testutils"
	transactionweb "github.com/amirasaad/backoffice/webapi/transaction"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PostgresE2ESuite struct {
	testutils.E2ETestSuite
}

func (s *PostgresE2ESuite) TestDepositWithdrawExtract() {
	p := s.CreateTestPerson()
	acc := s.CreateTestAccount(p.ID)

	resp := s.MakeRequest(fiber.MethodPut, "/v1/transaction/deposit", fmt.Sprintf(`{"accountId":%d,"amount":"100.25"}`, acc.ID))
	s.Equal(fiber.StatusOK, resp.StatusCode)
	resp = s.MakeRequest(fiber.MethodPut, "/v1/transaction/withdraw", fmt.Sprintf(`{"accountId":%d,"amount":30}`, acc.ID))
	s.Equal(fiber.StatusOK, resp.StatusCode)

	resp = s.MakeRequest(fiber.MethodGet, fmt.Sprintf("/v1/account/%d/balance", acc.ID), "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var bal accountweb.BalanceResponse
	s.DecodeJSON(resp, &bal)
	s.True(decimal.RequireFromString("70.25").Equal(bal.Balance), bal.Balance.String())

	resp = s.MakeRequest(fiber.MethodGet, fmt.Sprintf("/v1/transaction/%d/extract", acc.ID), "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var ext transactionweb.ExtractResponse
	s.DecodeJSON(resp, &ext)
	s.Require().Len(ext.Extract, 2)
	s.True(decimal.NewFromInt(-30).Equal(ext.Extract[0].Amount))
}

func (s *PostgresE2ESuite) TestUnknownOwnerAndAccount() {
	resp := s.MakeRequest(fiber.MethodPost, "/v1/account", `{"ownerId":999999}`)
	s.Equal(fiber.StatusNotFound, resp.StatusCode)

	resp = s.MakeRequest(fiber.MethodPut, "/v1/transaction/deposit", `{"accountId":999999,"amount":10}`)
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}

func (s *PostgresE2ESuite) TestConcurrentDepositsAreAtomic() {
	p := s.CreateTestPerson()
	acc := s.CreateTestAccount(p.ID)

	const n = 20
	var wg sync.WaitGroup
	codes := make(chan int, n)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := s.MakeRequest(fiber.MethodPut, "/v1/transaction/deposit", fmt.Sprintf(`{"accountId":%d,"amount":5}`, acc.ID))
			_ = resp.Body.Close()
			codes <- resp.StatusCode
		}()
	}
	wg.Wait()
	close(codes)
	for code := range codes {
		s.Equal(fiber.StatusOK, code)
	}

	resp := s.MakeRequest(fiber.MethodGet, fmt.Sprintf("/v1/account/%d/balance", acc.ID), "")
	var bal accountweb.BalanceResponse
	s.DecodeJSON(resp, &bal)
	s.True(decimal.NewFromInt(5*n).Equal(bal.Balance), bal.Balance.String())
}

func TestPostgresE2ESuite(t *testing.T) {
	suite.Run(t, new(PostgresE2ESuite))
}
