package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/amirasaad/backoffice/infra"
	"github.com/amirasaad/backoffice/pkg/domain/person"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func parseID(s, name string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return uint(n), nil
}

func (c *cli) migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or revert the database schema",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := infra.MigrateUp(cmd.Context(), c.app.Deps.DB, c.cfg.DB.Driver); err != nil {
					return err
				}
				c.success("Schema is up to date")
				return nil
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Revert all migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := infra.MigrateDown(cmd.Context(), c.app.Deps.DB, c.cfg.DB.Driver); err != nil {
					return err
				}
				c.success("Schema dropped")
				return nil
			},
		},
	)
	return cmd
}

func (c *cli) personCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "person",
		Short: "Manage persons",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "create <name> <national-id> <birth-date>",
			Short: "Register a person (birth date as YYYY-MM-DD)",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := c.app.PersonService.CreatePerson(cmd.Context(), args[0], args[1], args[2])
				if err != nil {
					return err
				}
				return c.printJSON(p)
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List persons, newest first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				persons, err := c.app.PersonService.ListPersons(cmd.Context())
				if err != nil {
					return err
				}
				return c.printJSON(persons)
			},
		},
	)
	return cmd
}

func (c *cli) accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts",
	}

	var (
		balance, limit string
		accountType    int
		inactive       bool
	)
	create := &cobra.Command{
		Use:   "create <owner-id>",
		Short: "Open an account for a person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := parseID(args[0], "owner id")
			if err != nil {
				return err
			}
			command := dto.AccountCommand{OwnerID: ownerID}
			if cmd.Flags().Changed("balance") {
				d, err := decimal.NewFromString(balance)
				if err != nil {
					return fmt.Errorf("invalid balance: %w", err)
				}
				command.Balance = &d
			}
			if cmd.Flags().Changed("daily-withdraw-limit") {
				d, err := decimal.NewFromString(limit)
				if err != nil {
					return fmt.Errorf("invalid daily withdraw limit: %w", err)
				}
				command.DailyWithdrawLimit = &d
			}
			if cmd.Flags().Changed("type") {
				command.Type = &accountType
			}
			if inactive {
				active := false
				command.Active = &active
			}
			acc, err := c.app.AccountService.CreateAccount(cmd.Context(), command)
			if err != nil {
				return err
			}
			return c.printJSON(acc)
		},
	}
	create.Flags().StringVar(&balance, "balance", "0", "opening balance")
	create.Flags().StringVar(&limit, "daily-withdraw-limit", "1000", "daily withdraw limit")
	create.Flags().IntVar(&accountType, "type", 1, "account type (1 checking, 2 savings)")
	create.Flags().BoolVar(&inactive, "inactive", false, "open the account blocked")

	var owner uint
	list := &cobra.Command{
		Use:   "list",
		Short: "List accounts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				accounts []*dto.AccountRead
				err      error
			)
			if owner != 0 {
				accounts, err = c.app.AccountService.ListAccountsByOwner(cmd.Context(), owner)
			} else {
				accounts, err = c.app.AccountService.ListAccounts(cmd.Context())
			}
			if err != nil {
				return err
			}
			return c.printJSON(accounts)
		},
	}
	list.Flags().UintVar(&owner, "owner", 0, "only accounts held by this person")

	cmd.AddCommand(
		create,
		list,
		&cobra.Command{
			Use:   "balance <account-id>",
			Short: "Print the balance of an account",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0], "account id")
				if err != nil {
					return err
				}
				bal, err := c.app.AccountService.GetBalance(cmd.Context(), id)
				if err != nil {
					return err
				}
				c.success("Account %d balance: %s", id, bal.String())
				return nil
			},
		},
		&cobra.Command{
			Use:   "block <account-id>",
			Short: "Block an account",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0], "account id")
				if err != nil {
					return err
				}
				if err := c.app.AccountService.BlockAccount(cmd.Context(), id); err != nil {
					return err
				}
				c.success("Account %d blocked", id)
				return nil
			},
		},
	)
	return cmd
}

func (c *cli) mutationCmd(name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <account-id> <amount>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "account id")
			if err != nil {
				return err
			}
			amount, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}
			svc := c.app.TransactionService
			mutate := svc.Deposit
			if name == "withdraw" {
				mutate = svc.Withdraw
			}
			entry, err := mutate(cmd.Context(), id, amount)
			if err != nil {
				return err
			}
			bal, err := c.app.AccountService.GetBalance(cmd.Context(), id)
			if err != nil {
				return err
			}
			c.success("Recorded %s on account %d. New balance: %s", entry.Amount.String(), id, bal.String())
			return nil
		},
	}
}

func (c *cli) extractCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "extract <account-id>",
		Short: "Print the statement of an account, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "account id")
			if err != nil {
				return err
			}
			var fromDay, toDay *time.Time
			if from != "" {
				t, err := person.ParseDate(from)
				if err != nil {
					return err
				}
				fromDay = &t
			}
			if to != "" {
				t, err := person.ParseDate(to)
				if err != nil {
					return err
				}
				toDay = &t
			}
			entries, err := c.app.TransactionService.Extract(cmd.Context(), id, fromDay, toDay)
			if err != nil {
				return err
			}
			return c.printJSON(entries)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "first day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "last day (YYYY-MM-DD)")
	return cmd
}

func (c *cli) tokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an operator token for the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := c.app.AuthService.IssueToken(subject, ttl)
			if err != nil {
				return err
			}
			claims, err := c.app.AuthService.ParseToken(token)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(c.out, token); err != nil {
				return err
			}
			c.success("Token for %s issued by %s, expires %s",
				claims.Subject, claims.Issuer, claims.ExpiresAt.UTC().Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "operator", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (defaults to AUTH_JWT_EXPIRY)")
	return cmd
}
