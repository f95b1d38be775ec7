package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/amirasaad/backoffice/infra/initializer"
	"github.com/amirasaad/backoffice/pkg/app"
	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type cli struct {
	envFile string
	out     io.Writer
	cfg     *config.App
	app     *app.App
}

// execute runs the command line in args and releases the dependencies it opened.
func execute(out io.Writer, args []string) error {
	c, root := newRootCmd(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.Execute()
	return errors.Join(err, c.teardown())
}

func newRootCmd(out io.Writer) (*cli, *cobra.Command) {
	c := &cli{out: out}
	root := &cobra.Command{
		Use:           "cli",
		Short:         "Back office command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsApp(cmd) {
				return nil
			}
			return c.setup()
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&c.envFile, "env-file", config.GetEnv("ENV_FILE", ".env"), "environment file to load (ENV_FILE)")

	root.AddCommand(
		c.migrateCmd(),
		c.personCmd(),
		c.accountCmd(),
		c.mutationCmd("deposit", "Credit an account"),
		c.mutationCmd("withdraw", "Debit an account"),
		c.extractCmd(),
		c.tokenCmd(),
	)
	return c, root
}

// needsApp reports whether cmd runs an operation, as opposed to printing help.
func needsApp(cmd *cobra.Command) bool {
	return cmd.Runnable() && cmd.Name() != "help"
}

func (c *cli) setup() error {
	cfg, err := config.Load(c.envFile)
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	c.cfg = cfg
	c.app = app.New(deps, cfg)
	return nil
}

func (c *cli) teardown() error {
	if c.app == nil {
		return nil
	}
	err := c.app.Deps.Close()
	c.app = nil
	return err
}

func (c *cli) success(format string, a ...any) {
	color.New(color.FgGreen).Fprintf(c.out, format+"\n", a...) //nolint:errcheck
}

func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
