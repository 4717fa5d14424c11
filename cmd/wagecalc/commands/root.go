package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"wagecalc/internal/app"
	"wagecalc/internal/domain"
	"wagecalc/internal/services/compose"
)

// NewRootCmd builds the wagecalc root command. Usage and error printing are
// silenced on the cobra side; the message text is an external contract and
// Run owns it.
func NewRootCmd() *cobra.Command {
	var (
		allErrors bool
		appCtx    *app.App
	)

	root := &cobra.Command{
		Use:           "wagecalc <month> <hours> <rate>",
		Short:         "Validate work tokens and compute monthly earnings",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return domain.ErrWrongArity
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			if allErrors {
				cfg.Policy = string(compose.PolicyAccumulate)
			}
			appCtx, err = app.Build(cfg)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			in := domain.RawInput{Month: args[0], Hours: args[1], Rate: args[2]}

			out := appCtx.Composer.Compose(in)
			if out.Failed() {
				appCtx.Log.Debug("validation failed", "fields", len(out.Errs()))
				return out.Errs()
			}

			fields := out.Value()
			total := appCtx.Earnings.Calculate(fields)
			appCtx.Log.Debug("earnings computed",
				"month", fields.Month.String(),
				"hours", int32(fields.Hours),
				"earnings", total.String(),
			)

			fmt.Fprintf(cmd.OutOrStdout(), "Your earnings for %s are %s\n", fields.Month, total)
			return nil
		},
	}

	root.Flags().BoolVar(&allErrors, "all-errors", false,
		"report every invalid argument instead of stopping at the first")
	return root
}

// Run executes the CLI with explicit arguments and streams and returns the
// process exit code: 0 on success, 1 on any validation or arity failure.
func Run(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		for _, msg := range errorMessages(err) {
			fmt.Fprintln(stderr, msg)
		}
		return 1
	}
	return 0
}

// errorMessages flattens a composed failure into one line per failing
// field, preserving the month, hours, rate order. Any other error keeps
// its own single message.
func errorMessages(err error) []string {
	var fieldErrs domain.FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs.Messages()
	}
	return []string{err.Error()}
}
