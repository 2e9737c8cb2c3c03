package commands

import (
	"fmt"

	"github.com/l3aro/intcalc/pkg/formatter"
	"github.com/l3aro/intcalc/pkg/intmath"
	"github.com/spf13/cobra"
)

func newPrimesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "primes N...",
		Short: "Keep the primes among up to 500 integers",
		Long: `Filters the arguments down to their primes, keeping input order, and
renders them as <primeNumbers amount="N">. Every argument must be an integer
with absolute value at most 10000. When no argument is prime the command fails
with a formatting error, whatever the output format.`,
		Example: `  intcalc primes 2 9 13 30
  intcalc primes -f yaml 2 5 11 17`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := intmath.ParseValues(args)

			doc, err := a.calculator().PrimesInValues(values)
			if err != nil {
				return a.fail("primes", err)
			}

			if a.cfg.Format == formatter.FormatXML {
				a.logger.Debug("computed", "op", "primes", "candidates", len(values))
				_, err := fmt.Fprintln(cmd.OutOrStdout(), doc)
				return err
			}

			primes, err := intmath.PrimesOf(values)
			if err != nil {
				return a.fail("primes", err)
			}
			a.logger.Debug("computed", "op", "primes", "candidates", len(values), "amount", len(primes))
			return a.emit(cmd.OutOrStdout(), formatter.NewResult(intmath.PrimesElement, primes))
		},
	}
}
