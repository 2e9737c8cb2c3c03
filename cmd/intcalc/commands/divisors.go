package commands

import (
	"github.com/l3aro/intcalc/pkg/formatter"
	"github.com/l3aro/intcalc/pkg/intmath"
	"github.com/spf13/cobra"
)

func newDivisorsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "divisors N",
		Short: "List the signed divisors of N, excluding 1, -1, N and -N",
		Long: `Lists every divisor of |N| other than 1 and |N|, together with its
negation, in ascending order. N must be a non-prime integer in [-10000, 10000]
and must not be 0, 1 or -1.`,
		Example: `  intcalc divisors 6
  intcalc divisors -f json -- -8`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			divisors, err := intmath.DivisorsOf(intmath.ParseValues(args)[0])
			if err != nil {
				return a.fail("divisors", err)
			}
			a.logger.Debug("computed", "op", "divisors", "input", args[0], "amount", len(divisors))
			return a.emit(cmd.OutOrStdout(), formatter.NewResult("divisors", divisors))
		},
	}
}
