package commands

import (
	"github.com/l3aro/intcalc/pkg/formatter"
	"github.com/l3aro/intcalc/pkg/intmath"
	"github.com/spf13/cobra"
)

func newFactorialCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "factorial N",
		Short:   "Print N! for N in [0, 12]",
		Example: `  intcalc factorial 5 -f text`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := intmath.FactorialOf(intmath.ParseValues(args)[0])
			if err != nil {
				return a.fail("factorial", err)
			}
			a.logger.Debug("computed", "op", "factorial", "input", args[0], "value", value)
			return a.emit(cmd.OutOrStdout(), formatter.NewResult("factorial", []int{value}))
		},
	}
}
