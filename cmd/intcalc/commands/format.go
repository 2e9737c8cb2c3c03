package commands

import (
	"github.com/l3aro/intcalc/pkg/calcerr"
	"github.com/l3aro/intcalc/pkg/formatter"
	"github.com/l3aro/intcalc/pkg/intmath"
	"github.com/spf13/cobra"
)

func newFormatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "format NAME [N...]",
		Short: "Render integers under a root element named NAME",
		Long: `Renders the integers as <NAME amount="N"><result><number>...</number></result></NAME>
without any arithmetic. XML output requires at least one integer.`,
		Example: `  intcalc format division 3 4 5`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, raw := args[0], args[1:]

			numbers := make([]int, len(raw))
			for i, s := range raw {
				n, ok := intmath.ParseInteger(s)
				if !ok {
					return a.fail("format", calcerr.Computation("format", calcerr.ReasonElementType,
						"argument %q is not an integer", s))
				}
				numbers[i] = n
			}

			if err := a.emit(cmd.OutOrStdout(), formatter.NewResult(name, numbers)); err != nil {
				return a.fail("format", err)
			}
			a.logger.Debug("formatted", "name", name, "amount", len(numbers))
			return nil
		},
	}
}
