package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/zetafn/cplx"
)

var away bool

var polylogCmd = &cobra.Command{
	Use:   "polylog S Z",
	Short: "Polylogarithm Li_s(z)",
	Long: `Evaluates Li_s(z) for complex order and argument. Arguments
anywhere the continuation reaches are accepted; the z ≥ 1 branch cut
and arguments beyond the escape radius fail with an explanation.

With --away the argument is only ever squared off the branch point,
never reflected, which keeps the evaluation on the principal series
but confines z to the unit disk.`,
	Args: cobra.ExactArgs(2),
	RunE: runPolylog,
}

func init() {
	polylogCmd.Flags().BoolVar(&away, "away", false, "square off the branch point only, never reflect")
	rootCmd.AddCommand(polylogCmd)
}

func runPolylog(cmd *cobra.Command, args []string) error {
	s, err := parseComplex(args[0])
	if err != nil {
		return err
	}
	z, err := parseComplex(args[1])
	if err != nil {
		return err
	}
	eng, _, cleanup, err := engines()
	if err != nil {
		return err
	}
	defer cleanup()

	dst := cplx.New(cplx.Bits(prec))
	if away {
		err = eng.PolylogAway(dst, s, z, prec)
	} else {
		err = eng.Polylog(dst, s, z, prec)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), format(dst))
	return nil
}
