package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/zetafn/cplx"
)

var beta bool

var periodicCmd = &cobra.Command{
	Use:   "periodic S Q",
	Short: "Periodic zeta F(s, q)",
	Long: `Evaluates the periodic zeta F(s, q) = Σ exp(2πinq) n^{-s} for a
real coordinate 0 < q < 1. With --beta the related periodic beta
β(s, q) = 2 Γ(s+1) F(s, q) / (2π)^s is printed instead; on the unit
interval its real part is a degree-s Bernoulli polynomial.`,
	Args: cobra.ExactArgs(2),
	RunE: runPeriodic,
}

func init() {
	periodicCmd.Flags().BoolVar(&beta, "beta", false, "evaluate periodic beta instead of periodic zeta")
	rootCmd.AddCommand(periodicCmd)
}

func runPeriodic(cmd *cobra.Command, args []string) error {
	s, err := parseComplex(args[0])
	if err != nil {
		return err
	}
	q, err := parseReal(args[1])
	if err != nil {
		return err
	}
	eng, _, cleanup, err := engines()
	if err != nil {
		return err
	}
	defer cleanup()

	dst := cplx.New(cplx.Bits(prec))
	if beta {
		err = eng.PeriodicBeta(dst, s, q, prec)
	} else {
		err = eng.PeriodicZeta(dst, s, q, prec)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), format(dst))
	return nil
}
