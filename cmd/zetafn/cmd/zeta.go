package cmd

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/zetafn/cplx"
)

var zetaCmd = &cobra.Command{
	Use:   "zeta N",
	Short: "Riemann zeta at an integer argument",
	Long: `Evaluates ζ(n) for integer n ≥ 2 to the requested digits.
With --store, finished values persist across runs and later calls at
no more digits are read back instead of recomputed.`,
	Args: cobra.ExactArgs(1),
	RunE: runZeta,
}

func init() {
	rootCmd.AddCommand(zetaCmd)
}

func runZeta(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("integer argument: %w", err)
	}
	_, ze, cleanup, err := engines()
	if err != nil {
		return err
	}
	defer cleanup()

	v := new(big.Float).SetPrec(cplx.Bits(prec))
	if err := ze.Zeta(v, n, prec); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), v.Text('g', prec))
	return nil
}
