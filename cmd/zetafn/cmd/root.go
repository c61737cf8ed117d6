// Package cmd wires the zetafn command line: one persistent engine
// configuration feeding the zeta, polylog, hurwitz and periodic
// evaluation subcommands.
package cmd

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/zetafn/cplx"
	"github.com/katalvlaran/zetafn/polylog"
	"github.com/katalvlaran/zetafn/zeta"
)

var (
	prec       int
	tuningPath string
	storePath  string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "zetafn",
	Short: "Arbitrary-precision polylogarithm and zeta evaluations",
	Long: `zetafn evaluates the polylogarithm Li_s(z) and the zeta
functions built on it - Riemann, Hurwitz and periodic - to any
requested number of decimal digits.

Complex arguments are written RE or RE,IM:

  zetafn zeta 3 --prec 100 --store db-zeta.db
  zetafn polylog 2 0.5
  zetafn polylog 0.5,0.25 2,3 --prec 40
  zetafn hurwitz 3 0.25
  zetafn periodic 2.5 0.3 --beta`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().IntVar(&prec, "prec", 30, "decimal digits to evaluate to")
	rootCmd.PersistentFlags().StringVar(&tuningPath, "tuning", "", "TOML file moving the dispatch boundaries")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "SQLite file persisting integer zeta values")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log dispatch decisions to stderr")
}

// logger returns the configured zap logger. Dispatch decisions sit at
// debug level, so verbose mode runs a development logger.
func logger() (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopmentConfig().Build()
}

// engines builds the evaluation engines with the persistent flags
// applied, returning a cleanup that flushes the logger and closes the
// store.
func engines() (*polylog.Engine, *zeta.Engine, func(), error) {
	log, err := logger()
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() { _ = log.Sync() }

	zopts := []zeta.Option{zeta.WithLogger(log)}
	if storePath != "" {
		st, err := zeta.OpenStore(storePath)
		if err != nil {
			cleanup()
			return nil, nil, nil, err
		}
		flush := cleanup
		cleanup = func() { _ = st.Close(); flush() }
		zopts = append(zopts, zeta.WithStore(st))
	}
	ze := zeta.New(zopts...)

	popts := []polylog.Option{polylog.WithLogger(log), polylog.WithZeta(ze)}
	if tuningPath != "" {
		tun, err := polylog.LoadTuning(tuningPath)
		if err != nil {
			cleanup()
			return nil, nil, nil, err
		}
		popts = append(popts, polylog.WithTuning(tun))
	}
	return polylog.New(popts...), ze, cleanup, nil
}

// parseComplex reads the RE or RE,IM decimal form at the working
// precision of the requested digits.
func parseComplex(arg string) (*cplx.Complex, error) {
	re, im := arg, ""
	if i := strings.IndexByte(arg, ','); i >= 0 {
		re, im = arg[:i], arg[i+1:]
	}
	z := cplx.New(cplx.Bits(prec))
	if _, ok := z.Re().SetString(re); !ok {
		return nil, fmt.Errorf("bad real part %q", re)
	}
	if im != "" {
		if _, ok := z.Im().SetString(im); !ok {
			return nil, fmt.Errorf("bad imaginary part %q", im)
		}
	}
	return z, nil
}

// parseReal reads a decimal argument at the working precision.
func parseReal(arg string) (*big.Float, error) {
	f := new(big.Float).SetPrec(cplx.Bits(prec))
	if _, ok := f.SetString(arg); !ok {
		return nil, fmt.Errorf("bad number %q", arg)
	}
	return f, nil
}

// format renders a value the way the arguments are written: RE or
// RE,IM, with the imaginary part dropped when it is exactly zero.
func format(z *cplx.Complex) string {
	re := z.Re().Text('g', prec)
	if z.Im().Sign() == 0 {
		return re
	}
	return re + "," + z.Im().Text('g', prec)
}
