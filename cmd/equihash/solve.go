package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vikoiv/equihash"
	"github.com/vikoiv/equihash/internal/logging"
	"github.com/vikoiv/equihash/search"
)

var cmdSolve = &cobra.Command{
	Use:   "solve <seed-hex>",
	Short: "Solve an Equihash instance seeded from the given hex string",
	Args:  cobra.ExactArgs(1),
	Run:   runSolve,
}

var flagSolve struct {
	Optimised bool
	Nonces    int
	Workers   int
}

func init() {
	cmdSolve.Flags().BoolVar(&flagSolve.Optimised, "optimised", true, "Use the optimised solver instead of the basic one")
	cmdSolve.Flags().IntVar(&flagSolve.Nonces, "nonces", 1, "Not applied: the search starts at nonce 0 and runs until a solution is found")
	cmdSolve.Flags().IntVar(&flagSolve.Workers, "workers", 1, "Number of concurrent search workers")
	cmdMain.AddCommand(cmdSolve)
}

func runSolve(cmd *cobra.Command, args []string) {
	if flagMain.NoColor {
		color.NoColor = true
	}
	if flagMain.Verbose {
		logging.SetLevel(zerolog.DebugLevel)
	}

	seed, err := hex.DecodeString(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("invalid hex seed: %v", err))
		os.Exit(1)
	}

	params, err := equihash.NewParams(flagMain.N, flagMain.K)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("%v", err))
		os.Exit(1)
	}

	solveFn := search.SolveFunc(equihash.OptimisedSolve)
	if !flagSolve.Optimised {
		solveFn = equihash.BasicSolve
	}

	start := time.Now()
	result, err := search.Search(context.Background(), params, solveFn, seed, 0, flagSolve.Workers, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("search failed: %v", err))
		os.Exit(1)
	}
	elapsed := time.Since(start)

	if result == nil {
		fmt.Println(color.YellowString("no solution found"))
		return
	}

	fmt.Printf("%s nonce=%d solutions=%d elapsed=%s seed=%s\n",
		color.GreenString("solved"), result.Nonce, result.Solutions.Len(), elapsed, humanize.Bytes(uint64(len(seed))))
	for _, sol := range result.Solutions.Slice() {
		fmt.Println(sol)
	}
}
