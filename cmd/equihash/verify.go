package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vikoiv/equihash"
)

var cmdVerify = &cobra.Command{
	Use:   "verify <seed-hex> <comma-separated-indices>",
	Short: "Verify a candidate Equihash solution",
	Args:  cobra.ExactArgs(2),
	Run:   runVerify,
}

func init() {
	cmdMain.AddCommand(cmdVerify)
}

func runVerify(cmd *cobra.Command, args []string) {
	if flagMain.NoColor {
		color.NoColor = true
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

	fields := strings.Split(args[1], ",")
	candidate := make([]uint32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(f), 10, 32)
		if err != nil {
			fmt.Fprintln(os.Stderr, color.RedString("invalid index %q: %v", f, err))
			os.Exit(1)
		}
		candidate[i] = uint32(v)
	}

	state, err := equihash.InitState(params, seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("%v", err))
		os.Exit(1)
	}

	if equihash.Verify(state, candidate) {
		fmt.Println(color.GreenString("valid"))
		return
	}
	fmt.Println(color.RedString("invalid"))
	os.Exit(1)
}
