package main

import (
	"os"

	"github.com/spf13/cobra"
)

var cmdMain = &cobra.Command{
	Use:   "equihash",
	Short: "Equihash proof-of-work solver and verifier",
	Run:   printUsageAndExit1,
}

var flagMain struct {
	N       uint32
	K       uint32
	Verbose bool
	NoColor bool
}

func init() {
	cmdMain.PersistentFlags().Uint32Var(&flagMain.N, "n", 96, "Equihash N parameter")
	cmdMain.PersistentFlags().Uint32Var(&flagMain.K, "k", 5, "Equihash K parameter")
	cmdMain.PersistentFlags().BoolVarP(&flagMain.Verbose, "verbose", "v", false, "Enable debug logging")
	cmdMain.PersistentFlags().BoolVar(&flagMain.NoColor, "no-color", false, "Disable colored output")
}

func main() {
	if err := cmdMain.Execute(); err != nil {
		os.Exit(1)
	}
}

func printUsageAndExit1(cmd *cobra.Command, args []string) {
	_ = cmd.Usage()
	os.Exit(1)
}
