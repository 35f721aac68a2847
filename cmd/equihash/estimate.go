package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vikoiv/equihash"
)

var cmdEstimate = &cobra.Command{
	Use:   "estimate",
	Short: "Print the table sizes and memory footprint for the current N, K",
	Run:   runEstimate,
}

func init() {
	cmdMain.AddCommand(cmdEstimate)
}

func runEstimate(cmd *cobra.Command, args []string) {
	params, err := equihash.NewParams(flagMain.N, flagMain.K)
	if err != nil {
		fmt.Println(err)
		return
	}

	rowBytes := uint64(params.HashLength() + 4)
	basicBytes := uint64(params.InitialListSize()) * rowBytes

	fmt.Printf("N=%d K=%d\n", params.N, params.K)
	fmt.Printf("CollisionBitLength:  %d\n", params.CollisionBitLength())
	fmt.Printf("CollisionByteLength: %d\n", params.CollisionByteLength())
	fmt.Printf("IndexBits:           %d\n", params.IndexBits())
	fmt.Printf("InitialListSize:     %s\n", humanize.Comma(int64(params.InitialListSize())))
	fmt.Printf("SolutionSize:        %d indices\n", params.SolutionSize())
	fmt.Printf("Basic solver table:  %s\n", humanize.Bytes(basicBytes))
}
