package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:     "history <asset-id>",
	Short:   "Show the transfer history of an asset",
	GroupID: "assets",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		transfers, err := ledgerClient.GetHistory(context.Background(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(transfers)
		} else {
			printTransferTable(transfers)
		}
		return nil
	},
}
