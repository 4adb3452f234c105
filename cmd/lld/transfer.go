package main

import (
	"context"
	"fmt"
	"os"

	"github.com/openlend/loanledger/internal/client"
	"github.com/spf13/cobra"
)

var transferCmd = &cobra.Command{
	Use:     "transfer <asset-id>",
	Short:   "Transfer a fraction of an asset to another holder",
	GroupID: "assets",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		to, _ := cmd.Flags().GetString("to")
		bp, _ := cmd.Flags().GetInt64("bp")
		price, _ := cmd.Flags().GetInt64("price")

		transfer, err := ledgerClient.Transfer(context.Background(), &client.TransferRequest{
			AssetID:     args[0],
			Caller:      actor,
			To:          to,
			BasisPoints: bp,
			Price:       price,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(transfer)
		} else {
			fmt.Printf("transferred %d bp of %s to %s (seq %d)\n",
				transfer.BasisPoints, transfer.AssetID, transfer.To, transfer.Sequence)
		}
		return nil
	},
}

func init() {
	transferCmd.Flags().String("to", "", "recipient identity (required)")
	transferCmd.Flags().Int64("bp", 0, "fraction to transfer in basis points, 1-10000 (required)")
	transferCmd.Flags().Int64("price", 0, "agreed price in minor currency units (informational)")
	_ = transferCmd.MarkFlagRequired("to")
	_ = transferCmd.MarkFlagRequired("bp")
}
