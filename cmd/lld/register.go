package main

import (
	"context"
	"fmt"
	"os"

	"github.com/openlend/loanledger/internal/client"
	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:     "register",
	Short:   "Register a new loan asset",
	GroupID: "assets",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, _ := cmd.Flags().GetString("ref")
		value, _ := cmd.Flags().GetInt64("value")
		id, _ := cmd.Flags().GetString("id")

		asset, err := ledgerClient.RegisterAsset(context.Background(), &client.RegisterAssetRequest{
			Caller:      actor,
			AssetID:     id,
			ExternalRef: ref,
			TotalValue:  value,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(asset)
		} else {
			fmt.Printf("registered %s\n", asset.ID)
			printAssetTable(asset)
		}
		return nil
	},
}

func init() {
	registerCmd.Flags().String("ref", "", "external reference of the underlying loan (required)")
	registerCmd.Flags().Int64("value", 0, "total loan value in minor currency units (required)")
	registerCmd.Flags().String("id", "", "asset ID (generated when empty)")
	_ = registerCmd.MarkFlagRequired("ref")
	_ = registerCmd.MarkFlagRequired("value")
}
