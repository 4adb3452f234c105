package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:     "show <asset-id>",
	Short:   "Show an asset with its ownership table",
	GroupID: "assets",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		asset, err := ledgerClient.GetAsset(ctx, args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(asset)
			return nil
		}

		printAssetTable(asset)
		fmt.Println()
		printOwnershipTable(asset.Ownership)
		return nil
	},
}
