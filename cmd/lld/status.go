package main

import (
	"context"
	"fmt"
	"os"

	"github.com/openlend/loanledger/internal/ui"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:     "status <asset-id> <new-status>",
	Short:   "Update the lifecycle status of an asset",
	Long:    "Update the lifecycle status of an asset. Valid transitions: active -> settled | defaulted | restructured, restructured -> active.",
	GroupID: "assets",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		asset, err := ledgerClient.UpdateStatus(context.Background(), args[0], actor, args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(asset)
		} else {
			fmt.Printf("%s is now %s\n", asset.ID, ui.RenderStatus(asset.Status))
		}
		return nil
	},
}
