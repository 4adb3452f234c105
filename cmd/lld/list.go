package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/openlend/loanledger/internal/client"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List assets",
	GroupID: "assets",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		holder, _ := cmd.Flags().GetString("holder")
		originator, _ := cmd.Flags().GetString("originator")
		status, _ := cmd.Flags().GetString("status")
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")

		req := &client.ListAssetsRequest{
			Holder:     holder,
			Originator: originator,
			Limit:      limit,
			Offset:     offset,
		}
		if status != "" {
			req.Status = strings.Split(status, ",")
		}

		resp, err := ledgerClient.ListAssets(context.Background(), req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(resp.Assets)
		} else {
			printAssetListTable(resp.Assets, resp.Total)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().String("holder", "", "only assets with this identity in the ownership table")
	listCmd.Flags().String("originator", "", "only assets registered by this originator")
	listCmd.Flags().String("status", "", "comma-separated status filter (active,settled,defaulted,restructured)")
	listCmd.Flags().Int("limit", 0, "maximum number of assets to return")
	listCmd.Flags().Int("offset", 0, "number of assets to skip")
}
