package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:     "events <asset-id>",
	Short:   "Show the recorded events for an asset",
	GroupID: "assets",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		evts, err := ledgerClient.GetEvents(context.Background(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(evts)
			return nil
		}
		for _, e := range evts {
			ts := e.CreatedAt.Format("2006-01-02 15:04:05")
			fmt.Printf("[%s] %s by %s: %s\n", ts, e.Topic, e.Actor, string(e.Payload))
		}
		return nil
	},
}
