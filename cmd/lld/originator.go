package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var originatorCmd = &cobra.Command{
	Use:     "originator",
	Short:   "Manage the authorized originator set",
	GroupID: "originators",
}

var originatorAddCmd = &cobra.Command{
	Use:   "add <identity>",
	Short: "Authorize an identity to register assets (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ledgerClient.AuthorizeOriginator(context.Background(), actor, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("originator %q authorized\n", args[0])
		return nil
	},
}

var originatorRemoveCmd = &cobra.Command{
	Use:   "remove <identity>",
	Short: "Revoke an identity's originator authorization (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ledgerClient.RevokeOriginator(context.Background(), actor, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("originator %q revoked\n", args[0])
		return nil
	},
}

var originatorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List authorized originators",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		originators, err := ledgerClient.ListOriginators(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(originators)
			return nil
		}
		if len(originators) == 0 {
			fmt.Println("no originators authorized")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "IDENTITY\tAUTHORIZED BY\tAUTHORIZED AT")
		for _, o := range originators {
			fmt.Fprintf(w, "%s\t%s\t%s\n", o.Identity, o.AuthorizedBy, o.AuthorizedAt.Format("2006-01-02 15:04:05"))
		}
		return w.Flush()
	},
}

var originatorCheckCmd = &cobra.Command{
	Use:   "check <identity>",
	Short: "Check whether an identity is an authorized originator",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := ledgerClient.IsOriginator(context.Background(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if ok {
			fmt.Printf("%s is authorized\n", args[0])
		} else {
			fmt.Printf("%s is not authorized\n", args[0])
		}
		return nil
	},
}

func init() {
	originatorCmd.AddCommand(originatorAddCmd)
	originatorCmd.AddCommand(originatorRemoveCmd)
	originatorCmd.AddCommand(originatorListCmd)
	originatorCmd.AddCommand(originatorCheckCmd)
}
