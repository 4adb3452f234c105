package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/openlend/loanledger/internal/model"
	"github.com/openlend/loanledger/internal/ui"
)

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func printAssetTable(asset *model.AssetRecord) {
	fmt.Printf("ID:           %s\n", asset.ID)
	fmt.Printf("External Ref: %s\n", asset.ExternalRef)
	fmt.Printf("Originator:   %s\n", asset.Originator)
	fmt.Printf("Total Value:  %d\n", asset.TotalValue)
	fmt.Printf("Status:       %s\n", ui.RenderStatus(asset.Status))
	fmt.Printf("Holders:      %d\n", asset.Holders())
	if !asset.CreatedAt.IsZero() {
		fmt.Printf("Created At:   %s\n", asset.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	if !asset.UpdatedAt.IsZero() {
		fmt.Printf("Updated At:   %s\n", asset.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
}

func printOwnershipTable(ownership map[string]int64) {
	holders := make([]string, 0, len(ownership))
	for h := range ownership {
		holders = append(holders, h)
	}
	// Largest share first; ties break on holder name so output is stable.
	sort.Slice(holders, func(i, j int) bool {
		if ownership[holders[i]] != ownership[holders[j]] {
			return ownership[holders[i]] > ownership[holders[j]]
		}
		return holders[i] < holders[j]
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "HOLDER\tBASIS POINTS\tSHARE")
	for _, h := range holders {
		bp := ownership[h]
		fmt.Fprintf(w, "%s\t%d\t%.2f%%\n", h, bp, float64(bp)/100)
	}
	w.Flush()
}

func printAssetListTable(assets []*model.AssetRecord, total int) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tEXTERNAL REF\tORIGINATOR\tVALUE\tHOLDERS")
	for _, a := range assets {
		ref := a.ExternalRef
		if len(ref) > 40 {
			ref = ref[:37] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n",
			a.ID,
			a.Status,
			ref,
			a.Originator,
			a.TotalValue,
			a.Holders(),
		)
	}
	w.Flush()
	fmt.Printf("\n%d assets (%d total)\n", len(assets), total)
}

func printTransferTable(transfers []*model.TransferEvent) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEQ\tFROM\tTO\tBASIS POINTS\tPRICE\tEXECUTED AT")
	for _, t := range transfers {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%s\n",
			t.Sequence,
			t.From,
			t.To,
			t.BasisPoints,
			t.Price,
			t.ExecutedAt.Format("2006-01-02 15:04:05"),
		)
	}
	w.Flush()
}
