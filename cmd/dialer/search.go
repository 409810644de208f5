package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nikbrunner/dialer/internal/list"
	"github.com/nikbrunner/dialer/internal/model"
	"github.com/nikbrunner/dialer/internal/search"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Print contacts matching a name or number",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, store, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		query := strings.Join(args, " ")
		if n := printSearch(os.Stdout, store, query); n == 0 {
			fmt.Printf("No contacts found for '%s'\n", query)
		}
		return nil
	},
}

// printSearch writes the results for query as a table and returns how many
// rows were written.
func printSearch(w io.Writer, store *model.Store, query string) int {
	src := search.NewContactSource(search.ContactSourceParams{
		Results:      search.FuzzySearchContacts(store, query),
		Region:       cfg.Region,
		ExtraNumbers: cfg.ShowExtraNumbers(),
	})
	if src.IsEmpty() {
		return 0
	}

	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"NAME", "LABEL", "NUMBER", "EXTRA", "ID"})
	tw.SetBorder(false)
	tw.SetAutoWrapText(false)
	for i := 0; i < src.Count(); i++ {
		v := src.View(i)
		row := src.Row(i)
		extra, _ := row.Field(list.ColumnExtraNumber)
		id, _ := row.Field(search.ColumnContactID)
		tw.Append([]string{v.DisplayName, v.Label, v.Number, extra, id})
	}
	tw.Render()
	return src.Count()
}
