package main

import (
	"fmt"
	"os"

	"github.com/nikbrunner/dialer/internal/exporter"
	"github.com/nikbrunner/dialer/internal/importer"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.html>",
	Short: "Import contacts from tel: links in an HTML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, store, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open file: %w", err)
		}
		defer file.Close()

		contacts, err := importer.ParseHTMLContacts(file)
		if err != nil {
			return fmt.Errorf("parse HTML: %w", err)
		}

		added, skipped := store.ImportMerge(contacts)
		if err := st.Save(store); err != nil {
			return fmt.Errorf("save contacts: %w", err)
		}

		fmt.Printf("Imported %d contacts", added)
		if skipped > 0 {
			fmt.Printf(" (%d duplicates skipped)", skipped)
		}
		fmt.Println()
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export contacts as an HTML page of tel: links",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var outputPath string
		if len(args) == 1 {
			outputPath = args[0]
		} else {
			var err error
			outputPath, err = exporter.DefaultExportPath()
			if err != nil {
				return fmt.Errorf("default export path: %w", err)
			}
		}

		st, store, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		html := exporter.ExportHTML(store)
		if err := os.WriteFile(outputPath, []byte(html), 0644); err != nil {
			return fmt.Errorf("write file: %w", err)
		}

		fmt.Printf("Exported %d contacts to %s\n", len(store.Contacts), outputPath)
		return nil
	},
}
