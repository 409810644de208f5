package main

import (
	"fmt"

	"github.com/nikbrunner/dialer/internal/model"
	"github.com/nikbrunner/dialer/internal/phone"
	"github.com/spf13/cobra"
)

var (
	flagAddLabel string
	flagAddExtra string
	flagAddTo    string
)

var addCmd = &cobra.Command{
	Use:   "add <name> <number>",
	Short: "Add a contact, or a number to an existing contact with --to",
	Args: func(cmd *cobra.Command, args []string) error {
		if flagAddTo != "" {
			return cobra.ExactArgs(1)(cmd, args)
		}
		return cobra.ExactArgs(2)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		st, store, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := addContact(store, args); err != nil {
			return err
		}
		if err := st.Save(store); err != nil {
			return fmt.Errorf("save contacts: %w", err)
		}
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&flagAddLabel, "label", "mobile", "label of the number")
	addCmd.Flags().StringVar(&flagAddExtra, "extra", "", "extra number reachable through a call provider")
	addCmd.Flags().StringVar(&flagAddTo, "to", "", "ID of an existing contact to add the number to")
}

func addContact(store *model.Store, args []string) error {
	if flagAddTo != "" {
		number := phone.Normalize(args[0])
		c := store.GetContactByID(flagAddTo)
		if c == nil {
			return fmt.Errorf("%w: %q", ErrUnknownContact, flagAddTo)
		}
		if !store.AddNumber(c.ID, model.PhoneNumber{Label: flagAddLabel, Number: number}) {
			return fmt.Errorf("%s already has %s", c.Name, number)
		}
		fmt.Printf("Added %s to %s\n", phone.Format(number, cfg.Region), c.Name)
		return nil
	}

	name, number := args[0], phone.Normalize(args[1])
	if number == "" {
		return fmt.Errorf("no digits in %q", args[1])
	}
	if existing := store.GetContactByNumber(number); existing != nil {
		return fmt.Errorf("%s already belongs to %s", number, existing.Name)
	}
	c := model.NewContact(model.NewContactParams{
		Name:        name,
		Numbers:     []model.PhoneNumber{{Label: flagAddLabel, Number: number}},
		ExtraNumber: phone.Normalize(flagAddExtra),
	})
	store.AddContact(c)
	fmt.Printf("Added %s (%s)\n", c.Name, c.ID)
	return nil
}
