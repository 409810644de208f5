package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/dialer/internal/list"
	"github.com/nikbrunner/dialer/internal/logging"
	"github.com/nikbrunner/dialer/internal/model"
	"github.com/nikbrunner/dialer/internal/storage"
	"github.com/nikbrunner/dialer/internal/tui"
	"github.com/spf13/cobra"
)

var (
	flagConfig string
	flagRegion string
	flagOpen   bool

	// cfg is loaded before any command runs.
	cfg *storage.Config
)

var rootCmd = &cobra.Command{
	Use:   "dialer [query]",
	Short: "Terminal contact dialer",
	Long: `dialer searches your contacts by name or number and offers shortcuts
for the typed number: call it, create a contact, add it to a contact,
send an SMS, start a video call or call through a provider.

Data lives in ~/.config/dialer/ (contacts.db, config.json).`,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(strings.Join(args, " "))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default ~/.config/dialer/config.json)")
	rootCmd.PersistentFlags().StringVar(&flagRegion, "region", "", "region for number formatting, overrides config")
	rootCmd.Flags().BoolVar(&flagOpen, "open", false, "hand the chosen action to the system tel:/sms: handler")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(formatCmd)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	path := flagConfig
	if path == "" {
		var err error
		path, err = storage.DefaultConfigFilePath()
		if err != nil {
			return fmt.Errorf("config path: %w", err)
		}
	}

	loaded, err := storage.LoadConfig(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if flagRegion != "" {
		loaded.Region = strings.ToUpper(flagRegion)
	}
	cfg = loaded

	logging.Init(logging.Config{
		FilePath: cfg.LogFile,
		Level:    logging.ParseLevel(cfg.LogLevel),
	})
	logging.Debug("config loaded", "path", path, "region", cfg.Region)
	return nil
}

func settingsFrom(c *storage.Config) tui.Settings {
	return tui.Settings{
		Region:        c.Region,
		CallProvider:  c.CallProvider,
		VideoCalling:  c.VideoCalling,
		ExtraNumbers:  c.ShowExtraNumbers(),
		PhotoPosition: list.ParsePhotoPosition(c.PhotoPosition),
		RTL:           c.RTL,
	}
}

// openStore opens the contact storage and loads the store.
func openStore() (storage.Storage, *model.Store, error) {
	st, err := storage.OpenStorage()
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}
	store, err := st.Load()
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("load contacts: %w", err)
	}
	return st, store, nil
}

// runTUI runs the interactive dialer and dispatches the chosen action.
func runTUI(query string) error {
	st, store, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	app := tui.NewApp(tui.AppParams{
		Store:    store,
		Settings: settingsFrom(cfg),
		Query:    query,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run app: %w", err)
	}

	action := finalModel.(tui.App).Action()
	if action == nil {
		return nil
	}

	changed, err := dispatch(store, *action, dispatchParams{
		Region: cfg.Region,
		Now:    time.Now(),
		Out:    os.Stdout,
	})
	if err != nil {
		return err
	}
	if changed {
		if err := st.Save(store); err != nil {
			return fmt.Errorf("save contacts: %w", err)
		}
	}
	if flagOpen {
		return openURI(actionURI(*action, cfg.Region))
	}
	return nil
}
