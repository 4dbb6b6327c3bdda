package cmd

import (
	"github.com/spf13/cobra"

	"github.com/memolab/memlog-mcp/internal/config"
	"github.com/memolab/memlog-mcp/internal/store"
)

var (
	cfgPath   string
	notesFile string
)

var rootCmd = &cobra.Command{
	Use:   "memlog",
	Short: "Personal memory log with relevance search",
	Long: `memlog - a personal memory log in one flat text file

Entries are dated, tagged blocks appended to a single document. Retrieval
is by approximate intent: queries are tokenized, synonym-expanded, scored
against multiple signals, and ranked with human-readable match reasons.

The same engine is exposed to AI assistants over MCP via "memlog serve".`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.memlog/config.toml)")
	rootCmd.PersistentFlags().StringVar(&notesFile, "file", "", "memory log file (overrides config)")
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if notesFile != "" {
		cfg.NotesPath = notesFile
	}
	return cfg, nil
}

func openStore() (*config.Config, *store.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	st, err := cfg.OpenStore()
	if err != nil {
		return nil, nil, err
	}
	return cfg, st, nil
}
