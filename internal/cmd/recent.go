package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/memolab/memlog-mcp/internal/parser"
	"github.com/memolab/memlog-mcp/internal/searcher"
)

var recentLimit int

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show the most recently dated entries",
	Args:  cobra.NoArgs,
	RunE:  runRecent,
}

func init() {
	recentCmd.Flags().IntVarP(&recentLimit, "limit", "n", 10, "number of entries")

	rootCmd.AddCommand(recentCmd)
}

func runRecent(cmd *cobra.Command, args []string) error {
	_, st, err := openStore()
	if err != nil {
		return err
	}
	text, err := st.Load()
	if err != nil {
		return err
	}

	for _, e := range searcher.Recent(parser.Parse(text), recentLimit) {
		fmt.Println(renderEntry(e))
	}
	return nil
}
