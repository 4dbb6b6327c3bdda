package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/memolab/memlog-mcp/internal/parser"
	"github.com/memolab/memlog-mcp/internal/searcher"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List every distinct tag in the memory log",
	Args:  cobra.NoArgs,
	RunE:  runTags,
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}

func runTags(cmd *cobra.Command, args []string) error {
	_, st, err := openStore()
	if err != nil {
		return err
	}
	text, err := st.Load()
	if err != nil {
		return err
	}

	for _, tag := range searcher.Tags(parser.Parse(text)) {
		fmt.Println(tagStyle.Render(tag))
	}
	return nil
}
