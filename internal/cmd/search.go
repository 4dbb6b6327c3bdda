package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/memolab/memlog-mcp/internal/searcher"
	"github.com/memolab/memlog-mcp/pkg/types"
)

var (
	searchJSON     bool
	searchLimit    int
	searchNoBonus  bool
	searchSynonyms []string
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the memory log by approximate intent",
	Long: `Search the memory log with a free-text query.

The query is tokenized, expanded with synonyms, and scored against tags,
dates, and content. Results are ranked and annotated with the reasons they
matched.

Examples:
  memlog search "#todo"              # exact tag match
  memlog search "2026-02 meeting"    # month prefix + keyword
  memlog search --json 経費          # machine-readable output`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchNoBonus, "no-recency", false, "disable the recency bonus")
	searchCmd.Flags().StringArrayVar(&searchSynonyms, "synonym", nil, `extra synonym rule "key:syn1,syn2" (repeatable)`)

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, st, err := openStore()
	if err != nil {
		return err
	}

	text, err := st.Load()
	if err != nil {
		return err
	}

	s := searcher.New(searcher.Options{
		Synonyms:     cfg.Synonyms,
		Weights:      cfg.Weights,
		MaxResults:   cfg.MaxResults,
		RecencyBonus: cfg.RecencyEnabled(),
	})

	recency := !searchNoBonus
	resp, err := s.Search(text, searcher.Request{
		Query:        args[0],
		Limit:        searchLimit,
		RecencyBonus: &recency,
		Synonyms:     searchSynonyms,
	})
	if errors.Is(err, types.ErrEmptyQuery) {
		fmt.Fprintln(os.Stderr, "query is empty")
		return nil
	}
	if err != nil {
		return err
	}

	if searchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	if len(resp.Results) == 0 {
		fmt.Println("No matches.")
		return nil
	}

	fmt.Println(renderQueryInfo(resp))
	for _, r := range resp.Results {
		fmt.Println(renderResult(r))
	}
	return nil
}
