package cmd

import (
	"fmt"
	"regexp"
	"time"

	"github.com/spf13/cobra"

	"github.com/memolab/memlog-mcp/internal/store"
)

var (
	addTags     []string
	addReminder string
)

var dateFlagRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var addCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Append a new entry to the memory log",
	Long: `Append a dated entry to the memory log.

Examples:
  memlog add "Buy milk" --tag todo
  memlog add "File expense report" --tag 経費 --remind 2026-09-01`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringArrayVarP(&addTags, "tag", "t", nil, "tag for the entry (repeatable)")
	addCmd.Flags().StringVar(&addReminder, "remind", "", "reminder date (YYYY-MM-DD)")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	if addReminder != "" && !dateFlagRe.MatchString(addReminder) {
		return fmt.Errorf("invalid --remind date %q, want YYYY-MM-DD", addReminder)
	}

	_, st, err := openStore()
	if err != nil {
		return err
	}

	draft := store.Draft{
		Timestamp: time.Now(),
		Tags:      addTags,
		Body:      args[0],
		Reminder:  addReminder,
	}
	if err := st.Append(draft); err != nil {
		return err
	}

	fmt.Printf("added entry %s to %s\n", draft.Timestamp.Format("2006-01-02 15:04"), st.Path())
	return nil
}
