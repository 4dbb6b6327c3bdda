package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/memolab/memlog-mcp/internal/parser"
	"github.com/memolab/memlog-mcp/internal/searcher"
)

var remindersDays int

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "Show entries with reminders due soon",
	Args:  cobra.NoArgs,
	RunE:  runReminders,
}

func init() {
	remindersCmd.Flags().IntVarP(&remindersDays, "days", "d", 7, "horizon in days from today")

	rootCmd.AddCommand(remindersCmd)
}

func runReminders(cmd *cobra.Command, args []string) error {
	_, st, err := openStore()
	if err != nil {
		return err
	}
	text, err := st.Load()
	if err != nil {
		return err
	}

	due := searcher.RemindersDue(parser.Parse(text), remindersDays, time.Now())
	if len(due) == 0 {
		fmt.Printf("Nothing due within %d days.\n", remindersDays)
		return nil
	}
	for _, r := range due {
		fmt.Printf("%s  %s\n", remindStyle.Render(r.Due), renderHeader(r.Entry))
		if r.Entry.Body != "" {
			fmt.Println("     " + firstLine(r.Entry.Body))
		}
	}
	return nil
}
