package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initTitle string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the memory log file if it does not exist",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVar(&initTitle, "title", "", "document title for a new log")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	_, st, err := openStore()
	if err != nil {
		return err
	}
	if err := st.Init(initTitle); err != nil {
		return err
	}
	fmt.Printf("memory log ready at %s\n", st.Path())
	return nil
}
