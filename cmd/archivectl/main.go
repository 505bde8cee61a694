package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "archivectl",
	Short: "Operate the archive database from the command line",
	Long: `archivectl runs maintenance tasks against the archive database.

Available subcommands:
  migrate  - Create the schema if it does not exist yet
  preview  - Print the storage location a record would be filed under
  renumber - Rewrite a unit's file numbers to 1..n`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(renumberCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
