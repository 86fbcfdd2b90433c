// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Mia06-coder/github-user-activity-cli/internal/config"
	"github.com/Mia06-coder/github-user-activity-cli/internal/usecase"
)

var clearCacheCmd = &cobra.Command{
	Use:   "clear-cache",
	Short: "Removes all cached user activity",
	Long:  `Empties the local activity cache and truncates its on-disk snapshot, so the next lookup for any user calls the GitHub API again.`,
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := log.New(io.Discard, "", log.LstdFlags)
		if verbose {
			logger.SetOutput(os.Stderr)
		}

		configPath, _ := cmd.InheritedFlags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}

		// No gateway needed: clearing never talks to the API.
		service := usecase.NewService(nil, loadStore(cfg, logger), logger, persistFunc(cfg))
		service.ClearCache()
		fmt.Println("Cache cleared.")
	},
}

func init() {
	rootCmd.AddCommand(clearCacheCmd)
}
