// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Mia06-coder/github-user-activity-cli/internal/cache"
	"github.com/Mia06-coder/github-user-activity-cli/internal/config"
	"github.com/Mia06-coder/github-user-activity-cli/internal/domain"
	"github.com/Mia06-coder/github-user-activity-cli/internal/gateway"
	"github.com/Mia06-coder/github-user-activity-cli/internal/usecase"
)

var activityCmd = &cobra.Command{
	Use:   "activity <username>",
	Short: "Fetches a user's recent activity and outputs a summary as JSON",
	Long: `Fetches the recent public events of the specified GitHub user, groups
them by event kind and repository, and outputs the summary in JSON
format. Results for the last 10 queried users are served from the
local cache without calling the API.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		username := args[0]

		// Get the verbose flag from the root command to set up the logger.
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
		if verbose {
			logger.SetOutput(os.Stderr) // If verbose, log to standard error.
		}

		configPath, _ := cmd.InheritedFlags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}
		if cacheFile, _ := cmd.Flags().GetString("cache-file"); cmd.Flags().Changed("cache-file") {
			cfg.CacheFile = cacheFile
		}
		kindFilter, _ := cmd.Flags().GetString("filter")

		// Inject dependencies and run the main business logic.
		githubGateway, err := gateway.NewGitHubGateway(cfg.Token, cfg.BaseURL, cfg.Timeout(), logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create GitHub gateway: %v\n", err)
			os.Exit(1)
		}
		service := usecase.NewService(githubGateway, loadStore(cfg, logger), logger, persistFunc(cfg))

		summary, err := service.FetchActivity(ctx, username, kindFilter)
		if err != nil {
			reportFetchError(err, username)
			os.Exit(1)
		}

		// Marshal the summary into a pretty-printed JSON string.
		jsonData, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to marshal summary to JSON: %v\n", err)
			os.Exit(1)
		}

		// Print the final JSON to standard output.
		fmt.Println(string(jsonData))
	},
}

// loadStore restores the persisted cache snapshot when one is
// configured; a broken snapshot just means starting empty.
func loadStore(cfg *config.Config, logger *log.Logger) *cache.Store {
	store := cache.New(cache.DefaultCapacity)
	if cfg.CacheFile == "" {
		return store
	}
	if err := store.LoadFile(cfg.CacheFile); err != nil {
		logger.Printf("Ignoring unreadable cache snapshot: %v", err)
		store.Clear()
	}
	return store
}

// persistFunc snapshots the store around each mutation, or returns nil
// when persistence is disabled.
func persistFunc(cfg *config.Config) usecase.PersistFunc {
	if cfg.CacheFile == "" {
		return nil
	}
	return func(s *cache.Store) error {
		return s.SaveFile(cfg.CacheFile)
	}
}

// reportFetchError prints a user-facing message for each error class.
func reportFetchError(err error, username string) {
	var netErr *domain.NetworkError
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		fmt.Fprintf(os.Stderr, "Error: GitHub user %q not found.\n", username)
	case errors.Is(err, domain.ErrRateLimited):
		fmt.Fprintln(os.Stderr, "Error: API rate limit exceeded. Try again later.")
	case errors.As(err, &netErr):
		fmt.Fprintf(os.Stderr, "Error: network failure while reaching GitHub: %v\n", netErr.Err)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

func init() {
	rootCmd.AddCommand(activityCmd)
	activityCmd.Flags().StringP("filter", "f", "", "Only include events whose kind matches this token (e.g. \"push\", \"pull\", \"star\")")
	activityCmd.Flags().String("cache-file", "", "Cache snapshot path (empty disables persistence)")
}
