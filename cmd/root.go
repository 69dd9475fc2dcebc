package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "picshelf",
		Short: "Image gallery backend with session auth and label management",
		Long: `Picshelf is a small image gallery backend.

It serves uploaded images over HTTP with session-based authentication,
paginated listing, and admin-managed labels.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newServeCmd())

	return cmd
}
