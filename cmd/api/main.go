package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/gospelarchive/core/cmd/api/commands"
)

// @title Gospel Archive API
// @version 1.0
// @description Content backend for the Gospel Archive devotional site

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin token.

func main() {
	rootCmd := &cobra.Command{
		Use:   "gospel-archive",
		Short: "Gospel Archive API Server",
		Long:  `Gospel Archive serves a devotional content site: category/language boards of posts, rotating banner verses, resource cards, and an administrator console for editing all of it.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewContentCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
