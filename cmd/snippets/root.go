package main

import (
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "snippets",
	Short:         "Manage generated API documentation snippets",
	SilenceUsage:  true,
	SilenceErrors: false,
}
