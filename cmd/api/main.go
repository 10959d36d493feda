// Package main is the entry point for the adventure engine API server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "adventure-engine",
	Short: "Adventure Engine API server",
	Long:  `Adventure Engine serves an LLM-narrated text adventure: free-text player actions are classified into game mechanics, resolved deterministically, and narrated back.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
