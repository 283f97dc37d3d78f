package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "safehaven",
	Short: "SafeHaven miscarriage support web app",
	Long: "SafeHaven serves an AI information chat grounded in a curated knowledge base, " +
		"a private session journal, a shared community feed and knowledge-base search.",
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(newServeCmd(), newSearchCmd(), newAskCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
