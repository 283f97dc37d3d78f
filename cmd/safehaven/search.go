package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PabloGalante/safehaven/internal/knowledge"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Search the knowledge base for lines containing a term",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, kb, err := setup()
			if err != nil {
				return err
			}

			term := strings.Join(args, " ")
			results := knowledge.NewIndex(kb).Search(term)

			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintf(out, "No results found for '%s' in the knowledge base.\n", term)
				return nil
			}
			for _, line := range results {
				fmt.Fprintf(out, "- %s\n", line)
			}
			return nil
		},
	}
}
