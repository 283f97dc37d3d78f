package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PabloGalante/safehaven/internal/app/chat"
	"github.com/PabloGalante/safehaven/internal/app/session"
	"github.com/PabloGalante/safehaven/internal/observability"
)

func newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the assistant a single question from the terminal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, kb, err := setup()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			llmClient, ready := newLLM(ctx, cfg, observability.Logger())
			svc := chat.NewService(llmClient, ready, kb, nil)

			st := session.New(ready, false)
			res := svc.Submit(ctx, st, strings.Join(args, " "))

			out := cmd.OutOrStdout()
			switch res.Outcome {
			case chat.OutcomeUnavailable:
				return errors.New(chat.UnavailableText)
			case chat.OutcomeIgnored:
				return errors.New("question is empty")
			}
			fmt.Fprintln(out, res.AssistantMessage.Content)
			return nil
		},
	}
}
