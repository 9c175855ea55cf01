package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"casedesk/internal/dashboard/view"
)

var copySummaryFlags struct {
	print bool
}

var copySummaryCmd = &cobra.Command{
	Use:   "copy-summary <caseId>",
	Short: "Copy the explainability summary of a case to the clipboard",
	Args:  cobra.ExactArgs(1),
	RunE:  runCopySummary,
}

func init() {
	copySummaryCmd.Flags().BoolVar(&copySummaryFlags.print, "print", false, "also print the summary")
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// summaryClipboard is replaced in tests.
var summaryClipboard view.Clipboard = systemClipboard{}

func runCopySummary(cmd *cobra.Command, args []string) error {
	env, err := newEnv(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	card := view.NewExplainabilityCard(env, args[0])
	card.Mount(ctx)
	defer card.Unmount()
	if err := card.Wait(ctx); err != nil {
		return fmt.Errorf("wait for explainability of case %s: %w", args[0], err)
	}

	msg, err := card.CopySummary(summaryClipboard)
	if err != nil {
		if v := card.View(); v.Message != "" {
			return fmt.Errorf("case %s: %s", args[0], v.Message)
		}
		return err
	}

	out := cmd.OutOrStdout()
	if copySummaryFlags.print {
		text, _ := card.Summary()
		fmt.Fprint(out, text)
	}
	fmt.Fprintln(out, msg)
	return nil
}
