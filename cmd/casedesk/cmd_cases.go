package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"casedesk/internal/dashboard/term"
	"casedesk/internal/dashboard/view"
)

var casesCmd = &cobra.Command{
	Use:   "cases",
	Short: "List cases with their status",
	Args:  cobra.NoArgs,
	RunE:  runCases,
}

func runCases(cmd *cobra.Command, _ []string) error {
	env, err := newEnv(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	list := view.NewCaseList(env, "", nil)
	list.Mount(ctx)
	defer list.Unmount()
	if err := list.Wait(ctx); err != nil {
		return fmt.Errorf("wait for cases: %w", err)
	}

	items := list.Items()
	if len(items) == 0 {
		// The list view hides fetch failures; the CLI reports them.
		if _, err := env.Fetcher.ListCases(ctx); err != nil {
			return fmt.Errorf("list cases: %w", err)
		}
	}
	return term.New(cmd.OutOrStdout()).CaseList(items)
}

var errCaseUnavailable = errors.New("case could not be loaded")
