package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"casedesk/internal/dashboard/term"
	"casedesk/internal/dashboard/view"
	platformstrings "casedesk/pkg/platform/strings"
)

var showFlags struct {
	tab        string
	actor      string
	all        bool
	doc        string
	validation string
	event      string
	expand     string
	completed  bool
}

var showCmd = &cobra.Command{
	Use:   "show <caseId>",
	Short: "Render the dashboard of one case",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	f := showCmd.Flags()
	f.StringVar(&showFlags.tab, "tab", "resumen", "tab to show (resumen, detalles, historial)")
	f.StringVar(&showFlags.actor, "actor", "all", "history actor filter (all, system, analyst, client)")
	f.BoolVar(&showFlags.all, "all", false, "show every audit event instead of the first page")
	f.StringVar(&showFlags.doc, "doc", "", "document to detail on the detalles tab")
	f.StringVar(&showFlags.validation, "validation", "", "document validation to expand")
	f.StringVar(&showFlags.event, "event", "", "audit event to expand")
	f.StringVar(&showFlags.expand, "expand", "", "explainability sections to open, comma separated (summary, validations, ocr, decision)")
	f.BoolVar(&showFlags.completed, "completed", false, "expand completed tasks")
}

func showOptions() (view.Options, error) {
	tab, ok := view.ParseTab(showFlags.tab)
	if !ok {
		return view.Options{}, fmt.Errorf("unknown tab %q", showFlags.tab)
	}
	actor, ok := view.ParseActorFilter(showFlags.actor)
	if !ok {
		return view.Options{}, fmt.Errorf("unknown actor %q", showFlags.actor)
	}
	opts := view.Options{
		Tab:                tab,
		CompletedExpanded:  showFlags.completed,
		Document:           showFlags.doc,
		ExpandedValidation: showFlags.validation,
		Actor:              actor,
		ShowAllEvents:      showFlags.all,
		ExpandedEvent:      showFlags.event,
	}
	if showFlags.expand != "" {
		for _, part := range platformstrings.SplitList(showFlags.expand) {
			sec, ok := view.ParseSection(part)
			if !ok {
				return view.Options{}, fmt.Errorf("unknown section %q", part)
			}
			opts.Expanded = append(opts.Expanded, sec)
		}
	}
	return opts, nil
}

func runShow(cmd *cobra.Command, args []string) error {
	opts, err := showOptions()
	if err != nil {
		return err
	}
	env, err := newEnv(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	d := view.NewDashboard(env, args[0], opts, nil)
	d.Mount(ctx)
	defer d.Unmount()
	if err := d.Wait(ctx); err != nil {
		return fmt.Errorf("wait for case %s: %w", args[0], err)
	}

	v := d.View()
	if err := term.New(cmd.OutOrStdout()).Dashboard(v); err != nil {
		return err
	}
	if v.State == view.ShellError {
		return fmt.Errorf("case %s: %w", args[0], errCaseUnavailable)
	}
	return nil
}
