package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"fixturegen/internal/analyze"
	"fixturegen/internal/diagnostic"
)

const StrictFlagName = "strict"

var (
	ErrNoPatterns   = errors.New("no packages to scan")
	ErrScanFindings = errors.New("scan reported errors")
)

func newScanCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [patterns...]",
		Short: "List the exported types of packages and how they can be generated",
		Long: `scan loads the given packages, or the packages of the config file, and prints
one row per exported type with its kind, its generation eligibility and the
number of findings, followed by the findings themselves.`,
		Example: "fixturegen scan fixturegen/store fixturegen/warehouse",
		RunE: func(cmd *cobra.Command, args []string) error {
			strict, err := cmd.Flags().GetBool(StrictFlagName)
			if err != nil {
				return err
			}

			graph, err := a.load(args)
			if err != nil {
				return err
			}

			diags := diagnostic.Inspect(graph)
			renderScan(cmd, graph, &diags)

			if strict && diags.HasErrors() {
				return fmt.Errorf("%w: %w", ErrScanFindings, diags.Error())
			}

			return nil
		},
	}

	cmd.Flags().Bool(StrictFlagName, false, "fail when a scanned type has error findings")

	return cmd
}

func (a *app) load(args []string) (*analyze.TypeGraph, error) {
	patterns := a.patterns(args)
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}

	graph, err := analyze.NewAnalyzer().LoadPackages(patterns...)
	if err != nil {
		return nil, err
	}

	a.logger.WithField("packages", len(graph.Packages)).
		WithField("types", len(graph.Types)).
		Info("packages loaded")

	return graph, nil
}

func renderScan(cmd *cobra.Command, graph *analyze.TypeGraph, diags *diagnostic.Diagnostics) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"Type", "Kind", "Eligibility", "Constructors", "Findings"})

	for _, info := range graph.Sorted() {
		name := info.ID.String()
		t.AppendRow(table.Row{
			name,
			info.Kind.String(),
			info.Eligibility.String(),
			strconv.Itoa(len(info.Constructors)),
			strconv.Itoa(len(diags.For(name))),
		})
	}

	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)
	t.Render()

	for _, d := range diags.All() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", d.Severity, d)

		for _, hint := range d.Hints {
			fmt.Fprintf(cmd.OutOrStdout(), "  hint: %s\n", hint)
		}
	}
}
