package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/atelier-tools/sift"
	"github.com/atelier-tools/sift/internal/presentation/report"
	"github.com/atelier-tools/sift/pkg/adapters/yamldoc"
	"github.com/atelier-tools/sift/pkg/domain"
	"github.com/atelier-tools/sift/pkg/ports"
)

// queryCmd runs one query described by a YAML file, with flag overrides.
var queryCmd = &cobra.Command{
	Use:   "query [query.yaml]",
	Short: "Run one filter query against the document",
	Long: `Runs a single query. The query file is YAML with scope, element_kind,
filters, action and action parameters; flags override individual fields.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var q domain.Query
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			if err := decodeQuery(f, &q); err != nil {
				return err
			}
		}
		if scope, _ := cmd.Flags().GetString("scope"); scope != "" {
			q.Scope = domain.Scope(scope)
		}
		if kind, _ := cmd.Flags().GetString("kind"); kind != "" {
			q.ElementKind = domain.ElementKind(kind)
		}
		if action, _ := cmd.Flags().GetString("action"); action != "" {
			q.Action = domain.Action(action)
		}
		if tmpl, _ := cmd.Flags().GetString("template"); tmpl != "" {
			q.RenameTemplate = tmpl
		}
		if q.ElementKind == "" {
			q.ElementKind = domain.ElementAny
		}

		tree, err := loadTree()
		if err != nil {
			return err
		}

		jsonOut, _ := cmd.Flags().GetBool("json")
		outDir, _ := cmd.Flags().GetString("out")
		presenter := newQueryPresenter(jsonOut, outDir)

		eng, err := sift.New(tree,
			sift.WithPresenter(presenter),
			sift.WithLogger(newLogger()),
			sift.WithPreferenceStore(newPreferenceStore()),
		)
		if err != nil {
			return err
		}
		if err := eng.LoadPreferences(cmd.Context()); err != nil {
			return err
		}

		res, err := eng.Run(cmd.Context(), &q)
		if err != nil {
			return err
		}
		if jsonOut {
			return json.NewEncoder(os.Stdout).Encode(res)
		}
		return nil
	},
}

// newQueryPresenter picks plain JSON or a rendered console presenter
// depending on the output mode and whether stdout is a terminal.
func newQueryPresenter(jsonOut bool, outDir string) ports.Presenter {
	if jsonOut {
		return ports.NopPresenter{}
	}
	profile := termenv.Ascii
	if term.IsTerminal(int(os.Stdout.Fd())) {
		profile = termenv.ColorProfile()
	}
	p := report.NewConsolePresenter(os.Stdout, profile)
	p.OutputDir = outDir
	return p
}

func decodeQuery(f *os.File, q *domain.Query) error {
	doc, err := yamldoc.DecodeQuery(f)
	if err != nil {
		return fmt.Errorf("reading query: %w", err)
	}
	*q = *doc
	return nil
}

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.Flags().String("scope", "", "Traversal scope: current-page, all-pages, current-selection")
	queryCmd.Flags().String("kind", "", "Element kind pre-filter (default ANY)")
	queryCmd.Flags().String("action", "", "Bulk action: select, rename, duplicate, delete, export")
	queryCmd.Flags().String("template", "", "Rename template, supports {id} {name} {page} {date} {alphabet}")
	queryCmd.Flags().Bool("json", false, "Print the raw result as JSON")
	queryCmd.Flags().String("out", ".", "Directory for export downloads")
}
