package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	vesselcalc "github.com/goliatone/go-vesselcalc"
	"github.com/goliatone/go-vesselcalc/pkg/form"
	"github.com/goliatone/go-vesselcalc/pkg/render"
	"github.com/goliatone/go-vesselcalc/pkg/renderers/text"
)

func newCalculateCmd(a *app) *cobra.Command {
	var (
		values    []string
		output    string
		icons     bool
		templates string
	)

	cmd := &cobra.Command{
		Use:   "calculate <category> <sub-type>",
		Short: "Run one calculation without prompts",
		Example: "  vesselcalc calculate planing rib --set speed=35 --set loa=12 --set width=3.5\n" +
			"  vesselcalc calculate displacement tug --set bollardPull=60 -o json",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			edits, err := parseAssignments(values)
			if err != nil {
				return err
			}
			registry, err := vesselcalc.DefaultRegistry(text.WithTemplatesDir(templates))
			if err != nil {
				return err
			}
			if !registry.Has(output) {
				return fmt.Errorf("unknown output %q (available: %s)", output, strings.Join(registry.List(), ", "))
			}

			s, err := a.session()
			if err != nil {
				return err
			}
			if err := s.SelectCategory(args[0]); err != nil {
				return err
			}
			if err := s.SelectSubType(args[1]); err != nil {
				return err
			}
			for _, edit := range edits {
				if !s.SetField(edit.key, edit.value) {
					return fmt.Errorf("invalid value %q for %s", edit.value, edit.key)
				}
			}

			outcome, err := s.Calculate(cmd.Context())
			if err != nil {
				return err
			}

			out, err := registry.Render(cmd.Context(), output, s.View(), render.RenderOptions{Icons: icons, Indent: true})
			if err != nil {
				return err
			}
			if _, err := cmd.OutOrStdout().Write(out); err != nil {
				return err
			}
			if outcome.Err != nil {
				return fmt.Errorf("calculation failed: %w", outcome.Err)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVar(&values, "set", nil, "specification value as key=value (repeatable)")
	flags.StringVarP(&output, "output", "o", "text", "output format: text or json")
	flags.BoolVar(&icons, "icons", false, "include category icon markup")
	flags.StringVar(&templates, "templates", "", "directory holding templates/*.tpl overrides for text output")
	return cmd
}

type assignment struct {
	key   string
	value string
}

func parseAssignments(raw []string) ([]assignment, error) {
	out := make([]assignment, 0, len(raw))
	for _, item := range raw {
		key, value, ok := strings.Cut(item, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("--set %q: expected key=value", item)
		}
		if _, known := form.Lookup(key); !known {
			return nil, fmt.Errorf("--set %q: unknown field %q", item, key)
		}
		out = append(out, assignment{key: key, value: strings.TrimSpace(value)})
	}
	return out, nil
}
