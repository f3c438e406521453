package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCatalogCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List hull categories and vessel types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := a.hulls.Entries()
			out := cmd.OutOrStdout()

			switch output {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{"data": entries})
			case "text":
				for _, entry := range entries {
					names := make([]string, 0, len(entry.SubTypes))
					for _, sub := range entry.SubTypes {
						names = append(names, sub.ID)
					}
					if _, err := fmt.Fprintf(out, "%-20s %s\n", entry.ID, strings.Join(names, ", ")); err != nil {
						return err
					}
				}
				return nil
			default:
				return fmt.Errorf("unknown output %q (available: json, text)", output)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text or json")
	return cmd
}
