package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/dompet/internal/classify"
	"github.com/Veraticus/dompet/internal/cli"
	"github.com/spf13/cobra"
)

func (a *app) rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Show the keyword rules used to guess categories",
		Long: `Show the keyword table used for imports and for entries added without
--category. Rules are tried top to bottom and the first keyword found in the
description (ignoring case) decides the category.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := classify.New()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.BoldStyle.Render("#"),
				cli.BoldStyle.Render("Keywords"),
				cli.BoldStyle.Render("Category"))
			for i, r := range c.Rules() {
				fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, strings.Join(r.Keywords, ", "), r.Category)
			}
			fmt.Fprintf(w, "-\t%s\t%s\n", cli.SubtleStyle.Render("(no match)"), c.Fallback())

			return w.Flush()
		},
	}
}
