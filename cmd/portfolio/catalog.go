package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/kauhanhernandes/portfolio/internal/catalog"
	"github.com/kauhanhernandes/portfolio/internal/view"

	"github.com/spf13/cobra"
)

var catalogJSON bool

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the site content",
	Long:  `Print the navigation tabs, projects and skill groups shown on the site.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := printCatalog(os.Stdout, catalogJSON); err != nil {
			logger.Error("Failed to print catalog: %v", err)
			os.Exit(1)
		}
	},
}

func init() {
	catalogCmd.Flags().BoolVar(&catalogJSON, "json", false, "Print the catalog as JSON")
}

func printCatalog(out io.Writer, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(catalog.All())
	}

	profile := catalog.GetProfile()
	fmt.Fprintf(out, "%s · %s\n\n", profile.Name, profile.Role)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TAB\tLABEL")
	for _, tab := range catalog.Tabs() {
		fmt.Fprintf(w, "%s\t%s\n", tab.ID, tab.Label)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nProjetos")
	for _, p := range catalog.Projects() {
		fmt.Fprintf(out, "  %s [%s]\n    %s\n", p.Title, strings.Join(p.Tech, ", "), p.Link)
	}

	fmt.Fprintln(out, "\nHabilidades")
	for _, g := range catalog.Skills() {
		names := make([]string, 0, len(g.Skills))
		for _, s := range g.Skills {
			names = append(names, s.Name)
		}
		fmt.Fprintf(out, "  %s: %s\n", view.Capitalize(g.Category), strings.Join(names, ", "))
	}
	return nil
}
