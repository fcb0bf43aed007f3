package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	adash "github.com/user/adash-go"
	"github.com/user/adash-go/chart"
	"github.com/user/adash-go/dataset"
)

var (
	outputPath string
	pageTitle  string
	layoutSpec string
	chartKinds []string

	rootCmd = &cobra.Command{
		Use:   "adash [CSV_PATH]",
		Short: "Adash builds a static HTML dashboard from a CSV file.",
		Long: `Adash loads a CSV file (header row required), renders it as a
paginated table, optionally generates charts from its first two columns,
and writes everything to a single self-contained HTML page.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := adash.NewBuilder()
			if err := b.Load(args[0], dataset.SourceCSV); err != nil {
				return fmt.Errorf("loading %s: %w", args[0], err)
			}

			counts, err := parseLayout(layoutSpec)
			if err != nil {
				return err
			}
			if err := b.SetLayout(counts...); err != nil {
				return err
			}

			if err := b.AddTable(); err != nil {
				return err
			}
			for _, name := range chartKinds {
				kind, err := chart.ParseKind(name)
				if err != nil {
					return err
				}
				if err := b.AddChart(adash.ChartOptions{Kind: kind, Title: name}); err != nil {
					return fmt.Errorf("generating %s chart: %w", name, err)
				}
			}

			doc, err := b.Render(pageTitle)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outputPath, []byte(doc), 0644); err != nil {
				return fmt.Errorf("writing dashboard to %s: %w", outputPath, err)
			}

			color.Green("Dashboard saved to %s", outputPath)
			return nil
		},
	}
)

// parseLayout turns a spec like "2,3" into per-row slot counts.
func parseLayout(spec string) ([]int, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}
	parts := strings.Split(spec, ",")
	counts := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid layout %q: %w", spec, err)
		}
		counts = append(counts, n)
	}
	return counts, nil
}

func init() {
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "dashboard.html", "Output file path for the dashboard")
	rootCmd.Flags().StringVar(&pageTitle, "title", adash.DefaultTitle, "Dashboard page title")
	rootCmd.Flags().StringVar(&layoutSpec, "layout", "1", "Comma-separated chart slots per row, e.g. 2,3")
	rootCmd.Flags().StringSliceVar(&chartKinds, "chart", nil, "Chart kind to generate (line, bar, scatter, histogram); repeatable")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
