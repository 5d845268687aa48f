package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"vedic-chart/internal/analysis"
	"vedic-chart/internal/chart"
	"vedic-chart/internal/dasha"
	"vedic-chart/internal/data"
	"vedic-chart/internal/model"

	"github.com/spf13/cobra"
)

func newChartCmd(a *app) *cobra.Command {
	var (
		asJSON    bool
		batchPath string
		workers   int
	)
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Print ascendant, planets and houses",
		Example: `  cli chart --date 2000-01-01 --time 12:00 --offset +00:00 --lat 28.6139 --lon 77.2090
  cli chart --date 1990-05-17 --time 06:45 --place delhi --json
  cli chart --batch births.json --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if batchPath != "" {
				births, err := data.LoadBirthInputs(batchPath)
				if err != nil {
					return err
				}
				charts, err := a.engine().BuildAll(cmd.Context(), births, workers)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(out, charts)
				}
				for i, c := range charts {
					if i > 0 {
						fmt.Fprintln(out)
					}
					printChart(out, c)
				}
				return nil
			}

			c, err := a.build(cmd)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(out, c)
			}
			printChart(out, c)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the full chart as JSON")
	cmd.Flags().StringVar(&batchPath, "batch", "", "JSON array of birth inputs to build together")
	cmd.Flags().IntVar(&workers, "workers", 4, "concurrent builds for --batch")
	return cmd
}

func newDashaCmd(a *app) *cobra.Command {
	var (
		outPath string
		asOf    string
		sub     bool
	)
	cmd := &cobra.Command{
		Use:   "dasha",
		Short: "Print the Vimshottari Mahadasha sequence",
		Example: `  cli dasha --date 2000-01-01 --time 12:00 --offset +00:00 --lat 28.6139 --lon 77.2090 --sub
  cli dasha --place delhi --date 1990-05-17 --time 06:45 --out results/dasha.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.build(cmd)
			if err != nil {
				return err
			}

			if outPath != "" {
				if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
					return err
				}
				if err := chart.WriteDashaCSV(outPath, c.Dasha); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d periods to %s\n", len(c.Dasha), outPath)
				return nil
			}

			at := time.Now().UTC()
			if asOf != "" {
				at, err = time.Parse(time.RFC3339, asOf)
				if err != nil {
					return &model.InputError{Field: "as-of", Reason: "expected RFC3339, e.g. 2024-01-01T00:00:00Z"}
				}
			}
			printDasha(cmd.OutOrStdout(), c.Dasha, at, sub)
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "write periods (with antardashas) as CSV instead of printing")
	cmd.Flags().StringVar(&asOf, "as-of", "", "mark the period running at this RFC3339 instant (default: now)")
	cmd.Flags().BoolVar(&sub, "sub", false, "include antardashas")
	return cmd
}

func newPanchangCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "panchang",
		Short: "Print tithi, yoga, karana, vara and nakshatra",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.build(cmd)
			if err != nil {
				return err
			}
			p := c.Panchang
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-10s %s\n", "local", c.Birth.Local)
			fmt.Fprintf(out, "%-10s %d %s (%s paksha)\n", "tithi", p.Tithi.Index+1, p.Tithi.Name, p.Tithi.Paksha)
			fmt.Fprintf(out, "%-10s %d %s\n", "yoga", p.Yoga.Index+1, p.Yoga.Name)
			fmt.Fprintf(out, "%-10s %d %s\n", "karana", p.Karana.Index+1, p.Karana.Name)
			fmt.Fprintf(out, "%-10s %s\n", "vara", p.Vara)
			fmt.Fprintf(out, "%-10s %s pada %d (lord %s)\n", "nakshatra", p.Nakshatra.Name, p.Nakshatra.Pada, p.Nakshatra.Lord)
			fmt.Fprintf(out, "%-10s %.4f\n", "elongation", p.Elongation)
			return nil
		},
	}
}

func newStrengthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "strength",
		Short: "Rank planets by deterministic strength score",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.build(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-4s %-8s %-12s %-5s %-9s %-5s %-8s\n", "rank", "planet", "sign", "house", "dignity", "retro", "strength")
			for _, r := range analysis.RankByStrength(c.Planets) {
				fmt.Fprintf(out, "%-4d %-8s %-12s %-5d %-9s %-5t %-8.1f\n",
					r.Rank, r.Name, r.SignName, r.House, r.Dignity, r.Retrograde, r.Strength)
			}

			s := analysis.Summarize(c)
			fmt.Fprintf(out, "\nmean %.1f  strongest %s  weakest %s  kendra %d  trikona %d  retrograde %d\n",
				s.MeanStrength, s.Strongest, s.Weakest, s.KendraOccupants, s.TrikonaOccupants, s.Retrogrades)
			return nil
		},
	}
}

func printChart(out io.Writer, c *model.Chart) {
	if c.Name != "" {
		fmt.Fprintf(out, "%s\n", c.Name)
	}
	fmt.Fprintf(out, "birth %s (UTC %s) lat %.4f lon %.4f ayanamsa %.6f\n",
		c.Birth.Local, c.Birth.UTC.Format(time.RFC3339), c.Latitude, c.Longitude, c.Ayanamsa)
	for _, w := range c.Warnings {
		fmt.Fprintf(out, "warning [%s] %s\n", w.Code, w.Message)
	}
	fmt.Fprintf(out, "ascendant %s %.4f° (%s pada %d)\n\n",
		c.Ascendant.SignName, c.Ascendant.Degree, c.Ascendant.Nakshatra.Name, c.Ascendant.Nakshatra.Pada)

	fmt.Fprintf(out, "%-8s %-11s %-12s %-8s %-5s %-18s %-4s %-5s\n", "planet", "longitude", "sign", "degree", "house", "nakshatra", "pada", "retro")
	for _, p := range c.Planets {
		fmt.Fprintf(out, "%-8s %-11.4f %-12s %-8.4f %-5d %-18s %-4d %-5t\n",
			p.Name, p.Longitude, p.SignName, p.Degree, p.House, p.Nakshatra.Name, p.Nakshatra.Pada, p.Retrograde)
	}

	fmt.Fprintf(out, "\n%-5s %-12s %s\n", "house", "sign", "occupants")
	for _, h := range c.Houses {
		fmt.Fprintf(out, "%-5d %-12s %v\n", h.Number, h.SignName, h.Occupants)
	}
}

func printDasha(out io.Writer, periods []model.DashaPeriod, at time.Time, sub bool) {
	cur, ok := dasha.Current(periods, at)
	fmt.Fprintf(out, "%-2s %-8s %-10s %-10s %-8s\n", "", "lord", "start", "end", "years")
	for i, p := range periods {
		mark := ""
		if ok && i == cur {
			mark = "*"
		}
		years := fmt.Sprintf("%.3f", p.Years)
		if p.Balance {
			years += " (balance)"
		}
		fmt.Fprintf(out, "%-2s %-8s %-10s %-10s %s\n", mark, p.Planet, p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"), years)
		if !sub {
			continue
		}
		for _, s := range p.Sub {
			mark := ""
			if s.Contains(at) {
				mark = "*"
			}
			fmt.Fprintf(out, "%-2s   %-6s %-10s %-10s %.3f\n", mark, s.Planet, s.Start.Format("2006-01-02"), s.End.Format("2006-01-02"), s.Years)
		}
	}
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
