package chart

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"time"

	"vedic-chart/internal/model"
)

// WriteDashaCSV writes the timeline to path, one Mahadasha row followed by its Antardashas.
func WriteDashaCSV(path string, periods []model.DashaPeriod) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := WriteDasha(f, periods); err != nil {
		return err
	}
	return f.Close()
}

func WriteDasha(out io.Writer, periods []model.DashaPeriod) error {
	w := csv.NewWriter(out)

	header := []string{
		"level",
		"mahadasha",
		"planet",
		"start_utc",
		"end_utc",
		"years",
		"balance",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, p := range periods {
		if err := w.Write(row("maha", p.Planet, p)); err != nil {
			return err
		}
		for _, s := range p.Sub {
			if err := w.Write(row("antar", p.Planet, s)); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}

func row(level string, maha model.Body, p model.DashaPeriod) []string {
	return []string{
		level,
		string(maha),
		string(p.Planet),
		fmtTime(p.Start),
		fmtTime(p.End),
		fmtFloat(p.Years),
		strconv.FormatBool(p.Balance),
	}
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
