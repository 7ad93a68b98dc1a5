package report

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/nao1215/storestats/internal/model"
)

// Decimal places used when printing numbers.
const (
	ratingPlaces     = 2
	efficiencyPlaces = 4
	statPlaces       = 2
)

// nonFinite spells infinities and NaN as "inf", "-inf" and "NaN".
func nonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "inf", true
	case math.IsInf(v, -1):
		return "-inf", true
	default:
		return "", false
	}
}

// formatFixed prints v rounded to places decimals.
func formatFixed(v float64, places int32) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

// formatRating prints a rating with two decimals.
func formatRating(v float64) string {
	return formatFixed(v, ratingPlaces)
}

// formatEfficiency prints an efficiency ratio with four decimals.
func formatEfficiency(v float64) string {
	return formatFixed(v, efficiencyPlaces)
}

// formatQuantity prints a quantity in its shortest exact form: 120, 12.5.
func formatQuantity(v float64) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	return decimal.NewFromFloat(v).String()
}

// formatStat prints a column statistic with two decimals.
func formatStat(v float64) string {
	return formatFixed(v, statPlaces)
}

// plural returns "1 product" or "n products".
func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// headline returns the first line of a section without its number.
func headline(s *model.Section) string {
	if d := s.Diagnostic(); d != "" {
		return fmt.Sprintf("%s: %s", s.Title, d)
	}

	switch {
	case s.AverageRating != nil:
		return fmt.Sprintf("%s: %s", s.Title, formatRating(s.AverageRating.Mean))
	case s.MostFrequentBrand != nil:
		return fmt.Sprintf("%s: %s (%s)", s.Title, s.MostFrequentBrand.Brand, plural(s.MostFrequentBrand.Count, "product"))
	case s.BestSelling != nil:
		return fmt.Sprintf("%s: %s (total sold: %s)", s.Title, s.BestSelling.Top.Key, formatQuantity(s.BestSelling.Top.Total))
	default:
		return s.Title + ":"
	}
}

// sectionTable holds the tabular part of a section.
type sectionTable struct {
	// caption is printed above the table; empty when the headline introduces it.
	caption string
	header  []string
	rows    [][]string
}

// tableOf returns the table of a section, or nil when the section has none.
func tableOf(s *model.Section) *sectionTable {
	if s.Status != model.StatusOK {
		return nil
	}

	switch {
	case s.BestSelling != nil:
		return &sectionTable{
			caption: fmt.Sprintf("Top %d best-selling brands:", s.BestSelling.Limit),
			header:  []string{"brand", "total sold"},
			rows:    totalRows(s.BestSelling.Ranking),
		}
	case s.CategoryRatings != nil:
		rows := make([][]string, len(s.CategoryRatings))
		for i, g := range s.CategoryRatings {
			rows[i] = []string{g.Key, formatRating(g.Mean)}
		}
		return &sectionTable{header: []string{"category", "average rating"}, rows: rows}
	case s.ColorPopularity != nil:
		return &sectionTable{header: []string{"color", "total sold"}, rows: totalRows(s.ColorPopularity)}
	case s.Efficiency != nil:
		rows := make([][]string, len(s.Efficiency.Top))
		for i, b := range s.Efficiency.Top {
			rows[i] = []string{b.Brand, formatEfficiency(b.Efficiency), formatQuantity(b.Sold), formatQuantity(b.Surplus)}
		}
		return &sectionTable{header: []string{"brand", "efficiency", "sold", "surplus"}, rows: rows}
	default:
		return nil
	}
}

func totalRows(groups []model.GroupTotal) [][]string {
	rows := make([][]string, len(groups))
	for i, g := range groups {
		rows[i] = []string{g.Key, formatQuantity(g.Total)}
	}
	return rows
}

// columnSummaryTable renders column summaries as table rows.
func columnSummaryTable(columns []model.ColumnSummary) ([]string, [][]string) {
	header := []string{"column", "kind", "non-null", "min", "mean", "median", "max", "std"}
	rows := make([][]string, len(columns))
	for i, c := range columns {
		row := []string{c.Name, c.Kind, fmt.Sprint(c.NonNull), "", "", "", "", ""}
		if c.Stats != nil {
			row[3] = formatStat(c.Stats.Min)
			row[4] = formatStat(c.Stats.Mean)
			row[5] = formatStat(c.Stats.Median)
			row[6] = formatStat(c.Stats.Max)
			row[7] = formatStat(c.Stats.StdDev)
		}
		rows[i] = row
	}
	return header, rows
}
