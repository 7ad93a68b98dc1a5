package analysis

import (
	"github.com/aclements/go-moremath/stats"

	"github.com/nao1215/storestats/internal/dataset"
	"github.com/nao1215/storestats/internal/model"
)

// Mean returns the arithmetic mean of the non-null values of a numeric column
// and the number of values averaged. With no values it returns (0, 0).
func Mean(col *dataset.Column) (float64, int) {
	xs := col.Floats()
	if len(xs) == 0 {
		return 0, 0
	}
	return stats.Sample{Xs: xs}.Mean(), len(xs)
}

// Mode returns the most frequent non-null value of a column and its count.
// Ties go to the smallest value in byte order. ok is false when the column
// holds no values.
func Mode(col *dataset.Column) (value string, count int, ok bool) {
	counts := make(map[string]int)
	for i := 0; i < col.Len(); i++ {
		v, present := col.Text(i)
		if !present {
			continue
		}
		counts[v]++
	}
	for v, n := range counts {
		if !ok || n > count || (n == count && v < value) {
			value, count, ok = v, n, true
		}
	}
	return value, count, ok
}

// Describe summarizes a column. Numeric columns with at least one value also
// get min, mean, median, max and sample standard deviation.
func Describe(col *dataset.Column) model.ColumnSummary {
	summary := model.ColumnSummary{
		Name:    col.Name,
		Kind:    col.Kind.String(),
		NonNull: col.NonNull(),
	}

	xs := col.Floats()
	if len(xs) == 0 {
		return summary
	}

	sample := stats.Sample{Xs: xs}
	sample.Sort()
	lo, hi := sample.Bounds()
	summary.Stats = &model.NumericSummary{
		Min:    lo,
		Mean:   sample.Mean(),
		Median: sample.Quantile(0.5),
		Max:    hi,
	}
	if len(xs) > 1 {
		summary.Stats.StdDev = sample.StdDev()
	}
	return summary
}

// DescribeAll summarizes every column of d in source order.
func DescribeAll(d *dataset.Dataset) []model.ColumnSummary {
	out := make([]model.ColumnSummary, 0, len(d.Columns()))
	for _, col := range d.Columns() {
		out = append(out, Describe(col))
	}
	return out
}
