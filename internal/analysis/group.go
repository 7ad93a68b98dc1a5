package analysis

import (
	"cmp"
	"slices"

	"github.com/aclements/go-moremath/stats"

	"github.com/nao1215/storestats/internal/dataset"
	"github.com/nao1215/storestats/internal/model"
)

// groups maps each non-null key of col to the rows holding it, keeping keys
// in first-seen order.
type groups struct {
	keys []string
	rows map[string][]int
}

func groupRows(col *dataset.Column) groups {
	g := groups{rows: make(map[string][]int)}
	for i := 0; i < col.Len(); i++ {
		k, ok := col.Text(i)
		if !ok {
			continue
		}
		if _, seen := g.rows[k]; !seen {
			g.keys = append(g.keys, k)
		}
		g.rows[k] = append(g.rows[k], i)
	}
	return g
}

// sum adds the non-null values of col at rows.
func sum(col *dataset.Column, rows []int) float64 {
	total := 0.0
	for _, r := range rows {
		if v, ok := col.Float(r); ok {
			total += v
		}
	}
	return total
}

// SumBy groups rows by key and sums value within each group.
// A group whose values are all null still appears with total 0.
// The result is sorted by total descending.
func SumBy(key, value *dataset.Column) []model.GroupTotal {
	g := groupRows(key)
	out := make([]model.GroupTotal, 0, len(g.keys))
	for _, k := range g.keys {
		out = append(out, model.GroupTotal{Key: k, Total: sum(value, g.rows[k])})
	}
	slices.SortFunc(out, func(a, b model.GroupTotal) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return out
}

// MeanBy groups rows by key and averages value within each group.
// Groups without any non-null value are omitted.
// The result is sorted by mean descending.
func MeanBy(key, value *dataset.Column) []model.GroupMean {
	g := groupRows(key)
	out := make([]model.GroupMean, 0, len(g.keys))
	for _, k := range g.keys {
		var xs []float64
		for _, r := range g.rows[k] {
			if v, ok := value.Float(r); ok {
				xs = append(xs, v)
			}
		}
		if len(xs) == 0 {
			continue
		}
		out = append(out, model.GroupMean{Key: k, Mean: stats.Mean(xs), Count: len(xs)})
	}
	slices.SortFunc(out, func(a, b model.GroupMean) int {
		if c := cmp.Compare(b.Mean, a.Mean); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return out
}

// TopN returns the first n elements of s, or all of s when it is shorter.
func TopN[T any](s []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(s) <= n {
		return s
	}
	return s[:n]
}
