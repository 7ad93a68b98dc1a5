package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/nao1215/storestats/internal/dataset"
)

const epsilon = 1e-9

// storeDataset builds a dataset from a header and records.
func storeDataset(t *testing.T, header []string, records [][]string) *dataset.Dataset {
	t.Helper()

	d, err := dataset.New("store.csv", dataset.FormatCSV, header, records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return d
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestMean(t *testing.T) {
	t.Parallel()

	t.Run("averages non-null values", func(t *testing.T) {
		t.Parallel()

		d := storeDataset(t, []string{"rating"}, [][]string{{"4.5"}, {""}, {"4"}, {"NA"}})
		mean, n := Mean(d.MustColumn("rating"))
		if n != 2 {
			t.Errorf("expected 2 values, got %d", n)
		}
		if !almostEqual(mean, 4.25) {
			t.Errorf("expected 4.25, got %v", mean)
		}
	})

	t.Run("returns zero without values", func(t *testing.T) {
		t.Parallel()

		d := storeDataset(t, []string{"rating"}, [][]string{{""}})
		mean, n := Mean(d.MustColumn("rating"))
		if mean != 0 || n != 0 {
			t.Errorf("expected (0, 0), got (%v, %d)", mean, n)
		}
	})
}

func TestMode(t *testing.T) {
	t.Parallel()

	t.Run("most frequent value", func(t *testing.T) {
		t.Parallel()

		d := storeDataset(t, []string{"brand"}, [][]string{{"Globex"}, {"Acme"}, {"Acme"}, {""}, {""}, {""}})
		v, n, ok := Mode(d.MustColumn("brand"))
		if !ok || v != "Acme" || n != 2 {
			t.Errorf("expected Acme x2, got %q x%d (ok=%v)", v, n, ok)
		}
	})

	t.Run("ties go to the smallest value", func(t *testing.T) {
		t.Parallel()

		d := storeDataset(t, []string{"brand"}, [][]string{{"Zeta"}, {"Beta"}, {"Zeta"}, {"Beta"}, {"alpha"}})
		v, n, ok := Mode(d.MustColumn("brand"))
		if !ok || v != "Beta" || n != 2 {
			t.Errorf("expected Beta x2, got %q x%d", v, n)
		}
	})

	t.Run("no values", func(t *testing.T) {
		t.Parallel()

		d := storeDataset(t, []string{"brand"}, nil)
		if _, _, ok := Mode(d.MustColumn("brand")); ok {
			t.Error("expected ok to be false")
		}
	})
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	t.Run("numeric column", func(t *testing.T) {
		t.Parallel()

		d := storeDataset(t, []string{"quantity_sold"}, [][]string{{"4"}, {"1"}, {""}, {"3"}, {"2"}})
		s := Describe(d.MustColumn("quantity_sold"))
		if s.Kind != "numeric" || s.NonNull != 4 {
			t.Errorf("unexpected summary %+v", s)
		}
		if s.Stats == nil {
			t.Fatal("expected statistics")
		}
		if s.Stats.Min != 1 || s.Stats.Max != 4 {
			t.Errorf("unexpected bounds %v..%v", s.Stats.Min, s.Stats.Max)
		}
		if !almostEqual(s.Stats.Mean, 2.5) {
			t.Errorf("expected mean 2.5, got %v", s.Stats.Mean)
		}
		if !almostEqual(s.Stats.Median, 2.5) {
			t.Errorf("expected median 2.5, got %v", s.Stats.Median)
		}
		if !almostEqual(s.Stats.StdDev, math.Sqrt(5.0/3.0)) {
			t.Errorf("unexpected standard deviation %v", s.Stats.StdDev)
		}
	})

	t.Run("single value has zero deviation", func(t *testing.T) {
		t.Parallel()

		d := storeDataset(t, []string{"rating"}, [][]string{{"3"}})
		s := Describe(d.MustColumn("rating"))
		if s.Stats == nil || s.Stats.StdDev != 0 {
			t.Errorf("unexpected statistics %+v", s.Stats)
		}
	})

	t.Run("overflowing deviation is infinite", func(t *testing.T) {
		t.Parallel()

		d := storeDataset(t, []string{"price"}, [][]string{{"1e200"}, {"-1e200"}})
		s := Describe(d.MustColumn("price"))
		if s.Stats == nil {
			t.Fatal("expected statistics")
		}
		if s.Stats.Min != -1e200 || s.Stats.Max != 1e200 || s.Stats.Mean != 0 {
			t.Errorf("unexpected statistics %+v", s.Stats)
		}
		if !math.IsInf(s.Stats.StdDev, 1) {
			t.Errorf("expected +Inf standard deviation, got %v", s.Stats.StdDev)
		}
	})

	t.Run("text column has no statistics", func(t *testing.T) {
		t.Parallel()

		d := storeDataset(t, []string{"brand"}, [][]string{{"Acme"}})
		s := Describe(d.MustColumn("brand"))
		if s.Kind != "text" || s.Stats != nil {
			t.Errorf("unexpected summary %+v", s)
		}
	})

	t.Run("describes every column", func(t *testing.T) {
		t.Parallel()

		d := storeDataset(t, []string{"brand", "rating"}, [][]string{{"Acme", "4"}})
		all := DescribeAll(d)
		if len(all) != 2 || all[0].Name != "brand" || all[1].Name != "rating" {
			t.Errorf("unexpected summaries %+v", all)
		}
	})
}

func TestSumBy(t *testing.T) {
	t.Parallel()

	d := storeDataset(t,
		[]string{"color", "quantity_sold"},
		[][]string{
			{"red", "10"},
			{"blue", "5"},
			{"red", "2.5"},
			{"", "100"},
			{"green", ""},
			{"black", "12.5"},
			{"blue", "7"},
		})

	got := SumBy(d.MustColumn("color"), d.MustColumn("quantity_sold"))
	want := []struct {
		key   string
		total float64
	}{
		{"black", 12.5},
		{"red", 12.5},
		{"blue", 12},
		{"green", 0},
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d groups, got %d: %+v", len(want), len(got), got)
	}
	for i, w := range want {
		if got[i].Key != w.key || !almostEqual(got[i].Total, w.total) {
			t.Errorf("group %d: got %s=%v, expected %s=%v", i, got[i].Key, got[i].Total, w.key, w.total)
		}
	}
}

func TestMeanBy(t *testing.T) {
	t.Parallel()

	d := storeDataset(t,
		[]string{"category", "rating"},
		[][]string{
			{"Shoes", "4"},
			{"Hats", "3"},
			{"Shoes", "5"},
			{"Bags", ""},
			{"", "1"},
			{"Coats", "4.5"},
		})

	got := MeanBy(d.MustColumn("category"), d.MustColumn("rating"))
	if len(got) != 3 {
		t.Fatalf("expected 3 groups, got %+v", got)
	}

	t.Run("sorted descending with ties by key", func(t *testing.T) {
		t.Parallel()

		order := []string{"Coats", "Shoes", "Hats"}
		for i, k := range order {
			if got[i].Key != k {
				t.Errorf("position %d: got %s, expected %s", i, got[i].Key, k)
			}
		}
	})

	t.Run("counts averaged values", func(t *testing.T) {
		t.Parallel()

		if got[1].Count != 2 || !almostEqual(got[1].Mean, 4.5) {
			t.Errorf("unexpected Shoes group %+v", got[1])
		}
	})
}

func TestTopN(t *testing.T) {
	t.Parallel()

	s := []int{5, 4, 3}

	t.Run("truncates", func(t *testing.T) {
		t.Parallel()
		if got := TopN(s, 2); len(got) != 2 {
			t.Errorf("expected 2 elements, got %v", got)
		}
	})

	t.Run("keeps shorter slices", func(t *testing.T) {
		t.Parallel()
		if got := TopN(s, 10); len(got) != 3 {
			t.Errorf("expected 3 elements, got %v", got)
		}
	})

	t.Run("negative n", func(t *testing.T) {
		t.Parallel()
		if got := TopN(s, -1); len(got) != 0 {
			t.Errorf("expected no elements, got %v", got)
		}
	})
}

func TestEfficiency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		sold, stock float64
		surplus     float64
		efficiency  float64
	}{
		{name: "stock below sold", sold: 10, stock: 5, surplus: 0, efficiency: 1},
		{name: "stock equal to sold", sold: 8, stock: 8, surplus: 0, efficiency: 1},
		{name: "stock above sold", sold: 5, stock: 20, surplus: 15, efficiency: 0.25},
		{name: "nothing sold", sold: 0, stock: 10, surplus: 10, efficiency: 0},
		{name: "nothing at all", sold: 0, stock: 0, surplus: 0, efficiency: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			surplus, eff := Efficiency(tt.sold, tt.stock)
			if surplus != tt.surplus {
				t.Errorf("surplus: got %v, expected %v", surplus, tt.surplus)
			}
			if !almostEqual(eff, tt.efficiency) {
				t.Errorf("efficiency: got %v, expected %v", eff, tt.efficiency)
			}
			if eff < 0 || eff > 1 {
				t.Errorf("efficiency %v out of range", eff)
			}
		})
	}
}

func TestBrandEfficiency(t *testing.T) {
	t.Parallel()

	t.Run("two brands", func(t *testing.T) {
		t.Parallel()

		d := storeDataset(t,
			[]string{"brand", "quantity_sold", "quantity_in_stock"},
			[][]string{{"B", "5", "20"}, {"A", "10", "5"}})

		got := BrandEfficiency(d.MustColumn("brand"), d.MustColumn("quantity_sold"), d.MustColumn("quantity_in_stock"))
		if len(got) != 2 {
			t.Fatalf("expected 2 brands, got %+v", got)
		}
		if got[0].Brand != "A" || got[0].Surplus != 0 || got[0].Efficiency != 1 {
			t.Errorf("unexpected first brand %+v", got[0])
		}
		if got[1].Brand != "B" || got[1].Surplus != 15 || !almostEqual(got[1].Efficiency, 0.25) {
			t.Errorf("unexpected second brand %+v", got[1])
		}
	})

	t.Run("sums rows of the same brand", func(t *testing.T) {
		t.Parallel()

		d := storeDataset(t,
			[]string{"brand", "quantity_sold", "quantity_in_stock"},
			[][]string{{"A", "3", "4"}, {"A", "2", ""}, {"A", "", "6"}})

		got := BrandEfficiency(d.MustColumn("brand"), d.MustColumn("quantity_sold"), d.MustColumn("quantity_in_stock"))
		if len(got) != 1 {
			t.Fatalf("expected 1 brand, got %+v", got)
		}
		a := got[0]
		if a.Sold != 5 || a.Stock != 10 || a.Surplus != 5 || !almostEqual(a.Efficiency, 0.5) {
			t.Errorf("unexpected aggregate %+v", a)
		}
	})

	t.Run("ties by units sold then brand", func(t *testing.T) {
		t.Parallel()

		d := storeDataset(t,
			[]string{"brand", "quantity_sold", "quantity_in_stock"},
			[][]string{{"C", "4", "0"}, {"B", "9", "1"}, {"A", "4", "2"}})

		got := BrandEfficiency(d.MustColumn("brand"), d.MustColumn("quantity_sold"), d.MustColumn("quantity_in_stock"))
		order := []string{"B", "A", "C"}
		for i, b := range order {
			if got[i].Brand != b {
				t.Errorf("position %d: got %s, expected %s", i, got[i].Brand, b)
			}
		}
	})
}

func TestNonFiniteAggregates(t *testing.T) {
	t.Parallel()

	t.Run("overflowing sum is reported", func(t *testing.T) {
		t.Parallel()

		d := storeDataset(t, []string{"brand", "quantity_sold"}, [][]string{{"Acme", "1e308"}, {"Acme", "1e308"}})
		totals := SumBy(d.MustColumn("brand"), d.MustColumn("quantity_sold"))
		if len(totals) != 1 || !math.IsInf(totals[0].Total, 1) {
			t.Fatalf("expected an infinite total, got %+v", totals)
		}

		err := CheckTotals("total quantity_sold", totals)
		if !errors.Is(err, ErrNonFinite) {
			t.Fatalf("expected ErrNonFinite, got %v", err)
		}
		var nfe *NonFiniteError
		if !errors.As(err, &nfe) || nfe.Key != "Acme" {
			t.Errorf("expected error for Acme, got %v", err)
		}
		if err.Error() != "total quantity_sold for 'Acme' is not finite (+Inf)" {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("finite totals pass", func(t *testing.T) {
		t.Parallel()

		d := storeDataset(t, []string{"brand", "quantity_sold"}, [][]string{{"Acme", "1e307"}, {"Acme", "1e307"}})
		if err := CheckTotals("total quantity_sold", SumBy(d.MustColumn("brand"), d.MustColumn("quantity_sold"))); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("overflowing mean is reported", func(t *testing.T) {
		t.Parallel()

		d := storeDataset(t, []string{"category", "rating"}, [][]string{{"Toys", "-1e308"}, {"Toys", "1.7e308"}})
		means := MeanBy(d.MustColumn("category"), d.MustColumn("rating"))
		err := CheckMeans("mean rating", means)
		if !errors.Is(err, ErrNonFinite) {
			t.Errorf("expected ErrNonFinite for %+v, got %v", means, err)
		}
	})

	t.Run("efficiency of infinite totals is reported", func(t *testing.T) {
		t.Parallel()

		d := storeDataset(t,
			[]string{"brand", "quantity_sold", "quantity_in_stock"},
			[][]string{{"Acme", "1e308", "1"}, {"Acme", "1e308", "1"}, {"Globex", "1", "1"}})
		ranking := BrandEfficiency(d.MustColumn("brand"), d.MustColumn("quantity_sold"), d.MustColumn("quantity_in_stock"))

		err := CheckEfficiency("total quantity_sold", "total quantity_in_stock", ranking)
		var nfe *NonFiniteError
		if !errors.As(err, &nfe) {
			t.Fatalf("expected NonFiniteError, got %v", err)
		}
		if nfe.Quantity != "total quantity_sold" || nfe.Key != "Acme" {
			t.Errorf("unexpected error %+v", nfe)
		}
	})

	t.Run("whole column error has no key", func(t *testing.T) {
		t.Parallel()

		err := CheckFinite("mean rating", "", math.NaN())
		if err == nil || err.Error() != "mean rating is not finite (NaN)" {
			t.Errorf("unexpected error %v", err)
		}
		if CheckFinite("mean rating", "", 4.5) != nil {
			t.Error("expected no error for a finite value")
		}
	})
}
