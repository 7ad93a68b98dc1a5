package analysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/nao1215/storestats/internal/model"
)

// ErrNonFinite is matched by errors.Is when an aggregate overflows to an
// infinity or is not a number.
var ErrNonFinite = errors.New("aggregate is not a finite number")

// NonFiniteError reports the aggregate that overflowed.
type NonFiniteError struct {
	// Quantity names the aggregate, e.g. "total quantity_sold".
	Quantity string

	// Key is the group the aggregate belongs to, empty for a whole column.
	Key string

	// Value is the offending result.
	Value float64
}

// Error implements the error interface.
func (e *NonFiniteError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s is not finite (%v)", e.Quantity, e.Value)
	}
	return fmt.Sprintf("%s for '%s' is not finite (%v)", e.Quantity, e.Key, e.Value)
}

// Unwrap returns ErrNonFinite.
func (e *NonFiniteError) Unwrap() error {
	return ErrNonFinite
}

// IsFinite reports whether v is neither an infinity nor NaN.
func IsFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// CheckFinite returns a *NonFiniteError when v is not finite.
func CheckFinite(quantity, key string, v float64) error {
	if IsFinite(v) {
		return nil
	}
	return &NonFiniteError{Quantity: quantity, Key: key, Value: v}
}

// CheckTotals returns an error for the first group whose total is not finite.
func CheckTotals(quantity string, totals []model.GroupTotal) error {
	for _, t := range totals {
		if err := CheckFinite(quantity, t.Key, t.Total); err != nil {
			return err
		}
	}
	return nil
}

// CheckMeans returns an error for the first group whose mean is not finite.
func CheckMeans(quantity string, means []model.GroupMean) error {
	for _, m := range means {
		if err := CheckFinite(quantity, m.Key, m.Mean); err != nil {
			return err
		}
	}
	return nil
}

// CheckEfficiency returns an error for the first brand whose totals, surplus
// or efficiency are not finite.
func CheckEfficiency(soldQuantity, stockQuantity string, ranking []model.BrandAggregate) error {
	for _, b := range ranking {
		if err := CheckFinite(soldQuantity, b.Brand, b.Sold); err != nil {
			return err
		}
		if err := CheckFinite(stockQuantity, b.Brand, b.Stock); err != nil {
			return err
		}
		if err := CheckFinite("surplus", b.Brand, b.Surplus); err != nil {
			return err
		}
		if err := CheckFinite("efficiency", b.Brand, b.Efficiency); err != nil {
			return err
		}
	}
	return nil
}
