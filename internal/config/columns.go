package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/nao1215/storestats/internal/dataset"
)

// ValidateColumns checks that every alias key is a column the report uses
// and that every alias points at a non-empty header.
func ValidateColumns(columns map[string]string) error {
	keys := make([]string, 0, len(columns))
	for k := range columns {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, canonical := range keys {
		if !slices.Contains(dataset.KnownColumns, canonical) {
			return fmt.Errorf("%w: %q (known columns: %s)",
				ErrUnknownColumnAlias, canonical, strings.Join(dataset.KnownColumns, ", "))
		}
		if strings.TrimSpace(columns[canonical]) == "" {
			return fmt.Errorf("%w: %q maps to an empty header", ErrUnknownColumnAlias, canonical)
		}
	}
	return nil
}
