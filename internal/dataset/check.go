package dataset

// Requirement is a column an analysis needs, together with the kind it
// must have.
type Requirement struct {
	// Name is the column name.
	Name string

	// Kind is the required kind. Every column satisfies KindText.
	Kind Kind
}

// Text requires a column usable as text.
func Text(name string) Requirement {
	return Requirement{Name: name, Kind: KindText}
}

// Numeric requires a numeric column.
func Numeric(name string) Requirement {
	return Requirement{Name: name, Kind: KindNumeric}
}

// Check verifies that every requirement is met.
// It returns nil, or a *MissingColumnsError listing each failed requirement
// in the order given.
func (d *Dataset) Check(reqs ...Requirement) error {
	var missing, notNumeric []string
	for _, req := range reqs {
		col, ok := d.Column(req.Name)
		if !ok {
			missing = append(missing, req.Name)
			continue
		}
		if req.Kind == KindNumeric && col.Kind != KindNumeric {
			notNumeric = append(notNumeric, req.Name)
		}
	}
	if len(missing) == 0 && len(notNumeric) == 0 {
		return nil
	}
	return &MissingColumnsError{Missing: missing, NotNumeric: notNumeric}
}

// MustColumn returns a column that a successful Check has already vouched for.
// It panics when the column is absent.
func (d *Dataset) MustColumn(name string) *Column {
	col, ok := d.Column(name)
	if !ok {
		panic("dataset: column " + name + " not found")
	}
	return col
}
