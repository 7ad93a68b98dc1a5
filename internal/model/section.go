package model

import "fmt"

// Section keys, one per analysis.
const (
	SectionAverageRating     = "average_rating"
	SectionMostFrequentBrand = "most_frequent_brand"
	SectionBestSellingBrand  = "best_selling_brand"
	SectionCategoryRating    = "category_rating"
	SectionColorPopularity   = "color_popularity"
	SectionBrandEfficiency   = "brand_efficiency"
)

// SectionStatus is the outcome of an analysis.
type SectionStatus int

const (
	// StatusOK means the analysis produced a result.
	StatusOK SectionStatus = iota

	// StatusSkipped means required columns were missing or not numeric.
	StatusSkipped

	// StatusNoData means the columns exist but hold no usable values.
	StatusNoData

	// StatusFailed means the analysis ran but its result could not be used.
	StatusFailed
)

// String returns the status name.
func (s SectionStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusSkipped:
		return "skipped"
	case StatusNoData:
		return "no_data"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status as its name.
func (s SectionStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name.
func (s *SectionStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "ok":
		*s = StatusOK
	case "skipped":
		*s = StatusSkipped
	case "no_data":
		*s = StatusNoData
	case "failed":
		*s = StatusFailed
	default:
		return fmt.Errorf("unknown section status %q", text)
	}
	return nil
}

// Section is one numbered analysis of a report.
// At most one result field is set, and only when Status is StatusOK.
type Section struct {
	// Number is the 1-based position in the report, set by Report.AddSection.
	Number int `json:"number"`

	// Key identifies the analysis.
	Key string `json:"key"`

	// Title is the heading printed for the section.
	Title string `json:"title"`

	// Status is the outcome.
	Status SectionStatus `json:"status"`

	// Reason explains a skipped or failed section, e.g. "column 'rating' not found".
	Reason string `json:"reason,omitempty"`

	// Missing lists required columns that are absent.
	Missing []string `json:"missing,omitempty"`

	// NotNumeric lists required columns that are present but not numeric.
	NotNumeric []string `json:"not_numeric,omitempty"`

	AverageRating     *RatingSummary     `json:"average_rating,omitempty"`
	MostFrequentBrand *BrandFrequency    `json:"most_frequent_brand,omitempty"`
	BestSelling       *SalesRanking      `json:"best_selling,omitempty"`
	CategoryRatings   []GroupMean        `json:"category_ratings,omitempty"`
	ColorPopularity   []GroupTotal       `json:"color_popularity,omitempty"`
	Efficiency        *EfficiencyRanking `json:"efficiency,omitempty"`
}

// NewSection creates a section with status StatusOK.
func NewSection(key, title string) *Section {
	return &Section{Key: key, Title: title, Status: StatusOK}
}

// Skip marks the section as skipped for the given missing and non-numeric
// columns. reason is the message printed in place of the result.
func (s *Section) Skip(reason string, missing, notNumeric []string) {
	s.Status = StatusSkipped
	s.Reason = reason
	s.Missing = missing
	s.NotNumeric = notNumeric
}

// Fail marks the section as failed and drops any partial result.
func (s *Section) Fail(err error) {
	s.Status = StatusFailed
	s.Reason = err.Error()
	s.AverageRating = nil
	s.MostFrequentBrand = nil
	s.BestSelling = nil
	s.CategoryRatings = nil
	s.ColorPopularity = nil
	s.Efficiency = nil
}

// MarkNoData marks the section as having no usable values.
func (s *Section) MarkNoData() {
	s.Status = StatusNoData
}

// Diagnostic returns the text printed in place of a result, or "" for a
// section with a result.
func (s *Section) Diagnostic() string {
	switch s.Status {
	case StatusSkipped, StatusFailed:
		return s.Reason
	case StatusNoData:
		return "no data"
	default:
		return ""
	}
}
