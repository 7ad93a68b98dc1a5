package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nao1215/storestats/internal/analysis"
	"github.com/nao1215/storestats/internal/dataset"
	"github.com/nao1215/storestats/internal/model"
)

// Default limits used by DefaultPipeline.
const (
	// DefaultTopN is the length of the best-selling and efficiency rankings.
	DefaultTopN = 5

	// DefaultPreviewRows is the number of records shown in the preview.
	DefaultPreviewRows = 5
)

// stepBase holds settings shared by every step.
type stepBase struct {
	logger *slog.Logger
}

// StepOption configures a step.
type StepOption func(*stepBase)

// WithStepLogger sets a custom logger for a step.
func WithStepLogger(logger *slog.Logger) StepOption {
	return func(b *stepBase) {
		b.logger = logger
	}
}

func newStepBase(opts []StepOption) stepBase {
	b := stepBase{}
	for _, opt := range opts {
		opt(&b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	return b
}

// fail marks the section failed and returns err for the pipeline to record.
func (b stepBase) fail(section *model.Section, err error) error {
	section.Fail(err)
	b.logger.Debug("section failed", "section", section.Key, "error", err)
	return err
}

// require checks reqs against ds. When they are not met the section is marked
// skipped and require returns false.
func (b stepBase) require(ds *dataset.Dataset, section *model.Section, reqs ...dataset.Requirement) bool {
	err := ds.Check(reqs...)
	if err == nil {
		return true
	}

	var mce *dataset.MissingColumnsError
	if !errors.As(err, &mce) {
		section.Skip(err.Error(), nil, nil)
		return false
	}
	section.Skip(mce.Error(), mce.Missing, mce.NotNumeric)
	b.logger.Info("section skipped",
		"section", section.Key,
		"reason", mce.Error(),
	)
	return false
}

// OverviewStep records the row count, column summaries and preview rows.
// It adds no section.
type OverviewStep struct {
	stepBase
	previewRows int
}

// NewOverviewStep creates an overview step showing previewRows records.
func NewOverviewStep(previewRows int, opts ...StepOption) *OverviewStep {
	return &OverviewStep{stepBase: newStepBase(opts), previewRows: previewRows}
}

// Name returns the step name.
func (s *OverviewStep) Name() string {
	return "overview"
}

// Do executes the overview step.
func (s *OverviewStep) Do(_ context.Context, ds *dataset.Dataset, report *model.Report) error {
	report.Rows = ds.Rows()
	report.Columns = analysis.DescribeAll(ds)
	report.Preview = model.Preview{
		Header: ds.ColumnNames(),
		Rows:   ds.Head(s.previewRows),
	}
	return nil
}

// AverageRatingStep computes the mean product rating.
type AverageRatingStep struct {
	stepBase
}

// NewAverageRatingStep creates an average rating step.
func NewAverageRatingStep(opts ...StepOption) *AverageRatingStep {
	return &AverageRatingStep{stepBase: newStepBase(opts)}
}

// Name returns the step name.
func (s *AverageRatingStep) Name() string {
	return model.SectionAverageRating
}

// Do executes the average rating step.
func (s *AverageRatingStep) Do(_ context.Context, ds *dataset.Dataset, report *model.Report) error {
	section := model.NewSection(model.SectionAverageRating, "Average product rating")
	defer report.AddSection(section)

	if !s.require(ds, section, dataset.Numeric(dataset.ColumnRating)) {
		return nil
	}

	mean, n := analysis.Mean(ds.MustColumn(dataset.ColumnRating))
	if n == 0 {
		section.MarkNoData()
		return nil
	}
	if err := analysis.CheckFinite("mean "+dataset.ColumnRating, "", mean); err != nil {
		return s.fail(section, err)
	}
	section.AverageRating = &model.RatingSummary{Mean: mean, Count: n}
	return nil
}

// MostFrequentBrandStep finds the brand with the most products.
type MostFrequentBrandStep struct {
	stepBase
}

// NewMostFrequentBrandStep creates a most frequent brand step.
func NewMostFrequentBrandStep(opts ...StepOption) *MostFrequentBrandStep {
	return &MostFrequentBrandStep{stepBase: newStepBase(opts)}
}

// Name returns the step name.
func (s *MostFrequentBrandStep) Name() string {
	return model.SectionMostFrequentBrand
}

// Do executes the most frequent brand step.
func (s *MostFrequentBrandStep) Do(_ context.Context, ds *dataset.Dataset, report *model.Report) error {
	section := model.NewSection(model.SectionMostFrequentBrand, "Most frequent brand")
	defer report.AddSection(section)

	if !s.require(ds, section, dataset.Text(dataset.ColumnBrand)) {
		return nil
	}

	brand, count, ok := analysis.Mode(ds.MustColumn(dataset.ColumnBrand))
	if !ok {
		section.MarkNoData()
		return nil
	}
	section.MostFrequentBrand = &model.BrandFrequency{Brand: brand, Count: count}
	return nil
}

// BestSellingBrandStep ranks brands by total units sold.
type BestSellingBrandStep struct {
	stepBase
	top int
}

// NewBestSellingBrandStep creates a best-selling brand step listing the top brands.
func NewBestSellingBrandStep(top int, opts ...StepOption) *BestSellingBrandStep {
	return &BestSellingBrandStep{stepBase: newStepBase(opts), top: top}
}

// Name returns the step name.
func (s *BestSellingBrandStep) Name() string {
	return model.SectionBestSellingBrand
}

// Do executes the best-selling brand step.
func (s *BestSellingBrandStep) Do(_ context.Context, ds *dataset.Dataset, report *model.Report) error {
	section := model.NewSection(model.SectionBestSellingBrand, "Best-selling brand")
	defer report.AddSection(section)

	if !s.require(ds, section,
		dataset.Text(dataset.ColumnBrand),
		dataset.Numeric(dataset.ColumnQuantitySold),
	) {
		return nil
	}

	totals := analysis.SumBy(ds.MustColumn(dataset.ColumnBrand), ds.MustColumn(dataset.ColumnQuantitySold))
	if len(totals) == 0 {
		section.MarkNoData()
		return nil
	}
	if err := analysis.CheckTotals("total "+dataset.ColumnQuantitySold, totals); err != nil {
		return s.fail(section, err)
	}
	section.BestSelling = &model.SalesRanking{
		Top:     totals[0],
		Ranking: analysis.TopN(totals, s.top),
		Limit:   s.top,
		Groups:  len(totals),
	}
	return nil
}

// CategoryRatingStep averages ratings per category.
type CategoryRatingStep struct {
	stepBase
}

// NewCategoryRatingStep creates a rating per category step.
func NewCategoryRatingStep(opts ...StepOption) *CategoryRatingStep {
	return &CategoryRatingStep{stepBase: newStepBase(opts)}
}

// Name returns the step name.
func (s *CategoryRatingStep) Name() string {
	return model.SectionCategoryRating
}

// Do executes the rating per category step.
func (s *CategoryRatingStep) Do(_ context.Context, ds *dataset.Dataset, report *model.Report) error {
	section := model.NewSection(model.SectionCategoryRating, "Average rating per category")
	defer report.AddSection(section)

	if !s.require(ds, section,
		dataset.Text(dataset.ColumnCategory),
		dataset.Numeric(dataset.ColumnRating),
	) {
		return nil
	}

	means := analysis.MeanBy(ds.MustColumn(dataset.ColumnCategory), ds.MustColumn(dataset.ColumnRating))
	if len(means) == 0 {
		section.MarkNoData()
		return nil
	}
	if err := analysis.CheckMeans("mean "+dataset.ColumnRating, means); err != nil {
		return s.fail(section, err)
	}
	section.CategoryRatings = means
	return nil
}

// ColorPopularityStep sums units sold per color.
type ColorPopularityStep struct {
	stepBase
}

// NewColorPopularityStep creates a color popularity step.
func NewColorPopularityStep(opts ...StepOption) *ColorPopularityStep {
	return &ColorPopularityStep{stepBase: newStepBase(opts)}
}

// Name returns the step name.
func (s *ColorPopularityStep) Name() string {
	return model.SectionColorPopularity
}

// Do executes the color popularity step.
func (s *ColorPopularityStep) Do(_ context.Context, ds *dataset.Dataset, report *model.Report) error {
	section := model.NewSection(model.SectionColorPopularity, "Sales popularity per color (total sold)")
	defer report.AddSection(section)

	if !s.require(ds, section,
		dataset.Text(dataset.ColumnColor),
		dataset.Numeric(dataset.ColumnQuantitySold),
	) {
		return nil
	}

	totals := analysis.SumBy(ds.MustColumn(dataset.ColumnColor), ds.MustColumn(dataset.ColumnQuantitySold))
	if len(totals) == 0 {
		section.MarkNoData()
		return nil
	}
	if err := analysis.CheckTotals("total "+dataset.ColumnQuantitySold, totals); err != nil {
		return s.fail(section, err)
	}
	section.ColorPopularity = totals
	return nil
}

// BrandEfficiencyStep ranks brands by how much of their stock they sell.
type BrandEfficiencyStep struct {
	stepBase
	top int
}

// NewBrandEfficiencyStep creates a brand efficiency step listing the top brands.
func NewBrandEfficiencyStep(top int, opts ...StepOption) *BrandEfficiencyStep {
	return &BrandEfficiencyStep{stepBase: newStepBase(opts), top: top}
}

// Name returns the step name.
func (s *BrandEfficiencyStep) Name() string {
	return model.SectionBrandEfficiency
}

// Do executes the brand efficiency step.
func (s *BrandEfficiencyStep) Do(_ context.Context, ds *dataset.Dataset, report *model.Report) error {
	section := model.NewSection(model.SectionBrandEfficiency, fmt.Sprintf("Top %d most efficient brands", s.top))
	defer report.AddSection(section)

	if !s.require(ds, section,
		dataset.Text(dataset.ColumnBrand),
		dataset.Numeric(dataset.ColumnQuantitySold),
		dataset.Numeric(dataset.ColumnQuantityInStock),
	) {
		return nil
	}

	ranking := analysis.BrandEfficiency(
		ds.MustColumn(dataset.ColumnBrand),
		ds.MustColumn(dataset.ColumnQuantitySold),
		ds.MustColumn(dataset.ColumnQuantityInStock),
	)
	if len(ranking) == 0 {
		section.MarkNoData()
		return nil
	}
	if err := analysis.CheckEfficiency(
		"total "+dataset.ColumnQuantitySold,
		"total "+dataset.ColumnQuantityInStock,
		ranking,
	); err != nil {
		return s.fail(section, err)
	}
	section.Efficiency = &model.EfficiencyRanking{
		Top:    analysis.TopN(ranking, s.top),
		Brands: len(ranking),
	}
	return nil
}

// DefaultPipelineConfig holds configuration for the default pipeline.
type DefaultPipelineConfig struct {
	// TopN is the length of the best-selling and efficiency rankings.
	TopN int

	// PreviewRows is the number of records in the dataset preview.
	PreviewRows int
}

// DefaultPipelineOption configures a DefaultPipelineConfig.
type DefaultPipelineOption func(*DefaultPipelineConfig)

// WithPipelineTopN sets the ranking length.
func WithPipelineTopN(n int) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.TopN = n
	}
}

// WithPipelinePreviewRows sets the number of preview records.
func WithPipelinePreviewRows(n int) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.PreviewRows = n
	}
}

// DefaultPipeline creates a pipeline with every report step in report order.
//
// The first parameter accepts pipeline options (WithLogger, etc).
// The variadic parameter accepts pipeline config options (WithPipelineTopN, etc).
func DefaultPipeline(pipelineOpts []Option, configOpts ...DefaultPipelineOption) *Pipeline {
	p := New(pipelineOpts...)

	cfg := &DefaultPipelineConfig{
		TopN:        DefaultTopN,
		PreviewRows: DefaultPreviewRows,
	}
	for _, opt := range configOpts {
		opt(cfg)
	}

	stepOpts := []StepOption{WithStepLogger(p.logger)}

	p.AddSteps(
		NewOverviewStep(cfg.PreviewRows, stepOpts...),
		NewAverageRatingStep(stepOpts...),
		NewMostFrequentBrandStep(stepOpts...),
		NewBestSellingBrandStep(cfg.TopN, stepOpts...),
		NewCategoryRatingStep(stepOpts...),
		NewColorPopularityStep(stepOpts...),
		NewBrandEfficiencyStep(cfg.TopN, stepOpts...),
	)

	return p
}
