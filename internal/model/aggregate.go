package model

// RatingSummary is the result of the average rating analysis.
type RatingSummary struct {
	// Mean is the arithmetic mean of the non-null ratings.
	Mean float64 `json:"mean"`

	// Count is the number of ratings averaged.
	Count int `json:"count"`
}

// BrandFrequency is the most frequent brand and its number of products.
type BrandFrequency struct {
	Brand string `json:"brand"`
	Count int    `json:"count"`
}

// GroupTotal is the sum of a value over one group.
type GroupTotal struct {
	Key   string  `json:"key"`
	Total float64 `json:"total"`
}

// GroupMean is the mean of a value over one group.
type GroupMean struct {
	Key  string  `json:"key"`
	Mean float64 `json:"mean"`

	// Count is the number of non-null values averaged.
	Count int `json:"count"`
}

// SalesRanking is the result of the best-selling brand analysis.
type SalesRanking struct {
	// Top is the brand with the highest total.
	Top GroupTotal `json:"top"`

	// Ranking holds the leading brands in descending order.
	Ranking []GroupTotal `json:"ranking"`

	// Limit is the requested length of Ranking.
	Limit int `json:"limit"`

	// Groups is the number of distinct brands.
	Groups int `json:"groups"`
}

// BrandAggregate holds the stock figures of one brand.
type BrandAggregate struct {
	Brand string  `json:"brand"`
	Sold  float64 `json:"sold"`
	Stock float64 `json:"stock"`

	// Surplus is max(0, Stock - Sold).
	Surplus float64 `json:"surplus"`

	// Efficiency is Sold / (Sold + Surplus), or 0 when the denominator is not positive.
	Efficiency float64 `json:"efficiency"`
}

// EfficiencyRanking is the result of the brand efficiency analysis.
type EfficiencyRanking struct {
	// Top holds the most efficient brands in descending order.
	Top []BrandAggregate `json:"top"`

	// Brands is the number of distinct brands.
	Brands int `json:"brands"`
}
