package models

import "time"

// DemoRecord is a scheduled product-demonstration event supplied by the
// demo catalog. Read-only everywhere outside the catalog.
type DemoRecord struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Location  string    `json:"location"`
	Attendees int       `json:"attendees"`
}

// DemoCategory describes one entry of the static demo taxonomy, fixed at
// process start.
type DemoCategory struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Capacity    string `json:"capacity"`
}

// MetricsSummary is the flat dashboard headline record. ConversionRate
// counts distinct demos that produced at least one sale.
type MetricsSummary struct {
	TotalDemos     int     `json:"total_demos"`
	AvgAttendees   int     `json:"avg_attendees"`
	DemosWithSales int     `json:"demos_with_sales"`
	ConversionRate int     `json:"conversion_rate"`
	TotalRevenue   float64 `json:"total_revenue"`
}

// CategoryPerformance is the per-category aggregate. Conversion counts
// sales with multiplicity, so a demo sold twice pushes the category rate
// above what the distinct-based global rate would show.
type CategoryPerformance struct {
	Key          string  `json:"key"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Duration     string  `json:"duration"`
	Capacity     string  `json:"capacity"`
	DemoCount    int     `json:"demo_count"`
	AvgAttendees int     `json:"avg_attendees"`
	Conversion   int     `json:"conversion"`
	Revenue      float64 `json:"revenue"`
}
