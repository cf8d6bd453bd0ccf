package services

import (
	"math"
	"strings"

	"demotrack/internal/catalog"
	"demotrack/internal/models"
)

// Analytics joins the demo catalog with the customer ledger to produce
// the dashboard metrics. It holds no state of its own: every call
// recomputes from the snapshots current at that moment, so two calls on
// an unchanged store return identical results.
type Analytics struct {
	catalog *catalog.Catalog
	ledger  *Ledger
}

func NewAnalytics(cat *catalog.Catalog, ledger *Ledger) *Analytics {
	return &Analytics{
		catalog: cat,
		ledger:  ledger,
	}
}

func (a *Analytics) Summary() models.MetricsSummary {
	return ComputeSummary(a.catalog.Demos(), a.ledger.Customers())
}

func (a *Analytics) CategoryPerformance() []models.CategoryPerformance {
	return ComputeCategoryPerformance(a.catalog.Categories(), a.catalog.Demos(), a.ledger.Customers())
}

// ComputeSummary derives the headline metrics from a pair of snapshots.
// The conversion rate counts each demo once no matter how many sales
// reference it; sale demo ids are not validated against the catalog, so
// a dangling reference still counts as a converted demo.
func ComputeSummary(demos []models.DemoRecord, customers []models.CustomerProfile) models.MetricsSummary {
	totalDemos := len(demos)

	attendeeSum := 0
	for _, d := range demos {
		attendeeSum += d.Attendees
	}

	soldDemos := make(map[string]struct{})
	var totalRevenue float64
	for _, c := range customers {
		for _, s := range c.Revenue.Sales {
			soldDemos[s.DemoID] = struct{}{}
		}
		// The ledger invariant guarantees the cached total matches the
		// raw sales, so it is trusted here instead of re-summed.
		totalRevenue += c.Revenue.TotalAmount
	}

	return models.MetricsSummary{
		TotalDemos:     totalDemos,
		AvgAttendees:   roundedAverage(attendeeSum, totalDemos),
		DemosWithSales: len(soldDemos),
		ConversionRate: roundedPercent(len(soldDemos), totalDemos),
		TotalRevenue:   totalRevenue,
	}
}

// ComputeCategoryPerformance derives one aggregate per taxonomy entry,
// in taxonomy order. Unlike the global rate, category conversion counts
// every matching sale, so a single demo sold twice can push a category
// past 100%.
func ComputeCategoryPerformance(categories []models.DemoCategory, demos []models.DemoRecord, customers []models.CustomerProfile) []models.CategoryPerformance {
	result := make([]models.CategoryPerformance, 0, len(categories))

	for _, cat := range categories {
		demoIDs := make(map[string]struct{})
		demoCount := 0
		attendeeSum := 0

		for _, d := range demos {
			if strings.ToLower(d.Location) != cat.Key {
				continue
			}
			demoIDs[d.ID] = struct{}{}
			demoCount++
			attendeeSum += d.Attendees
		}

		saleCount := 0
		var revenue float64
		for _, c := range customers {
			for _, s := range c.Revenue.Sales {
				if _, ok := demoIDs[s.DemoID]; ok {
					saleCount++
					revenue += s.Amount
				}
			}
		}

		result = append(result, models.CategoryPerformance{
			Key:          cat.Key,
			Name:         cat.Name,
			Description:  cat.Description,
			Duration:     cat.Duration,
			Capacity:     cat.Capacity,
			DemoCount:    demoCount,
			AvgAttendees: roundedAverage(attendeeSum, demoCount),
			Conversion:   roundedPercent(saleCount, demoCount),
			Revenue:      revenue,
		})
	}

	return result
}

// roundedAverage is 0 for an empty denominator rather than an error.
func roundedAverage(sum, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(count)))
}

func roundedPercent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

// Stats reports aggregate sizes for the admin endpoint.
func (a *Analytics) Stats() map[string]any {
	stats := a.ledger.Stats()
	for k, v := range a.catalog.Stats() {
		stats[k] = v
	}
	return stats
}
