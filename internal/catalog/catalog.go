package catalog

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"demotrack/internal/models"
	"golang.org/x/sync/errgroup"
)

const (
	batchSize  = 10000
	maxWorkers = 10
)

// Catalog supplies the immutable demo records and the static category
// taxonomy. Everything downstream treats it as read-only; the only
// writers are LoadFromCSV at startup and SetData in tests.
type Catalog struct {
	demos      []models.DemoRecord
	categories []models.DemoCategory
	loadedAt   time.Time
	logger     *slog.Logger
}

func New() *Catalog {
	return &Catalog{
		categories: defaultCategories(),
		logger:     slog.Default(),
	}
}

// defaultCategories enumerates the demo taxonomy. The set is fixed at
// process start; there is no runtime mutation path.
func defaultCategories() []models.DemoCategory {
	return []models.DemoCategory{
		{
			Key:         "virtual",
			Name:        "Virtual",
			Description: "Remote product walkthrough over video call",
			Duration:    "1 hour",
			Capacity:    "Up to 50",
		},
		{
			Key:         "nexus",
			Name:        "Nexus",
			Description: "Regional hub event with multiple prospects",
			Duration:    "Half day",
			Capacity:    "Up to 100",
		},
		{
			Key:         "on-site",
			Name:        "On-site",
			Description: "Weekly demo slots at our headquarters",
			Duration:    "2 hours",
			Capacity:    "Up to 20",
		},
		{
			Key:         "on-location",
			Name:        "On-location",
			Description: "Premium demo delivered at the customer site",
			Duration:    "Full day",
			Capacity:    "Up to 15",
		},
	}
}

// Categories returns the taxonomy in its fixed display order.
func (c *Catalog) Categories() []models.DemoCategory {
	return c.categories
}

// Demos returns the demo records in file order. Callers must not mutate
// the returned slice.
func (c *Catalog) Demos() []models.DemoRecord {
	return c.demos
}

// SetData replaces the demo records directly, bypassing the CSV path.
func (c *Catalog) SetData(demos []models.DemoRecord) {
	c.demos = demos
	c.loadedAt = time.Now()
}

// LoadFromCSV reads demo records from filename. Rows that fail to parse
// are skipped; an empty result is an error because the dashboard has
// nothing to show.
func (c *Catalog) LoadFromCSV(ctx context.Context, filename string) error {
	start := time.Now()
	c.logger.Info("loading demo catalog", "filename", filename)

	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)

	// Skip header
	if !scanner.Scan() {
		return fmt.Errorf("empty file")
	}

	var demos []models.DemoRecord
	batch := make([]string, 0, batchSize)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		batch = append(batch, scanner.Text())

		if len(batch) >= batchSize {
			parsed, err := parseBatch(ctx, batch)
			if err != nil {
				return err
			}
			demos = append(demos, parsed...)
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		parsed, err := parseBatch(ctx, batch)
		if err != nil {
			return err
		}
		demos = append(demos, parsed...)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan error: %w", err)
	}

	if len(demos) == 0 {
		return fmt.Errorf("no valid records found")
	}

	c.demos = demos
	c.loadedAt = time.Now()

	c.logger.Info("demo catalog loaded",
		"records", len(demos),
		"duration", time.Since(start))
	return nil
}

// parseBatch parses lines concurrently while keeping file order: each
// worker writes into its own index, invalid rows leave a hole.
func parseBatch(ctx context.Context, batch []string) ([]models.DemoRecord, error) {
	type parsed struct {
		demo  models.DemoRecord
		valid bool
	}
	results := make([]parsed, len(batch))

	var wg errgroup.Group
	wg.SetLimit(maxWorkers)

	for i, line := range batch {
		wg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			demo, err := parseDemoRecord(strings.Split(line, ","))
			if err != nil {
				return nil // Skip invalid records
			}
			results[i] = parsed{demo: demo, valid: true}
			return nil
		})
	}

	if err := wg.Wait(); err != nil {
		return nil, err
	}

	demos := make([]models.DemoRecord, 0, len(results))
	for _, r := range results {
		if r.valid {
			demos = append(demos, r.demo)
		}
	}
	return demos, nil
}

func parseDemoRecord(record []string) (models.DemoRecord, error) {
	if len(record) < 4 {
		return models.DemoRecord{}, fmt.Errorf("insufficient columns")
	}

	date, err := time.Parse("2006-01-02", strings.TrimSpace(record[1]))
	if err != nil {
		return models.DemoRecord{}, err
	}

	attendees, err := strconv.Atoi(strings.TrimSpace(record[3]))
	if err != nil {
		return models.DemoRecord{}, err
	}
	if attendees < 0 {
		return models.DemoRecord{}, fmt.Errorf("negative attendees")
	}

	return models.DemoRecord{
		ID:        strings.TrimSpace(record[0]),
		Date:      date,
		Location:  strings.TrimSpace(record[2]),
		Attendees: attendees,
	}, nil
}

// Stats reports catalog size for the admin endpoint.
func (c *Catalog) Stats() map[string]any {
	return map[string]any{
		"demos":      len(c.demos),
		"categories": len(c.categories),
		"loaded_at":  c.loadedAt,
	}
}
