package services

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"demotrack/internal/models"
	"github.com/google/uuid"
)

// CustomerInput carries the caller-supplied fields for a new profile.
// The id and the revenue ledger are always assigned by the store.
type CustomerInput struct {
	Company         string                `json:"company"`
	Industry        string                `json:"industry"`
	Size            string                `json:"size"`
	Budget          string                `json:"budget"`
	Website         string                `json:"website"`
	Status          models.CustomerStatus `json:"status"`
	PainPoints      []string              `json:"pain_points"`
	Requirements    []string              `json:"requirements"`
	Stakeholders    []models.Stakeholder  `json:"stakeholders"`
	CurrentSolution string                `json:"current_solution"`
	Timeline        string                `json:"timeline"`
	Notes           string                `json:"notes"`
	LastContact     time.Time             `json:"last_contact"`
}

// CustomerUpdate is a partial update; nil fields are left untouched.
// The revenue ledger is deliberately absent: AddDemoRevenue is the only
// way to change it.
type CustomerUpdate struct {
	Company         *string                `json:"company"`
	Industry        *string                `json:"industry"`
	Size            *string                `json:"size"`
	Budget          *string                `json:"budget"`
	Website         *string                `json:"website"`
	Status          *models.CustomerStatus `json:"status"`
	PainPoints      *[]string              `json:"pain_points"`
	Requirements    *[]string              `json:"requirements"`
	Stakeholders    *[]models.Stakeholder  `json:"stakeholders"`
	CurrentSolution *string                `json:"current_solution"`
	Timeline        *string                `json:"timeline"`
	Notes           *string                `json:"notes"`
	LastContact     *time.Time             `json:"last_contact"`
}

// Ledger owns the customer collection. Every mutation builds a fresh
// snapshot slice and swaps it in under the lock, so readers always see a
// complete, consistent collection and never a half-applied write.
type Ledger struct {
	mu           sync.RWMutex
	customers    []models.CustomerProfile
	selectedID   string
	lastMutation time.Time
	logger       *slog.Logger
}

func NewLedger() *Ledger {
	return &Ledger{
		customers: []models.CustomerProfile{},
		logger:    slog.Default(),
	}
}

// Customers returns the current snapshot. Callers must not mutate it.
func (l *Ledger) Customers() []models.CustomerProfile {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.customers
}

// Customer looks up one profile by id.
func (l *Ledger) Customer(id string) (models.CustomerProfile, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return findCustomer(l.customers, id)
}

// SetData replaces the collection wholesale. Cached totals are
// recomputed from the raw sales so seeded data cannot smuggle in drift.
func (l *Ledger) SetData(customers []models.CustomerProfile) {
	next := slices.Clone(customers)
	for i := range next {
		next[i].Revenue.TotalAmount = sumSales(next[i].Revenue.Sales)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.customers = next
	l.lastMutation = time.Now()
}

// AddCustomer stores a new profile with a fresh id and an empty revenue
// ledger. It never fails for well-formed input.
func (l *Ledger) AddCustomer(input CustomerInput) models.CustomerProfile {
	now := time.Now()

	stakeholders := slices.Clone(input.Stakeholders)
	for i := range stakeholders {
		if stakeholders[i].ID == "" {
			stakeholders[i].ID = uuid.NewString()
		}
	}

	profile := models.CustomerProfile{
		ID:              uuid.NewString(),
		Company:         input.Company,
		Industry:        input.Industry,
		Size:            input.Size,
		Budget:          input.Budget,
		Website:         input.Website,
		Status:          input.Status,
		PainPoints:      input.PainPoints,
		Requirements:    input.Requirements,
		Stakeholders:    stakeholders,
		CurrentSolution: input.CurrentSolution,
		Timeline:        input.Timeline,
		Notes:           input.Notes,
		LastContact:     input.LastContact,
		Revenue: models.RevenueLedger{
			Sales:       []models.SaleRecord{},
			TotalAmount: 0,
			LastUpdated: now,
		},
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	next := make([]models.CustomerProfile, 0, len(l.customers)+1)
	next = append(next, l.customers...)
	next = append(next, profile)
	l.customers = next
	l.lastMutation = now

	l.logger.Info("customer added", "customer_id", profile.ID, "company", profile.Company)
	return profile
}

// UpdateCustomer merges the non-nil fields of update into the matching
// profile. An unknown id leaves the snapshot untouched and reports
// ok=false; the revenue ledger is never affected.
func (l *Ledger) UpdateCustomer(id string, update CustomerUpdate) (models.CustomerProfile, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := slices.IndexFunc(l.customers, func(c models.CustomerProfile) bool {
		return c.ID == id
	})
	if idx < 0 {
		return models.CustomerProfile{}, false
	}

	next := slices.Clone(l.customers)
	merged := applyUpdate(next[idx], update)
	next[idx] = merged

	l.customers = next
	l.lastMutation = time.Now()

	return merged, true
}

func applyUpdate(profile models.CustomerProfile, update CustomerUpdate) models.CustomerProfile {
	if update.Company != nil {
		profile.Company = *update.Company
	}
	if update.Industry != nil {
		profile.Industry = *update.Industry
	}
	if update.Size != nil {
		profile.Size = *update.Size
	}
	if update.Budget != nil {
		profile.Budget = *update.Budget
	}
	if update.Website != nil {
		profile.Website = *update.Website
	}
	if update.Status != nil {
		profile.Status = *update.Status
	}
	if update.PainPoints != nil {
		profile.PainPoints = *update.PainPoints
	}
	if update.Requirements != nil {
		profile.Requirements = *update.Requirements
	}
	if update.Stakeholders != nil {
		profile.Stakeholders = *update.Stakeholders
	}
	if update.CurrentSolution != nil {
		profile.CurrentSolution = *update.CurrentSolution
	}
	if update.Timeline != nil {
		profile.Timeline = *update.Timeline
	}
	if update.Notes != nil {
		profile.Notes = *update.Notes
	}
	if update.LastContact != nil {
		profile.LastContact = *update.LastContact
	}
	return profile
}

// AddDemoRevenue appends a sale attributed to demoID onto the matching
// customer's ledger. The cached total is recomputed from the full sale
// list rather than incremented, so it cannot drift. An unknown id
// leaves the snapshot untouched and reports ok=false.
func (l *Ledger) AddDemoRevenue(customerID, demoID string, amount float64, categoryLabel string) (models.CustomerProfile, bool) {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	idx := slices.IndexFunc(l.customers, func(c models.CustomerProfile) bool {
		return c.ID == customerID
	})
	if idx < 0 {
		return models.CustomerProfile{}, false
	}

	sale := models.SaleRecord{
		ID:          uuid.NewString(),
		DemoID:      demoID,
		ProductName: categoryLabel + " Package",
		Amount:      amount,
		Quantity:    1,
		Date:        now,
		Notes:       "Sale from " + categoryLabel + " demo",
	}

	next := slices.Clone(l.customers)
	profile := next[idx]

	sales := append(slices.Clone(profile.Revenue.Sales), sale)
	profile.Revenue = models.RevenueLedger{
		Sales:       sales,
		TotalAmount: sumSales(sales),
		LastUpdated: now,
	}
	next[idx] = profile

	l.customers = next
	l.lastMutation = now

	l.logger.Info("demo revenue recorded",
		"customer_id", customerID,
		"demo_id", demoID,
		"amount", amount)
	return profile, true
}

func sumSales(sales []models.SaleRecord) float64 {
	var total float64
	for _, s := range sales {
		total += s.Amount
	}
	return total
}

// SelectCustomer sets the focused customer for detail views. The id is
// stored as-is, without validation.
func (l *Ledger) SelectCustomer(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.selectedID = id
}

func (l *Ledger) ClearSelection() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.selectedID = ""
}

// SelectedCustomer resolves the focused id against the current
// snapshot. A stale or empty selection reports ok=false.
func (l *Ledger) SelectedCustomer() (models.CustomerProfile, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.selectedID == "" {
		return models.CustomerProfile{}, false
	}
	return findCustomer(l.customers, l.selectedID)
}

func findCustomer(customers []models.CustomerProfile, id string) (models.CustomerProfile, bool) {
	for _, c := range customers {
		if c.ID == id {
			return c, true
		}
	}
	return models.CustomerProfile{}, false
}

// Stats reports ledger size for the admin endpoint.
func (l *Ledger) Stats() map[string]any {
	l.mu.RLock()
	defer l.mu.RUnlock()

	sales := 0
	for _, c := range l.customers {
		sales += len(c.Revenue.Sales)
	}

	return map[string]any{
		"customers":     len(l.customers),
		"sales":         sales,
		"selected_id":   l.selectedID,
		"last_mutation": l.lastMutation,
	}
}
