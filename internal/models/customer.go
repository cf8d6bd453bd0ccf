package models

import "time"

type CustomerStatus string

const (
	StatusActive     CustomerStatus = "Active"
	StatusProspect   CustomerStatus = "Prospect"
	StatusClosedWon  CustomerStatus = "Closed Won"
	StatusClosedLost CustomerStatus = "Closed Lost"
)

type InfluenceTier string

const (
	InfluenceDecisionMaker      InfluenceTier = "Decision Maker"
	InfluenceTechnicalEvaluator InfluenceTier = "Technical Evaluator"
	InfluenceEndUser            InfluenceTier = "End User"
	InfluenceFinancialApprover  InfluenceTier = "Financial Approver"
)

// Stakeholder is a contact inside a customer account. It has no lifecycle
// of its own; it lives and dies with its profile.
type Stakeholder struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Role      string        `json:"role"`
	Influence InfluenceTier `json:"influence"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone,omitempty"`
	Notes     string        `json:"notes,omitempty"`
}

// SaleRecord is append-only: once written into a ledger it is never
// updated or removed. DemoID is a loose reference into the demo catalog
// and is not checked for existence.
type SaleRecord struct {
	ID          string    `json:"id"`
	DemoID      string    `json:"demo_id"`
	ProductName string    `json:"product_name"`
	Amount      float64   `json:"amount"`
	Quantity    int       `json:"quantity"`
	Date        time.Time `json:"date"`
	Notes       string    `json:"notes,omitempty"`
}

// RevenueLedger keeps a customer's sales in insertion order together
// with a cached total. TotalAmount must equal the sum of all sale
// amounts after every mutation.
type RevenueLedger struct {
	Sales       []SaleRecord `json:"sales"`
	TotalAmount float64      `json:"total_amount"`
	LastUpdated time.Time    `json:"last_updated"`
}

type CustomerProfile struct {
	ID              string         `json:"id"`
	Company         string         `json:"company"`
	Industry        string         `json:"industry"`
	Size            string         `json:"size"`
	Budget          string         `json:"budget"`
	Website         string         `json:"website"`
	Status          CustomerStatus `json:"status"`
	PainPoints      []string       `json:"pain_points"`
	Requirements    []string       `json:"requirements"`
	Stakeholders    []Stakeholder  `json:"stakeholders"`
	CurrentSolution string         `json:"current_solution,omitempty"`
	Timeline        string         `json:"timeline"`
	Notes           string         `json:"notes"`
	LastContact     time.Time      `json:"last_contact"`
	Revenue         RevenueLedger  `json:"revenue"`
}
