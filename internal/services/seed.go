package services

import (
	"time"

	"demotrack/internal/models"
)

// SampleCustomers returns the built-in accounts used to populate the
// dashboard on first run. Sale demo ids line up with the bundled demo
// catalog CSV.
func SampleCustomers() []models.CustomerProfile {
	return []models.CustomerProfile{
		{
			ID:       "1",
			Company:  "TechCorp Industries",
			Industry: "Manufacturing",
			Size:     "1000-5000",
			Budget:   "$100k-500k",
			Website:  "techcorp.com",
			Status:   models.StatusActive,
			PainPoints: []string{
				"Legacy system integration issues",
				"Scalability challenges",
				"Data security concerns",
			},
			Requirements: []string{
				"Cloud deployment",
				"Real-time analytics",
				"Mobile access",
				"Enterprise-grade security",
			},
			Stakeholders: []models.Stakeholder{
				{
					ID:        "s1",
					Name:      "John Smith",
					Role:      "CTO",
					Influence: models.InfluenceDecisionMaker,
					Email:     "john.smith@techcorp.com",
					Phone:     "(555) 123-4567",
					Notes:     "Primary technical contact",
				},
				{
					ID:        "s2",
					Name:      "Sarah Johnson",
					Role:      "IT Director",
					Influence: models.InfluenceTechnicalEvaluator,
					Email:     "sarah.j@techcorp.com",
					Notes:     "Focused on security requirements",
				},
			},
			CurrentSolution: "Legacy on-premise system",
			Timeline:        "Q2 2024",
			Notes:           "High-priority prospect with immediate needs",
			LastContact:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			Revenue: models.RevenueLedger{
				Sales: []models.SaleRecord{
					{
						ID:          "s1",
						DemoID:      "d1",
						ProductName: "Enterprise License",
						Amount:      150000,
						Quantity:    1,
						Date:        time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
						Notes:       "Annual enterprise license with support",
					},
					{
						ID:          "s2",
						DemoID:      "d2",
						ProductName: "Department Licenses",
						Amount:      75000,
						Quantity:    5,
						Date:        time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
						Notes:       "Expansion to marketing and sales departments",
					},
				},
				TotalAmount: 225000,
				LastUpdated: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			ID:       "2",
			Company:  "Global Solutions Ltd",
			Industry: "Technology",
			Size:     "500-1000",
			Budget:   "$50k-100k",
			Website:  "globalsolutions.io",
			Status:   models.StatusProspect,
			PainPoints: []string{
				"High operational costs",
				"Manual process inefficiencies",
				"Limited visibility into metrics",
			},
			Requirements: []string{
				"Cost optimization tools",
				"Process automation",
				"Advanced reporting",
				"Integration capabilities",
			},
			Stakeholders: []models.Stakeholder{
				{
					ID:        "s3",
					Name:      "Michael Chang",
					Role:      "COO",
					Influence: models.InfluenceDecisionMaker,
					Email:     "m.chang@globalsolutions.io",
					Phone:     "(555) 987-6543",
					Notes:     "Interested in operational efficiency gains",
				},
				{
					ID:        "s4",
					Name:      "Emma Wilson",
					Role:      "Finance Director",
					Influence: models.InfluenceFinancialApprover,
					Email:     "e.wilson@globalsolutions.io",
					Notes:     "Focused on ROI and cost savings",
				},
			},
			CurrentSolution: "Multiple disconnected tools",
			Timeline:        "Q3 2024",
			Notes:           "Looking for comprehensive solution to replace current tech stack",
			LastContact:     time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			Revenue: models.RevenueLedger{
				Sales: []models.SaleRecord{
					{
						ID:          "s3",
						DemoID:      "d3",
						ProductName: "Professional License",
						Amount:      45000,
						Quantity:    3,
						Date:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
						Notes:       "Initial deployment for core team",
					},
				},
				TotalAmount: 45000,
				LastUpdated: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			},
		},
	}
}
