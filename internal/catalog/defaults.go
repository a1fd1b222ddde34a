package catalog

import (
	"github.com/n0roo/opsdash/internal/classifier"
	"github.com/n0roo/opsdash/internal/insight"
)

// Default returns the built-in catalog
func Default() *Catalog {
	c := &Catalog{
		Version:  CurrentVersion,
		Boards:   make(map[classifier.DashboardID]*Board),
		Insights: insight.DefaultEntries(),
	}

	boards := defaultBoards()
	for _, t := range classifier.DefaultRuleTables() {
		b := boards[t.Dashboard]
		b.DefaultKind = t.Default
		b.Rules = t.Rules
		c.Boards[t.Dashboard] = b
	}

	return c
}

func defaultBoards() map[classifier.DashboardID]*Board {
	return map[classifier.DashboardID]*Board{
		classifier.DashboardBiomedical: {
			Title: "Biomedical Assets",
			Cards: []Card{
				{Label: "Fleet Utilization", Value: "78", Unit: "%", Series: []float64{74, 76, 75, 79, 81, 78}},
				{Label: "Needs Repair", Value: "14", Series: []float64{8, 9, 10, 12, 13, 14}},
				{Label: "Lost Assets", Value: "7", Series: []float64{3, 4, 4, 5, 6, 7}},
				{Label: "PM Compliance", Value: "91", Unit: "%", Series: []float64{96, 95, 94, 93, 92, 91}},
			},
			Categories: []Category{
				{
					ID:    "infusion",
					Title: "Infusion Pumps",
					Cards: []Card{
						{Label: "Pump Utilization", Value: "61", Unit: "%", Series: []float64{70, 68, 66, 64, 62, 61}},
						{Label: "Idle > 48h", Value: "12", Series: []float64{5, 6, 8, 9, 11, 12}},
						{Label: "Pumps Missing", Value: "2", Series: []float64{0, 1, 1, 1, 2, 2}},
					},
				},
				{
					ID:    "critical-care",
					Title: "Critical Care Devices",
					Cards: []Card{
						{Label: "Ventilators Needing Repair", Value: "3", Series: []float64{1, 1, 2, 2, 3, 3}},
						{Label: "Open Work Orders", Value: "9", Series: []float64{4, 5, 6, 7, 8, 9}},
						{Label: "Preventive Maintenance Overdue", Value: "4", Series: []float64{1, 2, 2, 3, 3, 4}},
					},
				},
				{
					ID:    "recalls",
					Title: "Recalls & Alerts",
					Cards: []Card{
						{Label: "Open Recall Notices", Value: "2", Series: []float64{1, 1, 2, 2, 2, 2}},
					},
				},
			},
		},
		classifier.DashboardTransfusion: {
			Title: "Blood Bank",
			Cards: []Card{
				{Label: "O Neg Days of Supply", Value: "2.1", Unit: "days", Series: []float64{3.4, 3.1, 2.9, 2.6, 2.3, 2.1}},
				{Label: "Wastage Rate", Value: "4.8", Unit: "%", Series: []float64{2.9, 3.2, 3.6, 4.1, 4.5, 4.8}},
				{Label: "C:T Ratio", Value: "2.6", Series: []float64{2.1, 2.2, 2.4, 2.5, 2.5, 2.6}},
				{Label: "Response Time", Value: "7", Unit: "min", Series: []float64{8, 8, 7, 7, 7, 7}},
			},
			Categories: []Category{
				{
					ID:    "inventory",
					Title: "Inventory by Product",
					Cards: []Card{
						{Label: "RBC Inventory", Value: "212", Unit: "units", Series: []float64{240, 236, 228, 221, 215, 212}},
						{Label: "Platelet Inventory", Value: "18", Unit: "units", Series: []float64{22, 21, 20, 19, 18, 18}},
						{Label: "Units Expiring < 72h", Value: "19", Series: []float64{6, 8, 11, 14, 17, 19}},
					},
				},
				{
					ID:    "utilization",
					Title: "Ordering Practice",
					Cards: []Card{
						{Label: "Crossmatched Not Transfused", Value: "31", Series: []float64{20, 22, 25, 27, 29, 31}},
						{Label: "Emergency Release Count", Value: "5", Series: []float64{3, 4, 4, 6, 5, 5}},
						{Label: "Discarded Platelets", Value: "9", Series: []float64{3, 4, 5, 6, 8, 9}},
					},
				},
			},
		},
		classifier.DashboardLabMedicine: {
			Title: "Lab Medicine",
			Cards: []Card{
				{Label: "Specimens In Transit", Value: "146", Series: []float64{120, 131, 128, 140, 152, 146}},
				{Label: "Chain of Custody Breaks", Value: "2", Series: []float64{0, 0, 1, 1, 2, 2}},
				{Label: "STAT TAT", Value: "68", Unit: "min", Series: []float64{58, 60, 61, 64, 66, 68}},
				{Label: "Rejection Rate", Value: "3.9", Unit: "%", Series: []float64{1.8, 2.1, 2.6, 3.1, 3.5, 3.9}},
			},
			Categories: []Category{
				{
					ID:    "collection",
					Title: "Collection & Transport",
					Cards: []Card{
						{Label: "Unscanned Collections", Value: "4", Series: []float64{0, 1, 1, 2, 3, 4}},
						{Label: "Cooler Temp Excursions", Value: "1", Series: []float64{0, 0, 0, 0, 1, 1}},
						{Label: "Courier Custody Gaps", Value: "2", Series: []float64{0, 0, 1, 1, 2, 2}},
					},
				},
				{
					ID:    "analytics",
					Title: "Analytical Phase",
					Cards: []Card{
						{Label: "Troponin Turnaround", Value: "68", Unit: "min", Series: []float64{58, 60, 61, 64, 66, 68}},
						{Label: "Hemolyzed Samples", Value: "27", Series: []float64{12, 15, 18, 21, 24, 27}},
					},
				},
			},
		},
		classifier.DashboardSupplyChain: {
			Title: "Supply Chain",
			Cards: []Card{
				{Label: "Stockouts This Week", Value: "3", Series: []float64{1, 0, 2, 1, 2, 3}},
				{Label: "Fill Rate", Value: "96.2", Unit: "%", Series: []float64{98.1, 97.9, 97.4, 97.0, 96.6, 96.2}},
				{Label: "Backorders", Value: "11", Series: []float64{6, 7, 8, 9, 10, 11}},
				{Label: "Par Accuracy", Value: "72", Unit: "%", Series: []float64{80, 79, 77, 75, 74, 72}},
			},
			Categories: []Category{
				{
					ID:    "med-surg",
					Title: "Med-Surg Supplies",
					Cards: []Card{
						{Label: "IV Start Kit Stock Out", Value: "2", Series: []float64{0, 0, 1, 1, 2, 2}},
						{Label: "Par Level Variance", Value: "40", Unit: "%", Series: []float64{22, 26, 30, 33, 37, 40}},
					},
				},
				{
					ID:    "vascular",
					Title: "Vascular Access",
					Cards: []Card{
						{Label: "PICC Backorder Weeks", Value: "6", Series: []float64{1, 2, 3, 4, 5, 6}},
						{Label: "Items Expiring in 30 Days", Value: "48", Series: []float64{30, 33, 38, 41, 45, 48}},
					},
				},
			},
		},
		classifier.DashboardInfrastructure: {
			Title: "Infrastructure Health",
			Cards: []Card{
				{Label: "Network Availability", Value: "99.2", Unit: "%", Series: []float64{99.9, 99.8, 99.7, 99.5, 99.4, 99.2}},
				{Label: "Generator Readiness", Value: "2/3", Series: []float64{3, 3, 3, 3, 2, 2}},
				{Label: "Clinical System Uptime", Value: "99.1", Unit: "%", Series: []float64{99.9, 99.9, 99.6, 99.5, 99.3, 99.1}},
				{Label: "Devices Missing Patches", Value: "12", Series: []float64{4, 6, 7, 9, 11, 12}},
			},
			Categories: []Category{
				{
					ID:    "facilities",
					Title: "Facilities",
					Cards: []Card{
						{Label: "Power Load Test Failures", Value: "1", Series: []float64{0, 0, 0, 0, 1, 1}},
						{Label: "HVAC Pressure Alarms", Value: "5", Series: []float64{1, 2, 2, 3, 4, 5}},
					},
				},
				{
					ID:    "it",
					Title: "IT Systems",
					Cards: []Card{
						{Label: "Wi-Fi Packet Loss", Value: "4.2", Unit: "%", Series: []float64{0.4, 0.8, 1.5, 2.6, 3.4, 4.2}},
						{Label: "LIS Outage Minutes", Value: "94", Series: []float64{0, 12, 12, 40, 70, 94}},
						{Label: "Cyber Alerts", Value: "3", Series: []float64{1, 0, 2, 1, 2, 3}},
					},
				},
			},
		},
	}
}
