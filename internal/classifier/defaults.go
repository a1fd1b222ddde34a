package classifier

import "github.com/n0roo/opsdash/internal/insight"

// DefaultRuleTables returns the built-in rule tables, one per dashboard.
// Matching is case-sensitive and the first rule that matches wins, so
// "Lost" is listed before "Repair" and "Maint".
func DefaultRuleTables() []RuleTable {
	return []RuleTable{
		{
			Dashboard: DashboardBiomedical,
			Default:   insight.KindUtilization,
			Rules: []Rule{
				{Match: "Lost", Kind: insight.KindLost},
				{Match: "Missing", Kind: insight.KindLost},
				{Match: "Recall", Kind: insight.KindRecall},
				{Match: "PM", Kind: insight.KindPMCompliance},
				{Match: "Preventive", Kind: insight.KindPMCompliance},
				{Match: "Maint", Kind: insight.KindMaintenance},
				{Match: "Repair", Kind: insight.KindMaintenance},
				{Match: "Work Order", Kind: insight.KindMaintenance},
				{Match: "Util", Kind: insight.KindUtilization},
				{Match: "Idle", Kind: insight.KindUtilization},
			},
		},
		{
			Dashboard: DashboardTransfusion,
			Default:   insight.KindBloodInventory,
			Rules: []Rule{
				{Match: "Wast", Kind: insight.KindBloodWastage},
				{Match: "Discard", Kind: insight.KindBloodWastage},
				{Match: "Crossmatch", Kind: insight.KindCrossmatch},
				{Match: "C:T", Kind: insight.KindCrossmatch},
				{Match: "Response", Kind: insight.KindResponseTime},
				{Match: "Emergency Release", Kind: insight.KindResponseTime},
				{Match: "Expir", Kind: insight.KindNearExpiry},
				{Match: "Inventory", Kind: insight.KindBloodInventory},
				{Match: "Days of Supply", Kind: insight.KindBloodInventory},
			},
		},
		{
			Dashboard: DashboardLabMedicine,
			Default:   insight.KindSpecimenTracking,
			Rules: []Rule{
				{Match: "Custody", Kind: insight.KindChainOfCustody},
				{Match: "Chain", Kind: insight.KindChainOfCustody},
				{Match: "Reject", Kind: insight.KindSpecimenRejection},
				{Match: "Hemoly", Kind: insight.KindSpecimenRejection},
				{Match: "Temp", Kind: insight.KindTemperatureExcursion},
				{Match: "TAT", Kind: insight.KindTurnaround},
				{Match: "Turnaround", Kind: insight.KindTurnaround},
				{Match: "Track", Kind: insight.KindSpecimenTracking},
				{Match: "In Transit", Kind: insight.KindSpecimenTracking},
			},
		},
		{
			Dashboard: DashboardSupplyChain,
			Default:   insight.KindStockout,
			Rules: []Rule{
				{Match: "Backorder", Kind: insight.KindBackorder},
				{Match: "Back Order", Kind: insight.KindBackorder},
				{Match: "Expir", Kind: insight.KindSupplyExpiry},
				{Match: "Par", Kind: insight.KindParLevel},
				{Match: "Stockout", Kind: insight.KindStockout},
				{Match: "Stock Out", Kind: insight.KindStockout},
				{Match: "Fill Rate", Kind: insight.KindStockout},
			},
		},
		{
			Dashboard: DashboardInfrastructure,
			Default:   insight.KindNetworkHealth,
			Rules: []Rule{
				{Match: "Generator", Kind: insight.KindPowerBackup},
				{Match: "Power", Kind: insight.KindPowerBackup},
				{Match: "UPS", Kind: insight.KindPowerBackup},
				{Match: "HVAC", Kind: insight.KindHVAC},
				{Match: "Air Handler", Kind: insight.KindHVAC},
				{Match: "Cyber", Kind: insight.KindCybersecurity},
				{Match: "Security", Kind: insight.KindCybersecurity},
				{Match: "Patch", Kind: insight.KindCybersecurity},
				{Match: "Uptime", Kind: insight.KindSystemUptime},
				{Match: "Server", Kind: insight.KindSystemUptime},
				{Match: "Outage", Kind: insight.KindSystemUptime},
				{Match: "Network", Kind: insight.KindNetworkHealth},
				{Match: "Wi-Fi", Kind: insight.KindNetworkHealth},
			},
		},
	}
}
