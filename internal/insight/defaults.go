package insight

// DefaultEntries returns the built-in authored insight content.
// Recall, HVAC and SupplyExpiry are left unauthored and resolve to the fallback.
func DefaultEntries() map[Kind]Entry {
	return map[Kind]Entry{
		KindUtilization: {
			Narrative: "Infusion pump utilization dropped to 61% on 4 West while 3 East runs above 95%. " +
				"Pumps are not being returned to the central pool after discharge.",
			AffectedItems: []AffectedItem{
				{ID: "BME-10231", Name: "Alaris Infusion Pump", Location: "4 West", Status: "Idle 72h"},
				{ID: "BME-10244", Name: "Alaris Infusion Pump", Location: "4 West", Status: "Idle 51h"},
				{ID: "BME-11802", Name: "Philips IntelliVue MX450", Location: "PACU", Status: "Idle 40h"},
				{ID: "BME-12010", Name: "Zoll R Series Defibrillator", Location: "5 North", Status: "Idle 36h"},
			},
			Impact: Impact{
				Financial:   "$48K in avoidable rental spend this quarter",
				Operational: "Delayed infusions on 3 East during peak admissions",
			},
			RecommendedAction: "Redeploy 12 idle pumps from 4 West to 3 East and enable par-level alerts",
		},
		KindMaintenance: {
			Narrative: "Corrective maintenance backlog grew 38% over two weeks. " +
				"Two technician vacancies left the imaging and critical care queues uncovered.",
			AffectedItems: []AffectedItem{
				{ID: "BME-20411", Name: "GE Carescape Ventilator", Location: "MICU", Status: "Needs Repair"},
				{ID: "BME-20877", Name: "Stryker Stretcher", Location: "ED Bay 7", Status: "Needs Repair"},
				{ID: "BME-21003", Name: "Baxter Sigma Spectrum Pump", Location: "6 South", Status: "Awaiting Parts"},
				{ID: "BME-21190", Name: "Hill-Rom Bed Scale", Location: "4 West", Status: "Needs Repair"},
				{ID: "BME-21356", Name: "Welch Allyn Vitals Monitor", Location: "Clinic B", Status: "Overdue PM"},
			},
			Impact: Impact{
				Financial:   "$22K per week in deferred-repair rentals",
				Operational: "14 devices out of service, 3 in critical care",
			},
			RecommendedAction: "Approve overtime for 2 technicians this weekend",
		},
		KindLost: {
			Narrative: "Seven tagged assets have not pinged an RTLS reader in over 30 days. " +
				"Last-known locations cluster around the loading dock and the OR corridor.",
			AffectedItems: []AffectedItem{
				{ID: "BME-30012", Name: "Portable Ultrasound", Location: "Loading Dock", Status: "Lost 41d"},
				{ID: "BME-30088", Name: "Bladder Scanner", Location: "OR Corridor", Status: "Lost 38d"},
				{ID: "BME-30104", Name: "Infusion Pump", Location: "OR Corridor", Status: "Lost 35d"},
				{ID: "BME-30117", Name: "Wheelchair Scale", Location: "Loading Dock", Status: "Lost 33d"},
				{ID: "BME-30150", Name: "Feeding Pump", Location: "5 North", Status: "Lost 32d"},
				{ID: "BME-30161", Name: "SCD Compression Unit", Location: "OR Corridor", Status: "Lost 31d"},
				{ID: "BME-30177", Name: "Pulse Oximeter", Location: "ED", Status: "Lost 30d"},
			},
			Impact: Impact{
				Financial:   "$96K in replacement value at risk",
				Operational: "Shortage of portable imaging for bedside procedures",
			},
			RecommendedAction: "Run a physical sweep of the loading dock and OR corridor with security",
		},
		KindPMCompliance: {
			Narrative: "Preventive maintenance compliance is 91%, below the 95% accreditation threshold. " +
				"Most overdue work orders are high-risk life-support devices.",
			AffectedItems: []AffectedItem{
				{ID: "BME-40201", Name: "Anesthesia Machine", Location: "OR 4", Status: "PM 18d overdue"},
				{ID: "BME-40233", Name: "Ventilator", Location: "NICU", Status: "PM 11d overdue"},
				{ID: "BME-40290", Name: "Defibrillator", Location: "Cath Lab", Status: "PM 9d overdue"},
			},
			Impact: Impact{
				Financial:   "Accreditation finding risk",
				Operational: "High-risk devices in use past PM interval",
			},
			RecommendedAction: "Prioritize high-risk PM work orders ahead of low-risk scheduled PM",
		},

		KindBloodInventory: {
			Narrative: "O-negative inventory is at 2.1 days of supply against a 3-day target. " +
				"Two trauma activations consumed 14 units overnight.",
			AffectedItems: []AffectedItem{
				{ID: "W0412-24-001", Name: "O Neg RBC", Location: "Main Blood Bank", Status: "Critical"},
				{ID: "W0412-24-017", Name: "O Neg RBC", Location: "ED Satellite Fridge", Status: "Low"},
				{ID: "W0412-24-032", Name: "AB Plasma", Location: "Main Blood Bank", Status: "Low"},
			},
			Impact: Impact{
				Financial:   "$6K in emergency courier fees if restocked STAT",
				Operational: "Trauma readiness below protocol",
			},
			RecommendedAction: "Place a standing order with the regional supplier for 20 O-negative units",
		},
		KindBloodWastage: {
			Narrative: "Wastage reached 4.8% this month, driven by platelets expiring in satellite fridges. " +
				"Units are issued to satellites faster than they are transfused.",
			AffectedItems: []AffectedItem{
				{ID: "W0412-24-210", Name: "Apheresis Platelets", Location: "OR Satellite", Status: "Expired"},
				{ID: "W0412-24-214", Name: "Apheresis Platelets", Location: "OR Satellite", Status: "Expired"},
				{ID: "W0412-24-233", Name: "FFP", Location: "ICU Fridge", Status: "Outside temp range"},
				{ID: "W0412-24-251", Name: "RBC", Location: "ED Satellite Fridge", Status: "Returned late"},
			},
			Impact: Impact{
				Financial:   "$31K in discarded product this month",
				Operational: "Increased platelet recalls from satellites",
			},
			RecommendedAction: "Cap platelet issue to satellites at 2 units and return unused units within 4 hours",
		},
		KindCrossmatch: {
			Narrative: "Crossmatch-to-transfusion ratio is 2.6, above the 2.0 target. " +
				"Elective orthopedic cases routinely crossmatch units that are never transfused.",
			AffectedItems: []AffectedItem{
				{ID: "XM-88120", Name: "Total Knee Arthroplasty", Location: "OR 6", Status: "4 units, 0 used"},
				{ID: "XM-88133", Name: "Total Hip Arthroplasty", Location: "OR 2", Status: "3 units, 0 used"},
			},
			Impact: Impact{
				Financial:   "$9K in reagent and technologist time",
				Operational: "Units held out of available inventory for 48h",
			},
			RecommendedAction: "Adopt a type-and-screen maximum surgical blood order schedule for elective orthopedics",
		},
		KindResponseTime: {
			Narrative: "Median emergency release time is 7 minutes, within the 10-minute target. " +
				"No outliers were recorded in the last 30 days.",
			Impact: Impact{
				Financial:   "None",
				Operational: "Emergency release within target",
			},
			RecommendedAction: "Keep the current emergency release drill schedule",
		},
		KindNearExpiry: {
			Narrative: "Nineteen units expire within 72 hours. Most are A-positive RBCs received in one shipment.",
			AffectedItems: []AffectedItem{
				{ID: "W0412-24-301", Name: "A Pos RBC", Location: "Main Blood Bank", Status: "Expires 26h"},
				{ID: "W0412-24-302", Name: "A Pos RBC", Location: "Main Blood Bank", Status: "Expires 26h"},
				{ID: "W0412-24-315", Name: "A Pos RBC", Location: "Main Blood Bank", Status: "Expires 49h"},
			},
			Impact: Impact{
				Financial:   "$4K if units expire",
				Operational: "Manageable with rotation",
			},
			RecommendedAction: "Transfer near-expiry A-positive units to the partner trauma center",
		},

		KindSpecimenTracking: {
			Narrative: "Four specimens were received in the lab without a matching collection scan. " +
				"All four came from the same outpatient draw station.",
			AffectedItems: []AffectedItem{
				{ID: "SP-552301", Name: "CBC", Location: "Draw Station 3", Status: "No collection scan"},
				{ID: "SP-552318", Name: "BMP", Location: "Draw Station 3", Status: "No collection scan"},
				{ID: "SP-552344", Name: "HbA1c", Location: "Draw Station 3", Status: "No collection scan"},
				{ID: "SP-552360", Name: "Lipid Panel", Location: "Draw Station 3", Status: "No collection scan"},
			},
			Impact: Impact{
				Financial:   "Potential redraw cost of $600",
				Operational: "Patient identification risk",
			},
			RecommendedAction: "Replace the barcode scanner at Draw Station 3 and retrain staff on scan-at-collection",
		},
		KindChainOfCustody: {
			Narrative: "Two forensic specimens show a custody gap longer than 30 minutes between courier hand-off and receipt.",
			AffectedItems: []AffectedItem{
				{ID: "SP-FX-1021", Name: "Toxicology Panel", Location: "Courier Route B", Status: "Gap 47m"},
				{ID: "SP-FX-1024", Name: "Blood Alcohol", Location: "Courier Route B", Status: "Gap 33m"},
			},
			Impact: Impact{
				Financial:   "Legal exposure",
				Operational: "Results may be inadmissible",
			},
			RecommendedAction: "Require dual signature at hand-off on Courier Route B",
		},
		KindTurnaround: {
			Narrative: "STAT troponin turnaround is 68 minutes against a 60-minute target. " +
				"Delays concentrate between 02:00 and 06:00 when one analyzer runs maintenance.",
			AffectedItems: []AffectedItem{
				{ID: "SP-553020", Name: "Troponin I", Location: "ED", Status: "TAT 84m"},
				{ID: "SP-553041", Name: "Troponin I", Location: "ED", Status: "TAT 79m"},
				{ID: "SP-553077", Name: "Troponin I", Location: "CCU", Status: "TAT 72m"},
			},
			Impact: Impact{
				Financial:   "Longer ED length of stay",
				Operational: "Chest pain pathway delays",
			},
			RecommendedAction: "Move analyzer maintenance out of the overnight window",
		},
		KindSpecimenRejection: {
			Narrative: "Hemolysis rejections rose to 3.9% in the ED, twice the house average.",
			AffectedItems: []AffectedItem{
				{ID: "SP-554101", Name: "Potassium", Location: "ED", Status: "Hemolyzed"},
				{ID: "SP-554122", Name: "LDH", Location: "ED", Status: "Hemolyzed"},
				{ID: "SP-554150", Name: "BMP", Location: "ED", Status: "Hemolyzed"},
			},
			Impact: Impact{
				Financial:   "$3K per month in redraws",
				Operational: "Repeat venipuncture for patients",
			},
			RecommendedAction: "Switch ED draws from IV catheters to straight-stick venipuncture where feasible",
		},
		KindTemperatureExcursion: {
			Narrative: "A transport cooler logged 11°C for 22 minutes on the afternoon courier run.",
			AffectedItems: []AffectedItem{
				{ID: "SP-555010", Name: "Ammonia", Location: "Cooler C-14", Status: "Excursion"},
				{ID: "SP-555013", Name: "Lactate", Location: "Cooler C-14", Status: "Excursion"},
			},
			Impact: Impact{
				Financial:   "Minor",
				Operational: "Temperature-sensitive results may be invalid",
			},
			RecommendedAction: "Quarantine Cooler C-14 and recollect the affected specimens",
		},

		KindStockout: {
			Narrative: "Three high-use SKUs stocked out on two units this week. " +
				"Replenishment runs are scheduled before the evening surge instead of after it.",
			AffectedItems: []AffectedItem{
				{ID: "SKU-100234", Name: "IV Start Kit", Location: "3 East Supply", Status: "Stockout"},
				{ID: "SKU-100871", Name: "Saline Flush 10mL", Location: "3 East Supply", Status: "Stockout"},
				{ID: "SKU-101560", Name: "Chlorhexidine Swab", Location: "ED Supply", Status: "Stockout"},
			},
			Impact: Impact{
				Financial:   "$2K in borrowed stock transfers",
				Operational: "Nurses leaving the unit to find supplies",
			},
			RecommendedAction: "Move the 3 East and ED replenishment run to 20:00",
		},
		KindBackorder: {
			Narrative: "Manufacturer backorder on 5 French PICC lines has lasted 6 weeks with no release date.",
			AffectedItems: []AffectedItem{
				{ID: "SKU-204410", Name: "PICC Line 5Fr Dual Lumen", Location: "Central Supply", Status: "Backordered"},
				{ID: "SKU-204411", Name: "PICC Line 5Fr Single Lumen", Location: "Central Supply", Status: "Backordered"},
			},
			Impact: Impact{
				Financial:   "$7K premium for substitute product",
				Operational: "Vascular access team using substitutes",
			},
			RecommendedAction: "Approve the clinically equivalent substitute and notify the vascular access team",
		},
		KindParLevel: {
			Narrative: "Par levels on 6 units were set in 2021 and no longer match current usage.",
			AffectedItems: []AffectedItem{
				{ID: "PAR-3E", Name: "3 East Supply Room", Location: "3 East", Status: "Par 40% low"},
				{ID: "PAR-ED", Name: "ED Supply Room", Location: "ED", Status: "Par 25% low"},
				{ID: "PAR-4W", Name: "4 West Supply Room", Location: "4 West", Status: "Par 30% high"},
			},
			Impact: Impact{
				Financial:   "$15K in excess on-hand inventory",
				Operational: "Frequent stockouts on understocked units",
			},
			RecommendedAction: "Recalculate par levels from the last 90 days of usage",
		},

		KindNetworkHealth: {
			Narrative: "Wireless packet loss on the 5th floor reached 4%, above the 1% threshold for telemetry.",
			AffectedItems: []AffectedItem{
				{ID: "AP-5N-07", Name: "Access Point", Location: "5 North", Status: "Packet loss 4.2%"},
				{ID: "AP-5N-09", Name: "Access Point", Location: "5 North", Status: "Packet loss 3.8%"},
				{ID: "SW-IDF-5", Name: "IDF Switch", Location: "5th floor IDF", Status: "CPU 92%"},
			},
			Impact: Impact{
				Financial:   "Minor",
				Operational: "Telemetry dropouts on 5 North",
			},
			RecommendedAction: "Replace the 5th floor IDF switch during the Sunday maintenance window",
		},
		KindPowerBackup: {
			Narrative: "Generator 2 failed its monthly load test at 18 minutes of a 30-minute run.",
			AffectedItems: []AffectedItem{
				{ID: "GEN-02", Name: "Emergency Generator 2", Location: "Central Plant", Status: "Failed load test"},
				{ID: "ATS-04", Name: "Automatic Transfer Switch", Location: "Central Plant", Status: "Alarm"},
			},
			Impact: Impact{
				Financial:   "$12K repair estimate",
				Operational: "Reduced emergency power redundancy",
			},
			RecommendedAction: "Schedule vendor service for Generator 2 within 48 hours",
		},
		KindSystemUptime: {
			Narrative: "The lab information system had 3 unplanned outages this month, totaling 94 minutes.",
			AffectedItems: []AffectedItem{
				{ID: "SRV-LIS-01", Name: "LIS Application Server", Location: "Data Center A", Status: "3 restarts"},
				{ID: "SRV-LIS-DB", Name: "LIS Database", Location: "Data Center A", Status: "Disk 91%"},
			},
			Impact: Impact{
				Financial:   "Overtime for downtime procedures",
				Operational: "Paper downtime workflows in the lab",
			},
			RecommendedAction: "Expand the LIS database volume and review the restart logs with the vendor",
		},
		KindCybersecurity: {
			Narrative: "Twelve networked medical devices run an operating system past end of support.",
			AffectedItems: []AffectedItem{
				{ID: "BME-60110", Name: "Imaging Workstation", Location: "Radiology", Status: "Unsupported OS"},
				{ID: "BME-60122", Name: "Lab Analyzer PC", Location: "Core Lab", Status: "Unsupported OS"},
			},
			Impact: Impact{
				Financial:   "Breach exposure",
				Operational: "Devices cannot receive security patches",
			},
			RecommendedAction: "Segment the unsupported devices onto an isolated VLAN",
		},
	}
}
