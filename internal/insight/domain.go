package insight

import "fmt"

// Domain is a top-level operational area
type Domain string

const (
	DomainBiomedical     Domain = "biomedical"
	DomainTransfusion    Domain = "transfusion"
	DomainLabMedicine    Domain = "lab-medicine"
	DomainSupplyChain    Domain = "supply-chain"
	DomainInfrastructure Domain = "infrastructure"
)

// Kind is a metric topic. Every Kind belongs to exactly one Domain.
type Kind string

const (
	// Biomedical
	KindUtilization  Kind = "utilization"
	KindMaintenance  Kind = "maintenance"
	KindLost         Kind = "lost"
	KindPMCompliance Kind = "pm-compliance"
	KindRecall       Kind = "recall"

	// Transfusion
	KindBloodInventory Kind = "blood-inventory"
	KindBloodWastage   Kind = "blood-wastage"
	KindCrossmatch     Kind = "crossmatch"
	KindResponseTime   Kind = "response-time"
	KindNearExpiry     Kind = "near-expiry"

	// Lab medicine
	KindSpecimenTracking     Kind = "specimen-tracking"
	KindChainOfCustody       Kind = "chain-of-custody"
	KindTurnaround           Kind = "turnaround"
	KindSpecimenRejection    Kind = "specimen-rejection"
	KindTemperatureExcursion Kind = "temperature-excursion"

	// Supply chain
	KindStockout     Kind = "stockout"
	KindBackorder    Kind = "backorder"
	KindParLevel     Kind = "par-level"
	KindSupplyExpiry Kind = "supply-expiry"

	// Infrastructure
	KindNetworkHealth Kind = "network-health"
	KindPowerBackup   Kind = "power-backup"
	KindHVAC          Kind = "hvac"
	KindSystemUptime  Kind = "system-uptime"
	KindCybersecurity Kind = "cybersecurity"
)

var domainOrder = []Domain{
	DomainBiomedical,
	DomainTransfusion,
	DomainLabMedicine,
	DomainSupplyChain,
	DomainInfrastructure,
}

var kindOrder = []Kind{
	KindUtilization, KindMaintenance, KindLost, KindPMCompliance, KindRecall,
	KindBloodInventory, KindBloodWastage, KindCrossmatch, KindResponseTime, KindNearExpiry,
	KindSpecimenTracking, KindChainOfCustody, KindTurnaround, KindSpecimenRejection, KindTemperatureExcursion,
	KindStockout, KindBackorder, KindParLevel, KindSupplyExpiry,
	KindNetworkHealth, KindPowerBackup, KindHVAC, KindSystemUptime, KindCybersecurity,
}

var kindDomains = map[Kind]Domain{
	KindUtilization:  DomainBiomedical,
	KindMaintenance:  DomainBiomedical,
	KindLost:         DomainBiomedical,
	KindPMCompliance: DomainBiomedical,
	KindRecall:       DomainBiomedical,

	KindBloodInventory: DomainTransfusion,
	KindBloodWastage:   DomainTransfusion,
	KindCrossmatch:     DomainTransfusion,
	KindResponseTime:   DomainTransfusion,
	KindNearExpiry:     DomainTransfusion,

	KindSpecimenTracking:     DomainLabMedicine,
	KindChainOfCustody:       DomainLabMedicine,
	KindTurnaround:           DomainLabMedicine,
	KindSpecimenRejection:    DomainLabMedicine,
	KindTemperatureExcursion: DomainLabMedicine,

	KindStockout:     DomainSupplyChain,
	KindBackorder:    DomainSupplyChain,
	KindParLevel:     DomainSupplyChain,
	KindSupplyExpiry: DomainSupplyChain,

	KindNetworkHealth: DomainInfrastructure,
	KindPowerBackup:   DomainInfrastructure,
	KindHVAC:          DomainInfrastructure,
	KindSystemUptime:  DomainInfrastructure,
	KindCybersecurity: DomainInfrastructure,
}

var domainNouns = map[Domain]string{
	DomainBiomedical:     "Affected Assets",
	DomainTransfusion:    "Affected Blood Units",
	DomainLabMedicine:    "Affected Specimens",
	DomainSupplyChain:    "Affected Items",
	DomainInfrastructure: "Affected Infrastructure",
}

var domainTitles = map[Domain]string{
	DomainBiomedical:     "Biomedical",
	DomainTransfusion:    "Transfusion",
	DomainLabMedicine:    "Lab Medicine",
	DomainSupplyChain:    "Supply Chain",
	DomainInfrastructure: "Infrastructure",
}

// Domains returns all domains in display order
func Domains() []Domain {
	out := make([]Domain, len(domainOrder))
	copy(out, domainOrder)
	return out
}

// Kinds returns all kinds, grouped by domain
func Kinds() []Kind {
	out := make([]Kind, len(kindOrder))
	copy(out, kindOrder)
	return out
}

// KindsOf returns the kinds that belong to a domain
func KindsOf(d Domain) []Kind {
	var out []Kind
	for _, k := range kindOrder {
		if kindDomains[k] == d {
			out = append(out, k)
		}
	}
	return out
}

// DomainOf returns the domain a kind belongs to
func DomainOf(k Kind) (Domain, bool) {
	d, ok := kindDomains[k]
	return d, ok
}

// Valid reports whether k is one of the declared kinds
func (k Kind) Valid() bool {
	_, ok := kindDomains[k]
	return ok
}

// Valid reports whether d is one of the declared domains
func (d Domain) Valid() bool {
	_, ok := domainNouns[d]
	return ok
}

// Title returns the display name of the domain
func (d Domain) Title() string {
	if t, ok := domainTitles[d]; ok {
		return t
	}
	return string(d)
}

// Noun returns the "Affected X" section header for a domain.
// Unknown domains get the generic header.
func Noun(d Domain) string {
	if n, ok := domainNouns[d]; ok {
		return n
	}
	return "Affected Items"
}

// ParseKind parses a kind name
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("알 수 없는 context kind: %s", s)
	}
	return k, nil
}

// ParseDomain parses a domain name
func ParseDomain(s string) (Domain, error) {
	d := Domain(s)
	if !d.Valid() {
		return "", fmt.Errorf("알 수 없는 domain: %s", s)
	}
	return d, nil
}
