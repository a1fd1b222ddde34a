package insight

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEveryKindHasDomain(t *testing.T) {
	for _, k := range Kinds() {
		d, ok := DomainOf(k)
		require.True(t, ok, "kind %s has no domain", k)
		assert.True(t, d.Valid())
		assert.Contains(t, KindsOf(d), k)
	}
}

func TestNounTotality(t *testing.T) {
	want := map[Domain]string{
		DomainBiomedical:     "Affected Assets",
		DomainTransfusion:    "Affected Blood Units",
		DomainLabMedicine:    "Affected Specimens",
		DomainSupplyChain:    "Affected Items",
		DomainInfrastructure: "Affected Infrastructure",
	}
	require.Len(t, Domains(), 5)
	for _, d := range Domains() {
		assert.Equal(t, want[d], Noun(d))
	}
	assert.Equal(t, "Affected Items", Noun(Domain("unknown")))
}

func TestResolveTotality(t *testing.T) {
	r := NewResolver(DefaultEntries())
	for _, k := range Kinds() {
		p := r.Resolve(k)
		assert.NotEmpty(t, p.Narrative, "kind %s", k)
		assert.NotEmpty(t, p.RecommendedAction, "kind %s", k)
		assert.NotNil(t, p.AffectedItems, "kind %s", k)
		d, _ := DomainOf(k)
		assert.Equal(t, d, p.Domain)
	}
}

func TestResolveEmptyTableFallsBack(t *testing.T) {
	r := NewResolver(nil)
	for _, k := range Kinds() {
		p := r.Resolve(k)
		assert.True(t, p.Fallback)
		assert.Empty(t, p.AffectedItems)
		assert.Contains(t, p.Narrative, "deviation from standard operating procedure")
	}
	assert.Equal(t, Kinds(), r.Unauthored())
}

func TestResolveMaintenance(t *testing.T) {
	r := NewResolver(DefaultEntries())

	p := r.Resolve(KindMaintenance)

	assert.Equal(t, DomainBiomedical, p.Domain)
	assert.Len(t, p.AffectedItems, 5)
	assert.Equal(t, "Approve overtime for 2 technicians this weekend", p.RecommendedAction)
	assert.False(t, p.Fallback)
}

func TestResolveResponseTimeHasNoItems(t *testing.T) {
	r := NewResolver(DefaultEntries())

	p := r.Resolve(KindResponseTime)

	assert.Empty(t, p.AffectedItems)
	assert.Empty(t, p.Visible())
	assert.Contains(t, Markdown("Response Time", "7 min", p), NoAnomaliesText)
}

func TestResolveUnauthoredDefaults(t *testing.T) {
	r := NewResolver(DefaultEntries())
	assert.ElementsMatch(t, []Kind{KindRecall, KindSupplyExpiry, KindHVAC}, r.Unauthored())

	p := r.Resolve(KindHVAC)
	assert.True(t, p.Fallback)
	assert.Equal(t, DomainInfrastructure, p.Domain)
}

func TestResolverIsolatedFromCallers(t *testing.T) {
	entries := DefaultEntries()
	r := NewResolver(entries)

	before := r.Resolve(KindLost)

	// mutate both the source table and a returned payload
	entries[KindLost].AffectedItems[0].Name = "changed"
	before.AffectedItems[1].Name = "changed"

	after := r.Resolve(KindLost)
	if diff := cmp.Diff(NewResolver(DefaultEntries()).Resolve(KindLost), after); diff != "" {
		t.Errorf("payload changed after caller mutation (-want +got):\n%s", diff)
	}
}

func TestVisibleCapsAtFive(t *testing.T) {
	r := NewResolver(DefaultEntries())

	p := r.Resolve(KindLost)

	require.Len(t, p.AffectedItems, 7)
	assert.Len(t, p.Visible(), MaxDisplayedItems)
	assert.Equal(t, 2, p.Overflow())
	assert.Equal(t, p.AffectedItems[:5], p.Visible())

	md := Markdown("Lost Assets", "7", p)
	assert.Contains(t, md, "+2 more")
	assert.NotContains(t, md, p.AffectedItems[5].ID)
}

func TestMarkdownSections(t *testing.T) {
	r := NewResolver(DefaultEntries())
	p := r.Resolve(KindMaintenance)

	md := Markdown("Needs Repair", "14", p)

	assert.True(t, strings.HasPrefix(md, "# Needs Repair: 14"))
	for _, section := range []string{"## Root Cause", "## Affected Assets", "## Impact", "## Recommended Action"} {
		assert.Contains(t, md, section)
	}
	for _, item := range p.AffectedItems {
		assert.Contains(t, md, item.ID)
	}
}

func TestParse(t *testing.T) {
	k, err := ParseKind("maintenance")
	require.NoError(t, err)
	assert.Equal(t, KindMaintenance, k)

	_, err = ParseKind("Maintenance")
	assert.Error(t, err)

	d, err := ParseDomain("lab-medicine")
	require.NoError(t, err)
	assert.Equal(t, DomainLabMedicine, d)

	_, err = ParseDomain("radiology")
	assert.Error(t, err)
}

func TestResolveIsDeterministic(t *testing.T) {
	r := NewResolver(DefaultEntries())
	kinds := Kinds()

	rapid.Check(t, func(t *rapid.T) {
		k := rapid.SampledFrom(kinds).Draw(t, "kind")
		if diff := cmp.Diff(r.Resolve(k), r.Resolve(k)); diff != "" {
			t.Fatalf("resolve(%s) not deterministic:\n%s", k, diff)
		}
	})
}
