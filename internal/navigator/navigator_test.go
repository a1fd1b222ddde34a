package navigator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/n0roo/opsdash/internal/insight"
)

func TestNewIsCollapsed(t *testing.T) {
	n := New()

	assert.Equal(t, TierCollapsed, n.Tier())
	assert.Equal(t, State{}, n.State())
}

func TestOpenTier2Idempotent(t *testing.T) {
	n := New()

	assert.True(t, n.OpenTier2())
	assert.False(t, n.OpenTier2())
	assert.Equal(t, Tier2, n.Tier())
}

func TestOpenTier3RequiresTier2(t *testing.T) {
	n := New()

	assert.False(t, n.OpenTier3("pumps"))
	assert.Equal(t, TierCollapsed, n.Tier())
	assert.Empty(t, n.State().Tier3Category)
}

func TestOpenTier3Replaces(t *testing.T) {
	n := New()
	n.OpenTier2()

	require.True(t, n.OpenTier3("a"))
	require.True(t, n.OpenTier3("b"))

	assert.Equal(t, Tier3, n.Tier())
	assert.Equal(t, "b", n.State().Tier3Category)
	assert.False(t, n.OpenTier3("b"))
	assert.False(t, n.OpenTier3(""))
}

func TestCloseTier3ReturnsToTier2(t *testing.T) {
	n := New()
	n.OpenTier2()
	n.OpenTier3("a")

	assert.True(t, n.CloseTier3())
	assert.Equal(t, Tier2, n.Tier())
	assert.False(t, n.CloseTier3())
}

func TestCloseTier2Cascades(t *testing.T) {
	n := New()
	n.OpenTier2()
	n.OpenTier3("ventilators")
	n.OpenInsight("Needs Repair", "14", insight.KindMaintenance)

	assert.True(t, n.CloseTier2())

	assert.Equal(t, TierCollapsed, n.Tier())
	assert.Equal(t, State{}, n.State())
}

func TestCloseTier2WhenCollapsedIsNoop(t *testing.T) {
	n := New()
	n.OpenInsight("Utilization", "78%", insight.KindUtilization)

	assert.False(t, n.CloseTier2())
	require.NotNil(t, n.State().Insight)
}

func TestInsightIsSingleSlotAndOrthogonal(t *testing.T) {
	n := New()
	n.OpenTier2()
	n.OpenTier3("a")

	n.OpenInsight("Lost Assets", "7", insight.KindLost)
	n.OpenInsight("Needs Repair", "14", insight.KindMaintenance)

	s := n.State()
	require.NotNil(t, s.Insight)
	assert.Equal(t, insight.KindMaintenance, s.Insight.Kind)
	assert.Equal(t, "a", s.Tier3Category, "insight does not disturb tier 3")

	assert.True(t, n.CloseInsight())
	assert.False(t, n.CloseInsight())
	assert.Equal(t, Tier3, n.Tier())
}

func TestStateIsACopy(t *testing.T) {
	n := New()
	n.OpenInsight("Lost Assets", "7", insight.KindLost)

	s := n.State()
	s.Insight.Title = "changed"

	assert.Equal(t, "Lost Assets", n.State().Insight.Title)
}

func TestBackClosesInnermost(t *testing.T) {
	n := New()
	n.OpenTier2()
	n.OpenTier3("a")
	n.OpenInsight("x", "1", insight.KindLost)

	n.Back()
	assert.Nil(t, n.State().Insight)
	assert.Equal(t, Tier3, n.Tier())

	n.Back()
	assert.Equal(t, Tier2, n.Tier())

	n.Back()
	assert.Equal(t, TierCollapsed, n.Tier())

	assert.False(t, n.Back())
}

func TestObserver(t *testing.T) {
	var events []Event
	var applied []bool
	n := New(WithObserver(func(ev Event, ok bool, _ State) {
		events = append(events, ev)
		applied = append(applied, ok)
	}))

	n.OpenTier3("a")
	n.OpenTier2()
	n.OpenTier3("a")

	assert.Equal(t, []Event{EventOpenTier3, EventOpenTier2, EventOpenTier3}, events)
	assert.Equal(t, []bool{false, true, true}, applied)
}

// No sequence of transitions can leave a tier-3 panel open under a closed tier 2.
func TestNoOrphanedTier3(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := New()
		steps := rapid.SliceOfN(rapid.IntRange(0, 6), 1, 50).Draw(t, "steps")
		categories := []string{"a", "b", "c"}

		for i, step := range steps {
			switch step {
			case 0:
				n.OpenTier2()
			case 1:
				n.CloseTier2()
			case 2:
				n.OpenTier3(categories[i%len(categories)])
			case 3:
				n.CloseTier3()
			case 4:
				n.OpenInsight("t", "v", insight.KindLost)
			case 5:
				n.CloseInsight()
			case 6:
				n.Back()
			}

			s := n.State()
			if s.Tier3Category != "" && !s.Tier2Open {
				t.Fatalf("step %d: tier3 %q open while tier2 closed", i, s.Tier3Category)
			}
		}
	})
}
