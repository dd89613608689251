package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChaseThreshold(t *testing.T) {
	tests := []struct {
		tier int
		want int
	}{
		{0, 10},
		{1, 10},
		{2, 30},
		{3, 60},
		{4, 60},
		{10, 60},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, ChaseThreshold(tc.tier), "tier %d", tc.tier)
	}
}

func TestNewAdversaryClampsTier(t *testing.T) {
	a := testAdversary(0, 0, -2, 1)
	assert.Equal(t, 1, a.Tier())
}

func TestChaseFrequencyByTier(t *testing.T) {
	const ticks = 2000

	for _, tier := range []int{1, 2, 3, 10} {
		a := testAdversary(180, 180, tier, int64(tier)*7919)
		target := &Agent{X: 10000, Y: 180, Size: testTile, Speed: 2}
		terrain := openTerrain()

		chases := 0
		for i := 0; i < ticks; i++ {
			a.Move(terrain, target)
			switch a.LastMove() {
			case MovePursuit, MovePursuitBlocked:
				chases++
			}
			// Keep the adversary near the middle so wrapping never matters.
			a.X, a.Y = 180, 180
		}

		got := float64(chases) * 100 / ticks
		want := float64(ChaseThreshold(tier))
		assert.InDelta(t, want, got, 5, "tier %d chased %.1f%% of ticks", tier, got)
	}
}

func TestPursuitCandidates(t *testing.T) {
	tests := []struct {
		name   string
		tier   int
		tx, ty int
		want   []Direction
	}{
		{"horizontal dominant, low tier", 1, 100, 20, []Direction{Right}},
		{"horizontal dominant, tier 3 adds vertical", 3, 100, 20, []Direction{Right, Down}},
		{"horizontal dominant leftward", 3, -100, -20, []Direction{Left, Up}},
		{"vertical dominant", 2, 10, -80, []Direction{Up}},
		{"vertical dominant, tier 4", 4, -10, 80, []Direction{Down, Left}},
		{"tie prefers vertical", 3, 40, 40, []Direction{Down, Right}},
		{"zero delta", 3, 0, 0, []Direction{Up, Left}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := testAdversary(0, 0, tc.tier, 1)
			target := &Agent{X: tc.tx, Y: tc.ty, Size: testTile}
			assert.Equal(t, tc.want, a.pursuitCandidates(target))
		})
	}
}

func TestPursueFallsBackToSecondaryAxis(t *testing.T) {
	// Only vertical moves are free.
	vertical := terrainFunc{
		canOccupy: func(x, _, _ int) bool { return x == 100 },
		width:     19 * testTile,
	}
	target := &Agent{X: 300, Y: 160, Size: testTile}

	high := testAdversary(100, 100, 3, 1)
	assert.True(t, high.pursue(vertical, target))
	assert.Equal(t, Down, high.Dir)
	assert.Equal(t, 102, high.Y)

	low := testAdversary(100, 100, 2, 1)
	assert.False(t, low.pursue(vertical, target), "tier 2 has no fallback candidate")
	assert.Equal(t, 100, low.Y)
}

func TestAdversaryStuckKeepsHeading(t *testing.T) {
	a := testAdversary(100, 100, 1, 3)
	dir := a.Dir

	for i := 0; i < 50; i++ {
		a.Move(closedTerrain(), &Agent{X: 0, Y: 0, Size: testTile})
	}

	assert.Equal(t, 100, a.X)
	assert.Equal(t, 100, a.Y)
	assert.Equal(t, dir, a.Dir, "failed redirects keep the old heading")
}

func TestAdversaryWrapsAfterMove(t *testing.T) {
	a := testAdversary(-testTile, 0, 1, 5)
	a.Dir = Left

	// With no target, pursuit always fails and the adversary wanders.
	a.Move(openTerrain(), nil)

	assert.Equal(t, 19*testTile-testTile, a.X)
}

func TestAdversaryRedirectFindsOpening(t *testing.T) {
	// Only upward moves are free.
	up := terrainFunc{
		canOccupy: func(x, y, _ int) bool { return x == 100 && y < 100 },
		width:     19 * testTile,
	}
	a := testAdversary(100, 100, 1, 11)
	a.Dir = Left

	for i := 0; i < 20; i++ {
		a.redirect(up)
		if a.Dir == Up {
			break
		}
	}

	assert.Equal(t, Up, a.Dir)
	assert.Equal(t, 100, a.X, "redirect never moves the agent")
	assert.Equal(t, 100, a.Y)
}
