package ai

import (
	"testing"

	"github.com/google/uuid"

	"github.com/starfront-game/starfront/internal/game"
)

func spendingGame(credits int64, startPct, endPct float64) (*game.Game, *game.Player) {
	p := &game.Player{ID: uuid.New(), Alias: "Investor", Credits: credits}
	star := testStars([][2]float64{{0, 0}})[0]
	star.NaturalResources = 100
	star.OwnedBy = &p.ID

	settings := game.DefaultSettings()
	settings.CycleStartSpendPct = startPct
	settings.CycleEndSpendPct = endPct

	g := &game.Game{
		ID:       uuid.New(),
		Settings: settings,
		Players:  []*game.Player{p},
		Stars:    []*game.Star{star},
	}
	return g, p
}

func TestUpgradeCostScalesWithLevelAndResources(t *testing.T) {
	cases := []struct {
		base      int64
		level     int
		resources float64
		want      int64
	}{
		{25, 0, 100, 25},
		{25, 1, 100, 50},
		{25, 0, 50, 50},
		{50, 2, 100, 150},
		{25, 0, 0, 2500}, // zero resources clamp to 1
	}
	for _, tc := range cases {
		if got := upgradeCost(tc.base, tc.level, tc.resources); got != tc.want {
			t.Errorf("upgradeCost(%d, %d, %v) = %d, want %d",
				tc.base, tc.level, tc.resources, got, tc.want)
		}
	}
}

func TestSpendOnCycleStart(t *testing.T) {
	g, p := spendingGame(100, 1.0, 1.0)

	// Economy upgrades at 100 resources cost 25 then 50; the third (75)
	// exceeds the remaining budget.
	n := SpendOnCycleStart(g, p)
	if n != 2 {
		t.Errorf("expected 2 economy upgrades, got %d", n)
	}
	if p.Credits != 25 {
		t.Errorf("credits = %d, want 25", p.Credits)
	}
	if g.Stars[0].Infrastructure.Economy != 2 {
		t.Errorf("economy level = %d, want 2", g.Stars[0].Infrastructure.Economy)
	}
}

func TestSpendOnCycleStartRespectsFraction(t *testing.T) {
	g, p := spendingGame(100, 0.25, 1.0)

	// Budget is 25: exactly one economy upgrade.
	if n := SpendOnCycleStart(g, p); n != 1 {
		t.Errorf("expected 1 upgrade within the 25%% budget, got %d", n)
	}
	if p.Credits != 75 {
		t.Errorf("credits = %d, want 75", p.Credits)
	}
}

func TestSpendOnCycleEnd(t *testing.T) {
	g, p := spendingGame(200, 1.0, 1.0)

	// Industry at 100 resources: 50 then 100 (150 total). The leftover 50
	// cannot afford a 100-credit science installation.
	n := SpendOnCycleEnd(g, p)
	if n != 2 {
		t.Errorf("expected 2 upgrades, got %d", n)
	}
	if g.Stars[0].Infrastructure.Industry != 2 {
		t.Errorf("industry level = %d, want 2", g.Stars[0].Infrastructure.Industry)
	}
	if g.Stars[0].Infrastructure.Science != 0 {
		t.Errorf("science level = %d, want 0", g.Stars[0].Infrastructure.Science)
	}
	if p.Credits != 50 {
		t.Errorf("credits = %d, want 50", p.Credits)
	}
}

func TestSpendPrefersCheapestStar(t *testing.T) {
	g, p := spendingGame(30, 1.0, 1.0)
	poor := testStars([][2]float64{{50, 0}})[0]
	poor.NaturalResources = 25
	poor.OwnedBy = &p.ID
	g.Stars = append(g.Stars, poor)

	// Rich star: 25. Poor star: 100. Only the rich one fits the budget.
	if n := SpendOnCycleStart(g, p); n != 1 {
		t.Fatalf("expected 1 upgrade, got %d", n)
	}
	if g.Stars[0].Infrastructure.Economy != 1 || poor.Infrastructure.Economy != 0 {
		t.Error("upgrade must land on the cheapest star")
	}
}

func TestSpendWithNoStars(t *testing.T) {
	p := &game.Player{ID: uuid.New(), Credits: 1000}
	g := &game.Game{Settings: game.DefaultSettings(), Players: []*game.Player{p}}

	if n := SpendOnCycleStart(g, p); n != 0 {
		t.Errorf("no stars, no upgrades; got %d", n)
	}
	if p.Credits != 1000 {
		t.Errorf("credits must be untouched, got %d", p.Credits)
	}
}
