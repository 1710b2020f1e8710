// Cycle-boundary spending for AI players: a fixed fraction of credits goes
// to economy on the first tick of a production cycle, and to industry then
// science on the last. Upgrades always go to the cheapest eligible star.
package ai

import (
	"github.com/starfront-game/starfront/internal/game"
)

const (
	baseEconomyCost  = 25
	baseIndustryCost = 50
	baseScienceCost  = 100
)

// upgradeCost scales the base cost by the next level and the star's
// natural resources: rich stars upgrade cheaply.
func upgradeCost(base int64, level int, resources float64) int64 {
	if resources < 1 {
		resources = 1
	}
	return int64(float64(base) * float64(level+1) * (100.0 / resources))
}

// SpendOnCycleStart invests the configured fraction of the player's
// credits into economy infrastructure. Returns the number of upgrades.
func SpendOnCycleStart(g *game.Game, p *game.Player) int {
	budget := int64(float64(p.Credits) * g.Settings.CycleStartSpendPct)
	return spendGreedy(g, p, budget, func(s *game.Star) (int64, func()) {
		cost := upgradeCost(baseEconomyCost, s.Infrastructure.Economy, s.NaturalResources)
		return cost, func() { s.Infrastructure.Economy++ }
	})
}

// SpendOnCycleEnd invests the configured fraction into industry first,
// then science with whatever remains. Returns the number of upgrades.
func SpendOnCycleEnd(g *game.Game, p *game.Player) int {
	budget := int64(float64(p.Credits) * g.Settings.CycleEndSpendPct)

	before := p.Credits
	n := spendGreedy(g, p, budget, func(s *game.Star) (int64, func()) {
		cost := upgradeCost(baseIndustryCost, s.Infrastructure.Industry, s.NaturalResources)
		return cost, func() { s.Infrastructure.Industry++ }
	})

	remaining := budget - (before - p.Credits)
	n += spendGreedy(g, p, remaining, func(s *game.Star) (int64, func()) {
		cost := upgradeCost(baseScienceCost, s.Infrastructure.Science, s.NaturalResources)
		return cost, func() { s.Infrastructure.Science++ }
	})
	return n
}

// spendGreedy repeatedly buys the cheapest available upgrade across the
// player's stars until the budget (or the player's credits) run out.
func spendGreedy(g *game.Game, p *game.Player, budget int64, price func(*game.Star) (int64, func())) int {
	owned := g.StarsOwnedBy(p.ID)
	upgrades := 0

	for {
		var bestCost int64
		var bestBuy func()
		for _, s := range owned {
			cost, buy := price(s)
			if bestBuy == nil || cost < bestCost {
				bestCost = cost
				bestBuy = buy
			}
		}
		if bestBuy == nil || bestCost > budget || bestCost > p.Credits {
			return upgrades
		}
		bestBuy()
		budget -= bestCost
		p.Credits -= bestCost
		upgrades++
	}
}
