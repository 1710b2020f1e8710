// Simulation ties a game to the tick loop: production income, AI spending
// at cycle boundaries, and planner activation when a player comes under
// computer control.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/starfront-game/starfront/internal/ai"
	"github.com/starfront-game/starfront/internal/game"
)

// creditsPerEconomy is the income one economy installation yields per
// production cycle.
const creditsPerEconomy = 10

// Event is a notable occurrence in a game.
type Event struct {
	Tick        uint64 `json:"tick"`
	Description string `json:"description"`
	Category    string `json:"category"` // "lifecycle", "economy", "ai", etc.
}

// Simulation holds one game's running state and wires systems together.
type Simulation struct {
	Game   *game.Game
	Events []Event

	// Most recent planner output per player, kept for inspection; carriers
	// carry the authoritative assignments.
	Plans map[uuid.UUID][]ai.CarrierLoop
}

// NewSimulation wraps a game for ticking.
func NewSimulation(g *game.Game) *Simulation {
	return &Simulation{
		Game:  g,
		Plans: make(map[uuid.UUID][]ai.CarrierLoop),
	}
}

// TickGame runs every tick.
func (s *Simulation) TickGame(tick uint64) {
	s.Game.Tick = tick
}

// CycleStart runs on the first tick of each production cycle: AI players
// spend their economy budget.
func (s *Simulation) CycleStart(tick uint64) {
	if s.Game.State != game.GameStateInProgress {
		return
	}
	for _, p := range s.Game.Players {
		if !p.AIControlled {
			continue
		}
		if n := ai.SpendOnCycleStart(s.Game, p); n > 0 {
			s.record(tick, fmt.Sprintf("%s invested in %d economy upgrades", p.Alias, n), "economy")
		}
	}
}

// CycleEnd runs on the last tick of each production cycle: every player
// earns income, then AI players spend on industry and science.
func (s *Simulation) CycleEnd(tick uint64) {
	if s.Game.State != game.GameStateInProgress {
		return
	}
	for _, p := range s.Game.Players {
		income := int64(0)
		for _, star := range s.Game.StarsOwnedBy(p.ID) {
			income += int64(star.Infrastructure.Economy) * creditsPerEconomy
		}
		p.Credits += income

		if p.AIControlled {
			if n := ai.SpendOnCycleEnd(s.Game, p); n > 0 {
				s.record(tick, fmt.Sprintf("%s invested in %d industry/science upgrades", p.Alias, n), "economy")
			}
		}
	}
}

// SetAIControlled hands a player's empire to the computer and runs one
// planning pass. The resulting loops are assigned to carriers; the pass is
// not repeated on later ticks.
func (s *Simulation) SetAIControlled(playerID uuid.UUID) error {
	p := s.Game.PlayerByID(playerID)
	if p == nil {
		return game.ErrNotInGame
	}
	p.AIControlled = true

	loops := ai.PlanForPlayer(s.Game, playerID)
	s.Plans[playerID] = loops
	s.assignCarrierLoops(p, loops)

	slog.Info("AI activated", "game", s.Game.ID, "player", p.Alias, "loops", len(loops))
	s.record(s.Game.Tick, fmt.Sprintf("%s is now under AI control (%d supply loops)", p.Alias, len(loops)), "ai")
	return nil
}

// assignCarrierLoops mints one carrier per loop at the loop's source star.
// Movement execution happens elsewhere; the simulation only records the
// assignments.
func (s *Simulation) assignCarrierLoops(p *game.Player, loops []ai.CarrierLoop) {
	for _, loop := range loops {
		s.Game.Carriers = append(s.Game.Carriers, &game.Carrier{
			ID:      uuid.New(),
			OwnedBy: p.ID,
			AtStar:  loop.From.ID,
			Waypoints: []game.Waypoint{
				{Source: loop.From.ID, Destination: loop.To.ID},
				{Source: loop.To.ID, Destination: loop.From.ID},
			},
		})
	}
}

// Concede processes a player concession and activates the AI takeover.
func (s *Simulation) Concede(playerID uuid.UUID) error {
	if err := s.Game.Concede(playerID); err != nil {
		return err
	}
	p := s.Game.PlayerByID(playerID)
	s.record(s.Game.Tick, fmt.Sprintf("%s conceded", p.Alias), "lifecycle")
	return s.SetAIControlled(playerID)
}

func (s *Simulation) record(tick uint64, desc, category string) {
	s.Events = append(s.Events, Event{Tick: tick, Description: desc, Category: category})
}
