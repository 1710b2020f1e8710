// Package game defines the starfront domain model: games, players, stars,
// and carriers. All state is in-memory; persistence snapshots live in the
// persistence package.
package game

import (
	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// GameState tracks the lifecycle of a game session.
type GameState uint8

const (
	GameStatePending    GameState = iota // Waiting for players
	GameStateInProgress                  // Ticking
	GameStateFinished                    // Concluded or abandoned
)

// Settings holds per-game tuning values.
type Settings struct {
	MaxPlayers      int     `json:"max_players"`
	StarsPerPlayer  int     `json:"stars_per_player"`
	LightYear       float64 `json:"light_year"`      // Base distance unit for range formulas
	TicksPerCycle   uint64  `json:"ticks_per_cycle"` // Length of one production cycle
	StartingCredits int64   `json:"starting_credits"`

	// Fixed spending fractions applied by AI players at cycle boundaries.
	CycleStartSpendPct float64 `json:"cycle_start_spend_pct"` // Economy, first tick
	CycleEndSpendPct   float64 `json:"cycle_end_spend_pct"`   // Industry/science, last tick
}

// DefaultSettings returns a reasonable starting configuration.
func DefaultSettings() Settings {
	return Settings{
		MaxPlayers:         4,
		StarsPerPlayer:     8,
		LightYear:          50,
		TicksPerCycle:      24,
		StartingCredits:    500,
		CycleStartSpendPct: 0.5,
		CycleEndSpendPct:   1.0,
	}
}

// Research tracks a player's technology levels.
type Research struct {
	Hyperspace      int `json:"hyperspace"` // Governs carrier travel range
	Scanning        int `json:"scanning"`
	Terraforming    int `json:"terraforming"`
	Experimentation int `json:"experimentation"`
	Weapons         int `json:"weapons"`
	Banking         int `json:"banking"`
}

// Achievements accumulates a player's cross-game bookkeeping counters.
type Achievements struct {
	Joined    int `json:"joined"`
	Quit      int `json:"quit"`
	Defeated  int `json:"defeated"`
	Victories int `json:"victories"`
}

// Player is a participant in a game, human or computer-controlled.
type Player struct {
	ID           uuid.UUID    `json:"id"`
	Alias        string       `json:"alias"`
	Credits      int64        `json:"credits"`
	Research     Research     `json:"research"`
	AIControlled bool         `json:"ai_controlled"`
	Defeated     bool         `json:"defeated"`
	Achievements Achievements `json:"achievements"`
}

// Infrastructure counts the three upgradeable installations on a star.
type Infrastructure struct {
	Economy  int `json:"economy"`
	Industry int `json:"industry"`
	Science  int `json:"science"`
}

// Star is a location in the galaxy. Owner is nil while the star is
// unclaimed (neutral territory).
type Star struct {
	ID               uuid.UUID      `json:"id"`
	Name             string         `json:"name"`
	OwnedBy          *uuid.UUID     `json:"owned_by,omitempty"`
	Location         orb.Point      `json:"location"`
	Infrastructure   Infrastructure `json:"infrastructure"`
	NaturalResources float64        `json:"natural_resources"` // 10–90 scale
}

// Waypoint is one leg of a carrier's patrol route.
type Waypoint struct {
	Source      uuid.UUID `json:"source"`
	Destination uuid.UUID `json:"destination"`
}

// Carrier ferries infrastructure output between stars. Movement execution
// lives outside this package; the model only records the assigned loop.
type Carrier struct {
	ID        uuid.UUID  `json:"id"`
	OwnedBy   uuid.UUID  `json:"owned_by"`
	AtStar    uuid.UUID  `json:"at_star"`
	Waypoints []Waypoint `json:"waypoints"`
}

// Game is one running session: its players, its star field, and its carriers.
type Game struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	CreatedBy uuid.UUID  `json:"created_by"`
	Settings  Settings   `json:"settings"`
	State     GameState  `json:"state"`
	Tick      uint64     `json:"tick"`
	Players   []*Player  `json:"players"`
	Stars     []*Star    `json:"stars"`
	Carriers  []*Carrier `json:"carriers"`
}

// NewGame creates a pending game over a generated star field.
func NewGame(name string, createdBy uuid.UUID, settings Settings, stars []*Star) *Game {
	return &Game{
		ID:        uuid.New(),
		Name:      name,
		CreatedBy: createdBy,
		Settings:  settings,
		State:     GameStatePending,
		Stars:     stars,
	}
}

// PlayerByID returns the player with the given ID, or nil.
func (g *Game) PlayerByID(id uuid.UUID) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// StarByID returns the star with the given ID, or nil.
func (g *Game) StarByID(id uuid.UUID) *Star {
	for _, s := range g.Stars {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// StarsOwnedBy returns the stars controlled by the given player, in the
// game's stable star order.
func (g *Game) StarsOwnedBy(playerID uuid.UUID) []*Star {
	var owned []*Star
	for _, s := range g.Stars {
		if s.OwnedBy != nil && *s.OwnedBy == playerID {
			owned = append(owned, s)
		}
	}
	return owned
}

// HostileStarsTo returns every star owned by another active (non-defeated)
// player. Unclaimed stars are neutral and never hostile.
func (g *Game) HostileStarsTo(playerID uuid.UUID) []*Star {
	var hostile []*Star
	for _, s := range g.Stars {
		if s.OwnedBy == nil || *s.OwnedBy == playerID {
			continue
		}
		owner := g.PlayerByID(*s.OwnedBy)
		if owner == nil || owner.Defeated {
			continue
		}
		hostile = append(hostile, s)
	}
	return hostile
}
