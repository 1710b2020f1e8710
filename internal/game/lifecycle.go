// Game session lifecycle: joining, quitting, conceding, deletion.
// These are validation-heavy state transitions; the simulation engine
// reacts to the resulting flags (e.g. AI control after a concession).
package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrGameFull       = errors.New("game is full")
	ErrGameStarted    = errors.New("game has already started")
	ErrGameNotStarted = errors.New("game has not started")
	ErrAlreadyJoined  = errors.New("player has already joined this game")
	ErrNotInGame      = errors.New("player is not in this game")
	ErrPlayerDefeated = errors.New("player has already been defeated")
	ErrNotCreator     = errors.New("only the game creator may delete a game")
)

// Join adds a player to a pending game and claims their starting territory:
// an unclaimed capital far from existing players, plus its nearest unclaimed
// stars. Starts the game when the final slot fills.
func (g *Game) Join(p *Player) error {
	if g.State != GameStatePending {
		return ErrGameStarted
	}
	if len(g.Players) >= g.Settings.MaxPlayers {
		return ErrGameFull
	}
	if g.PlayerByID(p.ID) != nil {
		return ErrAlreadyJoined
	}

	if err := g.claimHomeStars(p.ID); err != nil {
		return fmt.Errorf("claim home stars: %w", err)
	}

	p.Credits = g.Settings.StartingCredits
	p.Achievements.Joined++
	g.Players = append(g.Players, p)

	if len(g.Players) == g.Settings.MaxPlayers {
		g.State = GameStateInProgress
	}
	return nil
}

// Quit removes a player from a game that has not yet started. Their stars
// return to neutral and the slot reopens.
func (g *Game) Quit(playerID uuid.UUID) error {
	if g.State != GameStatePending {
		return ErrGameStarted
	}
	p := g.PlayerByID(playerID)
	if p == nil {
		return ErrNotInGame
	}

	for _, s := range g.Stars {
		if s.OwnedBy != nil && *s.OwnedBy == playerID {
			s.OwnedBy = nil
		}
	}
	for i, q := range g.Players {
		if q.ID == playerID {
			g.Players = append(g.Players[:i], g.Players[i+1:]...)
			break
		}
	}
	p.Achievements.Joined--
	p.Achievements.Quit++
	return nil
}

// Concede marks a player defeated in a running game and hands their empire
// to computer control. Their stars stay owned so the AI can keep playing
// the position.
func (g *Game) Concede(playerID uuid.UUID) error {
	if g.State != GameStateInProgress {
		return ErrGameNotStarted
	}
	p := g.PlayerByID(playerID)
	if p == nil {
		return ErrNotInGame
	}
	if p.Defeated {
		return ErrPlayerDefeated
	}

	p.Defeated = true
	p.AIControlled = true
	p.Achievements.Defeated++

	if g.activePlayers() <= 1 {
		g.State = GameStateFinished
	}
	return nil
}

// Delete validates that a pending game may be torn down by the given
// player. The caller owns the actual removal from storage.
func (g *Game) Delete(byPlayerID uuid.UUID) error {
	if byPlayerID != g.CreatedBy {
		return ErrNotCreator
	}
	if g.State != GameStatePending {
		return ErrGameStarted
	}
	g.State = GameStateFinished
	return nil
}

func (g *Game) activePlayers() int {
	n := 0
	for _, p := range g.Players {
		if !p.Defeated {
			n++
		}
	}
	return n
}

// claimHomeStars assigns StarsPerPlayer unclaimed stars: a capital maximally
// distant from already-claimed territory, then its nearest unclaimed stars.
func (g *Game) claimHomeStars(playerID uuid.UUID) error {
	capital := g.pickCapital()
	if capital == nil {
		return errors.New("no unclaimed stars available")
	}
	capital.OwnedBy = &playerID

	for n := 1; n < g.Settings.StarsPerPlayer; n++ {
		var nearest *Star
		nearestDist := 0.0
		for _, s := range g.Stars {
			if s.OwnedBy != nil {
				continue
			}
			d := Distance(capital.Location, s.Location)
			if nearest == nil || d < nearestDist {
				nearest = s
				nearestDist = d
			}
		}
		if nearest == nil {
			return errors.New("not enough unclaimed stars for a full home territory")
		}
		nearest.OwnedBy = &playerID
	}
	return nil
}

// pickCapital chooses the unclaimed star farthest from all claimed stars,
// or the first unclaimed star when the galaxy is untouched.
func (g *Game) pickCapital() *Star {
	var claimed []*Star
	for _, s := range g.Stars {
		if s.OwnedBy != nil {
			claimed = append(claimed, s)
		}
	}

	var best *Star
	bestDist := -1.0
	for _, s := range g.Stars {
		if s.OwnedBy != nil {
			continue
		}
		if len(claimed) == 0 {
			return s
		}
		// Distance to the closest claimed star; maximize it.
		nearest := -1.0
		for _, c := range claimed {
			d := Distance(s.Location, c.Location)
			if nearest < 0 || d < nearest {
				nearest = d
			}
		}
		if nearest > bestDist {
			best = s
			bestDist = nearest
		}
	}
	return best
}
