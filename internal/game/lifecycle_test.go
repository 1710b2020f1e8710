package game

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

func lifecycleGame(maxPlayers, starsPerPlayer, starCount int) *Game {
	stars := make([]*Star, starCount)
	for i := range stars {
		stars[i] = &Star{
			ID:               uuid.New(),
			Name:             "S",
			Location:         orb.Point{float64(i * 10), float64((i % 3) * 10)},
			NaturalResources: 50,
		}
	}
	settings := DefaultSettings()
	settings.MaxPlayers = maxPlayers
	settings.StarsPerPlayer = starsPerPlayer
	return NewGame("Test", uuid.New(), settings, stars)
}

func newPlayer(alias string) *Player {
	return &Player{ID: uuid.New(), Alias: alias}
}

func TestJoinClaimsHomeStars(t *testing.T) {
	g := lifecycleGame(2, 3, 10)
	p := newPlayer("One")

	if err := g.Join(p); err != nil {
		t.Fatalf("join: %v", err)
	}
	if got := len(g.StarsOwnedBy(p.ID)); got != 3 {
		t.Errorf("owned stars = %d, want 3", got)
	}
	if p.Credits != g.Settings.StartingCredits {
		t.Errorf("credits = %d, want %d", p.Credits, g.Settings.StartingCredits)
	}
	if p.Achievements.Joined != 1 {
		t.Errorf("joined counter = %d, want 1", p.Achievements.Joined)
	}
	if g.State != GameStatePending {
		t.Error("game must stay pending until full")
	}
}

func TestJoinStartsWhenFull(t *testing.T) {
	g := lifecycleGame(2, 3, 10)
	if err := g.Join(newPlayer("One")); err != nil {
		t.Fatal(err)
	}
	if err := g.Join(newPlayer("Two")); err != nil {
		t.Fatal(err)
	}
	if g.State != GameStateInProgress {
		t.Errorf("state = %v, want in progress", g.State)
	}
	if err := g.Join(newPlayer("Three")); !errors.Is(err, ErrGameStarted) {
		t.Errorf("join after start: %v, want ErrGameStarted", err)
	}
}

func TestJoinValidations(t *testing.T) {
	g := lifecycleGame(3, 2, 10)
	p := newPlayer("One")
	if err := g.Join(p); err != nil {
		t.Fatal(err)
	}
	if err := g.Join(p); !errors.Is(err, ErrAlreadyJoined) {
		t.Errorf("duplicate join: %v, want ErrAlreadyJoined", err)
	}
}

func TestJoinCapitalsSpreadOut(t *testing.T) {
	g := lifecycleGame(2, 2, 8)
	p1, p2 := newPlayer("One"), newPlayer("Two")
	if err := g.Join(p1); err != nil {
		t.Fatal(err)
	}
	if err := g.Join(p2); err != nil {
		t.Fatal(err)
	}

	// No overlap between territories.
	for _, s := range g.StarsOwnedBy(p1.ID) {
		if *s.OwnedBy == p2.ID {
			t.Error("territory overlap")
		}
	}
	if len(g.StarsOwnedBy(p1.ID))+len(g.StarsOwnedBy(p2.ID)) != 4 {
		t.Error("each player should hold exactly 2 stars")
	}
}

func TestQuitReopensSlot(t *testing.T) {
	g := lifecycleGame(2, 3, 10)
	p := newPlayer("One")
	if err := g.Join(p); err != nil {
		t.Fatal(err)
	}
	if err := g.Quit(p.ID); err != nil {
		t.Fatalf("quit: %v", err)
	}
	if len(g.Players) != 0 {
		t.Error("player must leave the roster")
	}
	if got := len(g.StarsOwnedBy(p.ID)); got != 0 {
		t.Errorf("quitting must release stars, still owns %d", got)
	}
	if p.Achievements.Quit != 1 || p.Achievements.Joined != 0 {
		t.Errorf("achievements = %+v", p.Achievements)
	}

	if err := g.Quit(uuid.New()); !errors.Is(err, ErrNotInGame) {
		t.Errorf("quit by stranger: %v, want ErrNotInGame", err)
	}
}

func TestConcede(t *testing.T) {
	g := lifecycleGame(2, 3, 10)
	p1, p2 := newPlayer("One"), newPlayer("Two")
	g.Join(p1)
	g.Join(p2)

	if err := g.Concede(p1.ID); err != nil {
		t.Fatalf("concede: %v", err)
	}
	if !p1.Defeated || !p1.AIControlled {
		t.Error("conceding player must be defeated and AI-controlled")
	}
	if p1.Achievements.Defeated != 1 {
		t.Errorf("defeated counter = %d, want 1", p1.Achievements.Defeated)
	}
	if len(g.StarsOwnedBy(p1.ID)) != 3 {
		t.Error("conceded stars stay owned for the AI to play")
	}
	if g.State != GameStateFinished {
		t.Error("one active player left: game must finish")
	}

	if err := g.Concede(p1.ID); !errors.Is(err, ErrPlayerDefeated) && !errors.Is(err, ErrGameNotStarted) {
		t.Errorf("double concede: %v", err)
	}
}

func TestConcedeBeforeStart(t *testing.T) {
	g := lifecycleGame(2, 3, 10)
	p := newPlayer("One")
	g.Join(p)
	if err := g.Concede(p.ID); !errors.Is(err, ErrGameNotStarted) {
		t.Errorf("concede before start: %v, want ErrGameNotStarted", err)
	}
}

func TestDelete(t *testing.T) {
	g := lifecycleGame(2, 3, 10)

	if err := g.Delete(uuid.New()); !errors.Is(err, ErrNotCreator) {
		t.Errorf("delete by stranger: %v, want ErrNotCreator", err)
	}
	if err := g.Delete(g.CreatedBy); err != nil {
		t.Fatalf("delete by creator: %v", err)
	}
	if g.State != GameStateFinished {
		t.Error("deleted game must be finished")
	}

	g2 := lifecycleGame(1, 3, 10)
	g2.Join(newPlayer("Solo"))
	if err := g2.Delete(g2.CreatedBy); !errors.Is(err, ErrGameStarted) {
		t.Errorf("delete after start: %v, want ErrGameStarted", err)
	}
}
