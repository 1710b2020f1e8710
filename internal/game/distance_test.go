package game

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestDistance(t *testing.T) {
	if got := Distance(orb.Point{0, 0}, orb.Point{3, 4}); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := Distance(orb.Point{7, -2}, orb.Point{7, -2}); got != 0 {
		t.Errorf("Distance to self = %v, want 0", got)
	}
}

func TestAngleBetween(t *testing.T) {
	cases := []struct {
		a, b orb.Point
		want float64
	}{
		{orb.Point{0, 0}, orb.Point{1, 0}, 0},
		{orb.Point{0, 0}, orb.Point{0, 1}, math.Pi / 2},
		{orb.Point{0, 0}, orb.Point{-1, 0}, math.Pi},
	}
	for _, tc := range cases {
		if got := AngleBetween(tc.a, tc.b); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("AngleBetween(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestHyperspaceRange(t *testing.T) {
	s := Settings{LightYear: 50}
	cases := []struct {
		level int
		want  float64
	}{
		{0, 75},
		{1, 125},
		{4, 275},
	}
	for _, tc := range cases {
		if got := HyperspaceRange(s, tc.level); got != tc.want {
			t.Errorf("HyperspaceRange(level %d) = %v, want %v", tc.level, got, tc.want)
		}
	}
}

func TestMaxHyperspaceRange(t *testing.T) {
	g := &Game{Settings: Settings{LightYear: 50}}
	if got := g.MaxHyperspaceRange(); got != 0 {
		t.Errorf("empty game range = %v, want 0", got)
	}

	g.Players = []*Player{
		{Research: Research{Hyperspace: 0}},
		{Research: Research{Hyperspace: 2}},
		{Research: Research{Hyperspace: 1}},
	}
	if got := g.MaxHyperspaceRange(); got != 175 {
		t.Errorf("max range = %v, want 175 (level 2)", got)
	}
}
