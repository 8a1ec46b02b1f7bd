package ski

import "math"

// Snapshot contains the complete game state for determinism checks.
// Positions are stored in hundredths of a world unit.
type Snapshot struct {
	Tick     uint64
	State    string
	Score    int
	Distance int
	Speed    int
	PlayerX  int
	PlayerVX int

	// Each obstacle is 4 ints: Type, X, Y, VX
	ObstacleData []int
}

func fixed(v float64) int {
	return int(math.Round(v * 100))
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tick,
		State:    g.state,
		Score:    g.score,
		Distance: fixed(g.distance),
		Speed:    fixed(g.speed),
		PlayerX:  fixed(g.player.X),
		PlayerVX: fixed(g.player.VX),
	}
	for _, o := range g.obstacles {
		snap.ObstacleData = append(snap.ObstacleData, int(o.Type), fixed(o.X), fixed(o.Y), fixed(o.VX))
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Distance) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Speed)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerVX) //#nosec G115 -- hash computation
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(len(snap.ObstacleData)) //#nosec G115 -- hash computation
	for _, v := range snap.ObstacleData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
