package pang

// Snapshot contains the match state for determinism checks and debugging.
// Uses primitive types only; positions and velocities are scaled by 1000.
type Snapshot struct {
	Tick          uint64
	Score         int
	GameOver      bool
	SpawnInterval int64
	LastSpawn     int64
	ActiveShots   int
	PlayerX       int

	// Each ball is 5 ints: X, Y, R, VX, VY
	BallCount int
	BallData  []int

	// Each shot is 2 ints: X, Y
	ShotCount int
	ShotData  []int

	FlashCount int
}

func scaled(v float64) int {
	return int(v * 1000)
}

// Snapshot returns the current match state.
func (a *Arena) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          uint64(a.tickCount), //#nosec G115 -- tick count is always positive
		Score:         a.score,
		GameOver:      a.gameOver,
		SpawnInterval: a.spawnInterval,
		LastSpawn:     a.lastSpawn,
		ActiveShots:   a.activeShots,
		PlayerX:       scaled(a.player.X),
	}

	for _, e := range a.entities {
		switch v := e.(type) {
		case *Ball:
			snap.BallCount++
			snap.BallData = append(snap.BallData, scaled(v.X), scaled(v.Y), scaled(v.R), scaled(v.VX), scaled(v.VY))
		case *Shot:
			snap.ShotCount++
			snap.ShotData = append(snap.ShotData, scaled(v.X), scaled(v.Y))
		case *Flash:
			snap.FlashCount++
		}
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpawnInterval) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LastSpawn)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ActiveShots)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallCount)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShotCount)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FlashCount)    //#nosec G115 -- hash computation
	if snap.GameOver {
		h = h*31 + 1
	}

	for _, v := range snap.BallData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.ShotData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
