package pang

import (
	"fmt"
	"io"
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-pang/internal/core"
)

// Arena is the live match: it owns the entities, score, spawn timer, shot
// counter and game-over flag, and drives one simulation step per frame.
type Arena struct {
	canvas   core.Canvas
	logger   *log.Logger
	matchLog *log.Logger // logger tagged with the current match ID
	matchID  uuid.UUID
	rng      *rand.Rand
	seed     int64

	entities []Entity
	frame    []Entity // Per-frame snapshot buffer, reused between steps
	player   *Player
	input    core.InputFrame

	score         int
	spawnInterval int64 // ms between spawns
	lastSpawn     int64 // ms timestamp of the previous spawn
	activeShots   int
	gameOver      bool
	tickCount     int
}

// NewArena creates an arena drawing onto canvas and starts a match.
// A nil logger discards all output.
func NewArena(canvas core.Canvas, seed int64, logger *log.Logger) *Arena {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	a := &Arena{
		canvas: canvas,
		logger: logger,
	}
	a.Reset(seed)
	return a
}

// Reset starts a new match with a single player and fresh counters.
func (a *Arena) Reset(seed int64) {
	a.matchID = uuid.New()
	a.matchLog = a.logger.With("match", a.matchID.String())
	a.seed = seed
	a.rng = rand.New(rand.NewSource(seed))
	clear(a.entities)
	a.entities = a.entities[:0]
	a.input = core.NewInputFrame()
	a.score = 0
	a.spawnInterval = SpawnIntervalStart
	a.lastSpawn = 0
	a.activeShots = 0
	a.gameOver = false
	a.tickCount = 0

	a.player = newPlayer(a)
	a.AddEntity(a.player)

	a.matchLog.Info("match started", "seed", seed, "width", a.canvas.Width(), "height", a.canvas.Height())
}

// Step advances the match by one frame and renders it.
// nowMillis is a wall-clock timestamp used only for the spawn timer.
func (a *Arena) Step(in core.InputFrame, nowMillis int64) core.StepResult {
	if a.gameOver {
		return core.StepResult{State: a.State()}
	}

	a.input = in
	a.tickCount++

	c := a.canvas
	c.Clear()
	c.FillRect(0, 0, Margin, float64(c.Height()), wallColor)
	c.FillRect(a.RightMargin(), 0, Margin, float64(c.Height()), wallColor)
	c.FillRect(0, a.FloorY(), float64(c.Width()), Margin, wallColor)

	// Entities added or removed during the loop only show up next frame.
	a.frame = append(a.frame[:0], a.entities...)
	for _, e := range a.frame {
		e.AdvanceAndRender(a, c)
	}
	clear(a.frame)

	a.maybeSpawn(nowMillis)

	if a.gameOver {
		a.matchLog.Info("game over", "score", a.score, "ticks", a.tickCount)
	}

	c.DrawText(fmt.Sprintf("Score: %d", a.score), 30, 2, 18, scoreColor)

	return core.StepResult{State: a.State()}
}

// maybeSpawn drops a new ball from the ceiling once the interval has elapsed.
// The ball is placed so it starts clear of both walls.
func (a *Arena) maybeSpawn(now int64) {
	if now-a.lastSpawn <= a.spawnInterval {
		return
	}

	left, right := a.LeftMargin()+BallMaxRadius, a.RightMargin()-BallMaxRadius
	span := max(int(right-left), 1)
	x := left + float64(a.rng.Intn(span))

	a.AddEntity(NewBall(a, x))
	a.lastSpawn = now
	a.spawnInterval = max(a.spawnInterval-SpawnIntervalStep, SpawnIntervalMin)

	a.matchLog.Debug("ball spawned", "x", x, "next_interval", a.spawnInterval)
}

// AddEntity appends e to the live collection.
func (a *Arena) AddEntity(e Entity) {
	a.entities = append(a.entities, e)
}

// RemoveEntity drops e from the live collection.
// Returns false, and does nothing else, if e was not present.
func (a *Arena) RemoveEntity(e Entity) bool {
	i := slices.Index(a.entities, e)
	if i < 0 {
		return false
	}
	a.entities = slices.Delete(a.entities, i, i+1)
	return true
}

// Entities returns a copy of the live collection in order.
func (a *Arena) Entities() []Entity {
	return slices.Clone(a.entities)
}

// Balls returns the balls currently alive, in collection order.
// Reflects additions and removals made earlier in the same frame.
func (a *Arena) Balls() []*Ball {
	var balls []*Ball
	for _, e := range a.entities {
		if b, ok := e.(*Ball); ok {
			balls = append(balls, b)
		}
	}
	return balls
}

// MatchID identifies the current match in logs. It changes on every Reset.
func (a *Arena) MatchID() uuid.UUID {
	return a.matchID
}

// Player returns the match's player.
func (a *Arena) Player() *Player {
	return a.player
}

// Input returns the input state of the frame being simulated.
func (a *Arena) Input() core.InputFrame {
	return a.input
}

// fireShot creates a shot at x unless the on-screen limit is reached.
func (a *Arena) fireShot(x float64) *Shot {
	if a.activeShots >= MaxShots {
		return nil
	}
	s := newShot(x, a.FloorY())
	a.activeShots++
	a.AddEntity(s)
	return s
}

// destroyShot removes s and releases its slot.
// The counter only moves when the shot was actually still alive.
func (a *Arena) destroyShot(s *Shot) {
	if a.RemoveEntity(s) && a.activeShots > 0 {
		a.activeShots--
	}
}

// ActiveShots returns how many shots are on screen.
func (a *Arena) ActiveShots() int {
	return a.activeShots
}

// IncrementScore adds one point.
func (a *Arena) IncrementScore() {
	a.score++
}

// NotifyPlayerHit ends the match. Later calls have no effect.
func (a *Arena) NotifyPlayerHit() {
	a.gameOver = true
}

// LeftMargin is the x-coordinate of the inner face of the left wall.
func (a *Arena) LeftMargin() float64 {
	return Margin
}

// RightMargin is the x-coordinate of the inner face of the right wall.
func (a *Arena) RightMargin() float64 {
	return float64(a.canvas.Width()) - Margin
}

// FloorY is the y-coordinate of the floor surface.
func (a *Arena) FloorY() float64 {
	return float64(a.canvas.Height()) - Margin
}

// centerX splits the arena into the halves used to pick a ball's direction.
func (a *Arena) centerX() float64 {
	return (a.LeftMargin() + a.RightMargin()) / 2
}

// Score returns the current score.
func (a *Arena) Score() int {
	return a.score
}

// SpawnInterval returns the current delay between spawns in milliseconds.
func (a *Arena) SpawnInterval() int64 {
	return a.spawnInterval
}

// GameOver reports whether the player has been hit.
func (a *Arena) GameOver() bool {
	return a.gameOver
}

// State returns the current game state.
func (a *Arena) State() core.GameState {
	return core.GameState{
		Score:    a.score,
		GameOver: a.gameOver,
	}
}
