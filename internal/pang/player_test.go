package pang

import (
	"testing"

	"github.com/vovakirdan/tui-pang/internal/core"
)

func inputWith(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, act := range actions {
		in.Set(act)
	}
	return in
}

func TestPlayerMovement(t *testing.T) {
	tests := []struct {
		name   string
		startX float64
		action core.Action
		wantX  float64
	}{
		{"right", 300, core.ActionRight, 306},
		{"left", 300, core.ActionLeft, 294},
		{"right wall clamp", 590, core.ActionRight, 592},
		{"left wall clamp", 26, core.ActionLeft, 24},
		{"idle", 300, core.ActionNone, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestArena()
			p := a.Player()
			p.X = tt.startX

			a.Step(inputWith(tt.action), 0)

			if p.X != tt.wantX {
				t.Errorf("player x = %v, expected %v", p.X, tt.wantX)
			}
		})
	}
}

func TestPlayerOpposingDirectionsCancel(t *testing.T) {
	a, _ := newTestArena()
	p := a.Player()
	p.X = 300

	a.Step(inputWith(core.ActionLeft, core.ActionRight), 0)

	if p.X != 300 {
		t.Errorf("player x = %v, expected 300", p.X)
	}
}

func TestPlayerFiresOnPress(t *testing.T) {
	a, _ := newTestArena()
	p := a.Player()
	p.X = 100

	// Holding fire only shoots once
	for i := 0; i < 5; i++ {
		a.Step(inputWith(core.ActionFire), 0)
	}
	if a.ActiveShots() != 1 {
		t.Fatalf("active shots = %d after holding fire, expected 1", a.ActiveShots())
	}

	snap := a.Snapshot()
	if len(snap.ShotData) < 1 || snap.ShotData[0] != scaled(p.X+PlayerWidth/2) {
		t.Errorf("shot should leave from the middle of the player, data = %v", snap.ShotData)
	}

	a.Step(noInput(), 0)
	a.Step(inputWith(core.ActionFire), 0)
	if a.ActiveShots() != 2 {
		t.Fatalf("active shots = %d after a second press, expected 2", a.ActiveShots())
	}

	a.Step(noInput(), 0)
	a.Step(inputWith(core.ActionFire), 0)
	if a.ActiveShots() != MaxShots {
		t.Errorf("active shots = %d, the cap is %d", a.ActiveShots(), MaxShots)
	}
}

func TestPlayerHitEndsMatch(t *testing.T) {
	// Floor at 472 puts the player's box top at 400
	a := NewArena(newRecordCanvas(640, 496), 1, nil)
	p := a.Player()
	p.X = 100
	a.AddEntity(&Ball{X: 110, Y: 400, R: 10, VX: BallSpeedX})

	result := a.Step(noInput(), 0)

	if !result.State.GameOver || !a.GameOver() {
		t.Error("a ball touching the player should end the match")
	}
}

func TestPlayerTouches(t *testing.T) {
	p := &Player{X: 100, Y: 400}

	tests := []struct {
		name string
		ball Ball
		want bool
	}{
		{"overlapping box", Ball{X: 110, Y: 400, R: 10}, true},
		{"bottom level with box top", Ball{X: 110, Y: 390, R: 10}, true},
		{"above the box", Ball{X: 110, Y: 300, R: 10}, false},
		{"touching the left edge", Ball{X: 90, Y: 420, R: 10}, true},
		{"touching the right edge", Ball{X: 134, Y: 420, R: 10}, true},
		{"beside the box", Ball{X: 150, Y: 420, R: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.ball
			if got := p.touches(&b); got != tt.want {
				t.Errorf("touches(%v, %v, r=%v) = %v, expected %v", b.X, b.Y, b.R, got, tt.want)
			}
		})
	}
}
