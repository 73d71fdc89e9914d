// Package pang implements the match simulation: a player walks along the floor
// firing grappling shots at bouncing balls that split when hit.
//
// The Arena owns all live entities and advances them once per frame. Entities
// never hold on to the Arena; it is handed to them on every call so they can
// request mutations and query the layout.
package pang

import "github.com/vovakirdan/tui-pang/internal/core"

// Entity is anything that needs one advance-and-render call per frame.
// Implemented by Player, Ball, Shot and Flash.
type Entity interface {
	// AdvanceAndRender moves the entity by one simulation step and draws it.
	// Mutations requested through the arena during the call take effect
	// immediately in the live collection, but never within the frame in progress.
	AdvanceAndRender(a *Arena, c core.Canvas)
}
