package tags

import "github.com/yohamta/donburi"

var (
	// Game marks the singleton entity carrying the session and per-frame state.
	Game = donburi.NewTag().SetName("Game")
)
