package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the single monotonic clock shared by cooldowns, swing timing
// and transitions. NowMs is sampled once per update.
type ClockData struct {
	Start time.Time
	NowMs int64
}

var Clock = donburi.NewComponentType[ClockData]()
