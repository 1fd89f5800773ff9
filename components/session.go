package components

import (
	"github.com/automoto/epicfantasy/shared/core"
	"github.com/yohamta/donburi"
)

type SessionData struct {
	Session *core.Session
}

var Session = donburi.NewComponentType[SessionData]()
