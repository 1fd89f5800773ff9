package components

import "github.com/yohamta/donburi"

// HealthData mirrors the player's health for the HUD.
type HealthData struct {
	Current int
	Max     int
}

var Health = donburi.NewComponentType[HealthData]()
