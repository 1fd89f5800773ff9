package components

import "github.com/yohamta/donburi"

// CameraData is the horizontal scroll applied by every world renderer.
type CameraData struct {
	X float64
}

var Camera = donburi.NewComponentType[CameraData]()
