package gamemath

// CameraOffset returns the horizontal scroll that centres the player in the
// viewport without showing anything past either end of the level.
func CameraOffset(playerCenterX, levelWidth, viewportWidth float64) float64 {
	maxOffset := max(0, levelWidth-viewportWidth)
	return Clamp(playerCenterX-viewportWidth/2, 0, maxOffset)
}
