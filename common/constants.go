package common

// World units are pixels; Y points down.
const (
	Gravity = 900.0

	ScreenWidth  = 1280
	ScreenHeight = 720
)
