package game

import "image/color"

var (
	colorBgTop       = color.RGBA{R: 255, G: 232, B: 244, A: 255}
	colorBgMid       = color.RGBA{R: 255, G: 200, B: 226, A: 255}
	colorBgBottom    = color.RGBA{R: 255, G: 176, B: 213, A: 255}
	colorDot         = color.RGBA{R: 255, G: 150, B: 200, A: 64}
	colorPanel       = color.RGBA{R: 255, G: 240, B: 248, A: 248}
	colorPanelBorder = color.RGBA{R: 240, G: 130, B: 180, A: 128}
	colorInk         = color.RGBA{R: 140, G: 50, B: 90, A: 255}
	colorInkSoft     = color.RGBA{R: 190, G: 100, B: 140, A: 255}
	colorPetal       = color.RGBA{R: 255, G: 183, B: 197, A: 255}
	colorPetalEdge   = color.RGBA{R: 244, G: 140, B: 170, A: 255}
	colorEnvelope    = color.RGBA{R: 255, G: 228, B: 238, A: 255}
	colorEnvelopeLid = color.RGBA{R: 248, G: 196, B: 216, A: 255}
	colorSeal        = color.RGBA{R: 214, G: 60, B: 110, A: 255}
	colorGold        = color.RGBA{R: 255, G: 210, B: 120, A: 255}
	colorLeaf        = color.RGBA{R: 110, G: 170, B: 110, A: 255}

	// Primary button gradient ends and states.
	colorButton        = color.RGBA{R: 244, G: 114, B: 168, A: 255}
	colorButtonHover   = color.RGBA{R: 247, G: 143, B: 192, A: 255}
	colorButtonPressed = color.RGBA{R: 224, G: 85, B: 154, A: 255}
	colorButtonText    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorButtonBorder  = color.RGBA{R: 255, G: 200, B: 225, A: 128}

	// Decline button is outlined, not filled.
	colorDecline       = color.RGBA{R: 230, G: 120, B: 165, A: 180}
	colorDeclineBorder = color.RGBA{R: 230, G: 120, B: 165, A: 90}

	// Shimmer gradient stops.
	shimmerStops = []color.RGBA{
		{R: 232, G: 96, B: 154, A: 255},
		{R: 249, G: 184, B: 212, A: 255},
		{R: 212, G: 77, B: 138, A: 255},
		{R: 249, G: 198, B: 219, A: 255},
	}

	// Burst symbol tints, indexed by card.Symbol.
	symbolColors = [...]color.RGBA{
		{R: 255, G: 105, B: 180, A: 255},
		{R: 255, G: 145, B: 190, A: 255},
		{R: 255, G: 80, B: 150, A: 255},
		{R: 230, G: 60, B: 120, A: 255},
		{R: 255, G: 215, B: 120, A: 255},
		{R: 220, G: 40, B: 80, A: 255},
		{R: 255, G: 120, B: 170, A: 255},
		{R: 240, G: 90, B: 140, A: 255},
	}
)
