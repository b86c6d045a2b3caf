// Package render draws the game overlays with OpenCV and owns the display
// windows that deliver pointer clicks and key presses back to the game.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/teslashibe/colorchase/pkg/game"
	"github.com/teslashibe/colorchase/pkg/tracking"
	"gocv.io/x/gocv"
)

// Overlay colors.
var (
	ColorBlob   = color.RGBA{0, 255, 0, 255}
	ColorZone   = color.RGBA{0, 0, 255, 255}
	ColorBox    = color.RGBA{0, 0, 0, 255}
	ColorText   = color.RGBA{255, 255, 255, 255}
	ColorButton = color.RGBA{255, 0, 0, 255}
	ColorStat   = color.RGBA{0, 255, 255, 255}
)

// HUD layout, in frame pixels.
var (
	ScoreBox = image.Rect(10, 10, 140, 50)
	TimerBox = image.Rect(150, 10, 280, 50)
)

// DrawBlob outlines the tracked object.
func DrawBlob(frame *gocv.Mat, det *tracking.Detection) {
	if det == nil {
		return
	}
	gocv.Circle(frame, det.Center(), int(det.Radius), ColorBlob, 2)
}

// DrawZone outlines the target zone.
func DrawZone(frame *gocv.Mat, z game.Zone) {
	gocv.Circle(frame, z.Center, z.Radius, ColorZone, 2)
}

// DrawPoint shows the transient scoring indicator.
func DrawPoint(frame *gocv.Mat) {
	gocv.PutText(frame, "Point!", image.Pt(50, 50), gocv.FontHersheySimplex, 1, ColorBlob, 2)
}

// DrawHUD draws the score box, the countdown box and the end button.
func DrawHUD(frame *gocv.Mat, score, remaining int, button image.Rectangle) {
	gocv.Rectangle(frame, ScoreBox, ColorBox, -1)
	gocv.PutText(frame, fmt.Sprintf("Score: %d", score), image.Pt(15, 40), gocv.FontHersheySimplex, 0.5, ColorText, 1)

	gocv.Rectangle(frame, TimerBox, ColorBox, -1)
	gocv.PutText(frame, fmt.Sprintf("Time: %ds", remaining), image.Pt(155, 40), gocv.FontHersheySimplex, 0.5, ColorText, 1)

	gocv.Rectangle(frame, buttonRect(button), ColorButton, -1)
	gocv.PutText(frame, "End game", image.Pt(button.Min.X+10, button.Min.Y+25), gocv.FontHersheySimplex, 0.6, ColorText, 1)
}

// SummaryLines returns the three lines of the end-of-game summary.
func SummaryLines(s game.Summary) []string {
	return []string{
		"Game Summary",
		fmt.Sprintf("Final score: %d", s.Score),
		fmt.Sprintf("Total time: %ds", s.TotalSeconds()),
	}
}

// SummaryImage renders the summary on a black canvas of the given size.
// The caller owns the returned Mat.
func SummaryImage(s game.Summary, width, height int) gocv.Mat {
	img := gocv.NewMatWithSizeWithScalar(height, width, gocv.MatTypeCV8UC3, gocv.NewScalar(0, 0, 0, 0))

	lines := SummaryLines(s)
	x := width / 4
	gocv.PutTextWithParams(&img, lines[0], image.Pt(x, 100), gocv.FontHersheySimplex, 1, ColorText, 2, gocv.LineAA, false)
	gocv.PutTextWithParams(&img, lines[1], image.Pt(x, 200), gocv.FontHersheySimplex, 0.8, ColorStat, 1, gocv.LineAA, false)
	gocv.PutTextWithParams(&img, lines[2], image.Pt(x, 300), gocv.FontHersheySimplex, 0.8, ColorStat, 1, gocv.LineAA, false)

	return img
}

// buttonRect converts the inclusive click area into the half-open rectangle
// used for drawing, keeping the fill inside the frame.
func buttonRect(r image.Rectangle) image.Rectangle {
	return image.Rect(r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1)
}
