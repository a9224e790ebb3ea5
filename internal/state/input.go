package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pressedPoints собирает клики мыши и касания, начавшиеся в этом кадре.
func pressedPoints() [][2]int {
	var points [][2]int
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		points = append(points, [2]int{x, y})
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		points = append(points, [2]int{x, y})
	}
	return points
}

// confirmPressed — пробел, Enter или любой клик/касание.
func confirmPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		len(pressedPoints()) > 0
}

func quitPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyQ)
}
