package ui

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"missile-defense/internal/config"
	"missile-defense/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// Уровень угрозы растёт каждые threatStep очков
const threatStep = 100

// ScoreIndicator показывает уровень угрозы римскими цифрами и всплывающий
// прирост очков. Счёт узнаёт из событий ScoreChanged.
type ScoreIndicator struct {
	X, Y             int
	Color            color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
	LastChange       time.Time

	face      font.Face
	score     int
	lastDelta int
}

var _ event.Listener = (*ScoreIndicator)(nil)

// NewScoreIndicator создает индикатор с центром по X в точке x.
func NewScoreIndicator(x, y int, face font.Face) *ScoreIndicator {
	return &ScoreIndicator{
		X:                x,
		Y:                y,
		Color:            config.TextLightColor,
		OutlineColor:     config.BackgroundColor,
		OutlineThickness: 1,
		face:             face,
	}
}

// OnEvent реализует интерфейс event.Listener.
func (i *ScoreIndicator) OnEvent(e event.Event) {
	d, ok := e.Data.(event.ScoreData)
	if !ok {
		return
	}
	i.score = d.Score
	i.lastDelta = d.Delta
	i.LastChange = time.Now()
}

func (i *ScoreIndicator) Score() int { return i.score }

// ThreatLevel — номер уровня угрозы для счёта, начиная с 1.
func ThreatLevel(score int) int {
	if score < 0 {
		return 1
	}
	return 1 + score/threatStep
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор на экране.
func (i *ScoreIndicator) Draw(screen *ebiten.Image) {
	level := ThreatLevel(i.score)
	label := toRoman(level)

	textColor := i.Color
	if level%5 == 0 {
		textColor = config.EnemyColor
	}

	bounds := text.BoundString(i.face, label)
	x := i.X - bounds.Dx()/2

	// Обводка
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, i.face, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, i.face, x, i.Y, textColor)

	// Прирост висит полсекунды
	if i.lastDelta > 0 && time.Since(i.LastChange) < 500*time.Millisecond {
		delta := fmt.Sprintf("+%d", i.lastDelta)
		text.Draw(screen, delta, i.face, x+bounds.Dx()+8, i.Y, config.BatteryColor)
	}
}
