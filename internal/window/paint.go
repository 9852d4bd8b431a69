package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/starfighter/internal/anim"
	"github.com/tomz197/starfighter/internal/app"
	"github.com/tomz197/starfighter/internal/loop"
	"github.com/tomz197/starfighter/internal/loop/config"
	"github.com/tomz197/starfighter/internal/object"
	"github.com/tomz197/starfighter/internal/physics"
	"github.com/tomz197/starfighter/internal/scene"
	"github.com/tomz197/starfighter/internal/score"
	"github.com/tomz197/starfighter/internal/ui"
)

var (
	backgroundColor = color.RGBA{8, 10, 24, 255}
	playerColor     = color.RGBA{90, 200, 255, 255}
	enemyColor      = color.RGBA{255, 90, 90, 255}
	projectileColor = color.RGBA{255, 230, 120, 255}
	explosionColor  = color.RGBA{255, 160, 40, 255}
	buttonColor     = color.RGBA{60, 70, 120, 255}
	textColor       = color.RGBA{235, 235, 245, 255}
	logoColor       = color.RGBA{255, 180, 40, 255}
)

const (
	lineWidth       = 2
	explosionRadius = 45
	flashRadius     = 12
	exitShipSize    = 110
)

// painter draws scene handles with vector shapes and bitmap text.
type painter struct {
	face font.Face
}

func newPainter() *painter {
	return &painter{face: basicfont.Face7x13}
}

func (p *painter) paint(screen *ebiten.Image, a *app.App) {
	screen.Fill(backgroundColor)

	a.Scene.Each(func(h scene.Handle) {
		switch v := h.(type) {
		case *object.Player:
			p.ship(screen, v.X, v.Y, v.Width, v.Height, 1, playerColor)
		case *object.Enemy:
			p.ship(screen, v.X, v.Y, v.Width, v.Height, -1, enemyColor)
		case *object.Projectile:
			b := v.Bounds()
			vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), projectileColor, true)
		case *anim.Animation:
			p.animation(screen, v)
		case ui.Widget:
			p.button(screen, v)
		case *loop.Logo:
			p.centeredText(screen, "S T A R F I G H T E R", v.X, v.Y, fade(logoColor, v.Opacity))
		case *score.Tracker:
			text.Draw(screen, a.ScoreText(), p.face, config.ScoreTextX, config.ScoreTextY, textColor)
		}
	})
}

func (p *painter) ship(dst *ebiten.Image, x, y, w, h, dir float64, clr color.Color) {
	back := x - dir*w/2
	pts := [][2]float64{
		{back, y - h/2},
		{x + dir*w/2, y},
		{back, y + h/2},
		{x - dir*w/4, y},
	}
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(dst, float32(a[0]), float32(a[1]), float32(b[0]), float32(b[1]), lineWidth, clr, true)
	}
}

func (p *painter) animation(dst *ebiten.Image, a *anim.Animation) {
	x, y := a.Position()
	progress := float64(a.Frame()+1) / float64(a.Frames())

	switch a.Type() {
	case anim.Explosion, anim.PlayerExplosion:
		r := float32(explosionRadius * a.Scale() * progress)
		vector.StrokeCircle(dst, float32(x), float32(y), r, lineWidth, fade(explosionColor, 1-progress/2), true)
	case anim.MuzzleFlash:
		vector.DrawFilledCircle(dst, float32(x), float32(y), float32(flashRadius*progress), projectileColor, true)
	case anim.ExitStrategy:
		angle := progress * 2 * math.Pi
		size := exitShipSize * a.Scale()
		p.ship(dst, x+math.Cos(angle)*size, y+math.Sin(angle)*size/2, size, size/2, 1, playerColor)
	}
}

func (p *painter) button(dst *ebiten.Image, w ui.Widget) {
	b := w.Face()
	vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), fade(buttonColor, w.Opacity()), true)
	vector.StrokeRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), lineWidth, fade(textColor, w.Opacity()), true)
	p.centeredText(dst, w.Caption(), b.X+b.W/2, b.Y+b.H/2, textColor)
}

func (p *painter) centeredText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	bounds := text.BoundString(p.face, s)
	tx := int(x) - bounds.Dx()/2
	ty := int(y) + bounds.Dy()/2
	text.Draw(dst, s, p.face, tx, ty, clr)
}

// fade scales a color's alpha by opacity in [0, 1].
func fade(c color.RGBA, opacity float64) color.RGBA {
	opacity = physics.Clamp(opacity, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * opacity),
		G: uint8(float64(c.G) * opacity),
		B: uint8(float64(c.B) * opacity),
		A: uint8(float64(c.A) * opacity),
	}
}
