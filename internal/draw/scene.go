package draw

import (
	"math"

	"github.com/tomz197/starfighter/internal/anim"
	"github.com/tomz197/starfighter/internal/loop"
	"github.com/tomz197/starfighter/internal/object"
	"github.com/tomz197/starfighter/internal/physics"
	"github.com/tomz197/starfighter/internal/scene"
	"github.com/tomz197/starfighter/internal/ui"
)

// Shape sizes for handles without their own dimensions, in arena units.
const (
	explosionRadius = 45.0
	flashRadius     = 12.0
	exitShipSize    = 110.0
	logoWidth       = 360.0
	logoHeight      = 90.0
	logoMinOpacity  = 0.3 // Below this the fading logo is no longer drawn
)

// DrawScene rasterizes every handle in g, bottom to top. Text is left to the caller.
func DrawScene(c *Canvas, g *scene.Graph) {
	g.Each(func(h scene.Handle) {
		switch v := h.(type) {
		case *object.Player:
			c.DrawPolygon(ship(v.X, v.Y, v.Width, v.Height, 1), true)
		case *object.Enemy:
			c.DrawPolygon(ship(v.X, v.Y, v.Width, v.Height, -1), false)
		case *object.Projectile:
			c.FillRect(v.Bounds())
		case *anim.Animation:
			drawAnimation(c, v)
		case ui.Widget:
			c.StrokeRect(v.Face())
			if v.Opacity() >= 1 {
				c.StrokeRect(inset(v.Face(), 4))
			}
		case *loop.Logo:
			if v.Opacity >= logoMinOpacity {
				c.StrokeRect(physics.CenteredBox(v.X, v.Y, logoWidth, logoHeight))
			}
		}
	})
}

// ship returns an arrowhead centered at (x, y) facing right (dir 1) or left (dir -1).
func ship(x, y, w, h, dir float64) []Point {
	back := x - dir*w/2
	return []Point{
		{back, y - h/2},
		{x + dir*w/2, y},
		{back, y + h/2},
		{x - dir*w/4, y},
	}
}

func drawAnimation(c *Canvas, a *anim.Animation) {
	x, y := a.Position()
	progress := float64(a.Frame()+1) / float64(a.Frames())

	switch a.Type() {
	case anim.Explosion, anim.PlayerExplosion:
		c.DrawPolygon(ring(x, y, explosionRadius*a.Scale()*progress, 8, 0), false)
	case anim.MuzzleFlash:
		c.DrawPolygon(ring(x, y, flashRadius*progress, 4, math.Pi/4), true)
	case anim.ExitStrategy:
		// A ship flying a lap around the exit screen.
		angle := progress * 2 * math.Pi
		size := exitShipSize * a.Scale()
		sx := x + math.Cos(angle)*size
		sy := y + math.Sin(angle)*size/2
		c.DrawPolygon(ship(sx, sy, size, size/2, 1), true)
	}
}

// ring returns a regular polygon with n sides.
func ring(x, y, r float64, n int, phase float64) []Point {
	pts := make([]Point, n)
	for i := range pts {
		a := phase + float64(i)*2*math.Pi/float64(n)
		pts[i] = Point{x + math.Cos(a)*r, y + math.Sin(a)*r}
	}
	return pts
}

func inset(b physics.Box, d float64) physics.Box {
	return physics.Box{X: b.X + d, Y: b.Y + d, W: b.W - 2*d, H: b.H - 2*d}
}
