package laseroids

import (
	"math"

	"github.com/vovakirdan/laseroids/internal/core"
)

// Renderer is the draw hook. The world calls it once per live body at the
// end of every tick, in a fixed order: stars, asteroids, bullets, player,
// then the alien if visible. Implementations must not mutate the bodies.
type Renderer interface {
	DrawStar(s *Star)
	DrawAsteroid(a *Asteroid)
	DrawBullet(b *Bullet)
	DrawPlayer(p *PlayerShip)
	DrawAlien(a *AlienShip)
}

// Draw invokes r for every live body.
func (w *World) Draw(r Renderer) {
	for i := range w.stars {
		r.DrawStar(&w.stars[i])
	}
	w.asteroids.Each(r.DrawAsteroid)
	w.bullets.Each(r.DrawBullet)
	r.DrawPlayer(&w.player)
	if w.alien.Visible {
		r.DrawAlien(&w.alien)
	}
}

// Glyphs used by ScreenRenderer.
const (
	StarGlyph     = '.'
	AsteroidGlyph = '#'
	BulletGlyph   = '*'
	FlameGlyph    = '~'
	AlienGlyphs   = "<=>"
)

// kindColors is the color of each body kind on screen.
var kindColors = [...]core.Color{
	KindStar:     core.ColorGray,
	KindAsteroid: core.ColorWhite,
	KindPlayer:   core.ColorBrightCyan,
	KindAlien:    core.ColorMagenta,
	KindBullet:   core.ColorBrightYellow,
}

func colorOf(b *Body) core.Color {
	if b.Kind < 0 || int(b.Kind) >= len(kindColors) {
		return core.ColorDefault
	}
	return kindColors[b.Kind]
}

// shipGlyphs indexed by 45° sector, starting at +x and going clockwise.
var shipGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// ScreenRenderer rasterizes the field onto a character screen, scaling
// field units to cells. Asteroids crossing an edge are drawn on both sides.
type ScreenRenderer struct {
	screen *core.Screen
	field  core.Field
}

// NewScreenRenderer creates a renderer that draws into screen.
func NewScreenRenderer(screen *core.Screen, field core.Field) *ScreenRenderer {
	return &ScreenRenderer{screen: screen, field: field}
}

// cell maps a field point to a screen cell.
func (r *ScreenRenderer) cell(p core.Point) (int, int) {
	x := math.Floor(p[0] / r.field.W * float64(r.screen.Width()))
	y := math.Floor(p[1] / r.field.H * float64(r.screen.Height()))
	return int(x), int(y)
}

// DrawStar draws a dim dot.
func (r *ScreenRenderer) DrawStar(s *Star) {
	x, y := r.cell(s.Position)
	r.screen.SetColor(x, y, StarGlyph, colorOf(&s.Body))
}

// DrawAsteroid draws the polygon outline.
func (r *ScreenRenderer) DrawAsteroid(a *Asteroid) {
	outline := a.Outline()
	if len(outline) < 2 {
		return
	}
	for _, origin := range r.images(a.Position, a.Radius) {
		j := len(outline) - 1
		for i := range outline {
			x0, y0 := r.cell(origin.Add(outline[j]))
			x1, y1 := r.cell(origin.Add(outline[i]))
			r.screen.DrawLine(x0, y0, x1, y1, AsteroidGlyph, colorOf(&a.Body))
			j = i
		}
	}
}

// DrawBullet draws the bullet segment.
func (r *ScreenRenderer) DrawBullet(b *Bullet) {
	x0, y0 := r.cell(b.Position)
	x1, y1 := r.cell(b.Position.Add(b.Size))
	r.screen.DrawLine(x0, y0, x1, y1, BulletGlyph, colorOf(&b.Body))
}

// DrawPlayer draws an arrow pointing along the heading, a flame while
// thrusting and brackets while the shield is up.
func (r *ScreenRenderer) DrawPlayer(p *PlayerShip) {
	x, y := r.cell(p.Position)
	sector := core.NormalizeDegrees(p.Orientation+22) / 45
	r.screen.SetColor(x, y, shipGlyphs[sector], colorOf(&p.Body))

	if p.Acceleration > 0 {
		fx, fy := r.cell(r.field.Wrap(p.Position.Sub(p.Heading().Mul(p.Radius * 2))))
		if fx != x || fy != y {
			r.screen.SetColor(fx, fy, FlameGlyph, core.ColorOrange)
		}
	}
	if p.Shield {
		r.screen.SetColor(x-1, y, '(', core.ColorBrightGreen)
		r.screen.SetColor(x+1, y, ')', core.ColorBrightGreen)
	}
}

// DrawAlien draws the saucer.
func (r *ScreenRenderer) DrawAlien(a *AlienShip) {
	x, y := r.cell(a.Position)
	for i, ch := range []rune(AlienGlyphs) {
		r.screen.SetColor(x-1+i, y, ch, colorOf(&a.Body))
	}
}

// images returns p plus its copies shifted by the field size on every axis
// where a body of radius rad overlaps the edge.
func (r *ScreenRenderer) images(p core.Point, rad float64) []core.Point {
	xs := []float64{p[0]}
	if p[0]-rad < 0 {
		xs = append(xs, p[0]+r.field.W)
	}
	if p[0]+rad >= r.field.W {
		xs = append(xs, p[0]-r.field.W)
	}
	ys := []float64{p[1]}
	if p[1]-rad < 0 {
		ys = append(ys, p[1]+r.field.H)
	}
	if p[1]+rad >= r.field.H {
		ys = append(ys, p[1]-r.field.H)
	}

	out := make([]core.Point, 0, len(xs)*len(ys))
	for _, x := range xs {
		for _, y := range ys {
			out = append(out, core.Point{x, y})
		}
	}
	return out
}
