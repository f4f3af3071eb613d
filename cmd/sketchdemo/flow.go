// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/calc"
	"github.com/gogpu/sketch/noise"
)

const (
	fieldScale = 0.004
	speed      = 1.6
	paletteLen = 5
)

type particle struct {
	x, y   float64
	px, py float64
	color  gg.RGBA
	life   float64
}

// flowField moves particles along a fractal noise field and draws their
// trails.
type flowField struct {
	rng        *calc.Rand
	gen        *noise.Generator
	count      int
	background gg.RGBA
	quit       func()

	particles []particle
	palette   []gg.RGBA
	z         float64
	face      text.Face

	backdrop  *gg.ImageBuf
	backdropW int
	backdropH int
}

func newFlowField(cfg demoConfig) *flowField {
	return &flowField{
		rng:        calc.NewRand(cfg.Seed),
		gen:        noise.New(cfg.Seed),
		count:      cfg.Particles,
		background: gg.Hex(cfg.Background),
	}
}

func (f *flowField) hooks() sketch.Hooks {
	return sketch.Hooks{
		Setup:       f.setup,
		Update:      f.update,
		Draw:        f.draw,
		PointerDown: f.burst,
		KeyDown:     f.keyDown,
	}
}

func (f *flowField) setup(d *sketch.Driver) {
	d.SetClearColor(f.background.Color())
	if src, err := text.NewFontSource(goregular.TTF); err != nil {
		sketch.Logger().Warn("sketchdemo: HUD font unavailable", "err", err)
	} else {
		f.face = src.Face(13)
	}
	f.reseed()
	f.particles = make([]particle, f.count)
	for i := range f.particles {
		f.spawn(&f.particles[i], f.rng.Float(0, float64(d.Width())), f.rng.Float(0, float64(d.Height())))
	}
	f.reset(d)
}

// reset repaints the backdrop, rebuilding it when the canvas changed size.
func (f *flowField) reset(d *sketch.Driver) {
	if f.backdrop == nil || f.backdropW != d.Width() || f.backdropH != d.Height() {
		if err := f.renderBackdrop(d); err != nil {
			sketch.Logger().Warn("sketchdemo: backdrop", "err", err)
		}
	}
	if err := d.Clear(); err != nil {
		sketch.Logger().Warn("sketchdemo: clear", "err", err)
	}
	if f.backdrop != nil {
		d.Context().DrawImage(f.backdrop, 0, 0)
	}
}

// renderBackdrop pre-renders a vertical gradient offscreen.
func (f *flowField) renderBackdrop(d *sketch.Driver) error {
	off, err := d.CreateOffscreen(0, 0)
	if err != nil {
		return err
	}
	defer func() { _ = off.Close() }()

	const bands = 48
	w, h := float64(off.Width()), float64(off.Height())
	top := f.background
	bottom := f.background.Lerp(gg.Black, 0.6)
	for i := 0; i < bands; i++ {
		t := calc.Normalize(float64(i), 0, bands-1)
		off.SetColor(top.Lerp(bottom, t).Color())
		off.DrawRectangle(0, h*float64(i)/bands, w, h/bands+1)
		if err := off.Fill(); err != nil {
			return err
		}
	}
	f.backdrop = gg.ImageBufFromImage(off.Image())
	f.backdropW, f.backdropH = off.Width(), off.Height()
	return nil
}

func (f *flowField) reseed() {
	f.palette = f.palette[:0]
	for i := 0; i < paletteLen; i++ {
		f.palette = append(f.palette, gg.Hex(f.rng.Color()))
	}
}

func (f *flowField) spawn(p *particle, x, y float64) {
	p.x, p.y = x, y
	p.px, p.py = x, y
	p.color = f.palette[f.rng.Int(0, len(f.palette)-1)]
	p.life = f.rng.Float(60, 240)
}

func (f *flowField) update(d *sketch.Driver, dt float64) {
	bounds := calc.Rect{Width: float64(d.Width()), Height: float64(d.Height())}
	f.z += 0.002 * dt

	for i := range f.particles {
		p := &f.particles[i]
		n := f.gen.Fractal(p.x*fieldScale, p.y*fieldScale, f.z, 3, 0.5, 2)
		angle := calc.Map(n, -1, 1, 0, 4*math.Pi)

		p.px, p.py = p.x, p.y
		p.x += math.Cos(angle) * speed * dt
		p.y += math.Sin(angle) * speed * dt
		p.life -= dt

		if p.life <= 0 || !calc.ContainsPoint(bounds, p.x, p.y) {
			f.spawn(p, f.rng.Float(0, bounds.Width), f.rng.Float(0, bounds.Height))
		}
	}
}

func (f *flowField) draw(d *sketch.Driver, dt float64) {
	dc := d.Context()

	// Fade old trails toward the background.
	dc.SetRGBA(f.background.R, f.background.G, f.background.B, 0.04)
	dc.DrawRectangle(0, 0, float64(d.Width()), float64(d.Height()))
	_ = dc.Fill()

	for i := range f.particles {
		p := &f.particles[i]
		c := p.color
		c.A = calc.Clamp(p.life/60, 0.1, 0.8)
		_ = d.LineStyled(p.px, p.py, p.x, p.y, sketch.LineStyle{Color: c.Color(), Width: 1.2})
	}

	f.drawHUD(d, dt)
}

func (f *flowField) drawHUD(d *sketch.Driver, dt float64) {
	if f.face == nil {
		return
	}
	dc := d.Context()
	dc.SetRGBA(0, 0, 0, 0.6)
	dc.DrawRoundedRectangle(8, 8, 220, 24, 6)
	_ = dc.Fill()

	fps := 0.0
	if dt > 0 {
		fps = d.FPS() / dt
	}
	dc.SetFont(f.face)
	dc.SetRGB(1, 1, 1)
	dc.DrawString(fmt.Sprintf("%d particles  %.0f fps  frame %d", len(f.particles), fps, d.Frames()), 16, 25)
}

// burst respawns a handful of particles around the pointer.
func (f *flowField) burst(d *sketch.Driver) {
	if len(f.particles) == 0 {
		return
	}
	p := d.Pointer()
	for i := 0; i < 40; i++ {
		idx := f.rng.Int(0, len(f.particles)-1)
		a := f.rng.Float(0, 2*math.Pi)
		r := f.rng.Float(0, 30)
		f.spawn(&f.particles[idx], p.X+math.Cos(a)*r, p.Y+math.Sin(a)*r)
	}
}

func (f *flowField) keyDown(d *sketch.Driver) {
	switch d.Keys().Code() {
	case sketch.KeySpace:
		d.SetAnimate(!d.Animating())
	case 'C':
		f.reset(d)
		d.RequestRedraw()
	case 'R':
		f.reseed()
		for i := range f.particles {
			f.particles[i].color = f.palette[i%len(f.palette)]
		}
	case sketch.KeyEscape:
		if f.quit != nil {
			f.quit()
		}
	}
}
