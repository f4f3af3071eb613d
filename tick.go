// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sketch

import "time"

func (d *Driver) requestFrame() {
	d.cancelFrame = d.host.RequestFrame(d.tick)
}

// tick runs one iteration of the frame loop. The next frame is requested
// whether or not the hooks ran.
func (d *Driver) tick(now time.Time) {
	d.cancelFrame = nil
	if d.state != StateRunning {
		return
	}

	if d.fullscreen {
		d.fitViewport()
	}

	dt := d.delta(now)
	d.lastTick = now
	d.frames++

	if d.animate || d.redraw {
		d.redraw = false
		if d.hooks.Update != nil {
			d.hooks.Update(d, dt)
		}
		if d.state != StateRunning {
			return
		}
		if d.hooks.Draw != nil {
			d.hooks.Draw(d, dt)
		}
	}

	// A hook may have disposed the driver.
	if d.state == StateRunning {
		d.requestFrame()
	}
}

// delta returns the elapsed time since the previous tick in units of
// frames at the target rate: elapsed milliseconds * FPS / 1000.
func (d *Driver) delta(now time.Time) float64 {
	ms := float64(now.Sub(d.lastTick)) / float64(time.Millisecond)
	return ms * (d.fps / 1000)
}

// fitViewport resizes the canvas when the host viewport changed size.
func (d *Driver) fitViewport() {
	vw, vh := d.host.Viewport()
	if vw <= 0 || vh <= 0 || (vw == d.width && vh == d.height) {
		return
	}
	if err := d.Resize(vw, vh); err != nil {
		d.logger().Warn("sketch: viewport resize failed", "surface", d.id, "err", err)
		return
	}
	d.logger().Debug("sketch: resized to viewport", "surface", d.id, "width", vw, "height", vh)
}
