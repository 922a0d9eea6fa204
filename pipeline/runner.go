// This file is part of postfx.
//
// postfx is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// postfx is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with postfx.  If not, see <https://www.gnu.org/licenses/>.

package pipeline

import (
	"errors"
	"image"

	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/effects"
	"github.com/jetsetilly/postfx/framebuffer"
	"github.com/jetsetilly/postfx/gles"
	"github.com/jetsetilly/postfx/logger"
)

// Runner is the post-processing pipeline.
type Runner struct {
	ctx *gles.Context

	flip    *framebuffer.Flip
	effects []effects.Effect

	// used when effects is empty
	passthrough effects.Effect

	// frames processed since creation
	frames int
}

// NewRunner is the preferred method of initialisation for the Runner type.
// Dimensions should match the window's framebuffer.
//
// The Runner takes ownership of the effects and will Destroy() them when the
// Runner is destroyed, including when NewRunner() fails.
func NewRunner(ctx *gles.Context, width int32, height int32, effs []effects.Effect) (*Runner, error) {
	r := &Runner{
		ctx:     ctx,
		effects: effs,
	}

	var err error

	r.flip, err = framebuffer.NewFlip(ctx, width, height, framebuffer.Config{Depth: true})
	if err != nil {
		_ = r.Destroy()
		return nil, curated.Errorf("pipeline: %v", err)
	}

	if len(effs) == 0 {
		r.passthrough, err = effects.NewCopy(ctx)
		if err != nil {
			_ = r.Destroy()
			return nil, curated.Errorf("pipeline: %v", err)
		}
		logger.Log(logger.Allow, "pipeline", "no effects: using passthrough")
	}

	logger.Logf(logger.Allow, "pipeline", "%dx%d: %v", width, height, r.Effects())

	return r, nil
}

// chain returns the effects to run for a frame.
func (r *Runner) chain() []effects.Effect {
	if len(r.effects) == 0 {
		return []effects.Effect{r.passthrough}
	}
	return r.effects
}

// Effects returns the names of the effects in the order they are run. The
// passthrough is not included.
func (r *Runner) Effects() []string {
	n := make([]string, len(r.effects))
	for i, e := range r.effects {
		n[i] = e.Name()
	}
	return n
}

// Dimensions returns the size of the render targets.
func (r *Runner) Dimensions() (width int32, height int32) {
	return r.flip.Dimensions()
}

// Frames returns the number of frames processed by RunFrame().
func (r *Runner) Frames() int {
	return r.frames
}

// BeginScene binds the scene target and sets the viewport to cover it. The
// host should render the scene after calling BeginScene(). The scene target
// has a depth attachment.
func (r *Runner) BeginScene() error {
	r.flip.Reset()

	g := r.ctx.Guard()
	r.flip.Scene().Bind(g)
	if err := g.Err(); err != nil {
		return curated.Errorf("pipeline: %v", err)
	}
	return nil
}

// Update forwards the parameters to every effect.
func (r *Runner) Update(p effects.Parameters) {
	for _, e := range r.chain() {
		e.Update(p)
	}
}

// UpdateEach calls f for every effect, in chain order, and forwards the
// returned parameters to that effect only. The passthrough is not included.
func (r *Runner) UpdateEach(f func(index int, name string) effects.Parameters) {
	for i, e := range r.effects {
		e.Update(f(i, e.Name()))
	}
}

// process runs every effect. if toScreen is true the final effect draws to the
// default framebuffer. otherwise it draws to a target, which is returned.
func (r *Runner) process(toScreen bool) (*framebuffer.Target, error) {
	defer r.flip.Reset()

	w, h := r.flip.Dimensions()
	chain := r.chain()

	for i, e := range chain {
		last := i == len(chain)-1

		g := r.ctx.Guard()
		dest := r.flip.Write()
		if last && toScreen {
			dest = nil
			g.Do("bind screen", func(gl gles.API) { gl.BindFramebuffer(gles.FRAMEBUFFER, 0) })
			g.Do("screen viewport", func(gl gles.API) { gl.Viewport(0, 0, w, h) })
		} else {
			dest.Bind(g)
		}
		if err := g.Err(); err != nil {
			return nil, curated.Errorf("pipeline: %v", err)
		}

		if err := e.Draw(r.flip.Read()); err != nil {
			return nil, curated.Errorf("pipeline: %v", err)
		}

		if last {
			return dest, nil
		}
		r.flip.Swap()
	}

	return nil, nil
}

// RunFrame runs every effect with the last effect drawing to the screen. The
// Runner is then ready for the next call to BeginScene().
func (r *Runner) RunFrame() error {
	_, err := r.process(true)
	if err != nil {
		return err
	}
	r.frames++
	return nil
}

// Screenshot runs every effect in the same way as RunFrame() except that the
// output is captured to an image rather than drawn to the screen.
//
// The scene target may be overwritten during processing. The scene must be
// rendered again before calling RunFrame().
func (r *Runner) Screenshot() (*image.RGBA, error) {
	dest, err := r.process(false)
	if err != nil {
		return nil, err
	}

	img, err := dest.Snapshot()
	if err != nil {
		return nil, curated.Errorf("pipeline: %v", err)
	}

	// leave the default framebuffer bound as RunFrame() would
	err = r.ctx.Verify("bind screen", func(gl gles.API) { gl.BindFramebuffer(gles.FRAMEBUFFER, 0) })
	if err != nil {
		return nil, curated.Errorf("pipeline: %v", err)
	}

	return img, nil
}

// Resize the render targets. The old GPU objects are released before the new
// ones are created.
func (r *Runner) Resize(width int32, height int32) error {
	if err := r.flip.Resize(width, height); err != nil {
		return curated.Errorf("pipeline: %v", err)
	}
	return nil
}

// Destroy releases the effects and the render targets. It is safe to call
// Destroy() more than once.
func (r *Runner) Destroy() error {
	var err error
	for _, e := range r.effects {
		err = errors.Join(err, e.Destroy())
	}
	r.effects = nil

	if r.passthrough != nil {
		err = errors.Join(err, r.passthrough.Destroy())
		r.passthrough = nil
	}

	if r.flip != nil {
		err = errors.Join(err, r.flip.Destroy())
		r.flip = nil
	}

	return err
}
