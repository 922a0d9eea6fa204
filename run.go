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

package main

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/postfx/config"
	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/effects"
	"github.com/jetsetilly/postfx/gles"
	"github.com/jetsetilly/postfx/gles/gl32"
	"github.com/jetsetilly/postfx/logger"
	"github.com/jetsetilly/postfx/modalflag"
	"github.com/jetsetilly/postfx/paths"
	"github.com/jetsetilly/postfx/pipeline"
	"github.com/jetsetilly/postfx/prefs"
	"github.com/jetsetilly/postfx/statsview"
	"github.com/jetsetilly/postfx/testcard"
	"github.com/jetsetilly/postfx/version"
	"github.com/jetsetilly/postfx/window"
	"github.com/jetsetilly/postfx/window/glfwwindow"
	"github.com/jetsetilly/postfx/window/sdlwindow"
)

// the default config file. it is used if it exists and no -config flag has
// been given.
const defaultConfig = "postfx.toml"

// backendFlag implements the flag.Value interface for config.Backend.
type backendFlag struct {
	backend config.Backend
}

func (b *backendFlag) String() string {
	return string(b.backend)
}

func (b *backendFlag) Set(s string) error {
	v, err := config.ParseBackend(s)
	if err != nil {
		return err
	}
	b.backend = v
	return nil
}

// options from the command line that are not part of the config.
type options struct {
	screenshot string
	memviz     string
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	cfgFile := md.AddString("config", "", fmt.Sprintf("pipeline configuration file (default %s)", paths.ResourcePath(defaultConfig)))
	var backend backendFlag
	md.AddVar(&backend, "backend", "windowing library: sdl, glfw")
	width := md.AddInt("width", 0, "window width (overrides config)")
	height := md.AddInt("height", 0, "window height (overrides config)")
	log := md.AddBool("log", false, "echo log to stdout")
	prefsCmd := md.AddString("prefs", "", "effect parameters. eg. \"blur.0::3.5; colour.1::0.2\"")
	screenshot := md.AddBool("screenshot", false, "save a JPEG of the first frame")
	mv := md.AddBool("memviz", false, "save a dot graph of the pipeline after creation")
	stats := false
	if statsview.Available() {
		md.AddVar(boolValue{&stats}, "statsview", fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf("too many arguments for %s mode", md)
	}

	if *log {
		logger.SetEcho(os.Stdout, true)
	}

	if stats {
		defer statsview.Launch()()
	}

	cfg, err := loadConfig(*cfgFile)
	if err != nil {
		return err
	}
	if backend.backend != "" {
		cfg.Window.Backend = backend.backend
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	prefs.PushCommandLineStack(*prefsCmd)
	params, err := newParameters(cfg)
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "postfx", "unused prefs: %s", unused)
	}
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "postfx", "parameters: %s", params)

	var opts options
	if *screenshot {
		opts.screenshot = fmt.Sprintf("%s.jpg", paths.UniqueFilename("screenshot", ""))
	}
	if *mv {
		opts.memviz = fmt.Sprintf("%s.dot", paths.UniqueFilename("memviz", ""))
	}

	return host(cfg, params, opts)
}

// boolValue implements flag.Value for a plain bool.
type boolValue struct {
	v *bool
}

func (b boolValue) String() string {
	if b.v == nil {
		return "false"
	}
	return fmt.Sprint(*b.v)
}

func (b boolValue) Set(s string) error {
	var v prefs.Bool
	if err := v.Set(s); err != nil {
		return err
	}
	*b.v = v.Get().(bool)
	return nil
}

func (b boolValue) IsBoolFlag() bool {
	return true
}

// loadConfig loads the named config file. If filename is empty the default
// config file is loaded if it exists, otherwise config.Default() is used.
func loadConfig(filename string) (config.Config, error) {
	if filename != "" {
		return config.Load(filename)
	}

	filename = paths.ResourcePath(defaultConfig)
	if _, err := os.Stat(filename); err == nil {
		return config.Load(filename)
	}

	logger.Log(logger.Allow, "postfx", "using default config")
	return config.Default(), nil
}

// newWindow opens a window with the backend named in the config.
func newWindow(cfg config.Window) (window.Window, error) {
	opts := window.Options{
		Title:  fmt.Sprintf("%s: %s", cfg.Title, version.String()),
		Width:  cfg.Width,
		Height: cfg.Height,
		VSync:  cfg.VSync,
	}

	switch cfg.Backend {
	case config.GLFW:
		return glfwwindow.New(opts)
	default:
		return sdlwindow.New(opts)
	}
}

// host opens the window, creates the pipeline and runs the frame loop until
// the window is closed.
func host(cfg config.Config, params parameters, opts options) (rerr error) {
	win, err := newWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer func() {
		rerr = errors.Join(rerr, win.Destroy())
	}()

	api, err := gl32.New()
	if err != nil {
		return err
	}
	ctx := gles.NewContext(api)
	logger.Logf(logger.Allow, "postfx", "%s", ctx.DriverInfo())

	var effs []effects.Effect
	for _, e := range cfg.Effects {
		eff, err := effects.New(ctx, e.Name)
		if err != nil {
			for _, e := range effs {
				_ = e.Destroy()
			}
			return err
		}
		effs = append(effs, eff)
	}

	w, h := win.DrawableSize()
	rnr, err := pipeline.NewRunner(ctx, w, h, effs)
	if err != nil {
		return err
	}
	defer func() {
		rerr = errors.Join(rerr, rnr.Destroy())
	}()

	scene, err := testcard.New(ctx)
	if err != nil {
		return err
	}
	defer func() {
		rerr = errors.Join(rerr, scene.Destroy())
	}()

	if opts.memviz != "" {
		saveMemviz(opts.memviz, rnr)
	}

	start := time.Now()

	// render the scene and update the effects for the current time
	prepare := func() error {
		seconds := float32(time.Since(start).Seconds())
		if err := rnr.BeginScene(); err != nil {
			return err
		}
		w, h := rnr.Dimensions()
		if err := scene.Draw(w, h, seconds); err != nil {
			return err
		}
		rnr.UpdateEach(func(i int, _ string) effects.Parameters {
			return params.forEffect(i, seconds)
		})
		return nil
	}

	screenshot := func(filename string) error {
		if err := prepare(); err != nil {
			return err
		}
		img, err := rnr.Screenshot()
		if err != nil {
			return err
		}
		saveJPEG(img, filename)
		return nil
	}

	for {
		switch ev := win.Poll(); ev {
		case window.Quit:
			logger.Logf(logger.Allow, "postfx", "%d frames", rnr.Frames())
			return nil

		case window.Resize:
			w, h := win.DrawableSize()
			if w <= 0 || h <= 0 {
				// minimised
				continue
			}
			if err := rnr.Resize(w, h); err != nil {
				return err
			}
			continue

		case window.Screenshot:
			if err := screenshot(fmt.Sprintf("%s.jpg", paths.UniqueFilename("screenshot", ""))); err != nil {
				return err
			}
			continue
		}

		if err := prepare(); err != nil {
			return err
		}
		if err := rnr.RunFrame(); err != nil {
			return err
		}
		win.Swap()

		if opts.screenshot != "" && rnr.Frames() == 1 {
			if err := screenshot(opts.screenshot); err != nil {
				return err
			}
		}
	}
}

// saveJPEG writes the image to the specified path.
func saveJPEG(img *image.RGBA, path string) {
	f, err := os.Create(path)
	if err != nil {
		logger.Logf(logger.Allow, "screenshot", "save failed: %v", err)
		return
	}

	err = jpeg.Encode(f, img, &jpeg.Options{Quality: 100})
	if err != nil {
		logger.Logf(logger.Allow, "screenshot", "save failed: %v", err)
		_ = f.Close()
		return
	}

	err = f.Close()
	if err != nil {
		logger.Logf(logger.Allow, "screenshot", "save failed: %v", err)
		return
	}

	logger.Logf(logger.Allow, "screenshot", "saved: %s", path)
}

// saveMemviz writes a dot graph of the pipeline to the specified path.
func saveMemviz(path string, rnr *pipeline.Runner) {
	f, err := os.Create(path)
	if err != nil {
		logger.Logf(logger.Allow, "memviz", "save failed: %v", err)
		return
	}
	memviz.Map(f, rnr)
	if err := f.Close(); err != nil {
		logger.Logf(logger.Allow, "memviz", "save failed: %v", err)
		return
	}
	logger.Logf(logger.Allow, "memviz", "saved: %s", path)
}
