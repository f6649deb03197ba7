// Package viewer implements the interactive model viewer loop.
package viewer

import (
	"fmt"
	"log/slog"
	gomath "math"
	"time"

	"github.com/Faultbox/goraster/internal/config"
	"github.com/Faultbox/goraster/internal/engine/camera"
	"github.com/Faultbox/goraster/internal/engine/debug"
	"github.com/Faultbox/goraster/internal/engine/framebuffer"
	"github.com/Faultbox/goraster/internal/engine/input"
	"github.com/Faultbox/goraster/internal/engine/lighting"
	"github.com/Faultbox/goraster/internal/engine/model"
	"github.com/Faultbox/goraster/internal/engine/renderer"
	"github.com/Faultbox/goraster/internal/engine/window"
	"github.com/Faultbox/goraster/pkg/math"
)

const (
	scancodeP      = 19 // SDL_SCANCODE_P
	scancodeEscape = 41 // SDL_SCANCODE_ESCAPE
	scancodeSpace  = 44 // SDL_SCANCODE_SPACE
	scancodeF12    = 69 // SDL_SCANCODE_F12
)

const pulseAmplitude = 0.08

// Viewer owns the window, the software rendering pipeline and the
// loaded model.
type Viewer struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	frame    *framebuffer.Framebuffer
	renderer *renderer.Renderer
	input    *input.Input

	model      *model.Model
	cam        *camera.Camera
	orbit      *camera.OrbitCamera
	screenshot *debug.ScreenshotCapture

	// Animation state
	spinning   bool
	spinAngle  float32
	pulsing    bool
	pulsePhase float32

	// Mouse drag state
	dragging   bool
	lastMouseX int
	lastMouseY int
}

// New creates a viewer showing the model at the given OBJ path.
func New(cfg *config.Config, modelPath string) (*Viewer, error) {
	slog.Info("initializing viewer",
		"model", modelPath,
		"width", cfg.Graphics.Width,
		"height", cfg.Graphics.Height,
	)

	m, err := model.LoadOBJFile(modelPath)
	if err != nil {
		return nil, fmt.Errorf("loading model: %w", err)
	}
	slog.Info("model loaded",
		"vertices", len(m.Positions),
		"faces", len(m.Faces),
	)

	palette := framebuffer.DefaultPalette()
	if len(cfg.Render.Palette) > 0 {
		palette, err = framebuffer.ParsePalette(cfg.Render.Palette, cfg.Render.Background)
		if err != nil {
			return nil, fmt.Errorf("loading palette: %w", err)
		}
	}

	v := &Viewer{
		cfg:      cfg,
		model:    m,
		spinning: cfg.Viewer.AutoSpin,
	}

	v.window, err = window.New(window.Config{
		Title:      "goraster - " + modelPath,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	v.frame = framebuffer.New(cfg.Graphics.Width, cfg.Graphics.Height, palette)
	v.renderer = renderer.New(renderer.Config{
		LightDir: lighting.Direction(cfg.Render.LightLongitude, cfg.Render.LightLatitude),
	})
	v.input = input.New()
	v.screenshot = debug.NewScreenshotCapture("", "goraster")

	v.cam = camera.New(cfg.Graphics.Width, cfg.Graphics.Height, cfg.Render.FOV)
	v.orbit = camera.NewOrbitCamera()
	min, max := m.Bounds()
	v.orbit.FitToBounds(min, max)

	slog.Info("viewer initialized")
	return v, nil
}

// Run starts the main loop and blocks until the viewer quits.
func (v *Viewer) Run() error {
	v.running = true

	var frameBudget time.Duration
	if v.cfg.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(v.cfg.Graphics.FPSLimit)
	}

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	slog.Info("starting viewer loop")

	for v.running {
		frameStart := time.Now()
		dt := float32(frameStart.Sub(lastTime).Seconds())
		lastTime = frameStart

		// 1. Process input
		if v.input.Update() {
			v.running = false
			break
		}
		v.handleEvents()

		// 2. Update animation and camera
		v.update(dt)

		// 3. Render into the framebuffer and present
		v.frame.Clear()
		stats := v.renderer.DrawModel(v.frame, v.cam, v.model)
		if err := v.window.Present(v.frame.Image()); err != nil {
			return fmt.Errorf("present error: %w", err)
		}

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if v.cfg.Viewer.ShowFPS {
				v.window.SetTitle(fmt.Sprintf("goraster - %d fps, %d faces", frameCount, stats.FacesDrawn))
			}
			slog.Debug("fps", "count", frameCount, "drawn", stats.FacesDrawn, "culled", stats.FacesCulled)
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameBudget > 0 {
			if elapsed := time.Since(frameStart); elapsed < frameBudget {
				time.Sleep(frameBudget - elapsed)
			}
		}
	}

	return nil
}

// handleEvents reacts to the events collected this frame.
func (v *Viewer) handleEvents() {
	for _, event := range v.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			v.frame.Resize(event.Width, event.Height)
			v.cam.Width = event.Width
			v.cam.Height = event.Height

		case input.EventKeyDown:
			switch event.Key {
			case scancodeEscape:
				v.running = false
			case scancodeSpace:
				v.spinning = !v.spinning
			case scancodeP:
				v.pulsing = !v.pulsing
				if !v.pulsing {
					v.model.Scale = math.Vec3{X: 1, Y: 1, Z: 1}
				}
			case scancodeF12:
				path, err := v.screenshot.Capture(v.frame.Image())
				if err != nil {
					slog.Error("screenshot failed", "error", err)
				} else {
					slog.Info("screenshot saved", "path", path)
				}
			}

		case input.EventMouseDown:
			v.dragging = true
			v.lastMouseX = event.MouseX
			v.lastMouseY = event.MouseY

		case input.EventMouseUp:
			v.dragging = false

		case input.EventMouseMove:
			if v.dragging {
				dx := float32(event.MouseX - v.lastMouseX)
				dy := float32(event.MouseY - v.lastMouseY)
				v.orbit.HandleDrag(dx, dy)
				v.lastMouseX = event.MouseX
				v.lastMouseY = event.MouseY
			}

		case input.EventMouseWheel:
			v.orbit.HandleZoom(float32(event.WheelY))
		}
	}
}

// update advances the animations and syncs the camera.
func (v *Viewer) update(dt float32) {
	if v.spinning {
		v.spinAngle += math.Radians(v.cfg.Viewer.SpinSpeed) * dt
		v.model.Rotation = math.QuatFromAxisAngle(math.Vec3{Y: 1}, v.spinAngle)
	}

	if v.pulsing {
		v.pulsePhase += dt
		s := 1 + pulseAmplitude*float32(gomath.Sin(float64(v.pulsePhase)*2*gomath.Pi))
		v.model.Scale = math.Vec3{X: s, Y: s, Z: s}
	}

	v.cam.Position = v.orbit.Position()
	v.cam.Rotation = v.orbit.Rotation()
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	slog.Info("closing viewer")

	if v.window != nil {
		v.window.Close()
	}
}
