// Package viewer implements the frame loop that ties the mesh, camera,
// input and renderer together.
package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/objview/internal/config"
	"github.com/Faultbox/objview/internal/engine/camera"
	"github.com/Faultbox/objview/internal/engine/debug"
	"github.com/Faultbox/objview/internal/engine/input"
	"github.com/Faultbox/objview/internal/engine/lighting"
	"github.com/Faultbox/objview/internal/engine/renderer"
	"github.com/Faultbox/objview/internal/engine/scene"
	"github.com/Faultbox/objview/internal/engine/window"
	"github.com/Faultbox/objview/internal/logger"
	"github.com/Faultbox/objview/pkg/math"
	"github.com/Faultbox/objview/pkg/obj"
)

// Surface is the window side of a frame: events, keys and presentation.
type Surface interface {
	input.KeySource
	PollEvents() bool
	SwapBuffers()
}

// Drawer is the renderer side of a frame.
type Drawer interface {
	Begin(view, projection math.Mat4) scene.Sink
	End()
	Aspect() float32
}

// PixelReader is implemented by drawers that can read back the frame.
type PixelReader interface {
	ReadPixels() (pixels []byte, width, height int)
}

// Viewer owns the mesh and orbit state for the lifetime of the loop.
type Viewer struct {
	config  *config.Config
	surface Surface
	drawer  Drawer

	mesh   *obj.Mesh
	orbit  *camera.Orbit
	input  *input.Handler
	bounds []float32

	closers []func()
	frames  uint64
}

// New opens the window, creates the renderer and loads the configured mesh.
// A mesh load failure is logged and the viewer shows the axes only.
func New(cfg *config.Config) (*Viewer, error) {
	logger.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.String("backend", cfg.Window.Backend),
	)

	// Create window (this also creates OpenGL context)
	win, err := window.New(window.Config{
		Title:   cfg.Window.Title,
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		VSync:   cfg.Window.VSync,
		Backend: cfg.Window.Backend,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	if w, h := win.Size(); w != cfg.Window.Width || h != cfg.Window.Height {
		logger.Warn("window size differs from config", zap.Int("width", w), zap.Int("height", h))
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	r, err := renderer.New(newRendererConfig(cfg))
	if err != nil {
		win.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v := newViewer(cfg, win, r)
	v.closers = append(v.closers, r.Close, win.Close)

	if err := v.LoadMesh(cfg.Viewer.Model); err != nil {
		logger.Error("failed to load mesh", zap.String("path", cfg.Viewer.Model), zap.Error(err))
	}

	logger.Info("viewer initialized successfully")
	return v, nil
}

// newRendererConfig derives the renderer settings, including the light
// placed by viewer.light.
func newRendererConfig(cfg *config.Config) renderer.Config {
	return renderer.Config{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		ClearColor: cfg.Viewer.ClearColor,
		Lighting:   cfg.Viewer.Lighting,
		Light: lighting.New(
			cfg.Viewer.Light.Yaw,
			cfg.Viewer.Light.Pitch,
			cfg.Viewer.Light.Ambient,
		),
	}
}

// newViewer wires a viewer around an existing surface and drawer.
func newViewer(cfg *config.Config, s Surface, d Drawer) *Viewer {
	orbit := &camera.Orbit{
		Yaw:      cfg.Controls.Yaw,
		Pitch:    cfg.Controls.Pitch,
		Distance: cfg.Controls.Distance,
		Limits: camera.Limits{
			Enabled:     cfg.Controls.Clamp,
			PitchLimit:  cfg.Controls.PitchLimit,
			MinDistance: cfg.Controls.MinDistance,
		},
	}
	orbit.Clamp()

	// Non-positive steps keep the defaults.
	handler := input.New()
	if cfg.Controls.ZoomStep > 0 {
		handler.ZoomStep = cfg.Controls.ZoomStep
	}
	if cfg.Controls.RotateStep > 0 {
		handler.RotateStep = cfg.Controls.RotateStep
	}

	return &Viewer{
		config:  cfg,
		surface: s,
		drawer:  d,
		mesh:    &obj.Mesh{},
		orbit:   orbit,
		input:   handler,
	}
}

// LoadMesh parses path once and keeps it for every following frame. On
// failure the previous mesh stays in place.
func (v *Viewer) LoadMesh(path string) error {
	start := time.Now()
	if err := v.mesh.Load(path); err != nil {
		return err
	}

	if v.config.Viewer.ShowBounds {
		lo, hi := v.mesh.Bounds()
		v.bounds = debug.BBoxWireframe(lo, hi, 0)
	}

	stats := v.mesh.Stats()
	logger.Info("mesh loaded",
		zap.String("path", path),
		zap.Int("vertices", stats.Vertices),
		zap.Int("normals", stats.Normals),
		zap.Int("texcoords", stats.TexCoords),
		zap.Int("faces", stats.Faces),
		zap.Int("triangles", stats.Triangles),
		zap.Int("quads", stats.Quads),
		zap.Int("empty_faces", stats.Empty),
		zap.Duration("elapsed", time.Since(start)),
	)
	logger.Sugar.Debugf("mesh center %+v", v.mesh.Center)
	return nil
}

// Run drives frames until the window asks to close.
func (v *Viewer) Run() error {
	logger.Info("starting frame loop")

	frameCount := 0
	fpsTimer := time.Now()

	for v.Frame() {
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float32("yaw", v.orbit.Yaw),
				zap.Float32("distance", v.orbit.Distance),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	logger.Info("frame loop finished", zap.Uint64("frames", v.frames))
	return nil
}

// Frame runs one iteration: events, input, camera, draw, present.
// Returns false once the window should close, or after a screenshot frame.
func (v *Viewer) Frame() bool {
	if v.surface.PollEvents() {
		return false
	}

	v.input.Poll(v.surface, v.orbit)

	center := v.mesh.Center
	view := v.orbit.ViewMatrix(center)
	projection := camera.Projection(v.drawer.Aspect())

	sink := v.drawer.Begin(view, projection)
	scene.DrawAxes(sink)
	scene.DrawMesh(sink, v.mesh)
	if v.bounds != nil {
		scene.DrawLines(sink, v.bounds, debug.BBoxColor)
	}
	v.drawer.End()

	if path := v.config.Viewer.Screenshot; path != "" {
		v.capture(path)
		v.frames++
		return false
	}

	v.surface.SwapBuffers()
	v.frames++
	return true
}

// capture writes the current back buffer to path.
func (v *Viewer) capture(path string) {
	reader, ok := v.drawer.(PixelReader)
	if !ok {
		logger.Warn("drawer cannot read pixels, skipping screenshot")
		return
	}

	pixels, width, height := reader.ReadPixels()
	if err := debug.WritePNG(path, pixels, width, height); err != nil {
		logger.Error("failed to write screenshot", zap.String("path", path), zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path), zap.Int("width", width), zap.Int("height", height))
}

// Close releases the renderer and window.
func (v *Viewer) Close() {
	logger.Info("closing viewer")
	for _, c := range v.closers {
		c()
	}
	v.closers = nil
}
