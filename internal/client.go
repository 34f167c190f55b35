// Package internal wires the orrery scene to a window: GL bootstrap,
// geometry upload, input dispatch and the frame loop.
package internal

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"the.quetzal.community/orrery/mesh"
	"the.quetzal.community/orrery/scene"
)

func init() {
	// GLFW event handling and GL calls must stay on the thread that
	// created the context.
	runtime.LockOSThread()
}

// One GLFW wheel notch corresponds to this many device units, so that
// zoom sensitivities are tuned against pixel-scale wheel deltas.
const wheelNotch = 25.0

// Client owns the window, the shared shader program and the scene. All
// callbacks run on the main thread, one frame at a time, so nothing in
// here needs locking.
type Client struct {
	window  *glfw.Window
	program *Program
	scene   *scene.Scene

	// objects is the draw order: the star first, then the bodies in
	// scene order. Each draw call is self-contained, the order only
	// matters for visual stability.
	objects []*Renderable

	clock      frameClock
	projection mgl32.Mat4

	dragging bool
	cursorX  float64
	cursorY  float64
}

// Run opens a window, builds the scene described by cfg and drives the
// frame loop until the window is closed. Every error path here is
// fatal to startup; once the loop is running there is nothing left
// that can fail.
func Run(cfg *Config) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("glfw: create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // re-arm the frame loop with the display refresh

	if err := gl.Init(); err != nil {
		return fmt.Errorf("opengl: %w", err)
	}
	slog.Info("opengl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	program, err := CompileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return fmt.Errorf("shader: %w", err)
	}

	client := &Client{window: window, program: program}
	if err := client.buildScene(cfg); err != nil {
		return err
	}
	client.install()

	width, height := window.GetFramebufferSize()
	client.resize(width, height)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.ClearColor(0.01, 0.01, 0.03, 1)

	for !window.ShouldClose() {
		dt := client.clock.tick(glfw.GetTime())
		client.scene.Advance(dt)
		client.draw()
		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// buildScene loads or generates every mesh, uploads it, and assembles
// the star and bodies with their renderables attached.
func (c *Client) buildScene(cfg *Config) error {
	star := scene.NewStar(cfg.Star.SpinRate, orOne(cfg.Star.Size))
	renderable, err := c.loadRenderable(cfg.Star.Mesh, cfg.Star.Color, true)
	if err != nil {
		return fmt.Errorf("star: %w", err)
	}
	star.Renderable = renderable
	c.objects = append(c.objects, renderable)

	bodies := make([]*scene.Body, 0, len(cfg.Bodies))
	for _, bc := range cfg.Bodies {
		body := scene.NewBody(bc.OrbitRadius, bc.OrbitSpeed, bc.SpinSpeed, orOne(bc.Size))
		renderable, err := c.loadRenderable(bc.Mesh, bc.Color, false)
		if err != nil {
			return fmt.Errorf("body %q: %w", bc.Name, err)
		}
		body.Renderable = renderable
		bodies = append(bodies, body)
		c.objects = append(c.objects, renderable)
	}

	c.scene = scene.New(star, bodies...)
	c.scene.Camera = cfg.camera()
	slog.Info("scene ready", "bodies", len(bodies), "camera", c.scene.Camera.Mode())
	return nil
}

// loadRenderable reads a mesh file, or generates a unit sphere when no
// path is configured, and uploads it. A mesh without normals is a
// warning, not an error: lighting degrades but the zero-filled normal
// storage keeps the draw call well defined.
func (c *Client) loadRenderable(path, hexColor string, emissive bool) (*Renderable, error) {
	var (
		data mesh.Data
		err  error
	)
	if path == "" {
		data = mesh.Sphere(24, 48, 1)
	} else {
		data, err = mesh.LoadFile(path)
		if err != nil {
			return nil, err
		}
		if !data.HasNormals {
			slog.Warn("mesh has no normals, lighting will be flat", "path", path)
		}
	}
	if hexColor == "" {
		hexColor = "#ffffff"
	}
	color, err := parseColor(hexColor)
	if err != nil {
		return nil, err
	}
	return NewRenderable(UploadModel(c.program, data), color, emissive), nil
}

// install registers the input callbacks. They only mutate camera
// parameters and run interleaved with frames on the same thread.
func (c *Client) install() {
	c.window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		c.dragging = action == glfw.Press
		c.cursorX, c.cursorY = w.GetCursorPos()
	})
	c.window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		if !c.dragging {
			return
		}
		c.scene.Camera.Drag(x-c.cursorX, y-c.cursorY)
		c.cursorX, c.cursorY = x, y
	})
	c.window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		c.scene.Camera.Scroll(-yoff * wheelNotch)
	})
	c.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.Key1:
			c.setCameraMode(scene.Orbital)
		case glfw.Key2:
			c.setCameraMode(scene.TopDown)
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		}
	})
	c.window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		c.resize(width, height)
	})
}

func (c *Client) setCameraMode(mode scene.CameraMode) {
	if !c.scene.Camera.SetMode(mode) {
		slog.Warn("ignoring invalid camera mode", "mode", mode)
		return
	}
	slog.Info("camera mode", "mode", mode)
}

func (c *Client) resize(width, height int) {
	if height == 0 {
		return
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	aspect := float32(width) / float32(height)
	c.projection = mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.1, 500)
}

// draw renders one frame. The per-frame uniforms (projection, view,
// light) are set once, then every object issues its own fully rebound
// draw call.
func (c *Client) draw() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	c.program.Use()
	gl.UniformMatrix4fv(c.program.Uniform.Projection, 1, false, &c.projection[0])
	view := mat4To32(c.scene.Camera.ViewMatrix())
	gl.UniformMatrix4fv(c.program.Uniform.View, 1, false, &view[0])
	// The star is the light source and it sits at the origin.
	gl.Uniform3f(c.program.Uniform.LightPosition, 0, 0, 0)
	for _, object := range c.objects {
		object.Draw(c.program)
	}
}

func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
