// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/objview/internal/engine/lighting"
	"github.com/Faultbox/objview/internal/engine/scene"
	"github.com/Faultbox/objview/internal/engine/shader"
	"github.com/Faultbox/objview/internal/logger"
	"github.com/Faultbox/objview/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [3]float32
	Lighting   bool
	Light      lighting.Light
}

// Renderer draws batched immediate-mode geometry with a single shader.
type Renderer struct {
	config Config

	program *shader.Program
	vao     uint32
	vbo     uint32

	// Capacity of vbo in vertices
	capacity int

	batch *Batch
}

const vertexShaderSource = `#version 410 core
layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec3 aColor;
layout (location = 3) in vec2 aTexCoord;

uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vNormal;
out vec3 vColor;
out vec2 vTexCoord;

void main() {
    vNormal = mat3(uView) * aNormal;
    vColor = aColor;
    vTexCoord = aTexCoord;
    gl_Position = uProjection * uView * vec4(aPosition, 1.0);
}
`

// Single directional light in eye space plus a global ambient term.
const fragmentShaderSource = `#version 410 core
in vec3 vNormal;
in vec3 vColor;
in vec2 vTexCoord;

uniform bool uLit;
uniform vec3 uLightDir;
uniform float uAmbient;

out vec4 FragColor;

void main() {
    vec3 color = vColor;
    if (uLit) {
        float diffuse = max(dot(normalize(vNormal), uLightDir), 0.0);
        color = clamp(vColor * min(uAmbient + diffuse, 1.0), 0.0, 1.0);
    }
    FragColor = vec4(color, 1.0);
}
`

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	if cfg.Light == (lighting.Light{}) {
		cfg.Light = lighting.Headlight()
	}

	r := &Renderer{
		config: cfg,
		batch:  NewBatch(),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2], 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.Compile(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.createBuffers()
	return r, nil
}

// createBuffers sets up the VAO and the streamed VBO layout.
func (r *Renderer) createBuffers() {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// Position
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, vertexStride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, vertexStride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)
	// Color
	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, vertexStride, gl.PtrOffset(6*4))
	gl.EnableVertexAttribArray(2)
	// TexCoord
	gl.VertexAttribPointer(3, 2, gl.FLOAT, false, vertexStride, gl.PtrOffset(9*4))
	gl.EnableVertexAttribArray(3)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("vertex buffers created",
		zap.Uint32("vao", r.vao),
		zap.Uint32("vbo", r.vbo),
	)
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Begin clears the frame, loads the matrices and returns the command sink
// for this frame.
func (r *Renderer) Begin(view, projection math.Mat4) scene.Sink {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.program.Use()
	r.program.SetMat4("uView", view)
	r.program.SetMat4("uProjection", projection)
	r.program.SetVec3("uLightDir", r.config.Light.Direction)
	r.program.SetFloat("uAmbient", r.config.Light.Ambient)

	r.batch.Reset()
	return r.batch
}

// End uploads the frame's geometry and draws it.
func (r *Renderer) End() {
	lines := len(r.batch.Lines)
	tris := len(r.batch.Triangles)
	if lines+tris == 0 {
		return
	}

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	if lines+tris > r.capacity {
		r.capacity = lines + tris
		gl.BufferData(gl.ARRAY_BUFFER, r.capacity*vertexStride, nil, gl.STREAM_DRAW)
	}
	if lines > 0 {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, lines*vertexStride, gl.Ptr(r.batch.Lines))
	}
	if tris > 0 {
		gl.BufferSubData(gl.ARRAY_BUFFER, lines*vertexStride, tris*vertexStride, gl.Ptr(r.batch.Triangles))
	}

	if lines > 0 {
		r.program.SetBool("uLit", false)
		gl.DrawArrays(gl.LINES, 0, int32(lines))
	}
	if tris > 0 {
		r.program.SetBool("uLit", r.config.Lighting)
		gl.DrawArrays(gl.TRIANGLES, int32(lines), int32(tris))
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
// Call it after End and before the buffers are swapped.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	return float32(r.config.Width) / float32(r.config.Height)
}
