// Command raybeam is the reference host for the rendering core: it opens
// a glfw window, drives Render into a Camera's framebuffer, and uploads
// that framebuffer as a GL texture each frame. It is the concrete
// implementation of raytracer.Presenter/EventSource — the core itself
// never imports glfw or gl.
package main

import (
	"flag"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"Raybeam/internal/logger"
	"Raybeam/internal/raymath"
	"Raybeam/internal/raytracer"
	"Raybeam/internal/sceneconfig"
)

func init() {
	// GLFW and the GL context must stay bound to one OS thread.
	runtime.LockOSThread()
}

const (
	moveSpeed   = 0.08
	rotateSpeed = 0.02
)

func main() {
	scenePath := flag.String("scene", "", "path to a TOML scene document")
	flag.Parse()

	logger.Init()
	defer logger.Log.Sync()

	scene, cam, err := buildScene(*scenePath)
	if err != nil {
		logger.Log.Errorw("could not build scene", "error", err)
		return
	}

	if err := glfw.Init(); err != nil {
		logger.Log.Errorw("could not initialize glfw", "error", err)
		return
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(cam.Cols, cam.Rows, "Raybeam", nil, nil)
	if err != nil {
		logger.Log.Errorw("could not create glfw window", "error", err)
		return
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		logger.Log.Errorw("could not initialize OpenGL", "error", err)
		return
	}

	host := newGLHost(cam.Cols, cam.Rows)
	defer host.destroy()

	events := newGLFWEvents()
	window.SetMouseButtonCallback(events.onMouseButton)
	window.SetKeyCallback(events.onKey)

	for !window.ShouldClose() {
		processInput(window, cam)

		for {
			event, ok := events.Poll()
			if !ok {
				break
			}
			switch event.Kind {
			case raytracer.PickEvent:
				if result, ok := cam.Pick(scene, event.Row, event.Col); ok {
					logger.Log.Infow("picked primitive", "point", result.Point, "normal", result.Normal)
				}
			case raytracer.QuitEvent:
				window.SetShouldClose(true)
			}
		}

		raytracer.Render(scene, cam)
		host.Blit(cam.Framebuffer, cam.Cols, cam.Rows)

		window.SwapBuffers()
		glfw.PollEvents()
	}
}

// glfwEvents adapts glfw's callback-driven input into raytracer.EventSource's
// pull-based Poll, so the render loop above never touches a glfw type
// directly.
type glfwEvents struct {
	pending []raytracer.InputEvent
}

var _ raytracer.EventSource = (*glfwEvents)(nil)

func newGLFWEvents() *glfwEvents {
	return &glfwEvents{}
}

func (e *glfwEvents) onMouseButton(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft || action != glfw.Press {
		return
	}
	x, y := w.GetCursorPos()
	e.pending = append(e.pending, raytracer.InputEvent{Kind: raytracer.PickEvent, Row: int(y), Col: int(x)})
}

func (e *glfwEvents) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		e.pending = append(e.pending, raytracer.InputEvent{Kind: raytracer.QuitEvent})
	}
}

// Poll implements raytracer.EventSource.
func (e *glfwEvents) Poll() (raytracer.InputEvent, bool) {
	if len(e.pending) == 0 {
		return raytracer.InputEvent{}, false
	}
	event := e.pending[0]
	e.pending = e.pending[1:]
	return event, true
}

func buildScene(path string) (*raytracer.Scene, *raytracer.Camera, error) {
	if path != "" {
		return sceneconfig.Load(path)
	}

	scene := raytracer.NewScene(raymath.Vec3{X: 0.1, Y: 0.1, Z: 0.1}, raymath.Vec3{X: 0.05, Y: 0.05, Z: 0.1})
	material := raytracer.NewMaterial(
		raymath.Vec3{X: 0.2, Y: 0.2, Z: 0.2},
		raymath.Vec3{X: 0.6, Y: 0.2, Z: 0.2},
		raymath.Vec3{X: 1, Y: 1, Z: 1},
		64,
	)
	scene.AddPrimitive(raytracer.NewSphere(raymath.Vec3{Z: -3}, 1, material))
	scene.AddPrimitive(raytracer.NewPlane(raymath.Vec3{Y: -1}, raymath.Vec3{Y: 1}, material))
	scene.AddLight(raytracer.NewPointLight(raymath.Vec3{X: 2, Y: 2, Z: 0}, raymath.Vec3{X: 1, Y: 1, Z: 1}))

	cam := raytracer.NewCamera(800, 600, 2, 1.5, 1)
	cam.Pos = raymath.Vec3{Z: 2}
	cam.LookAt(raymath.Vec3{Z: -3}, raymath.Vec3{Y: 1})
	return scene, cam, nil
}

func processInput(window *glfw.Window, cam *raytracer.Camera) {
	if window.GetKey(glfw.KeyW) == glfw.Press {
		cam.Translate(cam.Ez.Neg().MulScalar(moveSpeed))
	}
	if window.GetKey(glfw.KeyS) == glfw.Press {
		cam.Translate(cam.Ez.MulScalar(moveSpeed))
	}
	if window.GetKey(glfw.KeyA) == glfw.Press {
		cam.Translate(cam.Ex.Neg().MulScalar(moveSpeed))
	}
	if window.GetKey(glfw.KeyD) == glfw.Press {
		cam.Translate(cam.Ex.MulScalar(moveSpeed))
	}
	if window.GetKey(glfw.KeyLeft) == glfw.Press {
		cam.Rotate(cam.Ey, rotateSpeed)
	}
	if window.GetKey(glfw.KeyRight) == glfw.Press {
		cam.Rotate(cam.Ey, -rotateSpeed)
	}
}

// glHost uploads a BGRA CPU framebuffer onto a full-screen textured quad.
// It implements raytracer.Presenter.
type glHost struct {
	program uint32
	vao     uint32
	texture uint32
}

var _ raytracer.Presenter = (*glHost)(nil)

func newGLHost(cols, rows int) *glHost {
	h := &glHost{}
	h.program = linkProgram(quadVertexShader, quadFragmentShader)

	quad := []float32{
		-1, -1, 0, 1,
		1, -1, 1, 1,
		1, 1, 1, 0,
		-1, -1, 0, 1,
		1, 1, 1, 0,
		-1, 1, 0, 0,
	}
	var vbo uint32
	gl.GenVertexArrays(1, &h.vao)
	gl.BindVertexArray(h.vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)

	gl.GenTextures(1, &h.texture)
	gl.BindTexture(gl.TEXTURE_2D, h.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(cols), int32(rows), 0, gl.BGRA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	return h
}

// Blit implements raytracer.Presenter.
func (h *glHost) Blit(framebuffer []byte, cols, rows int) {
	gl.Viewport(0, 0, int32(cols), int32(rows))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.BindTexture(gl.TEXTURE_2D, h.texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(cols), int32(rows), gl.BGRA, gl.UNSIGNED_BYTE, gl.Ptr(framebuffer))

	gl.UseProgram(h.program)
	gl.BindVertexArray(h.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

func (h *glHost) destroy() {
	gl.DeleteTextures(1, &h.texture)
	gl.DeleteVertexArrays(1, &h.vao)
	gl.DeleteProgram(h.program)
}

func linkProgram(vertexSrc, fragmentSrc string) uint32 {
	vs := compileShader(vertexSrc, gl.VERTEX_SHADER)
	fs := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		logger.Log.Errorw("program link failed", "log", log)
	}

	gl.DeleteShader(vs)
	gl.DeleteShader(fs)
	return program
}

func compileShader(source string, shaderType uint32) uint32 {
	shader := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, cSources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		logger.Log.Errorw("shader compile failed", "type", shaderType, "log", log)
	}
	return shader
}

const quadVertexShader = `
#version 410 core
layout (location = 0) in vec2 inPos;
layout (location = 1) in vec2 inUV;
out vec2 uv;
void main() {
	uv = inUV;
	gl_Position = vec4(inPos, 0.0, 1.0);
}
`

const quadFragmentShader = `
#version 410 core
in vec2 uv;
out vec4 fragColor;
uniform sampler2D frame;
void main() {
	fragColor = texture(frame, uv);
}
`
