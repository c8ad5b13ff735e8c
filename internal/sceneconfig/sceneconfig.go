// Package sceneconfig builds a raytracer.Scene and raytracer.Camera from a
// TOML scene document, the declarative alternative to constructing
// primitives and lights by hand in Go.
package sceneconfig

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"Raybeam/internal/raymath"
	"Raybeam/internal/raytracer"
)

type vec3Doc struct {
	X, Y, Z float64
}

func (v vec3Doc) toVec3() raymath.Vec3 { return raymath.Vec3{X: v.X, Y: v.Y, Z: v.Z} }

type materialDoc struct {
	Ambient   vec3Doc
	Diffuse   vec3Doc
	Specular  vec3Doc
	Shininess float64
}

func (m materialDoc) toMaterial() raytracer.Material {
	return raytracer.NewMaterial(m.Ambient.toVec3(), m.Diffuse.toVec3(), m.Specular.toVec3(), m.Shininess)
}

type sphereDoc struct {
	Center   vec3Doc
	Radius   float64
	Material materialDoc
}

type planeDoc struct {
	Anchor   vec3Doc
	Normal   vec3Doc
	Material materialDoc
}

type cylinderDoc struct {
	Base     vec3Doc
	Axis     vec3Doc
	Radius   float64
	Height   float64
	Material materialDoc
}

type coneDoc struct {
	Base     vec3Doc
	Axis     vec3Doc
	Radius   float64
	Height   float64
	Material materialDoc
}

type lightDoc struct {
	Kind      string // "point", "spot", "directional"
	Position  vec3Doc
	Direction vec3Doc
	HalfAngle float64
	Intensity vec3Doc
}

type cameraDoc struct {
	Position      vec3Doc
	Target        vec3Doc
	Up            vec3Doc
	Focal         float64
	ViewportWidth float64
	ViewportHeight float64
	Cols, Rows    int
	Projection    string // "perspective" (default), "orthographic", "oblique"
}

// SceneDocument is the top-level shape of a TOML scene file: ambient and
// background light, camera pose, and the primitive/light lists.
type SceneDocument struct {
	Ambient    vec3Doc
	Background vec3Doc
	Camera     cameraDoc

	Spheres   []sphereDoc
	Planes    []planeDoc
	Cylinders []cylinderDoc
	Cones     []coneDoc
	Lights    []lightDoc
}

// Load reads and decodes the TOML document at path and builds a ready-to-
// render Scene and Camera from it. A malformed document or
// unreadable file surfaces as an ordinary error; the core never sees it.
func Load(path string) (*raytracer.Scene, *raytracer.Camera, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("sceneconfig: read %s: %w", path, err)
	}

	var doc SceneDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("sceneconfig: decode %s: %w", path, err)
	}

	scene := raytracer.NewScene(doc.Ambient.toVec3(), doc.Background.toVec3())
	for _, s := range doc.Spheres {
		scene.AddPrimitive(raytracer.NewSphere(s.Center.toVec3(), s.Radius, s.Material.toMaterial()))
	}
	for _, p := range doc.Planes {
		scene.AddPrimitive(raytracer.NewPlane(p.Anchor.toVec3(), p.Normal.toVec3(), p.Material.toMaterial()))
	}
	for _, c := range doc.Cylinders {
		scene.AddPrimitive(raytracer.NewCylinder(c.Base.toVec3(), c.Axis.toVec3(), c.Radius, c.Height, c.Material.toMaterial()))
	}
	for _, c := range doc.Cones {
		scene.AddPrimitive(raytracer.NewCone(c.Base.toVec3(), c.Axis.toVec3(), c.Radius, c.Height, c.Material.toMaterial()))
	}
	for _, l := range doc.Lights {
		light, err := buildLight(l)
		if err != nil {
			return nil, nil, fmt.Errorf("sceneconfig: %s: %w", path, err)
		}
		scene.AddLight(light)
	}

	cam := buildCamera(doc.Camera)
	return scene, cam, nil
}

func buildLight(l lightDoc) (raytracer.Light, error) {
	switch l.Kind {
	case "point", "":
		return raytracer.NewPointLight(l.Position.toVec3(), l.Intensity.toVec3()), nil
	case "spot":
		return raytracer.NewSpotLight(l.Position.toVec3(), l.Direction.toVec3(), l.HalfAngle, l.Intensity.toVec3()), nil
	case "directional":
		return raytracer.NewDirectionalLight(l.Direction.toVec3(), l.Intensity.toVec3()), nil
	default:
		return raytracer.Light{}, fmt.Errorf("unknown light kind %q", l.Kind)
	}
}

func buildCamera(c cameraDoc) *raytracer.Camera {
	cols, rows := c.Cols, c.Rows
	if cols == 0 {
		cols = 640
	}
	if rows == 0 {
		rows = 480
	}
	width, height := c.ViewportWidth, c.ViewportHeight
	if width == 0 {
		width = 2
	}
	if height == 0 {
		height = 2
	}
	focal := c.Focal
	if focal == 0 {
		focal = 1
	}

	cam := raytracer.NewCamera(cols, rows, width, height, focal)
	cam.Pos = c.Position.toVec3()
	up := c.Up.toVec3()
	if up == raymath.Zero {
		up = raymath.Vec3{Y: 1}
	}
	cam.LookAt(c.Target.toVec3(), up)

	switch c.Projection {
	case "orthographic":
		cam.SetProjection(raytracer.Orthographic)
	case "oblique":
		cam.SetProjection(raytracer.Oblique)
	default:
		cam.SetProjection(raytracer.Perspective)
	}
	return cam
}
