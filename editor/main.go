// Command editor is a reference scene inspector built on fyne: it lists a
// scene's live primitives (lights are not listed) with buttons to add a
// sphere and remove the last primitive, and a "pick" button whose status
// field reports what the camera's Pick() found at the center pixel. It
// exercises the same Scene/Camera mutation API a real-time host like
// cmd/raybeam would drive, without rendering.
package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"Raybeam/internal/logger"
	"Raybeam/internal/raymath"
	"Raybeam/internal/raytracer"
)

type editorState struct {
	scene *raytracer.Scene
	cam   *raytracer.Camera

	primitiveList    *widget.List
	primitiveRows    []string
	primitiveHandles []raytracer.PrimitiveHandle
	status           *widget.Label
}

func main() {
	logger.Init()
	defer logger.Log.Sync()

	state := &editorState{
		scene: demoScene(),
		cam:   demoCamera(),
	}
	state.refreshRows()

	a := app.New()
	w := a.NewWindow("Raybeam Editor")

	state.primitiveList = widget.NewList(
		func() int { return len(state.primitiveRows) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(state.primitiveRows[i])
		},
	)

	addSphere := widget.NewButton("Add sphere", func() {
		state.scene.AddPrimitive(raytracer.NewSphere(raymath.Vec3{}, 1, defaultMaterial()))
		state.refreshRows()
	})

	removeLast := widget.NewButton("Remove last", func() {
		if n := len(state.primitiveHandles); n > 0 {
			state.scene.RemovePrimitive(state.primitiveHandles[n-1])
			state.refreshRows()
		}
	})

	state.status = widget.NewLabel("pick: (none)")
	pickButton := widget.NewButton("Pick center pixel", func() {
		row, col := state.cam.Rows/2, state.cam.Cols/2
		if result, ok := state.cam.Pick(state.scene, row, col); ok {
			state.status.SetText(fmt.Sprintf("pick: point=%v normal=%v", result.Point, result.Normal))
		} else {
			state.status.SetText("pick: (miss)")
		}
	})

	controls := container.NewVBox(addSphere, removeLast, pickButton, state.status)
	content := container.NewBorder(nil, nil, nil, controls, state.primitiveList)

	w.SetContent(content)
	w.Resize(fyne.NewSize(640, 400))
	w.ShowAndRun()
}

func (s *editorState) refreshRows() {
	s.primitiveRows = s.primitiveRows[:0]
	s.primitiveHandles = s.primitiveHandles[:0]
	for i := 0; i < s.scene.PrimitiveSlots(); i++ {
		h := raytracer.PrimitiveHandle(i)
		p, ok := s.scene.Primitive(h)
		if !ok {
			continue
		}
		s.primitiveRows = append(s.primitiveRows, fmt.Sprintf("#%d %T", i, p))
		s.primitiveHandles = append(s.primitiveHandles, h)
	}
	if s.primitiveList != nil {
		s.primitiveList.Refresh()
	}
}

func defaultMaterial() raytracer.Material {
	return raytracer.NewMaterial(
		raymath.Vec3{X: 0.2, Y: 0.2, Z: 0.2},
		raymath.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
		raymath.Vec3{X: 1, Y: 1, Z: 1},
		32,
	)
}

func demoScene() *raytracer.Scene {
	scene := raytracer.NewScene(raymath.Vec3{X: 0.1, Y: 0.1, Z: 0.1}, raymath.Vec3{X: 0, Y: 0, Z: 0})
	scene.AddPrimitive(raytracer.NewSphere(raymath.Vec3{Z: -3}, 1, defaultMaterial()))
	scene.AddPrimitive(raytracer.NewPlane(raymath.Vec3{Y: -1}, raymath.Vec3{Y: 1}, defaultMaterial()))
	scene.AddLight(raytracer.NewPointLight(raymath.Vec3{X: 2, Y: 2, Z: 0}, raymath.Vec3{X: 1, Y: 1, Z: 1}))
	return scene
}

func demoCamera() *raytracer.Camera {
	cam := raytracer.NewCamera(320, 240, 2, 1.5, 1)
	cam.Pos = raymath.Vec3{Z: 2}
	cam.LookAt(raymath.Vec3{Z: -3}, raymath.Vec3{Y: 1})
	return cam
}
