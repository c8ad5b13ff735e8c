package raytracer

import "Raybeam/internal/raymath"

// PrimitiveHandle and LightHandle are stable integer indices into a
// Scene's owning slices. A removed slot is tombstoned to nil/zero-value
// rather than compacted, so a handle issued before a removal never
// silently refers to a different primitive/light afterward.
type PrimitiveHandle int
type LightHandle int

// Scene is an ordered collection of primitives and lights, plus ambient
// and background light. Insertion order is observable and used as the
// stable identity for AddPrimitive/RemovePrimitive. Once a render call
// begins, the scene is read-only for the duration of that call —
// mutating it concurrently with an in-flight render is a caller error,
// not one this type guards against.
type Scene struct {
	primitives []Primitive
	lights     []*Light

	Ambient    raymath.Vec3
	Background raymath.Vec3
}

// NewScene builds an empty scene with the given ambient light and
// background color.
func NewScene(ambient, background raymath.Vec3) *Scene {
	return &Scene{Ambient: ambient, Background: background}
}

// AddPrimitive appends p to the scene and returns a stable handle to it.
func (s *Scene) AddPrimitive(p Primitive) PrimitiveHandle {
	s.primitives = append(s.primitives, p)
	return PrimitiveHandle(len(s.primitives) - 1)
}

// RemovePrimitive tombstones the primitive at h. Returns false if h is out
// of range or already removed.
func (s *Scene) RemovePrimitive(h PrimitiveHandle) bool {
	if int(h) < 0 || int(h) >= len(s.primitives) || s.primitives[h] == nil {
		return false
	}
	s.primitives[h] = nil
	return true
}

// Primitive looks up the primitive at h, or (nil, false) if removed/invalid.
func (s *Scene) Primitive(h PrimitiveHandle) (Primitive, bool) {
	if int(h) < 0 || int(h) >= len(s.primitives) || s.primitives[h] == nil {
		return nil, false
	}
	return s.primitives[h], true
}

// PrimitiveSlots returns the number of primitive slots ever allocated,
// including tombstoned ones — the upper bound a caller iterates
// PrimitiveHandle values up to when enumerating live primitives.
func (s *Scene) PrimitiveSlots() int { return len(s.primitives) }

// AddLight appends l to the scene and returns a stable handle to it.
func (s *Scene) AddLight(l Light) LightHandle {
	stored := l
	s.lights = append(s.lights, &stored)
	return LightHandle(len(s.lights) - 1)
}

// RemoveLight tombstones the light at h. Returns false if h is out of
// range or already removed.
func (s *Scene) RemoveLight(h LightHandle) bool {
	if int(h) < 0 || int(h) >= len(s.lights) || s.lights[h] == nil {
		return false
	}
	s.lights[h] = nil
	return true
}

// Lights returns the live (non-removed) lights, in insertion order.
func (s *Scene) Lights() []Light {
	out := make([]Light, 0, len(s.lights))
	for _, l := range s.lights {
		if l != nil {
			out = append(out, *l)
		}
	}
	return out
}

// IntersectNearest folds Intersect over every live primitive and returns
// the hit with the minimum t. exclude, if non-nil, is
// skipped — used by the shadow-ray pass to avoid self-intersection.
func (s *Scene) IntersectNearest(r Ray, exclude Primitive) (Hit, bool) {
	best, found := Hit{}, false
	for _, p := range s.primitives {
		if p == nil || p == exclude {
			continue
		}
		if h, ok := p.Intersect(r); ok {
			if !found || h.T < best.T {
				best, found = h, true
			}
		}
	}
	return best, found
}
