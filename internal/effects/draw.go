package effects

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// LoadTorus builds a torus model with the given ring and tube radius.
// Needs an open window.
func LoadTorus(radius, tube float32) rl.Model {
	mesh := rl.GenMeshTorus(tube/radius, radius*2, 16, 100)
	return rl.LoadModelFromMesh(mesh)
}

// LoadRing builds the sky ring model used by Orbit.Draw. Needs an open window.
func LoadRing() rl.Model {
	return LoadTorus(ringRadius, ringTube)
}

// drawWireTorus draws model as a wireframe at pos with euler rotation rot.
func drawWireTorus(model rl.Model, pos, rot rl.Vector3, color rl.Color) {
	model.Transform = rl.MatrixRotateXYZ(rot)
	rl.DrawModelWires(model, pos, 1, color)
}

// Draw renders the spinner. Call inside BeginMode3D/EndMode3D.
func (s *Spinner) Draw(model rl.Model) {
	drawWireTorus(model, s.Position, s.Rotation, s.Color)
}

// Draw renders the tilter. Call inside BeginMode3D/EndMode3D.
func (t *Tilter) Draw(model rl.Model) {
	drawWireTorus(model, t.Position, t.Rotation, t.Color)
}

// drawWireSphere draws a wireframe sphere at pos with euler rotation rot.
func drawWireSphere(pos, rot rl.Vector3, radius float32, rings int32, color rl.Color) {
	rl.PushMatrix()
	rl.Translatef(pos.X, pos.Y, pos.Z)
	rl.Rotatef(rot.Z*rl.Rad2deg, 0, 0, 1)
	rl.Rotatef(rot.Y*rl.Rad2deg, 0, 1, 0)
	rl.Rotatef(rot.X*rl.Rad2deg, 1, 0, 0)
	rl.DrawSphereWires(rl.Vector3Zero(), radius, rings, rings, color)
	rl.PopMatrix()
}

// Draw renders the backdrop with ring from LoadRing.
// Call inside BeginMode3D/EndMode3D.
func (o *Orbit) Draw(ring rl.Model) {
	rl.PushMatrix()
	rl.Translatef(0, 0, o.GridZ)
	rl.DrawGrid(gridSlices, 1)
	rl.PopMatrix()

	drawWireSphere(skyCenter, o.SkyRotation, skyRadius, 15, rl.Fade(o.Color, 0.3))
	drawWireTorus(ring, skyCenter, o.RingRotation, rl.Fade(o.Color, 0.3))
	drawWireSphere(orbitCenter, o.OuterRotation, outerRadius, 20, rl.Fade(o.Color, 0.15))
	drawWireSphere(o.InnerPosition(), rl.Vector3{Y: o.InnerSpin}, innerRadius, 12, rl.Fade(o.Color, 0.4))

	for _, p := range o.Trail {
		if p.Life > 0 {
			rl.DrawPoint3D(p.Position, rl.Fade(o.Color, p.Alpha()))
		}
	}
}
