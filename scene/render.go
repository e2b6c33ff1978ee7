// This file is part of SphereWorld.
//
// SphereWorld is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// SphereWorld is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with SphereWorld.  If not, see <https://www.gnu.org/licenses/>.

package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/sphereworld/curated"
)

var (
	// the floor is mostly opaque so the reflection appears faintly through it
	floorColor = mgl32.Vec4{1.0, 1.0, 0.0, 0.75}

	white = mgl32.Vec4{1.0, 1.0, 1.0, 1.0}

	// the light is fixed relative to the viewer
	lightPos = mgl32.Vec3{0.0, 3.0, 0.0}
)

const (
	// the reflection is moved down by twice the height of the floor below
	// the sphere centres
	reflectionOffset = 0.8

	// position of the central group relative to the camera
	groupY = 0.2
	groupZ = -2.5

	// radius of the satellite's orbit around the big sphere
	orbitRadius = 0.8

	// rotation of the big sphere in degrees per second. the satellite orbits
	// at twice the speed in the opposite direction
	rotationSpeed = 60.0
)

// Reshape should be called whenever the size of the display changes.
func (scn *Scene) Reshape(dev Device, width int32, height int32) {
	// prevent divide by zero
	if height == 0 {
		height = 1
	}

	scn.width = width
	scn.height = height

	dev.Viewport(width, height)
	scn.setPerspective()
}

func (scn *Scene) setPerspective() {
	if scn.height == 0 {
		return
	}
	scn.frustum.SetPerspective(asFloat32(&scn.Prefs.FOV), float32(scn.width)/float32(scn.height), nearPlane, farPlane)
	scn.projection.Load(scn.frustum.Projection())
}

// Projection returns the current projection matrix.
func (scn *Scene) Projection() mgl32.Mat4 {
	return scn.projection.Top()
}

// Render draws a single frame.
func (scn *Scene) Render(dev Device) error {
	yRot := scn.stopwatch.ElapsedSeconds() * rotationSpeed

	dev.Clear()

	camera := scn.camera.CameraMatrix()

	if err := scn.modelView.Push(); err != nil {
		return curated.Errorf("scene: %v", err)
	}
	defer func() {
		_ = scn.modelView.Pop()
	}()
	scn.modelView.MultMatrix(camera)

	// reflection. mirroring the scene reverses the winding of every polygon
	if err := scn.modelView.PushWith(camera); err != nil {
		return curated.Errorf("scene: %v", err)
	}
	scn.modelView.Scale(1, -1, 1)
	scn.modelView.Translate(0, reflectionOffset, 0)
	dev.SetFrontFace(true)
	err := scn.drawSpheres(dev, yRot)
	dev.SetFrontFace(false)
	if popErr := scn.modelView.Pop(); err == nil && popErr != nil {
		err = curated.Errorf("scene: %v", popErr)
	}
	if err != nil {
		return err
	}

	// floor, blended with the reflection
	dev.SetBlend(true)
	dev.BindTexture(TexMarble)
	dev.UseShader(ShaderTextureModulate, ShaderParams{
		MVP:   scn.pipeline.ModelViewProjection(),
		Color: floorColor,
	})
	dev.Draw(MeshFloor)
	dev.SetBlend(false)

	// the right way up
	return scn.drawSpheres(dev, yRot)
}

// drawSpheres draws the scattered spheres and the central group. Note that
// the current model-view matrix is changed.
func (scn *Scene) drawSpheres(dev Device, yRot float32) error {
	dev.BindTexture(TexMoon)
	for i := range scn.spheres {
		if err := scn.modelView.Push(); err != nil {
			return curated.Errorf("scene: %v", err)
		}
		scn.modelView.MultMatrix(scn.spheres[i].Matrix())
		dev.UseShader(ShaderTexturePointLightDiffuse, scn.lit())
		dev.Draw(MeshSmallSphere)
		if err := scn.modelView.Pop(); err != nil {
			return curated.Errorf("scene: %v", err)
		}
	}

	scn.modelView.Translate(0, groupY, groupZ)
	scn.modelView.MultMatrix(scn.object.Matrix())

	// big sphere
	if err := scn.modelView.Push(); err != nil {
		return curated.Errorf("scene: %v", err)
	}
	scn.modelView.Rotate(yRot, 0, 1, 0)
	dev.BindTexture(TexMars)
	dev.UseShader(ShaderTexturePointLightDiffuse, scn.lit())
	dev.Draw(MeshBigSphere)
	if err := scn.modelView.Pop(); err != nil {
		return curated.Errorf("scene: %v", err)
	}

	// satellite
	if err := scn.modelView.Push(); err != nil {
		return curated.Errorf("scene: %v", err)
	}
	scn.modelView.Rotate(yRot*-2.0, 0, 1, 0)
	scn.modelView.Translate(orbitRadius, 0, 0)
	dev.BindTexture(TexMoon)
	dev.UseShader(ShaderTexturePointLightDiffuse, scn.lit())
	dev.Draw(MeshSmallSphere)
	if err := scn.modelView.Pop(); err != nil {
		return curated.Errorf("scene: %v", err)
	}

	return nil
}

// lit returns the parameters for the point light shader
func (scn *Scene) lit() ShaderParams {
	return ShaderParams{
		ModelView:  scn.modelView.Top(),
		Projection: scn.projection.Top(),
		Normal:     scn.pipeline.NormalMatrix(),
		LightPos:   lightPos,
		Color:      white,
	}
}
