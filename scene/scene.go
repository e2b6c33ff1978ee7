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
	"fmt"
	"path/filepath"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/sphereworld/curated"
	"github.com/jetsetilly/sphereworld/logger"
	"github.com/jetsetilly/sphereworld/mesh"
	"github.com/jetsetilly/sphereworld/prefs"
	"github.com/jetsetilly/sphereworld/random"
	"github.com/jetsetilly/sphereworld/texture"
	"github.com/jetsetilly/sphereworld/transform"
)

// DefaultNumSpheres is the number of small spheres scattered over the floor
// when not otherwise configured.
const DefaultNumSpheres = 50

// DefaultSeed is the seed for the sphere placements when not otherwise
// configured.
const DefaultSeed = 1

const (
	nearPlane = 1.0
	farPlane  = 100.0

	bigSphereRadius = 0.4
	bigSphereSlices = 40
	bigSphereStacks = 80

	smallSphereRadius = 0.1
	smallSphereSlices = 26
	smallSphereStacks = 13

	floorHalfSize  = 20.0
	floorHeight    = -0.41
	floorTexRepeat = 10.0

	// placements are in the range [-placementSpread*placementStep,
	// (placementSpread-1)*placementStep]
	placementSpread = 200
	placementStep   = 0.1
)

// Config is used to create a new Scene.
type Config struct {
	// number of small spheres scattered over the floor
	NumSpheres int

	// seed for the random placement of the small spheres. a value of zero
	// means the placements will be different every time
	Seed int64

	// directory containing the texture files
	TextureDir string

	// preferences file for the scene preferences
	PrefsFile string

	// clock used to animate the scene. nil means the system clock
	Clock Clock
}

// DefaultConfig returns a Config with the default values. The PrefsFile
// field is empty and must be set before use.
func DefaultConfig() Config {
	return Config{
		NumSpheres: DefaultNumSpheres,
		Seed:       DefaultSeed,
		TextureDir: ".",
	}
}

// Scene is the SphereWorld scene.
type Scene struct {
	Prefs *Preferences

	camera transform.Frame
	object transform.Frame

	// positions of the small spheres. never changes after NewScene()
	spheres []transform.Frame
	seed    int64

	meshes   [NumMeshes]*mesh.Batch
	textures [NumTextures]texture.Spec

	modelView  *transform.MatrixStack
	projection *transform.MatrixStack
	pipeline   transform.Pipeline
	frustum    transform.Frustum

	width  int32
	height int32

	stopwatch *Stopwatch
}

// NewScene is the preferred method of initialisation for the Scene type.
func NewScene(cfg Config) (*Scene, error) {
	if cfg.NumSpheres < 0 {
		return nil, curated.Errorf("scene: number of spheres cannot be negative (%d)", cfg.NumSpheres)
	}

	scn := &Scene{
		camera:     transform.NewFrame(),
		object:     transform.NewFrame(),
		modelView:  transform.NewMatrixStack(0),
		projection: transform.NewMatrixStack(0),
		stopwatch:  NewStopwatch(cfg.Clock),
	}

	scn.pipeline = transform.Pipeline{
		ModelView:  scn.modelView,
		Projection: scn.projection,
	}

	var err error

	scn.Prefs, err = newPreferences(cfg.PrefsFile)
	if err != nil {
		return nil, err
	}

	// geometry
	scn.meshes[MeshBigSphere] = mesh.MakeSphere(bigSphereRadius, bigSphereSlices, bigSphereStacks)
	scn.meshes[MeshSmallSphere] = mesh.MakeSphere(smallSphereRadius, smallSphereSlices, smallSphereStacks)
	scn.meshes[MeshFloor], err = mesh.MakeFloor(floorHalfSize, floorHeight, floorTexRepeat)
	if err != nil {
		return nil, curated.Errorf("scene: %v", err)
	}

	for id, b := range scn.meshes {
		logger.Logf(logger.Allow, "scene", "%s: %s", MeshID(id), b)
	}

	// sphere placements. the x and z values are taken from the random
	// sequence alternately
	rnd := random.NewRandom(cfg.Seed)
	scn.seed = rnd.Seed()
	scn.spheres = make([]transform.Frame, cfg.NumSpheres)
	for i := range scn.spheres {
		x := rnd.Spread(placementSpread, placementStep)
		z := rnd.Spread(placementSpread, placementStep)
		scn.spheres[i] = transform.NewFrame()
		scn.spheres[i].SetOrigin(x, 0.0, z)
	}
	logger.Logf(logger.Allow, "scene", "%d spheres placed (seed %d)", len(scn.spheres), scn.seed)

	// textures
	scn.textures[TexMarble] = texture.Spec{
		Filename:  filepath.Join(cfg.TextureDir, "Marble.tga"),
		MinFilter: texture.LinearMipmapLinear,
		MagFilter: texture.Linear,
		Wrap:      texture.Repeat,
	}
	scn.textures[TexMars] = texture.Spec{
		Filename:  filepath.Join(cfg.TextureDir, "Marslike.tga"),
		MinFilter: texture.LinearMipmapLinear,
		MagFilter: texture.Linear,
		Wrap:      texture.ClampToEdge,
	}
	scn.textures[TexMoon] = texture.Spec{
		Filename:  filepath.Join(cfg.TextureDir, "MoonLike.tga"),
		MinFilter: texture.LinearMipmapLinear,
		MagFilter: texture.Linear,
		Wrap:      texture.ClampToEdge,
	}

	// a change to the field of view takes effect immediately
	scn.Prefs.FOV.SetHookPost(func(_ prefs.Value) error {
		scn.setPerspective()
		return nil
	})

	return scn, nil
}

// Mesh returns the geometry for the specified mesh.
func (scn *Scene) Mesh(id MeshID) *mesh.Batch {
	return scn.meshes[id]
}

// Texture returns the description of the specified texture.
func (scn *Scene) Texture(id TextureID) texture.Spec {
	return scn.textures[id]
}

// Camera returns a copy of the camera frame.
func (scn *Scene) Camera() transform.Frame {
	return scn.camera
}

// Object returns a copy of the frame of the central group of spheres.
func (scn *Scene) Object() transform.Frame {
	return scn.object
}

// Placements returns the positions of the small spheres.
func (scn *Scene) Placements() []mgl32.Vec3 {
	p := make([]mgl32.Vec3, len(scn.spheres))
	for i := range scn.spheres {
		p[i] = scn.spheres[i].Origin()
	}
	return p
}

// Seed returns the seed used to generate the placements.
func (scn *Scene) Seed() int64 {
	return scn.seed
}

// Status summarises the state of the scene.
type Status struct {
	Camera  mgl32.Vec3
	Heading float32
	Spheres int
	Elapsed time.Duration
	Width   int32
	Height  int32
}

func (st Status) String() string {
	return fmt.Sprintf("camera (%.2f, %.2f, %.2f) heading %.0f°", st.Camera[0], st.Camera[1], st.Camera[2], st.Heading)
}

// Status returns the current status of the scene.
func (scn *Scene) Status() Status {
	return Status{
		Camera:  scn.camera.Origin(),
		Heading: heading(scn.camera.Forward()),
		Spheres: len(scn.spheres),
		Elapsed: scn.stopwatch.Elapsed(),
		Width:   scn.width,
		Height:  scn.height,
	}
}

// heading returns the angle in degrees, in the range [0, 360), of the
// forward vector in the XZ plane. zero is looking down the negative Z axis.
// the angle increases when turning left
func heading(forward mgl32.Vec3) float32 {
	h := mgl32.RadToDeg(math32.Atan2(-forward[0], -forward[2]))
	if h < 0 {
		h += 360
	}
	return h
}
