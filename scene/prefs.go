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
	"github.com/jetsetilly/sphereworld/curated"
	"github.com/jetsetilly/sphereworld/prefs"
)

// Preferences for the scene.
type Preferences struct {
	dsk *prefs.Disk

	// vertical field of view in degrees
	FOV prefs.Float

	// distance moved by the camera for each key press
	LinearStep prefs.Float

	// angle in degrees turned by the camera for each key press
	AngularStep prefs.Float
}

func newPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, curated.Errorf("scene: %v", err)
	}

	err = p.dsk.Add("scene.fov", &p.FOV)
	if err != nil {
		return nil, curated.Errorf("scene: %v", err)
	}
	err = p.dsk.Add("scene.linearStep", &p.LinearStep)
	if err != nil {
		return nil, curated.Errorf("scene: %v", err)
	}
	err = p.dsk.Add("scene.angularStep", &p.AngularStep)
	if err != nil {
		return nil, curated.Errorf("scene: %v", err)
	}

	err = p.dsk.Load()
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, curated.Errorf("scene: %v", err)
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.FOV.Set(35.0)
	_ = p.LinearStep.Set(0.1)
	_ = p.AngularStep.Set(5.0)
}

// Load scene preferences from disk.
func (p *Preferences) Load() error {
	err := p.dsk.Load()
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return err
	}
	return nil
}

// Save current scene preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

func asFloat32(v *prefs.Float) float32 {
	return float32(v.Get().(float64))
}
