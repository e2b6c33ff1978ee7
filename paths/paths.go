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

// Package paths contains functions that prepare paths for SphereWorld
// resources: the preferences file, screenshots, and the directory that
// texture files are loaded from.
package paths

import (
	"os"
	"path/filepath"
)

// the name of the directory in the user's configuration directory
const configDir = "sphereworld"

// a local directory of this name takes precedence over the user's
// configuration directory. useful during development
const localConfigDir = ".sphereworld"

// ResourcePath returns the path to a resource file in the SphereWorld
// configuration directory. The sub-directory path is created if necessary but
// the file itself is not touched.
//
// Either subPth or file can be empty.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := basePath()
	if err != nil {
		return "", err
	}

	pth := filepath.Join(base, subPth)
	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return filepath.Join(pth, file), nil
}

// ResourcePathNoCreate is like ResourcePath() but does not create any
// directories. Useful for modes that only read resources.
func ResourcePathNoCreate(subPth string, file string) (string, error) {
	base, err := basePath()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, subPth, file), nil
}

func basePath() (string, error) {
	if fi, err := os.Stat(localConfigDir); err == nil && fi.IsDir() {
		return localConfigDir, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, configDir), nil
}
