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

package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// the directory inside a macOS application bundle that holds resources.
// argv[0] for a bundled executable points to Contents/MacOS
const bundleResources = "../Resources"

// WorkingDirectory decides which directory the program should run from so
// that the file named by probe can be found with a relative path.
//
// The current directory is preferred if probe exists there. Otherwise, the
// directory of the executable named by argv0 is used. For an executable in a
// macOS application bundle the bundle's Resources directory is used instead.
//
// If probe cannot be found anywhere the current directory is returned.
func WorkingDirectory(argv0 string, probe string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	if exists(filepath.Join(cwd, probe)) {
		return cwd, nil
	}

	exe, err := filepath.Abs(argv0)
	if err != nil {
		return cwd, nil
	}
	dir := filepath.Dir(exe)

	if strings.HasSuffix(dir, filepath.Join("Contents", "MacOS")) {
		res := filepath.Clean(filepath.Join(dir, bundleResources))
		if exists(filepath.Join(res, probe)) {
			return res, nil
		}
	}

	if exists(filepath.Join(dir, probe)) {
		return dir, nil
	}

	return cwd, nil
}

func exists(pth string) bool {
	_, err := os.Stat(pth)
	return err == nil
}
