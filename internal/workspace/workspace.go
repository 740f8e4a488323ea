// Package workspace discovers homer project roots, Terraform environments
// and Packer applications on disk.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/FranckyCastell/homer/internal/constants"
	"github.com/FranckyCastell/homer/internal/style"
)

// ErrNoProject is returned when no ancestor directory qualifies as a
// project root.
var ErrNoProject = errors.New("no se pudo encontrar el directorio raíz del proyecto con entornos de Terraform")

// InvalidEnvironmentError reports an environment name that does not resolve
// to a directory with Terraform files.
type InvalidEnvironmentError struct {
	Name string
}

func (e *InvalidEnvironmentError) Error() string {
	if e.Name == "" {
		return "se debe especificar un entorno"
	}
	return fmt.Sprintf("el entorno '%s' no es válido o no contiene ficheros %s", e.Name, constants.TerraformFileGlob)
}

// InvalidAppError reports a Packer application name that does not resolve
// to a directory with Packer files.
type InvalidAppError struct {
	Name string
}

func (e *InvalidAppError) Error() string {
	if e.Name == "" {
		return "se debe especificar una aplicación para construir"
	}
	return fmt.Sprintf("la aplicación '%s' no es válida o no contiene ficheros %s", e.Name, constants.PackerFileGlob)
}

// hasGlob reports whether dir contains at least one file matching pattern.
func hasGlob(dir, pattern string) bool {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	return err == nil && len(matches) > 0
}

// isValidRoot reports whether dir contains at least one subdirectory with
// Terraform files.
func isValidRoot(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if hasGlob(filepath.Join(dir, entry.Name()), constants.TerraformFileGlob) {
			return true
		}
	}
	return false
}

// FindRoot walks upward from start looking for a project root: a directory
// whose children hold Terraform files, or one with a conventional
// terraform/ child that does.
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		if isValidRoot(dir) {
			return dir, nil
		}
		sub := filepath.Join(dir, constants.TerraformRootSubdir)
		if isValidRoot(sub) {
			return sub, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoProject
		}
		dir = parent
	}
}

// Environments returns the sorted names of valid Terraform environments
// under the project root.
func Environments(root string) []string {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}
	var envs []string
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if hasGlob(filepath.Join(root, entry.Name()), constants.TerraformFileGlob) {
			envs = append(envs, entry.Name())
		}
	}
	sort.Strings(envs)
	return envs
}

// ValidateEnvironment resolves an environment name to its absolute path.
func ValidateEnvironment(root, name string) (string, error) {
	if name == "" {
		return "", &InvalidEnvironmentError{}
	}
	path := filepath.Join(root, name)
	if info, err := os.Stat(path); err != nil || !info.IsDir() || !hasGlob(path, constants.TerraformFileGlob) {
		return "", &InvalidEnvironmentError{Name: name}
	}
	return path, nil
}

// Apps returns the sorted names of valid Packer applications under the
// project's amis/ directory.
func Apps(root string) []string {
	amisDir := filepath.Join(root, constants.PackerAppDir)
	entries, err := os.ReadDir(amisDir)
	if err != nil {
		return nil
	}
	var apps []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if hasGlob(filepath.Join(amisDir, entry.Name()), constants.PackerFileGlob) {
			apps = append(apps, entry.Name())
		}
	}
	sort.Strings(apps)
	return apps
}

// ValidateApp resolves a Packer application name to its absolute path.
func ValidateApp(root, name string) (string, error) {
	if name == "" {
		return "", &InvalidAppError{}
	}
	path := filepath.Join(root, constants.PackerAppDir, name)
	if info, err := os.Stat(path); err != nil || !info.IsDir() || !hasGlob(path, constants.PackerFileGlob) {
		return "", &InvalidAppError{Name: name}
	}
	return path, nil
}

// PinnedVersion reads the required Terraform version from the nearest
// .terraform-version file, walking upward from start. Returns "" when no
// pin exists or the file cannot be read.
func PinnedVersion(start string) string {
	dir, err := filepath.Abs(start)
	if err != nil {
		return ""
	}
	for {
		path := filepath.Join(dir, constants.VersionPinFile)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			data, err := os.ReadFile(path)
			if err != nil {
				style.PrintWarning("no se pudo leer el fichero %s: %v", path, err)
				return ""
			}
			if version := strings.TrimSpace(string(data)); version != "" {
				return version
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
