package msg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// ManifestName is the file that marks a directory as a message package.
const ManifestName = "package.yaml"

// ErrPackageNotFound is returned when no package directory on the
// search path matches a requested package name.
var ErrPackageNotFound = errors.New("package not found")

// Manifest is the package.yaml metadata at a package root.
type Manifest struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// ReadManifest loads and validates the manifest in dir. The manifest
// name must match the directory's base name.
func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s in %s: %w", ManifestName, dir, err)
	}
	if m.Name == "" {
		return nil, fmt.Errorf("manifest in %s has no name", dir)
	}
	if base := filepath.Base(dir); m.Name != base {
		return nil, fmt.Errorf("manifest name %q does not match directory %q", m.Name, base)
	}
	return &m, nil
}

// FindPackage walks up from a .msg file path to the nearest directory
// containing a package manifest and returns the package directory and
// name.
func FindPackage(msgPath string) (dir, pkg string, err error) {
	abs, err := filepath.Abs(msgPath)
	if err != nil {
		return "", "", err
	}
	for d := filepath.Dir(abs); ; d = filepath.Dir(d) {
		if _, statErr := os.Stat(filepath.Join(d, ManifestName)); statErr == nil {
			m, err := ReadManifest(d)
			if err != nil {
				return "", "", err
			}
			return d, m.Name, nil
		}
		if d == filepath.Dir(d) {
			return "", "", fmt.Errorf("%w: no %s above %s", ErrPackageNotFound, ManifestName, msgPath)
		}
	}
}

// Registry resolves message specs by (package, name) over a list of
// package search roots, caching parsed specs and located package
// directories for the duration of one generation run.
type Registry struct {
	searchPath []string
	pkgDirs    map[string]string
	specs      map[string]*Spec
}

// NewRegistry creates a registry over the given search roots. Each root
// is a directory whose immediate children are package directories.
func NewRegistry(searchPath []string) *Registry {
	return &Registry{
		searchPath: searchPath,
		pkgDirs:    make(map[string]string),
		specs:      make(map[string]*Spec),
	}
}

// AddPackageDir registers a known package directory, typically the one
// the root .msg file was found in, so its siblings resolve without a
// search-path hit.
func (r *Registry) AddPackageDir(pkg, dir string) {
	r.pkgDirs[pkg] = dir
}

// Add seeds the registry with an already-parsed spec.
func (r *Registry) Add(spec *Spec) {
	r.specs[spec.FullName()] = spec
}

// PackageDir locates the directory for a package, consulting the cache
// first and then each search root in order.
func (r *Registry) PackageDir(pkg string) (string, error) {
	if dir, ok := r.pkgDirs[pkg]; ok {
		return dir, nil
	}
	for _, root := range r.searchPath {
		dir := filepath.Join(root, pkg)
		if _, err := os.Stat(filepath.Join(dir, ManifestName)); err != nil {
			continue
		}
		if _, err := ReadManifest(dir); err != nil {
			return "", err
		}
		r.pkgDirs[pkg] = dir
		return dir, nil
	}
	return "", fmt.Errorf("%w: %s (search path %v)", ErrPackageNotFound, pkg, r.searchPath)
}

// Lookup returns the spec for (pkg, name), loading and caching
// <pkgdir>/msg/<name>.msg on first use.
func (r *Registry) Lookup(pkg, name string) (*Spec, error) {
	key := pkg + "/" + name
	if spec, ok := r.specs[key]; ok {
		return spec, nil
	}
	dir, err := r.PackageDir(pkg)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", key, err)
	}
	spec, err := ParseFile(filepath.Join(dir, "msg", name+".msg"), pkg)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	r.specs[key] = spec
	return spec, nil
}
