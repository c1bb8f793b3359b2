package msg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writePackage lays out <root>/<pkg>/package.yaml plus msg files keyed
// by message name.
func writePackage(t *testing.T, root, pkg string, msgs map[string]string) string {
	t.Helper()
	dir := filepath.Join(root, pkg)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "msg"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestName), []byte("name: "+pkg+"\n"), 0o644))
	for name, src := range msgs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "msg", name+".msg"), []byte(src), 0o644))
	}
	return dir
}

func TestFindPackage(t *testing.T) {
	root := t.TempDir()
	dir := writePackage(t, root, "robot_msgs", map[string]string{"Pose": "float64 x\n"})

	gotDir, gotPkg, err := FindPackage(filepath.Join(dir, "msg", "Pose.msg"))
	require.NoError(t, err)
	assert.Equal(t, "robot_msgs", gotPkg)
	assert.Equal(t, dir, gotDir)
}

func TestFindPackageMissingManifest(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "orphan", "msg", "Pose.msg")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("float64 x\n"), 0o644))

	_, _, err := FindPackage(path)
	require.ErrorIs(t, err, ErrPackageNotFound)
}

func TestManifestNameMismatch(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "robot_msgs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestName), []byte("name: other\n"), 0o644))

	_, err := ReadManifest(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match")
}

func TestRegistryLookup(t *testing.T) {
	root := t.TempDir()
	writePackage(t, root, "robot_msgs", map[string]string{
		"Pose":  "float64 x\nfloat64 y\n",
		"Twist": "robot_msgs/Pose vel\n",
	})

	reg := NewRegistry([]string{root})

	spec, err := reg.Lookup("robot_msgs", "Twist")
	require.NoError(t, err)
	assert.Equal(t, "robot_msgs/Twist", spec.FullName())

	// Cached: same pointer on repeat lookups.
	again, err := reg.Lookup("robot_msgs", "Twist")
	require.NoError(t, err)
	assert.Same(t, spec, again)
}

func TestRegistryUnknownPackage(t *testing.T) {
	reg := NewRegistry([]string{t.TempDir()})
	_, err := reg.Lookup("no_such_pkg", "Pose")
	require.ErrorIs(t, err, ErrPackageNotFound)
}

func TestRegistrySearchPathOrder(t *testing.T) {
	rootA := t.TempDir()
	rootB := t.TempDir()
	writePackage(t, rootA, "robot_msgs", map[string]string{"Pose": "float64 x\n"})
	writePackage(t, rootB, "robot_msgs", map[string]string{"Pose": "float64 x\nfloat64 y\n"})

	reg := NewRegistry([]string{rootA, rootB})
	spec, err := reg.Lookup("robot_msgs", "Pose")
	require.NoError(t, err)
	// First root wins.
	assert.Len(t, spec.Fields, 1)
}
