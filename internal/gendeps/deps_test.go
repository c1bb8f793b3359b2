package gendeps

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robomsg/msggen/internal/msg"
)

// mapLookup resolves specs from a fixed map, standing in for the
// filesystem registry.
type mapLookup map[string]*msg.Spec

func (m mapLookup) Lookup(pkg, name string) (*msg.Spec, error) {
	s, ok := m[pkg+"/"+name]
	if !ok {
		return nil, fmt.Errorf("unknown message type %s/%s", pkg, name)
	}
	return s, nil
}

func mustParse(t *testing.T, pkg, name, src string) *msg.Spec {
	t.Helper()
	spec, err := msg.Parse(pkg, name, src)
	require.NoError(t, err)
	return spec
}

func TestResolveOrder(t *testing.T) {
	point := mustParse(t, "geo", "Point", "float64 x\nfloat64 y\n")
	quat := mustParse(t, "geo", "Quaternion", "float64 w\n")
	pose := mustParse(t, "geo", "Pose", "Point position\ngeo/Quaternion orientation\nPoint second_point\n")

	lookup := mapLookup{"geo/Point": point, "geo/Quaternion": quat}
	g, err := Resolve(lookup, pose)
	require.NoError(t, err)

	// Depth-first, first-visit order; Point appears once.
	require.Len(t, g.Deps, 2)
	assert.Equal(t, "geo/Point", g.Deps[0].FullName())
	assert.Equal(t, "geo/Quaternion", g.Deps[1].FullName())

	dep, ok := g.Spec(pose, pose.Fields[0].Type)
	require.True(t, ok)
	assert.Same(t, point, dep)
}

func TestResolveHeader(t *testing.T) {
	header := mustParse(t, "roslib", "Header", "uint32 seq\ntime stamp\nstring frame_id\n")
	scan := mustParse(t, "sensors", "Scan", "Header header\nfloat32[] ranges\n")

	g, err := Resolve(mapLookup{"roslib/Header": header}, scan)
	require.NoError(t, err)
	require.Len(t, g.Deps, 1)
	assert.Equal(t, "roslib/Header", g.Deps[0].FullName())
}

func TestResolveUnknownReference(t *testing.T) {
	pose := mustParse(t, "geo", "Pose", "geo/Missing position\n")
	_, err := Resolve(mapLookup{}, pose)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "geo/Pose")
	assert.Contains(t, err.Error(), "position")
}

func TestResolveCycle(t *testing.T) {
	a := mustParse(t, "p", "A", "p/B b\n")
	b := mustParse(t, "p", "B", "p/A a\n")

	_, err := Resolve(mapLookup{"p/A": a, "p/B": b}, a)
	require.ErrorIs(t, err, ErrCyclicDependency)
}

func TestResolveSelfReference(t *testing.T) {
	a := mustParse(t, "p", "A", "p/A next\n")
	_, err := Resolve(mapLookup{"p/A": a}, a)
	require.ErrorIs(t, err, ErrCyclicDependency)
}

func TestDigestDeterminism(t *testing.T) {
	point := mustParse(t, "geo", "Point", "float64 x\nfloat64 y\n")
	pose := mustParse(t, "geo", "Pose", "uint8 KIND=3\nPoint position\nfloat64[4] covariance\n")

	lookup := mapLookup{"geo/Point": point}
	g, err := Resolve(lookup, pose)
	require.NoError(t, err)

	d1 := ComputeDigest(g)
	d2 := ComputeDigest(g)
	assert.Equal(t, d1, d2)
	assert.Len(t, d1.MD5, 32)
}

func TestDigestCompositeSubstitution(t *testing.T) {
	point := mustParse(t, "geo", "Point", "float64 x\n")
	pose := mustParse(t, "geo", "Pose", "Point position\n")

	g, err := Resolve(mapLookup{"geo/Point": point}, pose)
	require.NoError(t, err)
	digest := ComputeDigest(g)

	gPoint, err := Resolve(mapLookup{}, point)
	require.NoError(t, err)
	pointDigest := ComputeDigest(gPoint)

	// Changing the nested definition must change the parent digest.
	point2 := mustParse(t, "geo", "Point", "float64 x\nfloat64 y\n")
	g2, err := Resolve(mapLookup{"geo/Point": point2}, pose)
	require.NoError(t, err)
	assert.NotEqual(t, digest.MD5, ComputeDigest(g2).MD5)

	// The parent digest differs from the child's own.
	assert.NotEqual(t, digest.MD5, pointDigest.MD5)
}

func TestFullText(t *testing.T) {
	point := mustParse(t, "geo", "Point", "float64 x\n")
	pose := mustParse(t, "geo", "Pose", "Point position\n")

	g, err := Resolve(mapLookup{"geo/Point": point}, pose)
	require.NoError(t, err)
	digest := ComputeDigest(g)

	lines := strings.Split(strings.TrimRight(digest.FullText, "\n"), "\n")
	require.Equal(t, []string{
		"Point position",
		strings.Repeat("=", 80),
		"MSG: geo/Point",
		"float64 x",
	}, lines)
}
