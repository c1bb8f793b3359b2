// Package gendeps resolves the transitive dependency graph of a message
// spec and computes its content digest: an MD5 hash over the canonical
// definition text plus the concatenated full text of the spec and every
// message it references.
package gendeps

import (
	"crypto/md5"
	"errors"
	"fmt"
	"strings"

	"github.com/robomsg/msggen/internal/msg"
)

// ErrCyclicDependency is returned when message specs reference each
// other in a cycle. The source domain forbids this; surfacing it as a
// hard error beats recursing without bound.
var ErrCyclicDependency = errors.New("cyclic message dependency")

// SpecLookup resolves a composite type reference to its parsed spec.
type SpecLookup interface {
	Lookup(pkg, name string) (*msg.Spec, error)
}

// Graph is the pre-resolved dependency graph for one root spec. Every
// composite reference reachable from the root resolves through Spec
// without further lookups.
type Graph struct {
	Root *msg.Spec
	// Deps holds the transitive dependencies in depth-first,
	// first-visit order, root excluded. This order is part of the
	// full-text contract and must be deterministic.
	Deps []*msg.Spec

	specs map[string]*msg.Spec
}

// Spec returns the resolved spec a field type of owner refers to.
// Bare composite names resolve in the owning package; header fields
// resolve to the well-known header spec.
func (g *Graph) Spec(owner *msg.Spec, t msg.Type) (*msg.Spec, bool) {
	pkg, name, ok := refTarget(owner, t)
	if !ok {
		return nil, false
	}
	s, ok := g.specs[pkg+"/"+name]
	return s, ok
}

// Resolve builds the dependency graph for root, visiting every
// composite field transitively. A reference that cannot be located and
// a dependency cycle are both hard errors.
func Resolve(lookup SpecLookup, root *msg.Spec) (*Graph, error) {
	g := &Graph{
		Root:  root,
		specs: map[string]*msg.Spec{root.FullName(): root},
	}
	visiting := map[string]bool{}
	if err := resolveSpec(lookup, g, root, visiting); err != nil {
		return nil, err
	}
	return g, nil
}

func resolveSpec(lookup SpecLookup, g *Graph, spec *msg.Spec, visiting map[string]bool) error {
	visiting[spec.FullName()] = true
	defer delete(visiting, spec.FullName())

	for _, f := range spec.Fields {
		pkg, name, ok := refTarget(spec, f.Type)
		if !ok {
			continue
		}
		key := pkg + "/" + name
		if visiting[key] {
			return fmt.Errorf("%w: %s -> %s", ErrCyclicDependency, spec.FullName(), key)
		}
		if _, seen := g.specs[key]; seen {
			continue
		}
		dep, err := lookup.Lookup(pkg, name)
		if err != nil {
			return fmt.Errorf("field %s of %s: %w", f.Name, spec.FullName(), err)
		}
		g.specs[key] = dep
		g.Deps = append(g.Deps, dep)
		if err := resolveSpec(lookup, g, dep, visiting); err != nil {
			return err
		}
	}
	return nil
}

// refTarget returns the (package, name) a field type refers to, or
// ok=false for builtin types. The well-known header type resolves to
// the roslib package.
func refTarget(owner *msg.Spec, t msg.Type) (pkg, name string, ok bool) {
	switch t.Base {
	case msg.BaseHeader:
		return "roslib", "Header", true
	case msg.BaseComposite:
		pkg = t.Package
		if pkg == "" {
			pkg = owner.Package
		}
		return pkg, t.Name, true
	}
	return "", "", false
}

// Digest is the content digest for a resolved graph: a reproducible
// hash plus the concatenated definition text of the root and all of its
// dependencies. Emitters treat it as opaque.
type Digest struct {
	MD5      string
	FullText string
}

// ComputeDigest derives the digest for a resolved graph.
func ComputeDigest(g *Graph) *Digest {
	sums := map[string]string{}
	return &Digest{
		MD5:      md5Sum(g, g.Root, sums),
		FullText: fullText(g),
	}
}

// md5Sum hashes the canonical text of a spec: constant lines first,
// then field lines, with each composite field's type token replaced by
// the referenced spec's own hash. Memoized per full name since sibling
// fields may share a type.
func md5Sum(g *Graph, spec *msg.Spec, sums map[string]string) string {
	if sum, ok := sums[spec.FullName()]; ok {
		return sum
	}

	var b strings.Builder
	for _, c := range spec.Constants {
		fmt.Fprintf(&b, "%s %s=%s\n", c.Type, c.Name, c.Value)
	}
	for _, f := range spec.Fields {
		if f.Type.Base == msg.BaseBuiltin {
			fmt.Fprintf(&b, "%s %s\n", f.Type, f.Name)
			continue
		}
		dep, ok := g.Spec(spec, f.Type)
		if !ok {
			// Resolve guarantees every reference is present.
			panic(fmt.Sprintf("gendeps: unresolved reference %s in %s", f.Type, spec.FullName()))
		}
		fmt.Fprintf(&b, "%s %s\n", md5Sum(g, dep, sums), f.Name)
	}

	sum := fmt.Sprintf("%x", md5.Sum([]byte(strings.TrimRight(b.String(), "\n"))))
	sums[spec.FullName()] = sum
	return sum
}

const textSeparator = "================================================================================"

// fullText concatenates the root definition with every dependency's,
// each introduced by a separator and a "MSG:" identity line.
func fullText(g *Graph) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(g.Root.Text, "\n"))
	b.WriteString("\n")
	for _, dep := range g.Deps {
		b.WriteString(textSeparator + "\n")
		fmt.Fprintf(&b, "MSG: %s\n", dep.FullName())
		b.WriteString(strings.TrimRight(dep.Text, "\n"))
		b.WriteString("\n")
	}
	return b.String()
}
