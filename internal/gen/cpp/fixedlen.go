package cpp

import (
	"github.com/robomsg/msggen/internal/gendeps"
	"github.com/robomsg/msggen/internal/msg"
)

// isFixedLength reports whether a spec's serialized size depends only
// on its shape: no variable-length arrays, no strings, and every
// referenced message fixed-length in turn. The graph is pre-resolved
// and acyclic, so the walk terminates; results are memoized since
// sibling fields often share a type.
func isFixedLength(g *gendeps.Graph, spec *msg.Spec) bool {
	return fixedLength(g, spec, map[string]bool{})
}

func fixedLength(g *gendeps.Graph, spec *msg.Spec, memo map[string]bool) bool {
	if fixed, ok := memo[spec.FullName()]; ok {
		return fixed
	}
	fixed := true
	for _, f := range spec.Fields {
		if f.Type.Array == msg.ArrayVariable {
			fixed = false
			break
		}
		if f.Type.Base == msg.BaseBuiltin {
			if f.Type.Builtin == msg.String {
				fixed = false
				break
			}
			continue
		}
		dep, ok := g.Spec(spec, f.Type)
		if !ok {
			panic("cpp: unresolved reference in fixed-length analysis: " + f.Type.String())
		}
		if !fixedLength(g, dep, memo) {
			fixed = false
			break
		}
	}
	memo[spec.FullName()] = fixed
	return fixed
}
