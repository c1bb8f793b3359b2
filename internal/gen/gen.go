// Package gen dispatches a resolved message spec to a target-language
// generator. Language packages register themselves in init, so callers
// blank-import the languages they want available.
package gen

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/robomsg/msggen/internal/gendeps"
	"github.com/robomsg/msggen/internal/msg"
)

// Request carries everything a language generator needs for one
// generation run: the parsed spec, its pre-resolved dependency graph,
// the content digest, and output placement.
type Request struct {
	Spec   *msg.Spec
	Graph  *gendeps.Graph
	Digest *gendeps.Digest

	// PackageDir is the root of the owning package; the output
	// location is derived from it unless OutputDir overrides it.
	PackageDir string
	// SourceFile is the .msg path, recorded in the generated banner.
	SourceFile string
	OutputDir  string
	// Stdout, when set, receives the generated unit instead of the
	// filesystem (dry runs).
	Stdout io.Writer
}

// LanguageGenerator produces one output unit for a request.
type LanguageGenerator func(logger *slog.Logger, req *Request) error

var generators = map[string]LanguageGenerator{}

// Register adds a language generator. Called from language package
// init functions.
func Register(lang string, g LanguageGenerator) {
	generators[lang] = g
}

// Languages returns the registered language keys, sorted.
func Languages() []string {
	langs := make([]string, 0, len(generators))
	for k := range generators {
		langs = append(langs, k)
	}
	sort.Strings(langs)
	return langs
}

// Generate dispatches to the generator registered for lang.
func Generate(logger *slog.Logger, lang string, req *Request) error {
	g, ok := generators[lang]
	if !ok {
		return fmt.Errorf("unsupported language %q (supported: %v)", lang, Languages())
	}
	return g(logger, req)
}
