// Package cmd implements the msggen CLI commands.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/robomsg/msggen/internal/gen"
	"github.com/robomsg/msggen/internal/gendeps"
	"github.com/robomsg/msggen/internal/msg"

	_ "github.com/robomsg/msggen/internal/gen/cpp" // register the C++ generator
)

// Generate compiles .msg files into target-language source.
type Generate struct {
	Paths      []string `arg:"" name:"path" help:"Message definition files (.msg)" type:"existingfile"`
	SearchPath []string `help:"Package search roots for resolving referenced message types" env:"MSGGEN_PATH"`
	Lang       string   `help:"Target language" default:"cpp" enum:"cpp" env:"MSGGEN_LANG"`
	OutputDir  string   `help:"Override the derived output directory"`
	DryRun     bool     `help:"Print generated source to stdout instead of writing files"`
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger) error {
	for _, path := range g.Paths {
		if err := g.generateOne(logger, path); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func (g *Generate) generateOne(logger *slog.Logger, path string) error {
	pkgDir, pkg, err := msg.FindPackage(path)
	if err != nil {
		return err
	}
	logger.Debug("Resolved owning package", "package", pkg, "dir", pkgDir)

	spec, err := msg.ParseFile(path, pkg)
	if err != nil {
		return err
	}

	reg := msg.NewRegistry(g.SearchPath)
	reg.AddPackageDir(pkg, pkgDir)
	reg.Add(spec)

	graph, err := gendeps.Resolve(reg, spec)
	if err != nil {
		return err
	}
	digest := gendeps.ComputeDigest(graph)
	logger.Debug("Resolved dependencies", "message", spec.FullName(),
		"deps", len(graph.Deps), "md5", digest.MD5)

	req := &gen.Request{
		Spec:       spec,
		Graph:      graph,
		Digest:     digest,
		PackageDir: pkgDir,
		SourceFile: path,
		OutputDir:  g.OutputDir,
	}
	if g.DryRun {
		req.Stdout = os.Stdout
	}
	return gen.Generate(logger, g.Lang, req)
}
