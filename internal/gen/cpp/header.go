package cpp

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/robomsg/msggen/internal/gen"
	"github.com/robomsg/msggen/internal/msg"
)

func init() {
	gen.Register("cpp", Generate)
}

// unitTemplate is the full compilation unit. Section fragments are
// pre-rendered by the emitters; the template only fixes their order.
const unitTemplate = `/* Auto-generated by msggen from {{.Source}} */
#ifndef {{.Guard}}
#define {{.Guard}}
#include <string>
#include <vector>
#include "ros/serialization.h"
#include "ros/builtin_message_traits.h"
#include "ros/message.h"
#include "ros/time.h"

{{.Includes}}
namespace {{.Package}} { struct {{.Name}}; }

{{.TraitsDecls}}{{.SerializerDecls}}namespace {{.Package}}
{
struct {{.Name}} : public ros::Message
{
{{.Constructor}}{{.Members}}{{.Constants}}{{.LegacyMethods}}  typedef boost::shared_ptr<{{.CppMsg}}> Ptr;
  typedef boost::shared_ptr<{{.CppMsg}} const> ConstPtr;
}; // struct {{.Name}}
typedef boost::shared_ptr<{{.CppMsg}}> {{.Name}}Ptr;
typedef boost::shared_ptr<{{.CppMsg}} const> {{.Name}}ConstPtr;
} // namespace {{.Package}}

{{.TraitsBodies}}{{.SerializerBodies}}#endif // {{.Guard}}
`

var unitTmpl = template.Must(template.New("unit").Parse(unitTemplate))

type unitData struct {
	Source           string
	Guard            string
	Includes         string
	Package          string
	Name             string
	CppMsg           string
	Constructor      string
	Members          string
	Constants        string
	LegacyMethods    string
	TraitsDecls      string
	TraitsBodies     string
	SerializerDecls  string
	SerializerBodies string
}

// includeGuard derives the double-inclusion guard from package and
// type name.
func includeGuard(pkg, name string) string {
	return strings.ToUpper(pkg) + "_" + strings.ToUpper(name) + "_H"
}

// dependencyIncludes emits one include per distinct non-builtin field
// type, in first-appearance order. A header field always maps to the
// roslib header include regardless of spelling.
func dependencyIncludes(fields []msg.Field) string {
	var b strings.Builder
	seen := map[string]bool{}
	for _, f := range fields {
		var path string
		switch f.Type.Base {
		case msg.BaseHeader:
			path = "roslib/Header.h"
		case msg.BaseComposite:
			path = f.Type.BaseString() + ".h"
		default:
			continue
		}
		if seen[path] {
			continue
		}
		seen[path] = true
		fmt.Fprintf(&b, "#include \"%s\"\n", path)
	}
	return b.String()
}

// render assembles the full unit text. Pure: the same request renders
// byte-identical output.
func render(req *gen.Request) (string, error) {
	spec := req.Spec
	cppMsg := spec.Package + "::" + spec.Name

	constants, err := constantDecls(spec.Constants)
	if err != nil {
		return "", fmt.Errorf("%s: %w", spec.FullName(), err)
	}

	data := unitData{
		Source:           req.SourceFile,
		Guard:            includeGuard(spec.Package, spec.Name),
		Includes:         dependencyIncludes(spec.Fields),
		Package:          spec.Package,
		Name:             spec.Name,
		CppMsg:           cppMsg,
		Constructor:      constructor(spec.Name, spec.Fields),
		Members:          memberDecls(spec.Fields),
		Constants:        constants,
		LegacyMethods:    legacyMethods(cppMsg),
		TraitsDecls:      traitsDecls(cppMsg),
		TraitsBodies:     traitsBodies(cppMsg, spec, req.Graph, req.Digest),
		SerializerDecls:  serializerDecls(cppMsg),
		SerializerBodies: serializerBodies(cppMsg, spec.Fields),
	}

	var b strings.Builder
	if err := unitTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render %s: %w", spec.FullName(), err)
	}
	return b.String(), nil
}

// Generate compiles one spec to its C++ header. The output path is
// derived from the owning package directory unless the request
// overrides it.
func Generate(logger *slog.Logger, req *gen.Request) error {
	unit, err := render(req)
	if err != nil {
		return err
	}

	if req.Stdout != nil {
		_, err := req.Stdout.Write([]byte(unit))
		return err
	}

	outDir := req.OutputDir
	if outDir == "" {
		outDir = filepath.Join(req.PackageDir, "msg", "cpp", req.Spec.Package)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", outDir, err)
	}

	outFile := filepath.Join(outDir, req.Spec.Name+".h")
	if err := os.WriteFile(outFile, []byte(unit), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outFile, err)
	}
	logger.Info("Generated message header", "message", req.Spec.FullName(), "file", outFile)
	return nil
}
