// Package stub turns a plugin manifest into a Lua stub module: enum tables
// followed by documented, body-less function declarations. Everything here
// is a pure function of its input; callers own all I/O.
package stub

import (
	"strconv"
	"strings"

	"github.com/cmmoran/luastubgen/pkg/model"
)

// DefaultProvenance is written into the header of every stub unless the
// Generator overrides it.
const DefaultProvenance = "https://github.com/cmmoran/luastubgen"

// Generator renders stubs. The zero value uses DefaultProvenance.
type Generator struct {
	Provenance string
}

// Generate renders the stub for m with the default Generator.
func Generate(name string, m *model.Manifest) string {
	return Generator{}.Generate(name, m)
}

// Generate renders the full stub text for the manifest called name. The
// output always ends with a single newline.
func (g Generator) Generate(name string, m *model.Manifest) string {
	if m == nil {
		panic("stub: Generate called with nil manifest")
	}
	provenance := orDefault(g.Provenance, DefaultProvenance)

	var b strings.Builder
	b.WriteString("-- Generated from " + name + ".pplugin by " + provenance + "\n\n")
	b.WriteString(CollectEnums(m))

	for i, method := range m.Methods {
		if method == nil {
			panic("stub: manifest " + name + " has a nil method at index " + strconv.Itoa(i))
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(RenderDoc(method))
		b.WriteString("\n")
		b.WriteString("function " + orDefault(method.Name, defaultMethodName) + "(" + RenderParams(method.ParamTypes) + ") end\n")
	}

	// Without methods the header or the last enum block leaves a dangling
	// blank line.
	return strings.TrimRight(b.String(), "\n") + "\n"
}
