package stub

import (
	"strconv"
	"strings"

	"github.com/cmmoran/luastubgen/pkg/model"
)

// RenderParams renders the parameter list of a Lua function declaration.
// Unnamed parameters become p<index>.
func RenderParams(params []*model.Param) string {
	names := make([]string, 0, len(params))
	for i, p := range params {
		name := "p" + strconv.Itoa(i)
		if p != nil && p.Name != "" {
			name = p.Name
		}
		names = append(names, SanitizeName(name))
	}
	return strings.Join(names, ", ")
}
