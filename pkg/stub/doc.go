package stub

import (
	"strings"

	"github.com/cmmoran/luastubgen/pkg/model"
)

const (
	defaultMethodName        = "UnnamedMethod"
	defaultCallbackName      = "UnnamedCallback"
	defaultParamName         = "UnnamedParam"
	defaultParamType         = "any"
	defaultReturnType        = "void"
	defaultDescription       = "No description provided."
	defaultDetailDescription = "No description available."
)

// RenderDoc renders the LuaLS comment block placed above a method stub.
// Callback prototypes are documented one level deep; parameters of a
// prototype are never inspected for further prototypes.
func RenderDoc(m *model.Method) string {
	if m == nil {
		panic("stub: RenderDoc called with nil method")
	}
	lines := []string{"--- " + orDefault(m.Description, defaultDescription)}
	lines = appendParamLines(lines, m.ParamTypes)

	if ret := returnType(m.RetType); !strings.EqualFold(ret, defaultReturnType) {
		lines = append(lines, returnLine(m.RetType))
	}

	for _, p := range m.ParamTypes {
		if p == nil || p.Type != "function" || p.Prototype == nil {
			continue
		}
		proto := p.Prototype
		lines = append(lines, "-- @callback "+orDefault(proto.Name, defaultCallbackName)+" "+p.Name+" - "+orDefault(proto.Description, defaultDescription))
		lines = appendParamLines(lines, proto.ParamTypes)
		if proto.RetType != nil {
			lines = append(lines, returnLine(proto.RetType))
		}
	}

	return strings.Join(lines, "\n")
}

func appendParamLines(lines []string, params []*model.Param) []string {
	for _, p := range params {
		if p == nil {
			p = &model.Param{}
		}
		lines = append(lines, "-- @param "+
			orDefault(p.Name, defaultParamName)+" "+
			orDefault(p.Type, defaultParamType)+" "+
			orDefault(p.Description, defaultDetailDescription))
	}
	return lines
}

func returnLine(r *model.ReturnSpec) string {
	desc := defaultDetailDescription
	if r != nil {
		desc = orDefault(r.Description, defaultDetailDescription)
	}
	return "-- @return " + returnType(r) + " " + desc
}

func returnType(r *model.ReturnSpec) string {
	if r == nil {
		return defaultReturnType
	}
	return orDefault(r.Type, defaultReturnType)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
