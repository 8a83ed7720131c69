package stub

import (
	"strconv"
	"strings"

	"github.com/cmmoran/luastubgen/pkg/model"
)

const (
	defaultEnumName      = "InvalidEnum"
	defaultEnumValueName = "InvalidName_"
)

// RenderEnum renders e as a Lua table and records its name in seen. An enum
// whose name is already in seen renders to "" and leaves seen untouched, so
// the first definition of a name wins even when later ones differ.
func RenderEnum(e *model.Enum, seen map[string]struct{}) string {
	name := orDefault(e.Name, defaultEnumName)
	if _, ok := seen[name]; ok {
		return ""
	}
	seen[name] = struct{}{}

	var b strings.Builder
	if e.Description != "" {
		b.WriteString("-- " + name + ": " + e.Description + "\n")
	} else {
		b.WriteString("-- Enum: " + name + "\n")
	}
	b.WriteString(name + " = {\n")
	for i, v := range e.Values {
		if v == nil {
			v = &model.EnumValue{}
		}
		if v.Description != "" {
			b.WriteString("  -- " + v.Description + "\n")
		}
		value := strconv.Itoa(i)
		if v.Value != nil {
			value = v.Value.String()
		}
		b.WriteString("  " + orDefault(v.Name, defaultEnumValueName+strconv.Itoa(i)) + " = " + value + ",\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// CollectEnums renders every enum reachable from m exactly once, in
// discovery order, each block followed by a blank line.
func CollectEnums(m *model.Manifest) string {
	var (
		b    strings.Builder
		seen = make(map[string]struct{})
	)
	visit := func(e *model.Enum) {
		if e == nil {
			return
		}
		if s := RenderEnum(e, seen); s != "" {
			b.WriteString(s)
			b.WriteString("\n")
		}
	}
	for _, method := range m.Methods {
		walkEnums(method, visit)
	}
	return b.String()
}

// walkEnums visits the return enum of m, then each parameter's enum followed
// by the enums of its callback prototype. Prototypes are followed to any
// depth.
func walkEnums(m *model.Method, visit func(*model.Enum)) {
	if m == nil {
		return
	}
	if m.RetType != nil {
		visit(m.RetType.Enum)
	}
	for _, p := range m.ParamTypes {
		if p == nil {
			continue
		}
		visit(p.Enum)
		if p.Type == "function" && p.Prototype != nil {
			walkEnums(p.Prototype, visit)
		}
	}
}
