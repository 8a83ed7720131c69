package stub

// luaKeywords are the reserved words of Lua 5.4. Lookups are case-sensitive.
var luaKeywords = map[string]struct{}{
	"and": {}, "break": {}, "do": {}, "else": {}, "elseif": {}, "end": {},
	"false": {}, "for": {}, "function": {}, "goto": {}, "if": {}, "in": {},
	"local": {}, "nil": {}, "not": {}, "or": {}, "repeat": {}, "return": {},
	"then": {}, "true": {}, "until": {}, "while": {},
}

// SanitizeName returns id unchanged unless it is a Lua keyword, in which case
// a trailing underscore is appended.
func SanitizeName(id string) string {
	if _, ok := luaKeywords[id]; ok {
		return id + "_"
	}
	return id
}

