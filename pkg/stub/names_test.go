package stub

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeNameKeywords(t *testing.T) {
	for kw := range luaKeywords {
		t.Run(kw, func(t *testing.T) {
			require.Equal(t, kw+"_", SanitizeName(kw))
		})
	}
}

func TestSanitizeNameIdentity(t *testing.T) {
	tests := []string{"", "x", "End", "END", "end_", "ends", "self", "nil2", "_end", "Function"}
	for _, id := range tests {
		require.Equalf(t, id, SanitizeName(id), "SanitizeName(%q)", id)
	}
}
