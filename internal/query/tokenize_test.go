package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"simple", "Meeting Notes", []string{"meeting", "notes"}},
		{"whitespace runs", "  foo\t bar \n baz ", []string{"foo", "bar", "baz"}},
		{"hash preserved", "#todo milk", []string{"#todo", "milk"}},
		{"empty", "", nil},
		{"only whitespace", "   \t\n", nil},
		{"already lowercase", "2026-01", []string{"2026-01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.query)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
