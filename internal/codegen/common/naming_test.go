package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single dot", "File.Open", "File_Open"},
		{"multiple dots", "Project.Build.Cancel", "Project_Build_Cancel"},
		{"no dots", "Paste", "Paste"},
		{"empty", "", ""},
		{"only other characters pass through", "File.Open All", "File_Open All"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeName(tt.in))
		})
	}
}

func TestFileHeader(t *testing.T) {
	h := FileHeader("//")
	assert.True(t, strings.HasPrefix(h, "// <auto-generated>\n"))
	assert.True(t, strings.HasSuffix(h, "// </auto-generated>\n"))
	for _, line := range strings.Split(strings.TrimSuffix(h, "\n"), "\n") {
		assert.True(t, strings.HasPrefix(line, "// "), line)
	}
}
