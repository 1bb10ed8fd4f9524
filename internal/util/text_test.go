package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercase", input: "Example.COM", want: "example.com"},
		{name: "trim", input: "  a.com\t", want: "a.com"},
		{name: "ip untouched", input: "1.2.3.4", want: "1.2.3.4"},
		{name: "empty", input: "   ", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeKey(tc.input))
		})
	}
}

func TestSplitCellLines(t *testing.T) {
	got := SplitCellLines("a.com\r\nb.com\n\n c.com ")
	assert.Equal(t, []string{"a.com", "b.com", "", "c.com"}, got)
	assert.Equal(t, []string{"a.com"}, SplitCellLines("a.com"))
}

func TestIndexContaining(t *testing.T) {
	values := []string{"备案号", "域名/IP", "主办单位域名"}
	assert.Equal(t, 1, IndexContaining(values, "域名"))
	assert.Equal(t, -1, IndexContaining(values, "网站"))
	assert.Equal(t, -1, IndexContaining(nil, "域名"))
}
