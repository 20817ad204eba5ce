package colorscan

import (
	"testing"

	"github.com/npillmayer/csscolor/csscolor"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csscolor.scan")
	defer teardown()
	//
	value := "1px solid rgb(0, 0, 255), 2px dotted #abc red"
	matches := Find(value)
	require.Len(t, matches, 3)
	assert.Equal(t, "rgb(0, 0, 255)", matches[0].Text)
	assert.Equal(t, 10, matches[0].Offset)
	assert.Equal(t, csscolor.UnitRGB, matches[0].Color.Unit())
	assert.Equal(t, "#abc", matches[1].Text)
	assert.Equal(t, csscolor.UnitShortHex, matches[1].Color.Unit())
	assert.Equal(t, "red", matches[2].Text)
	for _, m := range matches {
		assert.Equal(t, m.Text, value[m.Offset:m.End()])
	}
}

func TestFindSkipsNonColors(t *testing.T) {
	for _, value := range []string{
		"15px",
		"solid",
		"url(#abc)",
		`"red"`,
		"/* red */ 0",
		"#main",
		"rgb(1, 2",
		"rgb(300, 0, 0)",
	} {
		if m := Find(value); len(m) != 0 {
			t.Errorf("expected no colors in %q, found %v", value, m)
		}
	}
}

func TestFindInGradient(t *testing.T) {
	matches := Find("linear-gradient(to right, hsla(0, 100%, 50%, 0.5), transparent)")
	require.Len(t, matches, 2)
	assert.True(t, matches[0].Color.HasAlpha())
	assert.True(t, matches[1].Color.IsTransparent())
}

func TestRewrite(t *testing.T) {
	tests := []struct {
		value string
		unit  csscolor.Unit
		want  string
		n     int
	}{
		{"red", csscolor.UnitHex, "#FF0000", 1},
		{"1px solid rgb(0, 0, 255)", csscolor.UnitNickname, "1px solid blue", 1},
		{"#abc #ABCDEF", csscolor.UnitRGB, "rgb(170, 187, 204) rgb(171, 205, 239)", 2},
		{"0 0 3px rgba(0,0,0,0.5)", csscolor.UnitHex, "0 0 3px rgba(0, 0, 0, 0.5)", 1},
		{"0 0 3px rgba(0,0,0,0.5)", csscolor.UnitHSL, "0 0 3px hsla(0, 0%, 0%, 0.5)", 1},
		{"auto", csscolor.UnitHex, "auto", 0},
	}
	for _, tt := range tests {
		out, n := Rewrite(tt.value, tt.unit)
		if out != tt.want || n != tt.n {
			t.Errorf("expected %q as %v to be %q (%d), is %q (%d)", tt.value, tt.unit, tt.want, tt.n, out, n)
		}
	}
}
