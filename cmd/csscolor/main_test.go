package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/csscolor/csscolor"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	convertTo, convertStrict = "", false
	valuesPrefs = ""
	scanTo, scanRewrite = "rgb", false
	traceLevel = ""
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConvert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csscolor")
	defer teardown()
	//
	out, err := execute(t, "convert", "#6495ed", "--to", "nickname")
	require.NoError(t, err)
	assert.Equal(t, "cornflowerblue\n", out)

	out, err = execute(t, "convert", "rgba(10, 20, 30, 0.5)", "--to", "hsl")
	require.NoError(t, err)
	assert.Equal(t, "hsla(210, 50%, 8%, 0.5)\n", out)

	out, err = execute(t, "convert", "rgb( 0 , 0 , 255 )")
	require.NoError(t, err)
	assert.Equal(t, "rgb(0, 0, 255)\n", out)
}

func TestConvertStrict(t *testing.T) {
	_, err := execute(t, "convert", "rgba(10, 20, 30, 0.5)", "--to", "hex", "--strict")
	assert.True(t, errors.Is(err, csscolor.ErrAlphaLoss))

	out, err := execute(t, "convert", "red", "--to", "hex", "--strict")
	require.NoError(t, err)
	assert.Equal(t, "#FF0000\n", out)

	_, err = execute(t, "convert", "red", "--to", "cmyk")
	assert.True(t, errors.Is(err, csscolor.ErrUnknownUnit))
	_, err = execute(t, "convert", "reddish")
	assert.True(t, errors.Is(err, csscolor.ErrInvalidColor))
}

func TestNearest(t *testing.T) {
	out, err := execute(t, "nearest", "#6495ED")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "cornflowerblue\t"), out)

	_, err = execute(t, "nearest", "transparent")
	assert.Error(t, err)
	_, err = execute(t, "nearest", "reddish")
	assert.Error(t, err)
}

func TestValues(t *testing.T) {
	prefs := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(prefs, []byte("format: hex\nformats: [hex, nickname]\n"), 0o644))
	out, err := execute(t, "values", "rgb(255, 0, 0)", "--prefs", prefs)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "*"), lines[0])
	assert.Contains(t, lines[0], "#FF0000")
	assert.Contains(t, lines[1], "red")
}

func TestScan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csscolor.recolor")
	defer teardown()
	//
	dir := t.TempDir()
	file := filepath.Join(dir, "site.css")
	require.NoError(t, os.WriteFile(file, []byte("h1 { color: #f00 }\n"), 0o644))
	out, err := execute(t, "scan", file)
	require.NoError(t, err)
	assert.Contains(t, out, "h1")
	assert.Contains(t, out, "#f00 [shortHex] = #FF0000")

	out, err = execute(t, "scan", file, "--to", "nickname", "--rewrite")
	require.NoError(t, err)
	assert.Contains(t, out, "color: red")

	page := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(page, []byte(`<p style="color: red">x</p>`), 0o644))
	out, err = execute(t, "scan", page, "--to", "hex", "--rewrite")
	require.NoError(t, err)
	assert.Contains(t, out, `style="color: #FF0000"`)
}

func TestTraceLevelAppliesToAllPackages(t *testing.T) {
	defer tracing.SetTraceSelector(nil)
	_, err := execute(t, "--trace", "debug", "convert", "red")
	require.NoError(t, err)
	for _, key := range []string{"csscolor", "csscolor.scan", "csscolor.recolor", "csscolor.cssom", "csscolor.picker", "csscolor.style"} {
		assert.Equal(t, tracing.LevelDebug, tracing.Select(key).GetTraceLevel(), key)
	}
	_, err = execute(t, "--trace", "verbose", "convert", "red")
	assert.Error(t, err)
}
