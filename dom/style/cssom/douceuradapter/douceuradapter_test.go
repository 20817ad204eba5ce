package douceuradapter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/csscolor/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const sheet = `
p { color: red; margin-top: 3px }
@media print {
	h1 { border-bottom: 1px solid #abc !important }
}
`

func TestParseAndFlatten(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csscolor.cssom")
	defer teardown()
	//
	css, err := Parse(sheet)
	require.NoError(t, err)
	assert.False(t, css.Empty())
	rules := css.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "p", rules[0].Selector())
	assert.Equal(t, []string{"color", "margin-top"}, rules[0].Properties())
	assert.Equal(t, "red", rules[0].Value("color").String())
	assert.Equal(t, "h1", rules[1].Selector())
	assert.True(t, rules[1].IsImportant("border-bottom"))
	assert.Equal(t, "1px solid #abc", rules[1].Value("border-bottom").String())

	kv := cssom.ColorDeclarations(rules[0])
	require.Len(t, kv, 1)
	assert.Equal(t, "color", kv[0].Key)
}

func TestSetValue(t *testing.T) {
	css, err := Parse("a { color: red; color: blue }")
	require.NoError(t, err)
	r := css.Rules()[0].(cssom.MutableRule)
	assert.Equal(t, 2, r.SetValue("color", "#F00"))
	assert.Equal(t, "#F00", r.Value("color").String())
	assert.Contains(t, css.String(), "#F00")
	assert.NotContains(t, css.String(), "blue")
}

func TestSetValueAt(t *testing.T) {
	css, err := Parse("a { color: red; margin: 0; color: rgba(0, 0, 255, 0.5) }")
	require.NoError(t, err)
	r := css.Rules()[0].(cssom.MutableRule)
	assert.Equal(t, "rgba(0, 0, 255, 0.5)", r.ValueAt(2).String())
	assert.Equal(t, "", r.ValueAt(3).String())
	assert.True(t, r.SetValueAt(0, "#F00"))
	assert.False(t, r.SetValueAt(-1, "#F00"))
	assert.Equal(t, "#F00", r.Value("color").String())
	assert.Equal(t, "rgba(0, 0, 255, 0.5)", r.ValueAt(2).String())

	decl := cssom.ColorDeclarations(r)
	require.Len(t, decl, 2)
	assert.Equal(t, 0, decl[0].Index)
	assert.Equal(t, 2, decl[1].Index)
	assert.Equal(t, "color", decl[1].Key)
}

func TestAppendRules(t *testing.T) {
	a, _ := Parse("a { color: red }")
	b, _ := Parse("b { color: blue }")
	a.AppendRules(b)
	assert.Len(t, a.Rules(), 2)
}

const page = `<html><head><style>body { background: white }</style></head>
<body><p style="color: red; margin: 0">Hello</p><style>em { color: #0f0 }</style></body></html>`

func TestExtractFromHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csscolor.cssom")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)
	sheets := ExtractStyleElements(doc)
	require.Len(t, sheets, 2)
	assert.Equal(t, "body", sheets[0].Rules()[0].Selector())
	assert.Equal(t, "em", sheets[1].Rules()[0].Selector())

	inline, err := InlineStyles(doc)
	require.NoError(t, err)
	require.Len(t, inline, 1)
	assert.Equal(t, "p", inline[0].Selector())
	assert.Equal(t, "red", inline[0].Value("color").String())
	assert.Equal(t, "0", inline[0].Value("margin").String()) // last declaration lacks ';'

	inline[0].SetValue("color", "#FF0000")
	inline[0].Sync()
	sheets[1].Rules()[0].(cssom.MutableRule).SetValue("color", "lime")
	sheets[1].Sync()

	var out bytes.Buffer
	require.NoError(t, html.Render(&out, doc))
	assert.Contains(t, out.String(), `style="color: #FF0000; margin: 0"`)
	assert.Contains(t, out.String(), "lime")
	assert.NotContains(t, out.String(), "#0f0")
}
