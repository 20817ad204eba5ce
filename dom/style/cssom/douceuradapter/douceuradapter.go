/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

Stylesheets are parsed with https://github.com/aymerick/douceur, either
from CSS text or from the style elements and style attributes of an HTML
parse tree. Rules are mutable, so that color values may be rewritten in
place and written back to the HTML tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/csscolor/dom/style"
	"github.com/npillmayer/csscolor/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'csscolor.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("csscolor.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
type CSSStyles struct {
	css  css.Stylesheet
	node *html.Node // <style> element, if extracted from HTML
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{css: *css}
	return sheet
}

// Parse parses CSS text into a stylesheet.
func Parse(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("douceuradapter: %w", err)
	}
	return Wrap(c), nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss, ok := other.(*CSSStyles)
	if !ok {
		tracer().Errorf("cannot append rules from stylesheet of type %T", other)
		return
	}
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Rules returns all the rules of a stylesheet carrying declarations.
// Rules nested in at-rules (@media, @supports) are flattened into the
// result, in document order.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	var rules []cssom.Rule
	var collect func([]*css.Rule)
	collect = func(rs []*css.Rule) {
		for _, r := range rs {
			if len(r.Declarations) > 0 {
				rules = append(rules, (*Rule)(r))
			}
			collect(r.Rules)
		}
	}
	collect(sheet.css.Rules)
	return rules
}

// String serializes the stylesheet.
func (sheet *CSSStyles) String() string {
	return sheet.css.String()
}

// Node returns the <style> element the stylesheet has been extracted from,
// or nil.
func (sheet *CSSStyles) Node() *html.Node {
	return sheet.node
}

// Sync writes the stylesheet back into its <style> element. It is a no-op for
// stylesheets not extracted from HTML.
func (sheet *CSSStyles) Sync() {
	if sheet.node == nil {
		return
	}
	text := &html.Node{Type: html.TextNode, Data: sheet.String()}
	for ch := sheet.node.FirstChild; ch != nil; ch = sheet.node.FirstChild {
		sheet.node.RemoveChild(ch)
	}
	sheet.node.AppendChild(text)
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule. At-rules carrying
// declarations, like @font-face, are prefixed by their name.
func (r *Rule) Selector() string {
	if r.Kind == css.AtRule {
		return strings.TrimSpace(r.Name + " " + r.Prelude)
	}
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r *Rule) Properties() []string {
	return properties(r.Declarations)
}

// Value returns the property values for given key with this rule, e.g. "15px"
func (r *Rule) Value(key string) style.Property {
	return value(r.Declarations, key)
}

// ValueAt returns the value of the i-th declaration, or "" if there is none.
func (r *Rule) ValueAt(i int) style.Property {
	return valueAt(r.Declarations, i)
}

// IsImportant returns true if a style key is marked as important ("!").
func (r *Rule) IsImportant(key string) bool {
	return important(r.Declarations, key)
}

// SetValue replaces the value of every declaration for key.
func (r *Rule) SetValue(key string, v style.Property) int {
	return setValue(r.Declarations, key, v)
}

// SetValueAt replaces the value of the i-th declaration.
func (r *Rule) SetValueAt(i int, v style.Property) bool {
	return setValueAt(r.Declarations, i, v)
}

var _ cssom.MutableRule = &Rule{}

func properties(decl []*css.Declaration) []string {
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

func value(decl []*css.Declaration, key string) style.Property {
	for _, d := range decl {
		if d.Property == key {
			return style.Property(d.Value)
		}
	}
	return ""
}

func valueAt(decl []*css.Declaration, i int) style.Property {
	if i < 0 || i >= len(decl) {
		return ""
	}
	return style.Property(decl[i].Value)
}

func important(decl []*css.Declaration, key string) bool {
	for _, d := range decl {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

func setValue(decl []*css.Declaration, key string, v style.Property) int {
	n := 0
	for _, d := range decl {
		if d.Property == key {
			d.Value = v.String()
			n++
		}
	}
	return n
}

func setValueAt(decl []*css.Declaration, i int, v style.Property) bool {
	if i < 0 || i >= len(decl) {
		return false
	}
	decl[i].Value = v.String()
	return true
}

// --- HTML ------------------------------------------------------------------

var (
	styleElements  = cascadia.MustCompile("style")
	styleAttribute = cascadia.MustCompile("[style]")
)

// ExtractStyleElements searches an HTML parse tree for embedded <style>s.
// It returns the content of style-elements as style sheets, in document
// order. Style elements which fail to parse are skipped.
func ExtractStyleElements(htmldoc *html.Node) []*CSSStyles {
	var sheets []*CSSStyles
	for _, n := range styleElements.MatchAll(htmldoc) {
		var text strings.Builder
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type == html.TextNode {
				text.WriteString(ch.Data)
			}
		}
		c, err := parser.Parse(text.String())
		if err != nil {
			tracer().Errorf("skipping <style> element: %v", err)
			continue
		}
		sheet := Wrap(c)
		sheet.node = n
		sheets = append(sheets, sheet)
	}
	return sheets
}

// InlineStyle is the style attribute of an HTML element. It is an adapter
// for interface cssom.MutableRule, with the element's tag name as selector.
type InlineStyle struct {
	Node         *html.Node
	Declarations []*css.Declaration
}

// InlineStyles collects the style attributes of all elements in an HTML
// parse tree.
func InlineStyles(htmldoc *html.Node) ([]*InlineStyle, error) {
	var styles []*InlineStyle
	for _, n := range styleAttribute.MatchAll(htmldoc) {
		attr := strings.TrimSpace(attribute(n, "style"))
		if attr != "" && !strings.HasSuffix(attr, ";") {
			attr += ";" // the parser completes a declaration only at ';' or '}'
		}
		decl, err := parser.ParseDeclarations(attr)
		if err != nil {
			return styles, fmt.Errorf("douceuradapter: style attribute of <%s>: %w", n.Data, err)
		}
		styles = append(styles, &InlineStyle{Node: n, Declarations: decl})
	}
	return styles, nil
}

// Selector returns the tag name of the styled element.
func (s *InlineStyle) Selector() string {
	return s.Node.Data
}

// Properties returns the property keys of the style attribute.
func (s *InlineStyle) Properties() []string {
	return properties(s.Declarations)
}

// Value returns the value for key.
func (s *InlineStyle) Value(key string) style.Property {
	return value(s.Declarations, key)
}

// ValueAt returns the value of the i-th declaration, or "" if there is none.
func (s *InlineStyle) ValueAt(i int) style.Property {
	return valueAt(s.Declarations, i)
}

// IsImportant returns true if a style key is marked as important ("!").
func (s *InlineStyle) IsImportant(key string) bool {
	return important(s.Declarations, key)
}

// SetValue replaces the value of every declaration for key. Call Sync to
// write the changes back to the element.
func (s *InlineStyle) SetValue(key string, v style.Property) int {
	return setValue(s.Declarations, key, v)
}

// SetValueAt replaces the value of the i-th declaration. Call Sync to write
// the changes back to the element.
func (s *InlineStyle) SetValueAt(i int, v style.Property) bool {
	return setValueAt(s.Declarations, i, v)
}

// Sync writes the declarations back into the element's style attribute.
func (s *InlineStyle) Sync() {
	parts := make([]string, 0, len(s.Declarations))
	for _, d := range s.Declarations {
		p := d.Property + ": " + d.Value
		if d.Important {
			p += " !important"
		}
		parts = append(parts, p)
	}
	for i := range s.Node.Attr {
		if s.Node.Attr[i].Key == "style" {
			s.Node.Attr[i].Val = strings.Join(parts, "; ")
		}
	}
}

var _ cssom.MutableRule = &InlineStyle{}

func attribute(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
