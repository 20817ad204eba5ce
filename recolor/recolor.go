/*
Package recolor reports and rewrites the colors used in stylesheets.

A style editor may want to show a user which colors a stylesheet uses,
and to normalize them to the user's preferred unit. Collect walks the rules
of a cssom.StyleSheet and lists every color-carrying declaration together
with the colors found in its value. Rewrite converts these colors in place.
Colors with an alpha channel are never rewritten to a unit without one.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package recolor

import (
	"fmt"

	"github.com/npillmayer/csscolor/colorscan"
	"github.com/npillmayer/csscolor/csscolor"
	"github.com/npillmayer/csscolor/dom/style"
	"github.com/npillmayer/csscolor/dom/style/cssom"
	"github.com/npillmayer/csscolor/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// tracer traces with key 'csscolor.recolor'.
func tracer() tracing.Trace {
	return tracing.Select("csscolor.recolor")
}

// Usage is a declaration using one or more colors.
type Usage struct {
	Selector string
	Property string
	Value    string
	Colors   []colorscan.Match
}

// Collect lists the colors used by the rules of sheet, in document order.
func Collect(sheet cssom.StyleSheet) []Usage {
	return collectRules(sheet.Rules())
}

func collectRules(rules []cssom.Rule) []Usage {
	var usages []Usage
	for _, r := range rules {
		for _, d := range cssom.ColorDeclarations(r) {
			matches := colorscan.Find(d.Value.String())
			if len(matches) == 0 {
				continue
			}
			usages = append(usages, Usage{
				Selector: r.Selector(),
				Property: d.Key,
				Value:    d.Value.String(),
				Colors:   matches,
			})
		}
	}
	return usages
}

// Rewrite converts all colors in the rules of sheet to unit u. It returns
// the number of colors converted.
func Rewrite(sheet cssom.StyleSheet, u csscolor.Unit) (int, error) {
	if !u.IsValid() {
		return 0, fmt.Errorf("recolor: cannot rewrite to unit %v", u)
	}
	count := 0
	for _, r := range sheet.Rules() {
		mr, ok := r.(cssom.MutableRule)
		if !ok {
			return count, fmt.Errorf("recolor: rule %q of %T is read-only", r.Selector(), sheet)
		}
		count += rewriteRule(mr, u)
	}
	tracer().Infof("rewrote %d colors to %v", count, u)
	return count, nil
}

func rewriteRule(r cssom.MutableRule, u csscolor.Unit) int {
	count := 0
	for _, d := range cssom.ColorDeclarations(r) {
		v, n := colorscan.Rewrite(d.Value.String(), u)
		if n > 0 && r.SetValueAt(d.Index, style.Property(v)) {
			count += n
		}
	}
	return count
}

// CollectHTML lists the colors used by the style elements and style
// attributes of an HTML document.
func CollectHTML(doc *html.Node) ([]Usage, error) {
	var usages []Usage
	for _, sheet := range douceuradapter.ExtractStyleElements(doc) {
		usages = append(usages, Collect(sheet)...)
	}
	inline, err := douceuradapter.InlineStyles(doc)
	if err != nil {
		return usages, err
	}
	rules := make([]cssom.Rule, len(inline))
	for i, s := range inline {
		rules[i] = s
	}
	return append(usages, collectRules(rules)...), nil
}

// RewriteHTML converts all colors in the style elements and style attributes
// of an HTML document to unit u, and writes the changes back into the
// document tree.
func RewriteHTML(doc *html.Node, u csscolor.Unit) (int, error) {
	if !u.IsValid() {
		return 0, fmt.Errorf("recolor: cannot rewrite to unit %v", u)
	}
	count := 0
	for _, sheet := range douceuradapter.ExtractStyleElements(doc) {
		n, err := Rewrite(sheet, u)
		if err != nil {
			return count, err
		}
		sheet.Sync()
		count += n
	}
	inline, err := douceuradapter.InlineStyles(doc)
	if err != nil {
		return count, err
	}
	for _, s := range inline {
		if n := rewriteRule(s, u); n > 0 {
			s.Sync()
			count += n
		}
	}
	return count, nil
}

// Report renders usages as a tree: selectors, then declarations, then the
// colors of each declaration with their units.
func Report(usages []Usage) string {
	tree := treeprint.New()
	branches := make(map[string]treeprint.Tree)
	for _, u := range usages {
		b, ok := branches[u.Selector]
		if !ok {
			b = tree.AddBranch(u.Selector)
			branches[u.Selector] = b
		}
		decl := b.AddBranch(fmt.Sprintf("%s: %s", u.Property, u.Value))
		for _, m := range u.Colors {
			decl.AddNode(fmt.Sprintf("%s [%v] = %s", m.Text, m.Color.Unit(), m.Color.Hex()))
		}
	}
	return tree.String()
}
