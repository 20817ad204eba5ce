package cssom

import "github.com/npillmayer/csscolor/dom/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// Color scanning and rewriting operate on this interface; clients
// will have to provide a concrete implementation (e.g., see package
// douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// A rule may declare a property more than once, e.g. as a fallback for
// older user agents. Properties and ValueAt address declarations by
// position, Value and IsImportant by key.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys in order of declaration, e.g. "border-top-color"
	Value(string) style.Property // value of the first declaration for key, e.g. "#FFF"
	ValueAt(int) style.Property  // value of the i-th declaration
	IsImportant(string) bool     // is property key marked as important?
}

// MutableRule is a Rule whose property values may be replaced.
type MutableRule interface {
	Rule
	SetValue(key string, value style.Property) int // returns number of declarations changed
	SetValueAt(i int, value style.Property) bool   // false if there is no i-th declaration
}

// Declaration is a property of a rule together with its position in the
// rule.
type Declaration struct {
	Index int
	style.KeyValue
}

// ColorDeclarations returns the declarations of a rule which may carry a
// color value, in order of appearance. A key declared more than once is
// reported once per declaration.
func ColorDeclarations(r Rule) []Declaration {
	var decl []Declaration
	for i, key := range r.Properties() {
		if !style.IsColorProperty(key) {
			continue
		}
		decl = append(decl, Declaration{
			Index:    i,
			KeyValue: style.KeyValue{Key: key, Value: r.ValueAt(i)},
		})
	}
	tracer().Debugf("rule %q has %d color declarations", r.Selector(), len(decl))
	return decl
}
