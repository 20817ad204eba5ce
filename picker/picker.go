package picker

import (
	"fmt"
	"image/color"

	"github.com/npillmayer/csscolor/csscolor"
)

// Entry is one line of the value list.
type Entry struct {
	Unit csscolor.Unit
	Text string
}

// Values is the value list for a sampled color.
type Values struct {
	Color    csscolor.Color
	Entries  []Entry
	Selected string // value in the preferred format
}

// Picker produces value lists for sampled colors. A Picker is not safe for
// concurrent use.
type Picker struct {
	prefs Preferences
	last  Values
}

// New creates a picker. Unsupported units in prefs are dropped from the
// list; an unsupported preferred format falls back to rgb.
func New(prefs Preferences) *Picker {
	p := &Picker{}
	for _, u := range prefs.Formats {
		if u.IsValid() {
			p.prefs.Formats = append(p.prefs.Formats, u)
		}
	}
	p.prefs.Format = prefs.Format
	if !prefs.Format.IsValid() {
		p.prefs.Format = csscolor.UnitRGB
	}
	return p
}

// Preferences returns the picker's current preferences.
func (p *Picker) Preferences() Preferences {
	prefs := p.prefs
	prefs.Formats = append([]csscolor.Unit(nil), p.prefs.Formats...)
	return prefs
}

// Sample creates the value list for a pixel color.
func (p *Picker) Sample(c color.Color) Values {
	return p.SampleColor(csscolor.FromRGBA(c))
}

// SampleString creates the value list for a textual color.
func (p *Picker) SampleString(s string) Values {
	return p.SampleColor(csscolor.New(s))
}

// SampleColor creates the value list for c and remembers it. Invalid colors
// produce empty texts.
func (p *Picker) SampleColor(c csscolor.Color) Values {
	v := Values{Color: c, Entries: make([]Entry, len(p.prefs.Formats))}
	for i, u := range p.prefs.Formats {
		v.Entries[i] = Entry{Unit: u, Text: c.ConvertTo(u)}
	}
	v.Selected = c.ConvertTo(p.prefs.Format)
	p.last = v
	return v
}

// SetFormat changes the preferred format and updates the selection of the
// last sample.
func (p *Picker) SetFormat(u csscolor.Unit) error {
	if !u.IsValid() {
		return fmt.Errorf("%w: %v", ErrUnknownFormat, u)
	}
	p.prefs.Format = u
	p.last.Selected = p.last.Color.ConvertTo(u)
	tracer().Infof("color format set to %v", u)
	return nil
}

// Format is the preferred format.
func (p *Picker) Format() csscolor.Unit {
	return p.prefs.Format
}

// Last returns the most recent value list.
func (p *Picker) Last() Values {
	return p.last
}

// Copy returns the text to put on the clipboard: the last sample in the
// preferred format, or "" if nothing valid has been sampled.
func (p *Picker) Copy() string {
	return p.last.Selected
}
