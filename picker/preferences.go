package picker

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/csscolor/csscolor"
	"gopkg.in/yaml.v3"
)

// Preferences select the units shown by a Picker.
type Preferences struct {
	Format  csscolor.Unit   // preferred unit, is copied to the clipboard
	Formats []csscolor.Unit // units shown in the value list
}

// DefaultPreferences shows rgb, hsl and hex, with rgb preferred.
func DefaultPreferences() Preferences {
	return Preferences{
		Format:  csscolor.UnitRGB,
		Formats: []csscolor.Unit{csscolor.UnitRGB, csscolor.UnitHSL, csscolor.UnitHex},
	}
}

// ErrUnknownFormat is returned for unit names not known to package csscolor.
var ErrUnknownFormat = errors.New("picker: unknown color format")

type prefsDocument struct {
	Format  string   `yaml:"format"`
	Formats []string `yaml:"formats"`
}

// LoadPreferences reads preferences from YAML. Keys not present keep their
// default value; an empty document yields the defaults.
func LoadPreferences(r io.Reader) (Preferences, error) {
	prefs := DefaultPreferences()
	var doc prefsDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return prefs, fmt.Errorf("picker: reading preferences: %w", err)
	}
	if len(doc.Formats) > 0 {
		prefs.Formats = prefs.Formats[:0]
		for _, name := range doc.Formats {
			u, ok := csscolor.ParseUnit(name)
			if !ok {
				return DefaultPreferences(), fmt.Errorf("%w: %q in formats", ErrUnknownFormat, name)
			}
			prefs.Formats = append(prefs.Formats, u)
		}
	}
	if doc.Format != "" {
		u, ok := csscolor.ParseUnit(doc.Format)
		if !ok {
			return DefaultPreferences(), fmt.Errorf("%w: %q", ErrUnknownFormat, doc.Format)
		}
		prefs.Format = u
	}
	tracer().Debugf("preferences: format=%v, formats=%v", prefs.Format, prefs.Formats)
	return prefs, nil
}

// MarshalYAML writes unit names, the inverse of LoadPreferences.
func (p Preferences) MarshalYAML() (interface{}, error) {
	doc := prefsDocument{Format: p.Format.String()}
	for _, u := range p.Formats {
		doc.Formats = append(doc.Formats, u.String())
	}
	return doc, nil
}
