package maybe_test

import (
	"testing"

	. "github.com/npillmayer/csscolor/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just("red") // infers type
	y := Nothing[string]()

	var v string
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%s)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != "red" {
		t.Errorf("expected v to be red, is %#v", v)
	}

	var w string
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%s)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if w != "" {
		t.Errorf("expected w to be empty, is %#v", w)
	}
	if !y.IsNothing() || x.IsNothing() {
		t.Error("expected IsNothing to tell Nothing from Just, doesn't")
	}
}

func TestMaybeWithDefault(t *testing.T) {
	if Just(7).WithDefault(100) != 7 {
		t.Error("expected Just(7) to have value 7, hasn't")
	}
	if Nothing[int]().WithDefault(100) != 100 {
		t.Error("expected Nothing to default to 100, doesn't")
	}
}

func TestMaybeOf(t *testing.T) {
	lookup := map[string]string{"aqua": "rgb(0,255,255)"}
	v, ok := lookup["aqua"]
	if Of(v, ok).IsNothing() {
		t.Error("expected Of(v, true) to be Just, isn't")
	}
	v, ok = lookup["cyan"]
	if !Of(v, ok).IsNothing() {
		t.Error("expected Of(v, false) to be Nothing, isn't")
	}
}

func TestMaybeAndThen(t *testing.T) {
	length := AndThen(Just("#abc"), func(s string) Maybe[int] {
		if len(s) == 4 {
			return Just(3)
		}
		return Nothing[int]()
	})
	if length.WithDefault(0) != 3 {
		t.Error("expected Just(#abc) |> andThen(short) to be 3, isn't")
	}
	if !AndThen(Nothing[string](), func(s string) Maybe[int] { return Just(len(s)) }).IsNothing() {
		t.Error("expected Nothing |> andThen(…) to stay Nothing, doesn't")
	}
}
