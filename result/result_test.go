package result_test

import (
	"errors"
	"testing"

	. "github.com/npillmayer/csscolor/result"
)

func TestResultSimple(t *testing.T) {
	x := Ok("#FF0000") // infers type
	y := Err[string](errors.New("alpha would be lost"))

	var v string
	var e error

	switch m := x.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%s)", v)
	case m.Err(&e):
		t.Logf("Err")
	}
	if v != "#FF0000" {
		t.Errorf("expected v to be #FF0000, is %#v", v)
	}

	switch m := y.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%s)", v)
	case m.Err(&e):
		t.Logf("Err: %s", e.Error())
	}
	if e == nil {
		t.Errorf("expected error to be non-nil, but it is nil")
	}
}

func TestResultNilError(t *testing.T) {
	r := Err[int](nil)
	if _, err := r.Unwrap(); !errors.Is(err, ErrUnspecified) {
		t.Errorf("expected Err(nil) to carry ErrUnspecified, has %v", err)
	}
	if r.WithDefault(3) != 3 {
		t.Error("expected Err(nil).WithDefault(3) to be 3, isn't")
	}
}

func TestResultUnwrap(t *testing.T) {
	if s, err := Ok("#F00").Unwrap(); err != nil || s != "#F00" {
		t.Errorf("expected Ok(#F00) to unwrap to #F00, is %q/%v", s, err)
	}
	failed := errors.New("failed")
	if s, err := Err[string](failed).Unwrap(); err != failed || s != "" {
		t.Errorf("expected Err to unwrap to its error and a zero value, is %q/%v", s, err)
	}
}
