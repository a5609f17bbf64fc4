package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	s := String()
	if !strings.HasPrefix(s, "v") {
		t.Errorf("String() = %q, want leading v", s)
	}
	if strings.Count(s, ".") != 2 {
		t.Errorf("String() = %q, want three components", s)
	}
}

func TestFull(t *testing.T) {
	if !strings.Contains(Full(), "aeads-go") {
		t.Errorf("Full() = %q, want project name", Full())
	}
}
