package metrics

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"Warning": LevelWarn,
		"error":   LevelError,
		"off":     LevelSilent,
		"bogus":   LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var b strings.Builder
	l := NewLogger(WithOutput(&b), WithLevel(LevelWarn))

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("visible warn")
	l.Error("visible error")

	out := b.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("low-severity entries leaked: %s", out)
	}
	if !strings.Contains(out, "visible warn") || !strings.Contains(out, "visible error") {
		t.Errorf("high-severity entries missing: %s", out)
	}
}

func TestLoggerTextFields(t *testing.T) {
	var b strings.Builder
	l := NewLogger(WithOutput(&b), WithLevel(LevelDebug), WithName("gcmsiv"))

	l.With(Fields{"suite": "AES-128-GCM-SIV"}).Info("sealed", Fields{"bytes": 42})

	out := b.String()
	for _, want := range []string{"[gcmsiv]", "sealed", "suite=AES-128-GCM-SIV", "bytes=42"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}

func TestLoggerJSON(t *testing.T) {
	var b strings.Builder
	l := NewLogger(WithOutput(&b), WithFormat(FormatJSON), WithName("aeads"))

	l.Info("json entry", Fields{"n": 7})

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(b.String()), &entry); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, b.String())
	}
	if entry["msg"] != "json entry" || entry["level"] != "INFO" || entry["logger"] != "aeads" {
		t.Errorf("entry = %v", entry)
	}
	if entry["n"] != float64(7) {
		t.Errorf("field n = %v", entry["n"])
	}
}

func TestNamedChaining(t *testing.T) {
	l := NewLogger().Named("aeads").Named("cli")
	if l.name != "aeads.cli" {
		t.Errorf("name = %q, want aeads.cli", l.name)
	}
}

func TestNullLogger(t *testing.T) {
	var b strings.Builder
	l := NullLogger()
	l.out = &b
	l.Error("should not appear")
	if b.Len() != 0 {
		t.Errorf("NullLogger wrote output: %s", b.String())
	}
}
