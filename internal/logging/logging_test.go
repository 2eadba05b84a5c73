package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		raw   string
		level zerolog.Level
		ok    bool
	}{
		{"", zerolog.InfoLevel, false},
		{"trace", zerolog.TraceLevel, true},
		{"DEBUG", zerolog.DebugLevel, true},
		{" info ", zerolog.InfoLevel, true},
		{"warn", zerolog.WarnLevel, true},
		{"warning", zerolog.WarnLevel, true},
		{"error", zerolog.ErrorLevel, true},
		{"off", zerolog.Disabled, true},
		{"loud", zerolog.InfoLevel, false},
	}
	for _, tc := range cases {
		lvl, ok := ParseLevel(tc.raw)
		if ok != tc.ok || lvl != tc.level {
			t.Fatalf("ParseLevel(%q) = (%v, %v), want (%v, %v)", tc.raw, lvl, ok, tc.level, tc.ok)
		}
	}
}

func TestSetLevel(t *testing.T) {
	prev := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(prev)

	if !SetLevel("warn") {
		t.Fatalf("expected warn to be accepted")
	}
	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Fatalf("global level not applied: %v", zerolog.GlobalLevel())
	}
	if SetLevel("loud") {
		t.Fatalf("expected loud to be rejected")
	}
	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Fatalf("rejected level must not change global level: %v", zerolog.GlobalLevel())
	}
}
