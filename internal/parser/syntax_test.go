package parser

import (
	"strings"
	"testing"
)

func TestHighlightJSON_PreservesContent(t *testing.T) {
	in := `{"level":"info","msg":"server ready"}`
	got := HighlightJSON(in)
	if got == "" {
		t.Fatal("Expected non-empty output")
	}
	// Color codes aside, every token of the line survives.
	plain := Sanitize(got)
	for _, token := range []string{"level", "info", "msg", "server ready"} {
		if !strings.Contains(plain, token) {
			t.Errorf("Expected output to contain %q, got %q", token, plain)
		}
	}
}

func TestHighlightJSON_NonJSONFallsThrough(t *testing.T) {
	in := "not json at all"
	got := HighlightJSON(in)
	if !strings.Contains(Sanitize(got), "not json at all") {
		t.Errorf("Expected content preserved, got %q", got)
	}
}
