package util

import "testing"

func TestParseIntDefault(t *testing.T) {
	if got := ParseIntDefault("42", 7); got != 42 {
		t.Fatalf("unexpected value %d", got)
	}
	if got := ParseIntDefault("", 7); got != 7 {
		t.Fatalf("expected default, got %d", got)
	}
	if got := ParseIntDefault("nope", 7); got != 7 {
		t.Fatalf("expected default, got %d", got)
	}
}

func TestMaskKey(t *testing.T) {
	if got := MaskKey("PSabcdef12345"); got != "PSab****" {
		t.Fatalf("unexpected mask %q", got)
	}
	if got := MaskKey("ab"); got != "****" {
		t.Fatalf("short keys must be fully masked, got %q", got)
	}
}
