package service

import (
	"strings"
	"testing"

	"dog-personality-quiz/internal/domain"
)

func TestPlaceholderKeyRoundTrip(t *testing.T) {
	for _, trait := range domain.TraitOrder {
		key := PlaceholderKey(trait)
		file := strings.TrimPrefix(key, "placeholders/")
		got, ok := TraitFromPlaceholderFile(file)
		if !ok || got != trait {
			t.Fatalf("key %q did not resolve back to %s", key, trait)
		}
	}
}

func TestTraitFromPlaceholderFile_Rejects(t *testing.T) {
	for _, file := range []string{"love.png", "unknown.svg", "", ".svg", "../love.svg"} {
		if _, ok := TraitFromPlaceholderFile(file); ok {
			t.Fatalf("expected %q to be rejected", file)
		}
	}
}

func TestPlaceholderSVG(t *testing.T) {
	svg := PlaceholderSVG(domain.TraitMischief)
	for _, want := range []string{"#FFA07A", "😈", "Mischievous", "MISCHIEF", "<svg"} {
		if !strings.Contains(svg, want) {
			t.Fatalf("expected %q in svg:\n%s", want, svg)
		}
	}
}
