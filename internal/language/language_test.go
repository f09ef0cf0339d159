package language

import (
	"sort"
	"testing"
)

func TestGetKnownCode(t *testing.T) {
	lang, ok := Get("es")
	if !ok {
		t.Fatalf("expected es to be supported")
	}
	if lang.Name != "Spanish" {
		t.Fatalf("Name = %q, want Spanish", lang.Name)
	}
}

func TestNameFallsBackToUnknown(t *testing.T) {
	if got := Name("xx"); got != UnknownDisplayName {
		t.Fatalf("Name(xx) = %q, want %q", got, UnknownDisplayName)
	}
	if got := Name("fr"); got != "French" {
		t.Fatalf("Name(fr) = %q, want French", got)
	}
}

func TestAutoIsNotATableEntry(t *testing.T) {
	if _, ok := Get(Auto); ok {
		t.Fatalf("the auto sentinel must not appear in the language table")
	}
	if !IsAuto("auto") {
		t.Fatalf("IsAuto(auto) = false")
	}
	if IsAuto("en") {
		t.Fatalf("IsAuto(en) = true")
	}
}

func TestSupportedSortedByName(t *testing.T) {
	langs := Supported()
	if len(langs) != len(Languages) {
		t.Fatalf("Supported() length = %d, want %d", len(langs), len(Languages))
	}
	sorted := sort.SliceIsSorted(langs, func(i, j int) bool {
		if langs[i].Name != langs[j].Name {
			return langs[i].Name < langs[j].Name
		}
		return langs[i].Code < langs[j].Code
	})
	if !sorted {
		t.Fatalf("Supported() is not sorted by name")
	}
}
