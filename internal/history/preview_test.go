package history

import "testing"

func TestPreviewShortTextUnchanged(t *testing.T) {
	if got := Preview("hello", 50); got != "hello" {
		t.Errorf("Preview = %q, want %q", got, "hello")
	}
}

func TestPreviewTruncates(t *testing.T) {
	if got := Preview("hello world", 5); got != "hello…" {
		t.Errorf("Preview = %q, want %q", got, "hello…")
	}
}

func TestPreviewCountsGraphemeClusters(t *testing.T) {
	// Each flag emoji is two runes but one cluster.
	in := "🇰🇷🇯🇵🇺🇸"
	if got := Preview(in, 2); got != "🇰🇷🇯🇵…" {
		t.Errorf("Preview = %q, want %q", got, "🇰🇷🇯🇵…")
	}
	if got := Preview(in, 3); got != in {
		t.Errorf("Preview = %q, want %q", got, in)
	}
}

func TestPreviewZeroMax(t *testing.T) {
	if got := Preview("abc", 0); got != "abc" {
		t.Errorf("Preview = %q, want %q", got, "abc")
	}
}
