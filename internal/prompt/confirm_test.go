package prompt

import (
	"bytes"
	"testing"
)

func TestConfirmClear_NonInteractive(t *testing.T) {
	c := Confirmer{
		In:            bytes.NewBufferString("y\n"),
		Out:           nil,
		IsInteractive: func() bool { return false },
	}
	ok, err := c.ConfirmClear(3, false)
	if err == nil {
		t.Fatalf("expected error for non-interactive confirm, got ok=%v", ok)
	}
}

func TestConfirmClear_Force(t *testing.T) {
	c := Confirmer{
		In:            bytes.NewBufferString("n\n"),
		Out:           nil,
		IsInteractive: func() bool { return false },
	}
	ok, err := c.ConfirmClear(3, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected ok=true for forced clear")
	}
}

func TestConfirmClear_Interactive(t *testing.T) {
	t.Run("yes", func(t *testing.T) {
		c := Confirmer{
			In:            bytes.NewBufferString("y\n"),
			Out:           nil,
			IsInteractive: func() bool { return true },
		}
		ok, err := c.ConfirmClear(3, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatalf("expected ok=true")
		}
	})

	t.Run("no", func(t *testing.T) {
		c := Confirmer{
			In:            bytes.NewBufferString("n\n"),
			Out:           nil,
			IsInteractive: func() bool { return true },
		}
		ok, err := c.ConfirmClear(3, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Fatalf("expected ok=false for answer n")
		}
	})
}
