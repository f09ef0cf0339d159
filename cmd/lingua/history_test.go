package main

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oukeidos/lingua/internal/history"
	"github.com/oukeidos/lingua/internal/prompt"
)

func seedHistory(t *testing.T) (string, []history.Record) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.json")
	store := history.Open(path)

	recs := []history.Record{
		{
			ID:             history.NewID(),
			SourceLang:     "Korean",
			TargetLang:     "English",
			SourceText:     "안녕하세요",
			TargetText:     "Hello",
			SourceLangCode: "ko",
			TargetLangCode: "en",
			Timestamp:      "2026-08-30T10:00:00Z",
		},
		{
			ID:             history.NewID(),
			SourceLang:     "Japanese",
			TargetLang:     "English",
			SourceText:     "こんにちは",
			TargetText:     "Hello",
			SourceLangCode: "ja",
			TargetLangCode: "en",
			Timestamp:      "2026-08-30T11:00:00Z",
		},
	}
	for _, rec := range recs {
		if err := store.Append(rec); err != nil {
			t.Fatalf("seed append failed: %v", err)
		}
	}
	return path, recs
}

func TestHistoryList_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")

	out, err := executeCommand(t, "history", "--history", path)
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.Contains(out, "No translations yet.") {
		t.Fatalf("expected empty notice, got: %s", out)
	}
}

func TestHistoryList_ShowsRecords(t *testing.T) {
	path, recs := seedHistory(t)

	out, err := executeCommand(t, "history", "--history", path)
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	for _, rec := range recs {
		if !strings.Contains(out, rec.ID) {
			t.Errorf("output missing id %s: %s", rec.ID, out)
		}
		if !strings.Contains(out, rec.SourceText) {
			t.Errorf("output missing source text %q: %s", rec.SourceText, out)
		}
	}
	// Newest first.
	if strings.Index(out, "こんにちは") > strings.Index(out, "안녕하세요") {
		t.Fatalf("expected newest record first, got: %s", out)
	}
}

func TestHistoryDelete_RemovesRecord(t *testing.T) {
	path, recs := seedHistory(t)

	out, err := executeCommand(t, "history", "delete", recs[0].ID, "--history", path)
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.Contains(out, "Deleted.") {
		t.Fatalf("expected delete confirmation, got: %s", out)
	}

	store := history.Open(path)
	if store.Len() != 1 {
		t.Fatalf("expected 1 record after delete, got %d", store.Len())
	}
}

func TestHistoryDelete_UnknownID(t *testing.T) {
	path, _ := seedHistory(t)

	out, err := executeCommand(t, "history", "delete", "no-such-id", "--history", path)
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.Contains(out, "No record with id no-such-id.") {
		t.Fatalf("expected unknown-id notice, got: %s", out)
	}

	store := history.Open(path)
	if store.Len() != 2 {
		t.Fatalf("expected records untouched, got %d", store.Len())
	}
}

func TestHistoryClear_WithYes(t *testing.T) {
	path, _ := seedHistory(t)

	out, err := executeCommand(t, "history", "clear", "-y", "--history", path)
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.Contains(out, "History cleared.") {
		t.Fatalf("expected clear confirmation, got: %s", out)
	}

	store := history.Open(path)
	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d records", store.Len())
	}
}

func withConfirmerStub(t *testing.T, c prompt.Confirmer) func() {
	t.Helper()
	prev := newConfirmer
	newConfirmer = func() prompt.Confirmer { return c }
	return func() { newConfirmer = prev }
}

func TestHistoryClear_NonInteractiveWithoutYes(t *testing.T) {
	path, _ := seedHistory(t)
	restore := withConfirmerStub(t, prompt.Confirmer{
		IsInteractive: func() bool { return false },
	})
	defer restore()

	_, err := executeCommand(t, "history", "clear", "--history", path)
	if err == nil {
		t.Fatalf("expected error without -y in non-interactive run")
	}

	store := history.Open(path)
	if store.Len() != 2 {
		t.Fatalf("expected records untouched, got %d", store.Len())
	}
}

func TestHistoryClear_InteractiveDecline(t *testing.T) {
	path, _ := seedHistory(t)
	restore := withConfirmerStub(t, prompt.Confirmer{
		In:            strings.NewReader("n\n"),
		Out:           io.Discard,
		IsInteractive: func() bool { return true },
	})
	defer restore()

	out, err := executeCommand(t, "history", "clear", "--history", path)
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.Contains(out, "Aborted.") {
		t.Fatalf("expected abort notice, got: %s", out)
	}

	store := history.Open(path)
	if store.Len() != 2 {
		t.Fatalf("expected records untouched, got %d", store.Len())
	}
}

func TestLanguagesCommand(t *testing.T) {
	out, err := executeCommand(t, "languages")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	for _, want := range []string{"Supported Languages:", "[auto]", "[en]", "[ko]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}
