// Package session orchestrates single translate actions: validation,
// auto-detect resolution, the remote call, and the history append.
package session

import (
	"context"
	"strings"
	"time"

	"github.com/oukeidos/lingua/internal/apperrors"
	"github.com/oukeidos/lingua/internal/history"
	"github.com/oukeidos/lingua/internal/language"
	"github.com/oukeidos/lingua/internal/logger"
	"github.com/oukeidos/lingua/internal/translate"
)

// Selection is the per-session language pair. SourceLang may be the
// auto-detect sentinel; TargetLang is always a concrete code.
type Selection struct {
	SourceLang string
	TargetLang string
}

// Request is one translate action as issued by the UI.
type Request struct {
	Text       string
	SourceLang string
	TargetLang string
}

// Outcome is what the UI needs to display after a successful translation.
type Outcome struct {
	TranslatedText string
	SourceLangCode string
	SourceLangName string
}

// Editor is the projection of a history record back into the editor panes.
type Editor struct {
	SourceLang string
	TargetLang string
	SourceText string
	TargetText string
}

// Session wires the translation service to the history store. Both are
// injected so the core can be exercised without any display layer.
type Session struct {
	service translate.Service
	store   *history.Store
}

func New(service translate.Service, store *history.Store) *Session {
	return &Session{
		service: service,
		store:   store,
	}
}

// Translate validates the request, invokes the translation service, and on
// success appends a record to history. The record is appended only after the
// remote call succeeds; a failed persist is logged as a warning and does not
// fail the translation (the session keeps operating in memory).
func (s *Session) Translate(ctx context.Context, req Request) (*Outcome, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, apperrors.EmptyInput()
	}
	if language.IsAuto(req.TargetLang) {
		return nil, apperrors.New(apperrors.KindBadRequest, "Target language cannot be auto-detect.", nil)
	}

	res, err := s.service.Translate(ctx, translate.Request{
		Text:       text,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
	})
	if err != nil {
		return nil, err
	}

	sourceCode := req.SourceLang
	if language.IsAuto(req.SourceLang) {
		sourceCode = res.DetectedSourceLang
	}
	sourceName := language.Name(sourceCode)

	rec := history.Record{
		ID:             history.NewID(),
		SourceLang:     sourceName,
		TargetLang:     language.Name(req.TargetLang),
		SourceText:     text,
		TargetText:     res.TranslatedText,
		SourceLangCode: sourceCode,
		TargetLangCode: req.TargetLang,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.store.Append(rec); err != nil {
		logger.Warn("Failed to persist translation history, continuing in memory",
			"record_id", rec.ID, "error", err)
	}

	return &Outcome{
		TranslatedText: res.TranslatedText,
		SourceLangCode: sourceCode,
		SourceLangName: sourceName,
	}, nil
}

// Swap exchanges source and target. Auto-detect has no concrete language to
// become the new target, so swapping is rejected while it is selected.
func Swap(sel Selection) (Selection, error) {
	if language.IsAuto(sel.SourceLang) {
		return sel, apperrors.AutoDetectSwap()
	}
	return Selection{
		SourceLang: sel.TargetLang,
		TargetLang: sel.SourceLang,
	}, nil
}

// Restore projects a history record back into editor state. A source code
// that is no longer in the language table falls back to auto-detect, which is
// how records created from a detected language the UI cannot list are handled.
func Restore(rec history.Record) Editor {
	sourceLang := rec.SourceLangCode
	if _, ok := language.Get(sourceLang); !ok {
		sourceLang = language.Auto
	}
	targetLang := rec.TargetLangCode
	if _, ok := language.Get(targetLang); !ok {
		targetLang = ""
	}
	return Editor{
		SourceLang: sourceLang,
		TargetLang: targetLang,
		SourceText: rec.SourceText,
		TargetText: rec.TargetText,
	}
}

// History returns the current records, newest first.
func (s *Session) History() []history.Record {
	return s.store.List()
}

// Delete removes a record by id. Removing an absent id is a no-op.
func (s *Session) Delete(id string) error {
	return s.store.Remove(id)
}
