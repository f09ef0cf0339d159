package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/oukeidos/lingua/internal/apperrors"
	"github.com/oukeidos/lingua/internal/auth"
	"github.com/oukeidos/lingua/internal/history"
	"github.com/oukeidos/lingua/internal/language"
	"github.com/oukeidos/lingua/internal/logger"
	"github.com/oukeidos/lingua/internal/session"
	"github.com/oukeidos/lingua/internal/translate"
)

func (a *linguaApp) beginGeneration() (uint64, context.Context) {
	a.genMu.Lock()
	defer a.genMu.Unlock()
	if a.activeCancel != nil {
		a.activeCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.activeCancel = cancel
	a.generation++
	return a.generation, ctx
}

func (a *linguaApp) isCurrent(id uint64) bool {
	a.genMu.Lock()
	defer a.genMu.Unlock()
	return a.generation == id
}

func (a *linguaApp) clearGeneration(id uint64) {
	a.genMu.Lock()
	defer a.genMu.Unlock()
	if a.generation == id && a.activeCancel != nil {
		a.activeCancel()
		a.activeCancel = nil
	}
}

func (a *linguaApp) cancelActive(reason string) {
	a.genMu.Lock()
	cancel := a.activeCancel
	a.activeCancel = nil
	a.genMu.Unlock()
	if cancel != nil {
		logger.Warn("Cancellation requested", "reason", reason)
		cancel()
	}
}

func (a *linguaApp) ensureClient(apiKey string) (*translate.Client, error) {
	a.clientMu.Lock()
	defer a.clientMu.Unlock()
	if a.client != nil && a.clientKey == apiKey && a.clientModel == a.config.Model {
		return a.client, nil
	}
	if a.client != nil {
		_ = a.client.Close()
		a.client = nil
	}
	client, err := translate.NewClient(context.Background(), apiKey, a.config.Model)
	if err != nil {
		return nil, err
	}
	a.client = client
	a.clientKey = apiKey
	a.clientModel = a.config.Model
	return client, nil
}

func (a *linguaApp) closeClient() {
	a.clientMu.Lock()
	defer a.clientMu.Unlock()
	if a.client != nil {
		_ = a.client.Close()
		a.client = nil
	}
}

func (a *linguaApp) startTranslation() {
	if strings.TrimSpace(a.sourceEntry.Text) == "" {
		dialog.ShowInformation("Nothing to Translate", "Please enter text to translate.", a.window)
		return
	}

	apiKey := a.sessionKey
	if apiKey == "" {
		apiKey, _ = auth.GetKey(true)
	}
	if apiKey == "" {
		a.promptForAPIKey()
		return
	}

	client, err := a.ensureClient(apiKey)
	if err != nil {
		dialog.ShowError(errors.New(apperrors.PublicMessage(err)), a.window)
		return
	}
	sess := session.New(client, a.store)

	req := session.Request{
		Text:       a.sourceEntry.Text,
		SourceLang: a.config.SourceLang,
		TargetLang: a.config.TargetLang,
	}

	id, ctx := a.beginGeneration()
	a.targetEntry.SetText("Translating...")
	a.detectedLabel.SetText("")
	a.translateBtn.Disable()

	a.safeGo("ops.translate", func() {
		outcome, err := sess.Translate(ctx, req)
		a.clearGeneration(id)
		if !a.isCurrent(id) {
			// A newer request replaced this one while it was in flight.
			return
		}
		a.safeDo("ops.translate.apply", func() {
			a.translateBtn.Enable()
			if err != nil {
				a.targetEntry.SetText("")
				if errors.Is(err, context.Canceled) {
					return
				}
				logger.Error("Translation failed", "error", err)
				switch {
				case apperrors.IsUserCorrectable(err):
					dialog.ShowInformation("Translation", apperrors.PublicMessage(err), a.window)
				case apperrors.IsRateLimit(err):
					dialog.ShowInformation("Translation", apperrors.PublicMessage(err)+" Wait a moment before retrying.", a.window)
				default:
					dialog.ShowError(errors.New(apperrors.PublicMessage(err)), a.window)
				}
				return
			}
			a.targetEntry.SetText(outcome.TranslatedText)
			if language.IsAuto(req.SourceLang) {
				a.detectedLabel.SetText(fmt.Sprintf("Detected language: %s", outcome.SourceLangName))
			}
			a.refreshHistory()
		})
	})
}

func (a *linguaApp) handleSwap() {
	sel, err := session.Swap(session.Selection{
		SourceLang: a.config.SourceLang,
		TargetLang: a.config.TargetLang,
	})
	if err != nil {
		dialog.ShowInformation("Swap", apperrors.PublicMessage(err), a.window)
		return
	}

	a.config.SourceLang = sel.SourceLang
	a.config.TargetLang = sel.TargetLang
	a.saveConfig()
	a.sourceSelect.SetSelected(optionForCode(sel.SourceLang))
	a.targetSelect.SetSelected(optionForCode(sel.TargetLang))

	src, tgt := a.sourceEntry.Text, a.targetEntry.Text
	if strings.TrimSpace(src) != "" && strings.TrimSpace(tgt) != "" {
		a.sourceEntry.SetText(tgt)
		a.targetEntry.SetText(src)
	}
	a.detectedLabel.SetText("")
}

func (a *linguaApp) restoreRecord(rec history.Record) {
	ed := session.Restore(rec)

	a.config.SourceLang = ed.SourceLang
	if ed.TargetLang != "" {
		a.config.TargetLang = ed.TargetLang
	}
	a.saveConfig()
	a.sourceSelect.SetSelected(optionForCode(a.config.SourceLang))
	a.targetSelect.SetSelected(optionForCode(a.config.TargetLang))
	a.sourceEntry.SetText(ed.SourceText)
	a.targetEntry.SetText(ed.TargetText)
	a.detectedLabel.SetText("")
}

func (a *linguaApp) deleteRecord(id string) {
	if err := a.store.Remove(id); err != nil {
		logger.Error("Failed to persist history delete", "error", err)
		dialog.ShowError(errors.New(apperrors.PublicMessage(err)), a.window)
	}
	a.refreshHistory()
}

func (a *linguaApp) confirmClearHistory() {
	count := a.store.Len()
	if count == 0 {
		return
	}
	dialog.ShowConfirm("Clear History", fmt.Sprintf("Delete all %d saved translations?", count), func(ok bool) {
		if !ok {
			return
		}
		if err := a.store.Clear(); err != nil {
			logger.Error("Failed to persist history clear", "error", err)
			dialog.ShowError(errors.New(apperrors.PublicMessage(err)), a.window)
		}
		a.refreshHistory()
	}, a.window)
}

func (a *linguaApp) promptForAPIKey() {
	entry := widget.NewPasswordEntry()
	entry.SetPlaceHolder("Gemini API Key")
	save := widget.NewCheck("Save to keychain", nil)
	save.SetChecked(true)

	items := []*widget.FormItem{
		widget.NewFormItem("API Key", entry),
		widget.NewFormItem("", save),
	}
	dialog.ShowForm("API Key Required", "Continue", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		key := strings.TrimSpace(entry.Text)
		if key == "" {
			return
		}
		a.sessionKey = key
		if save.Checked {
			if err := auth.SaveKey(key); err != nil {
				logger.Warn("Failed to save key to keychain", "error", err)
			}
		}
		a.startTranslation()
	}, a.window)
}
