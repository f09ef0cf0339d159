package main

import (
	"fyne.io/fyne/v2"

	"github.com/oukeidos/lingua/internal/language"
)

type AppConfig struct {
	SourceLang string
	TargetLang string
	Model      string
}

const defaultGUIModel = "gemini-3-flash-preview"

var supportedGUIModels = []string{
	"gemini-3-flash-preview",
	"gemini-3.1-pro-preview",
}

func normalizeGeminiModel(input string) string {
	for _, m := range supportedGUIModels {
		if input == m {
			return m
		}
	}
	return defaultGUIModel
}

// normalizeSourceLang falls back to auto-detect for codes that are no longer
// in the language table. Stored preferences survive table changes this way.
func normalizeSourceLang(code string) string {
	if language.IsAuto(code) {
		return language.Auto
	}
	if _, ok := language.Get(code); ok {
		return code
	}
	return language.Auto
}

func normalizeTargetLang(code string) string {
	if language.IsAuto(code) {
		return "en"
	}
	if _, ok := language.Get(code); ok {
		return code
	}
	return "en"
}

func (a *linguaApp) loadConfig() {
	prefs := fyne.CurrentApp().Preferences()

	a.config.SourceLang = normalizeSourceLang(prefs.StringWithFallback("SourceLang", language.Auto))
	a.config.TargetLang = normalizeTargetLang(prefs.StringWithFallback("TargetLang", "en"))
	a.config.Model = normalizeGeminiModel(prefs.StringWithFallback("Model", defaultGUIModel))
}

func (a *linguaApp) saveConfig() {
	prefs := fyne.CurrentApp().Preferences()
	prefs.SetString("SourceLang", a.config.SourceLang)
	prefs.SetString("TargetLang", a.config.TargetLang)
	prefs.SetString("Model", a.config.Model)
}
