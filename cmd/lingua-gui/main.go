package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/oukeidos/lingua/internal/history"
	"github.com/oukeidos/lingua/internal/language"
	"github.com/oukeidos/lingua/internal/logger"
	"github.com/oukeidos/lingua/internal/translate"
)

const historyPreviewClusters = 50

type linguaApp struct {
	window fyne.Window
	config AppConfig
	store  *history.Store

	// UI components
	sourceEntry    *widget.Entry
	targetEntry    *widget.Entry
	sourceSelect   *widget.Select
	targetSelect   *widget.Select
	detectedLabel  *widget.Label
	translateBtn   *widget.Button
	historyList    *widget.List
	historyEmpty   *widget.Label
	historyRecords []history.Record

	// Lazily built remote client, rebuilt when key or model changes.
	clientMu    sync.Mutex
	client      *translate.Client
	clientKey   string
	clientModel string
	sessionKey  string

	// In-flight translation tracking. Only the newest generation may
	// touch the target pane; older completions are discarded.
	genMu        sync.Mutex
	generation   uint64
	activeCancel context.CancelFunc

	panicNoticeOnce sync.Once
}

func newLinguaApp(w fyne.Window) *linguaApp {
	a := &linguaApp{window: w}
	a.loadConfig()

	path, err := history.DefaultPath()
	if err != nil {
		logger.Warn("Falling back to working-directory history file", "error", err)
		path = "history.json"
	}
	a.store = history.Open(path)

	w.SetContent(a.setupUI())
	a.refreshHistory()
	return a
}

func sourceLangOptions() []string {
	opts := []string{language.AutoDisplayName}
	for _, l := range language.Supported() {
		opts = append(opts, l.Name)
	}
	return opts
}

func targetLangOptions() []string {
	opts := make([]string, 0, len(language.Languages))
	for _, l := range language.Supported() {
		opts = append(opts, l.Name)
	}
	return opts
}

// codeForOption maps a picker label back to a language code.
func codeForOption(option string, allowAuto bool) (string, bool) {
	if allowAuto && option == language.AutoDisplayName {
		return language.Auto, true
	}
	for _, l := range language.Supported() {
		if l.Name == option {
			return l.Code, true
		}
	}
	return "", false
}

func optionForCode(code string) string {
	if language.IsAuto(code) {
		return language.AutoDisplayName
	}
	return language.Name(code)
}

func historyLabel(rec history.Record) string {
	return fmt.Sprintf("%s → %s: %s", rec.SourceLang, rec.TargetLang, history.Preview(rec.SourceText, historyPreviewClusters))
}

func (a *linguaApp) setupUI() fyne.CanvasObject {
	a.sourceEntry = widget.NewMultiLineEntry()
	a.sourceEntry.Wrapping = fyne.TextWrapWord
	a.sourceEntry.SetPlaceHolder("Enter text to translate")

	a.targetEntry = widget.NewMultiLineEntry()
	a.targetEntry.Wrapping = fyne.TextWrapWord
	a.targetEntry.SetPlaceHolder("Translation")

	a.sourceSelect = widget.NewSelect(sourceLangOptions(), func(option string) {
		if code, ok := codeForOption(option, true); ok {
			a.config.SourceLang = code
			a.saveConfig()
		}
	})
	a.sourceSelect.SetSelected(optionForCode(a.config.SourceLang))

	a.targetSelect = widget.NewSelect(targetLangOptions(), func(option string) {
		if code, ok := codeForOption(option, false); ok {
			a.config.TargetLang = code
			a.saveConfig()
		}
	})
	a.targetSelect.SetSelected(optionForCode(a.config.TargetLang))

	swapBtn := widget.NewButton("⇄", a.handleSwap)

	a.translateBtn = widget.NewButton("Translate", a.startTranslation)
	a.translateBtn.Importance = widget.HighImportance

	a.detectedLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Italic: true})

	a.historyEmpty = widget.NewLabelWithStyle("No translations yet", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	a.historyList = widget.NewList(
		func() int { return len(a.historyRecords) },
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			restoreBtn := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), nil)
			deleteBtn := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)
			return container.NewBorder(nil, nil, nil, container.NewHBox(restoreBtn, deleteBtn), label)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(a.historyRecords) {
				return
			}
			rec := a.historyRecords[id]
			row := obj.(*fyne.Container)
			label := row.Objects[0].(*widget.Label)
			buttons := row.Objects[1].(*fyne.Container)
			restoreBtn := buttons.Objects[0].(*widget.Button)
			deleteBtn := buttons.Objects[1].(*widget.Button)

			label.SetText(historyLabel(rec))
			restoreBtn.OnTapped = func() { a.restoreRecord(rec) }
			deleteBtn.OnTapped = func() { a.deleteRecord(rec.ID) }
		},
	)

	clearBtn := widget.NewButton("Clear History", a.confirmClearHistory)

	langRow := container.NewHBox(a.sourceSelect, swapBtn, a.targetSelect)
	panes := container.NewHSplit(a.sourceEntry, a.targetEntry)
	panes.SetOffset(0.5)
	editor := container.NewBorder(
		langRow,
		container.NewVBox(a.translateBtn, a.detectedLabel),
		nil, nil,
		panes,
	)

	historyPanel := container.NewBorder(
		widget.NewLabelWithStyle("History", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		clearBtn,
		nil, nil,
		container.NewStack(a.historyList, a.historyEmpty),
	)

	split := container.NewHSplit(editor, historyPanel)
	split.SetOffset(0.68)
	return split
}

func (a *linguaApp) refreshHistory() {
	a.historyRecords = a.store.List()
	if len(a.historyRecords) == 0 {
		a.historyEmpty.Show()
	} else {
		a.historyEmpty.Hide()
	}
	a.historyList.Refresh()
}

func main() {
	logger.Init(logger.LevelInfo, nil)
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Unrecovered GUI panic", "scope", "main", "panic", fmt.Sprint(r))
			os.Exit(1)
		}
	}()

	myApp := app.NewWithID("com.oukeidos.lingua")
	myApp.SetIcon(appIcon())

	w := myApp.NewWindow("Lingua")
	w.SetIcon(appIcon())
	w.SetMaster()
	w.Resize(fyne.NewSize(980, 620))
	w.CenterOnScreen()

	la := newLinguaApp(w)
	w.SetCloseIntercept(func() {
		la.cancelActive("window closed")
		la.sessionKey = ""
		la.closeClient()
		w.SetCloseIntercept(nil)
		w.Close()
	})

	w.ShowAndRun()
}
