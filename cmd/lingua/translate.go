package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/oukeidos/lingua/internal/files"
	"github.com/oukeidos/lingua/internal/history"
	"github.com/oukeidos/lingua/internal/language"
	"github.com/oukeidos/lingua/internal/logger"
	"github.com/oukeidos/lingua/internal/session"
	"github.com/oukeidos/lingua/internal/translate"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type translateOptions struct {
	sourceLang  string
	targetLang  string
	modelName   string
	historyPath string
	logFilePath string
	allowEnv    bool
	debug       bool
}

func addTranslateFlags(cmd *cobra.Command, opts *translateOptions) {
	cmd.Flags().StringVarP(&opts.sourceLang, "from", "f", language.Auto, "Source language code (auto to detect)")
	cmd.Flags().StringVarP(&opts.targetLang, "to", "t", "en", "Target language code")
	cmd.Flags().StringVar(&opts.modelName, "model", "gemini-3-flash-preview", "Gemini model name")
	cmd.Flags().StringVar(&opts.historyPath, "history", "", "Path to the history file (default is $HOME/.lingua/history.json)")
	cmd.Flags().StringVar(&opts.logFilePath, "log-file", "", "Path to save machine-readable JSONL logs")
	cmd.Flags().BoolVar(&opts.allowEnv, "allow-env", false, "Allow reading the API key from GEMINI_API_KEY")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
}

func runTranslate(cmd *cobra.Command, args []string, opts *translateOptions) error {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return fmt.Errorf("text to translate is required")
	}

	logLevel := logger.LevelInfo
	if opts.debug {
		logLevel = logger.LevelDebug
	}
	var logFileW io.Writer
	if opts.logFilePath != "" {
		if err := files.RejectSymlinkPath(opts.logFilePath); err != nil {
			return err
		}
		f, err := os.OpenFile(opts.logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logFileW = f
	}
	logger.Init(logLevel, logFileW)

	sourceLang := viper.GetString("translate.from")
	targetLang := viper.GetString("translate.to")
	modelName := viper.GetString("model")

	if !language.IsAuto(sourceLang) {
		if _, ok := language.Get(sourceLang); !ok {
			return fmt.Errorf("unknown source language code %q (see 'lingua languages')", sourceLang)
		}
	}
	if _, ok := language.Get(targetLang); !ok {
		return fmt.Errorf("unknown target language code %q (see 'lingua languages')", targetLang)
	}

	apiKey, source, err := resolveAPIKey(opts.allowEnv)
	if err != nil {
		return err
	}
	logger.Info("Using API key", "source", source)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := translate.NewClient(ctx, apiKey, modelName)
	if err != nil {
		return err
	}
	defer client.Close()

	historyPath := opts.historyPath
	if historyPath == "" {
		historyPath, err = history.DefaultPath()
		if err != nil {
			return err
		}
	}
	store := history.Open(historyPath)
	sess := session.New(client, store)

	outcome, err := sess.Translate(ctx, session.Request{
		Text:       text,
		SourceLang: sourceLang,
		TargetLang: targetLang,
	})
	if err != nil {
		return err
	}

	if language.IsAuto(sourceLang) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Detected language: %s [%s]\n", outcome.SourceLangName, outcome.SourceLangCode)
	}
	fmt.Fprintln(cmd.OutOrStdout(), outcome.TranslatedText)
	return nil
}
