package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/oukeidos/lingua/internal/auth"
	"golang.org/x/term"
)

var (
	isTerminal   = term.IsTerminal
	getKey       = auth.GetKey
	hasKey       = auth.HasKey
	promptForKey = auth.PromptForAPIKey
)

// resolveAPIKey handles the logic for finding the API key.
func resolveAPIKey(allowEnv bool) (string, string, error) {
	if key, source := getKey(false); key != "" {
		return key, source, nil
	}

	if allowEnv {
		if key, source := getKey(true); key != "" {
			return key, source, nil
		}
	}

	if isTerminal(int(os.Stdin.Fd())) {
		key, err := promptForKey("Gemini API Key (press Enter to skip): ")
		if err != nil {
			return "", "", fmt.Errorf("error reading API key: %w", err)
		}
		if strings.TrimSpace(key) != "" {
			return strings.TrimSpace(key), "Terminal Prompt", nil
		}
		if allowEnv {
			return "", "", fmt.Errorf("API key is required; not found in keychain or environment")
		}
		return "", "", fmt.Errorf("API key is required; not found in keychain (environment disabled by default; use --allow-env)")
	}

	return "", "", fmt.Errorf("no API key available (non-interactive shell); run 'lingua keys save' or use --allow-env")
}
