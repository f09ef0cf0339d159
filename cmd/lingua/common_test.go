package main

import (
	"bytes"
	"strings"
	"testing"
)

type keyStubs struct {
	promptCalls int
	keyCalls    int
}

func withKeyStubs(t *testing.T, terminal bool, promptVal string, keychainVal string, envVal string) (*keyStubs, func()) {
	t.Helper()
	stubs := &keyStubs{}

	prevIsTerminal := isTerminal
	prevPrompt := promptForKey
	prevGetKey := getKey

	isTerminal = func(_ int) bool { return terminal }
	promptForKey = func(_ string) (string, error) {
		stubs.promptCalls++
		return promptVal, nil
	}
	getKey = func(allowEnv bool) (string, string) {
		stubs.keyCalls++
		if keychainVal != "" {
			return keychainVal, "Keychain"
		}
		if allowEnv && envVal != "" {
			return envVal, "Environment Variable"
		}
		return "", ""
	}

	restore := func() {
		isTerminal = prevIsTerminal
		promptForKey = prevPrompt
		getKey = prevGetKey
	}

	return stubs, restore
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestResolveAPIKey_Keychain(t *testing.T) {
	stubs, restore := withKeyStubs(t, true, "", "keychain-key", "env-key")
	defer restore()

	key, source, err := resolveAPIKey(true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "keychain-key" || source != "Keychain" {
		t.Fatalf("expected keychain key/source, got key=%q source=%q", key, source)
	}
	if stubs.promptCalls != 0 {
		t.Fatalf("expected no prompt, got promptCalls=%d", stubs.promptCalls)
	}
}

func TestResolveAPIKey_EnvFallbackWhenAllowed(t *testing.T) {
	_, restore := withKeyStubs(t, false, "", "", "env-key")
	defer restore()

	key, source, err := resolveAPIKey(true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "env-key" || source != "Environment Variable" {
		t.Fatalf("expected env key/source, got key=%q source=%q", key, source)
	}
}

func TestResolveAPIKey_EnvDisabledError(t *testing.T) {
	_, restore := withKeyStubs(t, false, "", "", "env-key")
	defer restore()

	key, source, err := resolveAPIKey(false)
	if err == nil {
		t.Fatalf("expected error, got key=%q source=%q", key, source)
	}
	if !strings.Contains(err.Error(), "no API key available") {
		t.Fatalf("unexpected error message: %v", err)
	}
}

func TestResolveAPIKey_TerminalPrompt(t *testing.T) {
	stubs, restore := withKeyStubs(t, true, "  typed-key  ", "", "")
	defer restore()

	key, source, err := resolveAPIKey(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "typed-key" || source != "Terminal Prompt" {
		t.Fatalf("expected prompted key, got key=%q source=%q", key, source)
	}
	if stubs.promptCalls != 1 {
		t.Fatalf("expected one prompt, got promptCalls=%d", stubs.promptCalls)
	}
}

func TestResolveAPIKey_PromptSkipped(t *testing.T) {
	_, restore := withKeyStubs(t, true, "", "", "")
	defer restore()

	_, _, err := resolveAPIKey(false)
	if err == nil {
		t.Fatalf("expected error when prompt is skipped")
	}
	if !strings.Contains(err.Error(), "--allow-env") {
		t.Fatalf("unexpected error message: %v", err)
	}
}
