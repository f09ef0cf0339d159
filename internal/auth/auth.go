package auth

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/zalando/go-keyring"
	"golang.org/x/term"
)

const (
	serviceName = "lingua"
	account     = "gemini-api-key"
	envVar      = "GEMINI_API_KEY"
)

// GetKey retrieves the translation API key. The OS keychain is preferred; the
// environment variable is consulted only when allowEnv is set. The second
// return value names the source for status output.
func GetKey(allowEnv bool) (string, string) {
	key, err := keyring.Get(serviceName, account)
	if err == nil && key != "" {
		return strings.TrimSpace(key), "Keychain"
	}

	if allowEnv {
		if key := os.Getenv(envVar); key != "" {
			return strings.TrimSpace(key), "Environment Variable"
		}
	}

	return "", ""
}

// SaveKey stores the key in the OS keychain.
func SaveKey(key string) error {
	return keyring.Set(serviceName, account, strings.TrimSpace(key))
}

// DeleteKey removes the key from the OS keychain.
func DeleteKey() error {
	return keyring.Delete(serviceName, account)
}

// HasKey reports whether a key exists in the keychain.
func HasKey() bool {
	key, err := keyring.Get(serviceName, account)
	return err == nil && key != ""
}

// PromptForAPIKey securely prompts the user for their API key.
func PromptForAPIKey(prompt string) (string, error) {
	fmt.Print(prompt)
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Println()
	return strings.TrimSpace(string(bytePassword)), nil
}
