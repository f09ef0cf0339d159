package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/oukeidos/lingua/internal/auth"
	"github.com/spf13/cobra"
)

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage the API key in the OS keychain",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeysStatus(cmd)
		},
	}

	cmd.SetUsageTemplate(keysUsageTemplate)

	cmd.AddCommand(
		newKeysSaveCmd(),
		newKeysDeleteCmd(),
		newKeysStatusCmd(),
	)
	return cmd
}

func newKeysSaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save the API key to the keychain (prompt only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeysSave(cmd)
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func newKeysDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the API key from the keychain",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeysDelete(cmd)
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func newKeysStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show key status (default if no action given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeysStatus(cmd)
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func runKeysSave(cmd *cobra.Command) error {
	if !isTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("saving a key requires an interactive terminal")
	}
	promptKey, err := promptForKey("Gemini API Key: ")
	if err != nil {
		return fmt.Errorf("error reading key: %w", err)
	}
	key := strings.TrimSpace(promptKey)
	if key == "" {
		return fmt.Errorf("API key is required for save")
	}
	if err := auth.SaveKey(key); err != nil {
		return fmt.Errorf("error saving key: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Saved Gemini API key to keychain.")
	return nil
}

func runKeysDelete(cmd *cobra.Command) error {
	if err := auth.DeleteKey(); err != nil {
		return fmt.Errorf("error deleting key: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Deleted Gemini API key from keychain.")
	return nil
}

func runKeysStatus(cmd *cobra.Command) error {
	if hasKey() {
		fmt.Fprintln(cmd.OutOrStdout(), "Gemini API Key: Found (source=Keychain)")
		return nil
	}
	if os.Getenv("GEMINI_API_KEY") != "" {
		fmt.Fprintln(cmd.OutOrStdout(), "Gemini API Key: Not in keychain (GEMINI_API_KEY is set; use --allow-env)")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Gemini API Key: Not Found")
	return nil
}
