package main

import (
	"fmt"

	"github.com/oukeidos/lingua/internal/history"
	"github.com/oukeidos/lingua/internal/prompt"
	"github.com/spf13/cobra"
)

type historyOptions struct {
	path string
}

var newConfirmer = prompt.DefaultConfirmer

func newHistoryCmd() *cobra.Command {
	opts := historyOptions{}
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show and manage saved translations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryList(cmd, &opts)
		},
		SilenceUsage: true,
	}

	cmd.SetUsageTemplate(subcommandUsageTemplate)
	cmd.PersistentFlags().StringVar(&opts.path, "history", "", "Path to the history file (default is $HOME/.lingua/history.json)")

	cmd.AddCommand(
		newHistoryDeleteCmd(&opts),
		newHistoryClearCmd(&opts),
	)
	return cmd
}

func newHistoryDeleteCmd(opts *historyOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one saved translation by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryDelete(cmd, opts, args[0])
		},
		SilenceUsage: true,
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func newHistoryClearCmd(opts *historyOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all saved translations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryClear(cmd, opts, yes)
		},
		SilenceUsage: true,
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Clear without asking")
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func openStore(opts *historyOptions) (*history.Store, error) {
	path := opts.path
	if path == "" {
		var err error
		path, err = history.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return history.Open(path), nil
}

func runHistoryList(cmd *cobra.Command, opts *historyOptions) error {
	store, err := openStore(opts)
	if err != nil {
		return err
	}

	records := store.List()
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No translations yet.")
		return nil
	}
	for _, rec := range records {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s -> %s  %s\n", rec.Timestamp, rec.SourceLang, rec.TargetLang, history.Preview(rec.SourceText, 50))
		fmt.Fprintf(cmd.OutOrStdout(), "    id: %s\n", rec.ID)
	}
	return nil
}

func runHistoryDelete(cmd *cobra.Command, opts *historyOptions, id string) error {
	store, err := openStore(opts)
	if err != nil {
		return err
	}

	before := store.Len()
	if err := store.Remove(id); err != nil {
		return err
	}
	if store.Len() == before {
		fmt.Fprintf(cmd.OutOrStdout(), "No record with id %s.\n", id)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
	return nil
}

func runHistoryClear(cmd *cobra.Command, opts *historyOptions, yes bool) error {
	store, err := openStore(opts)
	if err != nil {
		return err
	}

	if store.Len() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No translations yet.")
		return nil
	}

	confirmer := newConfirmer()
	ok, err := confirmer.ConfirmClear(store.Len(), yes)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
		return nil
	}
	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
	return nil
}
