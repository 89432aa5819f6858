package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/duochart/duochart/internal/config"
	"github.com/duochart/duochart/internal/log"
	"github.com/duochart/duochart/internal/model"
	"github.com/duochart/duochart/internal/store"
)

// NewProfileCmd creates the profile command and its subcommands.
func NewProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage saved chart profiles",
		Long: `Profile manages named profiles: saved snapshots of the full chart state
(labels, rows, colors, dark mode, annotations).

Profiles live in a SQLite database in the XDG data directory. Render
loads them with --profile and saves them with --save; this command
family covers the rest of their lifecycle.

Examples:
  # Import a CSV and store it without rendering
  duochart profile save quarterly data.csv

  # List stored profiles
  duochart profile list

  # Inspect a profile's stored state
  duochart profile show quarterly

  # Remove a profile
  duochart profile delete quarterly`,
	}

	cmd.PersistentFlags().String("db-dir", "",
		"Profile database directory (default: XDG data dir)")

	cmd.AddCommand(newProfileSaveCmd())
	cmd.AddCommand(newProfileListCmd())
	cmd.AddCommand(newProfileShowCmd())
	cmd.AddCommand(newProfileDeleteCmd())

	return cmd
}

// profileStoreDir resolves the database directory from the persistent flag.
func profileStoreDir(cmd *cobra.Command) string {
	dir, err := cmd.Flags().GetString("db-dir")
	if err != nil || dir == "" {
		return config.XDGDataDir()
	}
	return dir
}

// openProfileStore opens the store for a profile subcommand. Read-only
// subcommands pass create false so a missing database is reported instead
// of silently created empty.
func openProfileStore(cmd *cobra.Command, create bool) (*store.Store, error) {
	opts := store.DefaultOptions()
	opts.CreateIfNotExists = create

	st, err := store.Open(profileStoreDir(cmd), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile store: %w", err)
	}
	return st, nil
}

// newProfileSaveCmd creates the profile save subcommand.
func newProfileSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <name> <csv-file>",
		Short: "Import a CSV dataset and store it under a profile name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.NewLogger(os.Stderr, getVerboseFlag(cmd))
			slog.SetDefault(logger)

			name := args[0]

			cd, err := readDataset(args[1])
			if err != nil {
				return err
			}

			st, err := openProfileStore(cmd, true)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			snap := loadOrDefault(cmd.Context(), st, name, logger)
			snap.ApplyData(cd)

			if err := st.Save(cmd.Context(), name, snap); err != nil {
				return fmt.Errorf("failed to save profile %q: %w", name, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved profile %q (%d rows)\n", name, len(snap.Data))
			return nil
		},
	}
}

// loadOrDefault returns the stored snapshot for name, or a default one
// when the profile is missing or corrupt. Corruption is logged; saving
// over the bad blob repairs it.
func loadOrDefault(ctx context.Context, st *store.Store, name string, logger *slog.Logger) *model.Snapshot {
	snap, err := st.Load(ctx, name)
	if err != nil {
		if !errors.Is(err, store.ErrProfileNotFound) {
			logger.Warn("stored profile no longer decodes, replacing it", "name", name)
		}
		return model.NewSnapshot()
	}
	return snap
}

// newProfileListCmd creates the profile list subcommand.
func newProfileListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := openProfileStore(cmd, false)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			infos, err := st.List(cmd.Context())
			if err != nil {
				return err
			}

			if len(infos) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No profiles stored.")
				return nil
			}

			for _, info := range infos {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n",
					info.Name, info.UpdatedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}

// newProfileShowCmd creates the profile show subcommand.
func newProfileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print a profile's stored state as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openProfileStore(cmd, false)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			snap, err := st.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(snap)
		},
	}
}

// newProfileDeleteCmd creates the profile delete subcommand.
func newProfileDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Remove a stored profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openProfileStore(cmd, false)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			if err := st.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted profile %q\n", args[0])
			return nil
		},
	}
}
