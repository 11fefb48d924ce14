package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"mxfkit/internal/catalog"
	"mxfkit/internal/config"
	"mxfkit/internal/logging"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	var pathFlag string

	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the SQLite reference catalog",
	}
	catalogCmd.PersistentFlags().StringVar(&pathFlag, "path", "", "Catalog database path (overrides catalog.path)")

	open := func(cmd *cobra.Command) (*catalog.Store, error) {
		cfg, err := ctx.ensureConfig()
		if err != nil {
			return nil, err
		}
		path := cfg.Catalog.Path
		if trimmed := strings.TrimSpace(pathFlag); trimmed != "" {
			if path, err = config.ExpandPath(trimmed); err != nil {
				return nil, fmt.Errorf("resolve catalog path: %w", err)
			}
		}
		logger, err := ctx.ensureLogger()
		if err != nil {
			return nil, err
		}
		return catalog.Open(cmd.Context(), path, logging.NewComponentLogger(logger, "catalog"))
	}

	catalogCmd.AddCommand(newCatalogExportCommand(ctx, open))
	catalogCmd.AddCommand(newCatalogListCommand(ctx, open))
	catalogCmd.AddCommand(newCatalogRunsCommand(ctx, open))
	catalogCmd.AddCommand(newCatalogVerifyCommand(ctx, open))
	return catalogCmd
}

type storeOpener func(*cobra.Command) (*catalog.Store, error)

func withStore(cmd *cobra.Command, open storeOpener, fn func(*catalog.Store) error) error {
	store, err := open(cmd)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func newCatalogExportCommand(ctx *commandContext, open storeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the compiled registry into the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, open, func(store *catalog.Store) error {
				run, err := store.Export(cmd.Context())
				if err != nil {
					if errors.Is(err, catalog.ErrLocked) {
						return fmt.Errorf("export %s: %w (another export is running)", store.Path(), err)
					}
					return err
				}
				format, err := ctx.outputFormat()
				if err != nil {
					return err
				}
				if format == "json" {
					return writeJSON(cmd, run)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d kinds to %s (run %s)\n", run.KindCount, store.Path(), run.ID)
				return nil
			})
		},
	}
}

func newCatalogListCommand(ctx *commandContext, open storeOpener) *cobra.Command {
	var genericFlags []string
	var concreteOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List kinds stored in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			generics, err := parseGenerics(genericFlags)
			if err != nil {
				return err
			}
			return withStore(cmd, open, func(store *catalog.Store) error {
				stored, err := store.List(cmd.Context(), catalog.Filter{Generics: generics, ConcreteOnly: concreteOnly})
				if err != nil {
					return err
				}
				if stored == nil {
					stored = []catalog.Row{}
				}
				rows := make([][]string, 0, len(stored))
				for _, r := range stored {
					rows = append(rows, kindRow(kindView{ID: r.ID, Name: r.Name, Generic: r.GenericName, Label: r.Label}))
				}
				return ctx.writeListing(cmd, listing{headers: kindHeaders, rows: rows, aligns: kindAligns}, stored)
			})
		},
	}

	cmd.Flags().StringSliceVar(&genericFlags, "generic", nil, "Only kinds under these generic kinds")
	cmd.Flags().BoolVar(&concreteOnly, "concrete", false, "Omit the generic kinds themselves")
	return cmd
}

func newCatalogRunsCommand(ctx *commandContext, open storeOpener) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List catalog exports, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, open, func(store *catalog.Store) error {
				runs, err := store.Runs(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if runs == nil {
					runs = []catalog.Run{}
				}
				rows := make([][]string, 0, len(runs))
				for _, run := range runs {
					rows = append(rows, []string{run.ID, run.ExportedAt.Local().Format(time.DateTime), strconv.Itoa(run.KindCount)})
				}
				return ctx.writeListing(cmd, listing{
					headers: []string{"Run", "Exported", "Kinds"},
					rows:    rows,
					aligns:  []columnAlignment{alignLeft, alignLeft, alignRight},
				}, runs)
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum runs to show (0 for all)")
	return cmd
}

func newCatalogVerifyCommand(ctx *commandContext, open storeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Compare the catalog with the compiled registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, open, func(store *catalog.Store) error {
				drifts, verifyErr := store.Verify(cmd.Context())
				if verifyErr != nil && !errors.Is(verifyErr, catalog.ErrDrift) {
					return verifyErr
				}
				format, err := ctx.outputFormat()
				if err != nil {
					return err
				}

				if format == "json" {
					if drifts == nil {
						drifts = []catalog.Drift{}
					}
					if err := writeJSON(cmd, drifts); err != nil {
						return err
					}
					return verifyErr
				}

				out := cmd.OutOrStdout()
				colorize := ctx.colorize(out)
				if len(drifts) == 0 {
					line := statusLine{label: "Catalog", kind: statusOK, detail: "in sync with compiled registry"}
					fmt.Fprintln(out, line.render(colorize))
					return nil
				}
				for _, d := range drifts {
					fmt.Fprintln(out, driftLine(d).render(colorize))
				}
				return verifyErr
			})
		},
	}
}
