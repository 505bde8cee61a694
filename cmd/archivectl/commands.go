package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"archiveapi/internal/bootstrap"
	"archiveapi/internal/config"
	"archiveapi/internal/database"
	"archiveapi/internal/database/migration"
	"archiveapi/internal/logger"
	"archiveapi/internal/model"
	"archiveapi/internal/service"
)

var (
	unitID     int64
	fileNumber int
	editID     string
)

// migrateCmd creates the schema
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the archive schema if it does not exist",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDB(cmd.Context(), func(env *cliEnv) error {
			return migration.EnsureMigrated(cmd.Context(), env.db, env.log, env.cfg.Database.Host)
		})
	},
}

// previewCmd prints the computed storage location
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the storage location a record would be filed under",
	Long: `Print the cabinet/drawer/folder address for a unit.

Without --edit-id a new record is assumed. With --edit-id the stored drawer
and folder of that record are shown. A blank line means the unit has no
cabinet prefix configured.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDB(cmd.Context(), func(env *cliEnv) error {
			addr, err := env.svcs.Archives.PreviewLocation(cmd.Context(), unitID, fileNumber, editID)
			if err != nil {
				return err
			}
			printAddress(cmd.OutOrStdout(), addr)
			return nil
		})
	},
}

// renumberCmd rewrites a unit's file numbers inline
var renumberCmd = &cobra.Command{
	Use:   "renumber",
	Short: "Rewrite a unit's file numbers to 1..n",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDB(cmd.Context(), func(env *cliEnv) error {
			return runRenumber(cmd.Context(), cmd.OutOrStdout(), env.svcs.Archives, unitID)
		})
	},
}

func init() {
	previewCmd.Flags().Int64Var(&unitID, "unit-id", 0, "Unit ID")
	previewCmd.Flags().IntVar(&fileNumber, "file-number", 0, "File number (0 means empty)")
	previewCmd.Flags().StringVar(&editID, "edit-id", "", "ID of the record being edited")

	renumberCmd.Flags().Int64Var(&unitID, "unit-id", 0, "Unit ID")
	_ = renumberCmd.MarkFlagRequired("unit-id")
}

type cliEnv struct {
	cfg  *config.AppConfig
	log  *zap.Logger
	db   *sql.DB
	svcs bootstrap.Services
}

// withDB loads the configuration, opens the database and runs fn.
func withDB(ctx context.Context, fn func(env *cliEnv) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	zl, err := logger.New(cfg.LogLevel, bootstrap.Location(cfg.Timezone))
	if err != nil {
		return err
	}
	defer func() { _ = zl.Sync() }()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	return fn(&cliEnv{cfg: cfg, log: zl, db: db, svcs: bootstrap.NewServices(db, cfg, zl)})
}

func printAddress(w io.Writer, addr model.StorageAddress) {
	if addr.IsBlank() {
		fmt.Fprintln(w)
		return
	}
	fmt.Fprintf(w, "%s / laci %s / folder %s\n", addr.CabinetPrefix, addr.DrawerNumber, addr.FolderNumber)
}

func runRenumber(ctx context.Context, w io.Writer, archives service.ArchiveService, unitID int64) error {
	n, err := archives.Renumber(ctx, unitID)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "unit %d: %d records renumbered\n", unitID, n)
	return nil
}
