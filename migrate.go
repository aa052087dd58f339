package main

import (
	"fmt"
	"strconv"

	"ats-backend/config"
	"ats-backend/db"
	"ats-backend/initializers"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	var statusFlag bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			initializers.InitBase()
			defer db.Close()
			if statusFlag {
				return printMigrationStatus(cmd)
			}
			return migrate()
		},
	}
	cmd.Flags().BoolVar(&statusFlag, "status", false, "Show applied and pending migrations")
	return cmd
}

func migrate() error {
	lock := flock.New(config.Conf.Database.MigrationLockFile)
	locked, err := lock.TryLock()
	if err != nil {
		return errors.Wrap(err, "unable to take migration lock")
	}
	if !locked {
		return errors.Errorf("another migration holds %s", config.Conf.Database.MigrationLockFile)
	}
	defer func() {
		_ = lock.Unlock()
	}()
	applied, err := db.Migrate(db.DB)
	if err != nil {
		return err
	}
	log.WithField("applied", applied).Info("database migrated")
	initializers.InitPreload()
	return nil
}

func printMigrationStatus(cmd *cobra.Command) error {
	states, err := db.Status(db.DB)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(states))
	for _, state := range states {
		appliedAt := ""
		if state.AppliedAt != nil {
			appliedAt = state.AppliedAt.Format("2006-01-02 15:04:05")
		}
		rows = append(rows, []string{
			strconv.Itoa(state.Version),
			state.Name,
			strconv.FormatBool(state.Applied),
			appliedAt,
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"Version", "Name", "Applied", "Applied at"},
		rows,
		[]columnAlignment{alignRight},
	))
	return nil
}
