package main

import (
	"errors"
	"net/url"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mongodb"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	server_config "github.com/carson-networks/finance-server/internal/config"
)

var sourceURL string

func main() {
	if err := rootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("db_migrations")
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "db_migrations",
		Short:        "Apply MongoDB index migrations",
		Long:         `Applies the JSON command migrations under ./migrations. Without a subcommand it migrates up.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return withMigrate(up)
		},
	}
	cmd.PersistentFlags().StringVar(&sourceURL, "source", "file://migrations", "migration source URL")

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withMigrate(up)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Revert the most recent migration",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withMigrate(func(m *migrate.Migrate) error {
				return logVersions(m, func() error { return m.Steps(-1) })
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the applied migration version",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withMigrate(func(m *migrate.Migrate) error {
				version, dirty, err := currentVersion(m)
				if err != nil {
					return err
				}
				logrus.WithFields(logrus.Fields{"version": version, "dirty": dirty}).Info("Migration version")
				return nil
			})
		},
	})
	return cmd
}

// migrationURL points the connection string at the configured database,
// which is where the mongodb driver keeps its version collection.
func migrationURL(env *server_config.Config) (string, error) {
	parsed, err := url.Parse(env.MongoURI)
	if err != nil {
		return "", err
	}
	parsed.Path = "/" + env.MongoDatabase
	return parsed.String(), nil
}

func withMigrate(run func(m *migrate.Migrate) error) error {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		return err
	}

	connectionDetails, err := migrationURL(env)
	if err != nil {
		return err
	}

	m, err := migrate.New(sourceURL, connectionDetails)
	if err != nil {
		return err
	}
	defer func() {
		if sourceErr, dbErr := m.Close(); sourceErr != nil || dbErr != nil {
			logrus.WithFields(logrus.Fields{
				"sourceError":   sourceErr,
				"databaseError": dbErr,
			}).Warn("m.Close")
		}
	}()

	logrus.WithField("database", env.MongoDatabase).Info("Migration target")
	return run(m)
}

func up(m *migrate.Migrate) error {
	return logVersions(m, m.Up)
}

// logVersions runs step and logs the version before and after it. No change
// is not an error.
func logVersions(m *migrate.Migrate, step func() error) error {
	preMigrationVersion, _, err := currentVersion(m)
	if err != nil {
		return err
	}

	if err := step(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	postMigrationVersion, _, err := currentVersion(m)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"preMigrationVersion":  preMigrationVersion,
		"postMigrationVersion": postMigrationVersion,
	}).Info("Migration status")
	return nil
}

// currentVersion reports 0 for a database that has never been migrated.
func currentVersion(m *migrate.Migrate) (uint, bool, error) {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}
