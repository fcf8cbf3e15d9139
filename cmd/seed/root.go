package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/jaswdr/faker"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"walt/internal/app"
	"walt/internal/pkg/config"
	"walt/pkg/logger"
	"walt/pkg/logger/nop"
	"walt/pkg/logger/zap_adapter"
)

// seedEnv - ключи, у которых переменная окружения не выводится из имени флага.
var seedEnv = map[string]string{
	"storage": "STORAGE_DRIVER",
	"migrate": "MIGRATE_ON_START",
}

type seedCmd struct {
	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	s := &seedCmd{v: viper.New()}

	root := &cobra.Command{
		Use:           "seed",
		Short:         "Fills walt storage with cities, drivers, customers and orders",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.String("storage", config.StorageDriverPostgres, "storage driver postgres|memory")
	flags.Bool("migrate", false, "apply schema migrations before seeding")
	flags.Bool("verbose", false, "write service logs to stdout")
	flags.String("log-level", "info", "log level for --verbose")
	flags.Int64("seed", 42, "random seed for generated data")
	flags.String("distance-mode", "random", "distance calculator random|fixed")
	flags.Int64("distance-max", 0, "upper bound of a random distance")
	flags.Int64("distance-fixed-value", 0, "distance for fixed mode")

	s.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	s.v.AutomaticEnv()
	for key, env := range seedEnv {
		_ = s.v.BindEnv(key, env)
	}
	cobra.CheckErr(s.v.BindPFlags(flags))

	root.AddCommand(
		s.fixturesCmd(),
		s.driversCmd(),
		s.ordersCmd(),
	)
	return root
}

func (s *seedCmd) config() *config.Config {
	return &config.Config{
		LogLevel: s.v.GetString("log-level"),
		Storage: config.Storage{
			Driver:         s.v.GetString("storage"),
			MigrateOnStart: s.v.GetBool("migrate"),
		},
		Database: config.Database{
			Host:     s.v.GetString("postgres-host"),
			Port:     s.v.GetString("postgres-port"),
			User:     s.v.GetString("postgres-user"),
			Password: s.v.GetString("postgres-password"),
			DBName:   s.v.GetString("postgres-db"),
			SSLMode:  s.v.GetString("postgres-sslmode"),
		},
		Distance: config.Distance{
			Mode:        s.v.GetString("distance-mode"),
			MaxDistance: s.v.GetInt64("distance-max"),
			FixedValue:  s.v.GetInt64("distance-fixed-value"),
		},
		Kafka: config.Kafka{
			Brokers: s.v.GetString("kafka-brokers"),
			Sarama: config.Sarama{
				Version: s.v.GetString("kafka-sarama-version"),
			},
			Producer: config.KafkaProducer{
				Topic: s.v.GetString("kafka-producer-topic"),
			},
		},
	}
}

func (s *seedCmd) logger(cfg *config.Config) (logger.Logger, func(), error) {
	if !s.v.GetBool("verbose") {
		return nop.New(), func() {}, nil
	}

	zapLogger, err := zap_adapter.NewZapAdapter("seed", cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}
	return zapLogger, func() { _ = zapLogger.Sync() }, nil
}

// withApp собирает сервисы поверх выбранного хранилища и закрывает их после fn.
func (s *seedCmd) withApp(ctx context.Context, fn func(seedApp *app.SeedApp, log logger.Logger) error) error {
	cfg := s.config()

	log, syncLog, err := s.logger(cfg)
	if err != nil {
		return err
	}
	defer syncLog()

	seedApp, cleanup, err := app.InitializeSeedApp(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	defer cleanup()

	return fn(seedApp, log)
}

func (s *seedCmd) faker() faker.Faker {
	return faker.NewWithSeed(rand.NewSource(s.v.GetInt64("seed")))
}

func newProgressBar(out io.Writer, total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}
