package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-TravelBooking/internal/config"
	bookingRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/catalog"
	rateTableRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/ratetable"
	"github.com/m04kA/SMC-TravelBooking/pkg/logger"
	"github.com/m04kA/SMC-TravelBooking/pkg/txmanager"
)

func migrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Создать схему каталога, тарифных таблиц и индексы бронирований",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context(), *configPath)
		},
	}
}

func runMigrate(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.close(log)

	// 1. Каталог (GORM)
	if err := catalogRepo.NewRepository(st.gormDB).AutoMigrate(); err != nil {
		return fmt.Errorf("migrate catalog: %w", err)
	}
	log.Info("Catalog schema is up to date")

	// 2. Тарифные таблицы
	if err := rateTableRepo.NewRepository(st.db, txmanager.New(st.db)).EnsureSchema(ctx); err != nil {
		return fmt.Errorf("migrate rate tables: %w", err)
	}
	log.Info("Rate table schema is up to date")

	// 3. Индексы бронирований
	if err := bookingRepo.NewRepository(st.bookings, cfg.Mongo.Collection).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure booking indexes: %w", err)
	}
	log.Info("Booking indexes are up to date")

	return nil
}
