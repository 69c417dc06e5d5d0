package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/m04kA/SMC-TravelBooking/internal/config"
	"github.com/m04kA/SMC-TravelBooking/internal/infra/mongodb"
	"github.com/m04kA/SMC-TravelBooking/pkg/logger"
)

// stores открытые соединения с хранилищами
type stores struct {
	db       *sql.DB
	gormDB   *gorm.DB
	mongo    *mongo.Client
	bookings *mongo.Database
}

// openStores подключается к PostgreSQL (каталог и тарифы) и MongoDB (бронирования)
func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// GORM работает поверх того же пула
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	mongoClient, err := mongodb.Connect(ctx, cfg.Mongo.URI, time.Duration(cfg.Mongo.ConnectTimeout)*time.Second)
	if err != nil {
		db.Close()
		return nil, err
	}
	log.Info("Successfully connected to MongoDB (db=%s, collection=%s)", cfg.Mongo.Database, cfg.Mongo.Collection)

	return &stores{
		db:       db,
		gormDB:   gormDB,
		mongo:    mongoClient,
		bookings: mongoClient.Database(cfg.Mongo.Database),
	}, nil
}

func (s *stores) close(log *logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.mongo.Disconnect(ctx); err != nil {
		log.Error("Failed to disconnect from MongoDB: %v", err)
	}
	if err := s.db.Close(); err != nil {
		log.Error("Failed to close database: %v", err)
	}
}
