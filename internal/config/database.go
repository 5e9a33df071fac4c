package config

import (
	"context"
	"fmt"
	"time"

	"takuezy-housing/internal/adapters/persistence/models"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectMongo connects to the document store and returns the configured database
func ConnectMongo(ctx context.Context, cfg *Config, log *logrus.Logger) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Database.URL))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	log.WithField("database", cfg.Database.Name).Info("✅ Connected to MongoDB")
	return client, client.Database(cfg.Database.Name), nil
}

// ConnectAudit opens the SQL audit store and migrates its tables.
// It returns nil when no audit store is configured.
func ConnectAudit(cfg *Config, log *logrus.Logger) (*gorm.DB, error) {
	if !cfg.Audit.Enabled() {
		log.Info("ℹ️ Audit store not configured, audit log disabled")
		return nil, nil
	}

	var dialector gorm.Dialector
	switch cfg.Audit.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.Audit.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.Audit.DSN)
	default:
		return nil, fmt.Errorf("unsupported audit driver %q", cfg.Audit.Driver)
	}

	gormLogger := logger.Default.LogMode(logger.Error)
	if cfg.IsDev() {
		gormLogger = logger.Default.LogMode(logger.Warn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to audit database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping audit database: %w", err)
	}

	if err := models.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate audit tables: %w", err)
	}

	log.WithField("driver", cfg.Audit.Driver).Info("✅ Audit database connected")
	return db, nil
}

// CloseAudit closes the audit store connection pool
func CloseAudit(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
