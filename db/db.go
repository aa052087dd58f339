package db

import (
	"context"
	"fmt"
	"time"

	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

type PoolSettings struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func Connect(host string, port string, database string, user string, pass string, debugMode bool, pool PoolSettings) (err error) {
	if DB == nil {
		dbConnString := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", host, port, user, database, pass)
		db, err := gorm.Open(postgres.Open(dbConnString), &gorm.Config{
			Logger: gorm_logrus.New(),
		})
		if err != nil {
			return errors.Wrap(err, "database connection failed")
		}
		if debugMode {
			db.Logger = logger.Default.LogMode(logger.Info)
		}
		if err = ApplyPool(db, pool); err != nil {
			return err
		}
		if debugMode {
			DB = db.Debug()
		} else {
			DB = db
		}
		log.Info("database connected")
	}
	return nil
}

// ApplyPool sets connection pool limits on the underlying sql.DB.
func ApplyPool(db *gorm.DB, pool PoolSettings) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "unable to get sql connection pool")
	}
	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}
	return nil
}

func Ping(ctx context.Context, conn *gorm.DB) error {
	if conn == nil {
		return errors.New("database is not initialized")
	}
	db, err := conn.DB()
	if err != nil {
		return err
	}
	if err = db.PingContext(ctx); err != nil {
		return err
	}
	return nil
}

func Close() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return
	}
	if err = sqlDB.Close(); err != nil {
		log.WithError(err).Warn("error closing database connection")
	}
}
