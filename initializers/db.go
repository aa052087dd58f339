package initializers

import (
	"time"

	"ats-backend/config"
	"ats-backend/db"
)

func InitDBConnection() {
	pool := db.PoolSettings{
		MaxOpenConns:    config.Conf.Database.MaxOpenConns,
		MaxIdleConns:    config.Conf.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(config.Conf.Database.ConnMaxLifetimeSec) * time.Second,
	}
	err := db.Connect(config.Conf.Database.Host, config.Conf.Database.Port, config.Conf.Database.Name,
		config.Conf.Database.User, config.Conf.Database.Password, *config.Conf.Database.DebugMode, pool)
	if err != nil {
		panic(err.Error())
	}
}

func InitPreload() {
	db.InitPreload()
}
