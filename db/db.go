package db

import (
	"fmt"

	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

type ConnParams struct {
	Host      string
	Port      string
	Database  string
	User      string
	Password  string
	DebugMode bool
	Migrate   bool
}

func (p ConnParams) dsn() string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s TimeZone=UTC",
		p.Host, p.Port, p.User, p.Database, p.Password)
}

func Connect(params ConnParams) (err error) {
	if DB != nil {
		return nil
	}
	conn, err := gorm.Open(postgres.Open(params.dsn()), &gorm.Config{
		Logger: gorm_logrus.New(),
	})
	if err != nil {
		return errors.Wrap(err, "Ошибка подключения к БД")
	}
	if params.DebugMode {
		conn.Logger = logger.Default.LogMode(logger.Info)
		DB = conn.Debug()
	} else {
		DB = conn
	}
	if params.Migrate {
		if err = AutoMigrateDB(); err != nil {
			return err
		}
	}
	log.WithField("db_host", params.Host).
		WithField("db_name", params.Database).
		Info("Сервис успешно подключен к БД")
	return nil
}

func PingDB() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
