package initializers

import (
	"komreq-backend/config"
	"komreq-backend/db"
)

func InitDBConnection() {
	err := db.Connect(db.ConnParams{
		Host:      config.Conf.Database.Host,
		Port:      config.Conf.Database.Port,
		Database:  config.Conf.Database.Name,
		User:      config.Conf.Database.User,
		Password:  config.Conf.Database.Password,
		DebugMode: *config.Conf.Database.DebugMode,
		Migrate:   *config.Conf.Database.MigrateOnStart,
	})
	if err != nil {
		panic(err.Error())
	}

	db.InitPreload()
}
