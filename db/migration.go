package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "komreq-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.User{}, &dbmodels.UserRoleLink{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры User")
	}
	if err := DB.AutoMigrate(&dbmodels.RequestStatus{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры RequestStatus")
	}
	if err := DB.AutoMigrate(&dbmodels.EquipmentType{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры EquipmentType")
	}
	if err := DB.AutoMigrate(&dbmodels.Request{}, &dbmodels.RequestAssignment{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Request")
	}
	if err := DB.AutoMigrate(&dbmodels.RequestHistory{}, &dbmodels.RequestFile{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры RequestHistory")
	}
	if err := DB.AutoMigrate(&dbmodels.Notification{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Notification")
	}
	if err := DB.AutoMigrate(&dbmodels.AuditLog{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры AuditLog")
	}
	if err := DB.AutoMigrate(&dbmodels.StatusStatistic{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры StatusStatistic")
	}
	if err := DB.AutoMigrate(&dbmodels.Report{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Report")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
