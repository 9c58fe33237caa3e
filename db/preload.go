package db

import (
	"komreq-backend/config"
	requeststatusstore "komreq-backend/lib/request-status/store"
	usersstore "komreq-backend/lib/users/store"
	authutils "komreq-backend/lib/utils/auth-utils"
	"komreq-backend/models"
	dbmodels "komreq-backend/models/db"

	log "github.com/sirupsen/logrus"
)

func InitPreload() {
	fillRequestStatuses()
	addAdmin()
}

var requestStatuses = []dbmodels.RequestStatus{
	{BaseIntModel: dbmodels.BaseIntModel{ID: models.StatusNew}, Name: "Новая", Description: "Заявка создана", OrderNum: 1},
	{BaseIntModel: dbmodels.BaseIntModel{ID: models.StatusInProcessing}, Name: "В обработке", Description: "Заявка принята менеджером", OrderNum: 2},
	{BaseIntModel: dbmodels.BaseIntModel{ID: models.StatusInProgress}, Name: "В работе", Description: "Заявка выполняется", OrderNum: 3},
	{BaseIntModel: dbmodels.BaseIntModel{ID: models.StatusAdjustment}, Name: "Доработка", Description: "Требуется доработка", OrderNum: 4},
	{BaseIntModel: dbmodels.BaseIntModel{ID: models.StatusCompleted}, Name: "Завершена", Description: "Заявка выполнена", IsFinal: true, OrderNum: 5},
	{BaseIntModel: dbmodels.BaseIntModel{ID: models.StatusCancelled}, Name: "Отменена", Description: "Заявка отменена", IsFinal: true, OrderNum: 6},
}

func fillRequestStatuses() {
	store := requeststatusstore.NewInstance(DB)
	for _, rec := range requestStatuses {
		if err := store.Save(rec); err != nil {
			log.WithError(err).
				WithField("status_id", rec.ID).
				Error("ошибка заполнения справочника статусов заявки")
			return
		}
	}
}

func addAdmin() {
	if config.Conf.Admin.Password == "" {
		log.Warn("администратор не добавлен, отсутвует настройка ADMIN_PASSWORD")
		return
	}
	store := usersstore.NewInstance(DB)
	existedRec, err := store.FindByUserName(config.Conf.Admin.UserName)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
		return
	}
	if existedRec != nil {
		return
	}
	password, err := authutils.HashPassword(config.Conf.Admin.Password)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
		return
	}
	rec := dbmodels.User{
		UserName: config.Conf.Admin.UserName,
		Email:    config.Conf.Admin.Email,
		FullName: config.Conf.Admin.FullName,
		Password: password,
		IsActive: true,
	}
	_, err = store.Create(rec, []models.UserRole{models.AdminRole})
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
		return
	}
	log.WithField("user_name", rec.UserName).Info("добавлен администратор")
}
