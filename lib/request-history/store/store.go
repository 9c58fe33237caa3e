package requesthistorystore

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "komreq-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.RequestHistory) (id uint, err error)
	ListByRequest(requestID uint) (list []dbmodels.RequestHistory, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.RequestHistory) (id uint, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) ListByRequest(requestID uint) (list []dbmodels.RequestHistory, err error) {
	list = []dbmodels.RequestHistory{}
	err = i.db.
		Where("request_id = ?", requestID).
		Preload(clause.Associations).
		Order("change_date, id").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
