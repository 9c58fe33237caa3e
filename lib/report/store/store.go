package reportstore

import (
	"gorm.io/gorm"
	dbmodels "komreq-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Report) (id uint, err error)
	List(userID string, limit int) (list []dbmodels.Report, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Report) (id uint, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) List(userID string, limit int) (list []dbmodels.Report, err error) {
	list = []dbmodels.Report{}
	tx := i.db.Order("generated_at desc")
	if userID != "" {
		tx = tx.Where("generated_by_user_id = ?", userID)
	}
	err = tx.Limit(limit).Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
