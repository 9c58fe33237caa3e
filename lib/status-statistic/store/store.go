package statusstatisticstore

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "komreq-backend/models/db"
)

type Provider interface {
	Upsert(rec dbmodels.StatusStatistic) error
	List(from, to *time.Time) (list []dbmodels.StatusStatistic, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Upsert перезаписывает значения за день по статусу
func (i impl) Upsert(rec dbmodels.StatusStatistic) error {
	return i.db.
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "status_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"count_requests", "avg_completion_days"}),
		}).
		Create(&rec).
		Error
}

func (i impl) List(from, to *time.Time) (list []dbmodels.StatusStatistic, err error) {
	list = []dbmodels.StatusStatistic{}
	tx := i.db.Preload("Status")
	if from != nil {
		tx = tx.Where("date >= ?", *from)
	}
	if to != nil {
		tx = tx.Where("date < ?", *to)
	}
	err = tx.Order("date, status_id").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
