package requeststatusstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "komreq-backend/models/db"
)

type Provider interface {
	GetByID(id uint) (rec *dbmodels.RequestStatus, err error)
	List() (list []dbmodels.RequestStatus, err error)
	Save(rec dbmodels.RequestStatus) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByID(id uint) (*dbmodels.RequestStatus, error) {
	rec := dbmodels.RequestStatus{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List() (list []dbmodels.RequestStatus, err error) {
	list = []dbmodels.RequestStatus{}
	err = i.db.Order("order_num").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Save добавляет статус или обновляет его описание
func (i impl) Save(rec dbmodels.RequestStatus) error {
	return i.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "description", "is_final", "order_num"}),
		}).
		Create(&rec).
		Error
}
