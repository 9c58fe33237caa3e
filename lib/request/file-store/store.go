package requestfilestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "komreq-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.RequestFile) (id uint, err error)
	GetByID(requestID, id uint) (rec *dbmodels.RequestFile, err error)
	List(requestID uint, withConfidential bool) (list []dbmodels.RequestFile, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.RequestFile) (id uint, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) GetByID(requestID, id uint) (*dbmodels.RequestFile, error) {
	rec := dbmodels.RequestFile{}
	err := i.db.
		Where("id = ? AND request_id = ?", id, requestID).
		Preload("UploadedBy").
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

func (i impl) List(requestID uint, withConfidential bool) (list []dbmodels.RequestFile, err error) {
	list = []dbmodels.RequestFile{}
	tx := i.db.
		Where("request_id = ?", requestID).
		Preload("UploadedBy")
	if !withConfidential {
		tx = tx.Where("is_confidential = ?", false)
	}
	err = tx.Order("uploaded_date").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
