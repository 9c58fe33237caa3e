package requestassignmentstore

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"komreq-backend/models"
	dbmodels "komreq-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.RequestAssignment) (id uint, err error)
	Exists(requestID uint, userID string, role models.UserRole) (bool, error)
	ListByRequest(requestID uint) (list []dbmodels.RequestAssignment, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.RequestAssignment) (id uint, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) Exists(requestID uint, userID string, role models.UserRole) (bool, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.RequestAssignment{}).
		Where("request_id = ? AND user_id = ? AND role_in_request = ?", requestID, userID, role).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (i impl) ListByRequest(requestID uint) (list []dbmodels.RequestAssignment, err error) {
	list = []dbmodels.RequestAssignment{}
	err = i.db.
		Where("request_id = ?", requestID).
		Preload("User").
		Order("assigned_date").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
