package auditlogstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	auditlogapimodels "komreq-backend/models/api/audit-log"
	dbmodels "komreq-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.AuditLog) (id uint, err error)
	GetByID(id uint) (rec *dbmodels.AuditLog, err error)
	List(filter auditlogapimodels.AuditLogFilter) (list []dbmodels.AuditLog, rowCount int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AuditLog) (id uint, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id uint) (*dbmodels.AuditLog, error) {
	rec := dbmodels.AuditLog{}
	err := i.db.
		Where("id = ?", id).
		Preload("User").
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

func (i impl) List(filter auditlogapimodels.AuditLogFilter) (list []dbmodels.AuditLog, rowCount int64, err error) {
	tx := i.db.Model(&dbmodels.AuditLog{})
	if filter.UserID != "" {
		tx = tx.Where("user_id = ?", filter.UserID)
	}
	if filter.Action != "" {
		tx = tx.Where("action ILIKE ?", "%"+filter.Action+"%")
	}
	from, to := filter.DateRange()
	if from != nil {
		tx = tx.Where("timestamp >= ?", *from)
	}
	if to != nil {
		tx = tx.Where("timestamp < ?", *to)
	}
	if err = tx.Count(&rowCount).Error; err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	list = []dbmodels.AuditLog{}
	err = tx.
		Preload("User").
		Order("timestamp desc, id desc").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}
