package notificationstore

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"komreq-backend/models"
	notificationapimodels "komreq-backend/models/api/notification"
	dbmodels "komreq-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Notification) (id uint, err error)
	List(userID string, filter notificationapimodels.NotificationFilter) (list []dbmodels.Notification, rowCount int64, err error)
	MarkRead(userID string, id uint) (found bool, err error)
	MarkAllRead(userID string) error
	SetDeliveryStatus(ids []uint, status models.DeliveryStatus) error
	ListPending(sentBefore time.Time, limit int) (list []dbmodels.Notification, err error)
	ListPendingByUser(userID string) (list []dbmodels.Notification, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) (id uint, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) List(userID string, filter notificationapimodels.NotificationFilter) (list []dbmodels.Notification, rowCount int64, err error) {
	tx := i.db.
		Model(&dbmodels.Notification{}).
		Where("user_id = ?", userID)
	if filter.UnreadOnly {
		tx = tx.Where("is_read = ?", false)
	}
	if err = tx.Count(&rowCount).Error; err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	list = []dbmodels.Notification{}
	err = tx.
		Order("sent_date desc, id desc").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) MarkRead(userID string, id uint) (found bool, err error) {
	tx := i.db.
		Model(&dbmodels.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if err = tx.Error; err != nil {
		return false, err
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) MarkAllRead(userID string) error {
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).
		Error
}

func (i impl) SetDeliveryStatus(ids []uint, status models.DeliveryStatus) error {
	if len(ids) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("id IN ?", ids).
		Update("delivery_status", status).
		Error
}

func (i impl) ListPending(sentBefore time.Time, limit int) (list []dbmodels.Notification, err error) {
	list = []dbmodels.Notification{}
	err = i.db.
		Where("delivery_status = ?", models.DeliveryPending).
		Where("sent_date <= ?", sentBefore).
		Preload("User").
		Order("sent_date").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListPendingByUser(userID string) (list []dbmodels.Notification, err error) {
	list = []dbmodels.Notification{}
	err = i.db.
		Where("user_id = ? AND delivery_status = ?", userID, models.DeliveryPending).
		Order("sent_date").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
