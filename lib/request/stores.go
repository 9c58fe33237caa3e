package requesthandler

import (
	"gorm.io/gorm"
	"komreq-backend/db"
	auditlogstore "komreq-backend/lib/audit-log/store"
	equipmenttypestore "komreq-backend/lib/equipment-type/store"
	notificationstore "komreq-backend/lib/notification/store"
	requesthistorystore "komreq-backend/lib/request-history/store"
	requeststatusstore "komreq-backend/lib/request-status/store"
	requestassignmentstore "komreq-backend/lib/request/assignment-store"
	requestfilestore "komreq-backend/lib/request/file-store"
	requeststore "komreq-backend/lib/request/store"
	statusstatisticstore "komreq-backend/lib/status-statistic/store"
	usersstore "komreq-backend/lib/users/store"
)

// Stores хранилища, участвующие в операциях над заявкой
type Stores struct {
	Request       requeststore.Provider
	Assignment    requestassignmentstore.Provider
	File          requestfilestore.Provider
	History       requesthistorystore.Provider
	Notification  notificationstore.Provider
	Audit         auditlogstore.Provider
	Statistic     statusstatisticstore.Provider
	User          usersstore.Provider
	EquipmentType equipmenttypestore.Provider
	Status        requeststatusstore.Provider
}

func NewStores(tx *gorm.DB) Stores {
	return Stores{
		Request:       requeststore.NewInstance(tx),
		Assignment:    requestassignmentstore.NewInstance(tx),
		File:          requestfilestore.NewInstance(tx),
		History:       requesthistorystore.NewInstance(tx),
		Notification:  notificationstore.NewInstance(tx),
		Audit:         auditlogstore.NewInstance(tx),
		Statistic:     statusstatisticstore.NewInstance(tx),
		User:          usersstore.NewInstance(tx),
		EquipmentType: equipmenttypestore.NewInstance(tx),
		Status:        requeststatusstore.NewInstance(tx),
	}
}

// TxRunner выполняет fn в одной транзакции
type TxRunner func(fn func(stores Stores) error) error

func gormTxRunner(conn *gorm.DB) TxRunner {
	return func(fn func(stores Stores) error) error {
		return conn.Transaction(func(tx *gorm.DB) error {
			return fn(NewStores(tx))
		})
	}
}

func defaultStores() Stores {
	return NewStores(db.DB)
}

func defaultTxRunner() TxRunner {
	return gormTxRunner(db.DB)
}
