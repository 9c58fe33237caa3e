package requeststore

import (
	"database/sql"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	requestapimodels "komreq-backend/models/api/request"
	dbmodels "komreq-backend/models/db"
)

// Scope ограничение видимости заявок для пользователя
type Scope struct {
	CreatorID      string // только заявки клиента
	AssignedUserID string // только заявки, на которые назначен пользователь
}

type Provider interface {
	Create(rec dbmodels.Request) (id uint, err error)
	GetByID(id uint) (rec *dbmodels.Request, err error)
	Update(id uint, updMap map[string]interface{}) error
	List(filter requestapimodels.RequestFilter, scope Scope) (list []dbmodels.Request, rowCount int64, err error)
	ListAll(filter requestapimodels.RequestFilter, scope Scope) (list []dbmodels.Request, err error)
	CountActiveByStatus(statusID uint) (int64, error)
	AvgCompletionDays(statusID uint) (*float64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Request) (id uint, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id uint) (*dbmodels.Request, error) {
	rec := dbmodels.Request{}
	err := i.preload(i.db).
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

func (i impl) Update(id uint, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Request{}).
		Where("id = ?", id).
		Updates(updMap)
	if err := tx.Error; err != nil {
		return err
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) List(filter requestapimodels.RequestFilter, scope Scope) (list []dbmodels.Request, rowCount int64, err error) {
	tx := i.filter(i.db.Model(&dbmodels.Request{}), filter, scope)
	if err = tx.Count(&rowCount).Error; err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	list = []dbmodels.Request{}
	err = i.preload(tx).
		Order("created_date desc").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) ListAll(filter requestapimodels.RequestFilter, scope Scope) (list []dbmodels.Request, err error) {
	tx := i.filter(i.db.Model(&dbmodels.Request{}), filter, scope)
	list = []dbmodels.Request{}
	err = i.preload(tx).
		Order("id").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CountActiveByStatus(statusID uint) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.Request{}).
		Where("is_active = ?", true).
		Where("current_status_id = ?", statusID).
		Count(&count).
		Error
	return count, err
}

func (i impl) AvgCompletionDays(statusID uint) (*float64, error) {
	var avg sql.NullFloat64
	err := i.db.
		Model(&dbmodels.Request{}).
		Select("AVG(EXTRACT(EPOCH FROM (status_changed_at - created_date)) / 86400)").
		Where("is_active = ?", true).
		Where("current_status_id = ?", statusID).
		Row().
		Scan(&avg)
	if err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

func (i impl) preload(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Creator").
		Preload("Manager").
		Preload("EquipmentType").
		Preload("CurrentStatus").
		Preload("Assignments.User")
}

func (i impl) filter(tx *gorm.DB, filter requestapimodels.RequestFilter, scope Scope) *gorm.DB {
	tx = tx.Where("is_active = ?", true)
	if filter.StatusID != 0 {
		tx = tx.Where("current_status_id = ?", filter.StatusID)
	}
	if filter.Priority != "" {
		tx = tx.Where("priority = ?", filter.Priority)
	}
	if filter.ClientUserID != "" {
		tx = tx.Where("creator_id = ?", filter.ClientUserID)
	}
	from, to := filter.DateRange()
	if from != nil {
		tx = tx.Where("created_date >= ?", *from)
	}
	if to != nil {
		tx = tx.Where("created_date < ?", *to)
	}
	if scope.CreatorID != "" {
		tx = tx.Where("creator_id = ?", scope.CreatorID)
	}
	if scope.AssignedUserID != "" {
		tx = tx.Where("id IN (?)", i.db.
			Model(&dbmodels.RequestAssignment{}).
			Select("request_id").
			Where("user_id = ?", scope.AssignedUserID))
	}
	return tx
}
