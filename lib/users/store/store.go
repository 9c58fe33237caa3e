package usersstore

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"komreq-backend/models"
	usersapimodels "komreq-backend/models/api/users"
	dbmodels "komreq-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.User, roles []models.UserRole) (id string, err error)
	GetByID(id string) (rec *dbmodels.User, err error)
	FindByUserName(userName string) (rec *dbmodels.User, err error)
	FindByEmail(email string) (rec *dbmodels.User, err error)
	Update(id string, updMap map[string]interface{}) error
	SetRole(id string, role models.UserRole) error
	List(filter usersapimodels.UserFilter) (list []dbmodels.User, rowCount int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User, roles []models.UserRole) (id string, err error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Roles").Create(&rec).Error; err != nil {
			return err
		}
		for _, role := range roles {
			link := dbmodels.UserRoleLink{UserID: rec.ID, Role: role}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.User, error) {
	return i.first(i.db.Where("id = ?", id))
}

func (i impl) FindByUserName(userName string) (*dbmodels.User, error) {
	return i.first(i.db.Where("LOWER(user_name) = LOWER(?)", userName))
}

func (i impl) FindByEmail(email string) (*dbmodels.User, error) {
	return i.first(i.db.Where("LOWER(email) = LOWER(?)", email))
}

func (i impl) first(tx *gorm.DB) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := tx.
		Preload("Roles").
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.User{}).
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

func (i impl) SetRole(id string, role models.UserRole) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("user_id = ?", id).
			Delete(&dbmodels.UserRoleLink{}).
			Error
		if err != nil {
			return err
		}
		link := dbmodels.UserRoleLink{UserID: id, Role: role}
		return tx.Create(&link).Error
	})
}

func (i impl) List(filter usersapimodels.UserFilter) (list []dbmodels.User, rowCount int64, err error) {
	tx := i.db.Model(&dbmodels.User{})
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		tx = tx.Where("user_name ILIKE ? OR full_name ILIKE ? OR email ILIKE ?", search, search, search)
	}
	if filter.Role != "" {
		tx = tx.Where("id IN (?)", i.db.Model(&dbmodels.UserRoleLink{}).Select("user_id").Where("role = ?", filter.Role))
	}
	if filter.OnlyActive {
		tx = tx.Where("is_active = ?", true)
	}
	if err = tx.Count(&rowCount).Error; err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	list = []dbmodels.User{}
	err = tx.
		Preload("Roles").
		Order("full_name").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}
