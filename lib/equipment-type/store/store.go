package equipmenttypestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "komreq-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.EquipmentType) (id uint, err error)
	GetByID(id uint) (rec *dbmodels.EquipmentType, err error)
	FindByName(name string) (rec *dbmodels.EquipmentType, err error)
	Update(id uint, updMap map[string]interface{}) error
	List(onlyActive bool) (list []dbmodels.EquipmentType, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.EquipmentType) (id uint, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id uint) (*dbmodels.EquipmentType, error) {
	rec := dbmodels.EquipmentType{}
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

func (i impl) FindByName(name string) (*dbmodels.EquipmentType, error) {
	rec := dbmodels.EquipmentType{}
	err := i.db.
		Where("LOWER(name) = LOWER(?)", name).
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
		Model(&dbmodels.EquipmentType{}).
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

func (i impl) List(onlyActive bool) (list []dbmodels.EquipmentType, err error) {
	list = []dbmodels.EquipmentType{}
	tx := i.db.Model(&dbmodels.EquipmentType{})
	if onlyActive {
		tx = tx.Where("is_active = ?", true)
	}
	err = tx.Order("name").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
