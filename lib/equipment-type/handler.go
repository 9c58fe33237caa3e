package equipmenttypehandler

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"komreq-backend/db"
	auditloghandler "komreq-backend/lib/audit-log"
	equipmenttypestore "komreq-backend/lib/equipment-type/store"
	"komreq-backend/models"
	equipmenttypeapimodels "komreq-backend/models/api/equipment-type"
	dbmodels "komreq-backend/models/db"
)

type Provider interface {
	ListActive() ([]equipmenttypeapimodels.EquipmentTypeShortView, error)
	ListAll() ([]equipmenttypeapimodels.EquipmentTypeView, error)
	Get(id uint) (equipmenttypeapimodels.EquipmentTypeView, error)
	Create(caller models.Caller, data equipmenttypeapimodels.EquipmentTypeData) (id uint, err error)
	Update(caller models.Caller, id uint, data equipmenttypeapimodels.EquipmentTypeUpdateData) error
	Delete(caller models.Caller, id uint) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: equipmenttypestore.NewInstance(db.DB),
		audit: auditloghandler.Instance,
	}
}

type impl struct {
	store equipmenttypestore.Provider
	audit auditloghandler.Provider
}

const emptySpecifications = "{}"

// NormalizeJSON корректный JSON сохраняется как есть (без крайних пробелов), остальное кодируется JSON строкой.
// Пустое значение и null хранятся как пустой объект
func NormalizeJSON(raw []byte) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return emptySpecifications
	}
	if json.Valid(trimmed) {
		return string(trimmed)
	}
	encoded, _ := json.Marshal(string(trimmed))
	return string(encoded)
}

func (i impl) ListActive() ([]equipmenttypeapimodels.EquipmentTypeShortView, error) {
	list, err := i.store.List(true)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка типов оборудования")
	}
	result := make([]equipmenttypeapimodels.EquipmentTypeShortView, 0, len(list))
	for _, rec := range list {
		result = append(result, equipmenttypeapimodels.EquipmentTypeShortView{
			ID:   rec.ID,
			Name: rec.Name,
		})
	}
	return result, nil
}

func (i impl) ListAll() ([]equipmenttypeapimodels.EquipmentTypeView, error) {
	list, err := i.store.List(false)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка типов оборудования")
	}
	result := make([]equipmenttypeapimodels.EquipmentTypeView, 0, len(list))
	for _, rec := range list {
		result = append(result, equipmenttypeapimodels.EquipmentTypeConvert(rec))
	}
	return result, nil
}

func (i impl) Get(id uint) (equipmenttypeapimodels.EquipmentTypeView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return equipmenttypeapimodels.EquipmentTypeView{}, errors.Wrap(err, "ошибка получения типа оборудования")
	}
	if rec == nil {
		return equipmenttypeapimodels.EquipmentTypeView{}, models.NewNotFound("тип оборудования не найден")
	}
	return equipmenttypeapimodels.EquipmentTypeConvert(*rec), nil
}

func (i impl) Create(caller models.Caller, data equipmenttypeapimodels.EquipmentTypeData) (id uint, err error) {
	name := strings.TrimSpace(data.Name)
	if err = i.checkUnique(0, name); err != nil {
		return 0, err
	}
	rec := dbmodels.EquipmentType{
		Name:           name,
		Description:    data.Description,
		Specifications: NormalizeJSON(data.Specifications),
		Price:          data.Price,
		IsActive:       true,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return 0, errors.Wrap(err, "ошибка создания типа оборудования")
	}
	changes := dbmodels.EntityChanges{}
	changes.Add("name", nil, rec.Name)
	changes.Add("price", nil, rec.Price)
	i.audit.Save(auditloghandler.NewRecord(caller, auditloghandler.OpCreate, auditloghandler.EntityEquipmentTypes, id, changes))
	log.WithField("equipment_type_id", id).
		WithField("name", rec.Name).
		Info("создан тип оборудования")
	return id, nil
}

func (i impl) Update(caller models.Caller, id uint, data equipmenttypeapimodels.EquipmentTypeUpdateData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "ошибка получения типа оборудования")
	}
	if rec == nil {
		return models.NewNotFound("тип оборудования не найден")
	}
	updMap := map[string]interface{}{}
	changes := dbmodels.EntityChanges{}
	if data.Name != nil {
		name := strings.TrimSpace(*data.Name)
		if name != rec.Name {
			if err = i.checkUnique(id, name); err != nil {
				return err
			}
			updMap["name"] = name
			changes.Add("name", rec.Name, name)
		}
	}
	if data.Description != nil && *data.Description != rec.Description {
		updMap["description"] = *data.Description
		changes.Add("description", rec.Description, *data.Description)
	}
	if data.Specifications != nil {
		specifications := NormalizeJSON(data.Specifications)
		if specifications != rec.Specifications {
			updMap["specifications"] = specifications
			changes.Add("specifications", rec.Specifications, specifications)
		}
	}
	if data.Price != nil && *data.Price != rec.Price {
		updMap["price"] = *data.Price
		changes.Add("price", rec.Price, *data.Price)
	}
	if data.IsActive != nil && *data.IsActive != rec.IsActive {
		updMap["is_active"] = *data.IsActive
		changes.Add("is_active", rec.IsActive, *data.IsActive)
	}
	if len(updMap) == 0 {
		return nil
	}
	if err = i.store.Update(id, updMap); err != nil {
		return errors.Wrap(err, "ошибка обновления типа оборудования")
	}
	i.audit.Save(auditloghandler.NewRecord(caller, auditloghandler.OpUpdate, auditloghandler.EntityEquipmentTypes, id, changes))
	log.WithField("equipment_type_id", id).Info("обновлен тип оборудования")
	return nil
}

// Delete тип оборудования не удаляется физически, на него ссылаются заявки
func (i impl) Delete(caller models.Caller, id uint) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "ошибка получения типа оборудования")
	}
	if rec == nil || !rec.IsActive {
		return models.NewNotFound("тип оборудования не найден")
	}
	if err = i.store.Update(id, map[string]interface{}{"is_active": false}); err != nil {
		return errors.Wrap(err, "ошибка удаления типа оборудования")
	}
	changes := dbmodels.EntityChanges{}
	changes.Add("is_active", true, false)
	i.audit.Save(auditloghandler.NewRecord(caller, auditloghandler.OpDelete, auditloghandler.EntityEquipmentTypes, id, changes))
	log.WithField("equipment_type_id", id).Info("удален тип оборудования")
	return nil
}

func (i impl) checkUnique(id uint, name string) error {
	found, err := i.store.FindByName(name)
	if err != nil {
		return errors.Wrap(err, "ошибка проверки названия типа оборудования")
	}
	if found != nil && found.ID != id {
		return models.NewConflict("тип оборудования «%v» уже существует", name)
	}
	return nil
}
