package equipmenttypeapimodels

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"
	dbmodels "komreq-backend/models/db"
)

const maxNameLen = 150

type EquipmentTypeData struct {
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Specifications json.RawMessage `json:"specifications" swaggertype:"object"`
	Price          float64         `json:"price"`
}

func (r EquipmentTypeData) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("не указано название типа оборудования")
	}
	if len([]rune(r.Name)) > maxNameLen {
		return errors.Errorf("название не должно превышать %d символов", maxNameLen)
	}
	if r.Price < 0 {
		return errors.New("цена не может быть отрицательной")
	}
	return nil
}

// EquipmentTypeUpdateData заполненные поля обновляются
type EquipmentTypeUpdateData struct {
	Name           *string         `json:"name"`
	Description    *string         `json:"description"`
	Specifications json.RawMessage `json:"specifications" swaggertype:"object"`
	Price          *float64        `json:"price"`
	IsActive       *bool           `json:"is_active"`
}

func (r EquipmentTypeUpdateData) Validate() error {
	if r.Name != nil {
		if strings.TrimSpace(*r.Name) == "" {
			return errors.New("не указано название типа оборудования")
		}
		if len([]rune(*r.Name)) > maxNameLen {
			return errors.Errorf("название не должно превышать %d символов", maxNameLen)
		}
	}
	if r.Price != nil && *r.Price < 0 {
		return errors.New("цена не может быть отрицательной")
	}
	return nil
}

type EquipmentTypeShortView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type EquipmentTypeView struct {
	ID             uint            `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Specifications json.RawMessage `json:"specifications" swaggertype:"object"`
	Price          float64         `json:"price"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
}

func EquipmentTypeConvert(rec dbmodels.EquipmentType) EquipmentTypeView {
	result := EquipmentTypeView{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Price:       rec.Price,
		IsActive:    rec.IsActive,
		CreatedAt:   rec.CreatedAt,
	}
	if rec.Specifications != "" && json.Valid([]byte(rec.Specifications)) {
		result.Specifications = json.RawMessage(rec.Specifications)
	}
	return result
}
