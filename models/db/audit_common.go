package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

type EntityChanges struct {
	Description string         `json:"description"` // Комментрий
	Data        []FieldChanges `json:"data"`        // Список изменений
}

type FieldChanges struct {
	Field    string `json:"field"`     // Измененное поле
	OldValue any    `json:"old_value"` // Старое значение
	NewValue any    `json:"new_value"` // Новое значение
}

func (j EntityChanges) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *EntityChanges) Scan(value any) error {
	return scanJSON(value, j)
}

func (j *EntityChanges) Add(field string, oldValue, newValue any) {
	j.Data = append(j.Data, FieldChanges{
		Field:    field,
		OldValue: oldValue,
		NewValue: newValue,
	})
}

func scanJSON(value any, out any) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, out)
	case string:
		return json.Unmarshal([]byte(v), out)
	default:
		return errors.Errorf("неподдерживаемый тип jsonb: %T", value)
	}
}
