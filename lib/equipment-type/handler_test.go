package equipmenttypehandler

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"komreq-backend/models"
	auditlogapimodels "komreq-backend/models/api/audit-log"
	equipmenttypeapimodels "komreq-backend/models/api/equipment-type"
	dbmodels "komreq-backend/models/db"
)

func Test_NormalizeJSON(t *testing.T) {
	require.Equal(t, `{"cpu":"i5"}`, NormalizeJSON([]byte(`  {"cpu":"i5"}  `)))
	require.Equal(t, `[1,2]`, NormalizeJSON([]byte(`[1,2]`)))
	require.Equal(t, `"8 ГБ ОЗУ"`, NormalizeJSON([]byte(`8 ГБ ОЗУ`)))
	require.Equal(t, `"{broken"`, NormalizeJSON([]byte(`{broken`)))
	require.Equal(t, "{}", NormalizeJSON(nil))
	require.Equal(t, "{}", NormalizeJSON([]byte("  ")))
	require.Equal(t, "{}", NormalizeJSON([]byte("null")))
}

type fakeStore struct {
	list []dbmodels.EquipmentType
}

func (f *fakeStore) Create(rec dbmodels.EquipmentType) (uint, error) {
	rec.ID = uint(len(f.list) + 1)
	f.list = append(f.list, rec)
	return rec.ID, nil
}

func (f *fakeStore) GetByID(id uint) (*dbmodels.EquipmentType, error) {
	for _, rec := range f.list {
		if rec.ID == id {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindByName(name string) (*dbmodels.EquipmentType, error) {
	for _, rec := range f.list {
		if strings.EqualFold(rec.Name, name) {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Update(id uint, updMap map[string]interface{}) error {
	for idx := range f.list {
		if f.list[idx].ID != id {
			continue
		}
		for key, value := range updMap {
			switch key {
			case "name":
				f.list[idx].Name = value.(string)
			case "description":
				f.list[idx].Description = value.(string)
			case "specifications":
				f.list[idx].Specifications = value.(string)
			case "price":
				f.list[idx].Price = value.(float64)
			case "is_active":
				f.list[idx].IsActive = value.(bool)
			}
		}
		return nil
	}
	return errors.New("запись не найдена")
}

func (f *fakeStore) List(onlyActive bool) ([]dbmodels.EquipmentType, error) {
	var result []dbmodels.EquipmentType
	for _, rec := range f.list {
		if onlyActive && !rec.IsActive {
			continue
		}
		result = append(result, rec)
	}
	return result, nil
}

type fakeAudit struct {
	saved []dbmodels.AuditLog
}

func (f *fakeAudit) List(filter auditlogapimodels.AuditLogFilter) ([]auditlogapimodels.AuditLogView, int64, error) {
	return nil, 0, nil
}

func (f *fakeAudit) Get(id uint) (auditlogapimodels.AuditLogView, error) {
	return auditlogapimodels.AuditLogView{}, nil
}

func (f *fakeAudit) Save(rec dbmodels.AuditLog) {
	f.saved = append(f.saved, rec)
}

var admin = models.Caller{UserID: "admin", Roles: []models.UserRole{models.AdminRole}}

func Test_Handler(t *testing.T) {
	store := &fakeStore{}
	audit := &fakeAudit{}
	handler := impl{store: store, audit: audit}

	id, err := handler.Create(admin, equipmenttypeapimodels.EquipmentTypeData{
		Name:           " Ноутбук ",
		Specifications: json.RawMessage(`{"ram": 16}`),
		Price:          85000.5,
	})
	require.NoError(t, err)
	require.Equal(t, "Ноутбук", store.list[0].Name)
	require.Equal(t, `{"ram": 16}`, store.list[0].Specifications)
	require.Equal(t, "CREATE_EquipmentTypes", audit.saved[0].Action)

	_, err = handler.Create(admin, equipmenttypeapimodels.EquipmentTypeData{Name: "ноутбук"})
	require.True(t, models.IsErrorKind(err, models.ConflictError))

	secondID, err := handler.Create(admin, equipmenttypeapimodels.EquipmentTypeData{Name: "Монитор"})
	require.NoError(t, err)

	name := "Ноутбук"
	err = handler.Update(admin, secondID, equipmenttypeapimodels.EquipmentTypeUpdateData{Name: &name})
	require.True(t, models.IsErrorKind(err, models.ConflictError))

	price := 90000.0
	err = handler.Update(admin, id, equipmenttypeapimodels.EquipmentTypeUpdateData{Name: &name, Price: &price})
	require.NoError(t, err)
	require.Equal(t, 90000.0, store.list[0].Price)
	last := audit.saved[len(audit.saved)-1]
	require.Equal(t, "UPDATE_EquipmentTypes", last.Action)
	require.Len(t, last.Details.Data, 1)

	view, err := handler.Get(id)
	require.NoError(t, err)
	require.JSONEq(t, `{"ram": 16}`, string(view.Specifications))

	require.NoError(t, handler.Delete(admin, secondID))
	active, err := handler.ListActive()
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, id, active[0].ID)
	all, err := handler.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 2)

	err = handler.Delete(admin, secondID)
	require.True(t, models.IsErrorKind(err, models.NotFoundError))
	_, err = handler.Get(99)
	require.True(t, models.IsErrorKind(err, models.NotFoundError))
}

func Test_UpdateNullSpecifications(t *testing.T) {
	store := &fakeStore{}
	audit := &fakeAudit{}
	handler := impl{store: store, audit: audit}

	id, err := handler.Create(admin, equipmenttypeapimodels.EquipmentTypeData{
		Name:           "Принтер",
		Specifications: json.RawMessage(`{"dpi": 600}`),
	})
	require.NoError(t, err)

	var data equipmenttypeapimodels.EquipmentTypeUpdateData
	require.NoError(t, json.Unmarshal([]byte(`{"specifications": null}`), &data))
	require.NotNil(t, data.Specifications)

	require.NoError(t, handler.Update(admin, id, data))
	require.Equal(t, "{}", store.list[0].Specifications)
	require.True(t, json.Valid([]byte(store.list[0].Specifications)))

	view, err := handler.Get(id)
	require.NoError(t, err)
	require.JSONEq(t, `{}`, string(view.Specifications))

	_, err = handler.Create(admin, equipmenttypeapimodels.EquipmentTypeData{Name: "Сканер"})
	require.NoError(t, err)
	require.Equal(t, "{}", store.list[1].Specifications)
}
