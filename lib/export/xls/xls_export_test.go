package xlsexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"komreq-backend/models"
	dbmodels "komreq-backend/models/db"
)

func Test_ExportRequestList(t *testing.T) {
	list := []dbmodels.Request{
		{
			BaseIntModel:  dbmodels.BaseIntModel{ID: 12},
			Creator:       &dbmodels.User{UserName: "client1", FullName: "ООО Ромашка"},
			EquipmentType: &dbmodels.EquipmentType{Name: "Ноутбук"},
			Quantity:      2,
			Priority:      models.PriorityHigh,
			CurrentStatus: &dbmodels.RequestStatus{Name: "Новая"},
			CreatedDate:   time.Date(2024, 3, 15, 9, 5, 0, 0, time.UTC),
			Manager:       &dbmodels.User{UserName: "manager"},
		},
		{
			BaseIntModel: dbmodels.BaseIntModel{ID: 13},
			CreatorID:    "client2",
			Quantity:     1,
			Priority:     models.PriorityLow,
			CreatedDate:  time.Date(2024, 3, 16, 18, 0, 0, 0, time.UTC),
		},
	}
	buf, err := impl{}.ExportRequestList(list)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{RequestSheet}, f.GetSheetList())
	rows, err := f.GetRows(RequestSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, requestHeaders, rows[0])
	require.Equal(t, []string{"12", "ООО Ромашка", "Ноутбук", "2", "High", "Новая", "2024-03-15 09:05", "manager"}, rows[1])
	require.Equal(t, "client2", rows[2][1])
	require.Equal(t, "N/A", rows[2][7])
}

func Test_ExportEmptyList(t *testing.T) {
	buf, err := impl{}.ExportRequestList(nil)
	require.NoError(t, err)
	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(RequestSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
