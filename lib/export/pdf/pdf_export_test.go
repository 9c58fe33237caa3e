package pdfexport

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"komreq-backend/models"
	dbmodels "komreq-backend/models/db"
)

func Test_RequestListPdf(t *testing.T) {
	list := make([]dbmodels.Request, 0, 60)
	for idx := 1; idx <= 60; idx++ {
		list = append(list, dbmodels.Request{
			BaseIntModel:  dbmodels.BaseIntModel{ID: uint(idx)},
			CreatorID:     fmt.Sprintf("client-%d", idx),
			EquipmentType: &dbmodels.EquipmentType{Name: "Laptop"},
			Quantity:      idx,
			Priority:      models.PriorityMedium,
			CurrentStatus: &dbmodels.RequestStatus{Name: "New"},
			CreatedDate:   time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC),
		})
	}
	body, err := RequestListPdf(list, "")
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(body, []byte("%PDF")))

	empty, err := RequestListPdf(nil, t.TempDir())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(empty, []byte("%PDF")))
	require.Less(t, len(empty), len(body))
}
