package auditloghandler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"komreq-backend/models"
	dbmodels "komreq-backend/models/db"
)

func TestNewRecord(t *testing.T) {
	caller := models.Caller{UserID: "manager-1", IP: "10.0.0.1"}
	changes := dbmodels.EntityChanges{}
	changes.Add("is_active", true, false)

	rec := NewRecord(caller, OpDelete, EntityRequests, uint(15), changes)
	require.Equal(t, "DELETE_Requests", rec.Action)
	require.Equal(t, "Requests", rec.EntityType)
	require.Equal(t, "15", rec.EntityID)
	require.Equal(t, "manager-1", rec.UserID)
	require.Equal(t, "10.0.0.1", rec.IpAddress)
	require.Len(t, rec.Details.Data, 1)
	require.Equal(t, "is_active", rec.Details.Data[0].Field)
	require.False(t, rec.Timestamp.IsZero())
}
