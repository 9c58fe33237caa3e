package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	dbmodels "komreq-backend/models/db"
)

const (
	RequestSheet  = "Requests"
	createdLayout = "2006-01-02 15:04"
	noManager     = "N/A"
)

type Provider interface {
	ExportRequestList(list []dbmodels.Request) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var requestHeaders = []string{"Request ID", "Client", "Equipment", "Quantity", "Priority", "Status", "Created", "Manager"}

func (i impl) ExportRequestList(list []dbmodels.Request) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	w, err := newSheetWriter(f, sheet)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка создания стилей xlsx")
	}
	if err = w.header(requestHeaders); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	for _, item := range list {
		if err = w.line(requestRow(item)); err != nil {
			return nil, errors.Wrapf(err, "ошибка записи заявки %v в xlsx", item.ID)
		}
	}
	if err = f.SetSheetName(sheet, RequestSheet); err != nil {
		return nil, errors.Wrap(err, "ошибка переименования листа")
	}
	return f.WriteToBuffer()
}

func requestRow(item dbmodels.Request) []interface{} {
	return []interface{}{
		item.ID,
		clientName(item),
		item.GetEquipmentName(),
		item.Quantity,
		string(item.Priority),
		item.GetStatusName(),
		item.CreatedDate.Format(createdLayout),
		managerName(item),
	}
}

func clientName(rec dbmodels.Request) string {
	if rec.Creator == nil {
		return rec.CreatorID
	}
	return rec.Creator.GetFullName()
}

func managerName(rec dbmodels.Request) string {
	if rec.Manager == nil {
		return noManager
	}
	return rec.Manager.GetFullName()
}
