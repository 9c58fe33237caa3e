package reporthandler

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"komreq-backend/config"
	"komreq-backend/db"
	auditloghandler "komreq-backend/lib/audit-log"
	pdfexport "komreq-backend/lib/export/pdf"
	xlsexport "komreq-backend/lib/export/xls"
	filestorage "komreq-backend/lib/file-storage"
	reportstore "komreq-backend/lib/report/store"
	requesthandler "komreq-backend/lib/request"
	requeststore "komreq-backend/lib/request/store"
	"komreq-backend/lib/utils/lock"
	"komreq-backend/models"
	reportapimodels "komreq-backend/models/api/report"
	requestapimodels "komreq-backend/models/api/request"
	dbmodels "komreq-backend/models/db"
)

const (
	historyLimit = 100
	lockWait     = 30 * time.Second

	contentTypePdf  = "application/pdf"
	contentTypeXlsx = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Provider interface {
	RequestsPdf(ctx context.Context, caller models.Caller, filter requestapimodels.RequestFilter) (reportapimodels.ReportFile, error)
	RequestsExcel(ctx context.Context, caller models.Caller, filter requestapimodels.RequestFilter) (reportapimodels.ReportFile, error)
	History(caller models.Caller) ([]reportapimodels.ReportView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		requestStore: requeststore.NewInstance(db.DB),
		store:        reportstore.NewInstance(db.DB),
		fileStore:    filestorage.Instance,
		xls:          xlsexport.Instance,
		audit:        auditloghandler.Instance,
		fontDir:      config.Conf.Report.FontDir,
	}
}

type impl struct {
	requestStore requeststore.Provider
	store        reportstore.Provider
	fileStore    filestorage.Provider
	xls          xlsexport.Provider
	audit        auditloghandler.Provider
	fontDir      string
}

func (i impl) RequestsPdf(ctx context.Context, caller models.Caller, filter requestapimodels.RequestFilter) (reportapimodels.ReportFile, error) {
	return i.generate(ctx, caller, filter, models.ReportTypePdf)
}

func (i impl) RequestsExcel(ctx context.Context, caller models.Caller, filter requestapimodels.RequestFilter) (reportapimodels.ReportFile, error) {
	return i.generate(ctx, caller, filter, models.ReportTypeXlsx)
}

// generate отчеты одного пользователя формируются последовательно
func (i impl) generate(ctx context.Context, caller models.Caller, filter requestapimodels.RequestFilter, reportType models.ReportType) (result reportapimodels.ReportFile, err error) {
	logger := log.WithField("user_id", caller.UserID).
		WithField("report_type", reportType)
	ok, err := lock.WithDelay(ctx, "report_"+caller.UserID, lockWait, func() error {
		result, err = i.build(ctx, caller, filter, reportType)
		return err
	})
	if err != nil {
		return reportapimodels.ReportFile{}, err
	}
	if !ok {
		return reportapimodels.ReportFile{}, models.NewConflict("отчет уже формируется, повторите запрос позже")
	}
	logger.WithField("file_name", result.FileName).Info("сформирован отчет по заявкам")
	return result, nil
}

func (i impl) build(ctx context.Context, caller models.Caller, filter requestapimodels.RequestFilter, reportType models.ReportType) (reportapimodels.ReportFile, error) {
	list, err := i.requestStore.ListAll(filter, requesthandler.VisibilityScope(caller))
	if err != nil {
		return reportapimodels.ReportFile{}, errors.Wrap(err, "ошибка получения заявок для отчета")
	}
	now := time.Now().UTC()
	result := reportapimodels.ReportFile{
		FileName: fmt.Sprintf("requests_%s.%s", now.Format("20060102_150405"), reportType),
	}
	switch reportType {
	case models.ReportTypePdf:
		result.ContentType = contentTypePdf
		result.Body, err = pdfexport.RequestListPdf(list, i.fontDir)
		if err != nil {
			return reportapimodels.ReportFile{}, errors.Wrap(err, "ошибка формирования pdf")
		}
	case models.ReportTypeXlsx:
		result.ContentType = contentTypeXlsx
		buf, err := i.xls.ExportRequestList(list)
		if err != nil {
			return reportapimodels.ReportFile{}, errors.Wrap(err, "ошибка формирования xlsx")
		}
		result.Body = buf.Bytes()
	default:
		return reportapimodels.ReportFile{}, errors.Errorf("неизвестный тип отчета: %v", reportType)
	}

	path, err := i.fileStore.Save(ctx, result.FileName, bytes.NewReader(result.Body), int64(len(result.Body)), result.ContentType)
	if err != nil {
		return reportapimodels.ReportFile{}, errors.Wrap(err, "ошибка сохранения отчета")
	}
	rec := dbmodels.Report{
		GeneratedByUserID: caller.UserID,
		ReportType:        reportType,
		Parameters:        reportParameters(filter, len(list)),
		FilePath:          path,
		GeneratedAt:       now,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return reportapimodels.ReportFile{}, errors.Wrap(err, "ошибка регистрации отчета")
	}
	changes := dbmodels.EntityChanges{}
	changes.Add("file_path", nil, path)
	i.audit.Save(auditloghandler.NewRecord(caller, auditloghandler.OpCreate, auditloghandler.EntityReports, id, changes))
	return result, nil
}

func reportParameters(filter requestapimodels.RequestFilter, rowCount int) dbmodels.ReportParameters {
	result := dbmodels.ReportParameters{
		Priority:     string(filter.Priority),
		ClientUserID: filter.ClientUserID,
		RowCount:     rowCount,
	}
	if filter.StatusID != 0 {
		statusID := filter.StatusID
		result.StatusID = &statusID
	}
	from, to := filter.DateRange()
	result.StartDate = from
	if to != nil {
		endDate := to.AddDate(0, 0, -1)
		result.EndDate = &endDate
	}
	return result
}

func (i impl) History(caller models.Caller) ([]reportapimodels.ReportView, error) {
	userID := caller.UserID
	if caller.HasRole(models.AdminRole) {
		userID = ""
	}
	list, err := i.store.List(userID, historyLimit)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка отчетов")
	}
	result := make([]reportapimodels.ReportView, 0, len(list))
	for _, rec := range list {
		result = append(result, reportapimodels.ReportConvert(rec))
	}
	return result, nil
}
