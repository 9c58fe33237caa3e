package statusstatistichandler

import (
	"time"

	"github.com/pkg/errors"
	"komreq-backend/db"
	statusstatisticstore "komreq-backend/lib/status-statistic/store"
	statisticapimodels "komreq-backend/models/api/statistic"
	dbmodels "komreq-backend/models/db"
)

// Counter источник живых значений по заявкам
type Counter interface {
	CountActiveByStatus(statusID uint) (int64, error)
	AvgCompletionDays(statusID uint) (*float64, error)
}

// Recount пересчитывает строку статистики (статус, день) по текущему состоянию заявок.
// Повторный вызов дает тот же результат.
func Recount(counter Counter, store statusstatisticstore.Provider, status dbmodels.RequestStatus, now time.Time) error {
	count, err := counter.CountActiveByStatus(status.ID)
	if err != nil {
		return errors.Wrap(err, "ошибка подсчета заявок по статусу")
	}
	rec := dbmodels.StatusStatistic{
		StatusID:      status.ID,
		Date:          statisticapimodels.Day(now),
		CountRequests: count,
	}
	if status.IsFinal {
		rec.AvgCompletionDays, err = counter.AvgCompletionDays(status.ID)
		if err != nil {
			return errors.Wrap(err, "ошибка расчета среднего срока выполнения")
		}
	}
	return store.Upsert(rec)
}

type Provider interface {
	List(filter statisticapimodels.StatisticFilter) ([]statisticapimodels.StatusStatisticView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: statusstatisticstore.NewInstance(db.DB),
	}
}

type impl struct {
	store statusstatisticstore.Provider
}

func (i impl) List(filter statisticapimodels.StatisticFilter) ([]statisticapimodels.StatusStatisticView, error) {
	from, to := filter.DateRange()
	list, err := i.store.List(from, to)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения статистики")
	}
	result := make([]statisticapimodels.StatusStatisticView, 0, len(list))
	for _, rec := range list {
		result = append(result, statisticapimodels.StatusStatisticConvert(rec))
	}
	return result, nil
}
