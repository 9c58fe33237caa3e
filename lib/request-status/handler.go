package requeststatushandler

import (
	"github.com/pkg/errors"
	"komreq-backend/db"
	requeststatusstore "komreq-backend/lib/request-status/store"
	statisticapimodels "komreq-backend/models/api/statistic"
)

type Provider interface {
	List() ([]statisticapimodels.RequestStatusView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: requeststatusstore.NewInstance(db.DB),
	}
}

type impl struct {
	store requeststatusstore.Provider
}

func (i impl) List() ([]statisticapimodels.RequestStatusView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения справочника статусов")
	}
	result := make([]statisticapimodels.RequestStatusView, 0, len(list))
	for _, rec := range list {
		result = append(result, statisticapimodels.RequestStatusConvert(rec))
	}
	return result, nil
}
