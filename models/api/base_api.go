package apimodels

import (
	"time"

	"github.com/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`            //результат обработки fail/success
	Message string      `json:"message,omitempty"` //сообщение ошибки
	Data    interface{} `json:"data,omitempty"`    //данные ответа
}

type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count,omitempty"` //для списков, общее кол-во записей, учитывая фильтр (если он есть)
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

type Pagination struct {
	Limit int `json:"limit" query:"limit"` // Записей на странице
	Page  int `json:"page" query:"page"`   // Страница (1,2,3..)
}

func (r Pagination) Validate() error {
	return nil
}

func (r Pagination) GetPage() (page, limit int) {
	page = 1
	limit = 10
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: Response{
			Status: "success",
			Data:   data,
		},
		RowCount: rowCount,
	}
}

const DateLayout = "2006-01-02"

// Period период в днях, обе даты включительно
type Period struct {
	StartDate string `json:"start_date" query:"start_date"` // ГГГГ-ММ-ДД
	EndDate   string `json:"end_date" query:"end_date"`     // ГГГГ-ММ-ДД
}

func (p Period) Validate() error {
	from, err := parseDate(p.StartDate)
	if err != nil {
		return errors.New("некорректная дата начала периода")
	}
	to, err := parseDate(p.EndDate)
	if err != nil {
		return errors.New("некорректная дата окончания периода")
	}
	if from != nil && to != nil && to.Before(*from) {
		return errors.New("дата окончания периода раньше даты начала")
	}
	return nil
}

// DateRange возвращает [from, to), to - начало дня, следующего за датой окончания
func (p Period) DateRange() (from, to *time.Time) {
	from, _ = parseDate(p.StartDate)
	to, _ = parseDate(p.EndDate)
	if to != nil {
		next := to.AddDate(0, 0, 1)
		to = &next
	}
	return from, to
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
