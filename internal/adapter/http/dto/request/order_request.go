package request

import (
	"errors"
	"strings"
	"time"

	"atelie/internal/domain/entities"
	"atelie/internal/usecase"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// OrderListQuery is the admin order list query string.
type OrderListQuery struct {
	Status string `form:"status"`
	Type   string `form:"type"`
	Date   string `form:"date"`
}

// ToFilter normalizes aliases ("Completed", "service"...) into canonical
// literals. Empty fields do not filter.
func (q OrderListQuery) ToFilter() (usecase.OrderFilter, error) {
	var f usecase.OrderFilter

	if s := strings.TrimSpace(q.Status); s != "" {
		status, err := entities.ParseOrderStatus(s)
		if err != nil {
			return usecase.OrderFilter{}, err
		}
		f.Status = status
	}
	if t := strings.TrimSpace(q.Type); t != "" {
		rt, err := entities.ParseRequestType(t)
		if err != nil {
			return usecase.OrderFilter{}, err
		}
		f.RequestType = rt
	}
	if d := strings.TrimSpace(q.Date); d != "" {
		day, err := time.Parse(DateLayout, d)
		if err != nil {
			return usecase.OrderFilter{}, ErrInvalidDate
		}
		f.RequestedOn = day
	}
	return f, nil
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateOrderStatusRequest) ResolveStatus() (entities.OrderStatus, error) {
	return entities.ParseOrderStatus(r.Status)
}
