package request

import (
	"strings"

	"atelie/internal/usecase"
)

type ClientListQuery struct {
	Search string `form:"search"`
}

func (q ClientListQuery) ToQuery() usecase.ClientQuery {
	return usecase.ClientQuery{Search: strings.TrimSpace(q.Search)}
}
