package response

import (
	"time"

	"atelie/internal/domain/entities"
	"atelie/internal/usecase"
)

type ClientResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	RegisteredAt     time.Time `json:"registeredAt"`
	RegisteredAtText string    `json:"registeredAtText"`
}

func FromClient(c entities.Client, loc *time.Location) ClientResponse {
	registered := c.RegisteredAt
	return ClientResponse{
		ID:               string(c.ID),
		Name:             c.Name,
		Email:            c.Email,
		Phone:            c.Phone,
		RegisteredAt:     c.RegisteredAt,
		RegisteredAtText: FormatDate(&registered, loc),
	}
}

func FromClients(clients []entities.Client, loc *time.Location) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, FromClient(c, loc))
	}
	return out
}

type ClientDetailResponse struct {
	ClientResponse
	Orders []EnrichedOrderResponse `json:"orders"`
}

func FromClientDetail(d usecase.ClientDetail, loc *time.Location) ClientDetailResponse {
	return ClientDetailResponse{
		ClientResponse: FromClient(d.Client, loc),
		Orders:         FromEnrichedOrders(d.Orders, loc),
	}
}

type DashboardResponse struct {
	Products      int                     `json:"products"`
	Services      int                     `json:"services"`
	Clients       int                     `json:"clients"`
	PendingOrders int                     `json:"pendingOrders"`
	RecentOrders  []EnrichedOrderResponse `json:"recentOrders"`
}

func FromDashboard(s usecase.DashboardSummary, loc *time.Location) DashboardResponse {
	return DashboardResponse{
		Products:      s.Products,
		Services:      s.Services,
		Clients:       s.Clients,
		PendingOrders: s.PendingOrders,
		RecentOrders:  FromEnrichedOrders(s.RecentOrders, loc),
	}
}
