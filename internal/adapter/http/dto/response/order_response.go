package response

import (
	"time"

	"atelie/internal/domain/entities"
)

type OrderResponse struct {
	ID               string     `json:"id"`
	ClientID         string     `json:"clientId"`
	RequestType      string     `json:"requestType"`
	RequestTypeLabel string     `json:"requestTypeLabel"`
	ReferenceID      string     `json:"referenceId"`
	Size             *string    `json:"size"`
	Notes            string     `json:"notes"`
	PhotoURL         *string    `json:"photoUrl"`
	Status           string     `json:"status"`
	StatusBadge      string     `json:"statusBadge"`
	Terminal         bool       `json:"terminal"`
	NextStatuses     []string   `json:"nextStatuses"`
	RequestedAt      time.Time  `json:"requestedAt"`
	RequestedAtText  string     `json:"requestedAtText"`
	UpdatedAt        *time.Time `json:"updatedAt"`
	UpdatedAtText    string     `json:"updatedAtText"`
}

func FromOrder(o entities.Order, loc *time.Location) OrderResponse {
	next := make([]string, 0, 2)
	for _, s := range o.Status.SuggestedNext() {
		next = append(next, string(s))
	}
	requested := o.RequestedAt
	return OrderResponse{
		ID:               string(o.ID),
		ClientID:         string(o.ClientID),
		RequestType:      string(o.RequestType),
		RequestTypeLabel: o.RequestType.Label(),
		ReferenceID:      o.ReferenceID,
		Size:             o.Size,
		Notes:            o.Notes,
		PhotoURL:         o.PhotoURL,
		Status:           string(o.Status),
		StatusBadge:      o.Status.Badge(),
		Terminal:         o.Status.IsTerminal(),
		NextStatuses:     next,
		RequestedAt:      o.RequestedAt,
		RequestedAtText:  FormatDate(&requested, loc),
		UpdatedAt:        o.UpdatedAt,
		UpdatedAtText:    FormatDate(o.UpdatedAt, loc),
	}
}

func FromOrders(orders []entities.Order, loc *time.Location) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o, loc))
	}
	return out
}

// ReferenceResponse is the catalog item an order points at.
type ReferenceResponse struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Name     string   `json:"name"`
	ImageURL string   `json:"imageUrl,omitempty"`
	Category string   `json:"category,omitempty"`
	Sizes    []string `json:"sizes,omitempty"`
	Duration string   `json:"estimatedDuration,omitempty"`
}

// EnrichedOrderResponse embeds the order with its client and catalog item.
// ClientName and ReferenceName carry a placeholder when the link is broken.
type EnrichedOrderResponse struct {
	OrderResponse
	Client        *ClientResponse    `json:"client"`
	ClientName    string             `json:"clientName"`
	Reference     *ReferenceResponse `json:"reference"`
	ReferenceName string             `json:"referenceName"`
}

func FromEnrichedOrder(e entities.EnrichedOrder, loc *time.Location) EnrichedOrderResponse {
	res := EnrichedOrderResponse{
		OrderResponse: FromOrder(e.Order, loc),
		ClientName:    ClientNotFoundLabel,
		ReferenceName: ItemNotFoundLabel,
	}
	if e.Client != nil {
		c := FromClient(*e.Client, loc)
		res.Client = &c
		res.ClientName = e.Client.Name
	}
	if e.Reference != nil {
		ref := fromCatalogItem(*e.Reference)
		res.Reference = &ref
		res.ReferenceName = ref.Name
	}
	return res
}

func FromEnrichedOrders(orders []entities.EnrichedOrder, loc *time.Location) []EnrichedOrderResponse {
	out := make([]EnrichedOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromEnrichedOrder(o, loc))
	}
	return out
}

func fromCatalogItem(item entities.CatalogItem) ReferenceResponse {
	ref := ReferenceResponse{ID: item.ID(), Type: string(item.Type), Name: item.Name()}
	switch item.Type {
	case entities.RequestTypeProduto:
		if item.Product != nil {
			ref.ImageURL = item.Product.ImageURL
			ref.Category = item.Product.Category
			ref.Sizes = item.Product.Sizes
		}
	case entities.RequestTypeServico:
		if item.Service != nil {
			ref.ImageURL = item.Service.ImageURL
			ref.Duration = item.Service.EstimatedDuration
		}
	}
	return ref
}
