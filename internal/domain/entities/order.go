package entities

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidRequestType = errors.New("invalid request type")

type OrderID string

// RequestType tells which catalog collection an order's reference points to.
type RequestType string

const (
	RequestTypeProduto RequestType = "produto"
	RequestTypeServico RequestType = "servico"
)

// ParseRequestType accepts the canonical literals and their English aliases.
func ParseRequestType(raw string) (RequestType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "produto", "product":
		return RequestTypeProduto, nil
	case "servico", "serviço", "service":
		return RequestTypeServico, nil
	}
	return "", ErrInvalidRequestType
}

func (t RequestType) Valid() bool {
	return t == RequestTypeProduto || t == RequestTypeServico
}

func (t RequestType) Label() string {
	switch t {
	case RequestTypeProduto:
		return "Produto"
	case RequestTypeServico:
		return "Serviço"
	}
	return string(t)
}

// Order is a quote request (pedido) persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//
// ClientID and ReferenceID are weak references: the client or catalog item
// may be gone, readers must tolerate that (see EnrichedOrder).
type Order struct {
	ID          OrderID     `json:"id"`
	ClientID    ClientID    `json:"client_id"`
	RequestType RequestType `json:"request_type"`
	ReferenceID string      `json:"reference_id"`
	Size        *string     `json:"size"`
	Notes       string      `json:"notes"`
	PhotoURL    *string     `json:"photo_url"`
	Status      OrderStatus `json:"status"`
	RequestedAt time.Time   `json:"requested_at"`
	UpdatedAt   *time.Time  `json:"updated_at"`
}

// HasReference reports whether the order points at a catalog item.
func (o Order) HasReference() bool {
	return o.ReferenceID != "" && o.RequestType.Valid()
}

// EnrichedOrder is an order joined with its linked entities for display.
// Client and Reference are nil when the linked entity cannot be found.
type EnrichedOrder struct {
	Order     Order
	Client    *Client
	Reference *CatalogItem
}
