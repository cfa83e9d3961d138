package entities

import "time"

// Product is a ready-made piece sold by the atelier.
//
// Price is nil when the product is sold "sob consulta" (OnInquiry).
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       *float64  `json:"price"`
	OnInquiry   bool      `json:"on_inquiry"`
	Sizes       []string  `json:"sizes"`
	Available   bool      `json:"available"`
	Featured    bool      `json:"featured"`
	ImageURL    string    `json:"image_url,omitempty"`
	ImagePath   string    `json:"image_path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Service is a sewing service offered on request (hem, repair, custom work).
type Service struct {
	ID                string    `json:"id"`
	Kind              string    `json:"kind"`
	Description       string    `json:"description"`
	EstimatedPrice    float64   `json:"estimated_price"`
	EstimatedDuration string    `json:"estimated_duration"`
	ImageURL          string    `json:"image_url,omitempty"`
	ImagePath         string    `json:"image_path,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CatalogItem is either a Product or a Service, selected by Type.
type CatalogItem struct {
	Type    RequestType
	Product *Product
	Service *Service
}

func ProductItem(p Product) *CatalogItem {
	return &CatalogItem{Type: RequestTypeProduto, Product: &p}
}

func ServiceItem(s Service) *CatalogItem {
	return &CatalogItem{Type: RequestTypeServico, Service: &s}
}

func (c CatalogItem) ID() string {
	switch c.Type {
	case RequestTypeProduto:
		if c.Product != nil {
			return c.Product.ID
		}
	case RequestTypeServico:
		if c.Service != nil {
			return c.Service.ID
		}
	}
	return ""
}

// Name is the display name: product name or service kind.
func (c CatalogItem) Name() string {
	switch c.Type {
	case RequestTypeProduto:
		if c.Product != nil {
			return c.Product.Name
		}
	case RequestTypeServico:
		if c.Service != nil {
			return c.Service.Kind
		}
	}
	return ""
}
