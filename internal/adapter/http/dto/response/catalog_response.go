package response

import (
	"time"

	"atelie/internal/domain/entities"
	"atelie/internal/usecase/interfaces"
)

const PriceOnInquiryLabel = "Sob consulta"

type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       *float64  `json:"price"`
	PriceText   string    `json:"priceText"`
	OnInquiry   bool      `json:"onInquiry"`
	Sizes       []string  `json:"sizes"`
	Available   bool      `json:"available"`
	Featured    bool      `json:"featured"`
	ImageURL    string    `json:"imageUrl"`
	ImagePath   string    `json:"imagePath,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromProduct(p entities.Product) ProductResponse {
	sizes := p.Sizes
	if sizes == nil {
		sizes = []string{}
	}
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		PriceText:   priceText(p),
		OnInquiry:   p.OnInquiry,
		Sizes:       sizes,
		Available:   p.Available,
		Featured:    p.Featured,
		ImageURL:    p.ImageURL,
		ImagePath:   p.ImagePath,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

type ServiceResponse struct {
	ID                 string    `json:"id"`
	Kind               string    `json:"kind"`
	Description        string    `json:"description"`
	EstimatedPrice     float64   `json:"estimatedPrice"`
	EstimatedPriceText string    `json:"estimatedPriceText"`
	EstimatedDuration  string    `json:"estimatedDuration"`
	ImageURL           string    `json:"imageUrl"`
	ImagePath          string    `json:"imagePath,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:                 s.ID,
		Kind:               s.Kind,
		Description:        s.Description,
		EstimatedPrice:     s.EstimatedPrice,
		EstimatedPriceText: FormatBRL(s.EstimatedPrice),
		EstimatedDuration:  s.EstimatedDuration,
		ImageURL:           s.ImageURL,
		ImagePath:          s.ImagePath,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

func FromServices(services []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromService(s))
	}
	return out
}

type ImageResponse struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

func FromStoredObject(o interfaces.StoredObject) ImageResponse {
	return ImageResponse{URL: o.URL, Path: o.Path}
}

func priceText(p entities.Product) string {
	if p.OnInquiry || p.Price == nil {
		return PriceOnInquiryLabel
	}
	return FormatBRL(*p.Price)
}
