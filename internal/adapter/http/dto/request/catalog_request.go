package request

import (
	"strings"

	"atelie/internal/usecase"
)

type ProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price"`
	OnInquiry   bool     `json:"onInquiry"`
	Sizes       []string `json:"sizes"`
	Available   *bool    `json:"available"`
	Featured    bool     `json:"featured"`
	ImageURL    string   `json:"imageUrl"`
	ImagePath   string   `json:"imagePath"`
}

// ToInput maps the payload. Products are available unless told otherwise.
func (r ProductRequest) ToInput() usecase.ProductInput {
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	return usecase.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       r.Price,
		OnInquiry:   r.OnInquiry,
		Sizes:       r.Sizes,
		Available:   available,
		Featured:    r.Featured,
		ImageURL:    r.ImageURL,
		ImagePath:   r.ImagePath,
	}
}

type ProductListQuery struct {
	Search   string `form:"q"`
	Category string `form:"category"`
	Sort     string `form:"sort"`
}

func (q ProductListQuery) ToQuery() usecase.ProductQuery {
	return usecase.ProductQuery{
		Search:   strings.TrimSpace(q.Search),
		Category: strings.TrimSpace(q.Category),
		Sort:     usecase.ProductSort(strings.ToLower(strings.TrimSpace(q.Sort))),
	}
}

type ServiceRequest struct {
	Kind              string  `json:"kind"`
	Description       string  `json:"description"`
	EstimatedPrice    float64 `json:"estimatedPrice"`
	EstimatedDuration string  `json:"estimatedDuration"`
	ImageURL          string  `json:"imageUrl"`
	ImagePath         string  `json:"imagePath"`
}

func (r ServiceRequest) ToInput() usecase.ServiceInput {
	return usecase.ServiceInput{
		Kind:              r.Kind,
		Description:       r.Description,
		EstimatedPrice:    r.EstimatedPrice,
		EstimatedDuration: r.EstimatedDuration,
		ImageURL:          r.ImageURL,
		ImagePath:         r.ImagePath,
	}
}
