package request

import (
	"atelie/internal/usecase"
)

// QuoteRequest is the storefront quote form. It binds from JSON or from a
// multipart form, in which case the optional photo comes in the "photo" part.
type QuoteRequest struct {
	Name        string `json:"name" form:"name"`
	Email       string `json:"email" form:"email"`
	Phone       string `json:"phone" form:"phone"`
	RequestType string `json:"requestType" form:"requestType"`
	ReferenceID string `json:"referenceId" form:"referenceId"`
	Size        string `json:"size" form:"size"`
	Notes       string `json:"notes" form:"notes"`
}

func (r QuoteRequest) ToUseCase(photo *usecase.QuotePhoto) usecase.QuoteRequest {
	return usecase.QuoteRequest{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		RequestType: r.RequestType,
		ReferenceID: r.ReferenceID,
		Size:        r.Size,
		Notes:       r.Notes,
		Photo:       photo,
	}
}
