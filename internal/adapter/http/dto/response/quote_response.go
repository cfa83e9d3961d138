package response

import "atelie/internal/usecase"

const QuoteSubmittedMessage = "Solicitação enviada com sucesso! Entraremos em contato em breve."

type QuoteReceiptResponse struct {
	OrderID  string   `json:"orderId"`
	ClientID string   `json:"clientId"`
	PhotoURL *string  `json:"photoUrl"`
	Message  string   `json:"message"`
	Warnings []string `json:"warnings,omitempty"`
}

func FromQuoteReceipt(r usecase.QuoteReceipt) QuoteReceiptResponse {
	return QuoteReceiptResponse{
		OrderID:  string(r.OrderID),
		ClientID: string(r.ClientID),
		PhotoURL: r.PhotoURL,
		Message:  QuoteSubmittedMessage,
		Warnings: r.Warnings,
	}
}
