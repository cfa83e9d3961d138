package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"atelie/internal/domain/entities"
	"atelie/internal/usecase/interfaces"
	"atelie/pkg"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	quotePhotoFolder = "orcamentos"

	WarningPhotoNotStored = "Não foi possível enviar a foto. O pedido foi registrado sem ela."
)

var quoteMessages = map[string]string{
	"name":                 "Nome é obrigatório",
	"email.required":       "E-mail é obrigatório",
	"email.email":          "E-mail inválido",
	"phone":                "Telefone é obrigatório",
	"requestType.required": "Tipo de solicitação é obrigatório",
	"requestType.oneof":    "Tipo de solicitação inválido",
	"notes":                "Por favor, descreva o que você precisa",
}

// QuotePhoto is an optional image attached to a quote request.
type QuotePhoto struct {
	Filename    string
	ContentType string
	Data        []byte
}

// QuoteRequest is what an anonymous visitor submits from the storefront.
type QuoteRequest struct {
	Name        string      `json:"name" validate:"required"`
	Email       string      `json:"email" validate:"required,email"`
	Phone       string      `json:"phone" validate:"required"`
	RequestType string      `json:"requestType" validate:"required,oneof=produto servico"`
	ReferenceID string      `json:"referenceId"`
	Size        string      `json:"size"`
	Notes       string      `json:"notes" validate:"required"`
	Photo       *QuotePhoto `json:"-"`
}

// QuoteReceipt is returned to the submitter. Warnings lists degraded steps
// that did not prevent the order from being registered.
type QuoteReceipt struct {
	OrderID  entities.OrderID
	ClientID entities.ClientID
	PhotoURL *string
	Warnings []string
}

type IQuoteIntakeUseCase interface {
	Submit(ctx context.Context, req QuoteRequest) (QuoteReceipt, error)
}

type QuoteIntakeUseCase struct {
	clients  interfaces.IClientRepository
	orders   interfaces.IOrderRepository
	blobs    interfaces.IBlobStorage
	validate *validator.Validate
	now      func() time.Time
	logger   *zap.Logger
}

var _ IQuoteIntakeUseCase = (*QuoteIntakeUseCase)(nil)

func NewQuoteIntakeUseCase(clients interfaces.IClientRepository, orders interfaces.IOrderRepository, blobs interfaces.IBlobStorage, logger *zap.Logger) *QuoteIntakeUseCase {
	return &QuoteIntakeUseCase{
		clients:  clients,
		orders:   orders,
		blobs:    blobs,
		validate: pkg.NewValidator(),
		now:      time.Now,
		logger:   logger.Named("quote.usecase"),
	}
}

// Submit registers a new client and a new order in status Recebido.
//
// Steps run in order and are not retried: validate, store the photo
// (failure only adds a warning), create the client, create the order.
// A client created before a failed order creation is left in place.
func (u *QuoteIntakeUseCase) Submit(ctx context.Context, req QuoteRequest) (QuoteReceipt, error) {
	req = normalizeQuoteRequest(req)
	if err := pkg.ValidateStruct(u.validate, req, quoteMessages); err != nil {
		return QuoteReceipt{}, err
	}

	now := u.now().UTC()
	var receipt QuoteReceipt

	if req.Photo != nil && len(req.Photo.Data) > 0 {
		receipt.PhotoURL = u.storePhoto(ctx, req.Photo, now, &receipt)
	}

	client := entities.Client{
		ID:           entities.ClientID(uuid.NewString()),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		RegisteredAt: now,
	}
	client, err := u.clients.Create(ctx, client)
	if err != nil {
		u.logger.Error("create client failed", zap.Error(err))
		return QuoteReceipt{}, fmt.Errorf("create client: %w", err)
	}

	order := entities.Order{
		ID:          entities.OrderID(uuid.NewString()),
		ClientID:    client.ID,
		RequestType: entities.RequestType(req.RequestType),
		ReferenceID: req.ReferenceID,
		Notes:       req.Notes,
		PhotoURL:    receipt.PhotoURL,
		Status:      entities.OrderStatusRecebido,
		RequestedAt: now,
	}
	if req.Size != "" {
		size := req.Size
		order.Size = &size
	}
	order, err = u.orders.Create(ctx, order)
	if err != nil {
		u.logger.Error("create order failed; client left without order", zap.String("client_id", string(client.ID)), zap.Error(err))
		return QuoteReceipt{}, fmt.Errorf("create order: %w", err)
	}

	u.logger.Info("quote received",
		zap.String("order_id", string(order.ID)),
		zap.String("client_id", string(client.ID)),
		zap.String("request_type", string(order.RequestType)),
		zap.Bool("photo", order.PhotoURL != nil),
	)
	receipt.OrderID = order.ID
	receipt.ClientID = client.ID
	return receipt, nil
}

func (u *QuoteIntakeUseCase) storePhoto(ctx context.Context, photo *QuotePhoto, now time.Time, receipt *QuoteReceipt) *string {
	if u.blobs == nil {
		u.logger.Warn("photo discarded: no blob storage configured")
		receipt.Warnings = append(receipt.Warnings, WarningPhotoNotStored)
		return nil
	}

	obj, err := u.blobs.Store(ctx, photo.Data, photo.ContentType, blobPath(quotePhotoFolder, now, photo.Filename))
	if err != nil {
		u.logger.Warn("photo upload failed; continuing without photo", zap.Error(err))
		receipt.Warnings = append(receipt.Warnings, WarningPhotoNotStored)
		return nil
	}
	return &obj.URL
}

func normalizeQuoteRequest(req QuoteRequest) QuoteRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.ReferenceID = strings.TrimSpace(req.ReferenceID)
	req.Size = strings.TrimSpace(req.Size)
	req.Notes = strings.TrimSpace(req.Notes)
	req.RequestType = strings.TrimSpace(req.RequestType)
	if t, err := entities.ParseRequestType(req.RequestType); err == nil {
		req.RequestType = string(t)
	}
	return req
}
