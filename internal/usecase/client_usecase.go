package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"atelie/internal/domain/entities"
	"atelie/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrClientNotFound = errors.New("client not found")

// ClientQuery narrows the admin client list. Search matches name and e-mail
// case-insensitively and phone as a plain substring.
type ClientQuery struct {
	Search string
}

// ClientDetail is a client with its orders, newest first.
type ClientDetail struct {
	Client entities.Client
	Orders []entities.EnrichedOrder
}

type IClientUseCase interface {
	List(ctx context.Context, actor *entities.Actor, q ClientQuery) ([]entities.Client, error)
	GetDetail(ctx context.Context, actor *entities.Actor, id entities.ClientID) (ClientDetail, error)
	Delete(ctx context.Context, actor *entities.Actor, id entities.ClientID) error
}

type ClientUseCase struct {
	clients  interfaces.IClientRepository
	orders   IOrderUseCase
	enricher IOrderEnrichmentUseCase
	logger   *zap.Logger
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(clients interfaces.IClientRepository, orders IOrderUseCase, enricher IOrderEnrichmentUseCase, logger *zap.Logger) *ClientUseCase {
	return &ClientUseCase{
		clients:  clients,
		orders:   orders,
		enricher: enricher,
		logger:   logger.Named("client.usecase"),
	}
}

func (u *ClientUseCase) List(ctx context.Context, actor *entities.Actor, q ClientQuery) ([]entities.Client, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	clients, err := u.clients.List(ctx)
	if err != nil {
		return nil, err
	}

	if term := strings.TrimSpace(q.Search); term != "" {
		lower := strings.ToLower(term)
		kept := clients[:0]
		for _, c := range clients {
			if strings.Contains(strings.ToLower(c.Name), lower) ||
				strings.Contains(strings.ToLower(c.Email), lower) ||
				strings.Contains(c.Phone, term) {
				kept = append(kept, c)
			}
		}
		clients = kept
	}

	sort.SliceStable(clients, func(i, j int) bool {
		return clients[i].RegisteredAt.After(clients[j].RegisteredAt)
	})
	return clients, nil
}

func (u *ClientUseCase) GetDetail(ctx context.Context, actor *entities.Actor, id entities.ClientID) (ClientDetail, error) {
	if err := requireStaff(actor); err != nil {
		return ClientDetail{}, err
	}
	id = entities.ClientID(strings.TrimSpace(string(id)))
	if id == "" {
		return ClientDetail{}, ErrInvalidClientID
	}

	c, err := u.clients.GetByID(ctx, id)
	if err != nil {
		return ClientDetail{}, err
	}
	if c.ID == "" {
		return ClientDetail{}, ErrClientNotFound
	}

	orders, err := u.orders.ListForClient(ctx, c.ID)
	if err != nil {
		return ClientDetail{}, err
	}
	return ClientDetail{Client: c, Orders: u.enricher.EnrichAll(ctx, orders)}, nil
}

// Delete removes the client record only. Its orders are kept and show the
// client as missing when enriched. Deleting a missing id succeeds.
func (u *ClientUseCase) Delete(ctx context.Context, actor *entities.Actor, id entities.ClientID) error {
	if err := requireStaff(actor); err != nil {
		return err
	}
	id = entities.ClientID(strings.TrimSpace(string(id)))
	if id == "" {
		return ErrInvalidClientID
	}

	if err := u.clients.Delete(ctx, id); err != nil {
		u.logger.Error("delete failed", zap.String("client_id", string(id)), zap.Error(err))
		return err
	}
	u.logger.Info("client deleted", zap.String("client_id", string(id)), zap.String("actor", actor.UserID))
	return nil
}
