package usecase

import (
	"context"

	"atelie/internal/domain/entities"
	"atelie/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IOrderEnrichmentUseCase joins orders with their client and catalog item.
// It never fails: unresolved relations come back as nil.
type IOrderEnrichmentUseCase interface {
	Enrich(ctx context.Context, o entities.Order) entities.EnrichedOrder
	EnrichAll(ctx context.Context, orders []entities.Order) []entities.EnrichedOrder
}

type OrderEnrichmentUseCase struct {
	clients  interfaces.IClientRepository
	products interfaces.IProductRepository
	services interfaces.IServiceRepository
	logger   *zap.Logger
}

var _ IOrderEnrichmentUseCase = (*OrderEnrichmentUseCase)(nil)

func NewOrderEnrichmentUseCase(clients interfaces.IClientRepository, products interfaces.IProductRepository, services interfaces.IServiceRepository, logger *zap.Logger) *OrderEnrichmentUseCase {
	return &OrderEnrichmentUseCase{
		clients:  clients,
		products: products,
		services: services,
		logger:   logger.Named("enrichment.usecase"),
	}
}

func (u *OrderEnrichmentUseCase) Enrich(ctx context.Context, o entities.Order) entities.EnrichedOrder {
	return entities.EnrichedOrder{
		Order:     o,
		Client:    u.lookupClient(ctx, o),
		Reference: u.lookupReference(ctx, o),
	}
}

// EnrichAll issues the lookups of each order one after the other.
func (u *OrderEnrichmentUseCase) EnrichAll(ctx context.Context, orders []entities.Order) []entities.EnrichedOrder {
	out := make([]entities.EnrichedOrder, 0, len(orders))
	for _, o := range orders {
		out = append(out, u.Enrich(ctx, o))
	}
	return out
}

func (u *OrderEnrichmentUseCase) lookupClient(ctx context.Context, o entities.Order) *entities.Client {
	if o.ClientID == "" {
		return nil
	}
	c, err := u.clients.GetByID(ctx, o.ClientID)
	if err != nil {
		u.logger.Warn("client lookup failed", zap.String("order_id", string(o.ID)), zap.String("client_id", string(o.ClientID)), zap.Error(err))
		return nil
	}
	if c.ID == "" {
		return nil
	}
	return &c
}

func (u *OrderEnrichmentUseCase) lookupReference(ctx context.Context, o entities.Order) *entities.CatalogItem {
	if !o.HasReference() {
		return nil
	}

	switch o.RequestType {
	case entities.RequestTypeProduto:
		p, err := u.products.GetByID(ctx, o.ReferenceID)
		if err != nil {
			u.logger.Warn("product lookup failed", zap.String("order_id", string(o.ID)), zap.String("reference_id", o.ReferenceID), zap.Error(err))
			return nil
		}
		if p.ID == "" {
			return nil
		}
		return entities.ProductItem(p)
	case entities.RequestTypeServico:
		s, err := u.services.GetByID(ctx, o.ReferenceID)
		if err != nil {
			u.logger.Warn("service lookup failed", zap.String("order_id", string(o.ID)), zap.String("reference_id", o.ReferenceID), zap.Error(err))
			return nil
		}
		if s.ID == "" {
			return nil
		}
		return entities.ServiceItem(s)
	}
	return nil
}
