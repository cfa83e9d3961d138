package usecase

import (
	"context"
	"slices"

	"atelie/internal/domain/entities"
	"atelie/internal/usecase/interfaces"
)

const recentOrdersLimit = 5

// DashboardSummary is the admin landing page data.
type DashboardSummary struct {
	Products      int
	Services      int
	Clients       int
	PendingOrders int
	RecentOrders  []entities.EnrichedOrder
}

type IDashboardUseCase interface {
	Summary(ctx context.Context, actor *entities.Actor) (DashboardSummary, error)
}

type DashboardUseCase struct {
	products interfaces.IProductRepository
	services interfaces.IServiceRepository
	clients  interfaces.IClientRepository
	orders   interfaces.IOrderRepository
	enricher IOrderEnrichmentUseCase
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	products interfaces.IProductRepository,
	services interfaces.IServiceRepository,
	clients interfaces.IClientRepository,
	orders interfaces.IOrderRepository,
	enricher IOrderEnrichmentUseCase,
) *DashboardUseCase {
	return &DashboardUseCase{products: products, services: services, clients: clients, orders: orders, enricher: enricher}
}

func (u *DashboardUseCase) Summary(ctx context.Context, actor *entities.Actor) (DashboardSummary, error) {
	if err := requireStaff(actor); err != nil {
		return DashboardSummary{}, err
	}

	products, err := u.products.List(ctx, false)
	if err != nil {
		return DashboardSummary{}, err
	}
	services, err := u.services.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	clients, err := u.clients.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	orders, err := u.orders.List(ctx, interfaces.OrderQuery{})
	if err != nil {
		return DashboardSummary{}, err
	}

	pending := 0
	for _, o := range orders {
		if slices.Contains(entities.PendingOrderStatuses, o.Status) {
			pending++
		}
	}

	sortByRequestedAtDesc(orders)
	if len(orders) > recentOrdersLimit {
		orders = orders[:recentOrdersLimit]
	}

	return DashboardSummary{
		Products:      len(products),
		Services:      len(services),
		Clients:       len(clients),
		PendingOrders: pending,
		RecentOrders:  u.enricher.EnrichAll(ctx, orders),
	}, nil
}
