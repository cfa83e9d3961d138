package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"atelie/internal/domain/entities"
	"atelie/internal/usecase/interfaces"
	mock_interfaces "atelie/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestDashboardUseCase_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	products := mock_interfaces.NewMockIProductRepository(ctrl)
	services := mock_interfaces.NewMockIServiceRepository(ctrl)
	clients := mock_interfaces.NewMockIClientRepository(ctrl)
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)

	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	statuses := []entities.OrderStatus{
		entities.OrderStatusRecebido, entities.OrderStatusEmAnalise, entities.OrderStatusConcluido,
		entities.OrderStatusRejeitado, entities.OrderStatusRecebido, entities.OrderStatusConcluido, entities.OrderStatusRecebido,
	}
	var all []entities.Order
	for i, s := range statuses {
		all = append(all, entities.Order{ID: entities.OrderID(fmt.Sprintf("o%d", i)), Status: s, RequestedAt: base.Add(time.Duration(i) * time.Hour)})
	}

	products.EXPECT().List(gomock.Any(), false).Return(make([]entities.Product, 3), nil)
	services.EXPECT().List(gomock.Any()).Return(make([]entities.Service, 2), nil)
	clients.EXPECT().List(gomock.Any()).Return(make([]entities.Client, 4), nil)
	orders.EXPECT().List(gomock.Any(), interfaces.OrderQuery{}).Return(all, nil)

	uc := NewDashboardUseCase(products, services, clients, orders, NewOrderEnrichmentUseCase(clients, products, services, zap.NewNop()))

	if _, err := uc.Summary(context.Background(), clientActor); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	got, err := uc.Summary(context.Background(), staffActor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Products != 3 || got.Services != 2 || got.Clients != 4 {
		t.Fatalf("unexpected counts: %+v", got)
	}
	if got.PendingOrders != 4 {
		t.Fatalf("expected 4 pending orders, got %d", got.PendingOrders)
	}
	if len(got.RecentOrders) != 5 || got.RecentOrders[0].Order.ID != "o6" || got.RecentOrders[4].Order.ID != "o2" {
		t.Fatalf("unexpected recent orders: %+v", got.RecentOrders)
	}
}

func TestDashboardUseCase_BackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	products := mock_interfaces.NewMockIProductRepository(ctrl)
	products.EXPECT().List(gomock.Any(), false).Return(nil, errors.New("db down"))

	uc := NewDashboardUseCase(products, nil, nil, nil, nil)
	if _, err := uc.Summary(context.Background(), editorActor); err == nil {
		t.Fatalf("expected error")
	}
}
