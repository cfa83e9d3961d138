package handlers

import (
	"net/http"
	"testing"
	"time"

	"atelie/internal/adapter/http/handlers/mocks"
	"atelie/internal/domain/entities"
	"atelie/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newOrderRouter(t *testing.T, actor *entities.Actor) (*gin.Engine, *mocks.MockIOrderUseCase, *mocks.MockIOrderEnrichmentUseCase) {
	ctrl := gomock.NewController(t)
	orders := mocks.NewMockIOrderUseCase(ctrl)
	enricher := mocks.NewMockIOrderEnrichmentUseCase(ctrl)
	h := NewOrderHandler(orders, enricher, testLoc)

	r := newRouter(actor)
	r.GET("/v1/admin/orders", h.List)
	r.GET("/v1/admin/orders/:id", h.Get)
	r.PATCH("/v1/admin/orders/:id/status", h.UpdateStatus)
	r.DELETE("/v1/admin/orders/:id", h.Delete)
	r.GET("/v1/me/orders", h.ListOwn)
	return r, orders, enricher
}

func TestOrderHandler_List(t *testing.T) {
	t.Run("parses filters", func(t *testing.T) {
		r, orders, enricher := newOrderRouter(t, staffActor)
		want := usecase.OrderFilter{
			Status:      entities.OrderStatusRejeitado,
			RequestType: entities.RequestTypeProduto,
			RequestedOn: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		}
		list := []entities.Order{{ID: "o1", Status: entities.OrderStatusRejeitado}}
		orders.EXPECT().List(gomock.Any(), want).Return(list, nil)
		enricher.EXPECT().EnrichAll(gomock.Any(), list).Return([]entities.EnrichedOrder{{Order: list[0]}})

		w := doJSON(r, http.MethodGet, "/v1/admin/orders?status=Rejected&type=product&date=2024-05-01", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body []map[string]any
		decodeBody(t, w, &body)
		if len(body) != 1 || body[0]["clientName"] != "Cliente não encontrado" || body[0]["statusBadge"] != "danger" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		r, _, _ := newOrderRouter(t, staffActor)
		if w := doJSON(r, http.MethodGet, "/v1/admin/orders?status=shipped", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		r, _, _ := newOrderRouter(t, staffActor)
		if w := doJSON(r, http.MethodGet, "/v1/admin/orders?date=ontem", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, orders, _ := newOrderRouter(t, staffActor)
		orders.EXPECT().Get(gomock.Any(), entities.OrderID("nope")).Return(entities.Order{}, usecase.ErrOrderNotFound)

		if w := doJSON(r, http.MethodGet, "/v1/admin/orders/nope", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("enriched", func(t *testing.T) {
		r, orders, enricher := newOrderRouter(t, staffActor)
		o := entities.Order{ID: "o1", ClientID: "c1", Status: entities.OrderStatusRecebido}
		orders.EXPECT().Get(gomock.Any(), entities.OrderID("o1")).Return(o, nil)
		enricher.EXPECT().Enrich(gomock.Any(), o).Return(entities.EnrichedOrder{Order: o, Client: &entities.Client{ID: "c1", Name: "Ana"}})

		w := doJSON(r, http.MethodGet, "/v1/admin/orders/o1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		decodeBody(t, w, &body)
		if body["clientName"] != "Ana" || body["referenceName"] != "Item não encontrado" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	t.Run("alias normalized and actor forwarded", func(t *testing.T) {
		r, orders, _ := newOrderRouter(t, staffActor)
		orders.EXPECT().UpdateStatus(gomock.Any(), staffActor, entities.OrderID("o1"), entities.OrderStatusEmAnalise).
			Return(entities.Order{ID: "o1", Status: entities.OrderStatusEmAnalise}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/admin/orders/o1/status", `{"status":"InReview"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		r, _, _ := newOrderRouter(t, staffActor)
		if w := doJSON(r, http.MethodPatch, "/v1/admin/orders/o1/status", `{"status":"Enviado"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing status", func(t *testing.T) {
		r, _, _ := newOrderRouter(t, staffActor)
		if w := doJSON(r, http.MethodPatch, "/v1/admin/orders/o1/status", `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("forbidden", func(t *testing.T) {
		r, orders, _ := newOrderRouter(t, clientActor)
		orders.EXPECT().UpdateStatus(gomock.Any(), clientActor, entities.OrderID("o1"), entities.OrderStatusConcluido).
			Return(entities.Order{}, usecase.ErrForbidden)

		if w := doJSON(r, http.MethodPatch, "/v1/admin/orders/o1/status", `{"status":"Concluído"}`); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, orders, _ := newOrderRouter(t, staffActor)
		orders.EXPECT().UpdateStatus(gomock.Any(), staffActor, entities.OrderID("o9"), entities.OrderStatusConcluido).
			Return(entities.Order{}, usecase.ErrOrderNotFound)

		if w := doJSON(r, http.MethodPatch, "/v1/admin/orders/o9/status", `{"status":"Concluído"}`); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOrderHandler_Delete(t *testing.T) {
	r, orders, _ := newOrderRouter(t, staffActor)
	orders.EXPECT().Delete(gomock.Any(), staffActor, entities.OrderID("o1")).Return(nil)

	if w := doJSON(r, http.MethodDelete, "/v1/admin/orders/o1", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestOrderHandler_ListOwn(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		r, orders, _ := newOrderRouter(t, nil)
		orders.EXPECT().ListOwn(gomock.Any(), gomock.Nil()).Return(nil, usecase.ErrUnauthenticated)

		if w := doJSON(r, http.MethodGet, "/v1/me/orders", ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("client orders", func(t *testing.T) {
		r, orders, enricher := newOrderRouter(t, clientActor)
		list := []entities.Order{{ID: "o1", ClientID: "cli-1"}}
		orders.EXPECT().ListOwn(gomock.Any(), clientActor).Return(list, nil)
		enricher.EXPECT().EnrichAll(gomock.Any(), list).Return([]entities.EnrichedOrder{{Order: list[0]}})

		if w := doJSON(r, http.MethodGet, "/v1/me/orders", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
