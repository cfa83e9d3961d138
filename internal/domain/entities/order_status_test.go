package entities

import (
	"errors"
	"testing"
)

func TestParseOrderStatus(t *testing.T) {
	cases := map[string]OrderStatus{
		"Recebido":   OrderStatusRecebido,
		" received ": OrderStatusRecebido,
		"Em análise": OrderStatusEmAnalise,
		"em analise": OrderStatusEmAnalise,
		"InReview":   OrderStatusEmAnalise,
		"Concluído":  OrderStatusConcluido,
		"completed":  OrderStatusConcluido,
		"Rejeitado":  OrderStatusRejeitado,
		"REJECTED":   OrderStatusRejeitado,
	}
	for raw, want := range cases {
		got, err := ParseOrderStatus(raw)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", raw, err)
		}
		if got != want {
			t.Fatalf("%q: expected %q, got %q", raw, want, got)
		}
	}

	if _, err := ParseOrderStatus("cancelado"); !errors.Is(err, ErrInvalidOrderStatus) {
		t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
	}
}

func TestOrderStatus_Flow(t *testing.T) {
	for _, s := range OrderStatuses {
		if !s.Valid() {
			t.Fatalf("%q should be valid", s)
		}
		for _, next := range OrderStatuses {
			if !s.CanTransitionTo(next) {
				t.Fatalf("store should accept %q -> %q", s, next)
			}
		}
	}
	if OrderStatus("x").Valid() || OrderStatusRecebido.CanTransitionTo("x") {
		t.Fatalf("unknown status must be rejected")
	}

	if OrderStatusRecebido.IsTerminal() || OrderStatusEmAnalise.IsTerminal() {
		t.Fatalf("pending statuses are not terminal")
	}
	if !OrderStatusConcluido.IsTerminal() || !OrderStatusRejeitado.IsTerminal() {
		t.Fatalf("concluido/rejeitado are terminal")
	}
	if got := OrderStatusRecebido.SuggestedNext(); len(got) != 2 || got[0] != OrderStatusEmAnalise || got[1] != OrderStatusRejeitado {
		t.Fatalf("unexpected next from recebido: %v", got)
	}
	if got := OrderStatusEmAnalise.SuggestedNext(); len(got) != 2 || got[0] != OrderStatusConcluido {
		t.Fatalf("unexpected next from em analise: %v", got)
	}
	if got := OrderStatusConcluido.SuggestedNext(); got != nil {
		t.Fatalf("terminal status suggests nothing, got %v", got)
	}
}

func TestOrderStatus_Badge(t *testing.T) {
	want := map[OrderStatus]string{
		OrderStatusRecebido:  "info",
		OrderStatusEmAnalise: "warning",
		OrderStatusConcluido: "success",
		OrderStatusRejeitado: "danger",
		OrderStatus("?"):     "secondary",
	}
	for s, badge := range want {
		if got := s.Badge(); got != badge {
			t.Fatalf("%q: expected %s, got %s", s, badge, got)
		}
	}
}

func TestParseRequestType(t *testing.T) {
	if rt, err := ParseRequestType("service"); err != nil || rt != RequestTypeServico {
		t.Fatalf("expected servico, got %q %v", rt, err)
	}
	if rt, err := ParseRequestType("Produto"); err != nil || rt != RequestTypeProduto {
		t.Fatalf("expected produto, got %q %v", rt, err)
	}
	if _, err := ParseRequestType(""); !errors.Is(err, ErrInvalidRequestType) {
		t.Fatalf("expected ErrInvalidRequestType, got %v", err)
	}
	if RequestTypeServico.Label() != "Serviço" || RequestTypeProduto.Label() != "Produto" {
		t.Fatalf("unexpected labels")
	}
}

func TestOrder_HasReference(t *testing.T) {
	if (Order{ReferenceID: "p-1"}).HasReference() {
		t.Fatalf("reference without type must not count")
	}
	if !(Order{ReferenceID: "p-1", RequestType: RequestTypeProduto}).HasReference() {
		t.Fatalf("expected reference")
	}
}

func TestCatalogItem_NameAndID(t *testing.T) {
	p := ProductItem(Product{ID: "p-1", Name: "Vestido"})
	if p.ID() != "p-1" || p.Name() != "Vestido" {
		t.Fatalf("unexpected product item: %+v", p)
	}
	s := ServiceItem(Service{ID: "s-1", Kind: "Barra"})
	if s.ID() != "s-1" || s.Name() != "Barra" {
		t.Fatalf("unexpected service item: %+v", s)
	}
	if (CatalogItem{Type: RequestTypeProduto}).Name() != "" {
		t.Fatalf("empty item has no name")
	}
}
