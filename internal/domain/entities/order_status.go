package entities

import (
	"errors"
	"strings"
)

var ErrInvalidOrderStatus = errors.New("invalid order status")

// OrderStatus represents the lifecycle of an order (pedido).
//
// Normal flow:
//
//	Recebido -> Em análise -> Concluído
//	Recebido | Em análise -> Rejeitado
//
// Concluído and Rejeitado are terminal for the regular admin flow, but the
// store accepts any status from any status (corrections). No history is
// kept: every change overwrites the previous one.
type OrderStatus string

const (
	OrderStatusRecebido  OrderStatus = "Recebido"
	OrderStatusEmAnalise OrderStatus = "Em análise"
	OrderStatusConcluido OrderStatus = "Concluído"
	OrderStatusRejeitado OrderStatus = "Rejeitado"
)

// OrderStatuses lists every status in flow order.
var OrderStatuses = []OrderStatus{
	OrderStatusRecebido,
	OrderStatusEmAnalise,
	OrderStatusConcluido,
	OrderStatusRejeitado,
}

// PendingOrderStatuses are the statuses still awaiting staff action.
var PendingOrderStatuses = []OrderStatus{
	OrderStatusRecebido,
	OrderStatusEmAnalise,
}

var orderStatusAliases = map[string]OrderStatus{
	"recebido":   OrderStatusRecebido,
	"received":   OrderStatusRecebido,
	"em análise": OrderStatusEmAnalise,
	"em analise": OrderStatusEmAnalise,
	"inreview":   OrderStatusEmAnalise,
	"in_review":  OrderStatusEmAnalise,
	"in review":  OrderStatusEmAnalise,
	"concluído":  OrderStatusConcluido,
	"concluido":  OrderStatusConcluido,
	"completed":  OrderStatusConcluido,
	"rejeitado":  OrderStatusRejeitado,
	"rejected":   OrderStatusRejeitado,
}

// ParseOrderStatus normalizes user input into one of the canonical literals.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if s, ok := orderStatusAliases[key]; ok {
		return s, nil
	}
	return "", ErrInvalidOrderStatus
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusRecebido, OrderStatusEmAnalise, OrderStatusConcluido, OrderStatusRejeitado:
		return true
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusConcluido, OrderStatusRejeitado:
		return true
	}
	return false
}

// SuggestedNext returns the statuses the regular flow offers from s.
func (s OrderStatus) SuggestedNext() []OrderStatus {
	switch s {
	case OrderStatusRecebido:
		return []OrderStatus{OrderStatusEmAnalise, OrderStatusRejeitado}
	case OrderStatusEmAnalise:
		return []OrderStatus{OrderStatusConcluido, OrderStatusRejeitado}
	case OrderStatusConcluido, OrderStatusRejeitado:
		return nil
	}
	return nil
}

// CanTransitionTo reports whether the store accepts moving from s to next.
// Any valid status is accepted from any status; see OrderStatus.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return next.Valid()
}

// Badge is the display variant used by status badges.
func (s OrderStatus) Badge() string {
	switch s {
	case OrderStatusRecebido:
		return "info"
	case OrderStatusEmAnalise:
		return "warning"
	case OrderStatusConcluido:
		return "success"
	case OrderStatusRejeitado:
		return "danger"
	}
	return "secondary"
}
