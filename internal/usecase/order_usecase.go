package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"atelie/internal/domain/entities"
	"atelie/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidOrderID  = errors.New("invalid order id")
	ErrInvalidClientID = errors.New("invalid client id")
)

// OrderFilter is a conjunction; zero fields match everything.
//
// RequestedOn selects a calendar day: only its year/month/day are used and
// compared with requested_at converted to the use case's location.
type OrderFilter struct {
	Status      entities.OrderStatus
	RequestType entities.RequestType
	RequestedOn time.Time
}

// IOrderUseCase exposes the order store and its status transitions.
//
// Authorization:
//   - UpdateStatus / Delete require an admin or editor actor
//   - ListOwn requires a cliente actor and lists orders whose client id is the actor id
//   - the remaining reads are gated by the HTTP layer
type IOrderUseCase interface {
	List(ctx context.Context, filter OrderFilter) ([]entities.Order, error)
	Get(ctx context.Context, id entities.OrderID) (entities.Order, error)
	UpdateStatus(ctx context.Context, actor *entities.Actor, id entities.OrderID, status entities.OrderStatus) (entities.Order, error)
	Delete(ctx context.Context, actor *entities.Actor, id entities.OrderID) error
	ListForClient(ctx context.Context, clientID entities.ClientID) ([]entities.Order, error)
	ListOwn(ctx context.Context, actor *entities.Actor) ([]entities.Order, error)
}

type OrderUseCase struct {
	repo   interfaces.IOrderRepository
	blobs  interfaces.IBlobStorage
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

// NewOrderUseCase wires the order store. blobs may be nil when no storage is
// configured; loc defaults to time.Local.
func NewOrderUseCase(repo interfaces.IOrderRepository, blobs interfaces.IBlobStorage, loc *time.Location, logger *zap.Logger) *OrderUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &OrderUseCase{repo: repo, blobs: blobs, loc: loc, now: time.Now, logger: logger.Named("order.usecase")}
}

func (u *OrderUseCase) List(ctx context.Context, filter OrderFilter) ([]entities.Order, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, entities.ErrInvalidOrderStatus
	}
	if filter.RequestType != "" && !filter.RequestType.Valid() {
		return nil, entities.ErrInvalidRequestType
	}

	q := interfaces.OrderQuery{RequestType: filter.RequestType}
	if filter.Status != "" {
		q.Statuses = []entities.OrderStatus{filter.Status}
	}
	orders, err := u.repo.List(ctx, q)
	if err != nil {
		u.logger.Error("list failed", zap.Error(err))
		return nil, err
	}

	if !filter.RequestedOn.IsZero() {
		orders = filterRequestedOn(orders, filter.RequestedOn, u.loc)
	}
	sortByRequestedAtDesc(orders)
	return orders, nil
}

func (u *OrderUseCase) Get(ctx context.Context, id entities.OrderID) (entities.Order, error) {
	id = entities.OrderID(strings.TrimSpace(string(id)))
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) UpdateStatus(ctx context.Context, actor *entities.Actor, id entities.OrderID, status entities.OrderStatus) (entities.Order, error) {
	if err := requireStaff(actor); err != nil {
		return entities.Order{}, err
	}
	if !status.Valid() {
		return entities.Order{}, entities.ErrInvalidOrderStatus
	}

	current, err := u.Get(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if current.Status == status {
		u.logger.Info("update-status no-op", zap.String("order_id", string(current.ID)), zap.String("status", string(status)))
		return current, nil
	}
	if !current.Status.CanTransitionTo(status) {
		return entities.Order{}, entities.ErrInvalidOrderStatus
	}

	now := u.now().UTC()
	if current.UpdatedAt != nil && now.Before(*current.UpdatedAt) {
		now = *current.UpdatedAt
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, status, now)
	if err != nil {
		u.logger.Error("update-status failed", zap.String("order_id", string(current.ID)), zap.Error(err))
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	u.logger.Info("update-status success",
		zap.String("order_id", string(updated.ID)),
		zap.String("from", string(current.Status)),
		zap.String("to", string(updated.Status)),
		zap.String("actor", actor.UserID),
	)
	return updated, nil
}

func (u *OrderUseCase) Delete(ctx context.Context, actor *entities.Actor, id entities.OrderID) error {
	if err := requireStaff(actor); err != nil {
		return err
	}

	current, err := u.Get(ctx, id)
	if errors.Is(err, ErrOrderNotFound) {
		u.logger.Info("delete of missing order", zap.String("order_id", string(id)))
		return nil
	}
	if err != nil {
		return err
	}

	if current.PhotoURL != nil && u.blobs != nil {
		if err := u.blobs.Delete(ctx, *current.PhotoURL); err != nil {
			u.logger.Warn("photo delete failed; deleting order anyway", zap.String("order_id", string(current.ID)), zap.Error(err))
		}
	}

	if err := u.repo.Delete(ctx, current.ID); err != nil {
		u.logger.Error("delete failed", zap.String("order_id", string(current.ID)), zap.Error(err))
		return err
	}
	u.logger.Info("order deleted", zap.String("order_id", string(current.ID)), zap.String("actor", actor.UserID))
	return nil
}

func (u *OrderUseCase) ListForClient(ctx context.Context, clientID entities.ClientID) ([]entities.Order, error) {
	clientID = entities.ClientID(strings.TrimSpace(string(clientID)))
	if clientID == "" {
		return nil, ErrInvalidClientID
	}

	orders, err := u.repo.ListByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	sortByRequestedAtDesc(orders)
	return orders, nil
}

func (u *OrderUseCase) ListOwn(ctx context.Context, actor *entities.Actor) ([]entities.Order, error) {
	if err := requireRole(actor, entities.RoleCliente); err != nil {
		return nil, err
	}
	return u.ListForClient(ctx, entities.ClientID(actor.UserID))
}

func filterRequestedOn(orders []entities.Order, day time.Time, loc *time.Location) []entities.Order {
	y, m, d := day.Date()
	out := orders[:0]
	for _, o := range orders {
		oy, om, od := o.RequestedAt.In(loc).Date()
		if oy == y && om == m && od == d {
			out = append(out, o)
		}
	}
	return out
}

func sortByRequestedAtDesc(orders []entities.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].RequestedAt.After(orders[j].RequestedAt)
	})
}
