package interfaces

import (
	"context"

	"atelie/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for Client.
type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id entities.ClientID) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	Delete(ctx context.Context, id entities.ClientID) error
}
