package repository

import (
	"context"

	"atelie/internal/domain/entities"
	"atelie/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type clientItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	Email        string `dynamodbav:"email"`
	Phone        string `dynamodbav:"phone"`
	RegisteredAt string `dynamodbav:"registered_at"`
}

// ClientDynamoRepository persists Client entities in DynamoDB (PK: id).
type ClientDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb DynamoDBAPI, tableName string) *ClientDynamoRepository {
	return &ClientDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toClientItem(c)); err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id entities.ClientID) (entities.Client, error) {
	it, found, err := getByID[clientItem](ctx, r.ddb, r.tableName, string(id))
	if err != nil || !found {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) List(ctx context.Context) ([]entities.Client, error) {
	items, err := scanAll[clientItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Client, 0, len(items))
	for _, it := range items {
		out = append(out, fromClientItem(it))
	}
	return out, nil
}

func (r *ClientDynamoRepository) Delete(ctx context.Context, id entities.ClientID) error {
	return deleteByID(ctx, r.ddb, r.tableName, string(id))
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		ID:           string(c.ID),
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		RegisteredAt: formatTime(c.RegisteredAt),
	}
}

func fromClientItem(it clientItem) entities.Client {
	return entities.Client{
		ID:           entities.ClientID(it.ID),
		Name:         it.Name,
		Email:        it.Email,
		Phone:        it.Phone,
		RegisteredAt: parseTime(it.RegisteredAt),
	}
}
