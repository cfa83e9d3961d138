package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"atelie/internal/domain/entities"
	"atelie/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const ordersClientIDIndex = "client_id-index"

type orderItem struct {
	ID          string  `dynamodbav:"id"`
	ClientID    string  `dynamodbav:"client_id"`
	RequestType string  `dynamodbav:"request_type"`
	ReferenceID string  `dynamodbav:"reference_id"`
	Size        *string `dynamodbav:"size"`
	Notes       string  `dynamodbav:"notes"`
	PhotoURL    *string `dynamodbav:"photo_url"`
	Status      string  `dynamodbav:"status"`
	RequestedAt string  `dynamodbav:"requested_at"`
	UpdatedAt   *string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI client_id-index: client_id (string), projection ALL. Items
//     coming back without a status (KEYS_ONLY projection) are reloaded
//     from the base table.
//
// Absent size, photo_url and updated_at are stored as NULL.
type OrderDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoDBAPI, tableName string) *OrderDynamoRepository {
	return &OrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toOrderItem(o)); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id entities.OrderID) (entities.Order, error) {
	it, found, err := getByID[orderItem](ctx, r.ddb, r.tableName, string(id))
	if err != nil || !found {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// List scans the table. Status and type are evaluated by DynamoDB as a
// filter expression.
func (r *OrderDynamoRepository) List(ctx context.Context, q interfaces.OrderQuery) ([]entities.Order, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if expr, names, values := orderFilterExpression(q); expr != "" {
		in.FilterExpression = aws.String(expr)
		in.ExpressionAttributeNames = names
		in.ExpressionAttributeValues = values
	}

	items, err := scanAll[orderItem](ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	return fromOrderItems(items), nil
}

func (r *OrderDynamoRepository) ListByClientID(ctx context.Context, clientID entities.ClientID) ([]entities.Order, error) {
	items, err := queryAll[orderItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersClientIDIndex),
		KeyConditionExpression: aws.String("#client_id = :cid"),
		ExpressionAttributeNames: map[string]string{
			"#client_id": "client_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: string(clientID)},
		},
	})
	if err != nil {
		return nil, err
	}

	out := make([]entities.Order, 0, len(items))
	for _, it := range items {
		if it.Status == "" {
			full, found, err := getByID[orderItem](ctx, r.ddb, r.tableName, it.ID)
			if err != nil {
				return nil, err
			}
			if !found {
				continue
			}
			it = full
		}
		out = append(out, fromOrderItem(it))
	}
	return out, nil
}

// UpdateStatus overwrites status and updated_at. It returns a zero Order when
// the id does not exist.
func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id entities.OrderID, status entities.OrderStatus, updatedAt time.Time) (entities.Order, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(string(id)),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(updatedAt)},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) Delete(ctx context.Context, id entities.OrderID) error {
	return deleteByID(ctx, r.ddb, r.tableName, string(id))
}

func orderFilterExpression(q interfaces.OrderQuery) (string, map[string]string, map[string]types.AttributeValue) {
	var parts []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}

	if len(q.Statuses) > 0 {
		placeholders := make([]string, 0, len(q.Statuses))
		for i, s := range q.Statuses {
			ph := fmt.Sprintf(":status%d", i)
			placeholders = append(placeholders, ph)
			values[ph] = &types.AttributeValueMemberS{Value: string(s)}
		}
		names["#status"] = "status"
		parts = append(parts, "#status IN ("+strings.Join(placeholders, ", ")+")")
	}
	if q.RequestType != "" {
		names["#request_type"] = "request_type"
		values[":request_type"] = &types.AttributeValueMemberS{Value: string(q.RequestType)}
		parts = append(parts, "#request_type = :request_type")
	}

	if len(parts) == 0 {
		return "", nil, nil
	}
	return strings.Join(parts, " AND "), names, values
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:          string(o.ID),
		ClientID:    string(o.ClientID),
		RequestType: string(o.RequestType),
		ReferenceID: o.ReferenceID,
		Size:        o.Size,
		Notes:       o.Notes,
		PhotoURL:    o.PhotoURL,
		Status:      string(o.Status),
		RequestedAt: formatTime(o.RequestedAt),
		UpdatedAt:   formatTimePtr(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ID:          entities.OrderID(it.ID),
		ClientID:    entities.ClientID(it.ClientID),
		RequestType: entities.RequestType(it.RequestType),
		ReferenceID: it.ReferenceID,
		Size:        it.Size,
		Notes:       it.Notes,
		PhotoURL:    it.PhotoURL,
		Status:      entities.OrderStatus(it.Status),
		RequestedAt: parseTime(it.RequestedAt),
		UpdatedAt:   parseTimePtr(it.UpdatedAt),
	}
}

func fromOrderItems(items []orderItem) []entities.Order {
	out := make([]entities.Order, 0, len(items))
	for _, it := range items {
		out = append(out, fromOrderItem(it))
	}
	return out
}
