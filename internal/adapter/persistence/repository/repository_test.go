package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"atelie/internal/domain/entities"
	"atelie/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	putItem    func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	getItem    func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	updateItem func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	deleteItem func(*dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error)
	scan       func(*dynamodb.ScanInput) (*dynamodb.ScanOutput, error)
	query      func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return f.putItem(in)
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return f.getItem(in)
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return f.updateItem(in)
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	return f.deleteItem(in)
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return f.scan(in)
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return f.query(in)
}

func mustMarshal(t *testing.T, v any) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	require.NoError(t, err)
	return av
}

func TestOrderItemRoundTripKeepsNulls(t *testing.T) {
	requested := time.Date(2024, 5, 1, 13, 30, 0, 0, time.FixedZone("BRT", -3*3600))
	o := entities.Order{
		ID:          "o1",
		ClientID:    "c1",
		RequestType: entities.RequestTypeServico,
		ReferenceID: "s1",
		Notes:       "barra",
		Status:      entities.OrderStatusRecebido,
		RequestedAt: requested,
	}

	av := mustMarshal(t, toOrderItem(o))
	_, isNull := av["photo_url"].(*types.AttributeValueMemberNULL)
	assert.True(t, isNull, "photo_url should be stored as NULL")
	_, isNull = av["updated_at"].(*types.AttributeValueMemberNULL)
	assert.True(t, isNull, "updated_at should be stored as NULL")
	assert.Equal(t, "2024-05-01T16:30:00Z", av["requested_at"].(*types.AttributeValueMemberS).Value)

	var it orderItem
	require.NoError(t, attributevalue.UnmarshalMap(av, &it))
	got := fromOrderItem(it)
	assert.True(t, got.RequestedAt.Equal(requested))
	assert.Nil(t, got.PhotoURL)
	assert.Nil(t, got.Size)
	assert.Nil(t, got.UpdatedAt)
	assert.Equal(t, o.Status, got.Status)
}

func TestOrderFilterExpression(t *testing.T) {
	expr, names, values := orderFilterExpression(interfaces.OrderQuery{})
	assert.Empty(t, expr)
	assert.Nil(t, names)
	assert.Nil(t, values)

	expr, names, values = orderFilterExpression(interfaces.OrderQuery{
		Statuses:    []entities.OrderStatus{entities.OrderStatusRecebido, entities.OrderStatusEmAnalise},
		RequestType: entities.RequestTypeProduto,
	})
	assert.Equal(t, "#status IN (:status0, :status1) AND #request_type = :request_type", expr)
	assert.Equal(t, map[string]string{"#status": "status", "#request_type": "request_type"}, names)
	assert.Len(t, values, 3)
	assert.Equal(t, string(entities.OrderStatusEmAnalise), values[":status1"].(*types.AttributeValueMemberS).Value)
}

func TestOrderRepositoryListReadsAllPages(t *testing.T) {
	calls := 0
	ddb := &fakeDynamo{
		scan: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
			calls++
			assert.Equal(t, "orders", aws.ToString(in.TableName))
			if in.ExclusiveStartKey == nil {
				return &dynamodb.ScanOutput{
					Items:            []map[string]types.AttributeValue{mustMarshal(t, orderItem{ID: "o1", Status: "Recebido"})},
					LastEvaluatedKey: idKey("o1"),
				}, nil
			}
			return &dynamodb.ScanOutput{
				Items: []map[string]types.AttributeValue{mustMarshal(t, orderItem{ID: "o2", Status: "Concluído"})},
			}, nil
		},
	}

	got, err := NewOrderDynamoRepository(ddb, "orders").List(context.Background(), interfaces.OrderQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, got, 2)
	assert.Equal(t, entities.OrderID("o2"), got[1].ID)
	assert.Equal(t, entities.OrderStatusConcluido, got[1].Status)
}

func TestOrderRepositoryGetByIDMissing(t *testing.T) {
	ddb := &fakeDynamo{
		getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			assert.True(t, aws.ToBool(in.ConsistentRead))
			return &dynamodb.GetItemOutput{}, nil
		},
	}

	got, err := NewOrderDynamoRepository(ddb, "orders").GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestOrderRepositoryListByClientIDUsesIndex(t *testing.T) {
	ddb := &fakeDynamo{
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			assert.Equal(t, ordersClientIDIndex, aws.ToString(in.IndexName))
			assert.Equal(t, "c1", in.ExpressionAttributeValues[":cid"].(*types.AttributeValueMemberS).Value)
			return &dynamodb.QueryOutput{
				Items: []map[string]types.AttributeValue{mustMarshal(t, orderItem{ID: "o1", ClientID: "c1", Status: string(entities.OrderStatusRecebido)})},
			}, nil
		},
	}

	got, err := NewOrderDynamoRepository(ddb, "orders").ListByClientID(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, entities.ClientID("c1"), got[0].ClientID)
}

func TestOrderRepositoryListByClientIDReloadsKeysOnlyItems(t *testing.T) {
	keysOnly := map[string]types.AttributeValue{
		"id":        &types.AttributeValueMemberS{Value: "o1"},
		"client_id": &types.AttributeValueMemberS{Value: "c1"},
	}
	gone := map[string]types.AttributeValue{
		"id":        &types.AttributeValueMemberS{Value: "o-gone"},
		"client_id": &types.AttributeValueMemberS{Value: "c1"},
	}
	var reloaded []string
	ddb := &fakeDynamo{
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{keysOnly, gone}}, nil
		},
		getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			id := in.Key["id"].(*types.AttributeValueMemberS).Value
			reloaded = append(reloaded, id)
			if id != "o1" {
				return &dynamodb.GetItemOutput{}, nil
			}
			return &dynamodb.GetItemOutput{Item: mustMarshal(t, orderItem{
				ID: "o1", ClientID: "c1", RequestType: "servico", ReferenceID: "s1",
				Notes: "barra", Status: string(entities.OrderStatusEmAnalise),
			})}, nil
		},
	}

	got, err := NewOrderDynamoRepository(ddb, "orders").ListByClientID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"o1", "o-gone"}, reloaded)
	require.Len(t, got, 1)
	assert.Equal(t, entities.OrderStatusEmAnalise, got[0].Status)
	assert.Equal(t, "barra", got[0].Notes)
}

func TestOrderRepositoryListByClientIDReloadError(t *testing.T) {
	ddb := &fakeDynamo{
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{{
				"id": &types.AttributeValueMemberS{Value: "o1"},
			}}}, nil
		},
		getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return nil, errors.New("throttled")
		},
	}

	_, err := NewOrderDynamoRepository(ddb, "orders").ListByClientID(context.Background(), "c1")
	require.Error(t, err)
}

func TestOrderRepositoryUpdateStatus(t *testing.T) {
	at := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)

	t.Run("returns updated order", func(t *testing.T) {
		ddb := &fakeDynamo{
			updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				assert.Equal(t, "attribute_exists(#id)", aws.ToString(in.ConditionExpression))
				assert.Equal(t, "Em análise", in.ExpressionAttributeValues[":status"].(*types.AttributeValueMemberS).Value)
				updated := formatTime(at)
				return &dynamodb.UpdateItemOutput{
					Attributes: mustMarshal(t, orderItem{ID: "o1", Status: "Em análise", UpdatedAt: &updated}),
				}, nil
			},
		}

		got, err := NewOrderDynamoRepository(ddb, "orders").UpdateStatus(context.Background(), "o1", entities.OrderStatusEmAnalise, at)
		require.NoError(t, err)
		assert.Equal(t, entities.OrderStatusEmAnalise, got.Status)
		require.NotNil(t, got.UpdatedAt)
		assert.True(t, got.UpdatedAt.Equal(at))
	})

	t.Run("missing id yields zero order", func(t *testing.T) {
		ddb := &fakeDynamo{
			updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				return nil, &types.ConditionalCheckFailedException{Message: aws.String("nope")}
			},
		}

		got, err := NewOrderDynamoRepository(ddb, "orders").UpdateStatus(context.Background(), "o1", entities.OrderStatusEmAnalise, at)
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("backend failure", func(t *testing.T) {
		boom := errors.New("boom")
		ddb := &fakeDynamo{
			updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				return nil, boom
			},
		}

		_, err := NewOrderDynamoRepository(ddb, "orders").UpdateStatus(context.Background(), "o1", entities.OrderStatusEmAnalise, at)
		assert.ErrorIs(t, err, boom)
	})
}

func TestProductRepositoryListOnlyAvailable(t *testing.T) {
	price := 89.9
	ddb := &fakeDynamo{
		scan: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
			assert.Equal(t, "#available = :available", aws.ToString(in.FilterExpression))
			assert.Equal(t, true, in.ExpressionAttributeValues[":available"].(*types.AttributeValueMemberBOOL).Value)
			return &dynamodb.ScanOutput{
				Items: []map[string]types.AttributeValue{
					mustMarshal(t, productItem{ID: "p1", Name: "Vestido", Price: &price, Sizes: []string{"P", "M"}, Available: true}),
					mustMarshal(t, productItem{ID: "p2", Name: "Noiva", OnInquiry: true, Available: true}),
				},
			}, nil
		},
	}

	got, err := NewProductDynamoRepository(ddb, "products").List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.NotNil(t, got[0].Price)
	assert.Equal(t, 89.9, *got[0].Price)
	assert.Equal(t, []string{"P", "M"}, got[0].Sizes)
	assert.Nil(t, got[1].Price)
	assert.True(t, got[1].OnInquiry)
}

func TestProductRepositoryListAllHasNoFilter(t *testing.T) {
	ddb := &fakeDynamo{
		scan: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
			assert.Nil(t, in.FilterExpression)
			return &dynamodb.ScanOutput{}, nil
		},
	}

	got, err := NewProductDynamoRepository(ddb, "products").List(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestProductRepositoryUpdateMissing(t *testing.T) {
	ddb := &fakeDynamo{
		putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			assert.Equal(t, "attribute_exists(#id)", aws.ToString(in.ConditionExpression))
			return nil, &types.ConditionalCheckFailedException{}
		},
	}

	got, err := NewProductDynamoRepository(ddb, "products").Update(context.Background(), entities.Product{ID: "p1"})
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestServiceRepositoryCreateIsConditional(t *testing.T) {
	var stored map[string]types.AttributeValue
	ddb := &fakeDynamo{
		putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(in.ConditionExpression))
			stored = in.Item
			return &dynamodb.PutItemOutput{}, nil
		},
	}

	s := entities.Service{ID: "s1", Kind: "Barra", EstimatedPrice: 25}
	got, err := NewServiceDynamoRepository(ddb, "services").Create(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, s, got)
	assert.Equal(t, "25", stored["estimated_price"].(*types.AttributeValueMemberN).Value)
	_, hasImage := stored["image_url"]
	assert.False(t, hasImage)
}

func TestClientRepositoryGetByID(t *testing.T) {
	registered := time.Date(2024, 5, 1, 16, 30, 0, 0, time.UTC)
	ddb := &fakeDynamo{
		getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			assert.Equal(t, "c1", in.Key["id"].(*types.AttributeValueMemberS).Value)
			return &dynamodb.GetItemOutput{Item: mustMarshal(t, clientItem{
				ID: "c1", Name: "Ana", Email: "ana@x.com", Phone: "11999999999", RegisteredAt: formatTime(registered),
			})}, nil
		},
	}

	got, err := NewClientDynamoRepository(ddb, "clients").GetByID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.True(t, got.RegisteredAt.Equal(registered))
}

func TestUserRepositoryGetByEmail(t *testing.T) {
	t.Run("reloads from base table", func(t *testing.T) {
		ddb := &fakeDynamo{
			query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
				assert.Equal(t, usersEmailIndex, aws.ToString(in.IndexName))
				return &dynamodb.QueryOutput{
					Items: []map[string]types.AttributeValue{{"id": &types.AttributeValueMemberS{Value: "u1"}}},
				}, nil
			},
			getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
				return &dynamodb.GetItemOutput{Item: mustMarshal(t, userItem{
					ID: "u1", Email: "admin@atelie.com", Role: "admin", PasswordHash: "hash",
				})}, nil
			},
		}

		got, err := NewUserDynamoRepository(ddb, "users").GetByEmail(context.Background(), "admin@atelie.com")
		require.NoError(t, err)
		assert.Equal(t, entities.RoleAdmin, got.Role)
		assert.Equal(t, "hash", got.PasswordHash)
	})

	t.Run("unknown email", func(t *testing.T) {
		ddb := &fakeDynamo{
			query: func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
				return &dynamodb.QueryOutput{}, nil
			},
		}

		got, err := NewUserDynamoRepository(ddb, "users").GetByEmail(context.Background(), "x@y.com")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})
}

func TestClientRepositoryDelete(t *testing.T) {
	var deleted string
	ddb := &fakeDynamo{
		deleteItem: func(in *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
			assert.Equal(t, "clients", aws.ToString(in.TableName))
			deleted = in.Key["id"].(*types.AttributeValueMemberS).Value
			return &dynamodb.DeleteItemOutput{}, nil
		},
	}

	require.NoError(t, NewClientDynamoRepository(ddb, "clients").Delete(context.Background(), "c1"))
	assert.Equal(t, "c1", deleted)
}
