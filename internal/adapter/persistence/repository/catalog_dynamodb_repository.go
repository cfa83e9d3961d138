package repository

import (
	"context"

	"atelie/internal/domain/entities"
	"atelie/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type productItem struct {
	ID          string   `dynamodbav:"id"`
	Name        string   `dynamodbav:"name"`
	Description string   `dynamodbav:"description"`
	Category    string   `dynamodbav:"category"`
	Price       *float64 `dynamodbav:"price"`
	OnInquiry   bool     `dynamodbav:"on_inquiry"`
	Sizes       []string `dynamodbav:"sizes"`
	Available   bool     `dynamodbav:"available"`
	Featured    bool     `dynamodbav:"featured"`
	ImageURL    string   `dynamodbav:"image_url,omitempty"`
	ImagePath   string   `dynamodbav:"image_path,omitempty"`
	CreatedAt   string   `dynamodbav:"created_at"`
	UpdatedAt   string   `dynamodbav:"updated_at"`
}

type serviceItem struct {
	ID                string  `dynamodbav:"id"`
	Kind              string  `dynamodbav:"kind"`
	Description       string  `dynamodbav:"description"`
	EstimatedPrice    float64 `dynamodbav:"estimated_price"`
	EstimatedDuration string  `dynamodbav:"estimated_duration"`
	ImageURL          string  `dynamodbav:"image_url,omitempty"`
	ImagePath         string  `dynamodbav:"image_path,omitempty"`
	CreatedAt         string  `dynamodbav:"created_at"`
	UpdatedAt         string  `dynamodbav:"updated_at"`
}

// ProductDynamoRepository persists Product entities in DynamoDB (PK: id).
// Products sold on inquiry have a NULL price.
type ProductDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb DynamoDBAPI, tableName string) *ProductDynamoRepository {
	return &ProductDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProductDynamoRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toProductItem(p)); err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	it, found, err := getByID[productItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) List(ctx context.Context, onlyAvailable bool) ([]entities.Product, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if onlyAvailable {
		in.FilterExpression = aws.String("#available = :available")
		in.ExpressionAttributeNames = map[string]string{"#available": "available"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":available": &types.AttributeValueMemberBOOL{Value: true},
		}
	}

	items, err := scanAll[productItem](ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Product, 0, len(items))
	for _, it := range items {
		out = append(out, fromProductItem(it))
	}
	return out, nil
}

func (r *ProductDynamoRepository) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	found, err := putExisting(ctx, r.ddb, r.tableName, toProductItem(p))
	if err != nil || !found {
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

// ServiceDynamoRepository persists Service entities in DynamoDB (PK: id).
type ServiceDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb DynamoDBAPI, tableName string) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toServiceItem(s)); err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	it, found, err := getByID[serviceItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *ServiceDynamoRepository) List(ctx context.Context) ([]entities.Service, error) {
	items, err := scanAll[serviceItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Service, 0, len(items))
	for _, it := range items {
		out = append(out, fromServiceItem(it))
	}
	return out, nil
}

func (r *ServiceDynamoRepository) Update(ctx context.Context, s entities.Service) (entities.Service, error) {
	found, err := putExisting(ctx, r.ddb, r.tableName, toServiceItem(s))
	if err != nil || !found {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func toProductItem(p entities.Product) productItem {
	return productItem{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		OnInquiry:   p.OnInquiry,
		Sizes:       p.Sizes,
		Available:   p.Available,
		Featured:    p.Featured,
		ImageURL:    p.ImageURL,
		ImagePath:   p.ImagePath,
		CreatedAt:   formatTime(p.CreatedAt),
		UpdatedAt:   formatTime(p.UpdatedAt),
	}
}

func fromProductItem(it productItem) entities.Product {
	return entities.Product{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Category:    it.Category,
		Price:       it.Price,
		OnInquiry:   it.OnInquiry,
		Sizes:       it.Sizes,
		Available:   it.Available,
		Featured:    it.Featured,
		ImageURL:    it.ImageURL,
		ImagePath:   it.ImagePath,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}

func toServiceItem(s entities.Service) serviceItem {
	return serviceItem{
		ID:                s.ID,
		Kind:              s.Kind,
		Description:       s.Description,
		EstimatedPrice:    s.EstimatedPrice,
		EstimatedDuration: s.EstimatedDuration,
		ImageURL:          s.ImageURL,
		ImagePath:         s.ImagePath,
		CreatedAt:         formatTime(s.CreatedAt),
		UpdatedAt:         formatTime(s.UpdatedAt),
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	return entities.Service{
		ID:                it.ID,
		Kind:              it.Kind,
		Description:       it.Description,
		EstimatedPrice:    it.EstimatedPrice,
		EstimatedDuration: it.EstimatedDuration,
		ImageURL:          it.ImageURL,
		ImagePath:         it.ImagePath,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
