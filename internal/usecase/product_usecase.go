package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"atelie/internal/domain/entities"
	"atelie/internal/usecase/interfaces"
	"atelie/pkg"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidProductID   = errors.New("invalid product id")
	ErrInvalidProductSort = errors.New("invalid product sort")
)

const featuredLimit = 4

type ProductSort string

const (
	ProductSortNameAsc   ProductSort = "nome-asc"
	ProductSortNameDesc  ProductSort = "nome-desc"
	ProductSortPriceAsc  ProductSort = "preco-asc"
	ProductSortPriceDesc ProductSort = "preco-desc"
)

var productMessages = map[string]string{
	"name":        "Nome é obrigatório",
	"description": "Descrição é obrigatória",
	"category":    "Categoria é obrigatória",
	"sizes":       "Informe pelo menos um tamanho",
	"price":       "Preço inválido",
}

// ProductInput carries the editable fields of a product.
type ProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	OnInquiry   bool     `json:"onInquiry"`
	Sizes       []string `json:"sizes" validate:"min=1,dive,required"`
	Available   bool     `json:"available"`
	Featured    bool     `json:"featured"`
	ImageURL    string   `json:"imageUrl"`
	ImagePath   string   `json:"imagePath"`
}

// ProductQuery filters the public listing. Search matches name or
// description, case-insensitively; Category matches exactly.
type ProductQuery struct {
	Search   string
	Category string
	Sort     ProductSort
}

type IProductUseCase interface {
	Create(ctx context.Context, actor *entities.Actor, in ProductInput) (entities.Product, error)
	Update(ctx context.Context, actor *entities.Actor, id string, in ProductInput) (entities.Product, error)
	Delete(ctx context.Context, actor *entities.Actor, id string) error
	Get(ctx context.Context, id string) (entities.Product, error)
	ListAll(ctx context.Context, actor *entities.Actor) ([]entities.Product, error)
	ListPublic(ctx context.Context, q ProductQuery) ([]entities.Product, error)
	Featured(ctx context.Context) ([]entities.Product, error)
	Categories(ctx context.Context) ([]string, error)
}

type ProductUseCase struct {
	repo     interfaces.IProductRepository
	blobs    interfaces.IBlobStorage
	validate *validator.Validate
	now      func() time.Time
	logger   *zap.Logger
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository, blobs interfaces.IBlobStorage, logger *zap.Logger) *ProductUseCase {
	return &ProductUseCase{
		repo:     repo,
		blobs:    blobs,
		validate: pkg.NewValidator(),
		now:      time.Now,
		logger:   logger.Named("product.usecase"),
	}
}

func (u *ProductUseCase) Create(ctx context.Context, actor *entities.Actor, in ProductInput) (entities.Product, error) {
	if err := requireStaff(actor); err != nil {
		return entities.Product{}, err
	}
	in = normalizeProductInput(in)
	if err := pkg.ValidateStruct(u.validate, in, productMessages); err != nil {
		return entities.Product{}, err
	}

	now := u.now().UTC()
	p := applyProductInput(entities.Product{ID: uuid.NewString(), CreatedAt: now}, in)
	p.UpdatedAt = now

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Product{}, err
	}
	u.logger.Info("product created", zap.String("product_id", created.ID), zap.String("actor", actor.UserID))
	return created, nil
}

func (u *ProductUseCase) Update(ctx context.Context, actor *entities.Actor, id string, in ProductInput) (entities.Product, error) {
	if err := requireStaff(actor); err != nil {
		return entities.Product{}, err
	}
	in = normalizeProductInput(in)
	if err := pkg.ValidateStruct(u.validate, in, productMessages); err != nil {
		return entities.Product{}, err
	}

	current, err := u.Get(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}

	p := applyProductInput(current, in)
	p.UpdatedAt = u.now().UTC()

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Product{}, err
	}
	if updated.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}

	if current.ImagePath != "" && current.ImagePath != updated.ImagePath {
		u.deleteImage(ctx, current.ImagePath)
	}
	return updated, nil
}

// Delete removes the image and then the product. A failed image delete is
// logged and does not block the document delete.
func (u *ProductUseCase) Delete(ctx context.Context, actor *entities.Actor, id string) error {
	if err := requireStaff(actor); err != nil {
		return err
	}
	current, err := u.Get(ctx, id)
	if err != nil {
		return err
	}

	if current.ImagePath != "" {
		u.deleteImage(ctx, current.ImagePath)
	}
	if err := u.repo.Delete(ctx, current.ID); err != nil {
		return err
	}
	u.logger.Info("product deleted", zap.String("product_id", current.ID), zap.String("actor", actor.UserID))
	return nil
}

func (u *ProductUseCase) Get(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

// ListAll returns every product, including unavailable ones, by name.
func (u *ProductUseCase) ListAll(ctx context.Context, actor *entities.Actor) ([]entities.Product, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	products, err := u.repo.List(ctx, false)
	if err != nil {
		return nil, err
	}
	sortProducts(products, ProductSortNameAsc)
	return products, nil
}

func (u *ProductUseCase) ListPublic(ctx context.Context, q ProductQuery) ([]entities.Product, error) {
	if q.Sort == "" {
		q.Sort = ProductSortNameAsc
	}
	switch q.Sort {
	case ProductSortNameAsc, ProductSortNameDesc, ProductSortPriceAsc, ProductSortPriceDesc:
	default:
		return nil, ErrInvalidProductSort
	}

	products, err := u.repo.List(ctx, true)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(q.Search))
	category := strings.TrimSpace(q.Category)
	out := products[:0]
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) && !strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		out = append(out, p)
	}
	sortProducts(out, q.Sort)
	return out, nil
}

// Featured returns up to four available products: the featured ones first,
// then the most recently updated.
func (u *ProductUseCase) Featured(ctx context.Context) ([]entities.Product, error) {
	products, err := u.repo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(products, func(i, j int) bool {
		if products[i].Featured != products[j].Featured {
			return products[i].Featured
		}
		return products[i].UpdatedAt.After(products[j].UpdatedAt)
	})
	if len(products) > featuredLimit {
		products = products[:featuredLimit]
	}
	return products, nil
}

func (u *ProductUseCase) Categories(ctx context.Context) ([]string, error) {
	products, err := u.repo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var out []string
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	collate.New(language.BrazilianPortuguese, collate.IgnoreCase).SortStrings(out)
	return out, nil
}

func (u *ProductUseCase) deleteImage(ctx context.Context, ref string) {
	if u.blobs == nil {
		return
	}
	if err := u.blobs.Delete(ctx, ref); err != nil {
		u.logger.Warn("image delete failed", zap.String("ref", ref), zap.Error(err))
	}
}

func normalizeProductInput(in ProductInput) ProductInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	in.ImagePath = strings.TrimSpace(in.ImagePath)
	sizes := make([]string, 0, len(in.Sizes))
	for _, s := range in.Sizes {
		if s = strings.TrimSpace(s); s != "" {
			sizes = append(sizes, s)
		}
	}
	in.Sizes = sizes
	if in.OnInquiry {
		in.Price = nil
	}
	return in
}

func applyProductInput(p entities.Product, in ProductInput) entities.Product {
	p.Name = in.Name
	p.Description = in.Description
	p.Category = in.Category
	p.Price = in.Price
	p.OnInquiry = in.OnInquiry
	p.Sizes = in.Sizes
	p.Available = in.Available
	p.Featured = in.Featured
	p.ImageURL = in.ImageURL
	p.ImagePath = in.ImagePath
	return p
}

// sortProducts orders by name with Portuguese collation, or by price with
// products on inquiry counting as zero.
func sortProducts(products []entities.Product, by ProductSort) {
	col := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
	price := func(p entities.Product) float64 {
		if p.Price == nil {
			return 0
		}
		return *p.Price
	}
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		switch by {
		case ProductSortNameDesc:
			return col.CompareString(a.Name, b.Name) > 0
		case ProductSortPriceAsc:
			return price(a) < price(b)
		case ProductSortPriceDesc:
			return price(a) > price(b)
		}
		return col.CompareString(a.Name, b.Name) < 0
	})
}
