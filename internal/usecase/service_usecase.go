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
	ErrServiceNotFound  = errors.New("service not found")
	ErrInvalidServiceID = errors.New("invalid service id")
)

var serviceMessages = map[string]string{
	"kind":           "Tipo de serviço é obrigatório",
	"description":    "Descrição é obrigatória",
	"estimatedPrice": "Preço estimado inválido",
}

type ServiceInput struct {
	Kind              string  `json:"kind" validate:"required"`
	Description       string  `json:"description" validate:"required"`
	EstimatedPrice    float64 `json:"estimatedPrice" validate:"gte=0"`
	EstimatedDuration string  `json:"estimatedDuration"`
	ImageURL          string  `json:"imageUrl"`
	ImagePath         string  `json:"imagePath"`
}

type IServiceUseCase interface {
	Create(ctx context.Context, actor *entities.Actor, in ServiceInput) (entities.Service, error)
	Update(ctx context.Context, actor *entities.Actor, id string, in ServiceInput) (entities.Service, error)
	Delete(ctx context.Context, actor *entities.Actor, id string) error
	Get(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context) ([]entities.Service, error)
}

type ServiceUseCase struct {
	repo     interfaces.IServiceRepository
	blobs    interfaces.IBlobStorage
	validate *validator.Validate
	now      func() time.Time
	logger   *zap.Logger
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.IServiceRepository, blobs interfaces.IBlobStorage, logger *zap.Logger) *ServiceUseCase {
	return &ServiceUseCase{
		repo:     repo,
		blobs:    blobs,
		validate: pkg.NewValidator(),
		now:      time.Now,
		logger:   logger.Named("service.usecase"),
	}
}

func (u *ServiceUseCase) Create(ctx context.Context, actor *entities.Actor, in ServiceInput) (entities.Service, error) {
	if err := requireStaff(actor); err != nil {
		return entities.Service{}, err
	}
	in = normalizeServiceInput(in)
	if err := pkg.ValidateStruct(u.validate, in, serviceMessages); err != nil {
		return entities.Service{}, err
	}

	now := u.now().UTC()
	s := applyServiceInput(entities.Service{ID: uuid.NewString(), CreatedAt: now}, in)
	s.UpdatedAt = now
	return u.repo.Create(ctx, s)
}

func (u *ServiceUseCase) Update(ctx context.Context, actor *entities.Actor, id string, in ServiceInput) (entities.Service, error) {
	if err := requireStaff(actor); err != nil {
		return entities.Service{}, err
	}
	in = normalizeServiceInput(in)
	if err := pkg.ValidateStruct(u.validate, in, serviceMessages); err != nil {
		return entities.Service{}, err
	}

	current, err := u.Get(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	s := applyServiceInput(current, in)
	s.UpdatedAt = u.now().UTC()

	updated, err := u.repo.Update(ctx, s)
	if err != nil {
		return entities.Service{}, err
	}
	if updated.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	if current.ImagePath != "" && current.ImagePath != updated.ImagePath {
		u.deleteImage(ctx, current.ImagePath)
	}
	return updated, nil
}

func (u *ServiceUseCase) Delete(ctx context.Context, actor *entities.Actor, id string) error {
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
	u.logger.Info("service deleted", zap.String("service_id", current.ID), zap.String("actor", actor.UserID))
	return nil
}

func (u *ServiceUseCase) Get(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

// List returns every service ordered by kind.
func (u *ServiceUseCase) List(ctx context.Context) ([]entities.Service, error) {
	services, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	col := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
	sort.SliceStable(services, func(i, j int) bool {
		return col.CompareString(services[i].Kind, services[j].Kind) < 0
	})
	return services, nil
}

func (u *ServiceUseCase) deleteImage(ctx context.Context, ref string) {
	if u.blobs == nil {
		return
	}
	if err := u.blobs.Delete(ctx, ref); err != nil {
		u.logger.Warn("image delete failed", zap.String("ref", ref), zap.Error(err))
	}
}

func normalizeServiceInput(in ServiceInput) ServiceInput {
	in.Kind = strings.TrimSpace(in.Kind)
	in.Description = strings.TrimSpace(in.Description)
	in.EstimatedDuration = strings.TrimSpace(in.EstimatedDuration)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	in.ImagePath = strings.TrimSpace(in.ImagePath)
	return in
}

func applyServiceInput(s entities.Service, in ServiceInput) entities.Service {
	s.Kind = in.Kind
	s.Description = in.Description
	s.EstimatedPrice = in.EstimatedPrice
	s.EstimatedDuration = in.EstimatedDuration
	s.ImageURL = in.ImageURL
	s.ImagePath = in.ImagePath
	return s
}
