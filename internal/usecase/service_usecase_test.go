package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"atelie/internal/domain/entities"
	mock_interfaces "atelie/internal/usecase/interfaces/mocks"
	"atelie/pkg"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestServiceUseCase(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	t.Run("create validates and stamps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.Service) (entities.Service, error) {
			if s.ID == "" || s.Kind != "Barra" || s.EstimatedPrice != 25 || !s.CreatedAt.Equal(now) {
				t.Fatalf("unexpected service: %+v", s)
			}
			return s, nil
		})

		uc := NewServiceUseCase(repo, nil, zap.NewNop())
		uc.now = func() time.Time { return now }

		if _, err := uc.Create(context.Background(), staffActor, ServiceInput{Kind: " Barra ", Description: "Barra simples", EstimatedPrice: 25, EstimatedDuration: "2 dias"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := uc.Create(context.Background(), staffActor, ServiceInput{EstimatedPrice: -5})
		var ve *pkg.ValidationError
		if !errors.As(err, &ve) || len(ve.Fields) != 3 {
			t.Fatalf("expected 3 field errors, got %v", err)
		}
	})

	t.Run("unauthenticated create", func(t *testing.T) {
		uc := NewServiceUseCase(nil, nil, zap.NewNop())
		if _, err := uc.Create(context.Background(), nil, ServiceInput{}); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("list sorted by kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		repo.EXPECT().List(gomock.Any()).Return([]entities.Service{{ID: "2", Kind: "Reforma"}, {ID: "1", Kind: "ajuste"}, {ID: "3", Kind: "Bainha"}}, nil)

		got, err := NewServiceUseCase(repo, nil, zap.NewNop()).List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got[0].ID != "1" || got[1].ID != "3" || got[2].ID != "2" {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("get missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "s9").Return(entities.Service{}, nil)

		if _, err := NewServiceUseCase(repo, nil, zap.NewNop()).Get(context.Background(), "s9"); !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("update keeps image and does not delete it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		blobs := mock_interfaces.NewMockIBlobStorage(ctrl)

		current := entities.Service{ID: "s1", Kind: "Barra", ImagePath: "servicos/1_a.png", CreatedAt: now.Add(-time.Hour)}
		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(current, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.Service) (entities.Service, error) { return s, nil })

		uc := NewServiceUseCase(repo, blobs, zap.NewNop())
		got, err := uc.Update(context.Background(), editorActor, "s1", ServiceInput{Kind: "Barra italiana", Description: "d", ImagePath: "servicos/1_a.png"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Kind != "Barra italiana" || !got.CreatedAt.Equal(current.CreatedAt) {
			t.Fatalf("unexpected service: %+v", got)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		blobs := mock_interfaces.NewMockIBlobStorage(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Service{ID: "s1", ImagePath: "servicos/1_a.png"}, nil)
		gomock.InOrder(
			blobs.EXPECT().Delete(gomock.Any(), "servicos/1_a.png").Return(nil),
			repo.EXPECT().Delete(gomock.Any(), "s1").Return(nil),
		)

		if err := NewServiceUseCase(repo, blobs, zap.NewNop()).Delete(context.Background(), staffActor, "s1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
