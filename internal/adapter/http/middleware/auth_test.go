package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"atelie/internal/adapter/http/handlers/mocks"
	"atelie/internal/domain/entities"
	"atelie/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newAuthRouter(auth usecase.IAuthUseCase, guards ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(Authenticate(auth, zap.NewNop()))
	handlers := append(guards, func(c *gin.Context) {
		if actor := Actor(c); actor != nil {
			c.String(http.StatusOK, actor.UserID)
			return
		}
		c.String(http.StatusOK, "anonymous")
	})
	r.GET("/x", handlers...)
	return r
}

func doGet(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no header is anonymous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := mocks.NewMockIAuthUseCase(ctrl)

		w := doGet(newAuthRouter(auth), "")
		if w.Code != http.StatusOK || w.Body.String() != "anonymous" {
			t.Fatalf("expected anonymous 200, got %d %q", w.Code, w.Body.String())
		}
	})

	t.Run("valid token sets actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := mocks.NewMockIAuthUseCase(ctrl)
		auth.EXPECT().Authenticate(gomock.Any(), "tok").Return(&entities.Actor{UserID: "u1", Role: entities.RoleAdmin}, nil)

		w := doGet(newAuthRouter(auth), "Bearer tok")
		if w.Code != http.StatusOK || w.Body.String() != "u1" {
			t.Fatalf("expected u1, got %d %q", w.Code, w.Body.String())
		}
	})

	t.Run("invalid token is 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := mocks.NewMockIAuthUseCase(ctrl)
		auth.EXPECT().Authenticate(gomock.Any(), "bad").Return(nil, usecase.ErrUnauthenticated)

		if w := doGet(newAuthRouter(auth), "bearer bad"); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unexpected verifier error is 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := mocks.NewMockIAuthUseCase(ctrl)
		auth.EXPECT().Authenticate(gomock.Any(), "tok").Return(nil, errors.New("boom"))

		if w := doGet(newAuthRouter(auth), "Bearer tok"); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("other schemes are ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := mocks.NewMockIAuthUseCase(ctrl)

		w := doGet(newAuthRouter(auth), "Basic dXNlcjpwYXNz")
		if w.Code != http.StatusOK || w.Body.String() != "anonymous" {
			t.Fatalf("expected anonymous 200, got %d %q", w.Code, w.Body.String())
		}
	})
}

func TestRequireStaff(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name  string
		actor *entities.Actor
		want  int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"cliente", &entities.Actor{UserID: "c1", Role: entities.RoleCliente}, http.StatusForbidden},
		{"editor", &entities.Actor{UserID: "e1", Role: entities.RoleEditor}, http.StatusOK},
		{"admin", &entities.Actor{UserID: "a1", Role: entities.RoleAdmin}, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockIAuthUseCase(ctrl)
			header := ""
			if tc.actor != nil {
				header = "Bearer tok"
				auth.EXPECT().Authenticate(gomock.Any(), "tok").Return(tc.actor, nil)
			}

			if w := doGet(newAuthRouter(auth, RequireStaff()), header); w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	auth := mocks.NewMockIAuthUseCase(ctrl)
	auth.EXPECT().Authenticate(gomock.Any(), "admin").Return(&entities.Actor{UserID: "a1", Role: entities.RoleAdmin}, nil)
	auth.EXPECT().Authenticate(gomock.Any(), "client").Return(&entities.Actor{UserID: "c1", Role: entities.RoleCliente}, nil)

	r := newAuthRouter(auth, RequireRole(entities.RoleCliente))
	if w := doGet(r, "Bearer admin"); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for admin, got %d", w.Code)
	}
	if w := doGet(r, "Bearer client"); w.Code != http.StatusOK || w.Body.String() != "c1" {
		t.Fatalf("expected c1, got %d %q", w.Code, w.Body.String())
	}
	if w := doGet(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous, got %d", w.Code)
	}
}
