package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"atelie/internal/adapter/http/handlers/mocks"
	"atelie/internal/domain/entities"
	"atelie/internal/usecase"
	"atelie/internal/usecase/interfaces"

	"go.uber.org/mock/gomock"
)

func TestClientHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIClientUseCase(ctrl)
	h := NewClientHandler(uc, testLoc)
	r := newRouter(staffActor)
	r.GET("/v1/admin/clients", h.List)
	r.GET("/v1/admin/clients/:id", h.Get)
	r.DELETE("/v1/admin/clients/:id", h.Delete)

	uc.EXPECT().List(gomock.Any(), staffActor, usecase.ClientQuery{}).Return([]entities.Client{{ID: "c1", Name: "Ana"}}, nil)
	uc.EXPECT().List(gomock.Any(), staffActor, usecase.ClientQuery{Search: "ana@x"}).Return([]entities.Client{{ID: "c1", Name: "Ana"}}, nil)
	uc.EXPECT().Delete(gomock.Any(), staffActor, entities.ClientID("c1")).Return(nil)
	uc.EXPECT().Delete(gomock.Any(), staffActor, entities.ClientID("c2")).Return(usecase.ErrForbidden)
	uc.EXPECT().GetDetail(gomock.Any(), staffActor, entities.ClientID("c1")).Return(usecase.ClientDetail{
		Client: entities.Client{ID: "c1", Name: "Ana"},
		Orders: []entities.EnrichedOrder{{Order: entities.Order{ID: "o1"}}},
	}, nil)
	uc.EXPECT().GetDetail(gomock.Any(), staffActor, entities.ClientID("c9")).Return(usecase.ClientDetail{}, usecase.ErrClientNotFound)

	if w := doJSON(r, http.MethodGet, "/v1/admin/clients", ""); w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/v1/admin/clients?search=+ana@x+", ""); w.Code != http.StatusOK {
		t.Fatalf("search: expected 200, got %d", w.Code)
	}

	w := doJSON(r, http.MethodGet, "/v1/admin/clients/c1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("detail: expected 200, got %d", w.Code)
	}
	var body struct {
		Name   string           `json:"name"`
		Orders []map[string]any `json:"orders"`
	}
	decodeBody(t, w, &body)
	if body.Name != "Ana" || len(body.Orders) != 1 {
		t.Fatalf("unexpected detail: %+v", body)
	}

	if w := doJSON(r, http.MethodGet, "/v1/admin/clients/c9", ""); w.Code != http.StatusNotFound {
		t.Fatalf("missing: expected 404, got %d", w.Code)
	}

	if w := doJSON(r, http.MethodDelete, "/v1/admin/clients/c1", ""); w.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodDelete, "/v1/admin/clients/c2", ""); w.Code != http.StatusForbidden {
		t.Fatalf("delete forbidden: expected 403, got %d", w.Code)
	}
}

func TestDashboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIDashboardUseCase(ctrl)
	r := newRouter(staffActor)
	r.GET("/v1/admin/dashboard", NewDashboardHandler(uc, testLoc).Summary)

	uc.EXPECT().Summary(gomock.Any(), staffActor).Return(usecase.DashboardSummary{Products: 3, PendingOrders: 2}, nil)

	w := doJSON(r, http.MethodGet, "/v1/admin/dashboard", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Products      int              `json:"products"`
		PendingOrders int              `json:"pendingOrders"`
		RecentOrders  []map[string]any `json:"recentOrders"`
	}
	decodeBody(t, w, &body)
	if body.Products != 3 || body.PendingOrders != 2 || body.RecentOrders == nil {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func newImageRequest(t *testing.T, folder string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if data != nil {
		fw, err := mw.CreateFormFile("file", "vestido.png")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		_, _ = fw.Write(data)
	}
	_ = mw.Close()
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/images?folder="+folder, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestImageHandler_Upload(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIImageUseCase(ctrl)
		r := newRouter(staffActor)
		r.POST("/v1/admin/images", NewImageHandler(uc).Upload)

		uc.EXPECT().Upload(gomock.Any(), staffActor, usecase.ImageUpload{Folder: "produtos", Filename: "vestido.png", Data: []byte("png")}).
			Return(interfaces.StoredObject{URL: "https://cdn/produtos/1_vestido.png", Path: "produtos/1_vestido.png"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newImageRequest(t, "produtos", []byte("png")))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIImageUseCase(ctrl)
		r := newRouter(staffActor)
		r.POST("/v1/admin/images", NewImageHandler(uc).Upload)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newImageRequest(t, "produtos", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad folder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIImageUseCase(ctrl)
		r := newRouter(staffActor)
		r.POST("/v1/admin/images", NewImageHandler(uc).Upload)

		uc.EXPECT().Upload(gomock.Any(), staffActor, gomock.Any()).Return(interfaces.StoredObject{}, usecase.ErrInvalidImageFolder)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newImageRequest(t, "orcamentos", []byte("png")))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	oversized := []struct {
		name string
		size int
	}{
		{"file over limit", MaxUploadBytes + 1},
		{"body over limit", maxRequestBytes + 1},
	}
	for _, tt := range oversized {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIImageUseCase(ctrl)
			r := newRouter(staffActor)
			r.POST("/v1/admin/images", NewImageHandler(uc).Upload)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, newImageRequest(t, "produtos", bytes.Repeat([]byte("x"), tt.size)))
			if w.Code != http.StatusRequestEntityTooLarge {
				t.Fatalf("expected 413, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestAuthHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAuthUseCase(ctrl)
	h := NewAuthHandler(uc)
	r := newRouter(nil)
	r.POST("/v1/auth/login", h.Login)
	r.POST("/v1/auth/signup", h.Signup)

	uc.EXPECT().Login(gomock.Any(), "admin@atelie.com", "secret").
		Return(usecase.Session{Token: "tok", User: entities.User{ID: "u1", Role: entities.RoleAdmin}}, nil)
	uc.EXPECT().Login(gomock.Any(), "admin@atelie.com", "wrong").Return(usecase.Session{}, usecase.ErrInvalidCredentials)
	uc.EXPECT().Signup(gomock.Any(), usecase.SignupInput{Name: "Ana", Email: "ana@x.com", Password: "123456"}).
		Return(usecase.Session{}, usecase.ErrEmailAlreadyRegistered)

	w := doJSON(r, http.MethodPost, "/v1/auth/login", `{"email":"admin@atelie.com","password":"secret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", w.Code)
	}
	var session map[string]any
	decodeBody(t, w, &session)
	if session["token"] != "tok" || session["tokenType"] != "Bearer" {
		t.Fatalf("unexpected session: %v", session)
	}

	if w := doJSON(r, http.MethodPost, "/v1/auth/login", `{"email":"admin@atelie.com","password":"wrong"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("bad login: expected 401, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/v1/auth/login", `{"email":"admin@atelie.com"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("missing password: expected 400, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/v1/auth/signup", `{"name":"Ana","email":"ana@x.com","password":"123456"}`); w.Code != http.StatusConflict {
		t.Fatalf("signup: expected 409, got %d", w.Code)
	}
}

func TestPing(t *testing.T) {
	r := newRouter(nil)
	r.GET("/v1/ping", Ping)
	if w := doJSON(r, http.MethodGet, "/v1/ping", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
