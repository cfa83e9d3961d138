package handlers

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"atelie/internal/adapter/http/handlers/mocks"
	"atelie/internal/usecase"
	"atelie/pkg"

	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_Submit(t *testing.T) {
	t.Run("json success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteIntakeUseCase(ctrl)
		r := newRouter(nil)
		r.POST("/v1/quotes", NewQuoteHandler(uc).Submit)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, req usecase.QuoteRequest) (usecase.QuoteReceipt, error) {
			if req.Name != "Ana" || req.RequestType != "servico" || req.ReferenceID != "hem-1" || req.Photo != nil {
				t.Fatalf("unexpected request: %+v", req)
			}
			return usecase.QuoteReceipt{OrderID: "o1", ClientID: "c1"}, nil
		})

		w := doJSON(r, http.MethodPost, "/v1/quotes", `{"name":"Ana","email":"ana@x.com","phone":"11999999999","requestType":"servico","referenceId":"hem-1","notes":"Hem two pants"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		decodeBody(t, w, &body)
		if body["orderId"] != "o1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("multipart with photo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteIntakeUseCase(ctrl)
		r := newRouter(nil)
		r.POST("/v1/quotes", NewQuoteHandler(uc).Submit)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		_ = mw.WriteField("name", "Ana")
		_ = mw.WriteField("requestType", "produto")
		fw, _ := mw.CreateFormFile("photo", "minha foto.jpg")
		_, _ = fw.Write([]byte("jpeg-bytes"))
		_ = mw.Close()

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, req usecase.QuoteRequest) (usecase.QuoteReceipt, error) {
			if req.Name != "Ana" || req.RequestType != "produto" {
				t.Fatalf("unexpected request: %+v", req)
			}
			if req.Photo == nil || req.Photo.Filename != "minha foto.jpg" || string(req.Photo.Data) != "jpeg-bytes" {
				t.Fatalf("unexpected photo: %+v", req.Photo)
			}
			return usecase.QuoteReceipt{OrderID: "o1", Warnings: []string{usecase.WarningPhotoNotStored}}, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteIntakeUseCase(ctrl)
		r := newRouter(nil)
		r.POST("/v1/quotes", NewQuoteHandler(uc).Submit)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(usecase.QuoteReceipt{}, pkg.NewValidationError(map[string]string{"name": "Nome é obrigatório"}))

		w := doJSON(r, http.MethodPost, "/v1/quotes", `{"email":"ana@x.com"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body pkg.HTTPError
		decodeBody(t, w, &body)
		if body.Code != "VALIDATION_ERROR" || body.Fields["name"] != "Nome é obrigatório" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteIntakeUseCase(ctrl)
		r := newRouter(nil)
		r.POST("/v1/quotes", NewQuoteHandler(uc).Submit)

		if w := doJSON(r, http.MethodPost, "/v1/quotes", "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("backend failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteIntakeUseCase(ctrl)
		r := newRouter(nil)
		r.POST("/v1/quotes", NewQuoteHandler(uc).Submit)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(usecase.QuoteReceipt{}, errors.New("create order: boom"))

		w := doJSON(r, http.MethodPost, "/v1/quotes", `{"name":"Ana"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_SubmitOversizedPhoto(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"photo over limit", MaxUploadBytes + 1},
		{"body over limit", maxRequestBytes + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIQuoteIntakeUseCase(ctrl)
			r := newRouter(nil)
			r.POST("/v1/quotes", NewQuoteHandler(uc).Submit)

			var buf bytes.Buffer
			mw := multipart.NewWriter(&buf)
			_ = mw.WriteField("name", "Ana")
			_ = mw.WriteField("requestType", "servico")
			fw, _ := mw.CreateFormFile("photo", "barra.jpg")
			_, _ = fw.Write(bytes.Repeat([]byte("x"), tt.size))
			_ = mw.Close()

			req := httptest.NewRequest(http.MethodPost, "/v1/quotes", &buf)
			req.Header.Set("Content-Type", mw.FormDataContentType())
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusRequestEntityTooLarge {
				t.Fatalf("expected 413, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}
