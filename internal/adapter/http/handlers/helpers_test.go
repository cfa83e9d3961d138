package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"atelie/internal/adapter/http/middleware"
	"atelie/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var (
	testLoc     = time.FixedZone("BRT", -3*3600)
	staffActor  = &entities.Actor{UserID: "admin-1", Email: "admin@atelie.com", Role: entities.RoleAdmin}
	clientActor = &entities.Actor{UserID: "cli-1", Email: "ana@x.com", Role: entities.RoleCliente}
)

// newRouter returns a gin engine in test mode that injects actor, if any.
func newRouter(actor *entities.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if actor != nil {
			middleware.SetActor(c, actor)
		}
		c.Next()
	})
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
}
