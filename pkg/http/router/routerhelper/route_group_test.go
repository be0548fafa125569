package routerhelper

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestRouteGroup(t *testing.T) {
	router := httprouter.New()
	api := NewRouteGroup(router, "/api")
	v1 := api.Group("/v1")

	ok := func(body string) httprouter.Handle {
		return func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
			_, _ = w.Write([]byte(body))
		}
	}
	api.GET("/status", ok("status"))
	api.POST("/findpath", ok("findpath"))
	v1.GET("/status", ok("v1 status"))

	assert.Equal(t, []string{"/api/status", "/api/findpath", "/api/v1/status"}, v1.Patterns())

	testCases := []struct {
		method, path string
		wantCode     int
		wantBody     string
	}{
		{http.MethodGet, "/api/status", http.StatusOK, "status"},
		{http.MethodPost, "/api/findpath", http.StatusOK, "findpath"},
		{http.MethodGet, "/api/v1/status", http.StatusOK, "v1 status"},
		{http.MethodGet, "/status", http.StatusNotFound, ""},
		{http.MethodGet, "/api/findpath", http.StatusMethodNotAllowed, ""},
	}

	for _, tt := range testCases {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
