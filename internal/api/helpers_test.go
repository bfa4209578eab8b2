package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/wikipath/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)

	return l
}

// mockFinder implements api.PathFinder for testing.
type mockFinder struct {
	mu     sync.Mutex
	calls  []models.PathRequest
	findFn func(ctx context.Context, req models.PathRequest) (*models.PathResult, error)
}

func (m *mockFinder) FindPath(ctx context.Context, req models.PathRequest) (*models.PathResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()

	return m.findFn(ctx, req)
}

// doRequest performs a GET against the router and returns the recorder.
func doRequest(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	req.RemoteAddr = "10.0.0.1:1234"

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}
