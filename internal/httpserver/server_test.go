package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	_ "hotel-assistant/docs"
	"hotel-assistant/internal/chat"
	"hotel-assistant/internal/intent"
	"hotel-assistant/internal/middleware"
	"hotel-assistant/internal/navigation"
	"hotel-assistant/internal/routes"
	"hotel-assistant/pkg/log"
)

type stubUseCase struct{}

func (stubUseCase) Process(ctx context.Context, input chat.ProcessInput) chat.ProcessedResult {
	return chat.ProcessedResult{Kind: chat.KindChat, Text: "Xin chào quý khách", QuickReplies: []string{}, Generation: &chat.Generation{}}
}

func (stubUseCase) ValidateMessage(message string) chat.ValidationResult {
	return chat.ValidationResult{Valid: true}
}

func newTestServer(t *testing.T, ready func() error) *HTTPServer {
	t.Helper()

	tables, err := intent.LoadDefaultTables()
	if err != nil {
		t.Fatalf("LoadDefaultTables: %v", err)
	}
	table, err := routes.LoadDefault()
	if err != nil {
		t.Fatalf("routes.LoadDefault: %v", err)
	}

	srv, err := New(log.NewNop(), Config{
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "production",
		ChatUseCase: stubUseCase{},
		Classifier:  intent.New(tables),
		Resolver:    navigation.New(table),
		Middleware:  middleware.New(log.NewNop(), middleware.Config{}),
		Ready:       ready,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "missing mode", cfg: Config{Port: 8080}},
		{name: "missing port", cfg: Config{Mode: gin.TestMode}},
		{name: "missing chat", cfg: Config{Port: 8080, Mode: gin.TestMode}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(log.NewNop(), tt.cfg); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := New(nil, Config{Port: 8080, Mode: gin.TestMode}); err == nil {
		t.Error("expected error for nil logger")
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, nil)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("%s: code = %d, want 200", path, w.Code)
		}
		if w.Header().Get(middleware.HeaderRequestID) == "" {
			t.Errorf("%s: missing request id header", path)
		}
	}
}

func TestReadyCheck_NotReady(t *testing.T) {
	srv := newTestServer(t, func() error { return errors.New("no providers") })

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("code = %d, want 503", w.Code)
	}
}

func TestChatRoutesMounted(t *testing.T) {
	srv := newTestServer(t, nil)

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/chat/routes?roleIds=1", nil))
	if w.Code != http.StatusOK {
		t.Errorf("code = %d, want 200", w.Code)
	}
}

func TestSwaggerDoc(t *testing.T) {
	srv := newTestServer(t, nil)

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{`"title": "Hotel Assistant API"`, `"/api/v1/chat/message"`, `"SHOW_AVAILABLE_ROUTES"`} {
		if !strings.Contains(body, want) {
			t.Errorf("doc.json missing %s", want)
		}
	}
}
