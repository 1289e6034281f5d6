package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"agronomy-services-api-server/config"
	"agronomy-services-api-server/internal/api/routes"
	"agronomy-services-api-server/internal/auth"
	"agronomy-services-api-server/internal/notify"
	"agronomy-services-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// recorder captures intents synchronously so tests can count them.
type recorder struct {
	mu      sync.Mutex
	intents []notify.Intent
}

func (r *recorder) Send(intent notify.Intent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.intents = append(r.intents, intent)
}

func (r *recorder) byTemplate(template string) []notify.Intent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []notify.Intent
	for _, intent := range r.intents {
		if intent.Template == template {
			out = append(out, intent)
		}
	}
	return out
}

func newTestServer(t *testing.T) (*gin.Engine, *store.Store, *recorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	auth.Init("test-secret", time.Hour)

	st := store.New(filepath.Join(t.TempDir(), "database.json"))
	st.Load()

	rec := &recorder{}
	var cfg config.Config
	cfg.SMTP.AdminEmail = "admin@aaronagronomy.com"

	return routes.SetupRouter(st, rec, cfg), st, rec
}

func doJSON(r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func registrationPayload() map[string]any {
	return map[string]any{
		"firstName":       "Jane",
		"lastName":        "Wanjiku",
		"email":           "jane@example.com",
		"phone":           "+254712345678",
		"password":        "secret1",
		"confirmPassword": "secret1",
		"farmName":        "Green Acres",
		"farmLocation":    "Nakuru",
		"farmSize":        5,
		"crops":           []string{"maize", "beans"},
		"terms":           true,
		"newsletter":      true,
	}
}

// registerFarmer runs the public registration flow and returns the issued
// token and the shared user/farmer id.
func registerFarmer(t *testing.T, r *gin.Engine) (token, userID string) {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/farmer/register", registrationPayload(), "")
	require.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	token, _ = body["token"].(string)
	require.NotEmpty(t, token)

	farmer, _ := body["farmer"].(map[string]any)
	require.NotNil(t, farmer)
	userID, _ = farmer["id"].(string)
	require.NotEmpty(t, userID)
	return token, userID
}

func staffToken(t *testing.T, id, role, name string) string {
	t.Helper()
	token, err := auth.GenerateJWT(id, role+"@demo.com", role, name)
	require.NoError(t, err)
	return token
}

func assessmentPayload() map[string]any {
	return map[string]any{
		"assessmentType": "soil",
		"farmName":       "Green Acres",
		"farmLocation":   "Eldoret",
		"farmSize":       12,
		"crops":          []string{"avocado"},
		"fullName":       "Jane Wanjiku",
		"phone":          "+254712345678",
		"email":          "jane@example.com",
		"terms":          true,
	}
}
