package httphandler_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/foliopanel/internal/adapter/driven/localfs"
	sqliteadapter "github.com/ericfisherdev/foliopanel/internal/adapter/driven/sqlite"
	httphandler "github.com/ericfisherdev/foliopanel/internal/adapter/driving/http"
	webhandler "github.com/ericfisherdev/foliopanel/internal/adapter/driving/web"
	"github.com/ericfisherdev/foliopanel/internal/application"
)

// setupServer wires the full stack against a real on-disk database and
// upload directory, the same way main does.
func setupServer(t *testing.T) http.Handler {
	t.Helper()

	dir := t.TempDir()

	db, err := sqliteadapter.NewDB(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, sqliteadapter.RunMigrations(db.Writer))

	uploadDir := filepath.Join(dir, "uploads")
	fileStore, err := localfs.New(uploadDir)
	require.NoError(t, err)

	authSvc := application.NewAuthService(sqliteadapter.NewAdminRepo(db), "test-secret", time.Hour, slog.Default())
	require.NoError(t, authSvc.EnsureAdmin(t.Context(), "admin", "admin123"))

	h := httphandler.NewHandler(
		sqliteadapter.NewExperienceRepo(db),
		sqliteadapter.NewEducationRepo(db),
		sqliteadapter.NewProjectRepo(db),
		fileStore,
		authSvc,
		slog.Default(),
	)
	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, h)
	webhandler.RegisterRoutes(mux, uploadDir)
	return httphandler.ApplyMiddleware(mux, slog.Default())
}

func TestCreateProjectEndToEnd(t *testing.T) {
	srv := setupServer(t)

	// Log in through the real credential provisioned at startup.
	loginBody := strings.NewReader(`{"username":"admin","password":"admin123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", loginBody)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&login))

	// Create a project with an image upload.
	fields := map[string]string{
		"title":       "Demo",
		"link":        "https://x.test",
		"description": "d",
	}
	req = authedMultipartRequest(t, http.MethodPost, "/api/projects", login.Token, fields, "image", "shot.png")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID float64 `json:"id"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	require.Greater(t, created.ID, float64(0))

	// The project appears in the public listing with its submitted fields.
	req = httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var projects []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&projects))
	require.Len(t, projects, 1)
	assert.Equal(t, created.ID, projects[0]["id"])
	assert.Equal(t, "Demo", projects[0]["title"])
	assert.Equal(t, "https://x.test", projects[0]["link"])

	// The image reference resolves to a fetchable URL.
	image, ok := projects[0]["image"].(string)
	require.True(t, ok)
	require.True(t, strings.HasPrefix(image, "/uploads/"))

	req = httptest.NewRequest(http.MethodGet, image, nil)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "file-bytes", rec.Body.String())
}
