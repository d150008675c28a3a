package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/biopage/backend/internal/api"
	"github.com/biopage/backend/internal/database"
	"github.com/biopage/backend/internal/mocks"
	"github.com/biopage/backend/internal/models"
	"github.com/biopage/backend/internal/router"
	"github.com/biopage/backend/internal/service"
	"github.com/biopage/backend/internal/types"
)

// setupPostgres starts a throwaway Postgres container and returns a
// migrated connection
func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed, skipping container-based test")
	}

	ctx := context.Background()
	const (
		dbUser = "postgres"
		dbPass = "postpass"
		dbName = "biopage"
	)

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     dbUser,
				"POSTGRES_PASSWORD": dbPass,
				"POSTGRES_DB":       dbName,
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
					return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
						dbUser, dbPass, host, port.Port(), dbName)
				}),
			).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := container.Terminate(ctx); err != nil {
			t.Errorf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	mappedPort, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, mappedPort.Port(), dbUser, dbPass, dbName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return db
}

func TestFullFlowOnPostgres(t *testing.T) {
	db := setupPostgres(t)
	gin.SetMode(gin.TestMode)

	authService := service.NewAuthService(db, "test-secret")
	profileService := service.NewProfileService(db, new(mocks.MockImageService))
	linkService := service.NewLinkService(db)

	r := router.SetupRouter(
		api.NewAuthHandler(authService),
		api.NewProfileHandler(profileService),
		api.NewLinkHandler(linkService),
		api.NewPublicHandler(profileService),
		authService,
	)

	do := func(method, path, body, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := do(http.MethodPost, "/api/auth/register",
		`{"username":"ana","email":"ana@x.com","password":"p1","confirmPassword":"p1","birthday":"2000-01-01"}`, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Duplicate registration fails on the unique index
	w = do(http.MethodPost, "/api/auth/register",
		`{"username":"ana","email":"ana@x.com","password":"p1","confirmPassword":"p1","birthday":"2000-01-01"}`, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = do(http.MethodPost, "/api/auth/login", `{"identifier":"ana@x.com","password":"p1"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	for _, link := range []string{
		`{"title":"blog","url":"http://b.com"}`,
		`{"title":"shop","url":"http://s.com"}`,
	} {
		w = do(http.MethodPost, "/api/links", link, login.Token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w = do(http.MethodGet, "/api/u/ana", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var page struct {
		Profile types.ProfileResponse `json:"profile"`
		Links   []models.Link         `json:"links"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Links, 2)
	assert.Equal(t, "shop", page.Links[0].Title)
	assert.Equal(t, "blog", page.Links[1].Title)
}
