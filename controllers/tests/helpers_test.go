package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	models "LevelUp/models/postgres"
	"LevelUp/middleware"
	"LevelUp/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupServer builds the full router over an in-memory sqlite database,
// without redis or the socket gateway (both are optional collaborators).
func setupServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)
	t.Setenv("KEY", "test-signing-key")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Every pooled connection to ":memory:" would get its own empty
	// database; pin the pool to one connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		models.GameType{},
		models.Game{},
		models.User{},
		models.Gamer{},
		models.Event{},
		models.EventAttendee{},
	))

	r := gin.New()
	middleware.SetUpMiddleware(r)
	routes.SetupRoutes(r, db, nil, nil)
	return r, db
}

func postForm(t *testing.T, r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates an account and returns its Bearer token.
func registerAndLogin(t *testing.T, r *gin.Engine, email, username, firstName, lastName string) string {
	w := postForm(t, r, "/signup", url.Values{
		"email":      {email},
		"username":   {username},
		"password":   {"testpass123"},
		"first_name": {firstName},
		"last_name":  {lastName},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postForm(t, r, "/login", url.Values{
		"email":    {email},
		"password": {"testpass123"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// doJSON performs an authenticated request with an optional JSON body.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func eventPath(id uint) string {
	return fmt.Sprintf("/events/%d", id)
}

func signupPath(id uint) string {
	return fmt.Sprintf("/events/%d/signup", id)
}

// seedCatalog inserts a game type and creates one game through the API.
func seedCatalog(t *testing.T, r *gin.Engine, db *gorm.DB, token string, minPlayers, maxPlayers int) (models.GameType, uint) {
	gameType := models.GameType{Label: "Strategy"}
	require.NoError(t, db.Create(&gameType).Error)

	w := doJSON(t, r, http.MethodPost, "/games", token, gin.H{
		"name":       "Fortress America",
		"gameTypeId": gameType.ID,
		"maxPlayers": maxPlayers,
		"minPlayers": minPlayers,
		"difficulty": "medium",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var game struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &game))
	return gameType, game.ID
}
