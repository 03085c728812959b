package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/granttrack/granttrack/internal/api/middleware"
	"github.com/granttrack/granttrack/internal/config"
	"github.com/granttrack/granttrack/internal/domain/user"
	"github.com/granttrack/granttrack/internal/testutils"
)

// End-to-end flow against a real Postgres. Needs Docker or TEST_DB_DSN.
func TestAPIFlow(t *testing.T) {
	if os.Getenv("INTEGRATION") == "" {
		t.Skip("set INTEGRATION=1 to run integration tests")
	}

	gdb, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	config.JwtSecret = "integration-secret"
	middleware.Init()
	router := testutils.SetupRouter(gdb)

	do := func(method, path, token string, body any) *httptest.ResponseRecorder {
		t.Helper()
		var buf bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// Register and promote to admin directly in the store.
	w := do(http.MethodPost, "/register", "", gin.H{"username": "admin", "password": "integration"})
	require.Equal(t, http.StatusCreated, w.Code)
	require.NoError(t, gdb.Model(&user.User{}).Where("username = ?", "admin").Update("is_admin", true).Error)

	w = do(http.MethodPost, "/login", "", gin.H{"username": "admin", "password": "integration"})
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	token := login.Token

	w = do(http.MethodPost, "/grants", token, gin.H{"full_name": "Community Grant", "short_name": "CG", "slug": "cg"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(http.MethodPost, "/topics", token, gin.H{"name": "festival", "grant_id": 1, "open_for_tickets": true})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(http.MethodPost, "/tickets", token, gin.H{
		"summary": "travel", "topic_id": 1,
		"state": "expenses filed", "rating_percentage": 100,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var tk struct {
		ID        uint  `json:"id"`
		ClusterID *uint `json:"cluster_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tk))
	require.NotNil(t, tk.ClusterID)
	assert.Equal(t, tk.ID, *tk.ClusterID)

	w = do(http.MethodPost, fmt.Sprintf("/tickets/%d/expenditures", tk.ID), token,
		gin.H{"description": "train", "amount": "100.00"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(http.MethodPost, "/transactions", token, gin.H{
		"date": "2024-05-01", "amount": "100.00", "ticket_ids": []uint{tk.ID},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(http.MethodGet, fmt.Sprintf("/tickets/%d", tk.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"payment_status":"paid"`)

	w = do(http.MethodGet, "/topics/1/finance", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"fuzzy":false`)

	w = do(http.MethodGet, fmt.Sprintf("/clusters/%d", tk.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"more_tickets":false`)
}
