package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"learning-app-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// newTestRouter mounts the auth routes with no backing service; every
// request exercised here is rejected by binding or query validation
// before the service would be touched.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(nil)

	r := gin.New()
	r.GET("/check-server-connection", h.CheckServerConnection)
	r.POST("/create-account", h.CreateAccount)
	r.GET("/confirm-account", h.ConfirmAccount)
	r.POST("/verify-token", h.VerifyToken)
	r.POST("/logout-account", h.LogoutAccount)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, utils.APIResponse) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestCheckServerConnection(t *testing.T) {
	r := newTestRouter()

	w, resp := doJSON(t, r, http.MethodGet, "/check-server-connection", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, resp.Success)
	require.Equal(t, "Server is up and running!", resp.Message)
}

func TestCreateAccount_Validation(t *testing.T) {
	r := newTestRouter()

	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{`},
		{"missing firstname", `{"lastname":"B","email":"a@x.com","password":"password1"}`},
		{"blank lastname", `{"firstname":"A","lastname":"","email":"a@x.com","password":"password1"}`},
		{"invalid email", `{"firstname":"A","lastname":"B","email":"not-an-email","password":"password1"}`},
		{"short password", `{"firstname":"A","lastname":"B","email":"a@x.com","password":"short"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, resp := doJSON(t, r, http.MethodPost, "/create-account", tc.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			require.False(t, resp.Success)
		})
	}
}

func TestConfirmAccount_MissingToken(t *testing.T) {
	r := newTestRouter()

	w, resp := doJSON(t, r, http.MethodGet, "/confirm-account", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.False(t, resp.Success)
	require.Equal(t, "Token is required", resp.Message)
}

func TestVerifyToken_MissingToken(t *testing.T) {
	r := newTestRouter()

	w, resp := doJSON(t, r, http.MethodPost, "/verify-token", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.False(t, resp.Success)
}

func TestLogoutAccount_MissingToken(t *testing.T) {
	r := newTestRouter()

	w, resp := doJSON(t, r, http.MethodPost, "/logout-account", `{"token":""}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.False(t, resp.Success)
}
