package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/shishant-cloud/ClassSchedule/internal/config"
	"github.com/shishant-cloud/ClassSchedule/internal/middleware"
	"github.com/shishant-cloud/ClassSchedule/internal/routes"
	"github.com/shishant-cloud/ClassSchedule/internal/store"
	"github.com/shishant-cloud/ClassSchedule/web"
)

func setup(t *testing.T) (*gin.Engine, *store.Store, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:            "5000",
		DataDir:         t.TempDir(),
		SessionSecret:   "test-secret",
		InviteCode:      "JOIN2024",
		AdminUsername:   "admin",
		AdminPassword:   "admin123",
		AdminName:       "Administrator",
		StudentUsername: "student1",
		StudentPassword: "student123",
		StudentName:     "John Doe",
	}

	s, err := store.New(cfg.DataDir)
	require.NoError(t, err)
	require.NoError(t, store.Seed(s, cfg))

	r := gin.New()
	r.SetHTMLTemplate(web.Templates())
	routes.Register(r, s, cfg)
	return r, s, cfg
}

func get(r *gin.Engine, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r *gin.Engine, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// login posts credentials and returns the session cookie from the response.
func login(t *testing.T, r *gin.Engine, username, password string) *http.Cookie {
	t.Helper()
	w := postForm(r, "/login", url.Values{
		"username": {username},
		"password": {password},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code, "login should redirect")

	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			return ck
		}
	}
	t.Fatal("no session cookie set")
	return nil
}
