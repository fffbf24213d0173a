package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newLoginRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api/auth"))
	return r
}

func postLogin(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLoginEndpoint(t *testing.T) {
	svc, userRepo, companyRepo := newLoginService(t)
	seedAccount(t, userRepo, companyRepo)
	router := newLoginRouter(svc)

	rec := postLogin(router, `{"email":"alice@acme.com","password":"correct horse"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID          string `json:"id"`
			FullName    string `json:"full_name"`
			Role        string `json:"role"`
			CompanyName string `json:"company_name"`
			CompanyID   string `json:"company_id"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected token")
	}
	if resp.User.CompanyName != "Acme Corp" || resp.User.CompanyID != "co-1" {
		t.Fatalf("user = %+v", resp.User)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatal("response must not carry password material")
	}
}

func TestLoginEndpointFailureStatuses(t *testing.T) {
	svc, userRepo, companyRepo := newLoginService(t)
	seedAccount(t, userRepo, companyRepo)
	router := newLoginRouter(svc)

	cases := []struct {
		name    string
		body    string
		status  int
		message string
	}{
		{"unknown email", `{"email":"ghost@acme.com","password":"pw"}`, http.StatusNotFound, "User not found"},
		{"wrong password", `{"email":"alice@acme.com","password":"nope"}`, http.StatusUnauthorized, "Invalid credentials"},
		{"bad body", `{`, http.StatusBadRequest, "Invalid request body"},
	}
	for _, tc := range cases {
		rec := postLogin(router, tc.body)
		if rec.Code != tc.status {
			t.Fatalf("%s: status = %d, want %d", tc.name, rec.Code, tc.status)
		}
		var resp struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: decode: %v", tc.name, err)
		}
		if resp.Message != tc.message {
			t.Fatalf("%s: message = %q, want %q", tc.name, resp.Message, tc.message)
		}
	}
}
