package identity

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const testSecret = "test-signing-secret"

func signToken(t *testing.T, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func protectedHandler(t *testing.T, gotUser *string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := CurrentUserID(r)
		if !ok {
			t.Error("CurrentUserID not set behind middleware")
		}
		*gotUser = id
		w.WriteHeader(http.StatusOK)
	})
}

func TestNewVerifier_RequiresSecret(t *testing.T) {
	if _, err := NewVerifier("", zap.NewNop()); err == nil {
		t.Fatal("NewVerifier accepted an empty secret")
	}
}

func TestMiddleware_ValidToken(t *testing.T) {
	v, err := NewVerifier(testSecret, zap.NewNop())
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}

	token := signToken(t, testSecret, jwt.RegisteredClaims{
		Subject:   "user-42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	var gotUser string
	req := httptest.NewRequest(http.MethodGet, "/api/preferences", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	v.Middleware(protectedHandler(t, &gotUser)).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if gotUser != "user-42" {
		t.Errorf("subject = %q, want user-42", gotUser)
	}
}

func TestMiddleware_Rejections(t *testing.T) {
	v, err := NewVerifier(testSecret, zap.NewNop())
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}

	expired := signToken(t, testSecret, jwt.RegisteredClaims{
		Subject:   "user-42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	wrongSecret := signToken(t, "some-other-secret", jwt.RegisteredClaims{
		Subject:   "user-42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	noSubject := signToken(t, testSecret, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic dXNlcjpwYXNz"},
		{"garbage token", "Bearer not.a.jwt"},
		{"expired", "Bearer " + expired},
		{"wrong secret", "Bearer " + wrongSecret},
		{"no subject", "Bearer " + noSubject},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/preferences", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			v.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("handler reached with invalid credentials")
			})).ServeHTTP(rr, req)

			if rr.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rr.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
				t.Fatalf("401 body is not JSON: %v", err)
			}
			if body["error"] != "authentication required" {
				t.Errorf("error = %q", body["error"])
			}
		})
	}
}

func TestWithTestUser(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = WithTestUser(req, "user-7")

	id, ok := CurrentUserID(req)
	if !ok || id != "user-7" {
		t.Fatalf("CurrentUserID = %q, %v", id, ok)
	}
}

func TestCurrentUserID_Absent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if id, ok := CurrentUserID(req); ok {
		t.Fatalf("CurrentUserID on bare request = %q, want absent", id)
	}
}
