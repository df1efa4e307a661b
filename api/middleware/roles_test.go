package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/emabi2002/pngsme/pkg/enums"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		role       string
		wantStatus int
		wantCalled bool
	}{
		{"matching role", enums.UserRoleSeller.String(), http.StatusOK, true},
		{"wrong role", enums.UserRoleBuyer.String(), http.StatusForbidden, false},
		{"no role", "", http.StatusForbidden, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			handler := RequireRole(enums.UserRoleSeller.String(), nil)(okHandler(&called))

			req := httptest.NewRequest(http.MethodGet, "/seller/orders", nil)
			if tc.role != "" {
				req = req.WithContext(WithRole(req.Context(), tc.role))
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if called != tc.wantCalled {
				t.Fatalf("handler called = %v, want %v", called, tc.wantCalled)
			}
		})
	}
}

func TestRequireBusiness(t *testing.T) {
	t.Parallel()

	called := false
	handler := RequireBusiness(nil)(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/seller/orders", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden || called {
		t.Fatalf("status = %d, called = %v, want forbidden and not called", rec.Code, called)
	}

	called = false
	req = httptest.NewRequest(http.MethodGet, "/seller/orders", nil)
	req = req.WithContext(WithBusinessID(req.Context(), "b-1"))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || !called {
		t.Fatalf("status = %d, called = %v, want ok and called", rec.Code, called)
	}
}
