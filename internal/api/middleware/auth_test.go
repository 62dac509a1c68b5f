package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

func TestAuth(t *testing.T) {
	var (
		gotUser string
		gotRole domain.Role
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = GetUserID(r.Context())
		gotRole, _ = GetRole(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		userID     string
		role       string
		wantStatus int
		wantRole   domain.Role
	}{
		{name: "missing user", role: "admin", wantStatus: http.StatusUnauthorized},
		{name: "default role", userID: "u-1", wantStatus: http.StatusNoContent, wantRole: domain.RoleStudent},
		{name: "role is case insensitive", userID: "u-1", role: " Receptionist ", wantStatus: http.StatusNoContent, wantRole: domain.RoleReceptionist},
		{name: "unknown role", userID: "u-1", role: "owner", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUser, gotRole = "", ""

			req := httptest.NewRequest(http.MethodPost, "/reschedules", nil)
			if tt.userID != "" {
				req.Header.Set(HeaderUserID, tt.userID)
			}
			if tt.role != "" {
				req.Header.Set(HeaderUserRole, tt.role)
			}
			rec := httptest.NewRecorder()

			Auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, tt.userID, gotUser)
				assert.Equal(t, tt.wantRole, gotRole)
			}
		})
	}
}

func TestWithUser(t *testing.T) {
	ctx := WithUser(httptest.NewRequest(http.MethodGet, "/", nil).Context(), "u-9", domain.RoleAdmin)

	id, ok := GetUserID(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u-9", id)

	role, ok := GetRole(ctx)
	assert.True(t, ok)
	assert.Equal(t, domain.RoleAdmin, role)
}
