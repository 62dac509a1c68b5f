package commit_import

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioSchedule/internal/api/middleware"
	"github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-StudioSchedule/internal/service/enrollments"
	"github.com/m04kA/SMC-StudioSchedule/internal/testutil"
	importStudents "github.com/m04kA/SMC-StudioSchedule/internal/usecase/import_students"
	"github.com/m04kA/SMC-StudioSchedule/pkg/logger"
	"github.com/m04kA/SMC-StudioSchedule/pkg/metrics"
)

func newRouter(store *memstore.Store) *mux.Router {
	svc := enrollments.NewService(
		store.FixedSlots(),
		store.ClassTypes(),
		store.Students(),
		store.TxManager(),
		(*metrics.Metrics)(nil),
		logger.NewNop(),
	)
	uc := importStudents.NewUseCase(store.Students(), svc, store.TxManager(), logger.NewNop())
	h := NewHandler(uc, logger.NewNop())

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/imports/students/commit", h.Handle).Methods(http.MethodPost)
	return r
}

func post(r http.Handler, role, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports/students/commit", strings.NewReader(body))
	req.Header.Set(middleware.HeaderUserID, "user-1")
	req.Header.Set(middleware.HeaderUserRole, role)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	store := testutil.Store()
	r := newRouter(store)

	rec := post(r, "receptionist", `{"rows": [
		{"line": 1, "name": "Ana Souza", "decision": "confirm"},
		{"line": 2, "name": "Zeca Pagodinho", "decision": "create", "fixedSlotId": "slot-pilates-wed-18"},
		{"line": 3, "name": "Ninguém", "decision": "skip"}
	]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body CommitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Matched)
	assert.Equal(t, 1, body.Created)
	assert.Equal(t, 1, body.Skipped)
	require.Len(t, body.Results, 3)
	assert.Equal(t, "st-1", body.Results[0].StudentID)
	assert.Equal(t, "created", body.Results[1].Outcome)
	assert.NotEmpty(t, body.Results[1].EnrollmentID)
}

func TestHandle_Rejected(t *testing.T) {
	r := newRouter(testutil.Store())

	tests := []struct {
		name       string
		role       string
		body       string
		wantStatus int
	}{
		{
			name:       "student cannot import",
			role:       "student",
			body:       `{"rows": [{"line": 1, "name": "Ana", "decision": "create"}]}`,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "unknown decision",
			role:       "admin",
			body:       `{"rows": [{"line": 1, "name": "Ana", "decision": "merge"}]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown field",
			role:       "admin",
			body:       `{"lines": []}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(r, tt.role, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
