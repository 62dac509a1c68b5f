package cancel_reschedule

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-StudioSchedule/internal/api/middleware"
	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-StudioSchedule/internal/testutil"
	cancelReschedule "github.com/m04kA/SMC-StudioSchedule/internal/usecase/cancel_reschedule"
	"github.com/m04kA/SMC-StudioSchedule/pkg/logger"
	"github.com/m04kA/SMC-StudioSchedule/pkg/metrics"
)

func newRouter(store *memstore.Store) *mux.Router {
	uc := cancelReschedule.NewUseCase(
		store.Reschedules(),
		store.Sessions(),
		testutil.Loader(store),
		store.Locker(),
		store.TxManager(),
		(*metrics.Metrics)(nil),
		logger.NewNop(),
	).WithTimeProvider(testutil.Clock{T: testutil.Today})
	h := NewHandler(uc, logger.NewNop())

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/reschedules/{id}/cancel", h.Handle).Methods(http.MethodPatch)
	return r
}

func cancel(r http.Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/reschedules/"+id+"/cancel", nil)
	req.Header.Set(middleware.HeaderUserID, testutil.Admin)
	req.Header.Set(middleware.HeaderUserRole, "admin")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func approved(extra ...domain.SnapshotData) *memstore.Store {
	data := domain.SnapshotData{Reschedules: []*domain.RescheduleRequest{{
		ID:                "rr-1",
		StudentID:         "st-1",
		OriginSlotID:      testutil.PilatesMon18,
		OriginDate:        testutil.Monday,
		DestinationSlotID: testutil.PilatesWed18,
		DestinationDate:   testutil.Wednesday,
		Status:            domain.RescheduleApproved,
		RequestedBy:       testutil.Admin,
	}}}
	return testutil.Store(append([]domain.SnapshotData{data}, extra...)...)
}

func TestHandle(t *testing.T) {
	rec := cancel(newRouter(approved()), "rr-1")

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestHandle_OriginFull(t *testing.T) {
	guest := domain.SnapshotData{Trials: []*domain.TrialBooking{{
		ID:           "tr-1",
		FixedSlotID:  testutil.PilatesMon18,
		Date:         testutil.Monday,
		ContactName:  "Helena Prado",
		ContactPhone: "11 99999-0000",
		Status:       domain.TrialScheduled,
	}}}

	rec := cancel(newRouter(approved(guest)), "rr-1")

	require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, msgOriginFull, body.Message)
}

func TestHandle_NotFound(t *testing.T) {
	rec := cancel(newRouter(approved()), "missing")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
