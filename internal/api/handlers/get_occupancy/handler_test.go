package get_occupancy

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioSchedule/internal/testutil"
	resolveOccupancy "github.com/m04kA/SMC-StudioSchedule/internal/usecase/resolve_occupancy"
	"github.com/m04kA/SMC-StudioSchedule/pkg/logger"
)

func newRouter() *mux.Router {
	store := testutil.Store()
	uc := resolveOccupancy.NewUseCase(testutil.Loader(store), store.TxManager(), logger.NewNop())
	h := NewHandler(uc, logger.NewNop())

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/slots/{slotId}/occupancy", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandle(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/slots/"+testutil.PilatesMon18+"/occupancy?date=2025-06-02", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body OccupancyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, testutil.PilatesMon18, body.SlotID)
	assert.Equal(t, "2025-06-02", body.Date)
	assert.Equal(t, 5, body.ActiveCount)
	assert.Equal(t, 5, body.Capacity)
	assert.True(t, body.IsFull)
	assert.Equal(t, "18:00", body.StartTime)
	assert.Len(t, body.Attendees, 5)
}

func TestHandle_BadDate(t *testing.T) {
	r := newRouter()

	for _, query := range []string{"", "?date=02/06/2025"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/slots/"+testutil.PilatesMon18+"/occupancy"+query, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}
