package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "hh:mm", input: "18:30", want: "18:30"},
		{name: "db time with seconds", input: "07:05:00", want: "07:05"},
		{name: "single digit hour", input: "7:05", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "out of range", input: "25:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("18:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("19:00"), got)

	got, err = TimeString("23:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), got)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.Error(t, err)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("18:00").IsBefore("18:30"))
	assert.True(t, TimeString("24:00").IsAfter("23:59"))
	assert.Equal(t, 0, TimeString("09:15").Compare("09:15"))
	assert.Equal(t, 18*60+30, TimeString("18:30").Minutes())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("18:00:00"))
	assert.Equal(t, TimeString("18:00"), ts)

	require.NoError(t, ts.Scan([]byte("06:45")))
	assert.Equal(t, TimeString("06:45"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 9, 10, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("09:10"), ts)

	assert.Error(t, ts.Scan(42))
}
