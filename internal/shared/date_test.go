package shared

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-15")
	require.NoError(t, err)
	require.Equal(t, "2026-03-15", d.String())

	_, err = ParseDate("15/03/2026")
	require.Error(t, err)
}

func TestDateMarshalJSON(t *testing.T) {
	d := NewDate(time.Date(2026, 3, 15, 18, 45, 0, 0, time.UTC))
	raw, err := json.Marshal(d)
	require.NoError(t, err)
	require.Equal(t, `"2026-03-15"`, string(raw))
}

func TestDateUnmarshalJSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-03-15"`), &d))
	require.Equal(t, "2026-03-15", d.String())

	// RFC3339 timestamps truncate to the day.
	require.NoError(t, json.Unmarshal([]byte(`"2026-03-15T14:30:00Z"`), &d))
	require.Equal(t, "2026-03-15", d.String())

	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	require.True(t, d.IsZero())

	require.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &d))
}

func TestDateValue(t *testing.T) {
	var zero Date
	v, err := zero.Value()
	require.NoError(t, err)
	require.Nil(t, v)

	d := NewDate(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	v, err = d.Value()
	require.NoError(t, err)
	require.Equal(t, d.Time, v)
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)))
	require.Equal(t, "2026-03-15", d.String())

	require.NoError(t, d.Scan("2026-04-01"))
	require.Equal(t, "2026-04-01", d.String())

	require.NoError(t, d.Scan(nil))
	require.True(t, d.IsZero())

	require.Error(t, d.Scan(42))
}
