package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDIsUnique(t *testing.T) {
	a := NewID()
	b := NewID()
	assert.False(t, a.IsEmpty())
	assert.NotEqual(t, a, b)
}

func TestParseReportID(t *testing.T) {
	id, err := ParseReportID("report-123")
	require.NoError(t, err)
	assert.Equal(t, "report-123", id.String())

	_, err = ParseReportID("   ")
	assert.Error(t, err)
}

func TestFingerprintIsOrderSensitive(t *testing.T) {
	a := Fingerprint([]string{"0", "1"}, []float64{0.6, 0.4})
	b := Fingerprint([]string{"0", "1"}, []float64{0.6, 0.4})
	c := Fingerprint([]string{"1", "0"}, []float64{0.4, 0.6})

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.IsEmpty())
}

func TestTimestampOrdering(t *testing.T) {
	earlier := NewTimestamp(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	later := NewTimestamp(time.Date(2025, 3, 1, 12, 0, 1, 0, time.UTC))

	assert.True(t, earlier.Before(later))
	assert.True(t, later.After(earlier))
	assert.False(t, earlier.After(later))
	assert.False(t, earlier.IsZero())
}

func TestTimestampJSONRoundTrip(t *testing.T) {
	original := NewTimestamp(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	data, err := original.MarshalJSON()
	require.NoError(t, err)

	var decoded Timestamp
	require.NoError(t, decoded.UnmarshalJSON(data))
	assert.True(t, original.Time().Equal(decoded.Time()))
}
