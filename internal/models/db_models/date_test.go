package db_models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	var payload struct {
		DateOfBirth Date `json:"date_of_birth"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date_of_birth":"1990-05-01"}`), &payload))
	assert.Equal(t, "1990-05-01", payload.DateOfBirth.String())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date_of_birth":"1990-05-01"}`, string(out))
}

func TestDateJSONAcceptsTimestamp(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-02-15T00:00:00Z"`), &d))
	assert.Equal(t, "2024-02-15", d.String())
}

func TestDateJSONRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"15/02/2024"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20240215`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"2024-02-15garbage"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"2024-02-15T99:00:00Z"`), &d))
}

func TestDateScanRejectsTrailingGarbage(t *testing.T) {
	var d Date
	assert.Error(t, d.Scan("2024-02-15garbage"))
	assert.Error(t, d.Scan([]byte("2024-02-15 xx")))
}

func TestDateScan(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"time", time.Date(2024, time.February, 15, 13, 0, 0, 0, time.UTC), "2024-02-15"},
		{"string", "2024-02-15", "2024-02-15"},
		{"sqlite timestamp text", "2024-02-15 00:00:00+00:00", "2024-02-15"},
		{"rfc3339 text", "2024-02-15T08:30:00Z", "2024-02-15"},
		{"timestamp without zone", "2024-02-15 08:30:00", "2024-02-15"},
		{"bytes", []byte("2024-02-15"), "2024-02-15"},
		{"null", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.value))
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDateValue(t *testing.T) {
	v, err := NewDate(time.Date(2024, time.February, 15, 22, 0, 0, 0, time.Local)).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-02-15", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
