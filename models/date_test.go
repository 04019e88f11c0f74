package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{in: "2024-02-29"},
		{in: "2023-02-29", wantErr: true},
		{in: "2024-13-01", wantErr: true},
		{in: "01/02/2024", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := ParseDate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.in, d.String())
		})
	}
}

func TestNewDate_DropsTimeOfDay(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)
	d := NewDate(time.Date(2024, 3, 1, 1, 30, 0, 0, moscow))

	assert.Equal(t, "2024-03-01", d.String())
	assert.Equal(t, time.UTC, d.Location())
}

func TestDate_After(t *testing.T) {
	a, _ := ParseDate("2024-03-02")
	b, _ := ParseDate("2024-03-01")

	assert.True(t, a.After(b))
	assert.False(t, b.After(a))
	assert.False(t, a.After(a))
}

func TestDate_JSON(t *testing.T) {
	var v struct {
		D Date `json:"d"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"d":"2024-02-01"}`), &v))
	assert.Equal(t, "2024-02-01", v.D.String())

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"2024-02-01"}`, string(out))

	require.NoError(t, json.Unmarshal([]byte(`{"d":null}`), &v))
	assert.True(t, v.D.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"d":"yesterday"}`), &v))
}

func TestDate_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want string
	}{
		{name: "time", src: time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC), want: "2024-05-06"},
		{name: "text", src: "2024-05-06", want: "2024-05-06"},
		{name: "sqlite datetime text", src: []byte("2024-05-06T00:00:00Z"), want: "2024-05-06"},
		{name: "null", src: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.src))
			assert.Equal(t, tt.want, d.String())
		})
	}

	var d Date
	assert.Error(t, d.Scan(42))
}

func TestDate_Value(t *testing.T) {
	d, _ := ParseDate("2024-05-06")

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-05-06", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
