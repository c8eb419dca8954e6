package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseDate tests parsing of the wire date format
func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{
			name:  "valid date",
			input: "1990-07-15",
			want:  NewDate(1990, time.July, 15),
		},
		{
			name:  "leap day",
			input: "2024-02-29",
			want:  NewDate(2024, time.February, 29),
		},
		{
			name:    "wrong format",
			input:   "15/07/1990",
			wantErr: true,
		},
		{
			name:    "not a date",
			input:   "yesterday",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want))
		})
	}
}

// TestDateJSON tests the JSON representation of dates
func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.July, 15)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-07-15"`, string(b))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-07-15"`), &parsed))
	assert.True(t, parsed.Equal(d))

	var invalid Date
	assert.Error(t, json.Unmarshal([]byte(`"July 15th"`), &invalid))
	assert.Error(t, json.Unmarshal([]byte(`""`), &invalid))
}

// TestBirthDateJSONDecoding tests optional birth dates on inbound customer
// payloads: null and absent leave the field nil, empty string is malformed
func TestBirthDateJSONDecoding(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantNil bool
		wantErr bool
	}{
		{
			name:    "valid birth date",
			payload: `{"name":"Ana","birth_date":"1990-07-15"}`,
		},
		{
			name:    "null birth date",
			payload: `{"name":"Ana","birth_date":null}`,
			wantNil: true,
		},
		{
			name:    "absent birth date",
			payload: `{"name":"Ana"}`,
			wantNil: true,
		},
		{
			name:    "empty string rejected",
			payload: `{"name":"Ana","birth_date":""}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var customer Customer
			err := json.Unmarshal([]byte(tt.payload), &customer)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, customer.BirthDate)
				assert.False(t, customer.IsBirthday(NewDate(2024, time.January, 1)))
				return
			}
			require.NotNil(t, customer.BirthDate)
			assert.True(t, customer.BirthDate.Equal(NewDate(1990, time.July, 15)))
		})
	}
}

// TestDateScan tests reading dates back from database values
func TestDateScan(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		want    Date
		wantErr bool
	}{
		{
			name:  "time value",
			value: time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC),
			want:  NewDate(2024, time.July, 15),
		},
		{
			name:  "byte slice",
			value: []byte("2024-07-15"),
			want:  NewDate(2024, time.July, 15),
		},
		{
			name:  "string value",
			value: "2024-07-15",
			want:  NewDate(2024, time.July, 15),
		},
		{
			name:    "unsupported type",
			value:   42,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := d.Scan(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, d.Equal(tt.want))
		})
	}
}

// TestSameMonthDay tests year-agnostic birthday matching
func TestSameMonthDay(t *testing.T) {
	tests := []struct {
		name  string
		left  Date
		right Date
		want  bool
	}{
		{
			name:  "same day different years",
			left:  NewDate(1990, time.July, 15),
			right: NewDate(2024, time.July, 15),
			want:  true,
		},
		{
			name:  "same month different day",
			left:  NewDate(1990, time.July, 15),
			right: NewDate(2024, time.July, 16),
			want:  false,
		},
		{
			name:  "same day different month",
			left:  NewDate(1990, time.July, 15),
			right: NewDate(2024, time.August, 15),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.left.SameMonthDay(tt.right))
		})
	}
}
