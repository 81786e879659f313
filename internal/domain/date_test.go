package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{
			name:  "valid date",
			input: "2026-08-29",
			want:  NewDate(2026, time.August, 29),
		},
		{
			name:  "leap day",
			input: "2024-02-29",
			want:  NewDate(2024, time.February, 29),
		},
		{
			name:    "wrong separator",
			input:   "2026/08/29",
			wantErr: true,
		},
		{
			name:    "not a date",
			input:   "tomorrow",
			wantErr: true,
		},
		{
			name:    "empty",
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
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDate_AddDays(t *testing.T) {
	tests := []struct {
		name string
		date Date
		days int
		want Date
	}{
		{
			name: "within month",
			date: NewDate(2026, time.March, 10),
			days: 1,
			want: NewDate(2026, time.March, 11),
		},
		{
			name: "month rollover",
			date: NewDate(2026, time.January, 31),
			days: 1,
			want: NewDate(2026, time.February, 1),
		},
		{
			name: "year rollover",
			date: NewDate(2026, time.December, 28),
			days: 7,
			want: NewDate(2027, time.January, 4),
		},
		{
			name: "leap february",
			date: NewDate(2024, time.February, 28),
			days: 1,
			want: NewDate(2024, time.February, 29),
		},
		{
			name: "week across month boundary",
			date: NewDate(2026, time.April, 28),
			days: 7,
			want: NewDate(2026, time.May, 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.date.AddDays(tt.days))
		})
	}
}

func TestDate_String(t *testing.T) {
	d := NewDate(2026, time.August, 5)
	assert.Equal(t, "2026-08-05", d.String())
}

func TestDate_Before(t *testing.T) {
	earlier := NewDate(2026, time.March, 10)
	later := NewDate(2026, time.March, 11)

	assert.True(t, earlier.Before(later))
	assert.False(t, later.Before(earlier))
	assert.False(t, earlier.Before(earlier))
	assert.True(t, NewDate(2025, time.December, 31).Before(NewDate(2026, time.January, 1)))
}

func TestDate_IsZero(t *testing.T) {
	assert.True(t, Date{}.IsZero())
	assert.False(t, NewDate(2026, time.January, 1).IsZero())
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2026, time.August, 29)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-29"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d, back)

	var bad Date
	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &bad))
}
