package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrop_DecodesStringNumbersAndNumericIDs(t *testing.T) {
	raw := `{"cropId":12,"farmerId":3,"cropName":"Wheat","price":"25.5","quantity":"","actualHarvestDate":"2024-03-01"}`

	var c Crop
	require.NoError(t, json.Unmarshal([]byte(raw), &c))

	assert.Equal(t, ID("12"), c.CropID)
	assert.Equal(t, ID("3"), c.FarmerID)
	assert.InDelta(t, 25.5, c.Price.Float(), 1e-9)
	assert.Zero(t, c.Quantity)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), c.HarvestDate.Time)
}

func TestNumber_Invalid(t *testing.T) {
	var n Number
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &n))
	assert.Error(t, json.Unmarshal([]byte(`true`), &n))
}

func TestTimestamp_Layouts(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{`"2024-05-06T07:08:09"`, time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)},
		{`"2024-05-06T07:08:09.123"`, time.Date(2024, 5, 6, 7, 8, 9, 123000000, time.UTC)},
		{`"2024-05-06T07:08:09Z"`, time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)},
		{`"2024-05-06"`, time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)},
		{`null`, time.Time{}},
		{`""`, time.Time{}},
	}
	for _, tt := range tests {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(tt.in), &ts), tt.in)
		assert.True(t, tt.want.Equal(ts.Time), tt.in)
	}

	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
}

func TestTimestamp_Marshal(t *testing.T) {
	b, err := json.Marshal(Timestamp{Time: time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, `"2024-05-06T07:08:09"`, string(b))

	b, err = json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(b))
}
