package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_RoundTrip(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-02-28"`), &d))
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), d.Time)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-02-28"`, string(out))
}

func TestDate_RejectsTimestamps(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`"2026-02-28T10:00:00Z"`), &d)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestDate_RejectsEmptyString(t *testing.T) {
	var req BookingRequest
	err := json.Unmarshal([]byte(`{"listing":1,"user":"u","start_date":"","end_date":"2026-07-04"}`), &req)

	assert.ErrorContains(t, err, "must not be empty")
}

func TestDate_NullLeavesPointerNil(t *testing.T) {
	var req ListingRequest
	require.NoError(t, json.Unmarshal([]byte(`{"available_from":null}`), &req))

	assert.Nil(t, req.AvailableFrom)
}

func TestBookingRequest_ToModel(t *testing.T) {
	var req BookingRequest
	body := `{"listing":3,"user":"john.doe@email.com","start_date":"2026-07-01","end_date":"2026-07-04","total_price":"540.00"}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	b := req.ToModel()

	assert.Equal(t, uint(3), b.ListingID)
	assert.Equal(t, "john.doe@email.com", b.User)
	assert.Equal(t, 3, b.Nights())
	assert.Equal(t, "540", b.TotalPrice.String())
}

func TestBookingRequest_ToModel_NoPrice(t *testing.T) {
	req := BookingRequest{Listing: 1, User: "u"}

	b := req.ToModel()

	assert.True(t, b.TotalPrice.IsZero())
	assert.True(t, b.Start().IsZero())
}

func TestListingRequest_ToModel(t *testing.T) {
	var req ListingRequest
	body := `{"title":"Safari Lodge","description":"Game drives.","price_per_night":500,"location":"Serengeti, Tanzania","available_from":"2026-05-01","available_to":"2026-08-01"}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	l := req.ToModel()

	assert.Equal(t, "Safari Lodge", l.Title)
	assert.Equal(t, "500", l.PricePerNight.String())
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), l.To())
}

func TestListingRequest_ToModel_NoPrice(t *testing.T) {
	var req ListingRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"t"}`), &req))

	assert.Nil(t, req.PricePerNight)
	assert.True(t, req.ToModel().PricePerNight.IsZero())
}
