package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowForMidCampaign(t *testing.T) {
	c := Campaign{
		CampaignID: "camp-1",
		StartDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	w, err := c.WindowFor(now)
	assert.NoError(t, err)
	assert.Equal(t, now, w.Min, "mid-campaign minimum should be now")
	assert.Equal(t, 2024, w.Max.Year())
	assert.Equal(t, time.January, w.Max.Month())
	assert.Equal(t, 31, w.Max.Day(), "maximum must stay on the end date's day")
	assert.Equal(t, 23, w.Max.Hour())
	assert.Equal(t, 59, w.Max.Minute())
}

func TestWindowForBeforeStart(t *testing.T) {
	c := Campaign{
		StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

	w, err := c.WindowFor(now)
	assert.NoError(t, err)
	assert.Equal(t, c.StartDate, w.Min, "minimum should clamp to campaign start")
}

func TestWindowForEndedCampaign(t *testing.T) {
	c := Campaign{
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	_, err := c.WindowFor(now)
	assert.True(t, errors.Is(err, ErrCampaignEnded))
}

func TestWindowContains(t *testing.T) {
	w := ScheduleWindow{
		Min: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		Max: time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC),
	}

	assert.True(t, w.Contains(w.Min))
	assert.True(t, w.Contains(w.Max))
	assert.False(t, w.Contains(w.Min.Add(-time.Minute)))
	assert.False(t, w.Contains(w.Max.Add(time.Minute)))
}
