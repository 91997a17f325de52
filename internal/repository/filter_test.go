package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSearchFilter_HasDepartureWindow(t *testing.T) {
	assert.False(t, SearchFilter{}.HasDepartureWindow())

	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, SearchFilter{DepartFrom: from}.HasDepartureWindow())

	to := from.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	assert.True(t, SearchFilter{DepartFrom: from, DepartTo: to}.HasDepartureWindow())
}

func TestSearchFilter_Key(t *testing.T) {
	base := SearchFilter{Origin: "LAS", Destination: "VNY", Limit: 50}

	assert.Equal(t, base.Key(), base.Key())

	other := base
	other.Destination = "LAX"
	assert.NotEqual(t, base.Key(), other.Key())

	dated := base
	dated.DepartFrom = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	dated.DepartTo = dated.DepartFrom.Add(23 * time.Hour)
	assert.NotEqual(t, base.Key(), dated.Key())
}
