package httpserver

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"car-rental/internal/config"
	"car-rental/internal/db"
)

func TestCreateReview(t *testing.T) {
	s := newTestServer(t, config.BookingRules{})
	userID, carID := createFixtures(t, s, 50)

	rec := doJSON(t, s, http.MethodPost, "/reviews", map[string]interface{}{
		"user_id": userID,
		"car_id":  carID,
		"rating":  5,
		"comment": "Great car",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created db.Review
	decodeBody(t, rec, &created)
	assert.Greater(t, created.ID, uint(0))
	assert.Equal(t, 5, created.Rating)
	require.NotNil(t, created.Comment)
	assert.Equal(t, "Great car", *created.Comment)
	assert.False(t, created.IsApproved)
	assert.WithinDuration(t, time.Now(), created.Date, time.Minute)
}

func TestCreateReviewWithoutComment(t *testing.T) {
	s := newTestServer(t, config.BookingRules{})
	userID, carID := createFixtures(t, s, 50)

	rec := doJSON(t, s, http.MethodPost, "/reviews", map[string]interface{}{
		"user_id": userID,
		"car_id":  carID,
		"rating":  3,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created db.Review
	decodeBody(t, rec, &created)
	assert.Nil(t, created.Comment)
}

func TestCreateReviewMissingReferences(t *testing.T) {
	s := newTestServer(t, config.BookingRules{})
	userID, _ := createFixtures(t, s, 50)

	rec := doJSON(t, s, http.MethodPost, "/reviews", map[string]interface{}{
		"user_id": userID,
		"car_id":  9999,
		"rating":  4,
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "User or Car not found", body["error"])

	var count int64
	require.NoError(t, s.db.Model(&db.Review{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCreateReviewOutOfRangeRatingPersists(t *testing.T) {
	s := newTestServer(t, config.BookingRules{})
	userID, carID := createFixtures(t, s, 50)

	// rating range is documented intent, not enforced
	rec := doJSON(t, s, http.MethodPost, "/reviews", map[string]interface{}{
		"user_id": userID,
		"car_id":  carID,
		"rating":  42,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created db.Review
	decodeBody(t, rec, &created)
	assert.Equal(t, 42, created.Rating)
}
