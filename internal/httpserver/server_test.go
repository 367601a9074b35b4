package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"car-rental/internal/config"
	"car-rental/internal/db"
)

func newTestServer(t *testing.T, rules config.BookingRules) *Server {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Sync(conn))
	return New(conn, rules)
}

func doJSON(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// createFixtures inserts one user and one car directly, returning their ids.
func createFixtures(t *testing.T, s *Server, pricePerDay float64) (uint, uint) {
	t.Helper()
	user := db.User{Name: "Ivan Ivanov", Email: "ivan@example.com"}
	require.NoError(t, s.db.Create(&user).Error)
	car := db.Car{Brand: "Toyota", Model: "Camry", Year: 2023, PricePerDay: pricePerDay}
	require.NoError(t, s.db.Create(&car).Error)
	return user.ID, car.ID
}
