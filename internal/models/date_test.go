package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.January, 1)

	b, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"2024-01-01"`, string(b))

	var parsed Date
	assert.NoError(t, json.Unmarshal(b, &parsed))
	assert.Equal(t, d, parsed)
}

func TestDate_UnmarshalInvalid(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20240101`), &d))
}

func TestDate_Scan(t *testing.T) {
	t.Run("FromTime", func(t *testing.T) {
		var d Date
		assert.NoError(t, d.Scan(time.Date(2024, time.March, 5, 13, 45, 0, 0, time.FixedZone("X", 3600))))
		assert.Equal(t, "2024-03-05", d.String())
	})

	t.Run("FromString", func(t *testing.T) {
		var d Date
		assert.NoError(t, d.Scan("2024-03-05"))
		assert.Equal(t, "2024-03-05", d.String())
	})

	t.Run("FromBytes", func(t *testing.T) {
		var d Date
		assert.NoError(t, d.Scan([]byte("2024-03-05")))
		assert.Equal(t, "2024-03-05", d.String())
	})

	t.Run("Unsupported", func(t *testing.T) {
		var d Date
		assert.Error(t, d.Scan(42))
	})
}

func TestDate_Value(t *testing.T) {
	d := NewDate(2024, time.March, 5)
	v, err := d.Value()
	assert.NoError(t, err)
	assert.Equal(t, d.Time, v)
}

func TestJobDB_JSON(t *testing.T) {
	location := "Berlin"
	job := JobDB{
		ID:          1,
		OwnerID:     7,
		Title:       "SWE",
		Company:     "Acme",
		Location:    &location,
		Status:      DefaultJobStatus,
		DateApplied: NewDate(2024, time.January, 1),
	}

	b, err := json.Marshal(job)
	assert.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 1,
		"owner_id": 7,
		"title": "SWE",
		"company": "Acme",
		"location": "Berlin",
		"status": "Applied",
		"date_applied": "2024-01-01"
	}`, string(b))
}

func TestUserDB_JSONHidesPasswordHash(t *testing.T) {
	user := UserDB{ID: 1, Email: "alice@example.com", PasswordHash: "secret-hash", FirstName: "Alice", LastName: "Anderson"}

	b, err := json.Marshal(user)
	assert.NoError(t, err)
	assert.NotContains(t, string(b), "secret-hash")
	assert.Contains(t, string(b), `"firstName":"Alice"`)
}
