package database

import (
	"path/filepath"
	"testing"

	"agronomy-services-api-server/internal/auth"
	"agronomy-services-api-server/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDemoData(t *testing.T) {
	st := store.New(filepath.Join(t.TempDir(), "database.json"))
	st.Load()

	require.NoError(t, SeedDemoData(st))

	assert.Equal(t, 3, st.Count("users"))
	assert.Equal(t, 1, st.Count("farmers"))
	assert.Equal(t, 1, st.Count("farmOrders"))
	assert.Equal(t, 1, st.Count("sales"))
	assert.Equal(t, 1, st.Count("agronomistReports"))
	assert.Equal(t, 1, st.Count("scheduledVisits"))

	farmer := st.FindOne("users", func(d store.Document) bool { return d["email"] == "farmer@demo.com" })
	require.NotNil(t, farmer)
	hash, _ := farmer["password"].(string)
	assert.True(t, auth.CheckPasswordHash("farmer123", hash))
}

func TestSeedSkipsNonEmptyStore(t *testing.T) {
	st := store.New(filepath.Join(t.TempDir(), "database.json"))
	st.Load()

	_, err := st.Insert("users", store.Document{"id": "existing", "email": "someone@example.com"})
	require.NoError(t, err)

	require.NoError(t, SeedDemoData(st))
	assert.Equal(t, 1, st.Count("users"))
}
