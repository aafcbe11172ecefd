package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/velora/internal/models"
)

func TestStatisticsEmptyStore(t *testing.T) {
	st := newTestStore(t)

	stats, err := st.Statistics()
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.TotalProfiles)
	assert.Equal(t, int64(0), stats.AvailableProfiles)
	assert.Equal(t, int64(0), stats.TotalUsers)
	assert.Equal(t, int64(0), stats.TotalPayments)
	assert.Equal(t, 0.0, stats.Revenue)
}

func TestStatistics(t *testing.T) {
	st := newTestStore(t)

	_, err := st.CreateProfile(newProfile("A", "Kampala", models.StatusAvailable))
	require.NoError(t, err)
	_, err = st.CreateProfile(newProfile("B", "Entebbe", models.StatusExpired))
	require.NoError(t, err)
	_, err = st.CreateProfile(newProfile("C", "Jinja", models.StatusAvailable))
	require.NoError(t, err)

	userID, err := st.CreateUser(&models.User{Name: "Alice", Phone: "+256701111111"})
	require.NoError(t, err)

	// Only completed entries count toward revenue.
	_, err = st.CreatePayment(&models.Payment{UserID: userID, Status: models.PaymentCompleted, Amount: 100})
	require.NoError(t, err)
	_, err = st.CreatePayment(&models.Payment{UserID: userID, Status: models.PaymentPending, Amount: 50})
	require.NoError(t, err)

	stats, err := st.Statistics()
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalProfiles)
	assert.Equal(t, int64(2), stats.AvailableProfiles)
	assert.Equal(t, int64(1), stats.TotalUsers)
	assert.Equal(t, int64(2), stats.TotalPayments)
	assert.Equal(t, 100.0, stats.Revenue)
}
