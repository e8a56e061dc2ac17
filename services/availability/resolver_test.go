package availability

import (
	"testing"

	"docportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogFixture() []models.AppointmentOption {
	return []models.AppointmentOption{
		{ID: "1", Name: "Teeth Cleaning", Price: 80, Slots: []string{"8:00 AM", "9:00 AM", "10:00 AM"}},
		{ID: "2", Name: "Cavity Protection", Price: 120, Slots: []string{"8:00 AM", "11:00 AM"}},
		{ID: "3", Name: "Oral Surgery", Price: 300, Slots: []string{"9:00 AM"}},
	}
}

func TestResolveNoBookingsReturnsFullCatalog(t *testing.T) {
	catalog := catalogFixture()

	result := Resolve(catalog, nil)

	require.Len(t, result, len(catalog))
	for i, option := range result {
		assert.Equal(t, catalog[i].Name, option.Name)
		assert.Equal(t, catalog[i].Price, option.Price)
		assert.Equal(t, catalog[i].Slots, option.Slots, "slot content and order must be unchanged")
	}
}

func TestResolveSubtractsBookedSlotsPerOption(t *testing.T) {
	catalog := catalogFixture()
	booked := []models.Booking{
		{Date: "2024-01-01", Treatment: "Teeth Cleaning", Slot: "9:00 AM"},
		{Date: "2024-01-01", Treatment: "Cavity Protection", Slot: "8:00 AM"},
	}

	result := Resolve(catalog, booked)

	require.Len(t, result, 3)
	assert.Equal(t, []string{"8:00 AM", "10:00 AM"}, result[0].Slots)
	assert.Equal(t, []string{"11:00 AM"}, result[1].Slots)
	assert.Equal(t, []string{"9:00 AM"}, result[2].Slots, "other options must be unaffected")
}

func TestResolveScenarioFromSingleOptionCatalog(t *testing.T) {
	catalog := []models.AppointmentOption{
		{Name: "Cleaning", Slots: []string{"8:00 AM", "9:00 AM"}},
	}
	booked := []models.Booking{
		{Date: "2024-01-01", Treatment: "Cleaning", Slot: "8:00 AM"},
	}

	result := Resolve(catalog, booked)

	require.Len(t, result, 1)
	assert.Equal(t, "Cleaning", result[0].Name)
	assert.Equal(t, []string{"9:00 AM"}, result[0].Slots)
}

func TestResolveIgnoresUnknownTreatments(t *testing.T) {
	catalog := catalogFixture()
	booked := []models.Booking{
		{Date: "2024-01-01", Treatment: "Ghost Treatment", Slot: "8:00 AM"},
	}

	result := Resolve(catalog, booked)

	require.Len(t, result, 3)
	for i, option := range result {
		assert.Equal(t, catalog[i].Slots, option.Slots)
	}
}

func TestResolveFullyBookedOptionHasEmptySlots(t *testing.T) {
	catalog := catalogFixture()
	booked := []models.Booking{
		{Treatment: "Oral Surgery", Slot: "9:00 AM"},
	}

	result := Resolve(catalog, booked)

	assert.Empty(t, result[2].Slots)
	assert.Equal(t, "Oral Surgery", result[2].Name, "option stays in the catalog even when full")
}

func TestResolveEmptyCatalog(t *testing.T) {
	result := Resolve(nil, []models.Booking{{Treatment: "Cleaning", Slot: "8:00 AM"}})
	assert.Empty(t, result)
}

func TestResolveIsIdempotent(t *testing.T) {
	catalog := catalogFixture()
	booked := []models.Booking{
		{Treatment: "Teeth Cleaning", Slot: "8:00 AM"},
		{Treatment: "Teeth Cleaning", Slot: "10:00 AM"},
	}

	first := Resolve(catalog, booked)
	second := Resolve(catalog, booked)

	assert.Equal(t, first, second)
}

func TestResolveDoesNotMutateInputs(t *testing.T) {
	catalog := catalogFixture()
	booked := []models.Booking{{Treatment: "Teeth Cleaning", Slot: "8:00 AM"}}

	_ = Resolve(catalog, booked)

	assert.Equal(t, []string{"8:00 AM", "9:00 AM", "10:00 AM"}, catalog[0].Slots)
}
