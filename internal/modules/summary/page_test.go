package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitformal.com/app/internal/upstream"
)

func TestBuildPageOmitsAbsentSections(t *testing.T) {
	page := BuildPage(PageInput{})
	assert.Nil(t, page.Dates)
	assert.Nil(t, page.Pickup)
	assert.Nil(t, page.Deliver)
	assert.Nil(t, page.Price)
	assert.Empty(t, page.Items)
	assert.Equal(t, "Confirm Order", page.ConfirmLabel)
	assert.False(t, page.ConfirmDisabled)
}

func TestBuildPageFullDraft(t *testing.T) {
	page := BuildPage(PageInput{
		BookingDate:     "2025-12-08",
		MeasurementDate: "2025-12-10",
		DeliveryDate:    "2025-12-20",
		Delivery:        &upstream.Address{FullName: "Asha Rao", City: "Bengaluru"},
		Items:           []SelectedItem{{Name: "Shirt", Quantity: 2}},
		PriceList:       []PriceEntry{{Name: "Shirt", FullPrice: 500, DiscountPrice: 450}},
	})

	require.NotNil(t, page.Dates)
	assert.Equal(t, "08 Dec 2025", page.Dates.Booking)
	assert.Equal(t, "10 Dec 2025", page.Dates.Measurement)
	assert.Equal(t, "20 Dec 2025", page.Dates.Delivery)

	require.NotNil(t, page.Deliver)
	assert.Equal(t, "Asha Rao", page.Deliver.FullName)
	assert.Nil(t, page.Pickup)

	require.NotNil(t, page.Price)
	assert.Equal(t, "₹1,000.00", page.Price.TotalFullPrice)
	assert.Equal(t, "₹100.00", page.Price.TotalDiscount)
	assert.Equal(t, "₹9.00", page.Price.PlatformFee)
	assert.Equal(t, "₹909.00", page.Price.FinalTotal)
	assert.Equal(t, "₹100.00", page.Price.TotalSavings, "savings shown when discount > 0")
}

func TestBuildPageCreatingState(t *testing.T) {
	page := BuildPage(PageInput{Creating: true})
	assert.True(t, page.ConfirmDisabled)
	assert.Equal(t, "Creating Order...", page.ConfirmLabel)
}

func TestBuildPageHidesZeroSavings(t *testing.T) {
	page := BuildPage(PageInput{
		Items:     []SelectedItem{{Name: "Hemming", Quantity: 1}},
		PriceList: []PriceEntry{{Name: "Hemming", FullPrice: 100, DiscountPrice: 100}},
	})
	require.NotNil(t, page.Price)
	assert.Empty(t, page.Price.TotalSavings)
}
