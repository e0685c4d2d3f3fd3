package receipt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/config"
	barModel "frontdesk/internal/domains/bar/model"
	bookingModel "frontdesk/internal/domains/booking/model"
	kitchenModel "frontdesk/internal/domains/kitchen/model"
	"frontdesk/internal/domains/order"
	"frontdesk/internal/printer"
	"frontdesk/internal/receipt"
)

func newRenderer(t *testing.T) receipt.Renderer {
	t.Helper()

	cfg := &config.Config{}
	cfg.Hotel.Name = "MIYAKY HOTEL & SUITES"
	cfg.Hotel.Address = "12 Marina Road, Lagos"
	cfg.Hotel.Phone = "+234 800 000 0000"

	r, err := receipt.New(cfg)
	require.NoError(t, err)

	return r
}

func TestRenderer_BarOrder(t *testing.T) {
	r := newRenderer(t)

	doc := r.BarOrder(barModel.BarOrder{
		ID:          "order-id-1",
		GuestName:   "Ada Obi",
		RoomNumber:  "204",
		DrinkName:   "Chapman",
		UnitPrice:   1500,
		Quantity:    3,
		TotalAmount: 4500,
		BillingType: order.BillingTypeRoomBill,
	}, receipt.LayoutCompact)

	assert.Equal(t, "₦4,500", doc.Subtotal)
	assert.Equal(t, "₦337.50", doc.VAT)
	assert.Equal(t, "₦4,837.50", doc.GrandTotal)

	out, err := r.Render(doc)
	assert.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "MIYAKY HOTEL &amp; SUITES")
	assert.Contains(t, html, "Chapman")
	assert.Contains(t, html, "₦337.50")
	assert.Contains(t, html, "₦4,837.50")
	assert.Contains(t, html, "VAT (7.5%)")
}

func TestRenderer_KitchenOrder(t *testing.T) {
	r := newRenderer(t)

	doc := r.KitchenOrder(kitchenModel.KitchenOrder{
		ID:          "order-id-2",
		GuestName:   "Chidi Eze",
		FoodName:    "Jollof Rice",
		UnitPrice:   2500,
		Quantity:    2,
		TotalAmount: 5000,
		BillingType: order.BillingTypeSeparate,
	}, receipt.LayoutFull)

	assert.Equal(t, "₦5,000", doc.Subtotal)
	assert.Equal(t, "₦375", doc.VAT)
	assert.Equal(t, "₦5,375", doc.GrandTotal)

	// Walk-in orders carry no room line.
	for _, line := range doc.Lines {
		assert.NotEqual(t, "Room", line.Label)
	}
}

func TestRenderer_Booking(t *testing.T) {
	r := newRenderer(t)

	checkIn := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

	doc := r.Booking(bookingModel.Booking{
		ID:            "booking-id-1",
		CheckIn:       checkIn,
		CheckOut:      checkIn.AddDate(0, 0, 2),
		TotalAmount:   40000,
		PaymentStatus: bookingModel.PaymentStatusPaid,
		RoomNumber:    "204",
		RoomType:      "deluxe",
		GuestName:     "Ada Obi",
	}, receipt.LayoutFull)

	// Lodging is shown without a VAT line.
	assert.Empty(t, doc.Subtotal)
	assert.Equal(t, "₦40,000", doc.GrandTotal)

	out, err := r.Render(doc)
	assert.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "₦40,000")
	assert.Contains(t, html, "204 (deluxe)")
	assert.NotContains(t, html, "VAT")
}

func TestRenderer_Ticket(t *testing.T) {
	r := newRenderer(t)

	doc := r.Ticket(printer.StationBar, printer.Ticket{
		OrderID:    "order-id-1",
		GuestName:  "Ada Obi",
		RoomNumber: "204",
		ItemName:   "Chapman",
		Quantity:   3,
		UnitPrice:  1500,
		CreatedAt:  "2025-03-10 15:04:05",
	})

	assert.Equal(t, receipt.LayoutCompact, doc.Layout)
	assert.Equal(t, "Bar Ticket", doc.Title)

	out, err := r.Render(doc)
	assert.NoError(t, err)
	assert.Contains(t, string(out), "Chapman")
}
