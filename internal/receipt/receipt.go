// Package receipt renders printable HTML documents for the front desk:
// booking receipts, kitchen and bar order receipts, and station tickets.
// One document model feeds one template; the layout selects between the
// full page and the compact register tape.
package receipt

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"frontdesk/config"
	barModel "frontdesk/internal/domains/bar/model"
	bookingModel "frontdesk/internal/domains/booking/model"
	kitchenModel "frontdesk/internal/domains/kitchen/model"
	"frontdesk/internal/printer"
	"frontdesk/shared/constant"
	"frontdesk/shared/money"
	"frontdesk/shared/timezone"
)

// VATRate is applied at render time only. Stored order totals stay net.
const VATRate = 0.075

type Layout string

const (
	LayoutFull    Layout = "full"
	LayoutCompact Layout = "compact"
)

//go:embed templates/receipt.html.tmpl
var templates embed.FS

type Line struct {
	Label string
	Value string
}

type Item struct {
	Name      string
	Quantity  int
	UnitPrice string
	Amount    string
}

// Document is the single data model behind every printable output.
type Document struct {
	Layout     Layout
	Title      string
	Hotel      string
	Address    string
	Phone      string
	Reference  string
	IssuedAt   string
	Lines      []Line
	Items      []Item
	Subtotal   string
	VAT        string
	GrandTotal string
	Footer     string
}

type Renderer interface {
	Render(doc Document) ([]byte, error)

	Booking(booking bookingModel.Booking, layout Layout) Document
	KitchenOrder(order kitchenModel.KitchenOrder, layout Layout) Document
	BarOrder(order barModel.BarOrder, layout Layout) Document
	Ticket(station printer.Station, ticket printer.Ticket) Document
}

type rendererImpl struct {
	cfg  *config.Config
	tmpl *template.Template
}

func New(cfg *config.Config) (Renderer, error) {
	tmpl, err := template.ParseFS(templates, "templates/receipt.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse receipt template: %w", err)
	}

	return &rendererImpl{cfg: cfg, tmpl: tmpl}, nil
}

func (r *rendererImpl) Render(doc Document) ([]byte, error) {
	var buf bytes.Buffer

	if err := r.tmpl.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}

	return buf.Bytes(), nil
}

// Booking maps a booking to its receipt. Lodging is not taxed at the desk,
// so the document carries the booking total without a VAT line.
func (r *rendererImpl) Booking(booking bookingModel.Booking, layout Layout) Document {
	nights := bookingModel.Nights(booking.CheckIn, booking.CheckOut)

	return Document{
		Layout:    layout,
		Title:     "Booking Receipt",
		Hotel:     r.cfg.Hotel.Name,
		Address:   r.cfg.Hotel.Address,
		Phone:     r.cfg.Hotel.Phone,
		Reference: booking.ID,
		IssuedAt:  timezone.Format(timezone.Now(), constant.DateTimeFormat),
		Lines: []Line{
			{Label: "Guest", Value: booking.GuestName},
			{Label: "Room", Value: fmt.Sprintf("%s (%s)", booking.RoomNumber, booking.RoomType)},
			{Label: "Check in", Value: timezone.Format(booking.CheckIn, constant.DateFormat)},
			{Label: "Check out", Value: timezone.Format(booking.CheckOut, constant.DateFormat)},
			{Label: "Nights", Value: fmt.Sprintf("%d", nights)},
			{Label: "Payment", Value: booking.PaymentStatus},
		},
		GrandTotal: money.FormatNaira(booking.TotalAmount),
		Footer:     "Thank you for staying with us.",
	}
}

func (r *rendererImpl) KitchenOrder(order kitchenModel.KitchenOrder, layout Layout) Document {
	doc := r.orderDocument(layout, "Kitchen Receipt", order.ID, order.GuestName, order.RoomNumber,
		string(order.BillingType), order.FoodName, order.Quantity, order.UnitPrice, order.TotalAmount)

	return doc
}

func (r *rendererImpl) BarOrder(order barModel.BarOrder, layout Layout) Document {
	doc := r.orderDocument(layout, "Bar Receipt", order.ID, order.GuestName, order.RoomNumber,
		string(order.BillingType), order.DrinkName, order.Quantity, order.UnitPrice, order.TotalAmount)

	return doc
}

// Ticket maps a dispatched station ticket to the compact layout so the
// station printer output matches the queue payload.
func (r *rendererImpl) Ticket(station printer.Station, ticket printer.Ticket) Document {
	title := "Kitchen Ticket"
	if station == printer.StationBar {
		title = "Bar Ticket"
	}

	return Document{
		Layout:    LayoutCompact,
		Title:     title,
		Hotel:     r.cfg.Hotel.Name,
		Reference: ticket.OrderID,
		IssuedAt:  ticket.CreatedAt,
		Lines: []Line{
			{Label: "Guest", Value: ticket.GuestName},
			{Label: "Room", Value: ticket.RoomNumber},
		},
		Items: []Item{
			{
				Name:      ticket.ItemName,
				Quantity:  ticket.Quantity,
				UnitPrice: money.FormatNaira(ticket.UnitPrice),
				Amount:    money.FormatNaira(ticket.UnitPrice * float64(ticket.Quantity)),
			},
		},
	}
}

func (r *rendererImpl) orderDocument(layout Layout, title, id, guestName, roomNumber, billing, itemName string, quantity int, unitPrice, total float64) Document {
	vat := total * VATRate

	lines := []Line{
		{Label: "Guest", Value: guestName},
		{Label: "Billing", Value: billing},
	}
	if roomNumber != "" {
		lines = append(lines, Line{Label: "Room", Value: roomNumber})
	}

	return Document{
		Layout:    layout,
		Title:     title,
		Hotel:     r.cfg.Hotel.Name,
		Address:   r.cfg.Hotel.Address,
		Phone:     r.cfg.Hotel.Phone,
		Reference: id,
		IssuedAt:  timezone.Format(timezone.Now(), constant.DateTimeFormat),
		Lines:     lines,
		Items: []Item{
			{
				Name:      itemName,
				Quantity:  quantity,
				UnitPrice: money.FormatNaira(unitPrice),
				Amount:    money.FormatNaira(total),
			},
		},
		Subtotal:   money.FormatNaira(total),
		VAT:        money.FormatNaira(vat),
		GrandTotal: money.FormatNaira(total + vat),
		Footer:     "Thank you for your patronage.",
	}
}
