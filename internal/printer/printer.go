// Package printer dispatches station tickets to the kitchen and bar receipt
// printers through the ticket queue. Consumers at each station render the
// ticket on paper; the front desk only publishes.
package printer

//go:generate go run go.uber.org/mock/mockgen -source=./printer.go -destination=./mocks/printer_mock.go -package=mocks

import (
	"context"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/shared/constant"

	"github.com/rs/zerolog/log"
)

type Station string

const (
	StationKitchen Station = "kitchen"
	StationBar     Station = "bar"
)

// Ticket is the payload printed at the station.
type Ticket struct {
	OrderID    string  `json:"order_id"`
	GuestName  string  `json:"guest_name"`
	RoomNumber string  `json:"room_number,omitempty"`
	ItemName   string  `json:"item_name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	CreatedAt  string  `json:"created_at"`
}

type Dispatcher interface {
	Dispatch(ctx context.Context, station Station, ticket Ticket) error
}

type dispatcherImpl struct {
	cfg    *config.Config
	client kafka.Client
	otel   otel.Otel
}

func New(cfg *config.Config, client kafka.Client, otel otel.Otel) Dispatcher {
	return &dispatcherImpl{
		cfg:    cfg,
		client: client,
		otel:   otel,
	}
}

func (d *dispatcherImpl) Dispatch(ctx context.Context, station Station, ticket Ticket) (err error) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelPrinterScopeName, constant.OtelPrinterScopeName+".Dispatch")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !d.cfg.Kafka.Enable {
		log.Debug().Str("station", string(station)).Str("orderID", ticket.OrderID).Msg("ticket queue disabled, skipping dispatch")

		return nil
	}

	topic := d.cfg.Kafka.KitchenTicketTopic
	if station == StationBar {
		topic = d.cfg.Kafka.BarTicketTopic
	}

	message := kafka.Message{
		Key:   ticket.OrderID,
		Value: ticket,
	}

	if err = d.client.SendMessages(ctx, topic, message); err != nil {
		log.Error().Err(err).Str("topic", topic).Str("orderID", ticket.OrderID).Msg("failed to dispatch station ticket")

		return fmt.Errorf("failed to dispatch station ticket: %w", err)
	}

	log.Info().Str("topic", topic).Str("orderID", ticket.OrderID).Msg("station ticket dispatched")

	return nil
}
