package consumer

import (
	"encoding/json"

	"github.com/h2o-salon/salon-backend/internal/mailer"
	"github.com/h2o-salon/salon-backend/internal/metrics"
	"github.com/h2o-salon/salon-backend/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// ReceiptConsumer drains payment.paid events and mails receipts. Email is
// best-effort: a failed send is logged and the message dropped, never
// requeued into a retry storm against the relay.
type ReceiptConsumer struct {
	mailer mailer.Mailer
	log    zerolog.Logger
}

func NewReceiptConsumer(m mailer.Mailer, log zerolog.Logger) *ReceiptConsumer {
	return &ReceiptConsumer{mailer: m, log: log}
}

func (rc *ReceiptConsumer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			rc.handleMessage(msg)
		}
		rc.log.Warn().Msg("receipt consumer channel closed")
	}()
}

func (rc *ReceiptConsumer) handleMessage(msg amqp.Delivery) {
	var booking models.Booking
	if err := json.Unmarshal(msg.Body, &booking); err != nil {
		rc.log.Error().Err(err).Msg("receipt event unmarshal failed")
		msg.Nack(false, false)
		return
	}

	if err := rc.mailer.SendReceipt(&booking); err != nil {
		metrics.IncReceipt("error")
		rc.log.Error().Err(err).Uint("booking_id", booking.ID).Str("email", booking.Email).Msg("receipt email failed")
		msg.Ack(false)
		return
	}

	metrics.IncReceipt("sent")
	rc.log.Info().Uint("booking_id", booking.ID).Str("email", booking.Email).Msg("receipt email sent")
	msg.Ack(false)
}
