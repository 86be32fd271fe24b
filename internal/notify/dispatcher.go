package notify

import (
	"github.com/h2o-salon/salon-backend/internal/mailer"
	"github.com/h2o-salon/salon-backend/internal/metrics"
	"github.com/h2o-salon/salon-backend/internal/models"
	"github.com/h2o-salon/salon-backend/pkg/rabbitmq"
	"github.com/rs/zerolog"
)

// Dispatcher hands a paid booking off for receipt delivery, detached from the
// request that triggered it.
type Dispatcher interface {
	DispatchReceipt(booking *models.Booking) error
}

// QueueDispatcher publishes the paid booking to RabbitMQ; the receipt
// consumer picks it up and mails it.
type QueueDispatcher struct {
	pub *rabbitmq.Publisher
}

func NewQueueDispatcher(pub *rabbitmq.Publisher) *QueueDispatcher {
	return &QueueDispatcher{pub: pub}
}

func (d *QueueDispatcher) DispatchReceipt(booking *models.Booking) error {
	return d.pub.Publish(rabbitmq.RoutingPaid, booking)
}

// DirectDispatcher mails the receipt from its own goroutine. Used when no
// broker is configured; delivery stays fire-and-forget either way.
type DirectDispatcher struct {
	mailer mailer.Mailer
	log    zerolog.Logger
}

func NewDirectDispatcher(m mailer.Mailer, log zerolog.Logger) *DirectDispatcher {
	return &DirectDispatcher{mailer: m, log: log}
}

func (d *DirectDispatcher) DispatchReceipt(booking *models.Booking) error {
	go func() {
		if err := d.mailer.SendReceipt(booking); err != nil {
			metrics.IncReceipt("error")
			d.log.Error().Err(err).Str("email", booking.Email).Msg("receipt email failed")
			return
		}
		metrics.IncReceipt("sent")
		d.log.Info().Str("email", booking.Email).Msg("receipt email sent")
	}()
	return nil
}
