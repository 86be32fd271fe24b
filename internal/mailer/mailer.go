package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/h2o-salon/salon-backend/internal/models"
	gomail "gopkg.in/gomail.v2"
)

// Mailer sends the payment receipt. Delivery is best-effort; callers log and
// swallow errors, never surfacing them to the paying client.
type Mailer interface {
	SendReceipt(booking *models.Booking) error
}

var receiptTmpl = template.Must(template.New("receipt").Parse(`
	<h2>Payment Successful ✅</h2>
	<p>Hello <b>{{.FullName}}</b>,</p>
	<p>Thank you for booking with <b>H₂O The Men's Salon</b>.</p>
	<hr/>
	<p><b>Service:</b> {{.Service}} - {{.SubService}}</p>
	<p><b>Date:</b> {{.Date}}</p>
	<p><b>Time:</b> {{.Time}}</p>
	<p><b>Amount Paid:</b> ₹{{.Amount}}</p>
	<hr/>
	<p>We look forward to serving you ✂️</p>
`))

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, user, pass string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   user,
	}
}

func (m *SMTPMailer) SendReceipt(booking *models.Booking) error {
	body, err := RenderReceipt(booking)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, "H₂O The Men's Salon")
	msg.SetHeader("To", booking.Email)
	msg.SetHeader("Subject", "H₂O The Men's Salon – Payment Receipt")
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send receipt: %w", err)
	}
	return nil
}

// RenderReceipt produces the receipt HTML for a booking.
func RenderReceipt(booking *models.Booking) (string, error) {
	var buf bytes.Buffer
	if err := receiptTmpl.Execute(&buf, booking); err != nil {
		return "", fmt.Errorf("render receipt: %w", err)
	}
	return buf.String(), nil
}
