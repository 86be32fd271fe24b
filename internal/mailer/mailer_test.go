package mailer

import (
	"testing"

	"github.com/h2o-salon/salon-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReceipt(t *testing.T) {
	booking := &models.Booking{
		FullName:   "Ravi Kumar",
		Email:      "ravi@example.com",
		Date:       "2024-05-01",
		Service:    "Hair",
		SubService: "Haircut",
		Time:       "10:00",
		Amount:     200,
	}

	html, err := RenderReceipt(booking)
	require.NoError(t, err)

	assert.Contains(t, html, "Ravi Kumar")
	assert.Contains(t, html, "Hair - Haircut")
	assert.Contains(t, html, "2024-05-01")
	assert.Contains(t, html, "10:00")
	assert.Contains(t, html, "₹200")
	assert.Contains(t, html, "Payment Successful")
}

func TestRenderReceipt_EscapesUserInput(t *testing.T) {
	booking := &models.Booking{
		FullName: "<script>alert(1)</script>",
	}

	html, err := RenderReceipt(booking)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
