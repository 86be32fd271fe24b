package razorpay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.razorpay.com"

// Order is the gateway's descriptor of a pending charge. Amount is in the
// smallest currency unit (paise).
type Order struct {
	ID        string `json:"id"`
	Entity    string `json:"entity"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Receipt   string `json:"receipt"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

type Client struct {
	BaseURL   string
	KeyID     string
	KeySecret string
	HTTP      *http.Client
}

func NewClient(keyID, keySecret string) *Client {
	return &Client{
		BaseURL:   defaultBaseURL,
		KeyID:     keyID,
		KeySecret: keySecret,
		HTTP: &http.Client{
			Timeout: 25 * time.Second,
		},
	}
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// CreateOrder submits an order for the given amount in rupees (major units);
// the gateway wants paise. No retries: transport and gateway errors propagate.
func (c *Client) CreateOrder(ctx context.Context, amountMajor float64, receipt string) (*Order, error) {
	body, err := json.Marshal(createOrderRequest{
		Amount:   int64(math.Round(amountMajor * 100)),
		Currency: "INR",
		Receipt:  receipt,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.KeyID, c.KeySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("razorpay create order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("razorpay create order: status=%d, body=%s", resp.StatusCode, string(b))
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("razorpay decode order: %w", err)
	}
	if order.ID == "" {
		return nil, fmt.Errorf("razorpay order response missing id")
	}
	return &order, nil
}

// VerifySignature reconstructs the callback signature as lowercase hex
// HMAC-SHA256 over "orderID|paymentID" and compares in constant time.
// It never fails past this boundary: any mismatch or oddity is just false.
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifySignature(orderID, paymentID, signature, c.KeySecret)
}

func VerifySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
