package utils

import (
	"encoding/json"
	"errors"
	"fitforge/config"
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"
)

// ErrGatewayNotConfigured signals that checkout should fall back to the
// static QR payment flow.
var ErrGatewayNotConfigured = errors.New("payment gateway not configured")

// PaymentOrder is the gateway's view of a checkout
type PaymentOrder struct {
	OrderID  string `json:"order_id"`
	Receipt  string `json:"receipt"`
	Amount   uint   `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// CreatePaymentOrder registers a checkout with the sandbox gateway and
// returns the order the client widget needs to collect payment.
func CreatePaymentOrder(amount uint, receipt string) (*PaymentOrder, error) {
	if config.AppConfig.PaymentApiURL == "" {
		return nil, ErrGatewayNotConfigured
	}

	client := resty.New()
	resp, err := client.R().
		SetBasicAuth(config.AppConfig.PaymentApiKey, config.AppConfig.PaymentSecretKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"amount":   amount,
			"currency": "INR",
			"receipt":  receipt,
		}).
		Post(config.AppConfig.PaymentApiURL + "orders")
	if err != nil {
		log.Printf("Failed to create payment order: %v", err)
		return nil, err
	}
	if resp.StatusCode() != 200 && resp.StatusCode() != 201 {
		log.Printf("Payment order creation failed: %s", resp.String())
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode())
	}

	var orderResp struct {
		ID       string `json:"id"`
		Amount   uint   `json:"amount"`
		Currency string `json:"currency"`
		Status   string `json:"status"`
	}
	if err := json.Unmarshal(resp.Body(), &orderResp); err != nil {
		log.Printf("Failed to parse order response: %v", err)
		return nil, err
	}

	return &PaymentOrder{
		OrderID:  orderResp.ID,
		Receipt:  receipt,
		Amount:   orderResp.Amount,
		Currency: orderResp.Currency,
		Status:   orderResp.Status,
	}, nil
}

// FetchPaymentStatus asks the gateway for the current status of an order.
// Used to double check callbacks before marking an enrollment paid.
func FetchPaymentStatus(orderID string) (string, error) {
	if config.AppConfig.PaymentApiURL == "" {
		return "", ErrGatewayNotConfigured
	}

	client := resty.New()
	resp, err := client.R().
		SetBasicAuth(config.AppConfig.PaymentApiKey, config.AppConfig.PaymentSecretKey).
		Get(config.AppConfig.PaymentApiURL + "orders/" + orderID)
	if err != nil {
		log.Printf("Failed to fetch payment status for %s: %v", orderID, err)
		return "", err
	}
	if resp.StatusCode() != 200 {
		log.Printf("Payment status fetch failed: %s", resp.String())
		return "", fmt.Errorf("gateway returned status %d", resp.StatusCode())
	}

	var statusResp struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(resp.Body(), &statusResp); err != nil {
		return "", err
	}

	return statusResp.Status, nil
}
