package services

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Dinesh9529/ResumeGuru/internal/config"
)

// payEndpointPath is part of the X-VERIFY digest input as well as the request
// path; the two must stay in sync.
const payEndpointPath = "/pg/v1/pay"

type PaymentService interface {
	// CreateOrder initiates a payment at the gateway and returns the raw
	// gateway response body.
	CreateOrder(ctx context.Context, amount float64, orderID string) (string, error)
}

type phonePeService struct {
	cfg    *config.PhonePeConfig
	client *resty.Client
	logger *zap.SugaredLogger
}

func NewPhonePeService(cfg *config.PhonePeConfig, logger *zap.SugaredLogger) PaymentService {
	return &phonePeService{
		cfg: cfg,
		client: resty.New().
			SetBaseURL(cfg.BaseURL).
			SetTimeout(30 * time.Second),
		logger: logger,
	}
}

type orderPayload struct {
	MerchantID            string            `json:"merchantId"`
	MerchantTransactionID string            `json:"merchantTransactionId"`
	MerchantUserID        string            `json:"merchantUserId"`
	Amount                int64             `json:"amount"`
	RedirectURL           string            `json:"redirectUrl"`
	RedirectMode          string            `json:"redirectMode"`
	CallbackURL           string            `json:"callbackUrl"`
	PaymentInstrument     paymentInstrument `json:"paymentInstrument"`
}

type paymentInstrument struct {
	Type string `json:"type"`
}

func (s *phonePeService) CreateOrder(ctx context.Context, amount float64, orderID string) (string, error) {
	if orderID == "" {
		orderID = "TXN-" + uuid.NewString()
	}

	encoded, err := s.encodeOrder(amount, orderID)
	if err != nil {
		return "", err
	}

	s.logger.Infow("creating phonepe order",
		"merchant_transaction_id", orderID,
		"amount", amount,
	)

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-VERIFY", s.sign(encoded)).
		SetHeader("X-MERCHANT-ID", s.cfg.MerchantID).
		SetBody(map[string]string{"request": encoded}).
		Post(payEndpointPath)
	if err != nil {
		return "", fmt.Errorf("phonepe request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("phonepe returned status %d: %s", resp.StatusCode(), resp.String())
	}

	return resp.String(), nil
}

// encodeOrder serializes the order and base64-encodes it for the gateway.
// Amounts are sent in the minor currency unit (paise).
func (s *phonePeService) encodeOrder(amount float64, orderID string) (string, error) {
	payload := orderPayload{
		MerchantID:            s.cfg.MerchantID,
		MerchantTransactionID: orderID,
		MerchantUserID:        "MUID-" + orderID,
		Amount:                int64(math.Round(amount * 100)),
		RedirectURL:           s.cfg.RedirectURL,
		RedirectMode:          "REDIRECT",
		CallbackURL:           s.cfg.CallbackURL,
		PaymentInstrument:     paymentInstrument{Type: "PAY_PAGE"},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal order payload: %w", err)
	}

	return base64.StdEncoding.EncodeToString(body), nil
}

// sign computes the X-VERIFY header: hex(sha256(payload + path + salt)) with
// the salt index appended after "###".
func (s *phonePeService) sign(encodedPayload string) string {
	sum := sha256.Sum256([]byte(encodedPayload + payEndpointPath + s.cfg.SaltKey))
	return hex.EncodeToString(sum[:]) + "###" + s.cfg.SaltIndex
}
