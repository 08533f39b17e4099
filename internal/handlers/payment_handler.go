package handlers

import (
	"encoding/base64"

	"github.com/gofiber/fiber/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/Dinesh9529/ResumeGuru/internal/models"
	"github.com/Dinesh9529/ResumeGuru/internal/services"
)

type PaymentHandler struct {
	paymentService     services.PaymentService
	entitlementService services.EntitlementService
	logger             *zap.SugaredLogger
}

func NewPaymentHandler(
	paymentService services.PaymentService,
	entitlementService services.EntitlementService,
	logger *zap.SugaredLogger,
) *PaymentHandler {
	return &PaymentHandler{
		paymentService:     paymentService,
		entitlementService: entitlementService,
		logger:             logger,
	}
}

// HandleCreateOrder forwards an order to the gateway and relays the gateway's
// raw JSON response. Gateway internals are never exposed on failure.
func (h *PaymentHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req models.OrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if req.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "amount must be a positive number",
		})
	}

	raw, err := h.paymentService.CreateOrder(c.UserContext(), req.Amount, req.OrderID)
	if err != nil {
		h.logger.Errorw("order creation failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to create payment order",
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.SendString(raw)
}

// HandleWebhook acknowledges the gateway's asynchronous payment callback.
// The handler trusts the gateway: callbacks are not signature-verified and the
// grant is at-most-once effort with no replay protection.
func (h *PaymentHandler) HandleWebhook(c *fiber.Ctx) error {
	body := c.Body()
	if !gjson.ValidBytes(body) {
		h.logger.Errorw("unparseable payment callback", "body_length", len(body))
		return c.Status(fiber.StatusInternalServerError).SendString("FAIL")
	}

	event := gjson.ParseBytes(body)

	// PhonePe wraps callback details in a base64 "response" envelope.
	if encoded := event.Get("response").String(); encoded != "" {
		if decoded, err := base64.StdEncoding.DecodeString(encoded); err == nil && gjson.ValidBytes(decoded) {
			event = gjson.ParseBytes(decoded)
		}
	}

	code := event.Get("code").String()
	transactionID := event.Get("data.merchantTransactionId").String()
	if transactionID == "" {
		transactionID = event.Get("transactionId").String()
	}

	if code == "PAYMENT_SUCCESS" || event.Get("success").Bool() {
		if err := h.entitlementService.GrantEntitlement(c.UserContext(), transactionID); err != nil {
			h.logger.Errorw("entitlement grant failed",
				"transaction_id", transactionID,
				"error", err,
			)
		}
	} else {
		h.logger.Warnw("payment declined",
			"code", code,
			"transaction_id", transactionID,
		)
	}

	return c.SendString("OK")
}
