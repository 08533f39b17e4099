package services

import (
	"context"

	"go.uber.org/zap"
)

// EntitlementService is the collaborator invoked when the gateway confirms a
// payment. How a paid transaction maps onto a user entitlement is up to the
// integrator; the service only receives the transaction identifier.
type EntitlementService interface {
	GrantEntitlement(ctx context.Context, transactionID string) error
}

// logEntitlementService is the default implementation: it records the grant
// and nothing else.
type logEntitlementService struct {
	logger *zap.SugaredLogger
}

func NewLogEntitlementService(logger *zap.SugaredLogger) EntitlementService {
	return &logEntitlementService{logger: logger}
}

func (s *logEntitlementService) GrantEntitlement(_ context.Context, transactionID string) error {
	s.logger.Infow("premium entitlement granted", "transaction_id", transactionID)
	return nil
}
