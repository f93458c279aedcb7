package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Muniya-64bit/Database-Backend/internal/bootstrap"
	"github.com/Muniya-64bit/Database-Backend/internal/events"
	"github.com/Muniya-64bit/Database-Backend/internal/messaging/kafka/consumer"
	"github.com/Muniya-64bit/Database-Backend/internal/shared/connection"

	"go.uber.org/zap"
)

// auditNotifier records each leave decision as an audit event. It stands in
// for the real delivery channel (email, chat) which is configured per
// deployment.
type auditNotifier struct {
	audit bootstrap.AuditLogger
}

func (n *auditNotifier) NotifyLeaveDecision(ctx context.Context, event events.LeaveStatusChangedEvent) error {
	n.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "LEAVE_DECISION_NOTIFIED",
		Message: fmt.Sprintf("leave request %d %s", event.LeaveRequestID, event.Status),
		Meta: map[string]any{
			"leave_request_id": event.LeaveRequestID,
			"employee_id":      event.EmployeeID,
			"status":           event.Status,
			"decided_by":       event.DecidedBy,
			"request_id":       event.RequestID,
		},
	})
	return nil
}

// RunNotifier consumes leave decision events until interrupted.
func RunNotifier() error {
	logger := zap.L().Named("app.notifier")

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	reader := connection.NewKafkaReader(
		kafkaBroker,
		events.LeaveStatusChangedTopic,
		"hrms-leave-notifier",
	)
	defer reader.Close()

	notifier := &auditNotifier{audit: bootstrap.NewStdoutAuditLogger()}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeLeaveDecisions(ctx, reader, notifier, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("notifier shutting down")
	cancel()

	return nil
}
