package consumer

import (
	"context"
	"encoding/json"

	"github.com/Muniya-64bit/Database-Backend/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Notifier delivers a leave decision to the affected employee. The transport
// behind it (email, chat webhook) is an implementation detail.
type Notifier interface {
	NotifyLeaveDecision(ctx context.Context, event events.LeaveStatusChangedEvent) error
}

func ConsumeLeaveDecisions(
	ctx context.Context,
	reader *kafkago.Reader,
	notifier Notifier,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_decision")
	log.Info("leave decision consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave decision consumer stopped")
				return
			}
			log.Error("fetch leave decision message failed", zap.Error(err))
			continue
		}

		var event events.LeaveStatusChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			// Poison message, commit so the partition keeps moving.
			log.Error("decode leave_status_changed event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := notifier.NotifyLeaveDecision(ctx, event); err != nil {
			log.Error("notify leave decision failed",
				zap.Int64("leave_request_id", event.LeaveRequestID),
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave decision message failed", zap.Error(err))
			continue
		}

		log.Info("leave decision delivered",
			zap.Int64("leave_request_id", event.LeaveRequestID),
			zap.String("employee_id", event.EmployeeID),
			zap.String("status", event.Status),
		)
	}
}
