package consumer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Leonguyenbk/QLCV/internal/audit"
	"github.com/Leonguyenbk/QLCV/internal/events"
)

// ConsumeHistoryEvents persists employee history events into the audit
// log. Decode failures are committed (poison messages never block the
// partition); storage failures are retried by not committing.
func ConsumeHistoryEvents(
	ctx context.Context,
	reader *kafkago.Reader,
	auditRepo audit.Repository,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.history_audit")
	log.Info("history audit consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("history audit consumer stopped")
				return
			}
			log.Error("fetch history message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeHistoryRecordedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode history event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		entry, err := toAuditLog(event)
		if err != nil {
			log.Error("invalid history event payload",
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := auditRepo.Create(ctx, entry); err != nil {
			log.Error("persist audit log failed",
				zap.String("employee_id", event.EmployeeID),
				zap.String("history_id", event.HistoryID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit history message failed", zap.Error(err))
			continue
		}

		log.Info("audit log recorded",
			zap.String("employee_id", event.EmployeeID),
			zap.String("change_type", event.ChangeType),
		)
	}
}

func toAuditLog(event events.EmployeeHistoryRecordedEvent) (*audit.AuditLog, error) {
	employeeID, err := uuid.Parse(event.EmployeeID)
	if err != nil {
		return nil, err
	}
	historyID, err := uuid.Parse(event.HistoryID)
	if err != nil {
		return nil, err
	}

	occurredAt := event.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	return &audit.AuditLog{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		HistoryID:  historyID,
		Action:     event.ChangeType,
		ChangedBy:  event.ChangedBy,
		OccurredAt: occurredAt,
	}, nil
}
