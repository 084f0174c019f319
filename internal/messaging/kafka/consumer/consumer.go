package consumer

import (
	"context"
	"encoding/json"

	"hazri/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// AuditSink receives every consumed attendance event; the stdout
// implementation in bootstrap is the default sink.
type AuditSink interface {
	Record(ctx context.Context, action, message string, meta map[string]any)
}

// ConsumeAttendanceReconciled drains the attendance topic and forwards
// each reconciliation to the audit sink. Late arrivals and deductions
// are flagged so the institution's admin log stays reviewable.
func ConsumeAttendanceReconciled(
	ctx context.Context,
	reader *kafkago.Reader,
	sink AuditSink,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.attendance")
	log.Info("attendance consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("attendance consumer stopped")
				return
			}
			log.Error("fetch attendance message failed", zap.Error(err))
			continue
		}

		var event events.AttendanceReconciledEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode attendance_reconciled event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		action := "ATTENDANCE_UPDATED"
		if event.Created {
			action = "ATTENDANCE_RECORDED"
		}
		sink.Record(ctx, action, "attendance reconciled", map[string]any{
			"teacher_id":       event.TeacherID,
			"date":             event.Date,
			"status":           event.Status,
			"work_hours":       event.WorkHours,
			"salary_deduction": event.SalaryDeduction,
		})

		if event.SalaryDeduction > 0 {
			log.Warn("salary deduction applied",
				zap.String("teacher_id", event.TeacherID),
				zap.String("date", event.Date),
				zap.String("status", event.Status),
				zap.Float64("salary_deduction", event.SalaryDeduction),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit attendance message failed", zap.Error(err))
			continue
		}
	}
}

// ConsumeTeacherCreated mirrors teacher onboarding into the audit log.
func ConsumeTeacherCreated(
	ctx context.Context,
	reader *kafkago.Reader,
	sink AuditSink,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.teacher")
	log.Info("teacher consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("teacher consumer stopped")
				return
			}
			log.Error("fetch teacher message failed", zap.Error(err))
			continue
		}

		var event events.TeacherCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode teacher_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		sink.Record(ctx, "TEACHER_CREATED", "teacher record created", map[string]any{
			"teacher_id": event.TeacherID,
			"name":       event.Name,
			"gr_number":  event.GrNumber,
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit teacher message failed", zap.Error(err))
			continue
		}
	}
}
