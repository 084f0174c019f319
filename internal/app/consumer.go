package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hazri/internal/bootstrap"
	"hazri/internal/events"
	"hazri/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	attendanceReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.AttendanceReconciledTopic,
		GroupID:        "hazri-audit",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer attendanceReader.Close()

	teacherReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.TeacherCreatedTopic,
		GroupID:        "hazri-audit",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer teacherReader.Close()

	sink := bootstrap.NewStdoutAuditLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeAttendanceReconciled(ctx, attendanceReader, sink, logger)
	go consumer.ConsumeTeacherCreated(ctx, teacherReader, sink, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
