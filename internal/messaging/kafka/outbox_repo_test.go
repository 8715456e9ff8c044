package kafka_test

import (
	"context"
	"testing"
	"time"

	"go-hris-etl/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestOutboxRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)
	event := kafka.OutboxEvent{
		ID:            "e1",
		RequestID:     "r1",
		AggregateType: "upload",
		AggregateID:   "T1",
		EventType:     "pipeline.requested",
		Topic:         "hr.employee.import.requested.v1",
		Headers:       map[string]string{"message_id": "e1"},
		Payload:       []byte(`{"fileName":"a_T1.csv","tenantId":"T1"}`),
		Status:        kafka.OutboxStatusPending,
	}

	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs("e1", "r1", "upload", "T1", "pipeline.requested", "hr.employee.import.requested.v1",
			[]byte(`{"message_id":"e1"}`), event.Payload, kafka.OutboxStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Create(context.Background(), event))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ClaimPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)
	rows := sqlmock.NewRows([]string{
		"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic",
		"headers", "payload", "status", "retry_count", "next_retry_at",
	}).AddRow("e1", "r1", "upload", "T1", "pipeline.requested", "topic",
		[]byte(`{"message_id":"e1","content_type":"application/json"}`), []byte(`{}`), "pending", 0, time.Now())

	mock.ExpectQuery(`WITH due AS \(\s*SELECT id FROM outbox_events(.+)FOR UPDATE SKIP LOCKED`).
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 50, float64(30)).
		WillReturnRows(rows)

	got, err := repo.ClaimPending(context.Background(), 50)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "application/json", got[0].Headers["content_type"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)
	mock.ExpectExec("UPDATE outbox_events").
		WithArgs("e1", kafka.OutboxStatusFailed, kafka.OutboxStatusDead, kafka.MaxOutboxAttempts, "broker down").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkFailed(context.Background(), "e1", "broker down"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkSent(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)
	mock.ExpectExec("UPDATE outbox_events").
		WithArgs("e1", kafka.OutboxStatusSent).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkSent(context.Background(), "e1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateOutboxEvent(t *testing.T) {
	valid := kafka.OutboxEvent{ID: "e1", Topic: "t", Payload: []byte("x"), Status: kafka.OutboxStatusPending}
	assert.NoError(t, kafka.ValidateOutboxEvent(valid))

	noTopic := valid
	noTopic.Topic = ""
	assert.Error(t, kafka.ValidateOutboxEvent(noTopic))

	alreadySent := valid
	alreadySent.Status = kafka.OutboxStatusSent
	assert.Error(t, kafka.ValidateOutboxEvent(alreadySent))
}
