package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go-hris-etl/internal/employee"
	"go-hris-etl/internal/events"
	"go-hris-etl/internal/jobstatus"
	pipelineerrors "go-hris-etl/internal/pipeline/errors"
	"go-hris-etl/internal/shared/contextutil"

	"go.uber.org/zap"
)

// Delivery is one queue message as handed over by the transport.
type Delivery struct {
	MessageID   string
	ContentType string
	Body        []byte
}

//go:generate mockgen -source=orchestrator.go -destination=mock/orchestrator_mock.go -package=mock
type Acknowledger interface {
	Complete(ctx context.Context) error
}

type Extractor interface {
	Extract(ctx context.Context, fileName string) ([]employee.RawEmployeeRecord, error)
}

type Mapper interface {
	Map(raw []employee.RawEmployeeRecord, tenantID string) ([]employee.EmployeeRecord, error)
}

type Orchestrator struct {
	extractor Extractor
	mapper    Mapper
	employees employee.Service
	tracker   jobstatus.Tracker
	logger    *zap.Logger
}

func NewOrchestrator(
	extractor Extractor,
	mapper Mapper,
	employees employee.Service,
	tracker jobstatus.Tracker,
	logger ...*zap.Logger,
) *Orchestrator {
	l := zap.L().Named("pipeline.orchestrator")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("pipeline.orchestrator")
	}
	return &Orchestrator{
		extractor: extractor,
		mapper:    mapper,
		employees: employees,
		tracker:   tracker,
		logger:    l,
	}
}

// Process runs one delivery to a terminal state. Every stage failure is
// recorded as a failed job status and leaves the delivery unacknowledged;
// ack only follows a successful status write. A malformed message is the one
// case that records nothing.
func (o *Orchestrator) Process(ctx context.Context, d Delivery, ack Acknowledger) (State, error) {
	log := o.logger.With(zap.String("message_id", d.MessageID))
	log.Info("pipeline message received",
		zap.String("content_type", d.ContentType),
		zap.Int("body_size", len(d.Body)),
	)

	msg, err := decode(d)
	if err != nil {
		log.Error("pipeline message rejected", zap.Error(err))
		return StateReceived, err
	}

	log = log.With(zap.String("tenant_id", msg.TenantID), zap.String("file_name", msg.FileName))
	ctx = contextutil.WithRequestID(ctx, d.MessageID)
	ctx = contextutil.WithTenantID(ctx, msg.TenantID)
	ctx = contextutil.WithLogger(ctx, log)

	raw, err := o.extractor.Extract(ctx, msg.FileName)
	if err == nil && len(raw) == 0 {
		err = fmt.Errorf("extract: %w", pipelineerrors.ErrNoData)
	}
	if err != nil {
		return o.fail(ctx, log, d.MessageID, msg.TenantID, StateReceived, err)
	}
	log.Debug("pipeline stage done", zap.String("state", string(StateExtracted)), zap.Int("rows", len(raw)))

	records, err := o.mapper.Map(raw, msg.TenantID)
	if err == nil && len(records) == 0 {
		err = fmt.Errorf("map: %w", pipelineerrors.ErrNoData)
	}
	if err != nil {
		return o.fail(ctx, log, d.MessageID, msg.TenantID, StateExtracted, err)
	}
	log.Debug("pipeline stage done", zap.String("state", string(StateTransformed)))

	if err := o.persist(ctx, records); err != nil {
		return o.fail(ctx, log, d.MessageID, msg.TenantID, StateTransformed, err)
	}
	log.Debug("pipeline stage done", zap.String("state", string(StatePersisted)))

	o.tracker.SetStatus(ctx, d.MessageID, msg.TenantID, StatusTextFinished, true)

	if err := ack.Complete(ctx); err != nil {
		log.Error("acknowledge failed after completion", zap.Error(err))
		return StateCompleted, fmt.Errorf("%w: %v", pipelineerrors.ErrAcknowledge, err)
	}

	log.Info("pipeline completed", zap.Int("records", len(records)))
	return StateCompleted, nil
}

func decode(d Delivery) (events.PipelineMessage, error) {
	var msg events.PipelineMessage
	if strings.TrimSpace(d.MessageID) == "" {
		return msg, pipelineerrors.ErrMalformedMessage.WithCause(fmt.Errorf("missing message id"))
	}
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		return msg, pipelineerrors.ErrMalformedMessage.WithCause(err)
	}
	if msg.FileName == "" || msg.TenantID == "" {
		return msg, pipelineerrors.ErrMalformedMessage.WithCause(fmt.Errorf("fileName and tenantId are required"))
	}
	return msg, nil
}

// persist is the only stage boundary that also converts a panic.
func (o *Orchestrator) persist(ctx context.Context, records []employee.EmployeeRecord) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", pipelineerrors.ErrPersistPanic, r)
		}
	}()
	return o.employees.AddEmployees(ctx, records)
}

func (o *Orchestrator) fail(
	ctx context.Context,
	log *zap.Logger,
	messageID, tenantID string,
	reached State,
	cause error,
) (State, error) {
	log.Warn("pipeline failed",
		zap.String("last_state", string(reached)),
		zap.Error(cause),
	)
	o.tracker.SetStatus(ctx, messageID, tenantID, StatusTextFailed, false)
	return StateFailed, cause
}
