package pipeline_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hris-etl/internal/employee"
	employeeMock "go-hris-etl/internal/employee/mock"
	jobstatusMock "go-hris-etl/internal/jobstatus/mock"
	"go-hris-etl/internal/pipeline"
	pipelineerrors "go-hris-etl/internal/pipeline/errors"
	pipelineMock "go-hris-etl/internal/pipeline/mock"
	"go-hris-etl/internal/tax"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type orchestratorDeps struct {
	orchestrator *pipeline.Orchestrator
	extractor    *pipelineMock.MockExtractor
	mapper       *pipelineMock.MockMapper
	employees    *employeeMock.MockService
	tracker      *jobstatusMock.MockTracker
	ack          *pipelineMock.MockAcknowledger
}

func setupOrchestratorTest(t *testing.T) *orchestratorDeps {
	ctrl := gomock.NewController(t)
	deps := &orchestratorDeps{
		extractor: pipelineMock.NewMockExtractor(ctrl),
		mapper:    pipelineMock.NewMockMapper(ctrl),
		employees: employeeMock.NewMockService(ctrl),
		tracker:   jobstatusMock.NewMockTracker(ctrl),
		ack:       pipelineMock.NewMockAcknowledger(ctrl),
	}
	deps.orchestrator = pipeline.NewOrchestrator(deps.extractor, deps.mapper, deps.employees, deps.tracker)
	return deps
}

var (
	dob       = time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)
	sampleRaw = []employee.RawEmployeeRecord{
		{EmployeeID: 1, FirstName: "Ion", LastName: "Popescu", DateOfBirth: dob, GrossAnnualSalary: tax.ToCents(60000)},
	}
	sampleRecords = []employee.EmployeeRecord{
		{EmployeeID: 1, TenantID: "T1", FirstName: "Ion", LastName: "Popescu", BirthDate: dob, NetAnnualIncome: tax.ToCents(41000)},
	}
)

func delivery() pipeline.Delivery {
	return pipeline.Delivery{
		MessageID:   "m1",
		ContentType: "application/json",
		Body:        []byte(`{"fileName":"payroll_T1.csv","tenantId":"T1"}`),
	}
}

func TestOrchestrator_Process_Success(t *testing.T) {
	deps := setupOrchestratorTest(t)

	gomock.InOrder(
		deps.extractor.EXPECT().Extract(gomock.Any(), "payroll_T1.csv").Return(sampleRaw, nil),
		deps.mapper.EXPECT().Map(sampleRaw, "T1").Return(sampleRecords, nil),
		deps.employees.EXPECT().AddEmployees(gomock.Any(), sampleRecords).Return(nil),
		deps.tracker.EXPECT().SetStatus(gomock.Any(), "m1", "T1", "Upload Finished.", true).Times(1),
		deps.ack.EXPECT().Complete(gomock.Any()).Return(nil).Times(1),
	)

	state, err := deps.orchestrator.Process(context.Background(), delivery(), deps.ack)

	assert.NoError(t, err)
	assert.Equal(t, pipeline.StateCompleted, state)
}

func TestOrchestrator_Process_ExtractFailures(t *testing.T) {
	cases := map[string]struct {
		raw []employee.RawEmployeeRecord
		err error
	}{
		"empty":  {raw: []employee.RawEmployeeRecord{}},
		"absent": {raw: nil, err: errors.New("object not found")},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			deps := setupOrchestratorTest(t)
			deps.extractor.EXPECT().Extract(gomock.Any(), "payroll_T1.csv").Return(tc.raw, tc.err)
			deps.tracker.EXPECT().SetStatus(gomock.Any(), "m1", "T1", "Upload Failed.", false).Times(1)

			state, err := deps.orchestrator.Process(context.Background(), delivery(), deps.ack)

			assert.Error(t, err)
			assert.Equal(t, pipeline.StateFailed, state)
		})
	}
}

func TestOrchestrator_Process_MapFailure(t *testing.T) {
	deps := setupOrchestratorTest(t)
	deps.extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(sampleRaw, nil)
	deps.mapper.EXPECT().Map(sampleRaw, "T1").Return(nil, errors.New("mapping failed"))
	deps.tracker.EXPECT().SetStatus(gomock.Any(), "m1", "T1", "Upload Failed.", false).Times(1)

	state, err := deps.orchestrator.Process(context.Background(), delivery(), deps.ack)

	assert.Error(t, err)
	assert.Equal(t, pipeline.StateFailed, state)
}

func TestOrchestrator_Process_PersistFailure(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		deps := setupOrchestratorTest(t)
		dbErr := errors.New("deadlock detected")
		deps.extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(sampleRaw, nil)
		deps.mapper.EXPECT().Map(gomock.Any(), gomock.Any()).Return(sampleRecords, nil)
		deps.employees.EXPECT().AddEmployees(gomock.Any(), sampleRecords).Return(dbErr)
		deps.tracker.EXPECT().SetStatus(gomock.Any(), "m1", "T1", "Upload Failed.", false).Times(1)

		state, err := deps.orchestrator.Process(context.Background(), delivery(), deps.ack)

		assert.ErrorIs(t, err, dbErr)
		assert.Equal(t, pipeline.StateFailed, state)
	})

	t.Run("panic is contained", func(t *testing.T) {
		deps := setupOrchestratorTest(t)
		deps.extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(sampleRaw, nil)
		deps.mapper.EXPECT().Map(gomock.Any(), gomock.Any()).Return(sampleRecords, nil)
		deps.employees.EXPECT().
			AddEmployees(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, records []employee.EmployeeRecord) error {
				panic("nil pool")
			})
		deps.tracker.EXPECT().SetStatus(gomock.Any(), "m1", "T1", "Upload Failed.", false).Times(1)

		var (
			state pipeline.State
			err   error
		)
		assert.NotPanics(t, func() {
			state, err = deps.orchestrator.Process(context.Background(), delivery(), deps.ack)
		})
		assert.ErrorIs(t, err, pipelineerrors.ErrPersistPanic)
		assert.Equal(t, pipeline.StateFailed, state)
	})
}

func TestOrchestrator_Process_MalformedMessage(t *testing.T) {
	cases := map[string]pipeline.Delivery{
		"not json":        {MessageID: "m1", Body: []byte("{oops")},
		"missing tenant":  {MessageID: "m1", Body: []byte(`{"fileName":"a.csv"}`)},
		"missing message": {Body: []byte(`{"fileName":"a.csv","tenantId":"T1"}`)},
	}

	for name, d := range cases {
		t.Run(name, func(t *testing.T) {
			deps := setupOrchestratorTest(t)

			state, err := deps.orchestrator.Process(context.Background(), d, deps.ack)

			assert.ErrorIs(t, err, pipelineerrors.ErrMalformedMessage)
			assert.Equal(t, pipeline.StateReceived, state)
		})
	}
}

func TestOrchestrator_Process_AckFailure(t *testing.T) {
	deps := setupOrchestratorTest(t)
	deps.extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(sampleRaw, nil)
	deps.mapper.EXPECT().Map(gomock.Any(), gomock.Any()).Return(sampleRecords, nil)
	deps.employees.EXPECT().AddEmployees(gomock.Any(), gomock.Any()).Return(nil)
	deps.tracker.EXPECT().SetStatus(gomock.Any(), "m1", "T1", "Upload Finished.", true)
	deps.ack.EXPECT().Complete(gomock.Any()).Return(errors.New("broker gone"))

	state, err := deps.orchestrator.Process(context.Background(), delivery(), deps.ack)

	assert.ErrorIs(t, err, pipelineerrors.ErrAcknowledge)
	assert.Equal(t, pipeline.StateCompleted, state)
}

func TestOrchestrator_Process_SampleRowEndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := pipelineMock.NewMockExtractor(ctrl)
	employees := employeeMock.NewMockService(ctrl)
	tracker := jobstatusMock.NewMockTracker(ctrl)
	ack := pipelineMock.NewMockAcknowledger(ctrl)
	orchestrator := pipeline.NewOrchestrator(extractor, employee.NewMapper(), employees, tracker)

	extractor.EXPECT().Extract(gomock.Any(), "payroll_T1.csv").Return(sampleRaw, nil)
	employees.EXPECT().
		AddEmployees(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, records []employee.EmployeeRecord) error {
			assert.Len(t, records, 1)
			assert.Equal(t, int64(1), records[0].EmployeeID)
			assert.Equal(t, "T1", records[0].TenantID)
			assert.Equal(t, "Ion", records[0].FirstName)
			assert.Equal(t, "Popescu", records[0].LastName)
			assert.Equal(t, dob, records[0].BirthDate)
			assert.Equal(t, int64(4100000), records[0].NetAnnualIncome)
			return nil
		})
	tracker.EXPECT().SetStatus(gomock.Any(), "m1", "T1", "Upload Finished.", true)
	ack.EXPECT().Complete(gomock.Any()).Return(nil)

	state, err := orchestrator.Process(context.Background(), delivery(), ack)

	assert.NoError(t, err)
	assert.Equal(t, pipeline.StateCompleted, state)
}
