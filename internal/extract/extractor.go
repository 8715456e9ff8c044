package extract

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go-hris-etl/internal/blob"
	"go-hris-etl/internal/employee"
	extracterrors "go-hris-etl/internal/extract/errors"
	"go-hris-etl/internal/shared/contextutil"
	"go-hris-etl/internal/tax"

	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	fieldCount = 5
	dateLayout = "2006-01-02"
)

var byteOrderMark = []byte{0xEF, 0xBB, 0xBF}

type Extractor struct {
	store    blob.Store
	validate *validator.Validate
	logger   *zap.Logger
}

func NewExtractor(store blob.Store, logger ...*zap.Logger) *Extractor {
	l := zap.L().Named("extract")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("extract")
	}
	return &Extractor{
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   l,
	}
}

// Extract reads fileName from the object store and parses it as headerless
// rows of (employee id, first name, last name, yyyy-MM-dd, gross salary).
// Every row is checked before anything is returned: one bad row rejects the
// whole file.
func (e *Extractor) Extract(ctx context.Context, fileName string) ([]employee.RawEmployeeRecord, error) {
	log := contextutil.GetLogger(ctx, e.logger)

	records, err := e.extract(ctx, fileName)
	if err != nil {
		log.Error("extraction failed",
			append(contextutil.ExtractMetadata(ctx).Fields(),
				zap.String("file_name", fileName),
				zap.Error(err),
			)...,
		)
		return nil, extracterrors.ErrExtraction.WithCause(err)
	}

	log.Info("extraction finished",
		append(contextutil.ExtractMetadata(ctx).Fields(),
			zap.String("file_name", fileName),
			zap.Int("rows", len(records)),
		)...,
	)
	return records, nil
}

func (e *Extractor) extract(ctx context.Context, fileName string) ([]employee.RawEmployeeRecord, error) {
	payload, err := e.store.Get(ctx, fileName)
	if err != nil {
		if errors.Is(err, blob.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: %s", extracterrors.ErrObjectNotFound, fileName)
		}
		return nil, err
	}

	rows, err := parseRows(fileName, payload)
	if err != nil {
		return nil, err
	}

	records := make([]employee.RawEmployeeRecord, 0, len(rows))
	for i, row := range rows {
		if isBlank(row) {
			continue
		}
		record, err := e.parseRecord(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func parseRows(fileName string, payload []byte) ([][]string, error) {
	switch ext := strings.ToLower(filepath.Ext(fileName)); ext {
	case ".csv":
		return parseCSV(payload)
	case ".xlsx":
		return parseExcel(payload)
	default:
		return nil, fmt.Errorf("%w: %q", extracterrors.ErrUnsupportedFormat, ext)
	}
}

func parseCSV(payload []byte) ([][]string, error) {
	reader := bufio.NewReader(bytes.NewReader(payload))
	if prefix, err := reader.Peek(len(byteOrderMark)); err == nil && bytes.Equal(prefix, byteOrderMark) {
		_, _ = reader.Discard(len(byteOrderMark))
	}

	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", extracterrors.ErrMalformedRow, err)
	}
	return rows, nil
}

func parseExcel(payload []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("xlsx has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read xlsx rows: %w", err)
	}
	return rows, nil
}

func (e *Extractor) parseRecord(row []string) (employee.RawEmployeeRecord, error) {
	if len(row) != fieldCount {
		return employee.RawEmployeeRecord{}, fmt.Errorf("%w: expected %d fields, got %d",
			extracterrors.ErrMalformedRow, fieldCount, len(row))
	}
	for i := range row {
		row[i] = strings.TrimSpace(row[i])
	}

	id, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return employee.RawEmployeeRecord{}, fmt.Errorf("%w: employee id %q", extracterrors.ErrMalformedRow, row[0])
	}

	dob, err := time.Parse(dateLayout, row[3])
	if err != nil {
		return employee.RawEmployeeRecord{}, fmt.Errorf("%w: date of birth %q", extracterrors.ErrMalformedRow, row[3])
	}

	gross, err := strconv.ParseFloat(row[4], 64)
	if err != nil {
		return employee.RawEmployeeRecord{}, fmt.Errorf("%w: gross salary %q", extracterrors.ErrMalformedRow, row[4])
	}
	if math.IsNaN(gross) || math.IsInf(gross, 0) {
		return employee.RawEmployeeRecord{}, fmt.Errorf("%w: gross salary %q", extracterrors.ErrMalformedRow, row[4])
	}
	if gross < 0 {
		return employee.RawEmployeeRecord{}, fmt.Errorf("%w: %s", extracterrors.ErrNegativeSalary, row[4])
	}
	if gross > tax.FromCents(tax.MaxGrossCents) {
		return employee.RawEmployeeRecord{}, fmt.Errorf("%w: gross salary %q above %.2f",
			extracterrors.ErrMalformedRow, row[4], tax.FromCents(tax.MaxGrossCents))
	}

	record := employee.RawEmployeeRecord{
		EmployeeID:        id,
		FirstName:         row[1],
		LastName:          row[2],
		DateOfBirth:       dob,
		GrossAnnualSalary: tax.ToCents(gross),
	}
	if err := e.validate.Struct(record); err != nil {
		return employee.RawEmployeeRecord{}, fmt.Errorf("%w: %v", extracterrors.ErrMalformedRow, err)
	}
	return record, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
