package extract_test

import (
	"context"
	"testing"
	"time"

	"go-hris-etl/internal/blob"
	"go-hris-etl/internal/extract"
	extracterrors "go-hris-etl/internal/extract/errors"
	"go-hris-etl/internal/tax"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

type memoryStore struct {
	objects map[string][]byte
}

func (m *memoryStore) Put(ctx context.Context, key string, body []byte, contentType string) error {
	m.objects[key] = body
	return nil
}

func (m *memoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, ok := m.objects[key]
	if !ok {
		return nil, blob.ErrObjectNotFound
	}
	return data, nil
}

func newExtractor(objects map[string][]byte) *extract.Extractor {
	return extract.NewExtractor(&memoryStore{objects: objects})
}

func TestExtractor_CSV(t *testing.T) {
	ctx := context.Background()

	t.Run("sample row", func(t *testing.T) {
		e := newExtractor(map[string][]byte{
			"payroll_T1.csv": []byte("1,Ion,Popescu,1990-05-15,60000\n2,Ana,Ionescu,1985-01-31,7000.50\n"),
		})

		got, err := e.Extract(ctx, "payroll_T1.csv")

		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].EmployeeID)
		assert.Equal(t, "Popescu", got[0].LastName)
		assert.Equal(t, time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC), got[0].DateOfBirth)
		assert.Equal(t, int64(6000000), got[0].GrossAnnualSalary)
		assert.Equal(t, int64(700050), got[1].GrossAnnualSalary)
	})

	t.Run("byte order mark and blank lines", func(t *testing.T) {
		e := newExtractor(map[string][]byte{
			"a_T1.csv": []byte("\xEF\xBB\xBF1,Ion,Popescu,1990-05-15,60000\n\n"),
		})

		got, err := e.Extract(ctx, "a_T1.csv")

		assert.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("one negative salary rejects the batch", func(t *testing.T) {
		e := newExtractor(map[string][]byte{
			"a_T1.csv": []byte("1,Ion,Popescu,1990-05-15,60000\n2,Ana,Ionescu,1985-01-31,-1\n"),
		})

		got, err := e.Extract(ctx, "a_T1.csv")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, extracterrors.ErrExtraction)
		assert.ErrorIs(t, err, extracterrors.ErrNegativeSalary)
	})

	t.Run("malformed rows", func(t *testing.T) {
		cases := map[string]string{
			"field count": "1,Ion,Popescu,1990-05-15\n",
			"id":          "x,Ion,Popescu,1990-05-15,100\n",
			"zero id":     "0,Ion,Popescu,1990-05-15,100\n",
			"date":        "1,Ion,Popescu,15/05/1990,100\n",
			"salary":      "1,Ion,Popescu,1990-05-15,lots\n",
			"empty name":  "1,,Popescu,1990-05-15,100\n",
			"nan salary":  "1,Ion,Popescu,1990-05-15,NaN\n",
			"inf salary":  "1,Ion,Popescu,1990-05-15,+Inf\n",
			"huge salary": "1,Ion,Popescu,1990-05-15,5e16\n",
		}
		for name, content := range cases {
			t.Run(name, func(t *testing.T) {
				e := newExtractor(map[string][]byte{"a_T1.csv": []byte(content)})

				got, err := e.Extract(ctx, "a_T1.csv")

				assert.Nil(t, got)
				assert.ErrorIs(t, err, extracterrors.ErrMalformedRow)
			})
		}
	})

	t.Run("salary at the cap is accepted", func(t *testing.T) {
		e := newExtractor(map[string][]byte{"a_T1.csv": []byte("1,Ion,Popescu,1990-05-15,1000000000000\n")})

		got, err := e.Extract(ctx, "a_T1.csv")

		assert.NoError(t, err)
		if assert.Len(t, got, 1) {
			assert.Equal(t, tax.MaxGrossCents, got[0].GrossAnnualSalary)
		}
	})

	t.Run("missing object", func(t *testing.T) {
		e := newExtractor(map[string][]byte{})

		_, err := e.Extract(ctx, "gone_T1.csv")

		assert.ErrorIs(t, err, extracterrors.ErrObjectNotFound)
	})

	t.Run("empty file yields no records", func(t *testing.T) {
		e := newExtractor(map[string][]byte{"a_T1.csv": {}})

		got, err := e.Extract(ctx, "a_T1.csv")

		assert.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		e := newExtractor(map[string][]byte{"a_T1.txt": []byte("1,Ion,Popescu,1990-05-15,100")})

		_, err := e.Extract(ctx, "a_T1.txt")

		assert.ErrorIs(t, err, extracterrors.ErrUnsupportedFormat)
	})
}

func TestExtractor_XLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	assert.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{1, "Ion", "Popescu", "1990-05-15", 60000}))
	assert.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{2, "Ana", "Ionescu", "1985-01-31", 20000}))
	buf, err := f.WriteToBuffer()
	assert.NoError(t, err)

	e := newExtractor(map[string][]byte{"payroll_T1.xlsx": buf.Bytes()})

	got, err := e.Extract(context.Background(), "payroll_T1.xlsx")

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "Ion", got[0].FirstName)
	assert.Equal(t, int64(2000000), got[1].GrossAnnualSalary)
}
