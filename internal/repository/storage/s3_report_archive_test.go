package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/finanzas-app/finanzas-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	if params.Body != nil {
		f.body, _ = io.ReadAll(params.Body)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestReportObjectKey(t *testing.T) {
	key := ReportObjectKey(42, "Report_2025-01-01_to_2025-02-01.xlsx")

	parts := strings.Split(key, "/")
	require.Len(t, parts, 4)
	assert.Equal(t, "reports", parts[0])
	assert.Equal(t, "42", parts[1])
	_, err := uuid.Parse(parts[2])
	assert.NoError(t, err)
	assert.Equal(t, "Report_2025-01-01_to_2025-02-01.xlsx", parts[3])
}

func TestS3ReportArchive_Store(t *testing.T) {
	putter := &fakePutter{}
	archive := NewReportArchive(putter, "finanzas-reports")

	key, err := archive.Store(context.Background(), 7, "Report.xlsx", []byte("xlsx-bytes"))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "reports/7/"))
	assert.Equal(t, "finanzas-reports", *putter.input.Bucket)
	assert.Equal(t, key, *putter.input.Key)
	assert.Equal(t, domain.XLSXContentType, *putter.input.ContentType)
	assert.Equal(t, int64(10), *putter.input.ContentLength)
	assert.Equal(t, []byte("xlsx-bytes"), putter.body)
}

func TestS3ReportArchive_StoreError(t *testing.T) {
	putter := &fakePutter{err: errors.New("access denied")}
	archive := NewReportArchive(putter, "finanzas-reports")

	_, err := archive.Store(context.Background(), 7, "Report.xlsx", []byte("x"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}
