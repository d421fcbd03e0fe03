package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/clients/leaveclient"
	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/core/model"
)

type fakeSubmitter struct {
	mu          sync.Mutex
	created     *leaveclient.CreateLeaveRequest
	createErr   error
	uploads     []string
	failUploads map[string]error
}

func (f *fakeSubmitter) Create(ctx context.Context, data leaveclient.CreateLeaveRequest) (*model.LeaveRequest, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = &data
	return &model.LeaveRequest{ID: 42, RequestID: "LR-2024-042", Status: model.StatusPending}, nil
}

func (f *fakeSubmitter) UploadAttachment(ctx context.Context, leaveRequestID int, fileName string, file io.Reader) (*model.Attachment, error) {
	f.mu.Lock()
	f.uploads = append(f.uploads, fileName)
	f.mu.Unlock()
	if err, ok := f.failUploads[fileName]; ok {
		return nil, err
	}
	return &model.Attachment{LeaveRequestID: leaveRequestID, FileName: fileName}, nil
}

func validDraft() Draft {
	return Draft{
		LeaveTypeID: 1,
		StartDate:   "2024-03-01",
		EndDate:     "2024-03-05",
		Reason:      "family trip",
		ProxyUserID: 9,
	}
}

func attachmentFile(name string, size int64, contentType string) AttachmentFile {
	return AttachmentFile{
		Name:        name,
		Size:        size,
		ContentType: contentType,
		Content:     strings.NewReader("content of " + name),
	}
}

func TestValidateDraft(t *testing.T) {
	assert.NoError(t, ValidateDraft(validDraft()))

	missing := validDraft()
	missing.Reason = ""
	assert.Error(t, ValidateDraft(missing))

	badDate := validDraft()
	badDate.StartDate = "01/03/2024"
	assert.Error(t, ValidateDraft(badDate))

	reversed := validDraft()
	reversed.StartDate = "2024-03-06"
	assert.Error(t, ValidateDraft(reversed))
}

func TestFilterFiles(t *testing.T) {
	files := []AttachmentFile{
		attachmentFile("note.pdf", 1024, "application/pdf"),
		attachmentFile("huge.pdf", 20<<20, "application/pdf"),
		attachmentFile("script.sh", 100, "application/x-sh"),
	}

	valid, rejected := FilterFiles(files, 10<<20, []string{"application/pdf", "image/jpeg"})

	require.Len(t, valid, 1)
	assert.Equal(t, "note.pdf", valid[0].Name)
	require.Len(t, rejected, 2)
	assert.Equal(t, "huge.pdf", rejected[0].Name)
	assert.Contains(t, rejected[0].Reason, "too large")
	assert.Equal(t, "script.sh", rejected[1].Name)
	assert.Contains(t, rejected[1].Reason, "unsupported file type")
}

func TestFilterFilesNoLimits(t *testing.T) {
	files := []AttachmentFile{attachmentFile("anything.bin", 1<<30, "application/octet-stream")}

	valid, rejected := FilterFiles(files, 0, nil)
	assert.Len(t, valid, 1)
	assert.Empty(t, rejected)
}

func TestSubmitLeaveRequestUploadsAllFiles(t *testing.T) {
	submitter := &fakeSubmitter{}

	result, err := SubmitLeaveRequest(context.Background(), submitter, zap.NewNop(), validDraft(), []AttachmentFile{
		attachmentFile("note.pdf", 1024, "application/pdf"),
		attachmentFile("ticket.jpg", 2048, "image/jpeg"),
	})
	require.NoError(t, err)

	assert.Equal(t, 42, result.Request.ID)
	require.NotNil(t, submitter.created)
	assert.Equal(t, "family trip", submitter.created.Reason)

	require.Len(t, result.Uploads, 2)
	// Results preserve selection order even though uploads run in parallel
	assert.Equal(t, "note.pdf", result.Uploads[0].FileName)
	assert.Equal(t, "ticket.jpg", result.Uploads[1].FileName)
	assert.Empty(t, result.FailedUploads())
}

func TestSubmitLeaveRequestPartialUploadFailure(t *testing.T) {
	submitter := &fakeSubmitter{
		failUploads: map[string]error{"ticket.jpg": errors.New("connection reset")},
	}

	result, err := SubmitLeaveRequest(context.Background(), submitter, zap.NewNop(), validDraft(), []AttachmentFile{
		attachmentFile("note.pdf", 1024, "application/pdf"),
		attachmentFile("ticket.jpg", 2048, "image/jpeg"),
	})

	// The request survives; the failure is reported per file, not as an error
	require.NoError(t, err)
	assert.NotNil(t, result.Request)

	failed := result.FailedUploads()
	require.Len(t, failed, 1)
	assert.Equal(t, "ticket.jpg", failed[0].FileName)
	assert.ErrorContains(t, failed[0].Err, "connection reset")
	assert.NoError(t, result.Uploads[0].Err)
}

func TestSubmitLeaveRequestCreateFailureSkipsUploads(t *testing.T) {
	submitter := &fakeSubmitter{createErr: errors.New("insufficient balance")}

	_, err := SubmitLeaveRequest(context.Background(), submitter, zap.NewNop(), validDraft(), []AttachmentFile{
		attachmentFile("note.pdf", 1024, "application/pdf"),
	})
	require.Error(t, err)
	assert.Empty(t, submitter.uploads)
}

func TestSubmitLeaveRequestInvalidDraftNeverHitsNetwork(t *testing.T) {
	submitter := &fakeSubmitter{}
	draft := validDraft()
	draft.LeaveTypeID = 0

	_, err := SubmitLeaveRequest(context.Background(), submitter, zap.NewNop(), draft, nil)
	require.Error(t, err)
	assert.Nil(t, submitter.created)
}

func TestRangeConflicts(t *testing.T) {
	holidays := []model.Holiday{{Name: "Holiday", Date: "2024-03-04"}}
	draft := validDraft() // Fri Mar 1 .. Tue Mar 5

	conflicts, err := RangeConflicts(draft, holidays)
	require.NoError(t, err)
	require.Len(t, conflicts, 3) // Sat 2, Sun 3, holiday Mon 4
	assert.True(t, conflicts[0].IsWeekend)
	assert.Equal(t, "Holiday", conflicts[2].HolidayName)
}
