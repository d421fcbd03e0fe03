package services

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/clients/leaveclient"
	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/core/calendar"
	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/core/model"
)

var validate = validator.New()

// Draft is a leave request as entered by the user, before submission.
// Validation here is the client-side form layer; the backend re-validates
// business rules (balance, excluded ranges) on its side.
type Draft struct {
	LeaveTypeID int    `validate:"required,min=1"`
	StartDate   string `validate:"required,datetime=2006-01-02"`
	EndDate     string `validate:"required,datetime=2006-01-02"`
	Reason      string `validate:"required"`
	ProxyUserID int    `validate:"required,min=1"`
}

// AttachmentFile is a supporting file selected for upload.
type AttachmentFile struct {
	Name        string
	Size        int64
	ContentType string
	Content     io.Reader
}

// RejectedFile is a file turned away by the client-side filter before any
// network call.
type RejectedFile struct {
	Name   string
	Reason string
}

// UploadResult is the outcome of one attachment upload. Results are
// reported per file so the user can retry exactly what failed.
type UploadResult struct {
	FileName   string
	Attachment *model.Attachment
	Err        error
}

// SubmissionResult is the outcome of a full submission: the created request
// plus one result per uploaded file. The request exists even when some
// uploads failed; there is no compensating rollback.
type SubmissionResult struct {
	Request *model.LeaveRequest
	Uploads []UploadResult
}

// FailedUploads returns the uploads that did not complete.
func (r *SubmissionResult) FailedUploads() []UploadResult {
	failed := []UploadResult{}
	for _, u := range r.Uploads {
		if u.Err != nil {
			failed = append(failed, u)
		}
	}
	return failed
}

// LeaveSubmitter is the leave-client surface needed to submit a request
// with attachments.
type LeaveSubmitter interface {
	Create(ctx context.Context, data leaveclient.CreateLeaveRequest) (*model.LeaveRequest, error)
	UploadAttachment(ctx context.Context, leaveRequestID int, fileName string, file io.Reader) (*model.Attachment, error)
}

// ValidateDraft runs the client-side form checks: field presence, date
// format, and start not after end.
func ValidateDraft(draft Draft) error {
	if err := validate.Struct(draft); err != nil {
		return fmt.Errorf("draft validation failed: %w", err)
	}
	start, _ := time.Parse("2006-01-02", draft.StartDate)
	end, _ := time.Parse("2006-01-02", draft.EndDate)
	if start.After(end) {
		return fmt.Errorf("start date %s is after end date %s", draft.StartDate, draft.EndDate)
	}
	return nil
}

// FilterFiles applies the selection-time attachment filter: files over
// maxSize or outside the allowed content types are rejected before submit,
// not at upload time.
func FilterFiles(files []AttachmentFile, maxSize int64, allowedTypes []string) (valid []AttachmentFile, rejected []RejectedFile) {
	allowed := make(map[string]bool, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[t] = true
	}

	for _, f := range files {
		switch {
		case maxSize > 0 && f.Size > maxSize:
			rejected = append(rejected, RejectedFile{
				Name:   f.Name,
				Reason: fmt.Sprintf("file too large (%d bytes, limit %d)", f.Size, maxSize),
			})
		case len(allowed) > 0 && !allowed[f.ContentType]:
			rejected = append(rejected, RejectedFile{
				Name:   f.Name,
				Reason: fmt.Sprintf("unsupported file type %s", f.ContentType),
			})
		default:
			valid = append(valid, f)
		}
	}
	return valid, rejected
}

// SubmitLeaveRequest creates a leave request and then uploads the given
// files in parallel, one call per file. Upload failures are collected per
// file and do not fail the submission: the request stays created and the
// caller reports the partial state.
func SubmitLeaveRequest(
	ctx context.Context,
	client LeaveSubmitter,
	logger *zap.Logger,
	draft Draft,
	files []AttachmentFile,
) (*SubmissionResult, error) {
	logger.Info("Submitting leave request",
		zap.Int("leave_type_id", draft.LeaveTypeID),
		zap.String("start_date", draft.StartDate),
		zap.String("end_date", draft.EndDate),
		zap.Int("attachments", len(files)))

	if err := ValidateDraft(draft); err != nil {
		return nil, err
	}

	request, err := client.Create(ctx, leaveclient.CreateLeaveRequest{
		LeaveTypeID: draft.LeaveTypeID,
		StartDate:   draft.StartDate,
		EndDate:     draft.EndDate,
		Reason:      draft.Reason,
		ProxyUserID: draft.ProxyUserID,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Leave request created",
		zap.Int("id", request.ID),
		zap.String("request_id", request.RequestID))

	// Fan out uploads, one goroutine per file. Results land at the file's
	// input index so the report preserves selection order.
	uploads := make([]UploadResult, len(files))
	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		go func(i int, f AttachmentFile) {
			defer wg.Done()
			attachment, err := client.UploadAttachment(ctx, request.ID, f.Name, f.Content)
			uploads[i] = UploadResult{FileName: f.Name, Attachment: attachment, Err: err}
		}(i, f)
	}
	wg.Wait()

	result := &SubmissionResult{Request: request, Uploads: uploads}
	if failed := result.FailedUploads(); len(failed) > 0 {
		for _, f := range failed {
			logger.Warn("Attachment upload failed",
				zap.Int("leave_request_id", request.ID),
				zap.String("file", f.FileName),
				zap.Error(f.Err))
		}
	} else if len(files) > 0 {
		logger.Info("All attachments uploaded", zap.Int("count", len(files)))
	}

	return result, nil
}

// RangeConflicts enumerates the weekend and holiday dates inside a draft's
// range. The result is a warning for the user, never a submission error;
// the backend decides whether such days count.
func RangeConflicts(draft Draft, holidays []model.Holiday) ([]calendar.DayInfo, error) {
	start, err := time.Parse("2006-01-02", draft.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := time.Parse("2006-01-02", draft.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %w", err)
	}
	return calendar.WeekendAndHolidayDatesInRange(start, end, holidays), nil
}
