package leaveclient

import (
	"context"
	"fmt"
	"io"

	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/core/model"
)

// AttachmentList is the envelope returned by the attachment list endpoint.
type AttachmentList struct {
	Attachments []model.Attachment `json:"attachments"`
	TotalCount  int                `json:"total_count"`
}

// UploadAttachment uploads a single supporting file for a leave request.
// One call per file; batching and failure aggregation are the workflow
// layer's responsibility.
func (c *Client) UploadAttachment(ctx context.Context, leaveRequestID int, fileName string, file io.Reader) (*model.Attachment, error) {
	var out model.Attachment
	path := fmt.Sprintf("/leave-requests/%d/attachments", leaveRequestID)
	if err := c.api.PostMultipart(ctx, path, fileName, file, &out); err != nil {
		return nil, fmt.Errorf("failed to upload attachment %s for leave request %d: %w", fileName, leaveRequestID, err)
	}
	return &out, nil
}

// ListAttachments fetches all attachments of a leave request.
func (c *Client) ListAttachments(ctx context.Context, leaveRequestID int) ([]model.Attachment, error) {
	var out AttachmentList
	path := fmt.Sprintf("/leave-requests/%d/attachments", leaveRequestID)
	if err := c.api.Get(ctx, path, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch attachments for leave request %d: %w", leaveRequestID, err)
	}
	return out.Attachments, nil
}
