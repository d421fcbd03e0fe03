package leaveclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/core/model"
)

func TestUploadAttachmentSendsMultipart(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/leave-requests/42/attachments", r.URL.Path)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "note.pdf", header.Filename)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "doctor's note", string(content))

		json.NewEncoder(w).Encode(model.Attachment{
			ID:             7,
			LeaveRequestID: 42,
			FileName:       "note.pdf",
			FileType:       "application/pdf",
			FileSize:       13,
		})
	})

	attachment, err := client.UploadAttachment(context.Background(), 42, "note.pdf", strings.NewReader("doctor's note"))
	require.NoError(t, err)
	assert.Equal(t, 7, attachment.ID)
	assert.Equal(t, 42, attachment.LeaveRequestID)
}

func TestListAttachments(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/leave-requests/42/attachments", r.URL.Path)
		json.NewEncoder(w).Encode(AttachmentList{
			Attachments: []model.Attachment{
				{ID: 7, FileName: "note.pdf"},
				{ID: 8, FileName: "ticket.jpg"},
			},
			TotalCount: 2,
		})
	})

	attachments, err := client.ListAttachments(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, attachments, 2)
	assert.Equal(t, "note.pdf", attachments[0].FileName)
}
