package userclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/api"
	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/core/model"
)

func TestMe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/me", r.URL.Path)
		json.NewEncoder(w).Encode(model.UserProfile{
			ID:        1,
			FirstName: "Mia",
			LastName:  "Chen",
			IsManager: true,
			Manager:   &model.UserRef{ID: 2, FirstName: "Ravi"},
			LeaveQuotas: []model.LeaveQuota{
				{LeaveType: model.LeaveType{ID: 1, Name: "Annual Leave"}, Total: 14, Used: 3, Remaining: 11},
			},
		})
	}))
	defer server.Close()

	transport, err := api.NewClient(server.URL)
	require.NoError(t, err)

	profile, err := NewClient(transport).Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Mia", profile.FirstName)
	assert.True(t, profile.IsManager)
	require.Len(t, profile.LeaveQuotas, 1)
	assert.Equal(t, 11.0, profile.LeaveQuotas[0].Remaining)
}

func TestTeamMembersAndSubordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/team":
			json.NewEncoder(w).Encode(map[string][]model.TeamMember{
				"members": {{ID: 7, FirstName: "Noor"}, {ID: 8, FirstName: "Leo"}},
			})
		case "/users/subordinates":
			json.NewEncoder(w).Encode(map[string][]model.TeamMember{
				"members": {{ID: 7, FirstName: "Noor"}},
			})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	transport, err := api.NewClient(server.URL)
	require.NoError(t, err)
	client := NewClient(transport)

	team, err := client.TeamMembers(context.Background())
	require.NoError(t, err)
	assert.Len(t, team, 2)

	subs, err := client.Subordinates(context.Background())
	require.NoError(t, err)
	assert.Len(t, subs, 1)
}
