package dto_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-manager-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-manager-service/internal/domain"
)

func stringPtr(s string) *string { return &s }

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestCreateUserRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.CreateUserRequest
		wantErr   bool
		wantField string
	}{
		{
			name:    "valid request passes",
			req:     dto.CreateUserRequest{Username: "alice", Role: "USER"},
			wantErr: false,
		},
		{
			name:    "email accepted",
			req:     dto.CreateUserRequest{Username: "alice", Email: stringPtr("alice@example.com"), Role: "ADMIN"},
			wantErr: false,
		},
		{
			name:      "blank username rejected",
			req:       dto.CreateUserRequest{Username: "   ", Role: "USER"},
			wantErr:   true,
			wantField: "username",
		},
		{
			name:      "missing role rejected",
			req:       dto.CreateUserRequest{Username: "alice"},
			wantErr:   true,
			wantField: "role",
		},
		{
			name:      "unknown role rejected",
			req:       dto.CreateUserRequest{Username: "alice", Role: "SUPERUSER"},
			wantErr:   true,
			wantField: "role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestCreateUserRequest_ToUser_TrimsUsername(t *testing.T) {
	t.Parallel()

	req := dto.CreateUserRequest{Username: "  alice  ", Role: "USER"}
	u := req.ToUser()

	if u.Username != "alice" {
		t.Errorf("Username = %q, want %q", u.Username, "alice")
	}
	if u.ID != uuid.Nil {
		t.Errorf("ID = %v, want nil UUID", u.ID)
	}
}

func TestCreateTaskRequest_Validate(t *testing.T) {
	t.Parallel()

	assignee := uuid.New()

	tests := []struct {
		name      string
		req       dto.CreateTaskRequest
		wantErr   bool
		wantField string
	}{
		{
			name:    "minimal request passes",
			req:     dto.CreateTaskRequest{Title: "Write report", Status: "TODO"},
			wantErr: false,
		},
		{
			name: "full request passes",
			req: dto.CreateTaskRequest{
				Title:       "Write report",
				Description: stringPtr("quarterly numbers"),
				Status:      "IN_PROGRESS",
				Priority:    "HIGH",
				DueDate:     "2026-09-15",
				AssigneeID:  &assignee,
			},
			wantErr: false,
		},
		{
			name:      "blank title rejected",
			req:       dto.CreateTaskRequest{Title: " ", Status: "TODO"},
			wantErr:   true,
			wantField: "title",
		},
		{
			name:      "missing status rejected",
			req:       dto.CreateTaskRequest{Title: "Write report"},
			wantErr:   true,
			wantField: "status",
		},
		{
			name:      "unknown status rejected",
			req:       dto.CreateTaskRequest{Title: "Write report", Status: "LATER"},
			wantErr:   true,
			wantField: "status",
		},
		{
			name:      "unknown priority rejected",
			req:       dto.CreateTaskRequest{Title: "Write report", Status: "TODO", Priority: "URGENT"},
			wantErr:   true,
			wantField: "priority",
		},
		{
			name:      "bad due date layout rejected",
			req:       dto.CreateTaskRequest{Title: "Write report", Status: "TODO", DueDate: "15/09/2026"},
			wantErr:   true,
			wantField: "dueDate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestCreateTaskRequest_ToTask_ParsesDueDate(t *testing.T) {
	t.Parallel()

	req := dto.CreateTaskRequest{Title: "Deploy", Status: "TODO", DueDate: "2026-09-15"}
	tk := req.ToTask()

	if tk.DueDate == nil {
		t.Fatal("DueDate = nil, want parsed date")
	}
	if got := tk.DueDate.Format(dto.DueDateLayout); got != "2026-09-15" {
		t.Errorf("DueDate = %s, want 2026-09-15", got)
	}
}

func TestUpdateTaskRequest_ValidatesLikeCreate(t *testing.T) {
	t.Parallel()

	req := dto.UpdateTaskRequest{Title: "Deploy", Status: "NOPE"}
	requireValidationField(t, req.Validate(), "status")
}
