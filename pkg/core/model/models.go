package model

// LeaveStatus is the lifecycle state of a leave request. Transitions are
// monotonic (pending -> approved or rejected) and enforced by the backend;
// a decoded request is always a snapshot that may already be stale.
type LeaveStatus string

const (
	StatusPending  LeaveStatus = "pending"
	StatusApproved LeaveStatus = "approved"
	StatusRejected LeaveStatus = "rejected"
)

func (s LeaveStatus) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Terminal reports whether the status can no longer change.
func (s LeaveStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// RequestKind discriminates the two shapes a leave request arrives in:
// one's own request (no user attached) or a team member's request.
type RequestKind string

const (
	KindOwn  RequestKind = "own"
	KindTeam RequestKind = "team"
)

// LeaveType identifies a category of leave (annual, sick, ...).
type LeaveType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// UserRef is the compact person shape embedded in request payloads
// (requester, proxy person, approver).
type UserRef struct {
	ID         int    `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	EmployeeID string `json:"employee_id,omitempty"`
}

// FullName joins first and last name for display.
func (u UserRef) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// LeaveRequest is a single leave request as listed or detailed by the
// backend. User is nil for the caller's own requests and set for team
// views; Kind makes that split explicit instead of leaving callers to
// probe for the field.
type LeaveRequest struct {
	ID              int         `json:"id"`
	RequestID       string      `json:"request_id"`
	User            *UserRef    `json:"user,omitempty"`
	LeaveType       LeaveType   `json:"leave_type"`
	StartDate       string      `json:"start_date"` // YYYY-MM-DD, inclusive
	EndDate         string      `json:"end_date"`   // YYYY-MM-DD, inclusive
	DaysCount       float64     `json:"days_count"`
	Reason          string      `json:"reason"`
	Status          LeaveStatus `json:"status"`
	ProxyPerson     *UserRef    `json:"proxy_person,omitempty"`
	Approver        *UserRef    `json:"approver,omitempty"`
	ApprovedAt      string      `json:"approved_at,omitempty"`
	RejectionReason string      `json:"rejection_reason,omitempty"`
	CreatedAt       string      `json:"created_at"`
}

// Kind resolves the request's shape at the API boundary: team items carry
// the requesting user, own items do not.
func (r LeaveRequest) Kind() RequestKind {
	if r.User != nil {
		return KindTeam
	}
	return KindOwn
}

// Attachment is immutable file metadata linked to a leave request.
type Attachment struct {
	ID             int    `json:"id"`
	LeaveRequestID int    `json:"leave_request_id"`
	FileName       string `json:"file_name"`
	FileType       string `json:"file_type"`
	FileSize       int64  `json:"file_size"`
	FilePath       string `json:"file_path,omitempty"`
	UploadedAt     string `json:"uploaded_at"`
}

// Holiday is read-only reference data with yearly scope.
type Holiday struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"` // YYYY-MM-DD
	Description string `json:"description,omitempty"`
}

// Notification is mutated only through mark-as-read calls.
type Notification struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	RelatedTo string `json:"related_to"`
	RelatedID int    `json:"related_id"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

// TeamMember is an employee as seen in the team roster.
type TeamMember struct {
	ID         int    `json:"id"`
	EmployeeID string `json:"employee_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Position   string `json:"position,omitempty"`
	IsManager  bool   `json:"is_manager"`
}

// FullName joins first and last name for display.
func (m TeamMember) FullName() string {
	if m.FirstName == "" {
		return m.LastName
	}
	if m.LastName == "" {
		return m.FirstName
	}
	return m.FirstName + " " + m.LastName
}

// UserProfile is the authenticated user's own profile, including
// organizational attributes and leave quotas.
type UserProfile struct {
	ID          int          `json:"id"`
	EmployeeID  string       `json:"employee_id"`
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	Email       string       `json:"email"`
	Department  string       `json:"department"`
	Position    string       `json:"position,omitempty"`
	IsManager   bool         `json:"is_manager"`
	Manager     *UserRef     `json:"manager,omitempty"`
	LeaveQuotas []LeaveQuota `json:"leave_quotas,omitempty"`
}

// LeaveQuota is the yearly allowance for one leave type.
type LeaveQuota struct {
	LeaveType LeaveType `json:"leave_type"`
	Total     float64   `json:"total"`
	Used      float64   `json:"used"`
	Remaining float64   `json:"remaining"`
}

// Pagination is the list envelope shared by every paginated endpoint.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
}
