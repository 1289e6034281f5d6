package models

// Assessment request statuses. Pending requests can be scheduled or
// cancelled; scheduled requests can be completed or cancelled; completed and
// cancelled are terminal.
const (
	AssessmentStatusPending   = "pending"
	AssessmentStatusScheduled = "scheduled"
	AssessmentStatusCompleted = "completed"
	AssessmentStatusCancelled = "cancelled"
)

var assessmentTransitions = map[string][]string{
	AssessmentStatusPending:   {AssessmentStatusScheduled, AssessmentStatusCancelled},
	AssessmentStatusScheduled: {AssessmentStatusCompleted, AssessmentStatusCancelled},
}

// IsAssessmentStatus reports whether s is a known status value.
func IsAssessmentStatus(s string) bool {
	switch s {
	case AssessmentStatusPending, AssessmentStatusScheduled,
		AssessmentStatusCompleted, AssessmentStatusCancelled:
		return true
	}
	return false
}

// CanTransitionAssessment reports whether an assessment request may move from
// one status to another.
func CanTransitionAssessment(from, to string) bool {
	for _, next := range assessmentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AssessmentFarm describes the farm a request is about.
type AssessmentFarm struct {
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	Size          float64  `json:"size"`
	Age           *int     `json:"age"`
	Crops         []string `json:"crops"`
	Livestock     string   `json:"livestock,omitempty"`
	CurrentIssues string   `json:"currentIssues,omitempty"`
}

// AssessmentContact identifies the person who filed the request. Requests are
// anonymous: there is no account behind them, only these contact details.
type AssessmentContact struct {
	FullName         string `json:"fullName"`
	Phone            string `json:"phone"`
	Email            string `json:"email,omitempty"`
	IDNumber         string `json:"idNumber,omitempty"`
	RegisteredFarmer bool   `json:"registeredFarmer"`
}

// AssessmentNote is an audit entry appended on status changes.
type AssessmentNote struct {
	Type    string `json:"type"`
	Content string `json:"content"`
	Date    string `json:"date"`
	By      string `json:"by"`
}

// AssessmentRequest is a farm-assessment request. ReferenceNumber, not ID, is
// the caller-facing handle for status queries.
type AssessmentRequest struct {
	ID                 string            `json:"id"`
	ReferenceNumber    string            `json:"referenceNumber"`
	AssessmentType     string            `json:"assessmentType"`
	FarmDetails        AssessmentFarm    `json:"farmDetails"`
	FarmerDetails      AssessmentContact `json:"farmerDetails"`
	AdditionalInfo     string            `json:"additionalInfo,omitempty"`
	PreferredDate      string            `json:"preferredDate,omitempty"`
	NewsletterOptIn    bool              `json:"newsletterOptIn"`
	SubmissionDate     string            `json:"submissionDate"`
	Status             string            `json:"status"`
	AssignedAgronomist string            `json:"assignedAgronomist,omitempty"`
	ScheduledDate      string            `json:"scheduledDate,omitempty"`
	VisitDate          string            `json:"visitDate,omitempty"`
	CompletedDate      string            `json:"completedDate,omitempty"`
	ReportGenerated    bool              `json:"reportGenerated"`
	Notes              []AssessmentNote  `json:"notes"`
	UpdatedAt          string            `json:"updatedAt,omitempty"`
}
