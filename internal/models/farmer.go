package models

// FarmDetails describes the farm attached to a farmer profile.
type FarmDetails struct {
	Name       string   `json:"name,omitempty"`
	Location   string   `json:"location"`
	Size       float64  `json:"size"`
	Age        *int     `json:"age"`
	Crops      []string `json:"crops"`
	Livestock  string   `json:"livestock,omitempty"`
	Irrigation string   `json:"irrigation,omitempty"`
	Goals      string   `json:"goals,omitempty"`
}

// Preferences holds the farmer's communication opt-ins.
type Preferences struct {
	Newsletter bool `json:"newsletter"`
	ShareInfo  bool `json:"shareInfo"`
}

// Farmer is the profile record behind a farmer account. FarmerID is the
// human-facing display id; only ID is used for lookups and authorization.
type Farmer struct {
	ID                 string      `json:"id"`
	FarmerID           string      `json:"farmerId"`
	AccountID          string      `json:"accountId"`
	FirstName          string      `json:"firstName"`
	LastName           string      `json:"lastName"`
	FullName           string      `json:"fullName"`
	Email              string      `json:"email"`
	Phone              string      `json:"phone"`
	IDNumber           string      `json:"idNumber,omitempty"`
	FarmDetails        FarmDetails `json:"farmDetails"`
	Preferences        Preferences `json:"preferences"`
	RegistrationDate   string      `json:"registrationDate"`
	LastLogin          string      `json:"lastLogin,omitempty"`
	Status             string      `json:"status"`
	Verified           bool        `json:"verified"`
	VerificationToken  string      `json:"verificationToken,omitempty"`
	VerificationSentAt string      `json:"verificationSentAt,omitempty"`
	ProfileComplete    bool        `json:"profileComplete"`
	AssessmentCount    int         `json:"assessmentCount"`
	OrderCount         int         `json:"orderCount"`
	Rating             *float64    `json:"rating"`
	UpdatedAt          string      `json:"updatedAt,omitempty"`
}
