package dtos

// DeveloperProfile carries the requester's identity plus whatever CV data
// the frontend has for them. MVPContent is the raw "about me / CV" text block;
// when it is empty we fall back to the structured fields below.
type DeveloperProfile struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name"`

	MVPContent string `json:"mvpContent"`

	Skills       []string `json:"skills"`
	Achievements []string `json:"achievements"`
	Contact      string   `json:"contact"`
}

type RoleInfo struct {
	Title string `json:"title" binding:"required"`

	// Optional Fields
	Requirements    []string `json:"requirements"`
	Skills          []string `json:"skills"`
	Description     string   `json:"description"`
	SalaryRange     string   `json:"salaryRange"`
	WorkArrangement string   `json:"workArrangement"` // e.g. "remote", "hybrid"
}

type CompanyInfo struct {
	Name string `json:"name" binding:"required"`

	// Optional Fields
	Industry string `json:"industry"`
	Size     string `json:"size"`
	Culture  string `json:"culture"`
}

type JobSourceInfo struct {
	Source string `json:"source"` // e.g. "linkedin", "indeed"
}

// CoverLetterRequest is the body of POST /generate-cover-letter.
type CoverLetterRequest struct {
	DeveloperProfile *DeveloperProfile `json:"developerProfile" binding:"required"`
	RoleInfo         *RoleInfo         `json:"roleInfo" binding:"required"`
	CompanyInfo      *CompanyInfo      `json:"companyInfo" binding:"required"`

	// Optional Fields
	JobSourceInfo     *JobSourceInfo `json:"jobSourceInfo"`
	HiringManager     string         `json:"hiringManager"`
	Achievements      []string       `json:"achievements"`
	RequestType       string         `json:"requestType" binding:"omitempty,oneof=coverLetter outreachMessage"`
	Tone              string         `json:"tone"`        // defaults to "formal"
	RegenerationCount int            `json:"regenerationCount"`
}

// CoverLetterResponse is the success body. Cached tells the frontend whether
// this letter came straight from the cache (no generation call happened).
type CoverLetterResponse struct {
	Letter   string `json:"letter"`
	Provider string `json:"provider"`
	Cached   bool   `json:"cached"`
}
