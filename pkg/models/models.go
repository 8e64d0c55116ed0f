// Package models provides shared types for the Test Case Generator HTTP API.
// These types mirror the API JSON and are stable for use by pkg/api and the CLI.
package models

import "time"

// User is the authenticated account as returned by GET /auth/me.
type User struct {
	ID                 string        `json:"id"`
	Email              string        `json:"email"`
	FullName           string        `json:"full_name,omitempty"`
	Role               string        `json:"role,omitempty"`
	MustChangePassword bool          `json:"must_change_password,omitempty"`
	Organization       *Organization `json:"organization,omitempty"`
	CreatedAt          time.Time     `json:"created_at,omitempty"`
	LastLogin          *time.Time    `json:"last_login,omitempty"`
}

// IsAdmin reports whether the user holds the admin role. Any other role,
// including an absent one, is not admin.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Organization is the tenant a user belongs to. Referenced, never mutated.
type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Project groups imported features and their test cases.
type Project struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	JiraProjectKey string    `json:"jira_project_key,omitempty"`
	MemberCount    int       `json:"member_count,omitempty"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
	UpdatedAt      time.Time `json:"updated_at,omitempty"`
}

// Feature is an imported issue (epic, story, bug, or task). Epics carry their
// child stories in Children when fetched via GET /stories/{id}; stories never
// have children.
type Feature struct {
	ID            string    `json:"id"`
	ProjectID     string    `json:"project_id,omitempty"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	JiraKey       string    `json:"jira_key,omitempty"`
	JiraType      string    `json:"jira_type"`
	JiraStatus    string    `json:"jira_status,omitempty"`
	TestCaseCount int       `json:"test_case_count"`
	Children      []Feature `json:"children,omitempty"`
	SyncedAt      time.Time `json:"synced_at,omitempty"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
}

// TestStep is one numbered action inside a test case.
type TestStep struct {
	StepNumber     int    `json:"step_number"`
	Action         string `json:"action"`
	ExpectedResult string `json:"expected_result,omitempty"`
}

// TestCase is produced by the generation operation. The client reads it and
// may approve or delete it; edits happen server-side.
type TestCase struct {
	ID             string     `json:"id"`
	FeatureID      string     `json:"feature_id,omitempty"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Steps          []TestStep `json:"steps,omitempty"`
	ExpectedResult string     `json:"expected_result,omitempty"`
	Priority       string     `json:"priority"`
	TestType       string     `json:"test_type"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at,omitempty"`
}

// StoryResult is the per-child outcome line of a bulk generation run.
type StoryResult struct {
	ID               string `json:"id"`
	JiraKey          string `json:"jira_key,omitempty"`
	Name             string `json:"name"`
	Status           string `json:"status"`
	TestCasesCreated int    `json:"test_cases_created,omitempty"`
	Reason           string `json:"reason,omitempty"`
}

// BulkGenerationReport aggregates one orchestration run over an epic's
// children. A fresh report is built per run; reports are never merged.
type BulkGenerationReport struct {
	TotalStories       int           `json:"total_stories"`
	StoriesProcessed   int           `json:"stories_processed"`
	TestCasesGenerated int           `json:"test_cases_generated"`
	PerStory           []StoryResult `json:"per_story"`
}

// ImportResult is the response of POST /jira/import/{projectId}. The server
// may fan out internally (an epic pulls its stories); the client treats the
// call as atomic.
type ImportResult struct {
	ImportedCount int       `json:"imported_count"`
	Children      []Feature `json:"children,omitempty"`
}

// JiraStatus is the response of GET /jira/status.
type JiraStatus struct {
	IsConnected bool   `json:"is_connected"`
	SiteName    string `json:"site_name,omitempty"`
}

// ProviderStatus is the response of GET /ai/providers: which providers the
// current user has configured.
type ProviderStatus struct {
	UserConfiguration map[string]bool `json:"userConfiguration"`
}

// ConnectionTestResult is the response of POST /ai/test-connection.
type ConnectionTestResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
