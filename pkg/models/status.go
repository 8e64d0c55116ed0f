package models

// User roles.
const (
	RoleAdmin = "admin"
	RoleQA    = "qa"
)

// Jira issue types carried on Feature.JiraType.
const (
	JiraTypeEpic  = "epic"
	JiraTypeStory = "story"
	JiraTypeBug   = "bug"
	JiraTypeTask  = "task"
)

// Test case priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Test case statuses.
const (
	TestStatusDraft   = "draft"
	TestStatusActive  = "active"
	TestStatusPassed  = "passed"
	TestStatusFailed  = "failed"
	TestStatusSkipped = "skipped"
)

// Per-story outcomes in a BulkGenerationReport.
const (
	StoryGenerated = "generated"
	StorySkipped   = "skipped"
	StoryFailed    = "failed"
)

// ReasonHasTestCases is the skip reason for stories that already carry
// generated test cases.
const ReasonHasTestCases = "already has test cases"
