package models

import "time"

// Knowledge batch processing statuses.
const (
	BatchPending    = "pending"
	BatchProcessing = "processing"
	BatchCompleted  = "completed"
	BatchFailed     = "failed"
)

// KnowledgeBatch is one uploaded knowledge-base file and its processing
// progress. The server parses and embeds the rows asynchronously; the client
// only reads the counters.
type KnowledgeBatch struct {
	ID             string         `json:"id"`
	ProjectID      string         `json:"project_id"`
	FileName       string         `json:"file_name"`
	FileType       string         `json:"file_type"`
	FileSizeBytes  int64          `json:"file_size_bytes,omitempty"`
	Status         string         `json:"status"`
	RowCount       int            `json:"row_count"`
	ProcessedCount int            `json:"processed_count"`
	ErrorCount     int            `json:"error_count"`
	ErrorDetails   map[string]any `json:"error_details,omitempty"`
	CreatedAt      time.Time      `json:"created_at,omitempty"`
	UpdatedAt      time.Time      `json:"updated_at,omitempty"`
}

// KnowledgeEntry is one historical test case extracted from a batch, used by
// the server as generation context.
type KnowledgeEntry struct {
	ID              string     `json:"id"`
	BatchID         string     `json:"batch_id"`
	ProjectID       string     `json:"project_id"`
	UserStoryID     string     `json:"user_story_id,omitempty"`
	JiraKey         string     `json:"jira_key,omitempty"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Steps           []TestStep `json:"steps,omitempty"`
	ExpectedResult  string     `json:"expected_result,omitempty"`
	Priority        string     `json:"priority,omitempty"`
	TestType        string     `json:"test_type,omitempty"`
	Tags            []string   `json:"tags,omitempty"`
	SourceRowNumber int        `json:"source_row_number,omitempty"`
	Status          string     `json:"status,omitempty"`
	CreatedAt       time.Time  `json:"created_at,omitempty"`
}
