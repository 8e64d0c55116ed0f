// Package generate walks an epic's child stories and drives per-story test
// case generation, producing a partial-success report.
package generate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/pkg/models"
)

// API is the slice of the resource client the orchestrator needs.
type API interface {
	GetStory(ctx context.Context, id string) (*models.Feature, error)
	GenerateTestCases(ctx context.Context, featureID string) ([]models.TestCase, error)
}

// Orchestrator runs bulk generation over an epic. Children are processed
// sequentially in fetch order, so at most one generation call is in flight
// per run and the aggregate counts stay deterministic.
type Orchestrator struct {
	API    API
	Logger *slog.Logger // optional
}

// New returns an orchestrator over the given API.
func New(a API) *Orchestrator {
	return &Orchestrator{API: a}
}

func (o *Orchestrator) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Eligible reports whether a story needs generation. Stories that already
// carry test cases are skipped; re-running over the same epic converges
// instead of piling up duplicates.
func Eligible(story *models.Feature) bool {
	return story.TestCaseCount == 0
}

// BulkGenerate resolves the epic's children fresh and generates test cases
// for every eligible one. A failure on one child is recorded in the report
// and never aborts the rest of the batch. The report covers every child:
// generated, skipped, or failed.
func (o *Orchestrator) BulkGenerate(ctx context.Context, epicID string) (*models.BulkGenerationReport, error) {
	epic, err := o.API.GetStory(ctx, epicID)
	if err != nil {
		return nil, fmt.Errorf("resolve epic %s: %w", epicID, err)
	}
	if epic.JiraType != models.JiraTypeEpic {
		return nil, fmt.Errorf("issue %s is a %s, not an epic", epicID, epic.JiraType)
	}

	report := &models.BulkGenerationReport{
		TotalStories: len(epic.Children),
		PerStory:     make([]models.StoryResult, 0, len(epic.Children)),
	}
	for i := range epic.Children {
		child := &epic.Children[i]
		result := models.StoryResult{ID: child.ID, JiraKey: child.JiraKey, Name: child.Name}

		if !Eligible(child) {
			result.Status = models.StorySkipped
			result.Reason = models.ReasonHasTestCases
			report.PerStory = append(report.PerStory, result)
			continue
		}

		cases, err := o.API.GenerateTestCases(ctx, child.ID)
		if err != nil {
			o.logger().Warn("generation failed for story", "story", child.ID, "err", err)
			result.Status = models.StoryFailed
			result.Reason = err.Error()
			report.PerStory = append(report.PerStory, result)
			continue
		}
		result.Status = models.StoryGenerated
		result.TestCasesCreated = len(cases)
		report.StoriesProcessed++
		report.TestCasesGenerated += len(cases)
		report.PerStory = append(report.PerStory, result)
	}
	return report, nil
}

// GenerateOne invokes remote generation for a single story. Unlike the bulk
// path it never consults the skip rule: an explicit generate action is
// additive even when test cases already exist.
func (o *Orchestrator) GenerateOne(ctx context.Context, storyID string) ([]models.TestCase, error) {
	return o.API.GenerateTestCases(ctx, storyID)
}
