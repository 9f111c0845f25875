package managers

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/cylnet/claude-context-mem/internal/detection"
	"github.com/cylnet/claude-context-mem/pkg/domain"
)

const (
	defaultQueryTimeout  = 3 * time.Second
	defaultSubmitTimeout = 5 * time.Second
)

// ErrorLearningManager runs the post-tool-use pipeline: classify the output,
// extract features from failures, submit a record to the memory service and
// collect similar past errors as hints. Submission is fire-and-forget; the
// query is best-effort under a bounded wait.
type ErrorLearningManager struct {
	memory        domain.ErrorMemoryService
	queryTimeout  time.Duration
	submitTimeout time.Duration

	// pending tracks in-flight submissions so tests can wait for them.
	pending sync.WaitGroup
}

type ErrorLearningManagerDependencies struct {
	MemoryService domain.ErrorMemoryService
	QueryTimeout  time.Duration
	SubmitTimeout time.Duration
}

func NewErrorLearningManager(deps ErrorLearningManagerDependencies) *ErrorLearningManager {
	queryTimeout := deps.QueryTimeout
	if queryTimeout <= 0 {
		queryTimeout = defaultQueryTimeout
	}

	submitTimeout := deps.SubmitTimeout
	if submitTimeout <= 0 {
		submitTimeout = defaultSubmitTimeout
	}

	return &ErrorLearningManager{
		memory:        deps.MemoryService,
		queryTimeout:  queryTimeout,
		submitTimeout: submitTimeout,
	}
}

// HandleToolResult processes one tool invocation and returns the hint block
// to surface, or "" when there is nothing to show. Missing session context is
// the one loud failure: continuing without it would corrupt stored records.
func (m *ErrorLearningManager) HandleToolResult(ctx context.Context, inv domain.ToolInvocation) (string, error) {
	if inv.SessionID == "" {
		return "", fmt.Errorf("session ID is required")
	}

	if inv.WorkingDirectory == "" {
		return "", fmt.Errorf("working directory is required")
	}

	classification := detection.Classify(inv.ToolName, inv.ToolResponse)
	if !classification.IsError {
		return "", nil
	}

	features := detection.ExtractFeatures(classification.ErrorMessage)

	m.submitError(domain.ErrorRecord{
		SessionID:        inv.SessionID,
		ErrorMessage:     classification.ErrorMessage,
		ErrorType:        features.ErrorType,
		Keywords:         features.Keywords,
		FilePath:         features.FilePath,
		Command:          inv.Command(),
		WorkingDirectory: inv.WorkingDirectory,
	})

	return m.SimilarErrorHints(ctx, classification.ErrorMessage), nil
}

// submitError hands the record to the memory service without blocking the
// caller. The outcome is only observed for logging; delivery is at most once
// and loss on transient failure is accepted.
func (m *ErrorLearningManager) submitError(record domain.ErrorRecord) {
	m.pending.Add(1)

	go func() {
		defer m.pending.Done()

		ctx, cancel := context.WithTimeout(context.Background(), m.submitTimeout)
		defer cancel()

		if err := m.memory.SubmitError(ctx, record); err != nil {
			log.Debug().Err(err).Str("error_type", record.ErrorType).Msg("failed to submit error record")
		}
	}()
}

// SimilarErrorHints queries for related past errors and formats them for
// display. Any failure or an empty result yields "", never an error: a hung
// or unreachable memory service must not stall the invoking workflow.
func (m *ErrorLearningManager) SimilarErrorHints(ctx context.Context, errorMessage string) string {
	ctx, cancel := context.WithTimeout(ctx, m.queryTimeout)
	defer cancel()

	similar, err := m.memory.QuerySimilarErrors(ctx, errorMessage)
	if err != nil {
		log.Debug().Err(err).Msg("failed to query similar errors")
		return ""
	}

	if len(similar) == 0 {
		return ""
	}

	return FormatSimilarErrors(similar)
}

// Wait blocks until all in-flight submissions resolve. Intended for tests;
// the hook flow never waits.
func (m *ErrorLearningManager) Wait() {
	m.pending.Wait()
}

// FormatSimilarErrors renders similar past errors as a bulleted hint block.
// Records without a title fall back to a generic label.
func FormatSimilarErrors(similar []domain.SimilarError) string {
	var b strings.Builder

	b.WriteString("Similar errors seen before:\n")

	for _, record := range similar {
		title := record.Title
		if title == "" {
			title = "Error"
		}

		fmt.Fprintf(&b, "- %s\n", title)
	}

	return b.String()
}
