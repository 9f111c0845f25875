package managers

import (
	"context"
	"fmt"

	"github.com/cylnet/claude-context-mem/pkg/clients/contextmem"
	"github.com/cylnet/claude-context-mem/pkg/domain"
)

// ContextMemoryService adapts the context-mem API client to the domain
// memory service contract.
type ContextMemoryService struct {
	api contextmem.ClientInterface
}

func NewContextMemoryService(api contextmem.ClientInterface) *ContextMemoryService {
	return &ContextMemoryService{
		api: api,
	}
}

func (s *ContextMemoryService) SubmitError(ctx context.Context, record domain.ErrorRecord) error {
	resp, err := s.api.SubmitError(ctx, &contextmem.SubmitErrorRequest{
		SessionID:        record.SessionID,
		ErrorMessage:     record.ErrorMessage,
		ErrorType:        record.ErrorType,
		Keywords:         record.Keywords,
		FilePath:         record.FilePath,
		Command:          record.Command,
		WorkingDirectory: record.WorkingDirectory,
	})
	if err != nil {
		return err
	}

	if !resp.Success {
		return fmt.Errorf("memory service rejected error record")
	}

	return nil
}

func (s *ContextMemoryService) QuerySimilarErrors(ctx context.Context, errorMessage string) ([]domain.SimilarError, error) {
	resp, err := s.api.QuerySimilarErrors(ctx, errorMessage)
	if err != nil {
		return nil, err
	}

	similar := make([]domain.SimilarError, 0, len(resp.Errors))
	for _, record := range resp.Errors {
		similar = append(similar, domain.SimilarError{
			Title: record.Title,
		})
	}

	return similar, nil
}
