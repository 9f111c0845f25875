package detection

import (
	"github.com/cylnet/claude-context-mem/pkg/domain"
)

// ExtractFeatures derives the structured feature set from failure text. A
// message that matches nothing yields ErrorTypeUnknown with empty keywords
// and no file path, which downstream consumers treat as valid data.
func ExtractFeatures(errorMessage string) domain.ErrorFeatures {
	return domain.ErrorFeatures{
		ErrorType: extractErrorType(errorMessage),
		Keywords:  extractKeywords(errorMessage),
		FilePath:  filePathPattern.FindString(errorMessage),
	}
}

// extractErrorType returns the tag of the first catalog entry whose pattern
// matches. Catalog order is the tie-break.
func extractErrorType(errorMessage string) string {
	for _, entry := range errorTypeCatalog {
		if entry.matcher.MatchString(errorMessage) {
			return entry.tag
		}
	}

	return domain.ErrorTypeUnknown
}

// extractKeywords collects all-caps tokens in order of appearance, dropping
// short noise of 3 characters or fewer. Repeated tokens are kept.
func extractKeywords(errorMessage string) []string {
	var keywords []string

	for _, token := range keywordTokenPattern.FindAllString(errorMessage, -1) {
		if len(token) <= 3 {
			continue
		}

		keywords = append(keywords, token)
	}

	return keywords
}
