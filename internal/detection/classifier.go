// Package detection turns raw shell command output into structured error
// data: a failure verdict plus the features used for memory storage and
// similarity lookup. All functions are pure over the input text and the fixed
// pattern tables and are safe for concurrent use.
package detection

import (
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/cylnet/claude-context-mem/pkg/domain"
)

// ShellToolName is the only tool whose output is classified. Output from any
// other tool is never flagged, whatever it contains.
const ShellToolName = "Bash"

// Classify decides whether a tool invocation's output represents a failure.
// A non-zero exit signal wins over keyword evidence and carries the exit
// code. A matched exit code of exactly zero does not prove success; keyword
// scanning still runs on the same text.
func Classify(toolName string, response domain.ToolResponse) domain.Classification {
	if toolName != ShellToolName {
		return domain.Classification{}
	}

	text := response.Text()

	if code, ok := scanExitCode(text); ok && code != 0 {
		return domain.Classification{
			IsError:      true,
			ErrorMessage: text,
			ExitCode:     &code,
		}
	}

	if scanKeywords(text) {
		return domain.Classification{
			IsError:      true,
			ErrorMessage: text,
		}
	}

	return domain.Classification{}
}

// scanExitCode returns the first exit-code signal found in the text. Patterns
// are tried in priority order; conflicting numbers from later patterns are
// never reconciled.
func scanExitCode(text string) (int, bool) {
	for _, pattern := range exitCodePatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}

		code, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}

		return code, true
	}

	return 0, false
}

// scanKeywords reports whether any failure-keyword pattern matches the text.
func scanKeywords(text string) bool {
	for _, pattern := range keywordPatterns {
		if pattern.matcher.MatchString(text) {
			log.Debug().Str("pattern", pattern.name).Msg("failure keyword matched")
			return true
		}
	}

	return false
}
