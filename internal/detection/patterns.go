package detection

import "regexp"

// exitCodePatterns are tried in order against the full response text; the
// first pattern that matches wins and its captured integer is the exit code.
var exitCodePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)exit code:?\s*(\d+)`),
	regexp.MustCompile(`(?i)exited with code\s+(\d+)`),
	regexp.MustCompile(`(?i)returned\s+(\d+)`),
}

// keywordPattern pairs a failure-keyword matcher with the name reported in
// the scanner's debug event.
type keywordPattern struct {
	name    string
	matcher *regexp.Regexp
}

// keywordPatterns are consulted only when no non-zero exit signal was found.
// First match wins.
var keywordPatterns = []keywordPattern{
	{name: "error_marker", matcher: regexp.MustCompile(`(?i)error:`)},
	{name: "npm_failure", matcher: regexp.MustCompile(`(?i)npm ERR!`)},
	{name: "task_failed", matcher: regexp.MustCompile(`(?i)(build|test|command|process|task|job|compilation) failed`)},
	{name: "exception", matcher: regexp.MustCompile(`(?i)exception`)},
}

// errorTypePattern pairs an error-type signature with its catalog tag.
type errorTypePattern struct {
	matcher *regexp.Regexp
	tag     string
}

// errorTypeCatalog is ordered; when a message could match more than one
// entry, the earlier entry wins.
var errorTypeCatalog = []errorTypePattern{
	{matcher: regexp.MustCompile(`TypeError`), tag: "TypeError"},
	{matcher: regexp.MustCompile(`SyntaxError`), tag: "SyntaxError"},
	{matcher: regexp.MustCompile(`ReferenceError`), tag: "ReferenceError"},
	{matcher: regexp.MustCompile(`ModuleNotFoundError|Cannot find module`), tag: "module_not_found"},
	{matcher: regexp.MustCompile(`npm ERR!`), tag: "npm"},
	{matcher: regexp.MustCompile(`(?i)pip.* error`), tag: "pip"},
	{matcher: regexp.MustCompile(`(?i)cargo.* error|error\[E\d+\]`), tag: "cargo"},
	{matcher: regexp.MustCompile(`error TS\d+`), tag: "tsc"},
}

// keywordTokenPattern captures all-caps identifier-shaped tokens such as OS
// error codes (ENOENT, EACCES). Tokens of length <= 3 are filtered out after
// matching.
var keywordTokenPattern = regexp.MustCompile(`[A-Z][A-Z0-9_]+`)

// filePathPattern matches the first POSIX-style absolute path shape. It is a
// heuristic, not a validator: it ignores Windows paths and may false-positive
// on path-looking text.
var filePathPattern = regexp.MustCompile(`(?:/[^\s/.]+)+(?:\.[A-Za-z0-9_]+)?`)
