package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	domainErrors "github.com/f1rstgear/gearflow/internal/domain/errors"
)

// ExtractReply isolates the order JSON array and the human-readable summary
// inside a single oracle reply that mixes both with explanatory prose.
//
// The JSON substring spans the first '[' through the last ']'. The summary is
// the text following the last fence marker that appears after the JSON, with
// a trailing closing fence stripped. On extraction failure the summary is
// still returned so the caller can surface whatever the oracle said.
func ExtractReply(reply string) (jsonText, summary string, err error) {
	start := strings.Index(reply, "[")
	end := strings.LastIndex(reply, "]")

	if start < 0 || end < start {
		return "", summaryAfter(reply, 0), fmt.Errorf("%w: no bracketed payload", domainErrors.ErrExtraction)
	}

	jsonText = reply[start : end+1]
	summary = summaryAfter(reply, end+1)

	var payload []json.RawMessage
	if uerr := json.Unmarshal([]byte(jsonText), &payload); uerr != nil {
		return "", summary, fmt.Errorf("%w: %v", domainErrors.ErrExtraction, uerr)
	}

	return jsonText, summary, nil
}

func summaryAfter(reply string, from int) string {
	region := reply[from:]
	// a reply typically closes its summary with a bare fence; drop it before
	// locating the opening one
	region = strings.TrimRight(region, "` \t\r\n")
	if idx := strings.LastIndex(region, "```"); idx >= 0 {
		region = region[idx+3:]
		// fence language tag, if any, sits on the fence line
		if nl := strings.IndexByte(region, '\n'); nl >= 0 && isFenceTag(region[:nl]) {
			region = region[nl+1:]
		}
	}
	return strings.TrimSpace(region)
}

func isFenceTag(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return len(strings.Fields(s)) == 1 && len(s) <= 12
}
