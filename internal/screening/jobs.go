package screening

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// DecodeJob converts a loosely typed map, as produced by parsing a JSON or
// YAML job file, into a JobRequirement.
func DecodeJob(raw map[string]any) (*JobRequirement, error) {
	var job JobRequirement

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &job,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode job requirement: %w", err)
	}

	return &job, nil
}

// ParseJob builds a JobRequirement from file content. JSON objects decode
// into the full structure; anything else is treated as a plain-text job
// description with the given fallback title.
func ParseJob(content, fallbackTitle string) (*JobRequirement, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, fmt.Errorf("job description is empty")
	}

	if strings.HasPrefix(trimmed, "{") {
		var raw map[string]any
		if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
			return nil, fmt.Errorf("parse job file: %w", err)
		}

		job, err := DecodeJob(raw)
		if err != nil {
			return nil, err
		}
		if job.Title == "" {
			job.Title = fallbackTitle
		}
		return job, nil
	}

	return &JobRequirement{
		Title:       fallbackTitle,
		Description: trimmed,
	}, nil
}
