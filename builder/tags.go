package builder

import (
	"strings"

	"github.com/engineer-dilnawaz/dynamic-forms/model"
)

// Select/radio options are edited as a single comma-separated string and only
// expanded into stored options when the draft is built.

// Tags parses an options string into clean tags: split on commas, trimmed,
// empties dropped.
func Tags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// AddTag appends a tag unless it is blank or already present, returning the
// re-joined options string.
func AddTag(s, tag string) string {
	tag = strings.TrimSpace(tag)
	tags := Tags(s)
	if tag == "" {
		return strings.Join(tags, ", ")
	}
	for _, t := range tags {
		if t == tag {
			return strings.Join(tags, ", ")
		}
	}
	return strings.Join(append(tags, tag), ", ")
}

// RemoveTag drops every occurrence of a tag by value.
func RemoveTag(s, tag string) string {
	tag = strings.TrimSpace(tag)
	var kept []string
	for _, t := range Tags(s) {
		if t != tag {
			kept = append(kept, t)
		}
	}
	return strings.Join(kept, ", ")
}

// expandOptions turns an options string into stored field options, label and
// value both set to the trimmed tag.
func expandOptions(s string) []model.FieldOption {
	tags := Tags(s)
	if len(tags) == 0 {
		return nil
	}
	opts := make([]model.FieldOption, len(tags))
	for i, tag := range tags {
		opts[i] = model.FieldOption{Label: tag, Value: tag}
	}
	return opts
}

// joinOptions is the inverse of expandOptions, used when loading an existing
// schema into the editor.
func joinOptions(opts []model.FieldOption) string {
	values := make([]string, len(opts))
	for i, o := range opts {
		values[i] = o.Value
	}
	return strings.Join(values, ", ")
}
