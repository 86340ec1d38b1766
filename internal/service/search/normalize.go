package search

import (
	"encoding/json"
	"strings"

	"github.com/maumcare/counseling-backend/internal/model/chat"
)

// Normalize converts an arbitrary collaborator payload into resource
// records. It is total: strings, lists, objects and anything else all
// reduce to a (possibly empty) slice, never an error. Records without a
// name are dropped.
func Normalize(payload any) []chat.Resource {
	return normalize(payload, 0)
}

// depth guards recursive payloads (a string containing JSON containing a
// wrapper object, and so on).
const maxNormalizeDepth = 4

func normalize(payload any, depth int) []chat.Resource {
	if depth > maxNormalizeDepth {
		return []chat.Resource{}
	}

	switch v := payload.(type) {
	case nil:
		return []chat.Resource{}

	case []chat.Resource:
		return append([]chat.Resource{}, v...)

	case chat.Resource:
		if v.Name == "" {
			return []chat.Resource{}
		}
		return []chat.Resource{v}

	case string:
		var decoded any
		if err := json.Unmarshal([]byte(v), &decoded); err != nil {
			return []chat.Resource{}
		}
		return normalize(decoded, depth+1)

	case []byte:
		return normalize(string(v), depth+1)

	case json.RawMessage:
		return normalize(string(v), depth+1)

	case []map[string]any:
		records := make([]chat.Resource, 0, len(v))
		for _, item := range v {
			if rec, ok := recordFromMap(item); ok {
				records = append(records, rec)
			}
		}
		return records

	case []any:
		records := make([]chat.Resource, 0, len(v))
		for _, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if rec, ok := recordFromMap(m); ok {
				records = append(records, rec)
			}
		}
		return records

	case map[string]any:
		// Wrapper objects carry the list under a conventional key.
		for _, key := range []string{"results", "items", "records", "data", "institutions"} {
			if inner, ok := v[key]; ok {
				return normalize(inner, depth+1)
			}
		}
		// Otherwise treat the object as a single record.
		if rec, ok := recordFromMap(v); ok {
			return []chat.Resource{rec}
		}
		return []chat.Resource{}

	default:
		return []chat.Resource{}
	}
}

func recordFromMap(m map[string]any) (chat.Resource, bool) {
	rec := chat.Resource{
		Name:        stringField(m, "name", "title", "institution"),
		Address:     stringField(m, "address", "addr", "location"),
		Contact:     stringField(m, "contact", "phone", "tel"),
		SourceURL:   stringField(m, "sourceUrl", "source_url", "url", "link"),
		SourceTitle: stringField(m, "sourceTitle", "source_title", "source"),
	}
	if rec.Name == "" {
		return chat.Resource{}, false
	}
	if rec.SourceTitle == "" {
		rec.SourceTitle = rec.Name
	}
	return rec, true
}

func stringField(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if raw, ok := m[key]; ok {
			if s, ok := raw.(string); ok {
				if trimmed := strings.TrimSpace(s); trimmed != "" {
					return trimmed
				}
			}
		}
	}
	return ""
}
