package predictclient

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// extractDetail reads the service's human-readable rejection reason.
//
// Policy:
// - body not JSON, or no "detail" -> "" (caller falls back)
// - "detail" is a string -> used verbatim
// - "detail" is a validation list -> "field: msg" entries joined with "; "
func extractDetail(body []byte) string {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return ""
	}

	val, err := jsonpath.Get("$.detail", doc)
	if err != nil {
		return ""
	}

	switch t := val.(type) {
	case string:
		return t
	case []any:
		parts := make([]string, 0, len(t))
		for _, it := range t {
			if s := validationEntry(it); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "; ")
	case map[string]any:
		return validationEntry(t)
	default:
		return ""
	}
}

func validationEntry(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case map[string]any:
		msg, _ := t["msg"].(string)
		msg = strings.TrimSpace(msg)
		if msg == "" {
			return ""
		}
		if field := lastLoc(t["loc"]); field != "" {
			return field + ": " + msg
		}
		return msg
	default:
		return ""
	}
}

func lastLoc(v any) string {
	loc, ok := v.([]any)
	if !ok || len(loc) == 0 {
		return ""
	}
	last := loc[len(loc)-1]
	switch t := last.(type) {
	case string:
		if t == "body" {
			return ""
		}
		return t
	case float64:
		return fmt.Sprint(int(t))
	default:
		return ""
	}
}
