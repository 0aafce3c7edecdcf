package schema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/jwebster45206/agent-bridge/pkg/state"
)

// Extension is an additional JSON Schema checked after the built-in
// contracts, for projects that pin more of the state layout.
type Extension struct {
	schema *jsonschema.Schema
}

// LoadExtension compiles the JSON Schema file at path.
func LoadExtension(path string) (*Extension, error) {
	s, err := jsonschema.Compile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", path, err)
	}
	return &Extension{schema: s}, nil
}

// Validate returns one record per leaf schema violation.
func (e *Extension) Validate(doc state.Doc) []ErrorRecord {
	err := e.schema.Validate(map[string]any(doc))
	if err == nil {
		return nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return []ErrorRecord{{Path: "$", Message: err.Error()}}
	}

	var out []ErrorRecord
	collectLeaves(verr, &out)
	return out
}

func collectLeaves(verr *jsonschema.ValidationError, out *[]ErrorRecord) {
	if len(verr.Causes) == 0 {
		*out = append(*out, ErrorRecord{
			Path:    pointerToPath(verr.InstanceLocation),
			Message: verr.Message,
		})
		return
	}
	for _, c := range verr.Causes {
		collectLeaves(c, out)
	}
}

// pointerToPath turns "/quests/0/name" into "quests[0].name".
func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return "$"
	}

	var sb strings.Builder
	for _, tok := range strings.Split(ptr, "/") {
		tok = strings.ReplaceAll(strings.ReplaceAll(tok, "~1", "/"), "~0", "~")
		if _, err := strconv.Atoi(tok); err == nil {
			sb.WriteString("[" + tok + "]")
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(".")
		}
		sb.WriteString(tok)
	}
	return sb.String()
}
