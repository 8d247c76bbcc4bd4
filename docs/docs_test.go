package docs

import (
	"encoding/json"
	"testing"
)

func TestSwaggerSpecRenders(t *testing.T) {
	doc := SwaggerInfo.ReadDoc()

	var parsed struct {
		Swagger     string                            `json:"swagger"`
		BasePath    string                            `json:"basePath"`
		Paths       map[string]map[string]interface{} `json:"paths"`
		Definitions map[string]interface{}            `json:"definitions"`
	}
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		t.Fatalf("swagger spec is not valid JSON: %v", err)
	}

	if parsed.Swagger != "2.0" {
		t.Fatalf("unexpected swagger version %q", parsed.Swagger)
	}
	if parsed.BasePath != "/v1" {
		t.Fatalf("unexpected base path %q", parsed.BasePath)
	}

	routes := map[string]string{
		"/lessons/transcripts": "post",
		"/lessons/{id}":        "get",
		"/transcribe/token":    "get",
		"/livekit/connection":  "get",
	}
	for path, method := range routes {
		ops, ok := parsed.Paths[path]
		if !ok {
			t.Errorf("spec missing path %q", path)
			continue
		}
		if _, ok := ops[method]; !ok {
			t.Errorf("spec missing %s operation on %q", method, path)
		}
	}

	for _, def := range []string{
		"lesson.AddTranscriptRequest",
		"lesson.ConnectionDetails",
		"lesson.TokenResponse",
	} {
		if _, ok := parsed.Definitions[def]; !ok {
			t.Errorf("spec missing definition %q", def)
		}
	}
}
