package docs

import (
	"encoding/json"
	"testing"
)

func TestReadDoc_IsValidSwagger(t *testing.T) {
	var doc struct {
		Swagger string                                       `json:"swagger"`
		Paths   map[string]map[string]map[string]interface{} `json:"paths"`
	}
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc); err != nil {
		t.Fatalf("document is not valid JSON: %v", err)
	}
	if doc.Swagger != "2.0" {
		t.Errorf("swagger = %q, want 2.0", doc.Swagger)
	}

	for path, ops := range doc.Paths {
		for method, op := range ops {
			if op["summary"] == nil {
				t.Errorf("%s %s has no summary", method, path)
			}
			if op["security"] == nil {
				t.Errorf("%s %s has no security requirement", method, path)
			}
		}
	}
	if _, ok := doc.Paths["/portfolio/growth"]["get"]; !ok {
		t.Error("expected /portfolio/growth to be documented")
	}
}
