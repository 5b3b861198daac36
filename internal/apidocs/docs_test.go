package apidocs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/swaggo/swag"
)

func TestDocIsValidJSON(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("ReadDoc: %v", err)
	}

	var parsed struct {
		Swagger  string                     `json:"swagger"`
		BasePath string                     `json:"basePath"`
		Paths    map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		t.Fatalf("document is not valid JSON: %v", err)
	}
	if parsed.Swagger != "2.0" || parsed.BasePath != "/api/v1" {
		t.Errorf("swagger/basePath = %q/%q", parsed.Swagger, parsed.BasePath)
	}

	for _, p := range []string{
		"/health",
		"/catalog/questions",
		"/catalog/questions/{id}",
		"/catalog/topics",
		"/catalog/sorting",
		"/catalog/searching",
		"/catalog/structures",
		"/complexity/classify",
		"/complexity/legend",
		"/complexity/chart",
	} {
		if _, ok := parsed.Paths[p]; !ok {
			t.Errorf("document missing path %s", p)
		}
	}
}

func TestRoutesServeDoc(t *testing.T) {
	mux := http.NewServeMux()
	Routes{}.RegisterRoutes(mux)

	req := httptest.NewRequest(http.MethodGet, DocPath, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET %s status = %d, want %d", DocPath, w.Code, http.StatusOK)
	}
	if !json.Valid(w.Body.Bytes()) {
		t.Error("served document is not valid JSON")
	}
}
