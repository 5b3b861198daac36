package apidocs

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// DocPath is where the OpenAPI document is served.
const DocPath = "/swagger/doc.json"

// Routes mounts Swagger UI and the OpenAPI document.
type Routes struct{}

// RegisterRoutes implements server.RouteRegistrar.
func (Routes) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL(DocPath)))
}
