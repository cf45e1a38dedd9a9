// Package contract carries the OpenAPI description of the submission endpoint
// and validates HTTP requests against it.
package contract

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
)

//go:embed openapi.yaml
var document []byte

// ErrRouteNotFound is returned when a request does not match any operation.
var ErrRouteNotFound = errors.New("contract: route not found")

// Document returns a copy of the embedded OpenAPI document.
func Document() []byte {
	return append([]byte(nil), document...)
}

// Contract is a parsed and validated OpenAPI document.
type Contract struct {
	spec       *openapi3.T
	router     routers.Router
	operations []string
}

// Load parses the embedded document.
func Load(ctx context.Context) (*Contract, error) {
	return LoadData(ctx, document)
}

// LoadData parses raw as an OpenAPI 3 document (JSON or YAML).
func LoadData(ctx context.Context, raw []byte) (*Contract, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("contract: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("contract: load document: %w", err)
	}
	if err := spec.Validate(ctx); err != nil {
		return nil, fmt.Errorf("contract: validate document: %w", err)
	}
	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil, errors.New("contract: document does not contain any paths")
	}

	router, err := legacy.NewRouter(spec)
	if err != nil {
		return nil, fmt.Errorf("contract: build router: %w", err)
	}

	return &Contract{
		spec:       spec,
		router:     router,
		operations: collectOperations(spec),
	}, nil
}

// Operations lists the operation ids declared by the document, sorted.
func (c *Contract) Operations() []string {
	return append([]string(nil), c.operations...)
}

// Title returns the document title.
func (c *Contract) Title() string {
	if c.spec.Info == nil {
		return ""
	}
	return c.spec.Info.Title
}

// ValidateRequest checks r against the matching operation. The request body is
// left readable for the caller.
func (c *Contract) ValidateRequest(ctx context.Context, r *http.Request) error {
	route, params, err := c.router.FindRoute(r)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrRouteNotFound, r.Method, r.URL.Path, err)
	}

	input := &openapi3filter.RequestValidationInput{
		Request:    r,
		PathParams: params,
		Route:      route,
	}
	if err := openapi3filter.ValidateRequest(ctx, input); err != nil {
		return fmt.Errorf("contract: %s %s: %w", r.Method, r.URL.Path, err)
	}
	return nil
}

func collectOperations(spec *openapi3.T) []string {
	var ids []string
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, op := range item.Operations() {
			if op != nil && op.OperationID != "" {
				ids = append(ids, op.OperationID)
			}
		}
	}
	sort.Strings(ids)
	return ids
}
