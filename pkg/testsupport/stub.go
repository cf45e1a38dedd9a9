package testsupport

import (
	"net/http/httptest"
	"testing"

	"github.com/goliatone/go-resetform/pkg/contract"
	"github.com/goliatone/go-resetform/pkg/model"
)

// ValidForm returns values that pass every local rule.
func ValidForm() model.FormState {
	return model.FormState{
		Username:        "reader",
		CurrentPassword: "old-secret",
		NewPassword:     "Sup3r!pass",
		ConfirmPassword: "Sup3r!pass",
	}
}

// NewStubServer starts the contract stub endpoint and closes it on cleanup.
func NewStubServer(t *testing.T, options ...contract.StubOption) *httptest.Server {
	t.Helper()

	c, err := contract.Load(Context())
	if err != nil {
		t.Fatalf("load contract: %v", err)
	}
	srv := httptest.NewServer(contract.NewStubHandler(c, options...))
	t.Cleanup(srv.Close)
	return srv
}
