package policy

import (
	"context"
	_ "embed"
	"fmt"

	"recharge-travels-service/internal/domain/entity"

	"github.com/open-policy-agent/opa/rego"
)

//go:embed policy.rego
var adminPolicy string

// Input is the document evaluated by the admin policy
type Input struct {
	User   entity.User `json:"user"`
	Method string      `json:"method"`
	Path   string      `json:"path"`
}

// AdminPolicy decides access to back-office routes
type AdminPolicy struct {
	query rego.PreparedEvalQuery
}

// NewAdminPolicy compiles the embedded policy
func NewAdminPolicy(ctx context.Context) (*AdminPolicy, error) {
	query, err := rego.New(
		rego.Query("data.recharge.admin.allow"),
		rego.Module("policy.rego", adminPolicy),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare admin policy: %w", err)
	}

	return &AdminPolicy{query: query}, nil
}

// Allow reports whether the policy permits input
func (p *AdminPolicy) Allow(ctx context.Context, input Input) (bool, error) {
	rs, err := p.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return false, fmt.Errorf("failed to evaluate admin policy: %w", err)
	}

	return rs.Allowed(), nil
}
