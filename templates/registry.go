package templates

import (
	"sync"

	"recharge-travels-service/internal/usecase"
	"recharge-travels-service/pkg/logger"
)

// Registry maps email kinds to their templates
type Registry struct {
	mu        sync.RWMutex
	templates map[string]usecase.EmailTemplate
	logger    logger.Logger
}

// NewRegistry creates an empty registry
func NewRegistry(logger logger.Logger) *Registry {
	return &Registry{
		templates: make(map[string]usecase.EmailTemplate),
		logger:    logger,
	}
}

// NewDefaultRegistry registers every built-in template
func NewDefaultRegistry(logger logger.Logger) *Registry {
	r := NewRegistry(logger)
	r.Register(NewBookingConfirmationTemplate())
	r.Register(NewOwnerDecisionTemplate())
	return r
}

// Register adds a template, replacing any earlier one of the same kind
func (r *Registry) Register(template usecase.EmailTemplate) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.templates[template.Kind()] = template
	r.logger.Info("Registered email template", "kind", template.Kind())
}

// Get returns the template for kind, or nil
func (r *Registry) Get(kind string) usecase.EmailTemplate {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.templates[kind]
}
