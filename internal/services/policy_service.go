package services

import (
	"fmt"

	"github.com/casbin/casbin/v2"

	"github.com/karthikc1125/simple-login/domain"
)

// casbinEnforcer adapts the concrete Casbin enforcer to the narrow
// domain.CasbinEnforcer interface the service is written against.
type casbinEnforcer struct {
	e *casbin.Enforcer
}

func (a *casbinEnforcer) AddPolicy(params ...interface{}) (bool, error) {
	return a.e.AddPolicy(params...)
}

func (a *casbinEnforcer) RemovePolicy(params ...interface{}) (bool, error) {
	return a.e.RemovePolicy(params...)
}

func (a *casbinEnforcer) Enforce(rvals ...interface{}) (bool, error) {
	return a.e.Enforce(rvals...)
}

func (a *casbinEnforcer) GetPolicy() ([][]string, error) {
	return a.e.GetPolicy()
}

func (a *casbinEnforcer) SavePolicy() error {
	return a.e.SavePolicy()
}

// PolicyServiceImpl implements domain.PolicyService over Casbin. Every
// mutation is written through to the policy store immediately.
type PolicyServiceImpl struct {
	enforcer domain.CasbinEnforcer
}

// NewPolicyService creates a policy service backed by the real enforcer
func NewPolicyService(enforcer *casbin.Enforcer) domain.PolicyService {
	return NewPolicyServiceWithEnforcer(&casbinEnforcer{e: enforcer})
}

// NewPolicyServiceWithEnforcer creates a policy service over any enforcer
// implementation (used by tests)
func NewPolicyServiceWithEnforcer(enforcer domain.CasbinEnforcer) domain.PolicyService {
	return &PolicyServiceImpl{enforcer: enforcer}
}

// AddPolicy implements domain.PolicyService
func (p *PolicyServiceImpl) AddPolicy(role, resource, action string) error {
	if _, err := p.enforcer.AddPolicy(role, resource, action); err != nil {
		return fmt.Errorf("failed to add policy: %w", err)
	}
	return p.persist()
}

// RemovePolicy implements domain.PolicyService
func (p *PolicyServiceImpl) RemovePolicy(role, resource, action string) error {
	if _, err := p.enforcer.RemovePolicy(role, resource, action); err != nil {
		return fmt.Errorf("failed to remove policy: %w", err)
	}
	return p.persist()
}

// CheckPermission implements domain.PolicyService
func (p *PolicyServiceImpl) CheckPermission(role, resource, action string) (bool, error) {
	return p.enforcer.Enforce(role, resource, action)
}

// GetPolicies implements domain.PolicyService
func (p *PolicyServiceImpl) GetPolicies() ([][]string, error) {
	policies, err := p.enforcer.GetPolicy()
	if err != nil {
		return nil, fmt.Errorf("failed to load policies: %w", err)
	}
	return policies, nil
}

func (p *PolicyServiceImpl) persist() error {
	if err := p.enforcer.SavePolicy(); err != nil {
		return fmt.Errorf("failed to persist policies: %w", err)
	}
	return nil
}
