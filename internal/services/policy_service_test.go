package services

import (
	"errors"
	"testing"

	"github.com/karthikc1125/simple-login/internal/mocks"
)

func TestPolicyServiceImpl_AddPolicy(t *testing.T) {
	enforcer := mocks.NewMockCasbinEnforcer()
	var added []interface{}
	saved := false
	enforcer.AddPolicyFunc = func(params ...interface{}) (bool, error) {
		added = params
		return true, nil
	}
	enforcer.SavePolicyFunc = func() error {
		saved = true
		return nil
	}

	svc := NewPolicyServiceWithEnforcer(enforcer)
	if err := svc.AddPolicy("role_admin", "/blog", "POST"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(added) != 3 || added[0] != "role_admin" {
		t.Errorf("unexpected policy params: %v", added)
	}
	if !saved {
		t.Error("expected policy to be saved")
	}
}

func TestPolicyServiceImpl_CheckPermission(t *testing.T) {
	enforcer := mocks.NewMockCasbinEnforcer()
	enforcer.EnforceFunc = func(rvals ...interface{}) (bool, error) {
		return rvals[0] == "role_admin", nil
	}

	svc := NewPolicyServiceWithEnforcer(enforcer)

	allowed, err := svc.CheckPermission("role_admin", "/blog", "POST")
	if err != nil || !allowed {
		t.Errorf("expected admin to be allowed, got %v %v", allowed, err)
	}
	allowed, err = svc.CheckPermission("role_user", "/blog", "POST")
	if err != nil || allowed {
		t.Errorf("expected user to be denied, got %v %v", allowed, err)
	}
}

func TestPolicyServiceImpl_AddPolicyError(t *testing.T) {
	enforcer := mocks.NewMockCasbinEnforcer()
	enforcer.AddPolicyFunc = func(params ...interface{}) (bool, error) {
		return false, errors.New("adapter down")
	}

	svc := NewPolicyServiceWithEnforcer(enforcer)
	if err := svc.AddPolicy("role_admin", "/blog", "POST"); err == nil {
		t.Fatal("expected error")
	}
}

func TestPolicyServiceImpl_GetPolicies(t *testing.T) {
	enforcer := mocks.NewMockCasbinEnforcer()
	enforcer.GetPolicyFunc = func() ([][]string, error) {
		return [][]string{{"role_admin", "/blog", "POST"}}, nil
	}

	svc := NewPolicyServiceWithEnforcer(enforcer)
	policies, err := svc.GetPolicies()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(policies) != 1 || policies[0][0] != "role_admin" {
		t.Errorf("unexpected policies: %v", policies)
	}

	// A failed load is surfaced, never silently returned as empty.
	enforcer.GetPolicyFunc = func() ([][]string, error) {
		return nil, errors.New("adapter down")
	}
	if _, err := svc.GetPolicies(); err == nil {
		t.Fatal("expected error")
	}
}
