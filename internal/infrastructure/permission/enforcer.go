package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"helpdesk/internal/shared/logger"
)

// rbacModel matches a role subject against role/resource/action policies.
// A policy action of "*" grants every action on the resource.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && (p.act == "*" || r.act == p.act)
`

// Enforcer persists rules through casbin auto-save, one statement per rule.
// SavePolicy must not be used: it truncates inside a transaction and blocks on
// the single-connection sqlite pool.
type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewEnforcer builds a casbin enforcer whose policies live in the casbin_rule table.
func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

func (e *Enforcer) Enforce(role string, resource string, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(role, resource, action)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}

	return allowed, nil
}

func (e *Enforcer) AddPolicy(role string, resource string, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.AddPolicy(role, resource, action); err != nil {
		e.logger.Errorw("failed to add policy", "error", err)
		return fmt.Errorf("failed to add policy: %w", err)
	}

	return nil
}

func (e *Enforcer) RemovePolicy(role string, resource string, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.RemovePolicy(role, resource, action); err != nil {
		e.logger.Errorw("failed to remove policy", "error", err)
		return fmt.Errorf("failed to remove policy: %w", err)
	}

	return nil
}

// Policies returns every stored role/resource/action rule.
func (e *Enforcer) Policies() ([][]string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	policies, err := e.enforcer.GetPolicy()
	if err != nil {
		return nil, fmt.Errorf("failed to get policies: %w", err)
	}
	return policies, nil
}

func (e *Enforcer) LoadPolicy() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to reload policy: %w", err)
	}

	e.logger.Info("policy reloaded successfully")
	return nil
}

// EnsureDefaultPolicies installs any missing default rule. Existing rules are kept.
func (e *Enforcer) EnsureDefaultPolicies() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	added := 0
	for _, policy := range DefaultPolicies() {
		ok, err := e.enforcer.AddPolicy(policy)
		if err != nil {
			e.logger.Errorw("failed to add permission policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
		if ok {
			added++
		}
	}

	if added == 0 {
		return nil
	}

	e.logger.Infow("permission policies installed", "added", added)
	return nil
}
