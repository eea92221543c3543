package session_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Moshe1988/CouponManagementSystem/internal/domain"
	"github.com/Moshe1988/CouponManagementSystem/internal/session"
)

func TestRegistry_ResolveUnknownToken(t *testing.T) {
	registry := session.NewRegistry()

	_, err := registry.Resolve("no-such-token")
	assert.ErrorIs(t, err, domain.ErrSessionExpired)

	_, err = registry.LastAccessed("no-such-token")
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestRegistry_IssueAndResolve(t *testing.T) {
	registry := session.NewRegistry()

	token := registry.Issue(domain.CompanyCapability(42))
	require.Len(t, token, 15)

	capability, err := registry.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCompany, capability.Role)
	assert.Equal(t, uint(42), capability.CompanyID)
}

func TestRegistry_TokensAreUnique(t *testing.T) {
	registry := session.NewRegistry()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		token := registry.Issue(domain.AdminCapability())
		assert.False(t, seen[token], "token %q issued twice", token)
		seen[token] = true
	}
	assert.Equal(t, 1000, registry.Len())
}

func TestRegistry_ResolveAdvancesLastAccessed(t *testing.T) {
	registry := session.NewRegistry()
	token := registry.Issue(domain.AdminCapability())

	first, err := registry.LastAccessed(token)
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)

	_, err = registry.Resolve(token)
	require.NoError(t, err)

	second, err := registry.LastAccessed(token)
	require.NoError(t, err)
	assert.True(t, second.After(first), "last accessed should only move forward")
}

func TestRegistry_RevokeIsIdempotent(t *testing.T) {
	registry := session.NewRegistry()
	token := registry.Issue(domain.CustomerCapability(7))

	registry.Revoke(token)
	registry.Revoke(token) // absent token is not an error

	_, err := registry.Resolve(token)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestRegistry_EvictIdle(t *testing.T) {
	registry := session.NewRegistry()
	stale := registry.Issue(domain.CompanyCapability(1))

	// A cutoff in the future covers the session just issued.
	evicted := registry.EvictIdle(time.Now().Add(time.Minute))
	assert.Equal(t, 1, evicted)

	_, err := registry.Resolve(stale)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)

	// A fresh session survives a cutoff in the past.
	fresh := registry.Issue(domain.CompanyCapability(2))
	evicted = registry.EvictIdle(time.Now().Add(-time.Minute))
	assert.Equal(t, 0, evicted)

	_, err = registry.Resolve(fresh)
	assert.NoError(t, err)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	registry := session.NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				token := registry.Issue(domain.CustomerCapability(uint(j)))
				if _, err := registry.Resolve(token); err != nil {
					t.Errorf("resolve of live token failed: %v", err)
				}
				registry.Revoke(token)
			}
		}()
	}

	// Sweep concurrently with the logins above.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			registry.EvictIdle(time.Now().Add(-time.Hour))
		}
	}()

	wg.Wait()
	assert.Equal(t, 0, registry.Len())
}
