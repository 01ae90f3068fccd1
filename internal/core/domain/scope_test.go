package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/clubraise/clubraise_backend/internal/apperrors"
	"github.com/clubraise/clubraise_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func TestNewScope(t *testing.T) {
	scope, err := domain.NewScope(nil, nil)
	assert.NoError(t, err)
	assert.True(t, scope.IsClub())

	scope, err = domain.NewScope(strptr("evt-1"), nil)
	assert.NoError(t, err)
	assert.Equal(t, domain.ScopeEvent, scope.Level)
	assert.Equal(t, "evt-1", scope.EventID)

	scope, err = domain.NewScope(nil, strptr("cmp-1"))
	assert.NoError(t, err)
	assert.Equal(t, domain.ScopeCampaign, scope.Level)
	assert.Equal(t, "cmp-1", scope.CampaignID)
}

func TestNewScope_DualBindingIsConflict(t *testing.T) {
	_, err := domain.NewScope(strptr("evt-1"), strptr("cmp-1"))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestNewScope_EmptyStringsMeanAbsent(t *testing.T) {
	scope, err := domain.NewScope(strptr(""), strptr(""))
	assert.NoError(t, err)
	assert.True(t, scope.IsClub())
}

func TestScopeValidate(t *testing.T) {
	assert.NoError(t, domain.ClubScope().Validate())
	assert.NoError(t, domain.EventScope("e").Validate())
	assert.NoError(t, domain.CampaignScope("c").Validate())

	bad := domain.Scope{Level: domain.ScopeEvent}
	assert.Error(t, bad.Validate())

	bad = domain.Scope{Level: domain.ScopeClub, EventID: "e"}
	assert.Error(t, bad.Validate())

	bad = domain.Scope{Level: "BOGUS"}
	assert.Error(t, bad.Validate())
}

func TestTrustWindowStart(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	start := domain.TrustWindowStart(now)
	assert.Equal(t, now.AddDate(0, 0, -domain.TrustWindowDays), start)
}
