package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/redline/internal/common"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	m := NewManager([]byte("super-secret"), 30*time.Minute)
	now := time.Now()

	s, err := m.Issue("neo", now)
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.NotEmpty(t, s.Token)
	assert.Equal(t, "neo", s.Username)
	assert.Equal(t, now.Add(30*time.Minute).Unix(), s.ExpiresAt.Unix())

	got, err := m.Verify(s.Token)
	require.NoError(t, err)
	assert.Equal(t, "neo", got.Username)
	assert.Equal(t, s.ID, got.ID)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	m := NewManager([]byte("secret"), time.Minute)

	s, err := m.Issue("neo", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = m.Verify(s.Token)
	require.ErrorIs(t, err, common.ErrSessionExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	s, err := NewManager([]byte("right-secret"), time.Hour).Issue("neo", time.Now())
	require.NoError(t, err)

	_, err = NewManager([]byte("wrong-secret"), time.Hour).Verify(s.Token)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_MalformedToken(t *testing.T) {
	t.Parallel()

	m := NewManager([]byte("k"), time.Hour)

	_, err := m.Verify("not.a.jwt")
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestIssue_SessionIDsAreUnique(t *testing.T) {
	t.Parallel()

	m := NewManager([]byte("k"), time.Hour)
	now := time.Now()

	a, err := m.Issue("neo", now)
	require.NoError(t, err)
	b, err := m.Issue("neo", now)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}
