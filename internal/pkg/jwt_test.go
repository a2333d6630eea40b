package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParsePair(t *testing.T) {
	pair, err := GeneratePair(42)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
}

func TestParseAccessRejectsRefreshToken(t *testing.T) {
	pair, err := GeneratePair(7)
	require.NoError(t, err)

	// Signed with the refresh secret, so it must not pass as access.
	_, err = ParseAccess(pair.RefreshToken)
	assert.Error(t, err)
}

func TestRefreshRotatesPair(t *testing.T) {
	pair, err := GeneratePair(7)
	require.NoError(t, err)

	next, err := Refresh(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := ParseAccess(next.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), claims.UserID)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	pair, err := GeneratePair(7)
	require.NoError(t, err)

	_, err = Refresh(pair.AccessToken)
	assert.Error(t, err)
}

func TestParseAccessRejectsGarbage(t *testing.T) {
	_, err := ParseAccess("not-a-token")
	assert.Error(t, err)
}
