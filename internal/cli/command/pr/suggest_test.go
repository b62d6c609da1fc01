package pr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveOwnerRepo(t *testing.T) {
	t.Run("Should keep explicit flags", func(t *testing.T) {
		t.Setenv("GITHUB_REPOSITORY", "otro/repositorio")

		owner, repo := ResolveOwnerRepo("tomas", "matetriage")

		assert.Equal(t, "tomas", owner)
		assert.Equal(t, "matetriage", repo)
	})

	t.Run("Should fall back to GITHUB_REPOSITORY", func(t *testing.T) {
		t.Setenv("GITHUB_REPOSITORY", "tomas/matetriage")

		owner, repo := ResolveOwnerRepo("", "")

		assert.Equal(t, "tomas", owner)
		assert.Equal(t, "matetriage", repo)
	})

	t.Run("Should fill only the missing half", func(t *testing.T) {
		t.Setenv("GITHUB_REPOSITORY", "tomas/matetriage")

		owner, repo := ResolveOwnerRepo("", "forkeado")

		assert.Equal(t, "tomas", owner)
		assert.Equal(t, "forkeado", repo)
	})

	t.Run("Should return empty without env or flags", func(t *testing.T) {
		t.Setenv("GITHUB_REPOSITORY", "")

		owner, repo := ResolveOwnerRepo("", "")

		assert.Empty(t, owner)
		assert.Empty(t, repo)
	})
}
