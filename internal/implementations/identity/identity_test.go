package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderIdentities(t *testing.T) {
	generator := NewUUID()
	identities := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := string(generator.GenerateReminderID())
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		_, seen := identities[id]
		assert.False(t, seen, "identity %v already exists", id)
		identities[id] = struct{}{}
	}
}

func TestCategoryIdentities(t *testing.T) {
	generator := NewUUID()

	first := generator.GenerateCategoryID()
	second := generator.GenerateCategoryID()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
