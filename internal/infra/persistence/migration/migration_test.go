package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrations_UniqueOrderedIDs(t *testing.T) {
	migrations := Migrations()
	seen := make(map[string]struct{}, len(migrations))

	for i, m := range migrations {
		_, dup := seen[m.ID]
		assert.Falsef(t, dup, "duplicate migration id %s", m.ID)
		seen[m.ID] = struct{}{}

		assert.NotNil(t, m.Migrate)
		assert.NotNil(t, m.Rollback)
		if i > 0 {
			assert.LessOrEqual(t, migrations[i-1].ID[:8], m.ID[:8])
		}
	}
}
