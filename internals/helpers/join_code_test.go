// file: internals/helpers/join_code_test.go
package helper_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	database "github.com/Harus-Bisa/backend/internals/databases"
	helper "github.com/Harus-Bisa/backend/internals/helpers"
)

func TestGenerateJoinCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := helper.GenerateJoinCode()
		require.NoError(t, err)
		assert.Len(t, code, 6)
		assert.NotContains(t, code, "0")
		assert.NotContains(t, code, "O")
		assert.NotContains(t, code, "1")
		assert.NotContains(t, code, "I")
		assert.Equal(t, code, strings.ToUpper(code))
		seen[code] = true
	}
	// 50 draws from a 32^6 space should not collide
	assert.Greater(t, len(seen), 45)
}

func TestEnsureUniqueJoinCode(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	code, err := helper.EnsureUniqueJoinCode(db)
	require.NoError(t, err)
	assert.Len(t, code, 6)
}
