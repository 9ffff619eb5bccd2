// file: internals/helpers/join_code.go
package helper

import (
	"crypto/rand"
	"errors"
	"math/big"

	"gorm.io/gorm"
)

const joinCodeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
const joinCodeLength = 6

// GenerateJoinCode returns a random course join code. The charset skips
// look-alike characters (0/O, 1/I).
func GenerateJoinCode() (string, error) {
	code := make([]byte, joinCodeLength)
	max := big.NewInt(int64(len(joinCodeCharset)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = joinCodeCharset[n.Int64()]
	}
	return string(code), nil
}

// EnsureUniqueJoinCode generates codes until one is free in the courses table.
func EnsureUniqueJoinCode(db *gorm.DB) (string, error) {
	for attempt := 0; attempt < 16; attempt++ {
		code, err := GenerateJoinCode()
		if err != nil {
			return "", err
		}
		var count int64
		if err := db.Table("courses").
			Where("course_join_code = ?", code).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", errors.New("could not generate a unique join code")
}
