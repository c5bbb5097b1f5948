// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: hoang.nv.dev@gmail.com

package sec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvhoang/cinelog/internal/platform/sec"
)

/*
TestHashPassword checks that hashing produces a bcrypt digest distinct from
the input and that two hashes of the same password differ (random salt).
*/
func TestHashPassword(t *testing.T) {
	hash, err := sec.HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"))

	second, err := sec.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, hash, second)
}

/*
TestCheckPasswordHash verifies the comparison accepts the original password
and rejects everything else.
*/
func TestCheckPasswordHash(t *testing.T) {
	hash, err := sec.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"matching_password", "correct horse battery staple", true},
		{"wrong_password", "Tr0ub4dor&3", false},
		{"empty_password", "", false},
		{"case_sensitive", "Correct horse battery staple", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sec.CheckPasswordHash(tt.password, hash))
		})
	}
}

/*
TestCheckPasswordHash_MalformedHash ensures garbage stored hashes never
authenticate.
*/
func TestCheckPasswordHash_MalformedHash(t *testing.T) {
	assert.False(t, sec.CheckPasswordHash("anything", "not-a-bcrypt-hash"))
	assert.False(t, sec.CheckPasswordHash("anything", ""))
}
