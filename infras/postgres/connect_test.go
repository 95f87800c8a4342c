package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreatePostgresConnection_RetriesExhausted(t *testing.T) {
	db, err := createPostgresConnection("u", "p", "localhost", "5432", "hotel", "disable", 0, 0)

	assert.Nil(t, db)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "after 0 attempts")
}
