package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbeddedFiles(t *testing.T) {
	entries, err := fs.ReadDir(files, "sql")
	assert.NoError(t, err)

	var up, down int
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".up.sql"):
			up++
		case strings.HasSuffix(e.Name(), ".down.sql"):
			down++
		}
	}

	assert.Equal(t, 2, up)
	assert.Equal(t, up, down, "every migration needs a down file")
}

func TestBooksReferenceUsers(t *testing.T) {
	data, err := fs.ReadFile(files, "sql/000002_create_books.up.sql")
	assert.NoError(t, err)
	assert.Contains(t, string(data), "REFERENCES users (id)")
}
