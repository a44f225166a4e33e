package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	req := require.New(t)
	path := t.TempDir()

	var out bytes.Buffer
	err := run([]string{"persona", "add", "-db", path, "-uid", "u-1", "-email", "bob@example.com", "-id", "p-1"}, &out)
	req.NoError(err)
	req.Contains(out.String(), "p-1")

	out.Reset()
	req.NoError(run([]string{"-db", path, "-prefix", "persona:"}, &out))
	req.Contains(out.String(), "bob@example.com")

	t.Run("should refuse a malformed email", func(t *testing.T) {
		err := run([]string{"persona", "add", "-db", path, "-uid", "u-2", "-email", "nope"}, &bytes.Buffer{})
		require.Error(t, err)
	})

	t.Run("should refuse a duplicate email", func(t *testing.T) {
		err := run([]string{"persona", "add", "-db", path, "-uid", "u-2", "-email", "bob@example.com"}, &bytes.Buffer{})
		require.Error(t, err)
	})
}
