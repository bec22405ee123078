package splash

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadIconBundled(t *testing.T) {
	t.Parallel()

	res, err := LoadIcon(Bundled(), IconPath)
	require.NoError(t, err)
	assert.Equal(t, "icon.png", res.Name())
	assert.NotEmpty(t, res.Content())
}

func TestLoadIconErrors(t *testing.T) {
	t.Parallel()

	_, err := LoadIcon(fstest.MapFS{}, IconPath)
	assert.ErrorIs(t, err, ErrIconMissing)

	_, err = LoadIcon(nil, IconPath)
	assert.ErrorIs(t, err, ErrIconMissing)

	broken := fstest.MapFS{IconPath: &fstest.MapFile{Data: []byte("not a png")}}
	_, err = LoadIcon(broken, IconPath)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrIconMissing)
}
