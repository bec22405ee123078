package splash

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image/png"
	"io/fs"
	"path"

	"fyne.io/fyne/v2"
)

// IconPath is the logical location of the window icon inside the bundled assets.
const IconPath = "assets/loading-icon/icon.png"

// ErrIconMissing is returned when the icon cannot be found in the resource set.
var ErrIconMissing = errors.New("icon resource not found")

//go:embed assets/loading-icon/icon.png
var bundled embed.FS

// Bundled returns the resource set compiled into the binary.
func Bundled() fs.FS {
	return bundled
}

// LoadIcon reads the PNG at name from fsys.
func LoadIcon(fsys fs.FS, name string) (fyne.Resource, error) {
	if fsys == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrIconMissing)
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", name, ErrIconMissing)
		}
		return nil, fmt.Errorf("read icon %s: %w", name, err)
	}

	if _, err := png.DecodeConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("decode icon %s: %w", name, err)
	}

	return fyne.NewStaticResource(path.Base(name), data), nil
}
