package ucd

import (
	"io"
	"net/http"
	"path"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Fetch returns the contents of a UCD file, downloading it into cacheDir the
// first time. Later runs read the cached copy, so regenerating tables does
// not depend on unicode.org being reachable.
func Fetch(fs afero.Fs, cacheDir, url string) ([]byte, error) {
	cached := path.Join(cacheDir, path.Base(url))
	if data, err := afero.ReadFile(fs, cached); err == nil {
		return data, nil
	}

	res, err := http.Get(url)
	if err != nil {
		return nil, errors.Wrapf(err, "downloading %s", url)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, errors.Errorf("downloading %s: %s", url, res.Status)
	}
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "downloading %s", url)
	}

	if err := fs.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating cache dir")
	}
	if err := afero.WriteFile(fs, cached, data, 0o644); err != nil {
		return nil, errors.Wrapf(err, "caching %s", cached)
	}
	return data, nil
}

// WriteSource writes a generated Go file.
func WriteSource(fs afero.Fs, file string, src []byte) error {
	return errors.Wrapf(afero.WriteFile(fs, file, src, 0o644), "writing %s", file)
}
