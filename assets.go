package bio

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/zeebo/blake3"
)

const (
	staticSubdir = "static"
	hashLen      = 8
)

// ResolveAsset bundles the file at contentDir/rel into outDir/static under a
// content-addressed name and returns its public path.
func ResolveAsset(contentDir, rel, outDir string) (string, error) {
	src := filepath.Join(contentDir, filepath.FromSlash(rel))
	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("read asset %s: %w", rel, err)
	}
	sum, err := contentHash(bytes.NewReader(data))
	if err != nil {
		return "", err
	}

	ext := filepath.Ext(src)
	name := fmt.Sprintf("%s-%s%s", slugifyFilename(src), sum[:hashLen], strings.ToLower(ext))

	dir := filepath.Join(outDir, staticSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create static dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write asset %s: %w", name, err)
	}
	return "/" + path.Join(staticSubdir, name), nil
}

func contentHash(r io.Reader) (string, error) {
	h := blake3.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("hash asset: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
