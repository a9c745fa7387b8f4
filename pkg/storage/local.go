package storage

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shashiranjanraj/vastra/config"
)

// localDisk is the local-filesystem driver.
type localDisk struct {
	root    string // absolute root directory
	baseURL string // public URL prefix for URL()
}

func newLocalDisk() *localDisk {
	root := config.StorageLocalRoot()
	if !filepath.IsAbs(root) {
		cwd, _ := os.Getwd()
		root = filepath.Join(cwd, root)
	}
	return &localDisk{
		root:    root,
		baseURL: strings.TrimRight(config.StorageURL(), "/"),
	}
}

func (d *localDisk) abs(key string) string {
	return filepath.Join(d.root, filepath.FromSlash(key))
}

func (d *localDisk) Put(key string, content []byte) error {
	return d.PutStream(key, bytes.NewReader(content))
}

func (d *localDisk) PutStream(key string, r io.Reader) error {
	full := d.abs(key)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("storage/local: mkdir: %w", err)
	}
	f, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("storage/local: create %s: %w", key, err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("storage/local: write %s: %w", key, err)
	}
	return nil
}

func (d *localDisk) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(d.abs(key))
	if err != nil {
		return nil, fmt.Errorf("storage/local: get %s: %w", key, err)
	}
	return data, nil
}

func (d *localDisk) GetStream(key string) (io.ReadCloser, error) {
	f, err := os.Open(d.abs(key))
	if err != nil {
		return nil, fmt.Errorf("storage/local: open %s: %w", key, err)
	}
	return f, nil
}

func (d *localDisk) Exists(key string) bool {
	_, err := os.Stat(d.abs(key))
	return err == nil
}

func (d *localDisk) Size(key string) (int64, error) {
	info, err := os.Stat(d.abs(key))
	if err != nil {
		return 0, fmt.Errorf("storage/local: size %s: %w", key, err)
	}
	return info.Size(), nil
}

func (d *localDisk) URL(key string) string {
	return d.baseURL + "/" + strings.TrimLeft(filepath.ToSlash(key), "/")
}

func (d *localDisk) Delete(key string) error {
	err := os.Remove(d.abs(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage/local: delete %s: %w", key, err)
	}
	return nil
}
