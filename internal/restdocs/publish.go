package restdocs

import (
	"context"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"brewery/internal/storage"
)

const asciidocContentType = "text/asciidoc; charset=utf-8"

// Publish uploads every file below dir to st. Object keys are prefix joined
// with the file's slash-separated path relative to dir.
func Publish(ctx context.Context, dir, prefix string, st storage.Storage) ([]storage.ObjectInfo, error) {
	var uploaded []storage.ObjectInfo
	err := filepath.WalkDir(dir, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		key := path.Join(prefix, filepath.ToSlash(rel))

		info, err := entry.Info()
		if err != nil {
			return err
		}
		f, err := os.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()

		obj, err := st.Put(ctx, key, f, storage.PutObjectOptions{
			Size:        info.Size(),
			ContentType: contentTypeFor(p),
		})
		if err != nil {
			return fmt.Errorf("upload %s: %w", key, err)
		}
		uploaded = append(uploaded, obj)
		return nil
	})
	if err != nil {
		return uploaded, fmt.Errorf("publish snippets: %w", err)
	}
	return uploaded, nil
}

func contentTypeFor(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".adoc" {
		return asciidocContentType
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
