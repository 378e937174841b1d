package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cleared-dev/sietosru/internal/charset"
	"github.com/cleared-dev/sietosru/internal/sru"
)

// Result lists the files written for a submission.
type Result struct {
	Dir        string
	InfoPath   string
	FormsPath  string
	BytesTotal int
}

// Dir returns the directory a submission is written to: root/<fiscal year>.
func Dir(root string, sub *sru.Submission) string {
	return filepath.Join(root, sub.FiscalYear)
}

// Write encodes both SRU files and writes them to root/<fiscal year>/.
// Both files are encoded before anything touches the disk, and each is
// written to a temporary name and renamed, so a failed run leaves no
// partial submission behind.
func Write(root string, sub *sru.Submission, encoding string) (*Result, error) {
	if sub.FiscalYear == "" {
		return nil, fmt.Errorf("submission has no fiscal year")
	}

	info, err := charset.Encode(sub.Info, encoding)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", sru.InfoFileName, err)
	}
	forms, err := charset.Encode(sub.Blanketter, encoding)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", sru.BlanketterFileName, err)
	}

	dir := Dir(root, sub)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	files := []struct {
		name string
		data []byte
	}{
		{sru.InfoFileName, info},
		{sru.BlanketterFileName, forms},
	}

	var temps []string
	defer func() {
		for _, tmp := range temps {
			_ = os.Remove(tmp)
		}
	}()
	for _, f := range files {
		tmp, err := writeTemp(dir, f.name, f.data)
		if err != nil {
			return nil, err
		}
		temps = append(temps, tmp)
	}
	for i, f := range files {
		if err := os.Rename(temps[i], filepath.Join(dir, f.name)); err != nil {
			return nil, fmt.Errorf("moving %s into place: %w", f.name, err)
		}
	}

	return &Result{
		Dir:        dir,
		InfoPath:   filepath.Join(dir, sru.InfoFileName),
		FormsPath:  filepath.Join(dir, sru.BlanketterFileName),
		BytesTotal: len(info) + len(forms),
	}, nil
}

func writeTemp(dir, name string, data []byte) (string, error) {
	f, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", name, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("closing %s: %w", name, err)
	}
	if err := os.Chmod(f.Name(), 0o644); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("chmod %s: %w", name, err)
	}
	return f.Name(), nil
}
