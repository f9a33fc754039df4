package report

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// timestampLayout formats export file names as YYYYMMDD_HHMMSS.
const timestampLayout = "20060102_150405"

// ExportFileName returns the file name an export in format gets at the renderer's
// current time.
func (r *Renderer) ExportFileName(format Format) string {
	prefix := "slowql_results_"
	if format == FormatHTML {
		prefix = "slowql_report_"
	}
	return prefix + r.Now().Format(timestampLayout) + "." + format.Extension()
}

// Export renders rows into a new file under dir, creating dir when needed, and
// returns the path of the written file.
func (r *Renderer) Export(rows []Row, format Format, dir string) (string, error) {
	if format.Extension() == "" {
		return "", errors.Errorf("unknown report format %q", format)
	}
	text := *r
	text.Color = false

	var buf bytes.Buffer
	if err := text.Render(&buf, rows, format); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "failed to create export directory %s", dir)
	}
	path := filepath.Join(dir, r.ExportFileName(format))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", path)
	}
	return path, nil
}
