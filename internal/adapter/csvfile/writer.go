package csvfile

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/coastalwx/marine-forecast-etl/internal/domain"
)

// Columns is the output header row, in flat-row order.
var Columns = []string{
	"Zone", "City", "Day", "Forecast",
	"SmallCraftCaution", "SmallCraftAdvisory", "BothMentioned", "NoAlert",
	"AdvisoryText", "Winds", "Seas", "Intracoastal", "Retrieved",
}

// Writer serializes forecast records to a CSV file, optionally mirroring the
// same bytes to a second path (a mounted share in production).
type Writer struct {
	path       string
	mirrorPath string
	logger     *slog.Logger
}

// NewWriter creates a CSV writer for the primary path. An empty mirrorPath
// disables the mirror copy.
func NewWriter(path, mirrorPath string, logger *slog.Logger) *Writer {
	return &Writer{path: path, mirrorPath: mirrorPath, logger: logger}
}

// WriteRecords replaces the output file with a header row plus one row per
// record. The write is atomic so readers never observe a partial file. A
// mirror failure is logged and swallowed; only the primary write can fail
// the cycle.
func (w *Writer) WriteRecords(records []domain.ForecastRecord) error {
	data, err := marshalRecords(records)
	if err != nil {
		return err
	}

	if err := writeAtomic(w.path, data); err != nil {
		return fmt.Errorf("write csv %s: %w", w.path, err)
	}
	w.logger.Info("csv written", "path", w.path, "records", len(records))

	if w.mirrorPath == "" {
		return nil
	}
	if err := writeAtomic(w.mirrorPath, data); err != nil {
		w.logger.Warn("csv mirror write failed", "path", w.mirrorPath, "error", err)
		return nil
	}
	w.logger.Info("csv mirrored", "path", w.mirrorPath)
	return nil
}

func marshalRecords(records []domain.ForecastRecord) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write(Columns); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i := range records {
		r := &records[i]
		row := []string{
			r.Zone,
			r.City,
			string(r.Day),
			r.Forecast,
			flag(r.SmallCraftCaution),
			flag(r.SmallCraftAdvisory),
			flag(r.BothMentioned),
			flag(r.NoAlert),
			r.AdvisoryText,
			r.Winds,
			r.Seas,
			r.Intracoastal,
			r.Retrieved.Format(domain.RetrievedLayout),
		}
		if err := cw.Write(row); err != nil {
			return nil, fmt.Errorf("write row for %s: %w", r.Zone, err)
		}
	}
	cw.Flush()
	return buf.Bytes(), cw.Error()
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// writeAtomic writes data to path via a temp file in the destination
// directory and a rename, creating parent directories as needed.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
