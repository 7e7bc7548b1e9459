package repo

import (
	"context"
	"encoding/csv"
	"os"
	"strconv"

	"github.com/quantlark/oi-sentinel/internal/entity"
)

const timestampLayout = "2006/01/02 15:04:05"

var csvHeader = []string{"symbol", "price", "oi", "funding", "phase", "timestamp"}

// csvHistory appends snapshot rows to a CSV file. The header is written
// once when the file is created, every later append only adds rows.
type csvHistory struct {
	path string
}

func NewCSVHistory(path string) HistoryRepo {
	return &csvHistory{
		path: path,
	}
}

func (h *csvHistory) Append(ctx context.Context, rows []entity.SnapshotRow) error {
	if len(rows) == 0 {
		return nil
	}

	f, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if stat.Size() == 0 {
		if err := w.Write(csvHeader); err != nil {
			return err
		}
	}
	for _, row := range rows {
		record := []string{
			row.Symbol,
			strconv.FormatFloat(row.Price, 'f', -1, 64),
			strconv.FormatFloat(row.OpenInterest, 'f', -1, 64),
			strconv.FormatFloat(row.FundingRate, 'f', -1, 64),
			row.Phase,
			row.Timestamp.Format(timestampLayout),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
