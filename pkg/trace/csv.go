package trace

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WriteCSV emits the trace as semicolon-separated rows with an "nm;dB"
// header, the layout the lab's downstream tooling already ingests.
func WriteCSV(w io.Writer, t Trace) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.Write([]string{"nm", "dB"}); err != nil {
		return err
	}
	for _, p := range t {
		row := []string{
			strconv.FormatFloat(p.Wavelength, 'g', -1, 64),
			strconv.FormatFloat(p.Power, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the trace to path, creating or truncating the file.
func SaveCSV(path string, t Trace) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("trace: create %s: %w", path, err)
	}
	defer f.Close()
	if err := WriteCSV(f, t); err != nil {
		return fmt.Errorf("trace: write %s: %w", path, err)
	}
	return nil
}
