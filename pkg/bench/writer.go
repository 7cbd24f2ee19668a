package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Stores the game results as CSV
type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) WriteGameResults(results []GameResult) error {
	writer := csv.NewWriter(w.w)

	header := []string{"worker", "game", "moves", "finished", "reward", "duration_ms"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write game results header: %w", err)
	}

	for _, result := range results {
		row := []string{
			strconv.Itoa(result.WorkerID),
			strconv.Itoa(result.Game),
			strconv.Itoa(result.Moves),
			strconv.FormatBool(result.Finished),
			strconv.FormatInt(int64(result.Reward), 10),
			strconv.FormatInt(result.Duration.Milliseconds(), 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game result row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush game results: %w", err)
	}
	return nil
}

// Create the file (and its directory) and write the results into it
func WriteGameResultsFile(path string, results []GameResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game results file: %w", err)
	}
	return writeAndClose(f, results)
}

// Write the results and close 'wc', a failed close is reported when the write succeeded
func writeAndClose(wc io.WriteCloser, results []GameResult) (err error) {
	defer func() {
		if cerr := wc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close game results file: %w", cerr)
		}
	}()
	return NewWriter(wc).WriteGameResults(results)
}
