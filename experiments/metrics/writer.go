package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer stores experiment records as CSV files under a timestamped
// directory.
type Writer struct {
	baseDir string
}

// NewWriter creates the output directory for one experiment run.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{baseDir: baseDir}, nil
}

// Dir returns the directory records are written into.
func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteGameRecords writes games.csv.
func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "games.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "agent1", "agent2", "seed", "starting_player",
		"winner", "score1", "score2", "rounds", "total_moves", "duration_ms"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, r := range records {
		row := []string{
			strconv.Itoa(r.ID),
			r.Agent1,
			r.Agent2,
			strconv.FormatUint(r.Seed, 10),
			r.StartingPlayer.String(),
			r.Winner,
			strconv.Itoa(r.Score1),
			strconv.Itoa(r.Score2),
			strconv.Itoa(r.Rounds),
			strconv.Itoa(r.TotalMoves),
			strconv.FormatInt(r.Duration.Milliseconds(), 10),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record %d: %w", r.ID, err)
		}
	}
	return nil
}

// WriteMoveRecords writes moves.csv.
func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	path := filepath.Join(w.baseDir, "moves.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create move records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"game", "step", "player", "action", "reward"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write move records header: %w", err)
	}

	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Step),
			r.Player.String(),
			strconv.Itoa(r.Action),
			strconv.FormatFloat(r.Reward, 'f', -1, 64),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write move record: %w", err)
		}
	}
	return nil
}
