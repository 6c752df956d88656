// Package results defines the simulation results artifact and the
// statistical summary computed from it.
package results

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mfields/blackjacksim/internal/fileutil"
)

// Results is the artifact one simulation run produces. The field set and
// the scores shape (one row of bankroll samples per game) are what the
// analysis tooling consumes; run_id and created_at are extra metadata that
// consumers are free to ignore.
type Results struct {
	Name            string  `json:"name"`
	Notes           string  `json:"notes"`
	RunID           string  `json:"run_id"`
	CreatedAt       string  `json:"created_at"`
	BaseBet         int     `json:"base_bet"`
	Decks           int     `json:"decks"`
	Games           int     `json:"games"`
	StartingBalance int     `json:"starting_balance"`
	Busts           int     `json:"busts"`
	Scores          [][]int `json:"scores,omitempty"`
}

// New creates an empty results artifact with a fresh run identifier.
func New(name string, baseBet, decks, games, startingBalance int) *Results {
	return &Results{
		Name:            name,
		RunID:           uuid.NewString(),
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
		BaseBet:         baseBet,
		Decks:           decks,
		Games:           games,
		StartingBalance: startingBalance,
	}
}

// WriteFile saves the artifact to path, refusing to overwrite: if the path
// is taken, a numeric suffix is appended before the extension. Returns the
// path actually written.
//
// The encoding keeps the metadata block indented but puts each game's score
// series on a single line, so a several-hundred-game file stays readable.
func (r *Results) WriteFile(path string) (string, error) {
	path = nextFreePath(path)

	data, err := r.encode()
	if err != nil {
		return "", err
	}
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing results: %w", err)
	}
	return path, nil
}

func (r *Results) encode() ([]byte, error) {
	// Marshal the metadata without scores, then splice the scores in with
	// one row per line.
	meta := *r
	meta.Scores = nil
	metaJSON, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding results: %w", err)
	}

	rows := make([]string, len(r.Scores))
	for i, run := range r.Scores {
		row, err := json.Marshal(run)
		if err != nil {
			return nil, fmt.Errorf("encoding scores: %w", err)
		}
		rows[i] = "    " + string(row)
	}

	var b strings.Builder
	// Drop the closing "\n}" of the metadata object and append scores.
	b.WriteString(strings.TrimSuffix(string(metaJSON), "\n}"))
	b.WriteString(",\n  \"scores\": [\n")
	b.WriteString(strings.Join(rows, ",\n"))
	b.WriteString("\n  ]\n}\n")
	return []byte(b.String()), nil
}

// nextFreePath returns path if unused, otherwise the first of path_1,
// path_2, ... that is.
func nextFreePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// ReadFile loads a results artifact from path.
func ReadFile(path string) (*Results, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading results: %w", err)
	}
	var r Results
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing results %s: %w", path, err)
	}
	return &r, nil
}
