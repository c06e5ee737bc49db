package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/simulation"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case *simulation.Summary:
		o.printSummary(v)
	case MatchResult:
		o.printMatch(v)
	case DensityResult:
		o.printDensity(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// MatchResult is the printable form of a played match
type MatchResult struct {
	ID        string         `json:"id"`
	State     string         `json:"state"`
	BoardSize int            `json:"board_size"`
	Winner    string         `json:"winner,omitempty"`
	Turns     int            `json:"turns"`
	Players   []PlayerResult `json:"players"`
	Shots     []ShotResult   `json:"shots,omitempty"`
}

// PlayerResult is one side's counters within a match
type PlayerResult struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Strategy string `json:"strategy"`
	Shots    int    `json:"shots"`
	Hits     int    `json:"hits"`
	Sunk     int    `json:"sunk"`
}

// ShotResult is one shot log entry
type ShotResult struct {
	Turn     int    `json:"turn"`
	Shooter  string `json:"shooter"`
	Position string `json:"position"`
	Outcome  string `json:"outcome"`
}

// DensityResult is a scored target view
type DensityResult struct {
	Size      int      `json:"size"`
	Remaining []int    `json:"remaining"`
	Scores    [][]int  `json:"scores"`
	Max       int      `json:"max"`
	Best      []string `json:"best"`
}

func newMatchResult(m *model.Match, withShots bool) MatchResult {
	counts := m.Summarize()
	result := MatchResult{
		ID:        string(m.ID),
		State:     string(m.State),
		BoardSize: m.BoardSize,
		Winner:    string(m.Winner),
		Turns:     counts.Turns,
	}
	for _, p := range m.Players {
		result.Players = append(result.Players, PlayerResult{
			ID:       string(p.ID),
			Name:     p.Name,
			Strategy: p.Strategy,
			Shots:    counts.ShotsBy[p.ID],
			Hits:     counts.HitsBy[p.ID],
			Sunk:     counts.SunkBy[p.ID],
		})
	}
	if withShots {
		for _, shot := range m.Shots {
			result.Shots = append(result.Shots, ShotResult{
				Turn:     shot.Turn,
				Shooter:  string(shot.Shooter),
				Position: shot.Position.String(),
				Outcome:  string(shot.Outcome),
			})
		}
	}
	return result
}

func newDensityResult(scores [][]int, remaining []int) DensityResult {
	result := DensityResult{
		Size:      len(scores),
		Remaining: remaining,
		Scores:    scores,
	}
	for row := range scores {
		for col, score := range scores[row] {
			pos := model.Position{Row: row, Col: col}
			switch {
			case score > result.Max:
				result.Max = score
				result.Best = []string{pos.String()}
			case score == result.Max && score > 0:
				result.Best = append(result.Best, pos.String())
			}
		}
	}
	return result
}

func (o *Output) printSummary(s *simulation.Summary) {
	fmt.Fprintf(o.w, "Games: %d (seed %d, %dx%d)\n", s.Games, s.Seed, s.BoardSize, s.BoardSize)
	for _, side := range []struct {
		label string
		stats simulation.SideStats
	}{
		{"A", s.A},
		{"B", s.B},
	} {
		fmt.Fprintf(o.w, "  %s %-10s wins %4d  hit rate %5.1f%%  avg shots/win %6.2f  sunk %d\n",
			side.label,
			side.stats.Strategy,
			side.stats.Wins,
			side.stats.HitRate()*100,
			side.stats.AverageShotsPerWin(),
			side.stats.ShipsSunk,
		)
	}

	if len(s.Results) > 0 {
		fmt.Fprintln(o.w, "\nResults:")
		for _, r := range s.Results {
			fmt.Fprintf(o.w, "  #%-4d seed %-20d first %s  winner %s  turns %d\n",
				r.Index, r.Seed, r.FirstMover, r.Winner, r.Turns)
		}
	}
}

func (o *Output) printMatch(m MatchResult) {
	fmt.Fprintf(o.w, "Match: %s\n", m.ID)
	fmt.Fprintf(o.w, "State: %s\n", m.State)
	fmt.Fprintf(o.w, "Board Size: %d\n", m.BoardSize)
	fmt.Fprintf(o.w, "Turns: %d\n", m.Turns)
	fmt.Fprintf(o.w, "Players (%d):\n", len(m.Players))
	for _, p := range m.Players {
		fmt.Fprintf(o.w, "  - %s (%s) - %d shots, %d hits, %d sunk\n", p.Name, p.ID, p.Shots, p.Hits, p.Sunk)
	}

	if len(m.Shots) > 0 {
		fmt.Fprintln(o.w, "\nShots:")
		for _, shot := range m.Shots {
			fmt.Fprintf(o.w, "  %3d. %s %-4s %s\n", shot.Turn, shot.Shooter, shot.Position, shot.Outcome)
		}
	}

	if m.Winner != "" {
		fmt.Fprintf(o.w, "\nWinner: %s\n", m.Winner)
	}
}

func (o *Output) printDensity(d DensityResult) {
	if d.Size == 0 {
		return
	}

	// Print column headers
	fmt.Fprint(o.w, "    ")
	for col := 0; col < d.Size; col++ {
		fmt.Fprintf(o.w, "   %c", 'A'+col)
	}
	fmt.Fprintln(o.w)

	// Print rows
	for row := 0; row < d.Size; row++ {
		fmt.Fprintf(o.w, " %2d |", row+1)
		for col := 0; col < d.Size; col++ {
			score := d.Scores[row][col]
			if score == 0 {
				fmt.Fprint(o.w, "   .")
			} else {
				fmt.Fprintf(o.w, " %3d", score)
			}
		}
		fmt.Fprintln(o.w)
	}

	fmt.Fprintf(o.w, "\nRemaining: %s\n", joinInts(d.Remaining))
	if d.Max > 0 {
		fmt.Fprintf(o.w, "Best (%d): %s\n", d.Max, strings.Join(d.Best, ", "))
	}
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
