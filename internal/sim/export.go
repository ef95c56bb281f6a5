package sim

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/manacore/manacore-go/internal/game"
)

// WriteJSON dumps the whole report, per-game results included.
func WriteJSON(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// WriteCSV writes one row per game.
func WriteCSV(w io.Writer, report *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"index", "seed", "winner", "turns", "decisions", "duration_ms", "error"}); err != nil {
		return err
	}
	for _, res := range report.Results {
		row := []string{
			strconv.Itoa(res.Index),
			strconv.FormatUint(res.Seed, 10),
			string(res.Winner),
			strconv.Itoa(res.Turns),
			strconv.Itoa(res.Decisions),
			strconv.FormatInt(res.Duration.Milliseconds(), 10),
			res.Error,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSummary prints the human-readable batch summary.
func WriteSummary(w io.Writer, report *Report) error {
	played := report.WinsOne + report.WinsTwo + report.Draws + report.Errors
	if played == 0 {
		_, err := fmt.Fprintln(w, "no games played")
		return err
	}

	pct := func(n int) float64 { return 100 * float64(n) / float64(played) }
	_, err := fmt.Fprintf(w,
		"%s (%s) vs %s (%s): %d games\n"+
			"  %-12s %4d  (%.1f%%)\n"+
			"  %-12s %4d  (%.1f%%)\n"+
			"  %-12s %4d  (%.1f%%)\n"+
			"  avg turns    %.1f\n"+
			"  elapsed      %s\n",
		report.DeckOne, report.Config.BotOne, report.DeckTwo, report.Config.BotTwo, played,
		string(game.PlayerOne), report.WinsOne, pct(report.WinsOne),
		string(game.PlayerTwo), report.WinsTwo, pct(report.WinsTwo),
		"draws", report.Draws, pct(report.Draws),
		report.AvgTurns,
		report.Elapsed.Round(time.Millisecond),
	)
	if err != nil {
		return err
	}
	if report.Errors > 0 {
		if _, err := fmt.Fprintf(w, "  ERRORS       %d (replays captured)\n", report.Errors); err != nil {
			return err
		}
	}
	return nil
}
