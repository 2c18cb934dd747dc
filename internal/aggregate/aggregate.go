// Package aggregate computes read-only rollups over the findings store: the
// gaps table (under-studied exposure/outcome combinations) and the mission
// matrix (mitigation findings as risk vs countermeasure counts).
package aggregate

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/orbitalbio/litscan/internal/models"
)

// GapRow is one exposure/outcome combination with its finding count.
type GapRow struct {
	Exposure string `json:"exposure"`
	Outcome  string `json:"outcome"`
	Count    int    `json:"count"`
}

// MissionRow is one mitigation pairing: the outcome as risk, the exposure as
// countermeasure, and the number of findings supporting it.
type MissionRow struct {
	Risk           string `json:"risk"`
	Countermeasure string `json:"countermeasure"`
	NFindings      int    `json:"n_findings"`
}

// Gaps groups findings by exposure and outcome, ascending by count so the
// least-studied combinations surface first. Ties order by exposure then
// outcome to keep the output stable.
func Gaps(findings []*models.Finding) []GapRow {
	counts := make(map[[2]string]int)
	for _, f := range findings {
		counts[[2]string{f.Exposure, f.Outcome}]++
	}
	rows := make([]GapRow, 0, len(counts))
	for key, n := range counts {
		rows = append(rows, GapRow{Exposure: key[0], Outcome: key[1], Count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count < rows[j].Count
		}
		if rows[i].Exposure != rows[j].Exposure {
			return rows[i].Exposure < rows[j].Exposure
		}
		return rows[i].Outcome < rows[j].Outcome
	})
	return rows
}

// MissionMatrix counts findings with direction "mitigates" grouped by outcome
// and exposure, relabeled as risk and countermeasure.
func MissionMatrix(findings []*models.Finding) []MissionRow {
	counts := make(map[[2]string]int)
	for _, f := range findings {
		if f.Direction != models.DirectionMitigates {
			continue
		}
		counts[[2]string{f.Outcome, f.Exposure}]++
	}
	rows := make([]MissionRow, 0, len(counts))
	for key, n := range counts {
		rows = append(rows, MissionRow{Risk: key[0], Countermeasure: key[1], NFindings: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Risk != rows[j].Risk {
			return rows[i].Risk < rows[j].Risk
		}
		return rows[i].Countermeasure < rows[j].Countermeasure
	})
	return rows
}

// WriteGapsCSV writes the gaps table to path with columns exposure,outcome,count.
func WriteGapsCSV(path string, rows []GapRow) error {
	records := [][]string{{"exposure", "outcome", "count"}}
	for _, r := range rows {
		records = append(records, []string{r.Exposure, r.Outcome, strconv.Itoa(r.Count)})
	}
	return writeCSV(path, records)
}

// WriteMissionMatrixCSV writes the mission matrix to path with columns
// risk,countermeasure,n_findings.
func WriteMissionMatrixCSV(path string, rows []MissionRow) error {
	records := [][]string{{"risk", "countermeasure", "n_findings"}}
	for _, r := range rows {
		records = append(records, []string{r.Risk, r.Countermeasure, strconv.Itoa(r.NFindings)})
	}
	return writeCSV(path, records)
}

func writeCSV(path string, records [][]string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	w.Flush()
	return w.Error()
}
