package aggregate

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/orbitalbio/litscan/internal/models"
)

func finding(exposure, outcome string, direction models.Direction) *models.Finding {
	return &models.Finding{
		StudyID:   "PMC1",
		Exposure:  exposure,
		Outcome:   outcome,
		Direction: direction,
	}
}

func TestGaps(t *testing.T) {
	findings := []*models.Finding{
		finding("microgravity", "bone", models.DirectionDecrease),
		finding("microgravity", "bone", models.DirectionDecrease),
		finding("microgravity", "bone", models.DirectionIncrease),
		finding("radiation", "dna", models.DirectionUnspecified),
		finding("radiation", "immune", models.DirectionDecrease),
	}

	rows := Gaps(findings)
	want := []GapRow{
		{Exposure: "radiation", Outcome: "dna", Count: 1},
		{Exposure: "radiation", Outcome: "immune", Count: 1},
		{Exposure: "microgravity", Outcome: "bone", Count: 3},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("Gaps = %+v, want %+v", rows, want)
	}
}

func TestGapsEmpty(t *testing.T) {
	if rows := Gaps(nil); len(rows) != 0 {
		t.Errorf("expected no rows for empty findings, got %+v", rows)
	}
}

func TestMissionMatrix(t *testing.T) {
	findings := []*models.Finding{
		finding("exercise", "bone loss", models.DirectionMitigates),
		finding("exercise", "bone loss", models.DirectionMitigates),
		finding("exercise", "muscle atrophy", models.DirectionMitigates),
		// Non-mitigation directions never enter the matrix.
		finding("microgravity", "bone loss", models.DirectionDecrease),
		finding("radiation", "dna", models.DirectionIncrease),
	}

	rows := MissionMatrix(findings)
	want := []MissionRow{
		{Risk: "bone loss", Countermeasure: "exercise", NFindings: 2},
		{Risk: "muscle atrophy", Countermeasure: "exercise", NFindings: 1},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("MissionMatrix = %+v, want %+v", rows, want)
	}
}

func TestWriteGapsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "gaps.csv")
	rows := []GapRow{
		{Exposure: "radiation", Outcome: "dna", Count: 1},
		{Exposure: "microgravity", Outcome: "bone", Count: 3},
	}

	if err := WriteGapsCSV(path, rows); err != nil {
		t.Fatalf("WriteGapsCSV failed: %v", err)
	}

	got := readCSV(t, path)
	want := [][]string{
		{"exposure", "outcome", "count"},
		{"radiation", "dna", "1"},
		{"microgravity", "bone", "3"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("gaps csv = %v, want %v", got, want)
	}
}

func TestWriteMissionMatrixCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mission_matrix.csv")
	rows := []MissionRow{
		{Risk: "bone loss", Countermeasure: "exercise", NFindings: 2},
	}

	if err := WriteMissionMatrixCSV(path, rows); err != nil {
		t.Fatalf("WriteMissionMatrixCSV failed: %v", err)
	}

	got := readCSV(t, path)
	want := [][]string{
		{"risk", "countermeasure", "n_findings"},
		{"bone loss", "exercise", "2"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("mission matrix csv = %v, want %v", got, want)
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return records
}
