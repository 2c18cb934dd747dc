package tagger

import (
	"reflect"
	"testing"
)

func TestExtractMeasurements(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "dose with unit",
			text: "animals received 5 mg of the compound daily",
			want: []string{"5 mg"},
		},
		{
			name: "percentage",
			text: "bone density fell by 12.5% over the mission",
			want: []string{"12.5 %"},
		},
		{
			name: "fold change",
			// The unit pattern and the fold-change pattern both fire.
			text: "expression showed a 2 fold increase",
			want: []string{"2 fold", "2 fold increase"},
		},
		{
			name: "hyphenated fold change",
			text: "Bone density increased 2.5-fold (p<0.001) after treatment.",
			want: []string{"2.5 fold", "0.001"},
		},
		{
			name: "p value",
			text: "the difference was significant (p < 0.05)",
			want: []string{"0.05"},
		},
		{
			name: "mean and deviation",
			text: "mean mass was 3.2 ± 0.4 across groups",
			want: []string{"3.2 0.4"},
		},
		{
			name: "no numbers",
			text: "no quantitative data were reported",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractMeasurements(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractMeasurements(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractMeasurementsCombined(t *testing.T) {
	text := "Treatment with 5 mg produced a 2 fold increase (12.5%, p < 0.05, 3.2 ± 0.4)."

	got := ExtractMeasurements(text)
	// Matches are grouped by pattern: units first, then percentages,
	// fold changes, p-values, and mean±SD pairs.
	want := []string{"5 mg", "2 fold", "12.5 %", "2 fold increase", "0.05", "3.2 0.4"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractMeasurements = %v, want %v", got, want)
	}
}
