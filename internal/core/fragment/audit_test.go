package fragment

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAudit(t *testing.T) {
	tests := []struct {
		name    string
		episode string
		want    []Problem
	}{
		{
			name:    "missing budget only",
			episode: `{"number": 5, "prefecture": "Tokyo"}`,
			want:    []Problem{NoBudget},
		},
		{
			name:    "episode zero is exempt",
			episode: `{"number": 0}`,
			want:    nil,
		},
		{
			name:    "null budget is accepted",
			episode: `{"number": 2, "budget": null, "prefecture": "Gunma"}`,
			want:    nil,
		},
		{
			name:    "numeric budget is accepted",
			episode: `{"number": 2, "budget": 1200000, "prefecture": "Gunma"}`,
			want:    nil,
		},
		{
			name:    "string budget is reported",
			episode: `{"number": 2, "budget": "1M", "prefecture": "Gunma"}`,
			want:    []Problem{NoBudget},
		},
		{
			name:    "both missing",
			episode: `{"number": 7}`,
			want:    []Problem{NoBudget, NoPrefecture},
		},
		{
			name:    "missing number is not exempt",
			episode: `{"budget": 1}`,
			want:    []Problem{NoPrefecture},
		},
		{
			name:    "string zero is not exempt",
			episode: `{"number": "0", "budget": 1, "prefecture": null}`,
			want:    []Problem{NoPrefecture},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := Audit("5.json", mustDecode(t, tt.episode))

			var got []Problem
			for _, f := range findings {
				if f.File != "5.json" {
					t.Errorf("finding file = %q", f.File)
				}
				got = append(got, f.Problem)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Audit() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
