package grid

import (
	"testing"

	"github.com/matzehuels/slotgrid/pkg/errors"
)

func TestIsLegal(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		want bool
	}{
		{"span slot", Position{1, 1}, true},
		{"row 1 column 6", Position{1, 6}, true},
		{"row 1 column 7", Position{1, 7}, true},
		{"reserved 1,2", Position{1, 2}, false},
		{"reserved 1,3", Position{1, 3}, false},
		{"reserved 1,4", Position{1, 4}, false},
		{"reserved 1,5", Position{1, 5}, false},
		{"row 2 column 2", Position{2, 2}, true},
		{"bottom right", Position{5, 7}, true},
		{"row 0", Position{0, 1}, false},
		{"row 6", Position{6, 1}, false},
		{"column 0", Position{2, 0}, false},
		{"column 8", Position{2, 8}, false},
		{"negative", Position{-1, -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLegal(tt.pos); got != tt.want {
				t.Errorf("IsLegal(%s) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestIsLegalExhaustive(t *testing.T) {
	legal := 0
	for r := -1; r <= Rows+1; r++ {
		for c := -1; c <= Columns+1; c++ {
			p := Position{Row: r, Column: c}
			inRange := r >= 1 && r <= Rows && c >= 1 && c <= Columns
			reserved := r == 1 && c >= 2 && c <= 5
			want := inRange && !reserved
			if got := IsLegal(p); got != want {
				t.Errorf("IsLegal(%s) = %v, want %v", p, got, want)
			}
			if want {
				legal++
			}
		}
	}
	if legal != MaxSlots {
		t.Errorf("legal positions = %d, want %d", legal, MaxSlots)
	}
}

func TestLegalPositions(t *testing.T) {
	got := LegalPositions()
	if len(got) != MaxSlots {
		t.Fatalf("len(LegalPositions()) = %d, want %d", len(got), MaxSlots)
	}
	if got[0] != Span {
		t.Errorf("first position = %s, want %s", got[0], Span)
	}
	if got[1] != (Position{1, 6}) {
		t.Errorf("second position = %s, want (1, 6)", got[1])
	}
	if last := got[len(got)-1]; last != (Position{Rows, Columns}) {
		t.Errorf("last position = %s, want (%d, %d)", last, Rows, Columns)
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		input string
		want  Position
	}{
		{"2,3", Position{2, 3}},
		{"1,1", Position{1, 1}},
		{"1,1 ", Position{1, 1}},
		{" 1,1", Position{1, 1}},
		{" 3 , 6", Position{3, 6}},
		{"\t5,7\n", Position{5, 7}},
		{"9,9", Position{9, 9}},   // legality is not checked here
		{"-1,0", Position{-1, 0}}, // nor range
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePosition(tt.input)
			if err != nil {
				t.Fatalf("ParsePosition(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePosition(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePositionErrors(t *testing.T) {
	tests := []string{
		"",
		"1",
		"1,2,3",
		"a,b",
		"1,b",
		"a,1",
		"1;2",
		"1.5,2",
		",",
		"1,",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := ParsePosition(input)
			if err == nil {
				t.Fatalf("ParsePosition(%q) succeeded, want error", input)
			}
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("ParsePosition(%q) code = %v, want %v", input, errors.GetCode(err), errors.ErrCodeInvalidFormat)
			}
		})
	}
}

func TestPositionFormatting(t *testing.T) {
	p := Position{Row: 4, Column: 2}
	if got := p.String(); got != "(4, 2)" {
		t.Errorf("String() = %q, want %q", got, "(4, 2)")
	}
	if got := p.Constraint(); got != "4,2" {
		t.Errorf("Constraint() = %q, want %q", got, "4,2")
	}
	back, err := ParsePosition(p.Constraint())
	if err != nil || back != p {
		t.Errorf("ParsePosition(Constraint()) = %s, %v; want %s", back, err, p)
	}
	if p.IsSpan() {
		t.Error("(4, 2).IsSpan() = true")
	}
	if !Span.IsSpan() {
		t.Error("Span.IsSpan() = false")
	}
}

func TestMustParsePositionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParsePosition(\"x\") did not panic")
		}
	}()
	MustParsePosition("x")
}
