package version

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Version
		wantErr bool
	}{
		{
			name:  "three components",
			input: "1.2.3",
			want:  Version{Major: 1, Minor: 2, Patch: 3},
		},
		{
			name:  "four components",
			input: "1.2.3.c",
			want:  Version{Major: 1, Minor: 2, Patch: 3, Suffix: "c"},
		},
		{
			name:  "multi-letter suffix",
			input: "0.10.0.ab",
			want:  Version{Major: 0, Minor: 10, Patch: 0, Suffix: "ab"},
		},
		{
			name:  "surrounding whitespace",
			input: " 1.0.0 ",
			want:  Version{Major: 1, Minor: 0, Patch: 0},
		},
		{name: "too few components", input: "1.2", wantErr: true},
		{name: "too many components", input: "1.2.3.a.b", wantErr: true},
		{name: "non-numeric major", input: "x.2.3", wantErr: true},
		{name: "negative component", input: "1.-2.3", wantErr: true},
		{name: "plus-prefixed component", input: "+1.2.3", wantErr: true},
		{name: "uppercase suffix", input: "1.2.3.B", wantErr: true},
		{name: "numeric suffix", input: "1.2.3.4", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q): expected error, got nil", tt.input)
				}
				if !errors.Is(err, ErrMalformedVersion) {
					t.Errorf("Parse(%q): error = %v, want ErrMalformedVersion", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestVersion_String_RoundTrip(t *testing.T) {
	inputs := []string{"0.0.0", "1.2.3", "1.2.3.a", "10.20.30.zz"}

	for _, s := range inputs {
		t.Run(s, func(t *testing.T) {
			v, err := Parse(s)
			if err != nil {
				t.Fatalf("Parse(%q): %v", s, err)
			}
			if got := v.String(); got != s {
				t.Errorf("round-trip of %q = %q", s, got)
			}
		})
	}
}

func TestVersion_Compare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.2.3", "1.2.3", 0},
		{"1.2.3", "1.2.3.a", 0}, // implicit suffix is "a"
		{"1.2.3", "1.2.4", -1},
		{"1.2.4", "1.2.3.b", 1},
		{"1.0.0.a", "1.0.0.z", -1},
		{"1.0.0.z", "1.0.0.aa", -1},
		{"2.0.0", "1.99.99.zz", 1},
		{"0.1.0", "0.2.0", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			a, err := Parse(tt.a)
			if err != nil {
				t.Fatal(err)
			}
			b, err := Parse(tt.b)
			if err != nil {
				t.Fatal(err)
			}
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLatest(t *testing.T) {
	tests := []struct {
		name     string
		versions []string
		want     string
		wantErr  error
	}{
		{
			name:     "patch wins over suffix",
			versions: []string{"1.2.3", "1.2.3.b", "1.2.4"},
			want:     "1.2.4",
		},
		{
			name:     "suffix ordinal ordering",
			versions: []string{"1.0.0.a", "1.0.0.z", "1.0.0.aa"},
			want:     "1.0.0.aa",
		},
		{
			name:     "single element",
			versions: []string{"0.1.0"},
			want:     "0.1.0",
		},
		{
			name:    "empty input",
			wantErr: ErrEmptyInput,
		},
		{
			name:     "malformed element",
			versions: []string{"1.0.0", "not-a-version"},
			wantErr:  ErrMalformedVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Latest(tt.versions)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Latest(%v): error = %v, want %v", tt.versions, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Latest(%v): unexpected error: %v", tt.versions, err)
			}
			if got != tt.want {
				t.Errorf("Latest(%v) = %q, want %q", tt.versions, got, tt.want)
			}
		})
	}
}
