package speech

import (
	"reflect"
	"testing"
)

func TestParseEquation(t *testing.T) {
	p := NewProcessor()

	tests := []struct {
		equation string
		want     []string
	}{
		{"5+3=8", []string{"5", "+", "3", "=", "8"}},
		{"2.5*4", []string{"2.5", "*", "4"}},
		{"x+y=z", []string{"x", "+", "y", "=", "z"}},
		{"(2+3)*4", []string{"(", "2", "+", "3", ")", "*", "4"}},
		{"2^3", []string{"2", "^", "3"}},
		{"", nil},
	}

	for _, tt := range tests {
		got := p.ParseEquation(tt.equation)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseEquation(%q) = %v, want %v", tt.equation, got, tt.want)
		}
	}
}

func TestEquationToSpeech_Sinhala(t *testing.T) {
	p := NewProcessor()

	tests := []struct {
		equation string
		want     string
	}{
		{"5+3", "5 එකතු කිරීම 3"},
		{"5+3=8", "5 එකතු කිරීම 3 සමානයි 8"},
		{"10-4", "10 අඩු කිරීම 4"},
		{"6*7", "6 ගුණ කිරීම 7"},
		{"8/2", "8 බෙදීම 2"},
		{"2^3", "2 බලය 3"},
	}

	for _, tt := range tests {
		if got := p.EquationToSpeech(tt.equation, "si"); got != tt.want {
			t.Errorf("EquationToSpeech(%q) = %q, want %q", tt.equation, got, tt.want)
		}
	}
}

func TestEquationToSpeech_English(t *testing.T) {
	p := NewProcessor()

	if got := p.EquationToSpeech("5+3=8", "en"); got != "5 plus 3 equals 8" {
		t.Errorf("got %q", got)
	}
	if got := p.EquationToSpeech("8/2", "en"); got != "8 divided by 2" {
		t.Errorf("got %q", got)
	}
}

func TestEquationToSpeech_VariablesPassThrough(t *testing.T) {
	p := NewProcessor()

	if got := p.EquationToSpeech("x+2", "si"); got != "x එකතු කිරීම 2" {
		t.Errorf("got %q", got)
	}
}
