package feedback

import "testing"

func TestAnalyzeError_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		correct string
		user    string
		want    ErrorType
	}{
		{"sign reversal", "7", "-7", ErrorSignReversal},
		{"decimal shift up", "7", "70", ErrorDecimalMisalignment},
		{"decimal shift down", "70", "7", ErrorDecimalMisalignment},
		{"off by one above", "7", "8", ErrorOffByOne},
		{"off by one below", "7", "6", ErrorOffByOne},
		{"general miss", "7", "23", ErrorCalculation},
		{"non-numeric answer", "7", "abc", ErrorFormat},
		{"empty answer", "7", "", ErrorFormat},
		{"fraction answer unparseable", "3/10", "1/2", ErrorFormat},
		{"whitespace tolerated", "7", "  -7  ", ErrorSignReversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnalyzeError(tt.correct, tt.user); got != tt.want {
				t.Errorf("AnalyzeError(%q, %q) = %q, want %q", tt.correct, tt.user, got, tt.want)
			}
		})
	}
}

func TestAnalyzeError_SignOutranksDecimal(t *testing.T) {
	// -10 vs 10 matches both sign reversal and the ratio rule.
	if got := AnalyzeError("10", "-10"); got != ErrorSignReversal {
		t.Errorf("got %q, want %q (sign reversal should take priority)", got, ErrorSignReversal)
	}
}

func TestDecimalShiftClassifier_ZeroGuard(t *testing.T) {
	c := &DecimalShiftClassifier{}
	if et, _ := c.Classify(&ClassifyInput{UserValue: 0, CorrectValue: 7}); et != "" {
		t.Errorf("got %q for zero user value, want no match", et)
	}
	if et, _ := c.Classify(&ClassifyInput{UserValue: 7, CorrectValue: 0}); et != "" {
		t.Errorf("got %q for zero correct value, want no match", et)
	}
}

func TestDecimalShiftClassifier_HundredfoldShift(t *testing.T) {
	c := &DecimalShiftClassifier{}
	et, conf := c.Classify(&ClassifyInput{UserValue: 700, CorrectValue: 7})
	if et != ErrorDecimalMisalignment {
		t.Errorf("got %q, want %q", et, ErrorDecimalMisalignment)
	}
	if conf != 0.85 {
		t.Errorf("got confidence %f, want 0.85", conf)
	}
}

func TestOffByOneClassifier_FractionalGapNoMatch(t *testing.T) {
	c := &OffByOneClassifier{}
	if et, _ := c.Classify(&ClassifyInput{UserValue: 7.5, CorrectValue: 7}); et != "" {
		t.Errorf("got %q for 0.5 gap, want no match", et)
	}
}
