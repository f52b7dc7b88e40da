package svgicon

import "testing"

func TestParseSVGColor(t *testing.T) {
	for _, test := range []struct {
		input string
		want  PlainColor
		none  bool
	}{
		{"#FF0000", NewPlainColor(0xFF, 0, 0, 0xFF), false},
		{"#f00", NewPlainColor(0xFF, 0, 0, 0xFF), false},
		{"red", NewPlainColor(0xFF, 0, 0, 0xFF), false},
		{"Navy", NewPlainColor(0, 0, 0x80, 0xFF), false},
		{"rgb(16, 32, 48)", NewPlainColor(16, 32, 48, 0xFF), false},
		{"rgb(100%, 0%, 0%)", NewPlainColor(0xFF, 0, 0, 0xFF), false},
		{"rgba(16, 32, 48, 0.5)", NewPlainColor(16, 32, 48, 128), false},
		{"none", PlainColor{}, true},
		{"transparent", PlainColor{}, true},
	} {
		got, err := parseSVGColor(test.input)
		if err != nil {
			t.Errorf("%q: %s", test.input, err)
			continue
		}
		if test.none {
			if got.asPattern() != nil {
				t.Errorf("%q: expected no color, got %v", test.input, got)
			}
			continue
		}
		if got.asPattern() != test.want {
			t.Errorf("%q: got %v, want %v", test.input, got.color, test.want)
		}
	}
}

func TestParseSVGColorInvalid(t *testing.T) {
	for _, input := range []string{"#12345", "notacolor", "rgb(1,2)", "rgb(300,0,0)"} {
		if _, err := parseSVGColor(input); err == nil {
			t.Errorf("expected an error for %q", input)
		}
	}
}
