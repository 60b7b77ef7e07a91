package vocab

import "testing"

func TestNormalizeToken(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"Cálculo", "calculo"},
		{"  ÁLGEBRA  ", "algebra"},
		{"café", "cafe"},
		{"naïve", "naive"},
		{"matemáticas", "matematicas"},
		{"plain", "plain"},
		{"", ""},
	}
	for _, tt := range tests {
		got := NormalizeToken(tt.input)
		if got != tt.want {
			t.Errorf("NormalizeToken(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeLowercaseUTF8(t *testing.T) {
	if got := NormalizeLowercaseUTF8(" Cálculo "); got != "cálculo" {
		t.Errorf("NormalizeLowercaseUTF8 = %q, want cálculo (accents preserved)", got)
	}
}

func TestGetNormalizer(t *testing.T) {
	tests := []struct {
		mode, input, want string
	}{
		{"lowercase_ascii", "Élodie", "elodie"},
		{"lowercase_utf8", "Élodie", "élodie"},
		{"none", "Élodie", "Élodie"},
		{"", "Élodie", "elodie"},        // default
		{"unknown", "Élodie", "elodie"}, // default
	}
	for _, tt := range tests {
		got := GetNormalizer(tt.mode)(tt.input)
		if got != tt.want {
			t.Errorf("GetNormalizer(%q)(%q) = %q, want %q", tt.mode, tt.input, got, tt.want)
		}
	}
}
