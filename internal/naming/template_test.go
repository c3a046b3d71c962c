package naming

import (
	"errors"
	"testing"

	"renomeia/internal/refdata"
)

func TestRender(t *testing.T) {
	row := refdata.Row{
		"matricula": "12345",
		"nome":      "Ana Silva",
	}

	tests := []struct {
		name     string
		original string
		row      refdata.Row
		template string
		want     string
	}{
		{
			name:     "field plus extension token",
			original: "12345.pdf",
			row:      row,
			template: "{nome}.{extensao}",
			want:     "Ana Silva.pdf",
		},
		{
			name:     "extension appended when token absent",
			original: "12345.pdf",
			row:      row,
			template: "{nome} - {matricula}",
			want:     "Ana Silva - 12345.pdf",
		},
		{
			name:     "extension case preserved",
			original: "report.CSV",
			row:      row,
			template: "{nome}.{extensao}",
			want:     "Ana Silva.CSV",
		},
		{
			name:     "bare extension token",
			original: "report.CSV",
			row:      row,
			template: "{extensao}",
			want:     "CSV",
		},
		{
			name:     "no original extension",
			original: "12345",
			row:      row,
			template: "{nome}",
			want:     "Ana Silva",
		},
		{
			name:     "missing field degrades to empty",
			original: "12345.pdf",
			row:      row,
			template: "{nome}{setor}.{extensao}",
			want:     "Ana Silva.pdf",
		},
		{
			name:     "illegal characters sanitized",
			original: "12345.pdf",
			row:      refdata.Row{"nome": "A/B"},
			template: "{nome}.{extensao}",
			want:     "A_B.pdf",
		},
		{
			name:     "literal text kept",
			original: "12345.pdf",
			row:      row,
			template: "holerite_{matricula}",
			want:     "holerite_12345.pdf",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.original, tt.row, tt.template)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_NoMatchKeepsOriginalName(t *testing.T) {
	got, err := Render("unknown_file.pdf", nil, "{nome}.{extensao}")
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("Render() error = %v, want ErrNoMatch", err)
	}
	if got != "unknown_file.pdf" {
		t.Errorf("Render() = %q, want original name as fallback", got)
	}
}

func TestRender_Deterministic(t *testing.T) {
	row := refdata.Row{"nome": "Ana"}
	first, _ := Render("a.pdf", row, "{nome}.{extensao}")
	second, _ := Render("a.pdf", row, "{nome}.{extensao}")
	if first != second {
		t.Errorf("Render not deterministic: %q != %q", first, second)
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean name untouched", "Ana Silva.pdf", "Ana Silva.pdf"},
		{"slashes", `a/b\c`, "a_b_c"},
		{"windows reserved", `a<b>c:d"e|f?g*h`, "a_b_c_d_e_f_g_h"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
