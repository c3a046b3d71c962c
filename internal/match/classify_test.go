package match

import "testing"

func TestIsNameLike(t *testing.T) {
	tests := []struct {
		column string
		want   bool
	}{
		{"nome", true},
		{"Nome Completo", true},
		{"NOME", true},
		{"name", true},
		{"Employee Name", true},
		{"colaborador", true},
		{"Funcionário", true},
		{"aluno", true},
		{"matricula", false},
		{"Matrícula", false},
		{"cpf", false},
		{"codigo", false},
		{"id", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			if got := IsNameLike(tt.column); got != tt.want {
				t.Errorf("IsNameLike(%q) = %v, want %v", tt.column, got, tt.want)
			}
		})
	}
}
