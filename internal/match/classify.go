// Package match derives a candidate key from each filename and resolves it
// against the reference index through an ordered strategy chain.
package match

import (
	"strings"

	"renomeia/internal/textnorm"
)

// nameLikeTerms is the vocabulary that classifies a match column as
// name-like. Comparison runs on normalized text, so "Funcionário" hits
// "funcionario" and "Nome Completo" hits "nome".
var nameLikeTerms = []string{
	"nome",
	"name",
	"colaborador",
	"funcionario",
	"aluno",
}

// IsNameLike reports whether the match column holds person-name-style
// values, which unlocks the fuzzy resolution strategies. Code/ID-style
// columns (anything else: matrícula, CPF, codes) get exact matching only,
// since partial numeric overlap is unsafe ("123" inside "1234").
func IsNameLike(matchColumn string) bool {
	col := textnorm.Normalize(matchColumn)
	for _, term := range nameLikeTerms {
		if strings.Contains(col, term) {
			return true
		}
	}
	return false
}
