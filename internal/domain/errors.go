package domain

import "fmt"

// SchemaError indica coluna obrigatória ausente na normalização.
// Erro fatal: nenhum resultado parcial é produzido.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("coluna obrigatória ausente no dataset: %s", e.Column)
}

// DateParseError indica valor de data malformado em uma linha da origem.
// Erro fatal para a carga inteira, sem normalização parcial.
type DateParseError struct {
	Value string
	Row   int
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("data inválida na linha %d: %q", e.Row, e.Value)
}
