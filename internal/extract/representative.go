package extract

import (
	"strings"

	"firmas/internal/domain"
)

// Field-label prefixes in match order. Each line of a representative block
// is assigned to the first prefix it starts with.
var representativeFieldSetters = []struct {
	prefix string
	set    func(*domain.Representative, string)
}{
	{"Nome:", func(r *domain.Representative, v string) { r.Nome = v }},
	{"CPF:", func(r *domain.Representative, v string) { r.CPF = v }},
	{"Cargo:", func(r *domain.Representative, v string) { r.Cargo = v }},
	{"Endereço da residência:", func(r *domain.Representative, v string) { r.EnderecoResidencia = v }},
	{"Tipo de assinatura:", func(r *domain.Representative, v string) { r.TipoAssinatura = v }},
	{"Origem da assinatura:", func(r *domain.Representative, v string) { r.OrigemAssinatura = v }},
	{"Regras de representação:", func(r *domain.Representative, v string) { r.RegrasRepresentacao = v }},
	{"Origem das regras de representação:", func(r *domain.Representative, v string) { r.OrigemRegrasRepresentacao = v }},
	{"Data de validade das regras:", func(r *domain.Representative, v string) { r.DataValidadeRegras = v }},
	{"Origem da data de validade:", func(r *domain.Representative, v string) { r.OrigemDataValidade = v }},
}

// ParseRepresentativeBlocks walks the lines after the "representantes
// legais" header as a two-state machine: a line starting with
// "Representante " closes the record under construction and opens a new
// one; any other non-empty line is matched against the field-label prefixes
// and assigned into the active record. Lines that match no prefix are
// ignored. Returns raw records; normalization and filtering happen in the
// validate package.
func ParseRepresentativeBlocks(lines []string) []domain.Representative {
	start := findRepresentativesSection(lines)
	if start < 0 {
		return nil
	}

	var reps []domain.Representative
	var current *domain.Representative

	for i := start; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "Representante ") {
			if current != nil {
				reps = append(reps, *current)
			}
			current = &domain.Representative{}
			continue
		}

		if current == nil {
			continue
		}
		for _, fs := range representativeFieldSetters {
			if strings.HasPrefix(line, fs.prefix) {
				fs.set(current, strings.TrimSpace(line[len(fs.prefix):]))
				break
			}
		}
	}

	if current != nil {
		reps = append(reps, *current)
	}
	return reps
}

// findRepresentativesSection returns the index of the first line after the
// section header, or -1 when the header is absent.
func findRepresentativesSection(lines []string) int {
	for i, line := range lines {
		clean := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(line, "**", "")))
		if strings.HasPrefix(clean, "representantes legais") {
			return i + 1
		}
	}
	return -1
}

// RepresentativeNames joins the non-sentinel names of the given records
// with newlines, for the plain-text display field.
func RepresentativeNames(reps []domain.Representative) string {
	var names []string
	for _, rep := range reps {
		if rep.Nome != "" && rep.Nome != domain.NotAvailable {
			names = append(names, rep.Nome)
		}
	}
	return strings.Join(names, "\n")
}

// CountRepresentatives counts the records holding a real name.
func CountRepresentatives(reps []domain.Representative) int {
	count := 0
	for _, rep := range reps {
		if rep.Nome != "" && rep.Nome != domain.NotAvailable {
			count++
		}
	}
	return count
}
