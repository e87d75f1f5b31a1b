package validate

import (
	"strings"

	"firmas/internal/domain"
	"firmas/internal/port"
)

// Role terms identifying an attorney-in-fact. Records with these roles are
// never legal representatives and are dropped from the structured list.
var procuradorTerms = []string{"PROCURADOR", "OUTORGADO", "MANDATÁRIO", "MANDATARIO", "PROCURACAO"}

// Representatives normalizes the raw parsed records: fills unset fields
// with the sentinel, checks principal/origin consistency, filters attorney
// records and removes duplicate names. Order of the survivors follows the
// input order.
func Representatives(reps []domain.Representative, sink port.AnomalySink) []domain.Representative {
	if len(reps) == 0 {
		return reps
	}
	for i := range reps {
		fillEmptyFields(&reps[i])
		checkFieldConsistency(&reps[i], sink)
	}
	filtered := filterProcuradores(reps, sink)
	return removeDuplicates(filtered)
}

func fillEmptyFields(rep *domain.Representative) {
	fields := []*string{
		&rep.Nome, &rep.CPF, &rep.Cargo, &rep.EnderecoResidencia,
		&rep.TipoAssinatura, &rep.OrigemAssinatura,
		&rep.RegrasRepresentacao, &rep.OrigemRegrasRepresentacao,
		&rep.DataValidadeRegras, &rep.OrigemDataValidade,
	}
	for _, f := range fields {
		if strings.TrimSpace(*f) == "" {
			*f = domain.NotAvailable
		}
	}
}

// checkFieldConsistency enforces the principal/origin pairing. An origin
// value without its principal is reset to the sentinel; a principal value
// without its origin is only reported, never corrected. The asymmetry is
// intentional.
func checkFieldConsistency(rep *domain.Representative, sink port.AnomalySink) {
	pairs := []struct {
		name      string
		principal *string
		origin    *string
	}{
		{"tipo_assinatura", &rep.TipoAssinatura, &rep.OrigemAssinatura},
		{"regras_representacao", &rep.RegrasRepresentacao, &rep.OrigemRegrasRepresentacao},
		{"data_validade_regras", &rep.DataValidadeRegras, &rep.OrigemDataValidade},
	}
	for _, p := range pairs {
		if *p.principal == domain.NotAvailable {
			if *p.origin != domain.NotAvailable {
				sink.Anomaly("origem_sem_valor", rep.Nome, p.name+" vazio mas origem tem valor")
				*p.origin = domain.NotAvailable
			}
			continue
		}
		if *p.origin == domain.NotAvailable || *p.origin == "" {
			sink.Anomaly("valor_sem_origem", rep.Nome, p.name+" tem valor mas origem vazia")
		}
	}
}

func filterProcuradores(reps []domain.Representative, sink port.AnomalySink) []domain.Representative {
	filtered := reps[:0:0]
	for _, rep := range reps {
		if isProcurador(rep.Cargo) {
			sink.Anomaly("procurador_filtrado", rep.Nome, "Cargo: "+rep.Cargo)
			continue
		}
		filtered = append(filtered, rep)
	}
	return filtered
}

func isProcurador(cargo string) bool {
	upper := strings.ToUpper(cargo)
	for _, term := range procuradorTerms {
		if strings.Contains(upper, term) {
			return true
		}
	}
	return false
}

// removeDuplicates drops repeated names, keeping the first occurrence.
// Records without a usable name are kept as-is; they cannot collide.
func removeDuplicates(reps []domain.Representative) []domain.Representative {
	seen := make(map[string]struct{}, len(reps))
	unique := reps[:0:0]
	for _, rep := range reps {
		name := strings.ToLower(strings.TrimSpace(rep.Nome))
		if name == "" || name == strings.ToLower(domain.NotAvailable) {
			unique = append(unique, rep)
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, rep)
	}
	return unique
}
