package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"firmas/internal/domain"
	"firmas/internal/validate"
)

type recordedAnomaly struct {
	kind    string
	subject string
	detail  string
}

type captureSink struct {
	anomalies []recordedAnomaly
}

func (s *captureSink) Anomaly(kind, subject, detail string) {
	s.anomalies = append(s.anomalies, recordedAnomaly{kind, subject, detail})
}

func (s *captureSink) kinds() []string {
	var out []string
	for _, a := range s.anomalies {
		out = append(out, a.kind)
	}
	return out
}

func TestRepresentatives_FillsEmptyFields(t *testing.T) {
	sink := &captureSink{}
	reps := validate.Representatives([]domain.Representative{
		{Nome: "João da Silva", Cargo: "Sócio"},
	}, sink)

	assert.Len(t, reps, 1)
	assert.Equal(t, "João da Silva", reps[0].Nome)
	assert.Equal(t, domain.NotAvailable, reps[0].CPF)
	assert.Equal(t, domain.NotAvailable, reps[0].TipoAssinatura)
	assert.Equal(t, domain.NotAvailable, reps[0].OrigemAssinatura)
	assert.Equal(t, domain.NotAvailable, reps[0].RegrasRepresentacao)
	assert.Equal(t, domain.NotAvailable, reps[0].OrigemDataValidade)
}

func TestRepresentatives_OriginWithoutValueIsReset(t *testing.T) {
	sink := &captureSink{}
	reps := validate.Representatives([]domain.Representative{
		{Nome: "João da Silva", OrigemAssinatura: "Cláusula 8ª"},
	}, sink)

	assert.Equal(t, domain.NotAvailable, reps[0].OrigemAssinatura)
	assert.Contains(t, sink.kinds(), "origem_sem_valor")
}

func TestRepresentatives_ValueWithoutOriginIsOnlyReported(t *testing.T) {
	sink := &captureSink{}
	reps := validate.Representatives([]domain.Representative{
		{Nome: "João da Silva", TipoAssinatura: "Isolada"},
	}, sink)

	// The principal value survives; only the anomaly is recorded.
	assert.Equal(t, "Isolada", reps[0].TipoAssinatura)
	assert.Contains(t, sink.kinds(), "valor_sem_origem")
}

func TestRepresentatives_FiltersProcuradores(t *testing.T) {
	sink := &captureSink{}
	reps := validate.Representatives([]domain.Representative{
		{Nome: "João da Silva", Cargo: "Sócio Administrador"},
		{Nome: "Carlos Pereira", Cargo: "Procurador"},
		{Nome: "Ana Lima", Cargo: "Procuradora"},
	}, sink)

	assert.Len(t, reps, 1)
	assert.Equal(t, "João da Silva", reps[0].Nome)
	assert.Equal(t, []string{"procurador_filtrado", "procurador_filtrado"}, sink.kinds())
}

func TestRepresentatives_RemovesDuplicateNames(t *testing.T) {
	sink := &captureSink{}
	reps := validate.Representatives([]domain.Representative{
		{Nome: "João da Silva", Cargo: "Sócio"},
		{Nome: "  joão da silva ", Cargo: "Diretor"},
		{Nome: "Maria Souza", Cargo: "Diretora"},
	}, sink)

	assert.Len(t, reps, 2)
	assert.Equal(t, "João da Silva", reps[0].Nome)
	assert.Equal(t, "Maria Souza", reps[1].Nome)
}

func TestRepresentatives_KeepsNamelessRecords(t *testing.T) {
	sink := &captureSink{}
	reps := validate.Representatives([]domain.Representative{
		{Cargo: "Sócio"},
		{Cargo: "Diretor"},
	}, sink)

	// Both end up with the sentinel name and neither collides.
	assert.Len(t, reps, 2)
	assert.Equal(t, domain.NotAvailable, reps[0].Nome)
	assert.Equal(t, domain.NotAvailable, reps[1].Nome)
}

func TestRepresentatives_Idempotent(t *testing.T) {
	input := []domain.Representative{
		{Nome: "João da Silva", Cargo: "Sócio", TipoAssinatura: "Isolada", OrigemAssinatura: "Cláusula 8ª"},
		{Nome: "João da Silva", Cargo: "Sócio"},
	}

	once := validate.Representatives(input, &captureSink{})
	twice := validate.Representatives(once, &captureSink{})

	assert.Equal(t, once, twice)
}

func TestRepresentatives_EmptyInput(t *testing.T) {
	sink := &captureSink{}

	assert.Empty(t, validate.Representatives(nil, sink))
	assert.Empty(t, sink.anomalies)
}
