package metrics

import "time"

// Provider define o contrato para envio de métricas.
// Isso permite trocar Datadog por Prometheus ou Logging sem alterar a lógica de negócio.
type Provider interface {
	Count(name string, value float64, tags []string) error
	Gauge(name string, value float64, tags []string) error
	Histogram(name string, value float64, tags []string) error
}

// Nomes das métricas emitidas pelos handlers. O namespace (ex: "items.") é
// aplicado pelo provider.
const (
	RequestCount   = "request.count"
	RequestLatency = "request.latency_ms"
)

// Outcome classifica o resultado de uma operação para a tag "outcome".
type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeInvalid  Outcome = "invalid"
	OutcomeNotFound Outcome = "not_found"
	OutcomeError    Outcome = "error"
)

// Recorder registra contagem e latência de uma operação em um único passo.
type Recorder struct {
	provider Provider
	tags     []string
}

// NewRecorder cria um Recorder com tags fixas (ex: "service:items-api").
// provider nil vira um recorder silencioso.
func NewRecorder(provider Provider, tags ...string) *Recorder {
	return &Recorder{provider: provider, tags: tags}
}

// Observe envia request.count e request.latency_ms para a operação.
// Falhas de envio são ignoradas: métricas nunca interrompem uma requisição.
func (r *Recorder) Observe(operation string, outcome Outcome, start time.Time) {
	if r == nil || r.provider == nil {
		return
	}
	tags := make([]string, 0, len(r.tags)+2)
	tags = append(tags, r.tags...)
	tags = append(tags, "operation:"+operation, "outcome:"+string(outcome))

	_ = r.provider.Count(RequestCount, 1, tags)
	_ = r.provider.Histogram(RequestLatency, float64(time.Since(start).Milliseconds()), tags)
}
