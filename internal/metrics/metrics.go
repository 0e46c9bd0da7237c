package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pipeline agrupa los contadores del pipeline de resultados. Un *Pipeline nil
// es válido y no registra nada, así los tests no necesitan registro.
type Pipeline struct {
	registry *prometheus.Registry

	resultsGenerated  prometheus.Counter
	resultsReused     prometheus.Counter
	titleFallbacks    prometheus.Counter
	imageFallbacks    *prometheus.CounterVec
	imagesRegenerated *prometheus.CounterVec
	answersSubmitted  prometheus.Counter
}

// NewPipeline crea los contadores sobre un registro propio, no el global.
func NewPipeline() *Pipeline {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Pipeline{
		registry: registry,
		resultsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Name: "quiz_results_generated_total",
			Help: "Results created by the generation pipeline.",
		}),
		resultsReused: factory.NewCounter(prometheus.CounterOpts{
			Name: "quiz_results_reused_total",
			Help: "Generate calls answered with an already existing result.",
		}),
		titleFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "quiz_title_fallbacks_total",
			Help: "Titles replaced by the templated fallback.",
		}),
		imageFallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "quiz_image_fallbacks_total",
			Help: "Trait images replaced by a placeholder, partitioned by trait.",
		}, []string{"trait"}),
		imagesRegenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "quiz_images_regenerated_total",
			Help: "Single trait image regenerations, partitioned by trait.",
		}, []string{"trait"}),
		answersSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "quiz_answers_submitted_total",
			Help: "Answers stored or replaced.",
		}),
	}
}

func (p *Pipeline) ResultGenerated() {
	if p != nil {
		p.resultsGenerated.Inc()
	}
}

func (p *Pipeline) ResultReused() {
	if p != nil {
		p.resultsReused.Inc()
	}
}

func (p *Pipeline) TitleFallback() {
	if p != nil {
		p.titleFallbacks.Inc()
	}
}

func (p *Pipeline) ImageFallback(trait string) {
	if p != nil {
		p.imageFallbacks.WithLabelValues(trait).Inc()
	}
}

func (p *Pipeline) ImageRegenerated(trait string) {
	if p != nil {
		p.imagesRegenerated.WithLabelValues(trait).Inc()
	}
}

func (p *Pipeline) AnswerSubmitted() {
	if p != nil {
		p.answersSubmitted.Inc()
	}
}

// Handler expone el registro en formato Prometheus.
func (p *Pipeline) Handler() http.Handler {
	if p == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

