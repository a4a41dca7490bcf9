package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SentencesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nmea_sentences_total",
		Help: "Total de sentencias NMEA decodificadas, por familia",
	}, []string{"family"})
	ParseErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nmea_parse_errors_total",
		Help: "Errores totales al parsear sentencias NMEA",
	})
	DecodeErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nmea_decode_errors_total",
		Help: "Errores de decodificacion por codigo",
	}, []string{"code"})
	FragmentsPending = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "nmea_fragments_pending",
		Help: "Grupos de fragmentos AIS pendientes de ensamblar",
	})
	RedisErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nmea_redis_errors_total",
		Help: "Errores al leer/escribir estado de ensamblado en Redis",
	})
	ParseLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "nmea_decode_latency_seconds",
		Help:    "Latencia de Parse por sentencia",
		Buckets: prometheus.DefBuckets,
	})
)

func ObserveParseLatency(start time.Time) {
	ParseLatency.Observe(time.Since(start).Seconds())
}

func StartMetricsServer(port string) {
	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		_, _ = w.Write([]byte("ok"))
	})
	_ = http.ListenAndServe(":"+port, nil)
}
