package generator

import (
	"io"
	"math"
	"math/rand/v2"

	"pkg.jsn.cam/yamr/pkg/executors/maxvalue"
)

// MetricGenerator writes "key:value" samples
type MetricGenerator struct {
	rand *rand.Rand
}

var metricKeys = []string{
	"temperature",
	"humidity",
	"pressure",
	"cpu_usage",
	"memory_usage",
	"disk_io",
	"network_latency",
	"response_time",
	"error_rate",
	"request_count",
}

func (g *MetricGenerator) Init(r *rand.Rand) {
	g.rand = r
}

func (g *MetricGenerator) WriteLine(w io.Writer) error {
	value := math.Round(g.rand.Float64()*10000) / 100
	_, err := io.WriteString(w, maxvalue.FormatMetric(pick(g.rand, metricKeys), value)+"\n")
	return err
}

func (g *MetricGenerator) Description() string {
	return "Metric samples: key:value (for maxvalue and average)"
}

func (g *MetricGenerator) DefaultCount() int64 {
	return 1e5
}
