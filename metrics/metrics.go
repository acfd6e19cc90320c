package metrics

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricsNamespace = "bdd_acceptor"
)

var (
	Debug                bool = true
	nonAlphanumericRegex      = regexp.MustCompile(`[^a-zA-Z ]+`)

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "errors_total",
		Help:      "Count of errors",
	}, []string{
		"error",
	})

	sessionResults = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "session_results",
		Help:      "Result of replayed sessions",
	}, []string{
		"run_id",
		"result",
	})

	sessionTestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "session_test_total",
		Help:      "Total number of tests in a session",
	}, []string{
		"run_id",
	})

	sessionTestPassed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "session_test_passed",
		Help:      "Number of passed tests in a session",
	}, []string{
		"run_id",
	})

	sessionTestFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "session_test_failed",
		Help:      "Number of failed or broken tests in a session",
	}, []string{
		"run_id",
	})

	sessionDuration = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "session_duration",
		Help:      "Duration of replayed sessions in seconds",
	}, []string{
		"run_id",
	})
)

// errToLabel tries to make the error string a more valid Prometheus label
func errToLabel(err error) string {
	if err == nil {
		return "nil"
	}
	errClean := nonAlphanumericRegex.ReplaceAllString(err.Error(), "")
	errClean = strings.ReplaceAll(errClean, " ", "_")
	errClean = strings.ReplaceAll(errClean, "__", "_")
	return errClean
}

func RecordError(error string) {
	if Debug {
		log.Debug("metric inc",
			"m", "errors_total",
			"error", error,
		)
	}
	errorsTotal.WithLabelValues(error).Inc()
}

// RecordErrorDetails concats the error message to the label
// and also tries to clean the label to be a valid Prometheus label
func RecordErrorDetails(label string, err error) {
	if err == nil {
		return
	}
	label = fmt.Sprintf("%s.%s", label, errToLabel(err))
	RecordError(label)
}

// RecordSession records the aggregate outcome of one replayed session.
func RecordSession(
	runID string,
	result string,
	total int,
	passed int,
	failed int,
	duration time.Duration,
) {
	if Debug {
		log.Debug("metric record",
			"m", "session_results",
			"run_id", runID,
			"result", result,
			"total", total,
			"passed", passed,
			"failed", failed)
	}
	sessionResults.WithLabelValues(runID, result).Set(1)
	sessionTestTotal.WithLabelValues(runID).Add(float64(total))
	sessionTestPassed.WithLabelValues(runID).Add(float64(passed))
	sessionTestFailed.WithLabelValues(runID).Add(float64(failed))
	sessionDuration.WithLabelValues(runID).Set(duration.Seconds())
}
