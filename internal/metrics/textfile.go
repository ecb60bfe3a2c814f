package metrics

import "github.com/prometheus/client_golang/prometheus"

// WriteTextfile dumps the default registry in the text exposition format,
// for collection by the node exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
