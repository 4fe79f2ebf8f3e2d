package configs

import "fmt"

const (
	TracingExporterOTLPHTTP = "otlp-http"
	TracingExporterOTLPGRPC = "otlp-grpc"
)

// Tracing configures span export. When disabled spans go to the global
// no-op tracer.
type Tracing struct {
	Enabled      bool    `env:"ENABLED" envDefault:"false"`
	ServiceName  string  `env:"SERVICE_NAME" envDefault:"storerank"`
	Exporter     string  `env:"EXPORTER" envDefault:"otlp-http"`
	Endpoint     string  `env:"ENDPOINT"`
	Insecure     bool    `env:"INSECURE" envDefault:"false"`
	SamplingRate float64 `env:"SAMPLING_RATE" envDefault:"1"`
}

func (t Tracing) Validate() error {
	if !t.Enabled {
		return nil
	}
	if t.ServiceName == "" {
		return fmt.Errorf("tracing service name is required when tracing is enabled")
	}
	switch t.Exporter {
	case TracingExporterOTLPHTTP, TracingExporterOTLPGRPC:
	default:
		return fmt.Errorf("unsupported tracing exporter %q", t.Exporter)
	}
	if t.SamplingRate < 0 || t.SamplingRate > 1 {
		return fmt.Errorf("tracing sampling rate must be between 0 and 1, got %v", t.SamplingRate)
	}
	return nil
}
