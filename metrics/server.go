package metrics

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	versioncollector "github.com/prometheus/client_golang/prometheus/collectors/version"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/slok/asg-deployer/log"
)

// RegisterDefaults registers the build info, runtime and process collectors
// along with cs on reg
func RegisterDefaults(reg prometheus.Registerer, program string, cs ...prometheus.Collector) error {
	cs = append([]prometheus.Collector{
		versioncollector.NewCollector(program),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	}, cs...)

	for _, c := range cs {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// NewHandler returns the routes of the metrics server
func NewHandler(metricsPath string, g prometheus.Gatherer) http.Handler {
	r := mux.NewRouter()
	r.Handle(metricsPath, promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>
             <head><title>ASG Deployer</title></head>
             <body>
             <h1>ASG Deployer</h1>
             <p><a href='` + metricsPath + `'>Metrics</a></p>
             </body>
             </html>`))
	})
	return r
}

// NewServer starts serving the metrics of g on addr. Close it once the
// deployment is done.
func NewServer(addr, metricsPath string, g prometheus.Gatherer) *http.Server {
	srv := &http.Server{
		Addr:    addr,
		Handler: NewHandler(metricsPath, g),
	}

	go func() {
		log.Infoln("Listening on", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorf("Metrics server failed: %v", err)
		}
	}()
	return srv
}
