package commands

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	promEnable = false
	promListen = ":9000"
)

func metricsRouter() http.Handler {
	r := httprouter.New()
	r.Handler(http.MethodGet, "/metrics", promhttp.Handler())
	r.GET("/healthz", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("ok"))
		if err != nil {
			log.WithError(err).Warn("unable to write health response")
		}
	})
	return r
}

func prometheus() {
	if !promEnable {
		log.Debug("prometheus exporter not enabled")
		return
	}

	log.WithField("addr", promListen).Info("starting prometheus exporter")
	go func() {
		if err := http.ListenAndServe(promListen, metricsRouter()); err != nil {
			log.WithError(err).Warn("prometheus failed to listen")
		}
	}()
}
