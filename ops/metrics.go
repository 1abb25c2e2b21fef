package ops

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Sessions tracks the number of live game sessions.
	Sessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "splashsrv",
		Name:      "sessions",
		Help:      "Live game sessions.",
	})

	// Logins counts handshake attempts by verdict.
	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "splashsrv",
		Name:      "logins_total",
		Help:      "Login attempts by result.",
	}, []string{"result"})

	// Packets counts inbound game packets by opcode.
	Packets = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "splashsrv",
		Name:      "packets_total",
		Help:      "Inbound game packets by opcode.",
	}, []string{"op"})
)
