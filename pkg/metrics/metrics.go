package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "skillvue", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "skillvue", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	FeedbackSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "skillvue", Name: "feedback_submissions_total", Help: "Number of interview feedback submissions by outcome."},
		[]string{"outcome"},
	)
	PasscodeChecks = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "skillvue", Name: "passcode_checks_total", Help: "Number of room passcode checks by outcome."},
		[]string{"outcome"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(FeedbackSubmissions)
	reg.MustRegister(PasscodeChecks)
}
