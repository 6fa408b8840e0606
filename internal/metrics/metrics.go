package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclub_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitclub_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	SlotsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitclub_availability_slots_created_total",
			Help: "Total number of availability slots created",
		},
	)

	SlotConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitclub_availability_slot_conflicts_total",
			Help: "Total number of availability occurrences skipped as conflicts",
		},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclub_bookings_total",
			Help: "Total number of PT session booking attempts",
		},
		[]string{"status"},
	)

	RoomAssignmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclub_room_assignments_total",
			Help: "Total number of room assignment attempts",
		},
		[]string{"status"},
	)

	GoalsCompletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitclub_goals_completed_total",
			Help: "Total number of fitness goals auto-completed by metric entries",
		},
	)

	EquipmentIssuesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitclub_equipment_issues_total",
			Help: "Total number of equipment issues logged",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclub_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fitclub_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordSlotsCreated(created, conflicted int) {
	SlotsCreatedTotal.Add(float64(created))
	SlotConflictsTotal.Add(float64(conflicted))
}

func RecordBooking(status string) {
	BookingsTotal.WithLabelValues(status).Inc()
}

func RecordRoomAssignment(status string) {
	RoomAssignmentsTotal.WithLabelValues(status).Inc()
}

func RecordGoalsCompleted(n int) {
	GoalsCompletedTotal.Add(float64(n))
}

func RecordEquipmentIssue() {
	EquipmentIssuesTotal.Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
