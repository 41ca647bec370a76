package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// LifecycleMetrics covers the request/invoice lifecycle counters.
type LifecycleMetrics struct {
	RequestsCreatedTotal     prometheus.CounterVec
	RequestsAssignedTotal    prometheus.CounterVec
	RequestsDeletedTotal     prometheus.Counter
	InvoicesIssuedTotal      prometheus.Counter
	InvoicesIssuedAmount     prometheus.Counter
	InvoicesTransferredTotal prometheus.Counter
	NotifyFailuresTotal      prometheus.CounterVec
	AssignConflictsTotal     prometheus.Counter
}

func NewLifecycleMetrics() *LifecycleMetrics {
	return &LifecycleMetrics{
		RequestsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "translation_requests_created_total",
				Help: "Translation requests created",
			},
			[]string{"request_type"},
		),
		RequestsAssignedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "translation_requests_assigned_total",
				Help: "Translation requests assigned to a translator",
			},
			[]string{"request_type"},
		),
		RequestsDeletedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "translation_requests_deleted_total",
				Help: "Translation requests hard-deleted",
			},
		),
		InvoicesIssuedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "invoices_issued_total",
				Help: "Invoices issued at assignment",
			},
		),
		InvoicesIssuedAmount: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "invoices_issued_amount_total",
				Help: "Total amount of issued invoices",
			},
		),
		InvoicesTransferredTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "invoices_transferred_total",
				Help: "Invoices confirmed as transferred",
			},
		),
		NotifyFailuresTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notify_failures_total",
				Help: "Email notifications that failed to send",
			},
			[]string{"event"},
		),
		AssignConflictsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "assign_conflicts_total",
				Help: "Assignment attempts rejected because an invoice already exists",
			},
		),
	}
}
