package interfaces

import "warranty_hub/internal/domain/entities"

// IEventNotifier publishes dashboard events (e.g. to the MQTT broker the
// dashboard subscribes to). All publishes are best-effort: callers log a
// returned error and move on, they never fail an operation over it.

type IEventNotifier interface {
	SessionExpired(accountID string) error
	ClaimTransitioned(rec entities.WorkflowAuditRecord) error
	AppointmentScheduled(appt entities.Appointment) error
}
