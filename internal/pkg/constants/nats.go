package constants

// NATS subjects
const (
	SubjectAppointmentBooked    = "appointment.booked"
	SubjectAppointmentConfirmed = "appointment.confirmed"
	SubjectAppointmentCancelled = "appointment.cancelled"
	SubjectAppointmentCompleted = "appointment.completed"
	// SubjectAppointmentAll matches every appointment lifecycle event
	SubjectAppointmentAll = "appointment.*"

	SubjectMessageSent = "message.sent"

	SubjectDentistUpdated = "dentist.updated"
)
