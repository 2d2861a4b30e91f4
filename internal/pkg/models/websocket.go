package models

import (
	"encoding/json"
	"time"
)

// Frame is the envelope of every realtime push; Data depends on Event
// (a MessageEvent for message.new, an AppointmentEvent for appointment.updated)
type Frame struct {
	Event  string          `json:"event"`
	Data   json.RawMessage `json:"data"`
	SentAt time.Time       `json:"sent_at"`
}

// FrameError is the Data of an "error" frame
type FrameError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
