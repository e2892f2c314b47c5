package entity

import "github.com/evandrarf/mock-interview-be/internal/pkg/proctor"

type ViolationRequest struct {
	Reason string `json:"reason" validate:"required,oneof=tab_switch window_blur motion"`
}

// FrameRequest carries two base64 frames sampled a few seconds apart.
type FrameRequest struct {
	Previous string `json:"previous" validate:"required"`
	Current  string `json:"current" validate:"required"`
}

type ProctorResponse struct {
	InterviewID string             `json:"interview_id"`
	Recorded    bool               `json:"recorded"`
	Event       *proctor.Event     `json:"event,omitempty"`
	State       proctor.Snapshot   `json:"state"`
	Report      *ReportResponse    `json:"report,omitempty"`
	Motion      *MotionMeasurement `json:"motion,omitempty"`
}

type MotionMeasurement struct {
	ChangedFraction float64 `json:"changed_fraction"`
	Detected        bool    `json:"detected"`
}

type ProctorEventItem struct {
	Kind         string `json:"kind"`
	Reason       string `json:"reason"`
	WarningCount int    `json:"warning_count"`
	At           string `json:"at"`
}
