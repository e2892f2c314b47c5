package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/evandrarf/mock-interview-be/internal/delivery/http/entity"
	"github.com/evandrarf/mock-interview-be/internal/delivery/http/repository"
	internalEntity "github.com/evandrarf/mock-interview-be/internal/entity"
	"github.com/evandrarf/mock-interview-be/internal/pkg/metrics"
	"github.com/evandrarf/mock-interview-be/internal/pkg/proctor"
	"github.com/evandrarf/mock-interview-be/internal/pkg/validate"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const ReasonMotion = "motion"

type ProctorUsecase interface {
	Activate(ctx context.Context, userID uint, interviewID string) (*entity.ProctorResponse, error)
	Deactivate(ctx context.Context, userID uint, interviewID string) (*entity.ProctorResponse, error)
	State(ctx context.Context, userID uint, interviewID string) (*entity.ProctorResponse, error)
	RecordViolation(ctx context.Context, userID uint, interviewID, reason string) (*entity.ProctorResponse, error)
	AnalyzeFrames(ctx context.Context, userID uint, interviewID string, req entity.FrameRequest) (*entity.ProctorResponse, error)
	Events(ctx context.Context, userID uint, interviewID string) ([]entity.ProctorEventItem, error)
}

type ProctorConfig struct {
	DB         *gorm.DB
	Registry   *proctor.Registry
	Repository repository.InterviewRepository
	Interviews InterviewUsecase
	Log        *logrus.Logger
}

type proctorUsecase struct {
	cfg ProctorConfig
}

func NewProctorUsecase(cfg ProctorConfig) ProctorUsecase {
	if cfg.Registry == nil {
		cfg.Registry = proctor.NewRegistry()
	}
	if cfg.Log == nil {
		cfg.Log = logrus.New()
	}
	return &proctorUsecase{cfg: cfg}
}

func (u *proctorUsecase) findOwned(userID uint, interviewID string) (*internalEntity.Interview, error) {
	interview, err := u.cfg.Repository.FindInterviewByID(u.cfg.DB, interviewID)
	if err != nil {
		return nil, notFound(err, ErrInterviewNotFound)
	}
	if interview.UserID != userID {
		return nil, ErrInterviewNotFound
	}
	return interview, nil
}

func (u *proctorUsecase) findOpen(userID uint, interviewID string) (*internalEntity.Interview, error) {
	interview, err := u.findOwned(userID, interviewID)
	if err != nil {
		return nil, err
	}
	if interview.Status != internalEntity.InterviewStatusInProgress {
		return nil, ErrInterviewClosed
	}
	return interview, nil
}

func (u *proctorUsecase) Activate(ctx context.Context, userID uint, interviewID string) (*entity.ProctorResponse, error) {
	if _, err := u.findOpen(userID, interviewID); err != nil {
		return nil, err
	}
	policy := u.cfg.Registry.Get(interviewID)
	policy.Activate()
	return &entity.ProctorResponse{InterviewID: interviewID, State: policy.Snapshot()}, nil
}

// Deactivate releases the policy; a later Activate starts from a clean slate.
func (u *proctorUsecase) Deactivate(ctx context.Context, userID uint, interviewID string) (*entity.ProctorResponse, error) {
	interview, err := u.findOwned(userID, interviewID)
	if err != nil {
		return nil, err
	}
	u.cfg.Registry.Remove(interviewID)
	return &entity.ProctorResponse{InterviewID: interviewID, State: u.snapshot(interview)}, nil
}

func (u *proctorUsecase) State(ctx context.Context, userID uint, interviewID string) (*entity.ProctorResponse, error) {
	interview, err := u.findOwned(userID, interviewID)
	if err != nil {
		return nil, err
	}
	return &entity.ProctorResponse{InterviewID: interviewID, State: u.snapshot(interview)}, nil
}

// snapshot reports a terminated state for interviews whose policy was already released.
func (u *proctorUsecase) snapshot(interview *internalEntity.Interview) proctor.Snapshot {
	if policy, ok := u.cfg.Registry.Lookup(interview.InterviewID); ok {
		return policy.Snapshot()
	}
	s := u.cfg.Registry.Idle()
	if interview.Status == internalEntity.InterviewStatusTerminated {
		s.State = proctor.StateTerminated
	}
	return s
}

func (u *proctorUsecase) RecordViolation(ctx context.Context, userID uint, interviewID, reason string) (*entity.ProctorResponse, error) {
	interview, err := u.findOpen(userID, interviewID)
	if err != nil {
		return nil, err
	}
	return u.record(ctx, interview, reason)
}

func (u *proctorUsecase) AnalyzeFrames(ctx context.Context, userID uint, interviewID string, req entity.FrameRequest) (*entity.ProctorResponse, error) {
	interview, err := u.findOpen(userID, interviewID)
	if err != nil {
		return nil, err
	}

	prev, err := proctor.DecodeFrame(req.Previous)
	if err != nil {
		return nil, validate.NewFieldsError(map[string]string{"previous": err.Error()})
	}
	cur, err := proctor.DecodeFrame(req.Current)
	if err != nil {
		return nil, validate.NewFieldsError(map[string]string{"current": err.Error()})
	}
	detected, fraction, err := proctor.DetectMotion(prev, cur)
	if err != nil {
		return nil, validate.NewFieldsError(map[string]string{"current": err.Error()})
	}
	measurement := &entity.MotionMeasurement{ChangedFraction: fraction, Detected: detected}

	if !detected {
		return &entity.ProctorResponse{InterviewID: interviewID, State: u.snapshot(interview), Motion: measurement}, nil
	}

	res, err := u.record(ctx, interview, ReasonMotion)
	if err != nil {
		return nil, err
	}
	res.Motion = measurement
	return res, nil
}

// record applies one violation and persists the resulting event. Violations for
// interviews without a policy are ignored. A termination closes the interview,
// generates its report and releases the policy.
func (u *proctorUsecase) record(ctx context.Context, interview *internalEntity.Interview, reason string) (*entity.ProctorResponse, error) {
	interviewID := interview.InterviewID
	policy, found := u.cfg.Registry.Lookup(interviewID)
	if !found {
		return &entity.ProctorResponse{InterviewID: interviewID, State: u.snapshot(interview)}, nil
	}
	event, ok := policy.RecordViolation(reason)
	res := &entity.ProctorResponse{InterviewID: interviewID, Recorded: ok, State: policy.Snapshot()}
	if !ok {
		return res, nil
	}
	res.Event = &event

	log := u.cfg.Log.WithFields(logrus.Fields{
		"interview_id":  interviewID,
		"kind":          event.Kind,
		"reason":        reason,
		"warning_count": event.WarningCount,
	})
	metrics.ProctorEvents.WithLabelValues(string(event.Kind), reason).Inc()

	if err := u.cfg.Repository.CreateProctoringEvent(u.cfg.DB, &internalEntity.ProctoringEvent{
		InterviewID:  interviewID,
		Kind:         string(event.Kind),
		Reason:       reason,
		WarningCount: event.WarningCount,
		CreatedAt:    event.At,
	}); err != nil {
		log.WithError(err).Error("failed to persist proctoring event")
	}

	if event.Kind != proctor.EventTerminated {
		log.Info("proctoring warning")
		return res, nil
	}

	log.Warn("interview terminated by proctoring")
	u.cfg.Registry.Remove(interviewID)

	payload, err := u.cfg.Interviews.Terminate(ctx, interviewID, reason)
	if err != nil {
		return nil, fmt.Errorf("failed to terminate interview: %w", err)
	}
	var report entity.ReportResponse
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	res.Report = &report
	return res, nil
}

func (u *proctorUsecase) Events(ctx context.Context, userID uint, interviewID string) ([]entity.ProctorEventItem, error) {
	if _, err := u.findOwned(userID, interviewID); err != nil {
		return nil, err
	}
	events, err := u.cfg.Repository.FindProctoringEventsByInterviewID(u.cfg.DB, interviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to get proctoring events: %w", err)
	}

	items := make([]entity.ProctorEventItem, 0, len(events))
	for _, e := range events {
		items = append(items, entity.ProctorEventItem{
			Kind:         e.Kind,
			Reason:       e.Reason,
			WarningCount: e.WarningCount,
			At:           e.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return items, nil
}
