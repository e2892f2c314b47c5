package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	internalEntity "github.com/evandrarf/mock-interview-be/internal/entity"
	"gorm.io/gorm"
)

// memRepo is an in-memory InterviewRepository.
type memRepo struct {
	mu         sync.Mutex
	nextID     uint
	interviews map[string]*internalEntity.Interview
	answers    map[uint]internalEntity.InterviewAnswer
	reports    map[string]internalEntity.InterviewReport
	events     []internalEntity.ProctoringEvent
	bank       []internalEntity.QuestionBankEntry
	failCreate error
}

func newMemRepo() *memRepo {
	return &memRepo{
		interviews: make(map[string]*internalEntity.Interview),
		answers:    make(map[uint]internalEntity.InterviewAnswer),
		reports:    make(map[string]internalEntity.InterviewReport),
	}
}

func (r *memRepo) id() uint {
	r.nextID++
	return r.nextID
}

func (r *memRepo) CreateInterviewWithQuestions(_ *gorm.DB, interview *internalEntity.Interview, questions []internalEntity.InterviewQuestion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate != nil {
		return r.failCreate
	}
	interview.ID = r.id()
	interview.CreatedAt = time.Now()
	for i := range questions {
		questions[i].ID = r.id()
		questions[i].InterviewID = interview.InterviewID
	}
	interview.Questions = questions
	stored := *interview
	r.interviews[interview.InterviewID] = &stored
	return nil
}

func (r *memRepo) FindInterviewByID(_ *gorm.DB, interviewID string) (*internalEntity.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.interviews[interviewID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *i
	return &cp, nil
}

func (r *memRepo) FindInterviewsByUserID(_ *gorm.DB, userID uint) ([]internalEntity.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []internalEntity.Interview
	for _, i := range r.interviews {
		if i.UserID == userID {
			out = append(out, *i)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID > out[b].ID })
	return out, nil
}

func (r *memRepo) FinalizeInterview(_ *gorm.DB, interviewID, status, reason string, completedAt time.Time, report *internalEntity.InterviewReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reports[interviewID]; ok {
		return gorm.ErrDuplicatedKey
	}
	if i, ok := r.interviews[interviewID]; ok && i.Status == internalEntity.InterviewStatusInProgress {
		i.Status = status
		i.TerminationReason = reason
		i.CompletedAt = &completedAt
	}
	report.ID = r.id()
	r.reports[interviewID] = *report
	return nil
}

func (r *memRepo) FindQuestion(_ *gorm.DB, interviewID string, questionID uint) (*internalEntity.InterviewQuestion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.interviews[interviewID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for _, q := range i.Questions {
		if q.ID == questionID {
			cp := q
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memRepo) CreateAnswer(_ *gorm.DB, answer *internalEntity.InterviewAnswer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.answers[answer.QuestionID]; ok {
		return gorm.ErrDuplicatedKey
	}
	answer.ID = r.id()
	r.answers[answer.QuestionID] = *answer
	return nil
}

func (r *memRepo) FindAnswerByQuestionID(_ *gorm.DB, questionID uint) (*internalEntity.InterviewAnswer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.answers[questionID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}

func (r *memRepo) FindAnswersByInterviewID(_ *gorm.DB, interviewID string) ([]internalEntity.InterviewAnswer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []internalEntity.InterviewAnswer
	for _, a := range r.answers {
		if a.InterviewID == interviewID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out, nil
}

func (r *memRepo) FindReportByInterviewID(_ *gorm.DB, interviewID string) (*internalEntity.InterviewReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rep, ok := r.reports[interviewID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &rep, nil
}

func (r *memRepo) CreateProctoringEvent(_ *gorm.DB, event *internalEntity.ProctoringEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	event.ID = r.id()
	r.events = append(r.events, *event)
	return nil
}

func (r *memRepo) FindProctoringEventsByInterviewID(_ *gorm.DB, interviewID string) ([]internalEntity.ProctoringEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []internalEntity.ProctoringEvent
	for _, e := range r.events {
		if e.InterviewID == interviewID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memRepo) UpsertBankEntries(_ *gorm.DB, entries []internalEntity.QuestionBankEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bank = append([]internalEntity.QuestionBankEntry(nil), entries...)
	return nil
}

func (r *memRepo) FindBankEntries(_ *gorm.DB, category string) ([]internalEntity.QuestionBankEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []internalEntity.QuestionBankEntry
	for _, e := range r.bank {
		if category == "" || e.Category == category {
			out = append(out, e)
		}
	}
	return out, nil
}

// scriptedGenerator answers prompts in order; an error entry fails that call.
type scriptedGenerator struct {
	mu        sync.Mutex
	responses []any
	calls     int
}

func (g *scriptedGenerator) Name() string { return "scripted" }

func (g *scriptedGenerator) GenerateText(_ context.Context, _ string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.calls >= len(g.responses) {
		g.calls++
		return "", errors.New("no scripted response")
	}
	r := g.responses[g.calls]
	g.calls++
	if err, ok := r.(error); ok {
		return "", err
	}
	return r.(string), nil
}

func (g *scriptedGenerator) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

// memUsers is an in-memory UserRepository.
type memUsers struct {
	mu     sync.Mutex
	nextID uint
	users  map[string]internalEntity.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: make(map[string]internalEntity.User)}
}

func (r *memUsers) Create(_ *gorm.DB, user *internalEntity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	r.users[user.Email] = *user
	return nil
}

func (r *memUsers) FindByEmail(_ *gorm.DB, email string) (*internalEntity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *memUsers) FindByID(_ *gorm.DB, id uint) (*internalEntity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			cp := u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
