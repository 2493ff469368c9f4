package resume

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"resumeai-backend/internal/llm"
	"resumeai-backend/internal/shared/metrics"
	"resumeai-backend/internal/shared/telemetry"
)

// StepCount is the number of ordered builder steps
// (Basic Info, Summary, Experience, Education, Projects, Skills & Certs, Preview).
const StepCount = 7

// List names for entry mutations.
const (
	ListEducation  = "education"
	ListProjects   = "projects"
	ListExperience = "experience"
)

// Editor errors mapped to HTTP statuses by the handler.
var (
	ErrNotFound    = errors.New("entry not found")
	ErrMissingRole = errors.New("desired role required")
)

const minPolishLen = 5

// State is a snapshot of one editing session.
type State struct {
	Document Document `json:"resume"`
	Step     int      `json:"step"`
	Saving   bool     `json:"saving"`
}

// Editor keeps one in-memory editing session per user and persists each
// session's document with a debounced wholesale write.
type Editor struct {
	repo  Repo
	ai    llm.Client
	quiet time.Duration

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	mu     sync.Mutex
	doc    Document
	step   int
	timer  *time.Timer
	saving bool
	closed bool
}

// NewEditor constructs an Editor. quiet is the autosave debounce period.
func NewEditor(repo Repo, ai llm.Client, quiet time.Duration) *Editor {
	if quiet <= 0 {
		quiet = 2 * time.Second
	}
	return &Editor{
		repo:     repo,
		ai:       ai,
		quiet:    quiet,
		sessions: make(map[string]*session),
	}
}

// Load returns the session state for a user, hydrating from the repo on
// first access. Read failures leave the empty default document.
func (e *Editor) Load(ctx context.Context, userID string) State {
	s := e.session(ctx, userID)
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{Document: s.doc.Clone(), Step: s.step, Saving: s.saving}
}

func (e *Editor) session(ctx context.Context, userID string) *session {
	e.mu.Lock()
	if s, ok := e.sessions[userID]; ok {
		e.mu.Unlock()
		return s
	}
	s := &session{doc: EmptyDocument(), step: 1}
	e.sessions[userID] = s
	s.mu.Lock()
	e.mu.Unlock()
	defer s.mu.Unlock()

	doc, found, err := e.repo.Get(ctx, userID)
	if err != nil {
		telemetry.Warn("resume.load_failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return s
	}
	if found {
		s.doc = doc
	}
	return s
}

// UpdatePersonal replaces one personal info field.
func (e *Editor) UpdatePersonal(ctx context.Context, userID, field, value string) error {
	return e.mutate(ctx, userID, func(doc *Document) error {
		switch field {
		case "fullName":
			doc.PersonalInfo.FullName = value
		case "role":
			doc.PersonalInfo.Role = value
		case "email":
			doc.PersonalInfo.Email = value
		case "phone":
			doc.PersonalInfo.Phone = value
		case "linkedin":
			doc.PersonalInfo.LinkedIn = value
		case "github":
			doc.PersonalInfo.GitHub = value
		case "portfolio":
			doc.PersonalInfo.Portfolio = value
		default:
			return ErrInvalidInput
		}
		return nil
	})
}

// UpdateSummary replaces the summary.
func (e *Editor) UpdateSummary(ctx context.Context, userID, summary string) error {
	return e.mutate(ctx, userID, func(doc *Document) error {
		doc.Summary = summary
		return nil
	})
}

// UpdateSkills replaces one skills field.
func (e *Editor) UpdateSkills(ctx context.Context, userID, field, value string) error {
	return e.mutate(ctx, userID, func(doc *Document) error {
		switch field {
		case "languages":
			doc.Skills.Languages = value
		case "frameworks":
			doc.Skills.Frameworks = value
		case "tools":
			doc.Skills.Tools = value
		default:
			return ErrInvalidInput
		}
		return nil
	})
}

// AddEducation appends an empty education entry of the given type.
func (e *Editor) AddEducation(ctx context.Context, userID, eduType string) (EducationEntry, error) {
	if !ValidEducationType(eduType) {
		return EducationEntry{}, ErrInvalidInput
	}
	entry := EducationEntry{ID: uuid.NewString(), Type: eduType}
	err := e.mutate(ctx, userID, func(doc *Document) error {
		doc.Education = append(doc.Education, entry)
		return nil
	})
	return entry, err
}

// AddProject appends an empty project entry.
func (e *Editor) AddProject(ctx context.Context, userID string) (ProjectEntry, error) {
	entry := ProjectEntry{ID: uuid.NewString()}
	err := e.mutate(ctx, userID, func(doc *Document) error {
		doc.Projects = append(doc.Projects, entry)
		return nil
	})
	return entry, err
}

// AddExperience appends an empty work experience entry.
func (e *Editor) AddExperience(ctx context.Context, userID string) (ExperienceEntry, error) {
	entry := ExperienceEntry{ID: uuid.NewString()}
	err := e.mutate(ctx, userID, func(doc *Document) error {
		doc.WorkExperience = append(doc.WorkExperience, entry)
		return nil
	})
	return entry, err
}

// UpdateEntry replaces one field of a list entry by id. An absent id is a
// no-op; entry ids and education types are immutable.
func (e *Editor) UpdateEntry(ctx context.Context, userID, list, id, field, value string) error {
	return e.mutate(ctx, userID, func(doc *Document) error {
		switch list {
		case ListEducation:
			for i := range doc.Education {
				if doc.Education[i].ID == id {
					return setEducationField(&doc.Education[i], field, value)
				}
			}
		case ListProjects:
			for i := range doc.Projects {
				if doc.Projects[i].ID == id {
					return setProjectField(&doc.Projects[i], field, value)
				}
			}
		case ListExperience:
			for i := range doc.WorkExperience {
				if doc.WorkExperience[i].ID == id {
					return setExperienceField(&doc.WorkExperience[i], field, value)
				}
			}
		default:
			return ErrInvalidInput
		}
		return nil
	})
}

// RemoveEntry deletes a list entry by id. An absent id is a no-op.
func (e *Editor) RemoveEntry(ctx context.Context, userID, list, id string) error {
	return e.mutate(ctx, userID, func(doc *Document) error {
		switch list {
		case ListEducation:
			doc.Education = removeByID(doc.Education, id, func(e EducationEntry) string { return e.ID })
		case ListProjects:
			doc.Projects = removeByID(doc.Projects, id, func(p ProjectEntry) string { return p.ID })
		case ListExperience:
			doc.WorkExperience = removeByID(doc.WorkExperience, id, func(x ExperienceEntry) string { return x.ID })
		default:
			return ErrInvalidInput
		}
		return nil
	})
}

// GenerateSummary asks the AI gateway for a professional summary based on
// the desired role and skill keywords, then stores the result.
func (e *Editor) GenerateSummary(ctx context.Context, userID string) (string, error) {
	s := e.session(ctx, userID)
	s.mu.Lock()
	role := strings.TrimSpace(s.doc.PersonalInfo.Role)
	keywords := strings.TrimSpace(s.doc.Skills.Languages + " " + s.doc.Skills.Frameworks)
	s.mu.Unlock()

	if role == "" {
		return "", ErrMissingRole
	}

	summary := e.summaryText(ctx, role, keywords)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return summary, nil
	}
	s.doc.Summary = summary
	e.scheduleSaveLocked(userID, s)
	return summary, nil
}

func (e *Editor) summaryText(ctx context.Context, role, keywords string) string {
	metrics.IncAIRequest()
	start := time.Now()
	text, err := e.ai.GenerateText(ctx, llm.SummaryPrompt(role, keywords))
	metrics.ObserveAIDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if errors.Is(err, llm.ErrNotConfigured) {
		metrics.IncAIFallback()
		return "AI Summary unavailable: No API Key provided."
	}
	if err != nil {
		metrics.IncAIFallback()
		telemetry.Error("resume.generate_summary_failed", map[string]any{"error": err.Error()})
		return "Error generating summary. Please try again."
	}
	return text
}

// PolishEntry rewrites one entry description as a resume bullet point.
// Descriptions shorter than 5 chars are returned unchanged without a call.
func (e *Editor) PolishEntry(ctx context.Context, userID, list, id string) (string, error) {
	if list != ListProjects && list != ListExperience {
		return "", ErrInvalidInput
	}

	s := e.session(ctx, userID)
	s.mu.Lock()
	text, found := entryDescription(&s.doc, list, id)
	s.mu.Unlock()
	if !found {
		return "", ErrNotFound
	}
	if len(text) < minPolishLen {
		return text, nil
	}

	polished := e.polishText(ctx, text)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return polished, nil
	}
	setEntryDescription(&s.doc, list, id, polished)
	e.scheduleSaveLocked(userID, s)
	return polished, nil
}

func (e *Editor) polishText(ctx context.Context, text string) string {
	metrics.IncAIRequest()
	start := time.Now()
	out, err := e.ai.GenerateText(ctx, llm.PolishPrompt(text))
	metrics.ObserveAIDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		metrics.IncAIFallback()
		if !errors.Is(err, llm.ErrNotConfigured) {
			telemetry.Error("resume.polish_failed", map[string]any{"error": err.Error()})
		}
		return text
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return text
	}
	return out
}

// StepNext advances the builder step, clamped to the last step.
func (e *Editor) StepNext(ctx context.Context, userID string) int {
	return e.step(ctx, userID, func(step int) int { return step + 1 })
}

// StepPrev moves the builder step back, clamped to the first step.
func (e *Editor) StepPrev(ctx context.Context, userID string) int {
	return e.step(ctx, userID, func(step int) int { return step - 1 })
}

// StepGoto jumps to a step, clamped to [1, StepCount].
func (e *Editor) StepGoto(ctx context.Context, userID string, step int) int {
	return e.step(ctx, userID, func(int) int { return step })
}

func (e *Editor) step(ctx context.Context, userID string, next func(int) int) int {
	s := e.session(ctx, userID)
	s.mu.Lock()
	defer s.mu.Unlock()
	step := next(s.step)
	if step < 1 {
		step = 1
	}
	if step > StepCount {
		step = StepCount
	}
	s.step = step
	return step
}

// Saving reports whether a persistence write is in flight for the user.
func (e *Editor) Saving(userID string) bool {
	e.mu.Lock()
	s, ok := e.sessions[userID]
	e.mu.Unlock()
	if !ok {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saving
}

// Flush performs any pending write immediately.
func (e *Editor) Flush(ctx context.Context, userID string) error {
	e.mu.Lock()
	s, ok := e.sessions[userID]
	e.mu.Unlock()
	if !ok {
		return nil
	}

	s.mu.Lock()
	if s.timer == nil || s.closed {
		s.mu.Unlock()
		return nil
	}
	s.timer.Stop()
	s.timer = nil
	snapshot := s.doc.Clone()
	s.mu.Unlock()

	metrics.IncAutosave()
	if err := e.repo.Set(ctx, userID, snapshot); err != nil {
		metrics.IncAutosaveFailed()
		return err
	}
	return nil
}

// Close drops the session and cancels any pending write. The stored copy
// is untouched.
func (e *Editor) Close(userID string) {
	e.mu.Lock()
	s, ok := e.sessions[userID]
	delete(e.sessions, userID)
	e.mu.Unlock()
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (e *Editor) mutate(ctx context.Context, userID string, fn func(*Document) error) error {
	s := e.session(ctx, userID)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(&s.doc); err != nil {
		return err
	}
	e.scheduleSaveLocked(userID, s)
	return nil
}

// scheduleSaveLocked cancels the pending write and schedules a fresh one.
// Callers must hold s.mu.
func (e *Editor) scheduleSaveLocked(userID string, s *session) {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(e.quiet, func() {
		e.fire(userID, s)
	})
}

// fire runs when the quiet period elapses. It snapshots the document at
// fire time so the write always reflects the latest state.
func (e *Editor) fire(userID string, s *session) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.saving = true
	snapshot := s.doc.Clone()
	s.mu.Unlock()

	metrics.IncAutosave()
	err := e.repo.Set(context.Background(), userID, snapshot)
	if err != nil {
		metrics.IncAutosaveFailed()
		telemetry.Error("resume.autosave_failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}

	s.mu.Lock()
	s.saving = false
	s.mu.Unlock()
}

func setEducationField(entry *EducationEntry, field, value string) error {
	switch field {
	case "institution":
		entry.Institution = value
	case "degree":
		entry.Degree = value
	case "specialization":
		entry.Specialization = value
	case "startYear":
		entry.StartYear = value
	case "endYear":
		entry.EndYear = value
	case "score":
		entry.Score = value
	case "location":
		entry.Location = value
	default:
		return ErrInvalidInput
	}
	return nil
}

func setProjectField(entry *ProjectEntry, field, value string) error {
	switch field {
	case "title":
		entry.Title = value
	case "location":
		entry.Location = value
	case "startDate":
		entry.StartDate = value
	case "endDate":
		entry.EndDate = value
	case "description":
		entry.Description = value
	default:
		return ErrInvalidInput
	}
	return nil
}

func setExperienceField(entry *ExperienceEntry, field, value string) error {
	switch field {
	case "company":
		entry.Company = value
	case "designation":
		entry.Designation = value
	case "duration":
		entry.Duration = value
	case "currentSalary":
		entry.CurrentSalary = value
	case "expectedSalary":
		entry.ExpectedSalary = value
	case "noticePeriod":
		entry.NoticePeriod = value
	case "description":
		entry.Description = value
	default:
		return ErrInvalidInput
	}
	return nil
}

func removeByID[T any](entries []T, id string, idOf func(T) string) []T {
	for i := range entries {
		if idOf(entries[i]) == id {
			return append(entries[:i:i], entries[i+1:]...)
		}
	}
	return entries
}

func entryDescription(doc *Document, list, id string) (string, bool) {
	switch list {
	case ListProjects:
		for i := range doc.Projects {
			if doc.Projects[i].ID == id {
				return doc.Projects[i].Description, true
			}
		}
	case ListExperience:
		for i := range doc.WorkExperience {
			if doc.WorkExperience[i].ID == id {
				return doc.WorkExperience[i].Description, true
			}
		}
	}
	return "", false
}

func setEntryDescription(doc *Document, list, id, value string) {
	switch list {
	case ListProjects:
		for i := range doc.Projects {
			if doc.Projects[i].ID == id {
				doc.Projects[i].Description = value
				return
			}
		}
	case ListExperience:
		for i := range doc.WorkExperience {
			if doc.WorkExperience[i].ID == id {
				doc.WorkExperience[i].Description = value
				return
			}
		}
	}
}
