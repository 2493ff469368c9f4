package resume

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"resumeai-backend/internal/llm"
)

type recordingRepo struct {
	mu     sync.Mutex
	stored Document
	found  bool
	getErr error
	setErr error
	sets   []Document
}

func (r *recordingRepo) Get(ctx context.Context, userID string) (Document, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stored.Clone(), r.found, r.getErr
}

func (r *recordingRepo) Set(ctx context.Context, userID string, doc Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.setErr != nil {
		return r.setErr
	}
	r.sets = append(r.sets, doc.Clone())
	return nil
}

func (r *recordingRepo) writes() []Document {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Document(nil), r.sets...)
}

type stubLLM struct {
	textFn func(prompt string) (string, error)
}

func (s stubLLM) GenerateText(ctx context.Context, prompt string) (string, error) {
	if s.textFn == nil {
		return "", llm.ErrNotConfigured
	}
	return s.textFn(prompt)
}

func (s stubLLM) GenerateJSON(ctx context.Context, prompt string, schema *llm.Schema) (json.RawMessage, error) {
	return nil, llm.ErrNotConfigured
}

func (s stubLLM) Chat(ctx context.Context, system string, history []llm.Turn, message string) (string, error) {
	return "", llm.ErrNotConfigured
}

func waitForWrites(t *testing.T, repo *recordingRepo, want int) []Document {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		writes := repo.writes()
		if len(writes) >= want {
			return writes
		}
		time.Sleep(5 * time.Millisecond)
	}
	return repo.writes()
}

func TestAddEntriesAssignUniqueIDsAndPreserveOrder(t *testing.T) {
	repo := &recordingRepo{}
	editor := NewEditor(repo, stubLLM{}, time.Hour)
	ctx := context.Background()

	seen := make(map[string]bool)
	for _, eduType := range []string{EducationGraduation, EducationHigherSecondary, EducationSchooling} {
		entry, err := editor.AddEducation(ctx, "user-1", eduType)
		if err != nil {
			t.Fatalf("AddEducation(%s): %v", eduType, err)
		}
		if entry.ID == "" || seen[entry.ID] {
			t.Fatalf("expected fresh unique id, got %q", entry.ID)
		}
		seen[entry.ID] = true
	}

	first, err := editor.AddProject(ctx, "user-1")
	if err != nil {
		t.Fatalf("AddProject: %v", err)
	}
	second, err := editor.AddProject(ctx, "user-1")
	if err != nil {
		t.Fatalf("AddProject: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct project ids")
	}

	state := editor.Load(ctx, "user-1")
	if got := len(state.Document.Education); got != 3 {
		t.Fatalf("expected 3 education entries, got %d", got)
	}
	if state.Document.Education[0].Type != EducationGraduation ||
		state.Document.Education[1].Type != EducationHigherSecondary ||
		state.Document.Education[2].Type != EducationSchooling {
		t.Fatalf("expected insertion order preserved, got %+v", state.Document.Education)
	}
	if state.Document.Projects[0].ID != first.ID || state.Document.Projects[1].ID != second.ID {
		t.Fatalf("expected project order preserved")
	}
}

func TestAddEducationRejectsUnknownType(t *testing.T) {
	editor := NewEditor(&recordingRepo{}, stubLLM{}, time.Hour)
	if _, err := editor.AddEducation(context.Background(), "user-1", "Bootcamp"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdateEntryUnknownIDIsNoOp(t *testing.T) {
	repo := &recordingRepo{}
	editor := NewEditor(repo, stubLLM{}, time.Hour)
	ctx := context.Background()

	entry, err := editor.AddProject(ctx, "user-1")
	if err != nil {
		t.Fatalf("AddProject: %v", err)
	}
	if err := editor.UpdateEntry(ctx, "user-1", ListProjects, entry.ID, "title", "My Project"); err != nil {
		t.Fatalf("UpdateEntry: %v", err)
	}
	if err := editor.UpdateEntry(ctx, "user-1", ListProjects, "no-such-id", "title", "Other"); err != nil {
		t.Fatalf("UpdateEntry with unknown id: %v", err)
	}

	state := editor.Load(ctx, "user-1")
	if len(state.Document.Projects) != 1 || state.Document.Projects[0].Title != "My Project" {
		t.Fatalf("unexpected projects: %+v", state.Document.Projects)
	}
}

func TestRemoveEntryUnknownIDIsNoOp(t *testing.T) {
	editor := NewEditor(&recordingRepo{}, stubLLM{}, time.Hour)
	ctx := context.Background()

	entry, err := editor.AddExperience(ctx, "user-1")
	if err != nil {
		t.Fatalf("AddExperience: %v", err)
	}
	if err := editor.RemoveEntry(ctx, "user-1", ListExperience, "no-such-id"); err != nil {
		t.Fatalf("RemoveEntry with unknown id: %v", err)
	}

	state := editor.Load(ctx, "user-1")
	if len(state.Document.WorkExperience) != 1 {
		t.Fatalf("expected entry to survive unknown-id remove")
	}

	if err := editor.RemoveEntry(ctx, "user-1", ListExperience, entry.ID); err != nil {
		t.Fatalf("RemoveEntry: %v", err)
	}
	state = editor.Load(ctx, "user-1")
	if len(state.Document.WorkExperience) != 0 {
		t.Fatalf("expected entry removed")
	}
}

func TestEducationTypeImmutableAfterCreation(t *testing.T) {
	editor := NewEditor(&recordingRepo{}, stubLLM{}, time.Hour)
	ctx := context.Background()

	entry, err := editor.AddEducation(ctx, "user-1", EducationGraduation)
	if err != nil {
		t.Fatalf("AddEducation: %v", err)
	}
	if err := editor.UpdateEntry(ctx, "user-1", ListEducation, entry.ID, "type", EducationSchooling); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for type update, got %v", err)
	}
}

func TestAutosaveCoalescesBurstsIntoOneWrite(t *testing.T) {
	repo := &recordingRepo{}
	editor := NewEditor(repo, stubLLM{}, 50*time.Millisecond)
	ctx := context.Background()

	for _, name := range []string{"J", "Ja", "Jan", "Jane", "Jane Doe"} {
		if err := editor.UpdatePersonal(ctx, "user-1", "fullName", name); err != nil {
			t.Fatalf("UpdatePersonal: %v", err)
		}
	}

	writes := waitForWrites(t, repo, 1)
	if len(writes) != 1 {
		t.Fatalf("expected exactly 1 write, got %d", len(writes))
	}
	if writes[0].PersonalInfo.FullName != "Jane Doe" {
		t.Fatalf("expected final state written, got %q", writes[0].PersonalInfo.FullName)
	}

	time.Sleep(150 * time.Millisecond)
	if got := len(repo.writes()); got != 1 {
		t.Fatalf("expected no extra writes, got %d", got)
	}
}

func TestCloseSuppressesPendingWrite(t *testing.T) {
	repo := &recordingRepo{}
	editor := NewEditor(repo, stubLLM{}, 50*time.Millisecond)
	ctx := context.Background()

	if err := editor.UpdateSummary(ctx, "user-1", "about to be discarded"); err != nil {
		t.Fatalf("UpdateSummary: %v", err)
	}
	editor.Close("user-1")

	time.Sleep(150 * time.Millisecond)
	if got := len(repo.writes()); got != 0 {
		t.Fatalf("expected pending write to be suppressed, got %d writes", got)
	}
}

func TestHydrationThenAddKeepsStoredEntries(t *testing.T) {
	stored := EmptyDocument()
	stored.PersonalInfo.FullName = "Jane Doe"
	stored.Education = append(stored.Education, EducationEntry{ID: "edu-1", Type: EducationGraduation, Institution: "MIT"})
	repo := &recordingRepo{stored: stored, found: true}

	editor := NewEditor(repo, stubLLM{}, time.Hour)
	ctx := context.Background()

	state := editor.Load(ctx, "user-1")
	if state.Document.PersonalInfo.FullName != "Jane Doe" {
		t.Fatalf("expected hydrated document")
	}

	if _, err := editor.AddEducation(ctx, "user-1", EducationSchooling); err != nil {
		t.Fatalf("AddEducation: %v", err)
	}
	state = editor.Load(ctx, "user-1")
	if len(state.Document.Education) != 2 {
		t.Fatalf("expected stored entry plus new one, got %d", len(state.Document.Education))
	}
	if state.Document.Education[0].Institution != "MIT" {
		t.Fatalf("expected stored entry to come first")
	}
	if state.Document.Education[1].Type != EducationSchooling {
		t.Fatalf("expected new entry to carry its creation type")
	}
}

func TestLoadFailureLeavesEmptyDefault(t *testing.T) {
	repo := &recordingRepo{getErr: errors.New("db down")}
	editor := NewEditor(repo, stubLLM{}, time.Hour)

	state := editor.Load(context.Background(), "user-1")
	if state.Document.PersonalInfo.FullName != "" || len(state.Document.Education) != 0 {
		t.Fatalf("expected empty default document, got %+v", state.Document)
	}
	if state.Step != 1 {
		t.Fatalf("expected step 1, got %d", state.Step)
	}
}

func TestGenerateSummaryRequiresRole(t *testing.T) {
	editor := NewEditor(&recordingRepo{}, stubLLM{}, time.Hour)
	if _, err := editor.GenerateSummary(context.Background(), "user-1"); !errors.Is(err, ErrMissingRole) {
		t.Fatalf("expected ErrMissingRole, got %v", err)
	}
}

func TestGenerateSummaryFallbacks(t *testing.T) {
	ctx := context.Background()

	prep := func(client llm.Client) *Editor {
		editor := NewEditor(&recordingRepo{}, client, time.Hour)
		if err := editor.UpdatePersonal(ctx, "user-1", "role", "Software Engineer"); err != nil {
			t.Fatalf("UpdatePersonal: %v", err)
		}
		return editor
	}

	editor := prep(llm.NotConfiguredClient{})
	summary, err := editor.GenerateSummary(ctx, "user-1")
	if err != nil {
		t.Fatalf("GenerateSummary: %v", err)
	}
	if summary != "AI Summary unavailable: No API Key provided." {
		t.Fatalf("unexpected no-key fallback: %q", summary)
	}

	editor = prep(stubLLM{textFn: func(string) (string, error) { return "", errors.New("boom") }})
	summary, err = editor.GenerateSummary(ctx, "user-1")
	if err != nil {
		t.Fatalf("GenerateSummary: %v", err)
	}
	if summary != "Error generating summary. Please try again." {
		t.Fatalf("unexpected error fallback: %q", summary)
	}

	editor = prep(stubLLM{textFn: func(prompt string) (string, error) {
		if !strings.Contains(prompt, "Software Engineer") {
			t.Fatalf("expected role in prompt")
		}
		return "A driven fresher engineer.", nil
	}})
	summary, err = editor.GenerateSummary(ctx, "user-1")
	if err != nil {
		t.Fatalf("GenerateSummary: %v", err)
	}
	if summary != "A driven fresher engineer." {
		t.Fatalf("unexpected summary: %q", summary)
	}
	state := editor.Load(ctx, "user-1")
	if state.Document.Summary != summary {
		t.Fatalf("expected summary stored in document")
	}
}

func TestPolishShortDescriptionSkipsGateway(t *testing.T) {
	called := false
	editor := NewEditor(&recordingRepo{}, stubLLM{textFn: func(string) (string, error) {
		called = true
		return "polished", nil
	}}, time.Hour)
	ctx := context.Background()

	entry, err := editor.AddProject(ctx, "user-1")
	if err != nil {
		t.Fatalf("AddProject: %v", err)
	}
	if err := editor.UpdateEntry(ctx, "user-1", ListProjects, entry.ID, "description", "abc"); err != nil {
		t.Fatalf("UpdateEntry: %v", err)
	}

	out, err := editor.PolishEntry(ctx, "user-1", ListProjects, entry.ID)
	if err != nil {
		t.Fatalf("PolishEntry: %v", err)
	}
	if out != "abc" {
		t.Fatalf("expected unchanged text, got %q", out)
	}
	if called {
		t.Fatalf("expected no gateway call for short text")
	}
}

func TestPolishFailureKeepsOriginalText(t *testing.T) {
	editor := NewEditor(&recordingRepo{}, stubLLM{textFn: func(string) (string, error) {
		return "", errors.New("boom")
	}}, time.Hour)
	ctx := context.Background()

	entry, err := editor.AddExperience(ctx, "user-1")
	if err != nil {
		t.Fatalf("AddExperience: %v", err)
	}
	if err := editor.UpdateEntry(ctx, "user-1", ListExperience, entry.ID, "description", "built the data pipeline"); err != nil {
		t.Fatalf("UpdateEntry: %v", err)
	}

	out, err := editor.PolishEntry(ctx, "user-1", ListExperience, entry.ID)
	if err != nil {
		t.Fatalf("PolishEntry: %v", err)
	}
	if out != "built the data pipeline" {
		t.Fatalf("expected original text on failure, got %q", out)
	}
}

func TestStepNavigationClamped(t *testing.T) {
	editor := NewEditor(&recordingRepo{}, stubLLM{}, time.Hour)
	ctx := context.Background()

	if step := editor.StepPrev(ctx, "user-1"); step != 1 {
		t.Fatalf("expected clamp at 1, got %d", step)
	}
	if step := editor.StepGoto(ctx, "user-1", 99); step != StepCount {
		t.Fatalf("expected clamp at %d, got %d", StepCount, step)
	}
	if step := editor.StepNext(ctx, "user-1"); step != StepCount {
		t.Fatalf("expected clamp at %d, got %d", StepCount, step)
	}
	if step := editor.StepGoto(ctx, "user-1", 3); step != 3 {
		t.Fatalf("expected step 3, got %d", step)
	}
	if step := editor.StepNext(ctx, "user-1"); step != 4 {
		t.Fatalf("expected step 4, got %d", step)
	}
}

func TestFlushWritesPendingStateImmediately(t *testing.T) {
	repo := &recordingRepo{}
	editor := NewEditor(repo, stubLLM{}, time.Hour)
	ctx := context.Background()

	if err := editor.UpdateSummary(ctx, "user-1", "flushed"); err != nil {
		t.Fatalf("UpdateSummary: %v", err)
	}
	if err := editor.Flush(ctx, "user-1"); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	writes := repo.writes()
	if len(writes) != 1 || writes[0].Summary != "flushed" {
		t.Fatalf("expected one immediate write with latest state, got %+v", writes)
	}
}

func TestCertificationsSurviveRoundTrip(t *testing.T) {
	stored := EmptyDocument()
	stored.Certifications = append(stored.Certifications, CertificationEntry{ID: "cert-1", Title: "AWS SAA", IssuedBy: "Amazon"})
	repo := &recordingRepo{stored: stored, found: true}

	editor := NewEditor(repo, stubLLM{}, time.Hour)
	ctx := context.Background()

	if err := editor.UpdateSummary(ctx, "user-1", "note"); err != nil {
		t.Fatalf("UpdateSummary: %v", err)
	}
	if err := editor.Flush(ctx, "user-1"); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	writes := repo.writes()
	if len(writes) != 1 {
		t.Fatalf("expected one write, got %d", len(writes))
	}
	if len(writes[0].Certifications) != 1 || writes[0].Certifications[0].Title != "AWS SAA" {
		t.Fatalf("expected certifications to persist round-trip, got %+v", writes[0].Certifications)
	}
}
