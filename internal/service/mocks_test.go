package service

import (
	"context"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"

	"dog-personality-quiz/internal/domain"
	"dog-personality-quiz/internal/repository"
)

type mockSessionRepo struct {
	mu        sync.Mutex
	sessions  map[string]domain.Session
	createErr error
	getErr    error
}

func newMockSessionRepo(sessions ...domain.Session) *mockSessionRepo {
	m := &mockSessionRepo{sessions: map[string]domain.Session{}}
	for _, s := range sessions {
		m.sessions[s.Slug] = s
	}
	return m
}

func (m *mockSessionRepo) Create(ctx context.Context, session domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.sessions[session.Slug] = session
	return nil
}

func (m *mockSessionRepo) GetBySlug(ctx context.Context, slug string) (domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return domain.Session{}, m.getErr
	}
	s, ok := m.sessions[slug]
	if !ok {
		return domain.Session{}, pgx.ErrNoRows
	}
	return s, nil
}

type mockQuestionRepo struct {
	mu          sync.Mutex
	questions   []domain.Question
	createCalls int
	listErr     error
}

func (m *mockQuestionRepo) CreateBatch(ctx context.Context, questions []domain.Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createCalls++
	for _, q := range questions {
		conflict := false
		for _, existing := range m.questions {
			if existing.SessionID == q.SessionID && existing.OrderIndex == q.OrderIndex {
				conflict = true
				break
			}
		}
		if !conflict {
			m.questions = append(m.questions, q)
		}
	}
	return nil
}

func (m *mockQuestionRepo) ListBySessionID(ctx context.Context, sessionID string) ([]domain.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []domain.Question
	for _, q := range m.questions {
		if q.SessionID == sessionID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *mockQuestionRepo) GetByID(ctx context.Context, id string) (domain.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, q := range m.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return domain.Question{}, pgx.ErrNoRows
}

type mockAnswerRepo struct {
	mu        sync.Mutex
	pairs     []domain.QAPair
	answers   map[string]domain.Answer
	listErr   error
	upsertErr error
}

func (m *mockAnswerRepo) Upsert(ctx context.Context, answer domain.Answer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.upsertErr != nil {
		return m.upsertErr
	}
	if m.answers == nil {
		m.answers = map[string]domain.Answer{}
	}
	m.answers[answer.QuestionID] = answer
	return nil
}

func (m *mockAnswerRepo) ListPairsBySessionID(ctx context.Context, sessionID string) ([]domain.QAPair, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]domain.QAPair(nil), m.pairs...), nil
}

// mockResultRepo copia los resultados al guardar y al leer, como haría el
// round-trip por JSONB.
type mockResultRepo struct {
	mu         sync.Mutex
	results    map[string]domain.Result
	creates    int
	createErr  error
	getErr     error
	updateErr  error
	raceWinner *domain.Result
}

func newMockResultRepo() *mockResultRepo {
	return &mockResultRepo{results: map[string]domain.Result{}}
}

func (m *mockResultRepo) Create(ctx context.Context, result domain.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creates++
	if m.createErr != nil {
		return m.createErr
	}
	if m.raceWinner != nil {
		m.results[result.SessionID] = cloneResult(*m.raceWinner)
		m.raceWinner = nil
		return repository.ErrResultExists
	}
	if _, ok := m.results[result.SessionID]; ok {
		return repository.ErrResultExists
	}
	m.results[result.SessionID] = cloneResult(result)
	return nil
}

func (m *mockResultRepo) GetBySessionID(ctx context.Context, sessionID string) (domain.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return domain.Result{}, m.getErr
	}
	r, ok := m.results[sessionID]
	if !ok {
		return domain.Result{}, pgx.ErrNoRows
	}
	return cloneResult(r), nil
}

func (m *mockResultRepo) SetImage(ctx context.Context, sessionID, trait, ref string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return m.updateErr
	}
	r, ok := m.results[sessionID]
	if !ok {
		return pgx.ErrNoRows
	}
	r = cloneResult(r)
	r.Images[trait] = ref
	m.results[sessionID] = r
	return nil
}

func cloneResult(r domain.Result) domain.Result {
	out := r
	out.Scores = make(domain.Scores, len(r.Scores))
	for k, v := range r.Scores {
		out.Scores[k] = v
	}
	out.Images = make(map[string]string, len(r.Images))
	for k, v := range r.Images {
		out.Images[k] = v
	}
	return out
}

// recordingLLM guarda los prompts recibidos.
type recordingLLM struct {
	mu       sync.Mutex
	response string
	err      error
	prompts  []string
}

func (m *recordingLLM) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, prompt)
	return m.response, m.err
}

func (m *recordingLLM) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

// recordingImages falla para los rasgos en failTraits y bloquea hasta el
// timeout para los de slowTraits.
type recordingImages struct {
	mu         sync.Mutex
	data       []byte
	failTraits map[string]error
	slowTraits map[string]bool
	prompts    []string
}

func (m *recordingImages) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	data := m.data
	m.mu.Unlock()

	for trait := range m.slowTraits {
		if strings.Contains(prompt, "expressing "+trait+",") {
			<-ctx.Done()
			return nil, ctx.Err()
		}
	}
	for trait, err := range m.failTraits {
		if strings.Contains(prompt, "expressing "+trait+",") {
			return nil, err
		}
	}
	return data, nil
}

func (m *recordingImages) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

func (m *recordingImages) setData(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
}

// memImageStore guarda en memoria y devuelve prefix + clave.
type memImageStore struct {
	mu      sync.Mutex
	prefix  string
	objects map[string][]byte
	err     error
}

func newMemImageStore() *memImageStore {
	return &memImageStore{prefix: "https://img.test/", objects: map[string][]byte{}}
}

func (m *memImageStore) Save(ctx context.Context, key string, data []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	m.objects[key] = append([]byte(nil), data...)
	return m.prefix + key, nil
}

func (m *memImageStore) saved(ref string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[strings.TrimPrefix(ref, m.prefix)]
	return data, ok
}

// barrierImages retiene cada llamada hasta que llegan n, así todas las
// regeneraciones leen el resultado antes de que cualquiera escriba.
type barrierImages struct {
	mu      sync.Mutex
	n       int
	arrived int
	release chan struct{}
}

func newBarrierImages(n int) *barrierImages {
	return &barrierImages{n: n, release: make(chan struct{})}
}

func (b *barrierImages) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	b.mu.Lock()
	b.arrived++
	if b.arrived == b.n {
		close(b.release)
	}
	b.mu.Unlock()

	select {
	case <-b.release:
		return []byte(prompt), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

type stubLimiter struct {
	mu    sync.Mutex
	allow bool
	keys  []string
}

func (s *stubLimiter) Allow(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys = append(s.keys, key)
	return s.allow
}
