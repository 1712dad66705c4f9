package server

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/sampath-kumaramd/mathlearn-project/internal/feedback"
	"github.com/sampath-kumaramd/mathlearn-project/internal/lessons"
	"github.com/sampath-kumaramd/mathlearn-project/internal/problems"
	"github.com/sampath-kumaramd/mathlearn-project/internal/profile"
	"github.com/sampath-kumaramd/mathlearn-project/internal/speech"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memStore is an in-memory profile.Store for handler tests.
type memStore struct {
	mu      sync.Mutex
	records map[string]*profile.Record
}

func newMemStore() *memStore {
	return &memStore{records: make(map[string]*profile.Record)}
}

func (m *memStore) Save(_ context.Context, rec *profile.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.StudentID] = rec
	return nil
}

func (m *memStore) Load(_ context.Context, studentID string) (*profile.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.records[studentID], nil
}

// fakeSynth returns fixed audio bytes.
type fakeSynth struct{}

func (fakeSynth) Synthesize(_ context.Context, _ string) ([]byte, error) {
	return []byte("mp3"), nil
}

func testRouter(t *testing.T, speaker *speech.Speaker) *gin.Engine {
	t.Helper()

	rng := rand.New(rand.NewPCG(1, 2))
	registry := profile.NewRegistry(newMemStore(), nil)
	assembler := lessons.NewAssembler(problems.NewCultural(rng, nil), rng, nil)
	engine := feedback.NewEngine(rng, nil)

	h := NewHandler(NewSessionStore(), registry, assembler, engine, speaker, nil, nil)
	return NewRouter(RouterConfig{Handler: h})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, router *gin.Engine, studentID string, impairment int) []*http.Cookie {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/login", gin.H{
		"student_id":      studentID,
		"impairment_type": impairment,
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d: %s", w.Code, w.Body)
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login set no cookie")
	}
	return cookies
}

func TestHealthCheck(t *testing.T) {
	router := testRouter(t, nil)
	w := doJSON(t, router, http.MethodGet, "/healthcheck", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestLesson_RequiresLogin(t *testing.T) {
	router := testRouter(t, nil)

	// A missing login is a distinguished payload, not a status code.
	for _, path := range []string{"/api/lesson", "/api/progress"} {
		w := doJSON(t, router, http.MethodGet, path, nil, nil)
		if w.Code != http.StatusOK {
			t.Errorf("%s status = %d, want 200", path, w.Code)
		}
		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp["error"] != "Not logged in" {
			t.Errorf("%s error = %q", path, resp["error"])
		}
	}
}

func TestLesson_HappyPath(t *testing.T) {
	router := testRouter(t, nil)
	cookies := login(t, router, "s1", 1)

	w := doJSON(t, router, http.MethodGet, "/api/lesson?topic=addition", nil, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}

	var resp struct {
		Lesson lessons.Lesson `json:"lesson"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Lesson.Topic != "addition" {
		t.Errorf("Topic = %q", resp.Lesson.Topic)
	}
	if len(resp.Lesson.Problems) != 5 || len(resp.Lesson.Examples) != 2 {
		t.Errorf("lesson shape: %d problems, %d examples", len(resp.Lesson.Problems), len(resp.Lesson.Examples))
	}
	if resp.Lesson.LearningStyle.InteractionMode != "audio_centric" {
		t.Errorf("InteractionMode = %q", resp.Lesson.LearningStyle.InteractionMode)
	}
}

func TestCheckAnswer_UpdatesProgress(t *testing.T) {
	router := testRouter(t, nil)
	cookies := login(t, router, "s1", 1)

	prob := problems.Problem{
		Type:     problems.TopicAddition,
		Question: "5 + 3",
		Answer:   "8",
	}

	w := doJSON(t, router, http.MethodPost, "/api/answer", gin.H{
		"problem": prob,
		"answer":  "8",
	}, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}

	var fb feedback.Feedback
	if err := json.Unmarshal(w.Body.Bytes(), &fb); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !fb.IsCorrect {
		t.Error("correct answer graded incorrect")
	}

	// The attempt shows up in the progress report.
	w = doJSON(t, router, http.MethodGet, "/api/progress", nil, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("progress status = %d", w.Code)
	}
	var report feedback.Report
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	tp, ok := report.TopicProgress["addition"]
	if !ok {
		t.Fatal("progress missing addition topic")
	}
	if tp.CurrentLevel <= 1.0 {
		t.Errorf("CurrentLevel = %v, want > 1.0 after a correct answer", tp.CurrentLevel)
	}
}

func TestCheckAnswer_WrongAnswerFeedback(t *testing.T) {
	router := testRouter(t, nil)
	cookies := login(t, router, "s1", 1)

	prob := problems.Problem{Type: problems.TopicAddition, Question: "5 + 3", Answer: "8"}
	w := doJSON(t, router, http.MethodPost, "/api/answer", gin.H{
		"problem": prob,
		"answer":  "9",
	}, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var fb feedback.Feedback
	if err := json.Unmarshal(w.Body.Bytes(), &fb); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fb.IsCorrect {
		t.Error("wrong answer graded correct")
	}
	if fb.ErrorType != feedback.ErrorOffByOne {
		t.Errorf("ErrorType = %q, want off_by_one", fb.ErrorType)
	}
	if len(fb.NextSteps) != 3 {
		t.Errorf("NextSteps length = %d, want 3", len(fb.NextSteps))
	}
}

func TestSpeak_NoLoginNeeded(t *testing.T) {
	router := testRouter(t, speech.NewSpeaker(fakeSynth{}))

	w := doJSON(t, router, http.MethodPost, "/api/speak", gin.H{
		"text":        "5+3=8",
		"is_equation": true,
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}
	if ct := w.Header().Get("Content-Type"); ct != "audio/mpeg" {
		t.Errorf("Content-Type = %q", ct)
	}
	if w.Body.String() != "mp3" {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestSpeak_DisabledReturns503(t *testing.T) {
	router := testRouter(t, nil)

	w := doJSON(t, router, http.MethodPost, "/api/speak", gin.H{"text": "hello"}, nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

func TestPacing(t *testing.T) {
	router := testRouter(t, nil)
	cookies := login(t, router, "s1", 3)

	w := doJSON(t, router, http.MethodPost, "/api/pacing", gin.H{
		"metrics": gin.H{"extended_pauses": 5},
	}, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}

	var resp struct {
		Emotion feedback.Emotion `json:"emotion"`
		Pacing  feedback.Pacing  `json:"pacing"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Emotion != feedback.EmotionFrustrated {
		t.Errorf("Emotion = %q, want frustrated", resp.Emotion)
	}
	if resp.Pacing.ExplanationDepth != "simplified" {
		t.Errorf("ExplanationDepth = %q", resp.Pacing.ExplanationDepth)
	}
	// Low vision shapes the style.
	if resp.Pacing.ExplanationStyle != "high_contrast_audio" {
		t.Errorf("ExplanationStyle = %q", resp.Pacing.ExplanationStyle)
	}
}

func TestLogout_InvalidatesSession(t *testing.T) {
	router := testRouter(t, nil)
	cookies := login(t, router, "s1", 1)

	w := doJSON(t, router, http.MethodPost, "/api/logout", nil, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("logout status = %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/lesson", nil, cookies)
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["error"] != "Not logged in" {
		t.Errorf("lesson after logout error = %q, want Not logged in", resp["error"])
	}
}

func TestLogin_RequiresStudentID(t *testing.T) {
	router := testRouter(t, nil)

	w := doJSON(t, router, http.MethodPost, "/api/login", gin.H{"impairment_type": 1}, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	router := testRouter(t, nil)

	c1 := login(t, router, "alice", 1)
	c2 := login(t, router, "bob", 2)

	prob := problems.Problem{Type: problems.TopicDivision, Question: "8 / 2", Answer: "4"}
	for range 3 {
		w := doJSON(t, router, http.MethodPost, "/api/answer", gin.H{"problem": prob, "answer": "4"}, c1)
		if w.Code != http.StatusOK {
			t.Fatalf("answer status = %d", w.Code)
		}
	}

	// Bob's progress is untouched by Alice's answers.
	w := doJSON(t, router, http.MethodGet, "/api/progress", nil, c2)
	var report feedback.Report
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if report.StudentID != "bob" {
		t.Errorf("StudentID = %q, want bob", report.StudentID)
	}
	if len(report.TopicProgress) != 0 {
		t.Errorf("bob's TopicProgress = %v, want empty", report.TopicProgress)
	}
}
