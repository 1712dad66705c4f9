package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sampath-kumaramd/mathlearn-project/internal/feedback"
	"github.com/sampath-kumaramd/mathlearn-project/internal/lessons"
	"github.com/sampath-kumaramd/mathlearn-project/internal/problems"
	"github.com/sampath-kumaramd/mathlearn-project/internal/profile"
	"github.com/sampath-kumaramd/mathlearn-project/internal/speech"
)

// Handler carries the tutoring components behind the HTTP API.
type Handler struct {
	sessions  *SessionStore
	registry  *profile.Registry
	assembler *lessons.Assembler
	engine    *feedback.Engine
	speaker   *speech.Speaker
	logger    *zap.Logger
	now       func() time.Time
}

// NewHandler wires the components into a Handler. speaker may be nil
// when speech is disabled. A nil now falls back to time.Now.
func NewHandler(sessions *SessionStore, registry *profile.Registry, assembler *lessons.Assembler, engine *feedback.Engine, speaker *speech.Speaker, logger *zap.Logger, now func() time.Time) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &Handler{
		sessions:  sessions,
		registry:  registry,
		assembler: assembler,
		engine:    engine,
		speaker:   speaker,
		logger:    logger,
		now:       now,
	}
}

// HealthCheck reports liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// session resolves the logged-in session or writes the error response.
// A missing login is a distinguished payload at HTTP 200, not a status
// code; clients key off the error field.
func (h *Handler) session(c *gin.Context) (Session, bool) {
	token, err := c.Cookie(sessionCookie)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": "Not logged in"})
		return Session{}, false
	}
	sess, ok := h.sessions.Get(token)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"error": "Not logged in"})
		return Session{}, false
	}
	return sess, true
}

type loginRequest struct {
	StudentID      string `json:"student_id" binding:"required"`
	ImpairmentType int    `json:"impairment_type"`
}

// Login starts a session for a student. The impairment type defaults to
// congenital blindness when omitted, matching the profile default.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "student_id is required"})
		return
	}

	impairment := profile.Impairment(req.ImpairmentType)
	if req.ImpairmentType == 0 {
		impairment = profile.ImpairmentCongenitalBlindness
	}

	token := h.sessions.Create(req.StudentID, impairment)
	c.SetCookie(sessionCookie, token, 0, "/", "", false, true)

	// Warm the profile so the first lesson request doesn't pay the load.
	_, release := h.registry.Acquire(c.Request.Context(), req.StudentID, impairment)
	release()

	h.logger.Info("student logged in",
		zap.String("student_id", req.StudentID),
		zap.Int("impairment_type", int(impairment)),
	)
	c.JSON(http.StatusOK, gin.H{"student_id": req.StudentID})
}

// Logout ends the session.
func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(sessionCookie); err == nil {
		h.sessions.Delete(token)
	}
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// GetLesson assembles a lesson for the logged-in student. The optional
// topic query parameter overrides the learning-path focus.
func (h *Handler) GetLesson(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	prof, release := h.registry.Acquire(c.Request.Context(), sess.StudentID, sess.Impairment)
	defer release()

	lesson, err := h.assembler.Build(c.Request.Context(), prof, c.Query("topic"))
	if err != nil {
		h.logger.Error("lesson assembly failed",
			zap.String("student_id", sess.StudentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not assemble lesson"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"lesson": lesson})
}

type checkAnswerRequest struct {
	Problem      problems.Problem `json:"problem" binding:"required"`
	Answer       string           `json:"answer"`
	ResponseTime *float64         `json:"response_time"`
}

// CheckAnswer grades an answer, updates the mastery model, and returns
// feedback.
func (h *Handler) CheckAnswer(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var req checkAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "problem and answer are required"})
		return
	}

	prof, release := h.registry.Acquire(c.Request.Context(), sess.StudentID, sess.Impairment)
	defer release()

	fb := h.engine.Grade(c.Request.Context(), prof, &req.Problem, req.Answer, req.ResponseTime)
	c.JSON(http.StatusOK, fb)
}

type speakRequest struct {
	Text       string `json:"text" binding:"required"`
	IsEquation bool   `json:"is_equation"`
}

// Speak synthesizes text and returns MP3 audio. Speech does not require
// a login: the client reads UI text aloud before the student signs in.
func (h *Handler) Speak(c *gin.Context) {
	if h.speaker == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "speech is disabled"})
		return
	}

	var req speakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	audio, err := h.speaker.Speak(c.Request.Context(), req.Text, req.IsEquation)
	if err != nil {
		h.logger.Error("speech synthesis failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "speech synthesis failed"})
		return
	}

	c.Data(http.StatusOK, "audio/mpeg", audio)
}

// GetProgress returns the student's progress report.
func (h *Handler) GetProgress(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	prof, release := h.registry.Acquire(c.Request.Context(), sess.StudentID, sess.Impairment)
	defer release()

	report := feedback.BuildReport(prof, "biweekly", h.now)
	c.JSON(http.StatusOK, report)
}

type pacingRequest struct {
	Metrics feedback.AudioMetrics `json:"metrics"`
}

// Pacing infers the student's emotion from audio metrics and returns the
// delivery adjustment for it.
func (h *Handler) Pacing(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var req pacingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "metrics are required"})
		return
	}

	emotion := feedback.DetectEmotion(req.Metrics)
	pacing := feedback.PacingFor(emotion, sess.Impairment)

	c.JSON(http.StatusOK, gin.H{
		"emotion": emotion,
		"pacing":  pacing,
	})
}
