package delivery

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	json "github.com/goccy/go-json"

	"github.com/revisio/notes-backend/internal/speech"
)

type SpeechHandler struct {
	synthesizer speech.Synthesizer
	log         *logger.ZapLogger
}

func NewSpeechHandler(synthesizer speech.Synthesizer, log *logger.ZapLogger) *SpeechHandler {
	return &SpeechHandler{
		synthesizer: synthesizer,
		log:         log,
	}
}

func (h *SpeechHandler) ReadAloud(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TextToSpeak string `json:"textToSpeak"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	// Detached context, same as summarize: a slow client disconnect must
	// not abort in-flight upstream retries.
	audio, err := h.synthesizer.Synthesize(context.Background(), req.TextToSpeak)
	if err != nil {
		if errors.Is(err, speech.ErrEmptyText) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Log(logger.LogEntry{
			Level:   "error",
			Message: fmt.Sprintf("read-aloud failed [%s]", RequestIDFrom(r.Context())),
			Service: "delivery",
			Error:   err,
		})
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"audioData": audio.Data,
		"mimeType":  audio.MimeType,
	})
}
