package delivery

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	json "github.com/goccy/go-json"

	"github.com/revisio/notes-backend/internal/ai"
)

type SummarizeHandler struct {
	summarizer ai.Summarizer
	log        *logger.ZapLogger
}

func NewSummarizeHandler(summarizer ai.Summarizer, log *logger.ZapLogger) *SummarizeHandler {
	return &SummarizeHandler{
		summarizer: summarizer,
		log:        log,
	}
}

func (h *SummarizeHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SummaryPrompt string `json:"summaryPrompt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	// Detached context: upstream retries run to completion even if the
	// client goes away mid-request.
	summary, err := h.summarizer.Summarize(context.Background(), req.SummaryPrompt)
	if err != nil {
		if errors.Is(err, ai.ErrEmptyPrompt) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Log(logger.LogEntry{
			Level:   "error",
			Message: fmt.Sprintf("summarize failed [%s]", RequestIDFrom(r.Context())),
			Service: "delivery",
			Error:   err,
		})
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"summary": summary})
}
