package delivery

import (
	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(
	r chi.Router,
	hSummarize *SummarizeHandler,
	hSpeech *SpeechHandler,
) {
	r.Route("/", func(pr chi.Router) {
		pr.Use(
			httputil.RecoverMiddleware,
			RequestID,
		)

		pr.Post("/summarize", hSummarize.Summarize)
		pr.Post("/read-aloud", hSpeech.ReadAloud)
	})
}
