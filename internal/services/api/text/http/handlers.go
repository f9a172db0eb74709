// Package http provides http transport for text operations
package http

import (
	stdhttp "net/http"

	"zenhan/internal/modkit/httpkit"
	"zenhan/internal/services/api/text/domain"
	svc "zenhan/internal/services/api/text/service"
)

// Register mounts text endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.NormalizeInput](r, "/normalize", h.normalize)
	httpkit.PostJSON[domain.GuessInput](r, "/guess", h.guess)
	httpkit.PostJSON[domain.MatchInput](r, "/match", h.match)
	httpkit.PostJSON[domain.ScrubInput](r, "/scrub", h.scrub)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /text/normalize Text textNormalize
// @Summary Normalize zenkaku text to hankaku
// @Tags Text
// @Accept json
// @Produce json
// @Param payload body domain.NormalizeInput true "Text and conversion options"
// @Success 200 {object} domain.NormalizeResult "ok"
// @Router /text/normalize [post]
func (h *handlers) normalize(r *stdhttp.Request, in domain.NormalizeInput) (any, error) {
	return h.svc.Normalize(r.Context(), in)
}

// swagger:route POST /text/guess Text textGuess
// @Summary Guess whether text reads as Japanese or English
// @Tags Text
// @Accept json
// @Produce json
// @Param payload body domain.GuessInput true "Text"
// @Success 200 {object} domain.GuessResult "ok"
// @Router /text/guess [post]
func (h *handlers) guess(r *stdhttp.Request, in domain.GuessInput) (any, error) {
	return h.svc.Guess(r.Context(), in)
}

// swagger:route POST /text/match Text textMatch
// @Summary Locate the first kanji/kana or halfwidth kana run
// @Tags Text
// @Accept json
// @Produce json
// @Param payload body domain.MatchInput true "Text and match kind"
// @Success 200 {object} domain.MatchResult "ok"
// @Router /text/match [post]
func (h *handlers) match(r *stdhttp.Request, in domain.MatchInput) (any, error) {
	return h.svc.Match(r.Context(), in)
}

// swagger:route POST /text/scrub Text textScrub
// @Summary Normalize every string field of a record batch
// @Tags Text
// @Accept json
// @Produce json
// @Param payload body domain.ScrubInput true "Records"
// @Success 200 {object} domain.ScrubResult "ok"
// @Router /text/scrub [post]
func (h *handlers) scrub(r *stdhttp.Request, in domain.ScrubInput) (any, error) {
	return h.svc.Scrub(r.Context(), in)
}
