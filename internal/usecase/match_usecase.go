package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dinesh-manogaran/Career-Compass/internal/dto"
	"github.com/dinesh-manogaran/Career-Compass/internal/model"
	"github.com/dinesh-manogaran/Career-Compass/internal/service"
	"github.com/dinesh-manogaran/Career-Compass/internal/session"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// MatchState is the orchestrator's explicit state machine. Every analysis
// attempt walks Idle -> Validating -> Uploading -> AnalyzingResponse and ends
// in Result or Failed; a new attempt restarts from the top.
type MatchState int

const (
	StateIdle MatchState = iota
	StateValidating
	StateUploading
	StateAnalyzingResponse
	StateResult
	StateFailed
)

func (s MatchState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateUploading:
		return "uploading"
	case StateAnalyzingResponse:
		return "analyzing_response"
	case StateResult:
		return "result"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// User-facing match flow messages.
const (
	MsgUploadBoth        = "Please upload both Job Description and Resume files."
	MsgSessionExpired    = "Session expired. Please login again."
	MsgAnalyzing         = "Uploading and analyzing documents..."
	MsgAnalyzeFailed     = "Failed to analyze uploaded files."
	MsgMatchConnectivity = "Error connecting to server."
)

// ErrFileTooLarge rejects a slot before any network traffic happens.
type ErrFileTooLarge struct {
	Slot string
}

func (e *ErrFileTooLarge) Error() string {
	return fmt.Sprintf("%s file must be less than %d MB", e.Slot, model.MaxUploadMB)
}

// MatchController owns the two file slots, the analysis state machine and the
// one current MatchResult. A generation counter makes sure a late response
// never overwrites state a newer attempt produced.
type MatchController struct {
	mu    sync.Mutex
	svc   service.CompassServiceInterface
	store session.Store

	jd     *model.UploadedDocument
	resume *model.UploadedDocument

	state      MatchState
	message    string
	result     *model.MatchResult
	generation uint64
}

func NewMatchController(svc service.CompassServiceInterface, store session.Store) *MatchController {
	return &MatchController{svc: svc, store: store, state: StateIdle}
}

// SelectJobDescription fills the JD slot. An oversized file empties the slot,
// including any previously accepted file, and reports the violation.
func (c *MatchController) SelectJobDescription(doc *model.UploadedDocument) error {
	return c.selectSlot(&c.jd, doc, "Job Description")
}

// SelectResume fills the resume slot with the same size rule.
func (c *MatchController) SelectResume(doc *model.UploadedDocument) error {
	return c.selectSlot(&c.resume, doc, "Resume")
}

func (c *MatchController) selectSlot(slot **model.UploadedDocument, doc *model.UploadedDocument, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if doc.TooLarge() {
		*slot = nil
		return &ErrFileTooLarge{Slot: name}
	}
	*slot = doc
	return nil
}

// Analyze runs one full analysis attempt. The returned flag tells the caller
// to send the user back to the entry view because the session is gone.
func (c *MatchController) Analyze(ctx context.Context) (redirectToEntry bool) {
	c.mu.Lock()
	// Every entry invalidates whatever is still in flight, including entries
	// that fail locally; a late response must not revive a dismissed attempt.
	c.generation++
	gen := c.generation
	c.state = StateValidating
	// Stale results must never sit next to a pending request.
	c.result = nil

	if c.jd == nil || c.resume == nil {
		c.state = StateFailed
		c.message = MsgUploadBoth
		c.mu.Unlock()
		return false
	}

	token, ok := c.store.Token()
	if !ok {
		c.state = StateFailed
		c.message = MsgSessionExpired
		c.mu.Unlock()
		return true
	}

	c.state = StateUploading
	c.message = MsgAnalyzing
	jd, resume := c.jd, c.resume
	c.mu.Unlock()

	attempt := uuid.New()
	log.Info().Str("attempt", attempt.String()).
		Str("jd", jd.Name).Str("resume", resume.Name).
		Msg("submitting documents for match analysis")

	result, err := c.svc.AnalyzeMatch(ctx, token, jd, resume)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		// A newer attempt owns the state now.
		log.Debug().Str("attempt", attempt.String()).Msg("discarding stale analysis response")
		return false
	}

	c.state = StateAnalyzingResponse

	switch {
	case err == nil:
		c.result = result
		c.message = ""
		c.state = StateResult
		return false
	case service.IsSessionLoss(err):
		// The remote refused the token; the session is over, not the request.
		if clearErr := c.store.Clear(); clearErr != nil {
			log.Error().Err(clearErr).Msg("failed to clear expired session")
		}
		c.message = MsgSessionExpired
		c.state = StateFailed
		return true
	default:
		c.message = messageForMatch(err)
		c.state = StateFailed
		return false
	}
}

func messageForMatch(err error) string {
	var re *service.RemoteError
	if errors.As(err, &re) {
		if re.Detail != "" {
			return re.Detail
		}
		return MsgAnalyzeFailed
	}
	return MsgMatchConnectivity
}

// Snapshot renders the match section. Derived metrics are pure functions of
// the current result, recomputed on every call and never cached.
func (c *MatchController) Snapshot() dto.MatchViewDTO {
	c.mu.Lock()
	defer c.mu.Unlock()

	view := dto.MatchViewDTO{
		State:              c.state.String(),
		Message:            c.message,
		MaxUploadMB:        model.MaxUploadMB,
		AcceptedExtensions: model.AcceptedExtensions,
		ColorBand:          ColorBand(0),
		BarColor:           BarColor(0),
	}
	if c.jd != nil {
		view.JobDescriptionFile = c.jd.Name
	}
	if c.resume != nil {
		view.ResumeFile = c.resume.Name
	}
	if c.result == nil {
		return view
	}

	view.Result = c.result
	view.MatchPercent = MatchPercent(c.result.Score)
	view.ColorBand = ColorBand(view.MatchPercent)
	view.BarColor = BarColor(view.MatchPercent)
	view.MatchedCount = len(c.result.MatchedSkills)
	view.MissingCount = len(c.result.MissingSkills)
	view.MatchedPercentForPie, view.MissingPercentForPie, view.HasSkillData =
		PieSplit(view.MatchedCount, view.MissingCount)
	return view
}
