package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/dinesh-manogaran/Career-Compass/internal/dto"
	"github.com/dinesh-manogaran/Career-Compass/internal/model"
	"github.com/dinesh-manogaran/Career-Compass/internal/service"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// User-facing Q&A messages.
const (
	MsgTypeQuestion      = "Please type a question first 🙂"
	MsgNoAnswer          = "Could not get an answer."
	MsgEmptyAnswer       = "No answer received."
	MsgQueryConnectivity = "Error connecting to server."
)

// QueryController runs the free-form career Q&A exchange. It is independent
// of the match flow and needs no session. Each Ask or Clear bumps the
// generation so a response that comes back late is simply dropped.
type QueryController struct {
	mu         sync.Mutex
	svc        service.CompassServiceInterface
	exchange   model.QueryExchange
	generation uint64
}

func NewQueryController(svc service.CompassServiceInterface) *QueryController {
	return &QueryController{svc: svc}
}

// Ask submits a question to the Q&A endpoint. A blank question fails locally
// with a prompt to type one; no request leaves the process.
func (c *QueryController) Ask(ctx context.Context, question string) {
	if strings.TrimSpace(question) == "" {
		c.mu.Lock()
		// Invalidate any in-flight question; otherwise its answer would land
		// on top of this prompt.
		c.generation++
		c.exchange = model.QueryExchange{Question: question, Error: MsgTypeQuestion}
		c.mu.Unlock()
		return
	}

	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.exchange = model.QueryExchange{
		ID:       uuid.New(),
		Question: question,
		Loading:  true,
	}
	c.mu.Unlock()

	answer, err := c.svc.CareerQuery(ctx, question)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		// The user cleared or re-asked while this was in flight.
		log.Debug().Msg("discarding stale career query response")
		return
	}

	c.exchange.Loading = false
	switch {
	case err == nil && answer != "":
		c.exchange.Answer = answer
	case err == nil:
		c.exchange.Answer = MsgEmptyAnswer
	default:
		c.exchange.Error = queryErrorMessage(err)
	}
}

func queryErrorMessage(err error) string {
	var re *service.RemoteError
	if errors.As(err, &re) {
		return MsgNoAnswer
	}
	return MsgQueryConnectivity
}

// Clear wipes the exchange. An in-flight request keeps running, but its
// response can no longer resurrect what the user dismissed.
func (c *QueryController) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.exchange = model.QueryExchange{}
}

func (c *QueryController) Snapshot() dto.QueryViewDTO {
	c.mu.Lock()
	defer c.mu.Unlock()
	return dto.QueryViewDTO{
		Question: c.exchange.Question,
		Answer:   c.exchange.Answer,
		Error:    c.exchange.Error,
		Loading:  c.exchange.Loading,
	}
}
