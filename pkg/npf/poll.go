package npf

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultPollDuration is how long a poll stays open unless overridden.
// The server clamps expire_after between 1 and 7 days; this client does
// not clamp.
const DefaultPollDuration = 7 * 24 * time.Hour

// ErrAnswerCountMismatch is returned when an explicit answer-id list does
// not line up one-to-one with the poll options.
var ErrAnswerCountMismatch = errors.New("poll answer ids do not match options")

// Poll is a poll content block. The poll client id and per-answer ids are
// generated once at construction, so repeated Payload calls on the same
// instance project the same identifiers.
//
// The poll endpoint is not officially documented yet; the settings shape
// below is what the web client sends. Only one poll per post is accepted
// serverside.
type Poll struct {
	Question    string
	Options     []string
	ExpireAfter time.Duration

	clientID  string
	answerIDs []string
}

func (*Poll) isBlock() {}

// PollOption configures a Poll at construction.
type PollOption func(*Poll)

// WithExpireAfter overrides the default 7 day poll duration.
func WithExpireAfter(d time.Duration) PollOption {
	return func(p *Poll) { p.ExpireAfter = d }
}

// WithClientID supplies the poll's client id instead of generating one.
func WithClientID(id string) PollOption {
	return func(p *Poll) { p.clientID = id }
}

// WithAnswerIDs supplies the per-answer client ids positionally instead of
// generating them. NewPoll fails if the count does not match the options.
func WithAnswerIDs(ids ...string) PollOption {
	return func(p *Poll) { p.answerIDs = ids }
}

// NewPoll builds a poll block with the given prompt and options.
func NewPoll(question string, options []string, opts ...PollOption) (*Poll, error) {
	p := &Poll{
		Question:    question,
		Options:     options,
		ExpireAfter: DefaultPollDuration,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.answerIDs != nil && len(p.answerIDs) != len(options) {
		return nil, fmt.Errorf("%w: %d ids for %d options",
			ErrAnswerCountMismatch, len(p.answerIDs), len(options))
	}
	if p.clientID == "" {
		p.clientID = uuid.NewString()
	}
	if p.answerIDs == nil {
		p.answerIDs = make([]string, len(options))
		for i := range options {
			p.answerIDs[i] = uuid.NewString()
		}
	}
	return p, nil
}

// ClientID returns the poll's client id.
func (p *Poll) ClientID() string { return p.clientID }

func (p *Poll) Payload() Payload {
	answers := make([]map[string]any, 0, len(p.Options))
	for i, option := range p.Options {
		answers = append(answers, map[string]any{
			"answer_text": option,
			"client_id":   p.answerIDs[i],
		})
	}
	return Payload{
		"type":      "poll",
		"question":  p.Question,
		"client_id": p.clientID,
		"answers":   answers,
		"settings": map[string]any{
			"close_status":    "closed-after",
			"expire_after":    int(p.ExpireAfter.Seconds()),
			"multiple_choice": false,
		},
	}
}
