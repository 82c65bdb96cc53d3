package npf

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingAnswer is returned when a poll answer's client id is absent
// from a results mapping. The results endpoint returns a complete mapping,
// so a missing id means the poll and results do not belong together.
var ErrMissingAnswer = errors.New("poll answer missing from results")

// ZipPollWithResults combines a poll block payload with the results the
// polls endpoint returned for it. The results value may be the full
// response envelope ({"response": {"results": ...}}) or the inner mapping;
// one optional envelope layer is unwrapped.
//
// The returned payload is a deep copy of poll with a "votes" count on each
// answer and a top-level "total_votes" summing every value in the results
// mapping. The input poll is never mutated.
func ZipPollWithResults(poll Payload, results map[string]any) (Payload, error) {
	if inner, ok := results["response"].(map[string]any); ok {
		results = inner
	}
	votes, ok := results["results"].(map[string]any)
	if !ok {
		return nil, errors.New("results payload has no results mapping")
	}

	out := clonePayload(poll)
	answers, err := answerList(out["answers"])
	if err != nil {
		return nil, err
	}
	for _, answer := range answers {
		id, _ := answer["client_id"].(string)
		v, ok := votes[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingAnswer, id)
		}
		n, err := asInt(v)
		if err != nil {
			return nil, fmt.Errorf("votes for answer %q: %w", id, err)
		}
		answer["votes"] = n
	}

	total := 0
	for id, v := range votes {
		n, err := asInt(v)
		if err != nil {
			return nil, fmt.Errorf("votes for answer %q: %w", id, err)
		}
		total += n
	}
	out["total_votes"] = total
	return out, nil
}

// PollsFromPost extracts every poll block from a post, which may be the
// full response envelope or the inner post object. Callers wanting the
// usual single poll take the first element.
func PollsFromPost(post map[string]any) []Payload {
	if inner, ok := post["response"].(map[string]any); ok {
		post = inner
	}
	var polls []Payload
	blocks, _ := post["content"].([]any)
	for _, raw := range blocks {
		block, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if block["type"] == "poll" {
			polls = append(polls, block)
		}
	}
	return polls
}

// answerList normalizes the answers field, which is []map[string]any when
// built by this package and []any after a JSON round trip.
func answerList(v any) ([]map[string]any, error) {
	switch answers := v.(type) {
	case []map[string]any:
		return answers, nil
	case []any:
		out := make([]map[string]any, 0, len(answers))
		for _, raw := range answers {
			answer, ok := raw.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("poll answer has unexpected type %T", raw)
			}
			out = append(out, answer)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("poll payload has no answers list (got %T)", v)
	}
}

func asInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		return int(i), err
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}

func clonePayload(p Payload) Payload {
	out := make(Payload, len(p))
	for k, v := range p {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return clonePayload(val)
	case []map[string]any:
		out := make([]map[string]any, 0, len(val))
		for _, m := range val {
			out = append(out, clonePayload(m))
		}
		return out
	case []any:
		out := make([]any, 0, len(val))
		for _, item := range val {
			out = append(out, cloneValue(item))
		}
		return out
	default:
		return v
	}
}
