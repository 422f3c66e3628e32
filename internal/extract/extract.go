// Package extract pulls the machine-readable itinerary out of a Gemini
// reply. The model is prompted to answer with a readable section followed
// by a fenced ```json block; both halves are recovered here.
package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	openDelimiter  = "```json"
	closeDelimiter = "```"
)

var (
	// ErrMissingStructuredBlock means the reply had no ```json fence at all.
	// The human-readable text is still returned so it can be shown to the user.
	ErrMissingStructuredBlock = errors.New("response has no ```json block")

	// ErrMalformedStructuredBlock means the fenced payload did not parse as
	// the expected {"days":[{"day":n,"stops":[...]}]} shape. Nothing is
	// imported in that case.
	ErrMalformedStructuredBlock = errors.New("structured block is malformed")
)

// Result is the outcome of splitting one generation reply.
type Result struct {
	// HumanReadable is the prose before the fence, trimmed. On
	// ErrMissingStructuredBlock it is the whole reply.
	HumanReadable string

	// Days holds the stop texts per day, in the order the block listed
	// them. Empty unless extraction succeeded.
	Days [][]string
}

// tripPayload mirrors the JSON shape the prompt asks Gemini for.
type tripPayload struct {
	Days []struct {
		// Day is the model's numeric label. It is informational only:
		// labels have been observed non-contiguous and even duplicated,
		// so array position decides the day order.
		Day   int      `json:"day"`
		Stops []string `json:"stops"`
	} `json:"days"`
}

// Extract splits raw model output into the readable section and the parsed
// itinerary. It never partially imports: any parse problem returns an
// error with Result.Days empty.
func Extract(text string) (Result, error) {
	before, after, found := strings.Cut(text, openDelimiter)
	if !found {
		return Result{HumanReadable: strings.TrimSpace(text)}, ErrMissingStructuredBlock
	}

	res := Result{HumanReadable: strings.TrimSpace(before)}

	raw := after
	if i := strings.Index(raw, closeDelimiter); i >= 0 {
		raw = raw[:i]
	}
	raw = strings.TrimSpace(raw)

	var payload tripPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return res, fmt.Errorf("%w: %v", ErrMalformedStructuredBlock, err)
	}
	if payload.Days == nil {
		return res, fmt.Errorf("%w: missing \"days\" array", ErrMalformedStructuredBlock)
	}

	days := make([][]string, 0, len(payload.Days))
	for _, d := range payload.Days {
		stops := make([]string, 0, len(d.Stops))
		for _, s := range d.Stops {
			if s = strings.TrimSpace(s); s != "" {
				stops = append(stops, s)
			}
		}
		days = append(days, stops)
	}
	res.Days = days
	return res, nil
}
