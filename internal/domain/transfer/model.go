package transfer

import (
	"math"
	"strings"

	"github.com/portalwatch/portal-api/internal/domain/career"
)

// Movement status as surfaced to clients. A destination team means the
// player committed somewhere; no destination means they only entered the
// portal.
const (
	StatusCommitted = "Committed"
	StatusEntered   = "Entered"
)

// Entry is one reported player movement from the portal listing. Origin and
// Destination hold canonical team names, or "" when the provider reported
// none or the name could not be normalized.
type Entry struct {
	FirstName    string
	LastName     string
	Position     string
	Rating       *float64
	Stars        int
	Eligibility  string
	TransferDate string
	Origin       string
	Destination  string
}

// Name returns the display name for matching and output.
func (e Entry) Name() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// Status derives the movement status from the destination.
func (e Entry) Status() string {
	if e.Destination != "" {
		return StatusCommitted
	}
	return StatusEntered
}

// RescaleRating converts the provider's 0-1 rating to the 0-100 scale
// clients expect. Absent ratings stay absent.
func RescaleRating(rating *float64) *int {
	if rating == nil || *rating == 0 {
		return nil
	}
	v := int(math.Round(*rating * 100))
	return &v
}

var eligibilityDisplay = map[string]string{
	"FR": "Fr",
	"SO": "So",
	"JR": "Jr",
	"SR": "Sr",
	"GR": "Gr",
}

// EligibilityDisplay maps the provider's eligibility code to its short
// display form. Unrecognized codes pass through unchanged.
func EligibilityDisplay(code string) string {
	if short, ok := eligibilityDisplay[code]; ok {
		return short
	}
	return code
}

// ResolvedPlayer is a portal entry enriched, best-effort, with roster
// identity fields and a reconstructed career. Empty identity fields mean
// no roster match was found; that is not an error.
type ResolvedPlayer struct {
	Name         string          `json:"name"`
	Position     string          `json:"position"`
	Rating       *int            `json:"rating"`
	Stars        int             `json:"stars,omitempty"`
	Year         string          `json:"year,omitempty"`
	TransferDate string          `json:"transferDate,omitempty"`
	Status       string          `json:"status"`
	From         string          `json:"from,omitempty"`
	Destination  string          `json:"destination,omitempty"`
	PlayerID     string          `json:"playerId,omitempty"`
	Height       int             `json:"height,omitempty"`
	Weight       int             `json:"weight,omitempty"`
	Hometown     string          `json:"hometown,omitempty"`
	History      *career.History `json:"history,omitempty"`
}

// Resolve builds the client-facing view of an entry. The two team-bucket
// perspectives of the same entry are separate values, not a shared object.
func Resolve(e Entry) ResolvedPlayer {
	pos := e.Position
	if pos == "" {
		pos = "Unknown"
	}
	return ResolvedPlayer{
		Name:         e.Name(),
		Position:     pos,
		Rating:       RescaleRating(e.Rating),
		Stars:        e.Stars,
		Year:         EligibilityDisplay(e.Eligibility),
		TransferDate: e.TransferDate,
		Status:       e.Status(),
	}
}

// TeamBucket holds one team's view of the portal: players leaving and
// players arriving.
type TeamBucket struct {
	PlayersOut []ResolvedPlayer `json:"playersOut"`
	PlayersIn  []ResolvedPlayer `json:"playersIn"`
}

// NetChange is arrivals minus departures.
func (b TeamBucket) NetChange() int {
	return len(b.PlayersIn) - len(b.PlayersOut)
}
