package fandom

import (
	"math"
	"strings"
	"time"
)

// Page is one cursor-chained slice of the remote collection. A nil NextCursor
// marks the end of the stream.
type Page[T any] struct {
	Items      []T
	NextCursor *int64
}

// Idol mirrors the idol payload shared by /idols and /charts.
type Idol struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Gender         string `json:"gender"`
	Group          string `json:"group"`
	ProfilePicture string `json:"profilePicture"`
	TotalVotes     int64  `json:"totalVotes"`
}

// RecordID implements feed.Record.
func (i Idol) RecordID() int64 { return i.ID }

// CategoryKey reports the idol's gender, the only category the site filters by.
func (i Idol) CategoryKey() string { return strings.ToLower(strings.TrimSpace(i.Gender)) }

// Label renders "Group Name", or the bare name for solo idols.
func (i Idol) Label() string {
	group := strings.TrimSpace(i.Group)
	if group == "" {
		return i.Name
	}
	return group + " " + i.Name
}

// Donation mirrors the /donations payload.
type Donation struct {
	ID                int64  `json:"id"`
	IdolID            int64  `json:"idolId"`
	Title             string `json:"title"`
	Subtitle          string `json:"subtitle"`
	TargetDonation    int64  `json:"targetDonation"`
	ReceivedDonations int64  `json:"receivedDonations"`
	CreatedAt         string `json:"createdAt"`
	Deadline          string `json:"deadline"`
	Status            bool   `json:"status"`
	Idol              Idol   `json:"idol"`
}

// RecordID implements feed.Record.
func (d Donation) RecordID() int64 { return d.ID }

// CategoryKey reports the gender of the idol the donation is for.
func (d Donation) CategoryKey() string { return d.Idol.CategoryKey() }

// ParsedDeadline returns the deadline as time.Time when possible.
func (d Donation) ParsedDeadline() time.Time {
	return parseTime(d.Deadline)
}

// DaysLeft returns whole days until the deadline, never negative. Unknown
// deadlines report zero.
func (d Donation) DaysLeft(now time.Time) int {
	deadline := d.ParsedDeadline()
	if deadline.IsZero() || !deadline.After(now) {
		return 0
	}
	return int(math.Ceil(deadline.Sub(now).Hours() / 24))
}

// Progress returns the funded fraction clamped to [0, 1].
func (d Donation) Progress() float64 {
	if d.TargetDonation <= 0 {
		return 0
	}
	p := float64(d.ReceivedDonations) / float64(d.TargetDonation)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

type listResponse[T any] struct {
	List       []T    `json:"list"`
	NextCursor *int64 `json:"nextCursor"`
}

type chartResponse struct {
	Idols      []Idol `json:"idols"`
	NextCursor *int64 `json:"nextCursor"`
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	if t, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return t
	}
	return time.Time{}
}
