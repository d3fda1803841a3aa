package board

import (
	"bytes"
	"encoding/json"

	"backend/internal/app/image"
	"backend/internal/app/route"
	"backend/internal/app/trip"
)

// View assembly: every client-facing shape is built here with plain
// functions, one per view-model variant. Transformations are pure; a
// missing route or empty image list degrades to nil/empty fields, never
// to an error.

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// Summary is the list-card shape used by the all-boards, liked-boards and
// participated-trips listings.
type Summary struct {
	ID                  uint64   `json:"id"`
	Category            Category `json:"category"`
	Title               string   `json:"title"`
	Summary             string   `json:"summary"`
	Author              string   `json:"author"`
	StartAt             string   `json:"startAt"`
	EndAt               string   `json:"endAt"`
	RepresentativeImage *string  `json:"representativeImage"`
	LikeCount           int64    `json:"likeCount"`
}

// SimpleCard is the my-boards card: no author (it is always the caller).
type SimpleCard struct {
	ID                  uint64  `json:"id"`
	Title               string  `json:"title"`
	Summary             string  `json:"summary"`
	CreatedAt           string  `json:"createdAt"`
	RepresentativeImage *string `json:"representativeImage"`
}

// MainCard is the main-page highlight card.
type MainCard struct {
	ID                  uint64  `json:"id"`
	Title               string  `json:"title"`
	Author              string  `json:"author"`
	CreatedAt           string  `json:"createdAt"`
	RepresentativeImage *string `json:"representativeImage"`
	LikeCount           int64   `json:"likeCount"`
}

// Detail is the full board page: the board, its route itinerary and, for
// GUIDE/COMPANION boards, the trip constraints.
type Detail struct {
	Board DetailBoard `json:"board"`
	Route DetailRoute `json:"route"`
	Trip  *DetailTrip `json:"trip"`
}

type DetailBoard struct {
	ID            uint64   `json:"id"`
	AuthorID      uint64   `json:"authorId"`
	Author        string   `json:"author"`
	AuthorProfile *string  `json:"authorProfile"`
	Category      Category `json:"category"`
	Title         string   `json:"title"`
	Summary       string   `json:"summary"`
	Content       string   `json:"content"`
	CreatedAt     string   `json:"createdAt"`
	Images        []string `json:"images"`
	LikeCount     int64    `json:"likeCount"`
}

type DetailRoute struct {
	Title        string     `json:"title"`
	StartAt      string     `json:"startAt"`
	EndAt        string     `json:"endAt"`
	RouteDetails *Itinerary `json:"routeDetails"`
}

type DetailTrip struct {
	AgeMin       int    `json:"ageMin"`
	AgeMax       int    `json:"ageMax"`
	TargetNumber int    `json:"targetNumber"`
	Gender       string `json:"gender"`
}

// PlaceEntry is one place of a route day, category rendered as its symbolic
// name string.
type PlaceEntry struct {
	PlaceName     string `json:"placeName"`
	PlaceCategory string `json:"placeCategory"`
}

// Itinerary maps a formatted date to its ordered places. Key order is the
// first-encountered order of dates: if route days arrive out of calendar
// order, the output keeps that order. A plain map cannot guarantee this, so
// the type keeps its own key slice and marshals itself.
type Itinerary struct {
	keys    []string
	entries map[string][]PlaceEntry
}

func NewItinerary() *Itinerary {
	return &Itinerary{entries: make(map[string][]PlaceEntry)}
}

func (it *Itinerary) Add(date string, place PlaceEntry) {
	if _, seen := it.entries[date]; !seen {
		it.keys = append(it.keys, date)
	}
	it.entries[date] = append(it.entries[date], place)
}

// Dates returns the keys in first-encountered order.
func (it *Itinerary) Dates() []string {
	return it.keys
}

// Places returns the places recorded for a date, in input order.
func (it *Itinerary) Places(date string) []PlaceEntry {
	return it.entries[date]
}

func (it *Itinerary) Len() int {
	return len(it.keys)
}

// MarshalJSON emits a JSON object whose keys appear in insertion order.
func (it *Itinerary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range it.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		placesJSON, err := json.Marshal(it.entries[key])
		if err != nil {
			return nil, err
		}
		buf.Write(placesJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// BuildItinerary groups route days into an insertion-ordered mapping of
// formatted date to place entries. Missing or empty days yield an empty
// mapping, never an error.
func BuildItinerary(days []route.RouteDay) *Itinerary {
	it := NewItinerary()
	for _, day := range days {
		date := day.Day.Format(dateLayout)
		for _, place := range day.Places {
			it.Add(date, PlaceEntry{
				PlaceName:     place.PlaceName,
				PlaceCategory: string(place.PlaceCategory),
			})
		}
	}
	return it
}

// RepresentativeImage picks the board's thumbnail: the first-inserted image,
// nil when the board has none.
func RepresentativeImage(images []image.Image) *string {
	if len(images) == 0 {
		return nil
	}
	url := images[0].URL
	return &url
}

func NewSummary(b *Board, likeCount int64) Summary {
	return Summary{
		ID:                  b.ID,
		Category:            b.Category,
		Title:               b.Title,
		Summary:             b.Summary,
		Author:              b.Author.Name,
		StartAt:             b.Route.StartAt.Format(dateLayout),
		EndAt:               b.Route.EndAt.Format(dateLayout),
		RepresentativeImage: RepresentativeImage(b.Images),
		LikeCount:           likeCount,
	}
}

func NewSimpleCard(b *Board) SimpleCard {
	return SimpleCard{
		ID:                  b.ID,
		Title:               b.Title,
		Summary:             b.Summary,
		CreatedAt:           b.CreatedAt.Format(dateTimeLayout),
		RepresentativeImage: RepresentativeImage(b.Images),
	}
}

func NewMainCard(b *Board, likeCount int64) MainCard {
	return MainCard{
		ID:                  b.ID,
		Title:               b.Title,
		Author:              b.Author.Name,
		CreatedAt:           b.CreatedAt.Format(dateTimeLayout),
		RepresentativeImage: RepresentativeImage(b.Images),
		LikeCount:           likeCount,
	}
}

// NewDetail assembles the detail page. rt carries the route with its days and
// places eagerly loaded; t is nil for boards without a trip.
func NewDetail(b *Board, rt *route.Route, t *trip.Trip, likeCount int64) Detail {
	images := make([]string, 0, len(b.Images))
	for _, img := range b.Images {
		images = append(images, img.URL)
	}

	detail := Detail{
		Board: DetailBoard{
			ID:            b.ID,
			AuthorID:      b.AuthorID,
			Author:        b.Author.Name,
			AuthorProfile: b.Author.ProfileImageURL,
			Category:      b.Category,
			Title:         b.Title,
			Summary:       b.Summary,
			Content:       b.Content,
			CreatedAt:     b.CreatedAt.Format(dateTimeLayout),
			Images:        images,
			LikeCount:     likeCount,
		},
	}

	if rt != nil {
		detail.Route = DetailRoute{
			Title:        rt.Title,
			StartAt:      rt.StartAt.Format(dateLayout),
			EndAt:        rt.EndAt.Format(dateLayout),
			RouteDetails: BuildItinerary(rt.Days),
		}
	} else {
		detail.Route = DetailRoute{RouteDetails: NewItinerary()}
	}

	if t != nil {
		detail.Trip = &DetailTrip{
			AgeMin:       t.AgeMin,
			AgeMax:       t.AgeMax,
			TargetNumber: t.TargetNumber,
			Gender:       string(t.Gender),
		}
	}

	return detail
}
