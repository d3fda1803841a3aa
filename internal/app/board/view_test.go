package board

import (
	"encoding/json"
	"testing"
	"time"

	"backend/internal/app/image"
	"backend/internal/app/route"
	"backend/internal/app/trip"
	"backend/internal/app/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func TestRepresentativeImage_FirstInserted(t *testing.T) {
	images := []image.Image{
		{ID: 1, URL: "http://img/a.jpg"},
		{ID: 2, URL: "http://img/b.jpg"},
		{ID: 3, URL: "http://img/c.jpg"},
	}

	url := RepresentativeImage(images)

	require.NotNil(t, url)
	assert.Equal(t, "http://img/a.jpg", *url)
}

func TestRepresentativeImage_NoImages(t *testing.T) {
	assert.Nil(t, RepresentativeImage(nil))
	assert.Nil(t, RepresentativeImage([]image.Image{}))
}

func TestBuildItinerary_KeepsDayOrder(t *testing.T) {
	// Days arrive out of calendar order; the itinerary must keep that order,
	// not re-sort it.
	days := []route.RouteDay{
		{Day: day("2024-05-02"), Places: []route.RouteDayPlace{
			{PlaceName: "Harbor Walk", PlaceCategory: route.PlaceAttraction},
		}},
		{Day: day("2024-05-01"), Places: []route.RouteDayPlace{
			{PlaceName: "Noodle House", PlaceCategory: route.PlaceRestaurant},
			{PlaceName: "Hillside Inn", PlaceCategory: route.PlaceLodging},
		}},
	}

	it := BuildItinerary(days)

	assert.Equal(t, []string{"2024-05-02", "2024-05-01"}, it.Dates())
	assert.Equal(t, []PlaceEntry{
		{PlaceName: "Noodle House", PlaceCategory: "RESTAURANT"},
		{PlaceName: "Hillside Inn", PlaceCategory: "LODGING"},
	}, it.Places("2024-05-01"))
}

func TestBuildItinerary_EmptyDays(t *testing.T) {
	it := BuildItinerary(nil)

	assert.Equal(t, 0, it.Len())

	out, err := json.Marshal(it)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))
}

func TestItinerary_MarshalKeepsInsertionOrder(t *testing.T) {
	it := NewItinerary()
	it.Add("2024-05-03", PlaceEntry{PlaceName: "C", PlaceCategory: "ETC"})
	it.Add("2024-05-01", PlaceEntry{PlaceName: "A", PlaceCategory: "ETC"})
	it.Add("2024-05-02", PlaceEntry{PlaceName: "B", PlaceCategory: "ETC"})

	out, err := json.Marshal(it)

	require.NoError(t, err)
	assert.JSONEq(t, `{
		"2024-05-03": [{"placeName":"C","placeCategory":"ETC"}],
		"2024-05-01": [{"placeName":"A","placeCategory":"ETC"}],
		"2024-05-02": [{"placeName":"B","placeCategory":"ETC"}]
	}`, string(out))
	// JSONEq ignores key order, so assert the raw byte order too.
	assert.Equal(t,
		`{"2024-05-03":[{"placeName":"C","placeCategory":"ETC"}],`+
			`"2024-05-01":[{"placeName":"A","placeCategory":"ETC"}],`+
			`"2024-05-02":[{"placeName":"B","placeCategory":"ETC"}]}`,
		string(out))
}

func TestNewSummary_FormatsDates(t *testing.T) {
	b := &Board{
		ID:       5,
		Category: CategoryReview,
		Title:    "Three days in Busan",
		Summary:  "Short and sweet",
		Author:   user.User{Name: "mina"},
		Route: route.Route{
			StartAt: day("2024-05-01"),
			EndAt:   day("2024-05-03"),
		},
		Images: []image.Image{{ID: 1, URL: "http://img/a.jpg"}},
	}

	summary := NewSummary(b, 12)

	assert.Equal(t, "2024-05-01", summary.StartAt)
	assert.Equal(t, "2024-05-03", summary.EndAt)
	assert.Equal(t, "mina", summary.Author)
	assert.Equal(t, int64(12), summary.LikeCount)
	require.NotNil(t, summary.RepresentativeImage)
	assert.Equal(t, "http://img/a.jpg", *summary.RepresentativeImage)
}

func TestNewDetail_NilTripAndRoute(t *testing.T) {
	b := &Board{
		ID:        9,
		AuthorID:  2,
		Category:  CategoryReview,
		Title:     "Solo weekend",
		CreatedAt: time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC),
		Author:    user.User{Name: "jun"},
	}

	detail := NewDetail(b, nil, nil, 0)

	assert.Nil(t, detail.Trip)
	require.NotNil(t, detail.Route.RouteDetails)
	assert.Equal(t, 0, detail.Route.RouteDetails.Len())
	assert.Equal(t, "2024-06-01 10:30:00", detail.Board.CreatedAt)
	assert.Empty(t, detail.Board.Images)
}

func TestNewDetail_WithTrip(t *testing.T) {
	b := &Board{
		ID:       3,
		AuthorID: 1,
		Category: CategoryCompanion,
		Author:   user.User{Name: "mina"},
	}
	rt := &route.Route{
		Title:   "East coast loop",
		StartAt: day("2024-07-10"),
		EndAt:   day("2024-07-12"),
		Days: []route.RouteDay{
			{Day: day("2024-07-10"), Places: []route.RouteDayPlace{
				{PlaceName: "Lighthouse", PlaceCategory: route.PlaceAttraction},
			}},
		},
	}
	tr := &trip.Trip{AgeMin: 20, AgeMax: 40, TargetNumber: 4, Gender: trip.GenderAny}

	detail := NewDetail(b, rt, tr, 7)

	require.NotNil(t, detail.Trip)
	assert.Equal(t, 4, detail.Trip.TargetNumber)
	assert.Equal(t, "ANY", detail.Trip.Gender)
	assert.Equal(t, "2024-07-10", detail.Route.StartAt)
	assert.Equal(t, []string{"2024-07-10"}, detail.Route.RouteDetails.Dates())
	assert.Equal(t, int64(7), detail.Board.LikeCount)
}
