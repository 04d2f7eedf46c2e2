package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Image CDN constants
const (
	ImageBaseURL = "https://image.tmdb.org/t/p/"

	PosterSizeSmall  = "w185"
	PosterSizeMedium = "w342"
	PosterSizeLarge  = "w500"
	BackdropSize     = "w780"
	OriginalSize     = "original"
)

// RatingPlaceholder is shown for movies nobody has voted on yet
const RatingPlaceholder = "—"

// Movie represents a single catalog entry
type Movie struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	Overview         string  `json:"overview"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	ReleaseDate      string  `json:"release_date"` // YYYY-MM-DD
	OriginalLanguage string  `json:"original_language"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	GenreIDs         []int   `json:"genre_ids,omitempty"`
	Adult            bool    `json:"adult"`
}

// MoviePage is one page of a catalog listing
type MoviePage struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// PosterURL returns the poster image URL for the given size, or "" if the
// movie has no poster.
func (m Movie) PosterURL(size string) string {
	return imageURL(m.PosterPath, size)
}

// BackdropURL returns the backdrop image URL, falling back to the poster.
func (m Movie) BackdropURL(size string) string {
	if m.BackdropPath == "" {
		return m.PosterURL(size)
	}
	return imageURL(m.BackdropPath, size)
}

func imageURL(path, size string) string {
	if path == "" {
		return ""
	}
	if size == "" {
		size = OriginalSize
	}
	return ImageBaseURL + size + "/" + strings.TrimPrefix(path, "/")
}

// Year returns the release year, or 0 if the release date is unknown
func (m Movie) Year() int {
	if len(m.ReleaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(m.ReleaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}

// RatingLabel returns the vote average with one decimal, or a dash if the
// movie has no votes
func (m Movie) RatingLabel() string {
	if m.VoteCount == 0 {
		return RatingPlaceholder
	}
	return fmt.Sprintf("%.1f", m.VoteAverage)
}

// DisplayTitle returns the localized title, original title, or a generic
// label in order of preference
func (m Movie) DisplayTitle() string {
	if t := strings.TrimSpace(m.Title); t != "" {
		return t
	}
	if t := strings.TrimSpace(m.OriginalTitle); t != "" {
		return t
	}
	return fmt.Sprintf("Movie #%d", m.ID)
}

// FindByID returns the first movie with the given identifier
func FindByID(movies []Movie, id int64) (Movie, bool) {
	for _, m := range movies {
		if m.ID == id {
			return m, true
		}
	}
	return Movie{}, false
}
