package tmdb

// Package tmdb implements catalog.Repository against The Movie Database
// REST API (v3).
