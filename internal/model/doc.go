package model

// Package model defines the catalog data structures shared across the app:
// movies as returned by the metadata API and paged result envelopes. The UI
// only reads these values; they are owned by the data layer.
