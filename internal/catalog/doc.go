package catalog

// Package catalog owns the fetch coordinators behind every screen section.
// Each coordinator holds exactly one resource.Resource value, starts one
// fetch on creation, and republishes the outcome to its subscribers. The
// movie API itself is an external collaborator reached through Repository.
