// Package resource models the lifecycle of one asynchronous fetch as an
// immutable tagged value: Loading, Success(data) or Error(cause).
//
// Payloads are only reachable through a tag check: Match and Fold require a
// handler for every tag, and Value/Err are comma-ok accessors.
//
//	movies := resource.Success([]model.Movie{m})
//	movies.Match(
//	    func() { showSpinner() },
//	    func(list []model.Movie) { showRail(list) },
//	    func(err error) { showError(err) },
//	)
package resource
