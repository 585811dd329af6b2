package services

import "errors"

// Data errors. An empty result at any of these points almost always means a
// broken pipeline upstream, so callers treat them as fatal.
var (
	ErrNoFiles            = errors.New("no files found")
	ErrNoPackages         = errors.New("no packages found to move")
	ErrNoPackageNames     = errors.New("no package names extracted")
	ErrNoReleaseMatch     = errors.New("no matched packages between dev and release")
	ErrInvalidReleaseType = errors.New("invalid release type")
	ErrNoSignatureChecks  = errors.New("no signature check with a supported method")
)
