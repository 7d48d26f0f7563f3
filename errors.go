package releasemanager

import "errors"

// Error
var (
	ErrInvalidSlug             = errors.New("invalid slug format, expected 'owner/name'")
	ErrIncorrectParameterOwner = errors.New("incorrect parameter \"owner\"")
	ErrIncorrectParameterRepo  = errors.New("incorrect parameter \"repo\"")
	ErrInvalidID               = errors.New("invalid repository ID")
	ErrInvalidConstraint       = errors.New("invalid version constraint")
	ErrNetwork                 = errors.New("cannot reach the release source")
	ErrDecode                  = errors.New("cannot decode the list of releases")
	ErrMarkerRead              = errors.New("cannot read model version")
	ErrMarkerWrite             = errors.New("cannot write model version")
)
