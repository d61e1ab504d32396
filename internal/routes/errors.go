package routes

import "errors"

var (
	ErrEmptyTable       = errors.New("route table has no routes")
	ErrEmptyPath        = errors.New("route path is empty")
	ErrDuplicatePath    = errors.New("duplicate route path")
	ErrEmptyPhrase      = errors.New("keyword phrase is empty")
	ErrUnknownTarget    = errors.New("keyword targets unknown route")
	ErrShadowedPhrase   = errors.New("keyword phrase is shadowed by an earlier phrase")
	ErrDecodeRouteTable = errors.New("failed to decode route table")
)
