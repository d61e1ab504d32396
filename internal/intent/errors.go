package intent

import "errors"

var (
	ErrDecodeTables      = errors.New("failed to decode intent tables")
	ErrNoCategories      = errors.New("intent tables define no categories")
	ErrEmptyCategory     = errors.New("category has no keywords")
	ErrDuplicateCategory = errors.New("duplicate category")
	ErrNoNavigation      = errors.New("intent tables define no navigation phrases")
)
