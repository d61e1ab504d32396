package hotelctx

import "errors"

var (
	ErrDecodeData = errors.New("hotelctx: decode hotel data")
	ErrNoRooms    = errors.New("hotelctx: hotel data has no rooms")
)
