package entity

import "errors"

var (
	// Lookup errors
	ErrCountryNotFound           = errors.New("country not found")
	ErrTimeZoneNotFound          = errors.New("time zone not found")
	ErrUpstream                  = errors.New("upstream error")
	ErrMalformedUpstreamResponse = errors.New("malformed upstream response")

	// Flag errors
	ErrFlagNotFound    = errors.New("flag not found")
	ErrImageDownload   = errors.New("image download failed")
	ErrImageDecode     = errors.New("image decode failed")
	ErrImageEncode     = errors.New("image encode failed")
	ErrFilesystemWrite = errors.New("filesystem write failed")
)
