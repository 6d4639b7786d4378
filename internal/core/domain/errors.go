package domain

import "errors"

var (
	// ErrEmptyQuery is returned when a search is requested without a query.
	ErrEmptyQuery = errors.New("search query must not be empty")

	// ErrInvalidPriceRange is returned for negative bounds or min > max.
	ErrInvalidPriceRange = errors.New("invalid price range")

	// ErrUnknownPlatform is returned when the criteria name a platform no
	// source adapter is registered for.
	ErrUnknownPlatform = errors.New("unknown platform")

	// ErrNoListingsExtracted signals that a document yielded zero listings
	// after the whole selector cascade was tried. It is not a transport
	// failure; the page was fetched but nothing recognizable was on it.
	ErrNoListingsExtracted = errors.New("no listings extracted from document")
)
