package generator

import "errors"

var (
	// ErrDataFormat means the details model answered without a required field
	ErrDataFormat = errors.New("invalid data structure received from details model")
	// ErrEmptyResult means the image model answered with no images
	ErrEmptyResult = errors.New("no image was generated")
	// ErrTransport covers every other provider or network failure
	ErrTransport = errors.New("generation service request failed")

	ErrDetailsFailed = errors.New("failed to generate card details")
	ErrImageFailed   = errors.New("failed to generate card image")
)
