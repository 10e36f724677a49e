package catalog

import "github.com/sse-mib/instviz/errors"

// Sentinel errors for the dataset layer.
// Use errors.Is() to classify; wrap with errors.Wrap() to add context.
var (
	// ErrConfig indicates malformed axis configuration. Fatal at startup.
	ErrConfig = errors.New("invalid axis configuration")

	// ErrData indicates a dataset/registry mismatch or malformed readings.
	// Fatal at startup.
	ErrData = errors.New("invalid reading data")

	// ErrUnknownAxis indicates a request named an axis id that is not
	// registered. Recoverable: reject the request, keep prior state.
	ErrUnknownAxis = errors.New("unknown axis")
)
