package ports

import (
	"github.com/user/camview/pkg/pipeline"
)

// AssetLoader loads fixed image assets such as the logo overlay.
//
// The overlay is loaded once when the user enables compositing. A load
// failure leaves the overlay disabled; it is never fatal.
type AssetLoader interface {
	LoadOverlay(path string) (pipeline.Frame, error)
}
