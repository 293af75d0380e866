package mocks

import (
	"github.com/user/camview/pkg/pipeline"
	"github.com/user/camview/pkg/ports"
)

// AssetLoader is a mock implementation of ports.AssetLoader.
type AssetLoader struct {
	LoadOverlayFunc func(path string) (pipeline.Frame, error)
}

func (m *AssetLoader) LoadOverlay(path string) (pipeline.Frame, error) {
	if m.LoadOverlayFunc != nil {
		return m.LoadOverlayFunc(path)
	}
	return pipeline.NewFrame(2, 2, 3), nil
}

// Ensure AssetLoader implements ports.AssetLoader
var _ ports.AssetLoader = (*AssetLoader)(nil)
