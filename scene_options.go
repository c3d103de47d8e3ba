package trellis

import (
	"fmt"
	"time"
)

// SceneOption is a functional option for configuring a Scene.
type SceneOption func(*Scene) error

// WithFrameRate sets the target frame rate for Run's loop.
// Default is 60 fps. Valid range is 1-240 fps.
func WithFrameRate(fps int) SceneOption {
	return func(s *Scene) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		s.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithQueueSize sets the capacity of the dispatch queue.
// Default is 256. Must be at least 1.
func WithQueueSize(size int) SceneOption {
	return func(s *Scene) error {
		if size < 1 {
			return fmt.Errorf("dispatch queue size must be at least 1")
		}
		s.queueSize = size
		return nil
	}
}

// WithTheme applies a theme over the backend's root environment, now and
// again after every backend-signaled environment change.
func WithTheme(t *Theme) SceneOption {
	return func(s *Scene) error {
		if t == nil {
			return fmt.Errorf("nil theme")
		}
		s.theme = t
		return nil
	}
}

// WithThemeFile loads a YAML theme file and applies it as WithTheme does.
func WithThemeFile(path string) SceneOption {
	return func(s *Scene) error {
		t, err := LoadTheme(path)
		if err != nil {
			return err
		}
		s.theme = t
		return nil
	}
}
