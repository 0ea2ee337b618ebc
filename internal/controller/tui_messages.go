package controller

import m "github.com/mouse-blink/lintel/internal/model"

// Message types.
type discoveredMsg struct {
	count int
}

type processedMsg struct {
	path m.Path
}

type finishedMsg struct{}
