// Package modkit provides module wiring and core deps
package modkit

import (
	"zenhan/internal/core/jptext"
	"zenhan/internal/core/profile"
	"zenhan/internal/platform/config"
	"zenhan/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log      logger.Logger
	Cfg      config.Conf
	Text     *jptext.Normalizer
	Profiles *profile.Set
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check for optional engines
func (d Deps) ZeroOK() bool { return true }
