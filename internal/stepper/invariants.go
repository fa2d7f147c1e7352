package stepper

import (
	apperrors "github.com/alexisbeaulieu97/stepperlab/pkg/errors"
)

// Check reports the first cross-field rule cfg breaks, or nil.
func Check(cfg Config) error {
	if cfg.Vertical() && cfg.AlternativeLabel {
		return apperrors.NewInvariantError("vertical-label", "vertical layout and alternative label are both enabled")
	}
	if cfg.HasContent && !cfg.Vertical() {
		return apperrors.NewInvariantError("content-layout", "body content requires vertical layout")
	}
	if cfg.HasContent && cfg.AlternativeLabel {
		return apperrors.NewInvariantError("content-label", "body content requires standard labels")
	}
	if cfg.IconSet == nil {
		return apperrors.NewInvariantError("icon-set", "no icon set selected")
	}
	return nil
}
