package residue

import (
	"protmotif/internal/domain"
)

// Validate checks seq against the alphabet and the ceiling maxLen. A
// non-positive maxLen disables the length rule.
func Validate(seq string, maxLen int) error {
	if seq == "" {
		return domain.Validationf("sequence is empty")
	}
	if maxLen > 0 && len(seq) > maxLen {
		return domain.Validationf("sequence length %d exceeds %d characters", len(seq), maxLen)
	}
	for i := 0; i < len(seq); i++ {
		if !IsCanonical(seq[i]) {
			return domain.Validationf("invalid residue %q at position %d", seq[i], i+1)
		}
	}
	return nil
}
