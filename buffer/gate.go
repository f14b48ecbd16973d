package buffer

// Gate is the veto point every content mutation passes before it is
// committed.
type Gate struct {
	// MaxLines caps the visual line count. Values <= 0 disable the cap.
	MaxLines int

	// Veto, when set, is consulted first; returning false rejects the
	// candidate regardless of its line count.
	Veto func(candidate []string) bool
}

// GateReason describes why TryAccept rejected a candidate.
type GateReason uint8

const (
	GateAccepted GateReason = iota
	GateVetoed
	GateMaxLines
)

func (r GateReason) String() string {
	switch r {
	case GateAccepted:
		return "accepted"
	case GateVetoed:
		return "vetoed"
	case GateMaxLines:
		return "max lines"
	default:
		return "unknown"
	}
}

// TryAccept reports whether candidate may replace a buffer that currently has
// currentLines visual lines.
//
// Growth past MaxLines is rejected, but a buffer already over the cap may
// still shrink or keep its line count.
func (g Gate) TryAccept(currentLines int, candidate []string) bool {
	return g.check(currentLines, candidate) == GateAccepted
}

func (g Gate) check(currentLines int, candidate []string) GateReason {
	if g.Veto != nil && !g.Veto(candidate) {
		return GateVetoed
	}
	if g.MaxLines > 0 && len(candidate) > g.MaxLines && len(candidate) > currentLines {
		return GateMaxLines
	}
	return GateAccepted
}
