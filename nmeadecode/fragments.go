package nmeadecode

import (
	"strconv"
	"strings"
)

const maxFragments = 9

// aisFragment is one parsed VDM/VDO line before assembly.
type aisFragment struct {
	Total    int
	Index    int
	GroupID  string
	Channel  string
	Payload  string
	FillBits int
}

func parseFragment(fields []string) (aisFragment, error) {
	total, err := strconv.Atoi(field(fields, 0))
	if err != nil || total < 1 || total > maxFragments {
		return aisFragment{}, newErr(ErrInvalidSentence, "bad fragment total %q", field(fields, 0))
	}
	index, err := strconv.Atoi(field(fields, 1))
	if err != nil || index < 1 || index > total {
		return aisFragment{}, newErr(ErrInvalidSentence, "bad fragment index %q", field(fields, 1))
	}
	channel := field(fields, 3)
	if channel != "" && channel != "A" && channel != "B" {
		return aisFragment{}, newErr(ErrInvalidSentence, "bad channel %q", channel)
	}
	payload := field(fields, 4)
	fillBits, err := strconv.Atoi(field(fields, 5))
	if err != nil || fillBits < 0 || fillBits > 5 {
		return aisFragment{}, newErr(ErrInvalidSentence, "bad fill bits %q", field(fields, 5))
	}
	return aisFragment{
		Total:    total,
		Index:    index,
		GroupID:  field(fields, 2),
		Channel:  channel,
		Payload:  payload,
		FillBits: fillBits,
	}, nil
}

type fragmentKey struct {
	channel string
	groupID string
}

type pendingGroup struct {
	total     int
	nextIndex int
	channel   string
	payload   strings.Builder
	fillBits  int
}

// Assembler holds at most one pending fragment group per (channel,
// group-id). It is not safe for concurrent use; callers needing
// concurrency own one Assembler per stream or guard a shared one
// externally.
type Assembler struct {
	pending map[fragmentKey]*pendingGroup
}

// NewAssembler returns an empty fragment assembler.
func NewAssembler() *Assembler {
	return &Assembler{pending: make(map[fragmentKey]*pendingGroup)}
}

// Reset discards all pending fragment groups.
func (a *Assembler) Reset() {
	a.pending = make(map[fragmentKey]*pendingGroup)
}

// Pending reports how many fragment groups are currently buffered.
func (a *Assembler) Pending() int {
	return len(a.pending)
}

// PendingFragment is an externally visible snapshot of one buffered
// fragment group, for callers that persist assembler state across
// restarts (a straddling multi-part group would otherwise be lost).
type PendingFragment struct {
	Channel   string
	GroupID   string
	Total     int
	NextIndex int
	FillBits  int
	Payload   string
}

// Snapshot returns the currently buffered fragment groups.
func (a *Assembler) Snapshot() []PendingFragment {
	out := make([]PendingFragment, 0, len(a.pending))
	for key, pg := range a.pending {
		out = append(out, PendingFragment{
			Channel:   key.channel,
			GroupID:   key.groupID,
			Total:     pg.total,
			NextIndex: pg.nextIndex,
			FillBits:  pg.fillBits,
			Payload:   pg.payload.String(),
		})
	}
	return out
}

// Restore replaces the assembler's pending groups with a previously
// captured Snapshot.
func (a *Assembler) Restore(snap []PendingFragment) {
	a.pending = make(map[fragmentKey]*pendingGroup, len(snap))
	for _, s := range snap {
		pg := &pendingGroup{total: s.Total, nextIndex: s.NextIndex, channel: s.Channel, fillBits: s.FillBits}
		pg.payload.WriteString(s.Payload)
		a.pending[fragmentKey{channel: s.Channel, groupID: s.GroupID}] = pg
	}
}

// assembled is the result of feeding one fragment into the assembler:
// either a complete bit vector plus channel, or nil when more fragments
// are still needed.
type assembled struct {
	bv      *bitVec
	channel string
}

func (a *Assembler) absorb(frag aisFragment) (*assembled, error) {
	if frag.Total == 1 {
		bv, err := unarmor(frag.Payload, frag.FillBits)
		if err != nil {
			return nil, err
		}
		return &assembled{bv: bv, channel: frag.Channel}, nil
	}

	key := fragmentKey{channel: frag.Channel, groupID: frag.GroupID}

	if frag.Index == 1 {
		pg := &pendingGroup{total: frag.Total, nextIndex: 2, channel: frag.Channel}
		pg.payload.WriteString(frag.Payload)
		pg.fillBits = frag.FillBits
		a.pending[key] = pg
		return nil, nil
	}

	pg, ok := a.pending[key]
	if !ok || pg.nextIndex != frag.Index || pg.total != frag.Total {
		delete(a.pending, key)
		return nil, newErr(ErrFragmentOutOfOrder, "fragment %d/%d for key %v", frag.Index, frag.Total, key)
	}

	pg.payload.WriteString(frag.Payload)
	pg.fillBits = frag.FillBits

	if frag.Index == frag.Total {
		bv, err := unarmor(pg.payload.String(), pg.fillBits)
		delete(a.pending, key)
		if err != nil {
			return nil, err
		}
		return &assembled{bv: bv, channel: pg.channel}, nil
	}

	pg.nextIndex++
	return nil, nil
}
