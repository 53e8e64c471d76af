package ledger

import (
	"sort"
	"time"

	"github.com/holiman/uint256"
)

type checkpoint struct {
	at    time.Time
	votes uint256.Int
}

// history is an append-only list of checkpoints ordered by time.
type history []checkpoint

func (h history) latest() *uint256.Int {
	if len(h) == 0 {
		return new(uint256.Int)
	}

	return h[len(h)-1].votes.Clone()
}

// at returns the value recorded by the last checkpoint not after t.
func (h history) at(t time.Time) *uint256.Int {
	i := sort.Search(len(h), func(i int) bool { return h[i].at.After(t) })
	if i == 0 {
		return new(uint256.Int)
	}

	return h[i-1].votes.Clone()
}

// push records v at now, replacing the last checkpoint when it has the same time.
func (h history) push(now time.Time, v *uint256.Int) history {
	if n := len(h); n > 0 && h[n-1].at.Equal(now) {
		h[n-1].votes.Set(v)
		return h
	}

	var c checkpoint
	c.at = now
	c.votes.Set(v)

	return append(h, c)
}
