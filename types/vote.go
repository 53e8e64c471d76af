package types

import "fmt"

// VoteType is the direction of a vote, numbered as in GovernorBravo-style counting.
type VoteType uint8

const (
	VoteAgainst VoteType = 0
	VoteFor     VoteType = 1
	VoteAbstain VoteType = 2
)

// Valid reports whether v is Against, For or Abstain.
func (v VoteType) Valid() bool {
	return v <= VoteAbstain
}

func (v VoteType) String() string {
	switch v {
	case VoteAgainst:
		return "against"
	case VoteFor:
		return "for"
	case VoteAbstain:
		return "abstain"
	default:
		return fmt.Sprintf("VoteType(%d)", uint8(v))
	}
}

// StringToVoteType converts a string to a VoteType.
var StringToVoteType = map[string]VoteType{
	"against": VoteAgainst,
	"for":     VoteFor,
	"abstain": VoteAbstain,
}
