package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidTier = errors.New("invalid tier")

// DelayTier selects how long an approved proposal waits in the timelock. The numeric values are
// the ones used in calldata and configuration arrays.
type DelayTier uint8

const (
	DelayTierDefault DelayTier = 0
	DelayTierShort   DelayTier = 1
	DelayTierLong    DelayTier = 2
)

// delayRank is the restrictiveness order of delay tiers. It is spelled out instead of relying on
// the numeric values, which do not follow it.
var delayRank = map[DelayTier]int{
	DelayTierShort:   0,
	DelayTierDefault: 1,
	DelayTierLong:    2,
}

// StringToDelayTier converts a string to a DelayTier.
var StringToDelayTier = map[string]DelayTier{
	"default": DelayTierDefault,
	"short":   DelayTierShort,
	"long":    DelayTierLong,
}

// Valid reports whether d is one of the known delay tiers.
func (d DelayTier) Valid() bool {
	_, ok := delayRank[d]
	return ok
}

// Rank returns the position of the tier in the SHORT < DEFAULT < LONG order.
func (d DelayTier) Rank() int {
	return delayRank[d]
}

// MoreRestrictive returns whichever of d and other makes a proposal wait longer.
func (d DelayTier) MoreRestrictive(other DelayTier) DelayTier {
	if other.Rank() > d.Rank() {
		return other
	}

	return d
}

func (d DelayTier) String() string {
	switch d {
	case DelayTierDefault:
		return "default"
	case DelayTierShort:
		return "short"
	case DelayTierLong:
		return "long"
	default:
		return fmt.Sprintf("DelayTier(%d)", uint8(d))
	}
}

// ParseDelayTier parses the name or numeric value of a delay tier.
func ParseDelayTier(s string) (DelayTier, error) {
	if tier, ok := StringToDelayTier[strings.ToLower(s)]; ok {
		return tier, nil
	}

	if n, err := strconv.ParseUint(s, 10, 8); err == nil && DelayTier(n).Valid() {
		return DelayTier(n), nil
	}

	return 0, fmt.Errorf("%w: unknown delay tier %q", ErrInvalidTier, s)
}

// DelayTierFromUint8 converts a raw calldata value into a DelayTier.
func DelayTierFromUint8(v uint8) (DelayTier, error) {
	tier := DelayTier(v)
	if !tier.Valid() {
		return 0, fmt.Errorf("%w: delay tier %d", ErrInvalidTier, v)
	}

	return tier, nil
}

func (d DelayTier) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DelayTier) UnmarshalJSON(b []byte) error {
	tier, err := unmarshalTier(b, ParseDelayTier)
	if err != nil {
		return err
	}
	*d = tier

	return nil
}

// ThresholdTier selects the share of For votes over For+Against a proposal needs to pass.
type ThresholdTier uint8

const (
	ThresholdTierDefault  ThresholdTier = 0
	ThresholdTierModerate ThresholdTier = 1
	ThresholdTierLarge    ThresholdTier = 2
)

var thresholdRank = map[ThresholdTier]int{
	ThresholdTierDefault:  0,
	ThresholdTierModerate: 1,
	ThresholdTierLarge:    2,
}

// thresholdPercent is the support percentage that must be strictly exceeded.
var thresholdPercent = map[ThresholdTier]uint64{
	ThresholdTierDefault:  50,
	ThresholdTierModerate: 66,
	ThresholdTierLarge:    75,
}

// StringToThresholdTier converts a string to a ThresholdTier.
var StringToThresholdTier = map[string]ThresholdTier{
	"default":  ThresholdTierDefault,
	"moderate": ThresholdTierModerate,
	"large":    ThresholdTierLarge,
}

// Valid reports whether t is one of the known threshold tiers.
func (t ThresholdTier) Valid() bool {
	_, ok := thresholdRank[t]
	return ok
}

// Rank returns the position of the tier in the DEFAULT < MODERATE < LARGE order.
func (t ThresholdTier) Rank() int {
	return thresholdRank[t]
}

// RequiredPercent returns the percentage of For+Against that For votes must exceed.
func (t ThresholdTier) RequiredPercent() uint64 {
	return thresholdPercent[t]
}

// MoreRestrictive returns whichever of t and other demands more support.
func (t ThresholdTier) MoreRestrictive(other ThresholdTier) ThresholdTier {
	if other.Rank() > t.Rank() {
		return other
	}

	return t
}

func (t ThresholdTier) String() string {
	switch t {
	case ThresholdTierDefault:
		return "default"
	case ThresholdTierModerate:
		return "moderate"
	case ThresholdTierLarge:
		return "large"
	default:
		return fmt.Sprintf("ThresholdTier(%d)", uint8(t))
	}
}

// ParseThresholdTier parses the name or numeric value of a threshold tier.
func ParseThresholdTier(s string) (ThresholdTier, error) {
	if tier, ok := StringToThresholdTier[strings.ToLower(s)]; ok {
		return tier, nil
	}

	if n, err := strconv.ParseUint(s, 10, 8); err == nil && ThresholdTier(n).Valid() {
		return ThresholdTier(n), nil
	}

	return 0, fmt.Errorf("%w: unknown threshold tier %q", ErrInvalidTier, s)
}

// ThresholdTierFromUint8 converts a raw calldata value into a ThresholdTier.
func ThresholdTierFromUint8(v uint8) (ThresholdTier, error) {
	tier := ThresholdTier(v)
	if !tier.Valid() {
		return 0, fmt.Errorf("%w: threshold tier %d", ErrInvalidTier, v)
	}

	return tier, nil
}

func (t ThresholdTier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *ThresholdTier) UnmarshalJSON(b []byte) error {
	tier, err := unmarshalTier(b, ParseThresholdTier)
	if err != nil {
		return err
	}
	*t = tier

	return nil
}

// unmarshalTier accepts both the string name and the raw number of a tier.
func unmarshalTier[T any](b []byte, parse func(string) (T, error)) (T, error) {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		var zero T
		return zero, err
	}

	switch value := v.(type) {
	case string:
		return parse(value)
	case float64:
		return parse(fmt.Sprintf("%v", value))
	default:
		var zero T
		return zero, fmt.Errorf("%w: invalid tier type %T", ErrInvalidTier, v)
	}
}
