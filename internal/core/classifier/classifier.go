// Package classifier maps a proposal's calls to the delay and threshold tiers it must satisfy.
package classifier

import (
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	sdkerrors "github.com/divadao/divagov/sdk/errors"
	"github.com/divadao/divagov/types"
)

// CancelSelector is the selector of the timelock's cancel(bytes32) entry point. Calls to it on the
// bound timelock are emergency cancellations.
var CancelSelector = types.SelectorFromSignature("cancel(bytes32)")

var (
	// ErrCancellationWithValue is returned when an emergency cancellation carries value.
	ErrCancellationWithValue = fmt.Errorf("%w: cancellation proposal cannot have value", sdkerrors.ErrValidation)

	// ErrNoCalls is returned when asked to classify an empty bundle.
	ErrNoCalls = sdkerrors.Validation("no calls to classify")

	// ErrReservedSelector is returned when a configuration update would change the tiers of the
	// cancellation selector.
	ErrReservedSelector = fmt.Errorf("%w: selector %s is reserved", types.ErrInvalidDelaysConfiguration, CancelSelector)
)

// Entry is one row of the selector table.
type Entry struct {
	Selector  types.Selector      `json:"selector"`
	Delay     types.DelayTier     `json:"delay"`
	Threshold types.ThresholdTier `json:"threshold"`
}

// Classifier holds the selector table. Selectors without an entry fall back to DEFAULT/DEFAULT.
type Classifier struct {
	mu           sync.RWMutex
	entries      map[types.Selector]Entry
	order        []types.Selector
	cancelTarget common.Address
}

// New builds a classifier bound to the timelock at cancelTarget and loads cfg.
func New(cancelTarget common.Address, cfg types.SelectorConfig) (*Classifier, error) {
	c := &Classifier{
		entries:      make(map[types.Selector]Entry),
		cancelTarget: cancelTarget,
	}
	if err := c.Configure(cfg); err != nil {
		return nil, err
	}

	return c, nil
}

// Classify folds the tiers of calls, keeping the most restrictive of each. Any call carrying value
// forces the LONG delay. A cancellation call on the bound timelock contributes the SHORT delay.
func (c *Classifier) Classify(calls []types.Call) (types.DelayTier, types.ThresholdTier, error) {
	if len(calls) == 0 {
		return 0, 0, ErrNoCalls
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	delay := types.DelayTierShort
	threshold := types.ThresholdTierDefault
	hasValue := false

	for i, call := range calls {
		entry := c.lookupLocked(call.Data)

		if c.isCancellationLocked(call) {
			if call.HasValue() {
				return 0, 0, fmt.Errorf("%w: call %d", ErrCancellationWithValue, i)
			}
			entry.Delay = types.DelayTierShort
		}

		delay = delay.MoreRestrictive(entry.Delay)
		threshold = threshold.MoreRestrictive(entry.Threshold)
		hasValue = hasValue || call.HasValue()
	}

	if hasValue {
		delay = types.DelayTierLong
	}

	return delay, threshold, nil
}

// IsCancellation reports whether call cancels a timelock operation on the bound timelock.
func (c *Classifier) IsCancellation(call types.Call) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.isCancellationLocked(call)
}

// Lookup returns the entry of a selector, or the DEFAULT/DEFAULT fallback when it has none.
func (c *Classifier) Lookup(selector types.Selector) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[selector]
	if !ok {
		return Entry{Selector: selector}, false
	}

	return entry, true
}

// Configure sets delay and threshold tiers for the selectors in cfg. Nothing is applied unless the
// whole update is valid. The cancellation selector may only be listed with the SHORT delay.
func (c *Classifier) Configure(cfg types.SelectorConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	for i, sel := range cfg.FunctionSelectors {
		if sel == CancelSelector && cfg.FunctionDelays[i] != types.DelayTierShort {
			return fmt.Errorf("%w: delay tier must be %s", ErrReservedSelector, types.DelayTierShort)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i, sel := range cfg.FunctionSelectors {
		c.putLocked(Entry{Selector: sel, Delay: cfg.FunctionDelays[i], Threshold: cfg.FunctionThresholds[i]})
	}

	return nil
}

// ConfigureDelays sets delay tiers for selectors. Existing entries keep their threshold tier.
func (c *Classifier) ConfigureDelays(selectors []types.Selector, delays []types.DelayTier) error {
	if len(selectors) != len(delays) {
		return fmt.Errorf("%w: %d selectors, %d delays", types.ErrInvalidDelaysConfiguration, len(selectors), len(delays))
	}
	for i, d := range delays {
		if !d.Valid() {
			return fmt.Errorf("%w: entry %d has unknown delay tier %d", types.ErrInvalidDelaysConfiguration, i, d)
		}
	}
	if err := checkReserved(selectors); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i, sel := range selectors {
		entry := c.entries[sel]
		entry.Selector = sel
		entry.Delay = delays[i]
		c.putLocked(entry)
	}

	return nil
}

// ConfigureThresholds sets threshold tiers for selectors. Existing entries keep their delay tier.
func (c *Classifier) ConfigureThresholds(selectors []types.Selector, thresholds []types.ThresholdTier) error {
	if len(selectors) != len(thresholds) {
		return fmt.Errorf("%w: %d selectors, %d thresholds",
			types.ErrInvalidThresholdConfiguration, len(selectors), len(thresholds))
	}
	for i, th := range thresholds {
		if !th.Valid() {
			return fmt.Errorf("%w: entry %d has unknown threshold tier %d", types.ErrInvalidThresholdConfiguration, i, th)
		}
	}
	if err := checkReserved(selectors); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i, sel := range selectors {
		entry := c.entries[sel]
		entry.Selector = sel
		entry.Threshold = thresholds[i]
		c.putLocked(entry)
	}

	return nil
}

// Entries returns the table in insertion order.
func (c *Classifier) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Entry, 0, len(c.order))
	for _, sel := range c.order {
		out = append(out, c.entries[sel])
	}

	return out
}

// SetCancelTarget rebinds the timelock whose cancel calls are treated as emergency cancellations.
func (c *Classifier) SetCancelTarget(target common.Address) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelTarget = target
}

// CancelTarget returns the timelock whose cancel calls classify as emergency cancellations.
func (c *Classifier) CancelTarget() common.Address {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.cancelTarget
}

func (c *Classifier) lookupLocked(data []byte) Entry {
	sel, err := types.SelectorOf(data)
	if err != nil {
		// Plain value transfers carry no selector.
		return Entry{}
	}
	if entry, ok := c.entries[sel]; ok {
		return entry
	}

	return Entry{Selector: sel}
}

func (c *Classifier) isCancellationLocked(call types.Call) bool {
	if call.Target != c.cancelTarget {
		return false
	}
	sel, err := call.Selector()

	return err == nil && sel == CancelSelector
}

func (c *Classifier) putLocked(entry Entry) {
	if _, ok := c.entries[entry.Selector]; !ok {
		c.order = append(c.order, entry.Selector)
	}
	c.entries[entry.Selector] = entry
}

func checkReserved(selectors []types.Selector) error {
	for _, sel := range selectors {
		if sel == CancelSelector {
			return ErrReservedSelector
		}
	}

	return nil
}
