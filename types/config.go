package types //nolint:revive

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/go-playground/validator/v10"

	sdkerrors "github.com/divadao/divagov/sdk/errors"
)

var (
	ErrInvalidConfig = fmt.Errorf("%w: invalid config", sdkerrors.ErrValidation)

	// ErrInvalidDelaysSetup is returned when the tier durations break minDelay <= SHORT < DEFAULT < LONG.
	ErrInvalidDelaysSetup = fmt.Errorf("%w: invalid delays setup", ErrInvalidConfig)

	// ErrInvalidDelaysConfiguration is returned when selectors and delay tiers do not line up.
	ErrInvalidDelaysConfiguration = fmt.Errorf("%w: invalid delay type configuration", ErrInvalidConfig)

	// ErrInvalidThresholdConfiguration is returned when selectors and threshold tiers do not line up.
	ErrInvalidThresholdConfiguration = fmt.Errorf("%w: invalid threshold type configuration", ErrInvalidConfig)
)

// DelayConfig holds the duration behind each delay tier.
type DelayConfig struct {
	Short   Duration `json:"short"`
	Default Duration `json:"default"`
	Long    Duration `json:"long"`
}

// Validate checks minDelay <= SHORT < DEFAULT < LONG.
func (d DelayConfig) Validate(minDelay time.Duration) error {
	if d.Short.Duration < minDelay {
		return fmt.Errorf("%w: short delay %s below timelock minimum %s", ErrInvalidDelaysSetup, d.Short, minDelay)
	}
	if d.Short.Duration >= d.Default.Duration {
		return fmt.Errorf("%w: short delay %s must be below default delay %s", ErrInvalidDelaysSetup, d.Short, d.Default)
	}
	if d.Default.Duration >= d.Long.Duration {
		return fmt.Errorf("%w: default delay %s must be below long delay %s", ErrInvalidDelaysSetup, d.Default, d.Long)
	}

	return nil
}

// For returns the duration of the given tier.
func (d DelayConfig) For(tier DelayTier) time.Duration {
	switch tier {
	case DelayTierShort:
		return d.Short.Duration
	case DelayTierLong:
		return d.Long.Duration
	default:
		return d.Default.Duration
	}
}

// With returns a copy of d with the duration of tier replaced.
func (d DelayConfig) With(tier DelayTier, duration time.Duration) DelayConfig {
	switch tier {
	case DelayTierShort:
		d.Short = NewDuration(duration)
	case DelayTierLong:
		d.Long = NewDuration(duration)
	default:
		d.Default = NewDuration(duration)
	}

	return d
}

// SelectorConfig lists selector to tier mappings as three parallel arrays, the shape in which
// governance actions carry them.
type SelectorConfig struct {
	FunctionSelectors  []Selector      `json:"functionSelectors"`
	FunctionDelays     []DelayTier     `json:"functionDelays"`
	FunctionThresholds []ThresholdTier `json:"functionThresholds"`
}

// Validate checks that the three arrays have equal length and hold known tiers.
func (s SelectorConfig) Validate() error {
	if len(s.FunctionSelectors) != len(s.FunctionDelays) {
		return fmt.Errorf("%w: %d selectors, %d delays",
			ErrInvalidDelaysConfiguration, len(s.FunctionSelectors), len(s.FunctionDelays))
	}
	if len(s.FunctionSelectors) != len(s.FunctionThresholds) {
		return fmt.Errorf("%w: %d selectors, %d thresholds",
			ErrInvalidThresholdConfiguration, len(s.FunctionSelectors), len(s.FunctionThresholds))
	}
	for i, d := range s.FunctionDelays {
		if !d.Valid() {
			return fmt.Errorf("%w: entry %d has unknown delay tier %d", ErrInvalidDelaysConfiguration, i, d)
		}
	}
	for i, th := range s.FunctionThresholds {
		if !th.Valid() {
			return fmt.Errorf("%w: entry %d has unknown threshold tier %d", ErrInvalidThresholdConfiguration, i, th)
		}
	}

	return nil
}

// GovernorConfig configures the governance engine.
type GovernorConfig struct {
	Name              string                `json:"name" validate:"required"`
	VotingDelay       Duration              `json:"votingDelay"`
	VotingPeriod      Duration              `json:"votingPeriod" validate:"required"`
	ProposalThreshold *math.HexOrDecimal256 `json:"proposalThreshold" validate:"required"`
	QuorumAbsolute    *math.HexOrDecimal256 `json:"quorumAbsolute" validate:"required"`

	// GracePeriod bounds how long a queued proposal stays executable after it becomes ready.
	// Zero disables expiry.
	GracePeriod Duration       `json:"gracePeriod"`
	Delays      DelayConfig    `json:"delays"`
	Selectors   SelectorConfig `json:"selectors"`
}

// Validate runs tag-based validation and the tier checks. minDelay is the timelock minimum the
// SHORT tier must respect.
func (c *GovernorConfig) Validate(minDelay time.Duration) error {
	if err := newValidator().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.VotingDelay.Duration < 0 || c.VotingPeriod.Duration <= 0 || c.GracePeriod.Duration < 0 {
		return fmt.Errorf("%w: voting windows and grace period must not be negative", ErrInvalidConfig)
	}
	if err := checkAmount("proposalThreshold", c.ProposalThreshold); err != nil {
		return err
	}
	if err := checkAmount("quorumAbsolute", c.QuorumAbsolute); err != nil {
		return err
	}
	if err := c.Delays.Validate(minDelay); err != nil {
		return err
	}

	return c.Selectors.Validate()
}

// TimelockConfig configures the timelock scheduler.
type TimelockConfig struct {
	MinDelay Duration       `json:"minDelay"`
	Admin    common.Address `json:"admin" validate:"required"`
}

func (c *TimelockConfig) Validate() error {
	if err := newValidator().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.MinDelay.Duration < 0 {
		return fmt.Errorf("%w: negative min delay", ErrInvalidConfig)
	}

	return nil
}

// DistributorConfig fixes the claim window of the merkle distributor.
type DistributorConfig struct {
	MerkleRoot         common.Hash    `json:"merkleRoot" validate:"required"`
	EndTime            time.Time      `json:"endTime" validate:"required"`
	AcceptanceHash     common.Hash    `json:"acceptanceHash" validate:"required"`
	NonClaimedReceiver common.Address `json:"nonClaimedReceiver" validate:"required"`

	// NumClaims sizes the claim bitmap up front. Optional.
	NumClaims uint `json:"numClaims"`
}

func (c *DistributorConfig) Validate() error {
	if err := newValidator().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// LedgerConfig configures the governance token.
type LedgerConfig struct {
	Name   string `json:"name" validate:"required"`
	Symbol string `json:"symbol" validate:"required"`

	// InitialSupply must be minted exactly by the initial distribution.
	InitialSupply *math.HexOrDecimal256 `json:"initialSupply" validate:"required"`

	// TotalSupply is reached by the one-shot foundation mint.
	TotalSupply *math.HexOrDecimal256 `json:"totalSupply" validate:"required"`

	// FoundationMinter may perform the foundation mint once.
	FoundationMinter common.Address `json:"foundationMinter"`

	// TransferLockPeriod is the minimum time after deployment before transfers may be unpaused.
	TransferLockPeriod Duration `json:"transferLockPeriod"`
}

func (c *LedgerConfig) Validate() error {
	if err := newValidator().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := checkAmount("initialSupply", c.InitialSupply); err != nil {
		return err
	}
	if err := checkAmount("totalSupply", c.TotalSupply); err != nil {
		return err
	}
	if (*big.Int)(c.InitialSupply).Cmp((*big.Int)(c.TotalSupply)) > 0 {
		return fmt.Errorf("%w: initial supply exceeds total supply", ErrInvalidConfig)
	}

	return nil
}

var errAmountRange = errors.New("must be within uint256 range")

func checkAmount(name string, v *math.HexOrDecimal256) error {
	b := (*big.Int)(v)
	if b == nil || b.Sign() < 0 || b.BitLen() > 256 {
		return fmt.Errorf("%w: %s %w", ErrInvalidConfig, name, errAmountRange)
	}

	return nil
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}
