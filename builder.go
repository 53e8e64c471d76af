package divagov

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/go-playground/validator/v10"

	"github.com/divadao/divagov/bindings"
	"github.com/divadao/divagov/types"
)

// ProposalRequest holds the arguments of a Propose call.
type ProposalRequest struct {
	Targets     []common.Address `validate:"required,min=1"`
	Values      []*big.Int       `validate:"required,min=1"`
	Calldatas   [][]byte         `validate:"required,min=1"`
	Description string           `validate:"required"`
}

// Validate checks that the request has a description and at least one call, with the three
// arrays of equal length.
func (r *ProposalRequest) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(r); err != nil {
		return fmt.Errorf("%w: %w", ErrEmptyProposal, err)
	}
	if len(r.Targets) != len(r.Values) || len(r.Targets) != len(r.Calldatas) {
		return fmt.Errorf("%w: %d targets, %d values, %d calldatas",
			ErrInvalidProposalLength, len(r.Targets), len(r.Values), len(r.Calldatas))
	}

	return nil
}

func (r *ProposalRequest) DescriptionHash() common.Hash {
	return DescriptionHash(r.Description)
}

// ID returns the id the proposal will be created with.
func (r *ProposalRequest) ID() (common.Hash, error) {
	return HashProposal(r.Targets, r.Values, r.Calldatas, r.DescriptionHash())
}

// Calls returns the actions of the request.
func (r *ProposalRequest) Calls() []types.Call {
	calls := make([]types.Call, 0, len(r.Targets))
	for i := range r.Targets {
		if i >= len(r.Values) || i >= len(r.Calldatas) {
			break
		}
		calls = append(calls, types.NewCall(r.Targets[i], r.Values[i], r.Calldatas[i]))
	}

	return calls
}

type proposalRequestJSON struct {
	Targets     []common.Address        `json:"targets"`
	Values      []*math.HexOrDecimal256 `json:"values"`
	Calldatas   []hexutil.Bytes         `json:"calldatas"`
	Description string                  `json:"description"`
}

func (r ProposalRequest) MarshalJSON() ([]byte, error) {
	out := proposalRequestJSON{
		Targets:     r.Targets,
		Values:      make([]*math.HexOrDecimal256, len(r.Values)),
		Calldatas:   make([]hexutil.Bytes, len(r.Calldatas)),
		Description: r.Description,
	}
	for i, v := range r.Values {
		if v == nil {
			v = new(big.Int)
		}
		out.Values[i] = (*math.HexOrDecimal256)(v)
	}
	for i, d := range r.Calldatas {
		out.Calldatas[i] = d
	}

	return json.Marshal(out)
}

func (r *ProposalRequest) UnmarshalJSON(b []byte) error {
	var raw proposalRequestJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	r.Targets = raw.Targets
	r.Values = make([]*big.Int, len(raw.Values))
	for i, v := range raw.Values {
		r.Values[i] = new(big.Int)
		if v != nil {
			r.Values[i].Set((*big.Int)(v))
		}
	}
	r.Calldatas = make([][]byte, len(raw.Calldatas))
	for i, d := range raw.Calldatas {
		r.Calldatas[i] = d
	}
	r.Description = raw.Description

	return nil
}

// NewProposalRequest reads a JSON proposal request from reader and validates it.
func NewProposalRequest(reader io.Reader) (*ProposalRequest, error) {
	var r ProposalRequest
	if err := json.NewDecoder(reader).Decode(&r); err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	return &r, nil
}

// WriteProposalRequest writes r to w as indented JSON.
func WriteProposalRequest(w io.Writer, r *ProposalRequest) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

// ProposalBuilder assembles a ProposalRequest call by call.
type ProposalBuilder struct {
	request ProposalRequest
	errs    []error
}

func NewProposalBuilder() *ProposalBuilder {
	return &ProposalBuilder{}
}

// SetDescription sets the description of the proposal. Its hash is part of the proposal id.
func (b *ProposalBuilder) SetDescription(description string) *ProposalBuilder {
	b.request.Description = description
	return b
}

// AddCall appends a call of data on target carrying value.
func (b *ProposalBuilder) AddCall(target common.Address, value *big.Int, data []byte) *ProposalBuilder {
	if value == nil {
		value = new(big.Int)
	}
	b.request.Targets = append(b.request.Targets, target)
	b.request.Values = append(b.request.Values, value)
	b.request.Calldatas = append(b.request.Calldatas, data)

	return b
}

// AddMethodCall appends a call of method on target, packing args with the ABI in md. Packing
// errors are reported by Build.
func (b *ProposalBuilder) AddMethodCall(
	target common.Address, value *big.Int, md *bind.MetaData, method string, args ...any,
) *ProposalBuilder {
	data, err := bindings.Pack(md, method, args...)
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}

	return b.AddCall(target, value, data)
}

// Build validates and returns the constructed ProposalRequest.
func (b *ProposalBuilder) Build() (*ProposalRequest, error) {
	if err := errors.Join(b.errs...); err != nil {
		return nil, err
	}
	if err := b.request.Validate(); err != nil {
		return nil, err
	}

	r := b.request

	return &r, nil
}
