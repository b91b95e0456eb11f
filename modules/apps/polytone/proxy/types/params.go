package types

import (
	errorsmod "cosmossdk.io/errors"
)

// BatchPolicy decides when a batch is finalized.
type BatchPolicy string

const (
	// BatchPolicyFailFast finalizes the batch on the first failing action
	BatchPolicyFailFast BatchPolicy = "fail_fast"
	// BatchPolicyCollectAll waits for every action and reports the first failure by position
	BatchPolicyCollectAll BatchPolicy = "collect_all"
)

// Validate returns an error if the policy is unknown.
func (p BatchPolicy) Validate() error {
	switch p {
	case BatchPolicyFailFast, BatchPolicyCollectAll:
		return nil
	default:
		return errorsmod.Wrapf(ErrInvalidBatchPolicy, "%q", string(p))
	}
}

// Params defines the parameters of the proxy submodule.
type Params struct {
	BatchPolicy BatchPolicy `json:"batch_policy" yaml:"batch_policy"`
}

// NewParams creates a new parameter configuration for the proxy submodule
func NewParams(policy BatchPolicy) Params {
	return Params{
		BatchPolicy: policy,
	}
}

// DefaultParams is the default parameter configuration for the proxy submodule
func DefaultParams() Params {
	return NewParams(BatchPolicyFailFast)
}

// Validate validates all proxy submodule parameters
func (p Params) Validate() error {
	return p.BatchPolicy.Validate()
}
