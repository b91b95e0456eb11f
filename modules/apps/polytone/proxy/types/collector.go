package types

import (
	errorsmod "cosmossdk.io/errors"

	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
)

// Outcome is the result of executing a single action. A non empty Error marks a failure.
type Outcome struct {
	Data  []byte `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// NewSuccessOutcome returns the outcome of an action which executed and produced data.
func NewSuccessOutcome(data []byte) Outcome {
	return Outcome{Data: data}
}

// NewFailureOutcome returns the outcome of an action which failed with the given message.
func NewFailureOutcome(msg string) Outcome {
	if msg == "" {
		msg = "unknown error"
	}
	return Outcome{Error: msg}
}

// IsFailure returns true if the action failed.
func (o Outcome) IsFailure() bool {
	return o.Error != ""
}

// BatchResult is the aggregate outcome of a finalized batch.
// Failure is set when the batch failed, Results holds per action results otherwise.
type BatchResult struct {
	Results []polytonetypes.ActionResult
	Failure *polytonetypes.ErrorResponse
}

// Success returns true if every action of the batch succeeded.
func (r BatchResult) Success() bool {
	return r.Failure == nil
}

// Collector accumulates the outcomes of an in-flight batch, one slot per action.
type Collector struct {
	Policy BatchPolicy `json:"policy"`
	Slots  []*Outcome  `json:"slots"`
}

// NewCollector returns a collector expecting n outcomes.
func NewCollector(n int, policy BatchPolicy) Collector {
	return Collector{
		Policy: policy,
		Slots:  make([]*Outcome, n),
	}
}

// Pending returns the number of slots which have not been filled yet.
func (c Collector) Pending() int {
	pending := 0
	for _, slot := range c.Slots {
		if slot == nil {
			pending++
		}
	}
	return pending
}

// Record fills the slot at pos and returns the batch result once the batch is finalized.
// A nil result means more outcomes are expected.
func (c *Collector) Record(pos int, outcome Outcome) (*BatchResult, error) {
	if pos < 0 || pos >= len(c.Slots) {
		return nil, errorsmod.Wrapf(ErrInvalidPosition, "position %d, batch of %d", pos, len(c.Slots))
	}

	if c.Slots[pos] != nil {
		return nil, errorsmod.Wrapf(ErrDuplicateResult, "position %d", pos)
	}

	c.Slots[pos] = &outcome

	if outcome.IsFailure() && c.Policy == BatchPolicyFailFast {
		return &BatchResult{Failure: &polytonetypes.ErrorResponse{MessageIndex: uint64(pos), Error: outcome.Error}}, nil
	}

	result, complete := c.Result()
	if !complete {
		return nil, nil
	}

	return result, nil
}

// Result returns the batch result if every slot is filled. A batch of zero actions is complete
// with an empty success.
func (c Collector) Result() (*BatchResult, bool) {
	if c.Pending() != 0 {
		return nil, false
	}

	results := make([]polytonetypes.ActionResult, len(c.Slots))
	for i, slot := range c.Slots {
		if slot.IsFailure() {
			return &BatchResult{Failure: &polytonetypes.ErrorResponse{MessageIndex: uint64(i), Error: slot.Error}}, true
		}
		results[i] = polytonetypes.ActionResult{Data: slot.Data}
	}

	return &BatchResult{Results: results}, true
}
