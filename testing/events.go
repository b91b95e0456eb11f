package ibctesting

import (
	"errors"
	"slices"
	"strconv"

	testifysuite "github.com/stretchr/testify/suite"

	abci "github.com/cometbft/cometbft/abci/types"

	sdk "github.com/cosmos/cosmos-sdk/types"

	notetypes "github.com/polytone/polytone-go/modules/apps/polytone/note/types"
)

// ParseSequenceFromEvents parses events emitted by a note request and returns the sequence
// the request was sent with.
func ParseSequenceFromEvents(events sdk.Events) (uint64, error) {
	for _, ev := range events.ToABCIEvents() {
		if ev.Type != notetypes.EventTypeSend {
			continue
		}
		if idx := attributeIndex(ev.Attributes, notetypes.AttributeKeySequence); idx != -1 {
			return strconv.ParseUint(ev.Attributes[idx].Value, 10, 64)
		}
	}
	return 0, errors.New("sequence event attribute not found")
}

// AssertEvents asserts that every expected event is present in actual with exactly the same
// attributes, ignoring their order and the msg_index attribute added by the SDK.
func AssertEvents(suite *testifysuite.Suite, expected, actual []abci.Event) {
	for _, expectedEvent := range expected {
		found := slices.ContainsFunc(actual, func(actualEvent abci.Event) bool {
			return matchesEvent(expectedEvent, actualEvent)
		})
		suite.Require().True(found, "event: %s was not found in events", expectedEvent.Type)
	}
}

// HasEvent returns true if an event of the given type carrying the given attribute is present.
func HasEvent(events sdk.Events, eventType, key, value string) bool {
	return slices.ContainsFunc(events.ToABCIEvents(), func(ev abci.Event) bool {
		return ev.Type == eventType && containsAttribute(ev.Attributes, key, value)
	})
}

func matchesEvent(expected, actual abci.Event) bool {
	if expected.Type != actual.Type {
		return false
	}

	attributes := slices.DeleteFunc(slices.Clone(actual.Attributes), func(attr abci.EventAttribute) bool {
		return attr.Key == "msg_index"
	})
	if len(attributes) != len(expected.Attributes) {
		return false
	}

	for _, attr := range expected.Attributes {
		if !containsAttribute(attributes, attr.Key, attr.Value) {
			return false
		}
	}
	return true
}

// containsAttribute ignores the indexed field, which depends on how the events were retrieved.
func containsAttribute(attrs []abci.EventAttribute, key, value string) bool {
	return slices.ContainsFunc(attrs, func(attr abci.EventAttribute) bool {
		return attr.Key == key && attr.Value == value
	})
}

func attributeIndex(attrs []abci.EventAttribute, key string) int {
	return slices.IndexFunc(attrs, func(attr abci.EventAttribute) bool { return attr.Key == key })
}
