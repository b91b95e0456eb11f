package telemetry

import (
	"strconv"

	"github.com/hashicorp/go-metrics"

	"github.com/cosmos/cosmos-sdk/telemetry"

	coremetrics "github.com/cosmos/ibc-go/v10/modules/core/metrics"

	"github.com/polytone/polytone-go/modules/apps/polytone/types"
)

const (
	labelKind    = "kind"
	labelSuccess = "success"
	labelResult  = "result"
)

// ReportSend records a request sent by a note.
func ReportSend(moduleName, sourcePort, sourceChannel string, kind types.RequestKind, batchSize int) {
	labels := []metrics.Label{
		telemetry.NewLabel(coremetrics.LabelSourcePort, sourcePort),
		telemetry.NewLabel(coremetrics.LabelSourceChannel, sourceChannel),
		telemetry.NewLabel(labelKind, kind.String()),
	}

	telemetry.SetGaugeWithLabels(
		[]string{"tx", "msg", "ibc", moduleName, "batch_size"},
		float32(batchSize),
		[]metrics.Label{telemetry.NewLabel(labelKind, kind.String())},
	)

	telemetry.IncrCounterWithLabels(
		[]string{"ibc", moduleName, "send"},
		1,
		labels,
	)
}

// ReportOnRecvPacket records a request executed by a voice.
func ReportOnRecvPacket(moduleName, destinationPort, destinationChannel string, kind types.RequestKind, callback types.Callback) {
	labels := []metrics.Label{
		telemetry.NewLabel(coremetrics.LabelDestinationPort, destinationPort),
		telemetry.NewLabel(coremetrics.LabelDestinationChannel, destinationChannel),
		telemetry.NewLabel(labelKind, kind.String()),
		telemetry.NewLabel(labelSuccess, strconv.FormatBool(callback.Success())),
	}

	telemetry.IncrCounterWithLabels(
		[]string{"ibc", moduleName, "receive"},
		1,
		labels,
	)
}

// ReportCallback records the resolution of a pending request: result is one of ack or timeout.
func ReportCallback(moduleName, sourcePort, sourceChannel, result string, callback types.Callback) {
	labels := []metrics.Label{
		telemetry.NewLabel(coremetrics.LabelSourcePort, sourcePort),
		telemetry.NewLabel(coremetrics.LabelSourceChannel, sourceChannel),
		telemetry.NewLabel(labelResult, result),
		telemetry.NewLabel(labelSuccess, strconv.FormatBool(callback.Success())),
	}

	if result == "timeout" {
		labels = append(labels, telemetry.NewLabel(coremetrics.LabelTimeoutType, "packet"))
	}

	telemetry.IncrCounterWithLabels(
		[]string{"ibc", moduleName, "callback"},
		1,
		labels,
	)
}
