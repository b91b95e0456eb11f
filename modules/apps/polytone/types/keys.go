package types

const (
	// ModuleName defines the shared polytone codespace and address derivation namespace
	ModuleName = "polytone"

	// Version defines the base channel version proposed by either endpoint in OpenInit
	Version = "polytone-1"

	// ExtensionJSONMsgs is the extension announcing that actions are encoded as JSON messages
	ExtensionJSONMsgs = "JSON-CosmosMsg"

	// TimeoutError is the error reported at message index 0 when a packet times out
	TimeoutError = "timeout"

	// AckGasReserve is the gas kept aside from the block budget to write an acknowledgement
	AckGasReserve uint64 = 100_050
)

// SupportedExtensions returns the extensions every polytone endpoint speaks.
func SupportedExtensions() []string {
	return []string{ExtensionJSONMsgs}
}
