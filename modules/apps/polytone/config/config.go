package config

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cast"

	servertypes "github.com/cosmos/cosmos-sdk/server/types"

	notetypes "github.com/polytone/polytone-go/modules/apps/polytone/note/types"
	proxytypes "github.com/polytone/polytone-go/modules/apps/polytone/proxy/types"
	voicetypes "github.com/polytone/polytone-go/modules/apps/polytone/voice/types"
)

// Namespace prefixes every polytone key of the node configuration.
const Namespace = "polytone"

// Node configuration keys
const (
	FlagCallbackGasLimit = Namespace + ".callback-gas-limit"
	FlagController       = Namespace + ".controller"
	FlagPairConnection   = Namespace + ".pair-connection"
	FlagPairPort         = Namespace + ".pair-port"
	FlagProxyCodeHash    = Namespace + ".proxy-code-hash"
	FlagBlockMaxGas      = Namespace + ".block-max-gas"
	FlagAllowQueries     = Namespace + ".allow-queries"
	FlagBatchPolicy      = Namespace + ".batch-policy"
)

// Config holds the genesis overrides read from the node configuration. A zero field leaves the
// corresponding genesis value untouched.
type Config struct {
	CallbackGasLimit uint64
	Controller       string
	PairConnection   string
	PairPort         string
	ProxyCodeHash    []byte
	BlockMaxGas      uint64
	AllowQueries     []string
	BatchPolicy      proxytypes.BatchPolicy
}

// FromAppOptions reads the polytone keys of appOpts.
func FromAppOptions(appOpts servertypes.AppOptions) (Config, error) {
	var (
		cfg Config
		err error
	)

	if cfg.CallbackGasLimit, err = cast.ToUint64E(orZero(appOpts.Get(FlagCallbackGasLimit))); err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", FlagCallbackGasLimit, err)
	}

	if cfg.BlockMaxGas, err = cast.ToUint64E(orZero(appOpts.Get(FlagBlockMaxGas))); err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", FlagBlockMaxGas, err)
	}

	cfg.Controller = strings.TrimSpace(cast.ToString(appOpts.Get(FlagController)))
	cfg.PairConnection = strings.TrimSpace(cast.ToString(appOpts.Get(FlagPairConnection)))
	cfg.PairPort = strings.TrimSpace(cast.ToString(appOpts.Get(FlagPairPort)))
	cfg.BatchPolicy = proxytypes.BatchPolicy(strings.TrimSpace(cast.ToString(appOpts.Get(FlagBatchPolicy))))

	if (cfg.PairConnection == "") != (cfg.PairPort == "") {
		return Config{}, fmt.Errorf("%s and %s must be set together", FlagPairConnection, FlagPairPort)
	}

	if codeHash := cast.ToString(appOpts.Get(FlagProxyCodeHash)); codeHash != "" {
		if cfg.ProxyCodeHash, err = hex.DecodeString(codeHash); err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", FlagProxyCodeHash, err)
		}
	}

	// a comma separated string is accepted as well as a list
	if allow := appOpts.Get(FlagAllowQueries); allow != nil {
		if s, ok := allow.(string); ok {
			allow = strings.Split(s, ",")
		}
		for _, path := range cast.ToStringSlice(allow) {
			if path = strings.TrimSpace(path); path != "" {
				cfg.AllowQueries = append(cfg.AllowQueries, path)
			}
		}
	}

	return cfg, nil
}

// ApplyNote overrides the note genesis state.
func (c Config) ApplyNote(gs *notetypes.GenesisState) {
	if c.CallbackGasLimit != 0 {
		gs.CallbackGasLimit = c.CallbackGasLimit
	}
	if c.Controller != "" {
		gs.Controller = c.Controller
	}
	if c.PairConnection != "" {
		pair := notetypes.NewPair(c.PairConnection, c.PairPort)
		gs.Pair = &pair
	}
}

// ApplyVoice overrides the voice genesis state.
func (c Config) ApplyVoice(gs *voicetypes.GenesisState) {
	if len(c.ProxyCodeHash) != 0 {
		gs.Params.ProxyCodeHash = c.ProxyCodeHash
	}
	if c.BlockMaxGas != 0 {
		gs.Params.BlockMaxGas = c.BlockMaxGas
	}
	if len(c.AllowQueries) != 0 {
		gs.Params.AllowQueries = c.AllowQueries
	}
}

// ApplyProxy overrides the proxy genesis state.
func (c Config) ApplyProxy(gs *proxytypes.GenesisState) {
	if c.BatchPolicy != "" {
		gs.Params.BatchPolicy = c.BatchPolicy
	}
}

// GenesisState bundles the genesis states of the polytone submodules.
type GenesisState struct {
	Note  *notetypes.GenesisState  `json:"note" yaml:"note"`
	Voice *voicetypes.GenesisState `json:"voice" yaml:"voice"`
	Proxy *proxytypes.GenesisState `json:"proxy" yaml:"proxy"`
}

// DefaultGenesisState returns the default genesis of every submodule with the overrides of c applied.
func (c Config) DefaultGenesisState() GenesisState {
	gs := GenesisState{
		Note:  notetypes.DefaultGenesisState(),
		Voice: voicetypes.DefaultGenesisState(),
		Proxy: proxytypes.DefaultGenesisState(),
	}

	c.ApplyNote(gs.Note)
	c.ApplyVoice(gs.Voice)
	c.ApplyProxy(gs.Proxy)

	return gs
}

// Validate validates the genesis state of every submodule.
func (gs GenesisState) Validate() error {
	if err := gs.Note.Validate(); err != nil {
		return fmt.Errorf("note: %w", err)
	}
	if err := gs.Voice.Validate(); err != nil {
		return fmt.Errorf("voice: %w", err)
	}
	if err := gs.Proxy.Validate(); err != nil {
		return fmt.Errorf("proxy: %w", err)
	}
	return nil
}

// orZero maps unset and blank values to zero.
func orZero(v any) any {
	if v == nil {
		return 0
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return 0
	}
	return v
}
