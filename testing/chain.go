package ibctesting

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"

	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"

	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/polytone/polytone-go/modules/apps/polytone/note"
	notekeeper "github.com/polytone/polytone-go/modules/apps/polytone/note/keeper"
	notetypes "github.com/polytone/polytone-go/modules/apps/polytone/note/types"
	proxykeeper "github.com/polytone/polytone-go/modules/apps/polytone/proxy/keeper"
	proxytypes "github.com/polytone/polytone-go/modules/apps/polytone/proxy/types"
	"github.com/polytone/polytone-go/modules/apps/polytone/voice"
	voicekeeper "github.com/polytone/polytone-go/modules/apps/polytone/voice/keeper"
	voicetypes "github.com/polytone/polytone-go/modules/apps/polytone/voice/types"
	"github.com/polytone/polytone-go/testing/mock"
)

// TestChain is a testing struct that wraps the polytone submodules of a single chain. Every chain
// hosts a note, a voice and a proxy submodule on top of a memdb backed multistore. IBC core is
// replaced by an in-memory mock.ChannelKeeper.
type TestChain struct {
	testing.TB

	Coordinator   *Coordinator
	ChainID       string
	CurrentHeader cmtproto.Header // header for current block height
	Logger        *mock.MockLogger

	ChannelKeeper    *mock.ChannelKeeper
	AccountKeeper    *mock.AccountKeeper
	Executor         *mock.Executor
	Querier          *mock.Querier
	CallbackReceiver *mock.CallbackReceiver

	NoteKeeper  notekeeper.Keeper
	VoiceKeeper voicekeeper.Keeper
	ProxyKeeper proxykeeper.Keeper

	NoteModule  note.IBCModule
	VoiceModule voice.IBCModule

	// Authority is the address allowed to update the voice params
	Authority string
	// SenderAccounts are addresses with no special role on the chain
	SenderAccounts []sdk.AccAddress

	cms storetypes.CommitMultiStore
}

// NewTestChain initializes a new test chain with default genesis state for every polytone submodule.
func NewTestChain(tb testing.TB, coord *Coordinator, chainID string) *TestChain {
	tb.Helper()

	noteKey := storetypes.NewKVStoreKey(notetypes.StoreKey)
	voiceKey := storetypes.NewKVStoreKey(voicetypes.StoreKey)
	proxyKey := storetypes.NewKVStoreKey(proxytypes.StoreKey)
	mockKey := mock.NewStoreKey()

	cms := store.NewCommitMultiStore(dbm.NewMemDB(), log.NewNopLogger(), metrics.NewNoOpMetrics())
	for _, key := range []*storetypes.KVStoreKey{noteKey, voiceKey, proxyKey, mockKey} {
		cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	}
	require.NoError(tb, cms.LoadLatestVersion())

	chain := &TestChain{
		TB:          tb,
		Coordinator: coord,
		ChainID:     chainID,
		CurrentHeader: cmtproto.Header{
			ChainID: chainID,
			Height:  1,
			Time:    coord.CurrentTime.UTC(),
		},
		Logger:           mock.NewMockLogger(),
		ChannelKeeper:    mock.NewChannelKeeper(),
		AccountKeeper:    mock.NewAccountKeeper(),
		Executor:         mock.NewExecutor(mockKey),
		Querier:          mock.NewQuerier(nil),
		CallbackReceiver: mock.NewCallbackReceiver(),
		Authority:        authtypes.NewModuleAddress("gov").String(),
		cms:              cms,
	}

	for range MaxAccounts {
		chain.SenderAccounts = append(chain.SenderAccounts, sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address()))
	}

	chain.ProxyKeeper = proxykeeper.NewKeeper(runtime.NewKVStoreService(proxyKey), chain.AccountKeeper, chain.Executor)
	chain.VoiceKeeper = voicekeeper.NewKeeper(runtime.NewKVStoreService(voiceKey), chain.ProxyKeeper, chain.Querier, nil, chain.Authority)
	chain.NoteKeeper = notekeeper.NewKeeper(runtime.NewKVStoreService(noteKey), chain.ChannelKeeper, chain.ChannelKeeper, chain.CallbackReceiver, mock.TestAddressCodec{})

	chain.NoteModule = note.NewIBCModule(chain.NoteKeeper)
	chain.VoiceModule = voice.NewIBCModule(chain.VoiceKeeper)

	ctx := chain.GetContext()
	chain.ProxyKeeper.InitGenesis(ctx, *proxytypes.DefaultGenesisState())
	chain.VoiceKeeper.InitGenesis(ctx, *voicetypes.DefaultGenesisState())
	chain.NoteKeeper.InitGenesis(ctx, *notetypes.DefaultGenesisState())

	return chain
}

// GetContext returns the current context for the chain. Writes made through it are kept.
func (chain *TestChain) GetContext() sdk.Context {
	return sdk.NewContext(chain.cms, chain.CurrentHeader, false, chain.Logger)
}

// Exec runs fn the way a transaction is run: its writes and events are kept only if it succeeds.
// The events emitted by fn are returned.
func (chain *TestChain) Exec(fn func(ctx sdk.Context) error) (sdk.Events, error) {
	ctx := chain.GetContext()
	cacheCtx, writeFn := ctx.CacheContext()
	if err := fn(cacheCtx); err != nil {
		return nil, err
	}

	writeFn()
	return ctx.EventManager().Events(), nil
}

// NextBlock advances the chain to the next block at the coordinator's current time.
func (chain *TestChain) NextBlock() {
	chain.CurrentHeader = cmtproto.Header{
		ChainID: chain.ChainID,
		Height:  chain.CurrentHeader.Height + 1,
		Time:    chain.Coordinator.CurrentTime.UTC(),
	}
}

// SetController configures the note of the chain with a controller.
func (chain *TestChain) SetController(controller string) {
	require.NoError(chain.TB, chain.NoteKeeper.Controller.Set(chain.GetContext(), controller))
}

// Execute delivers a MsgExecute to the note msg server.
func (chain *TestChain) Execute(msg *notetypes.MsgExecute) (*notetypes.MsgExecuteResponse, sdk.Events, error) {
	var res *notetypes.MsgExecuteResponse
	events, err := chain.Exec(func(ctx sdk.Context) error {
		var err error
		res, err = notekeeper.NewMsgServerImpl(&chain.NoteKeeper).Execute(ctx, msg)
		return err
	})
	return res, events, err
}

// Query delivers a MsgQuery to the note msg server.
func (chain *TestChain) Query(msg *notetypes.MsgQuery) (*notetypes.MsgQueryResponse, sdk.Events, error) {
	var res *notetypes.MsgQueryResponse
	events, err := chain.Exec(func(ctx sdk.Context) error {
		var err error
		res, err = notekeeper.NewMsgServerImpl(&chain.NoteKeeper).Query(ctx, msg)
		return err
	})
	return res, events, err
}
