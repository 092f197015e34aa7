// Package public maintains the group of handlers for public access.
package public

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/minichain/minichain/business/web/errs"
	"github.com/minichain/minichain/foundation/blockchain/database"
	"github.com/minichain/minichain/foundation/blockchain/state"
	"github.com/minichain/minichain/foundation/events"
	"github.com/minichain/minichain/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of public endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
	WS    websocket.Upgrader
	Evts  *events.Events
}

// Events handles a web socket to provide mining events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	ch := h.Evts.Acquire(v.TraceID)
	defer h.Evts.Release(v.TraceID)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return err
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}

// SubmitTransaction adds a new transaction to the pending pool.
func (h Handlers) SubmitTransaction(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var ntx newTx
	if err := web.Decode(r, &ntx); err != nil {
		return err
	}

	h.Log.Infow("add tran", "traceid", v.TraceID, "from", ntx.From, "to", ntx.To, "value", ntx.Value)
	tx := h.State.SubmitTransaction(ntx.From, ntx.To, ntx.Value)

	resp := struct {
		Status string      `json:"status"`
		Tx     database.Tx `json:"tx"`
	}{
		Status: "transaction added to pending pool",
		Tx:     tx,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Mine performs the proof of work for the next block. The call blocks
// until mining completes or the client goes away.
func (h Handlers) Mine(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.Log.Infow("mine block", "traceid", v.TraceID)

	bd, err := h.State.MineNextBlock(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return errs.NewTrusted(err, http.StatusRequestTimeout)
		}
		return err
	}

	resp := struct {
		Status string       `json:"status"`
		Block  blockSummary `json:"block"`
	}{
		Status: "block mined",
		Block:  toBlockSummary(bd),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Genesis returns the genesis information.
func (h Handlers) Genesis(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	gen := h.State.RetrieveGenesis()
	return web.Respond(ctx, w, gen, http.StatusOK)
}

// Mempool returns the set of pending transactions.
func (h Handlers) Mempool(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	txs := h.State.RetrieveMempool()
	return web.Respond(ctx, w, txs, http.StatusOK)
}

// Blocks returns a summary for every block in the chain.
func (h Handlers) Blocks(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	dbBlocks := h.State.RetrieveBlocks()

	blocks := make([]blockSummary, len(dbBlocks))
	for i, bd := range dbBlocks {
		blocks[i] = toBlockSummary(bd)
	}

	return web.Respond(ctx, w, blocks, http.StatusOK)
}

// BlockByNumber returns the full contents of the specified block.
func (h Handlers) BlockByNumber(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	number, err := strconv.ParseUint(web.Param(r, "number"), 10, 64)
	if err != nil {
		return errs.NewTrusted(errors.New("block number must be a non-negative integer"), http.StatusBadRequest)
	}

	dbBlocks := h.State.RetrieveBlocks()
	if number >= uint64(len(dbBlocks)) {
		return errs.NewTrusted(errors.New("block does not exist in the chain"), http.StatusNotFound)
	}

	return web.Respond(ctx, w, dbBlocks[number], http.StatusOK)
}

// Settings returns the mining settings currently in force.
func (h Handlers) Settings(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	stg := h.State.RetrieveSettings()

	resp := struct {
		Difficulty uint    `json:"difficulty"`
		Reward     float64 `json:"reward"`
	}{
		Difficulty: stg.Difficulty,
		Reward:     stg.MiningReward,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// UpdateSettings changes the difficulty and/or reward used by the next
// mining operation.
func (h Handlers) UpdateSettings(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var stg settings
	if err := web.Decode(r, &stg); err != nil {
		return err
	}

	if stg.Difficulty != nil {
		h.Log.Infow("update settings", "traceid", v.TraceID, "difficulty", *stg.Difficulty)
		if err := h.State.SetDifficulty(*stg.Difficulty); err != nil {
			return errs.NewTrusted(err, http.StatusBadRequest)
		}
	}

	if stg.Reward != nil {
		h.Log.Infow("update settings", "traceid", v.TraceID, "reward", *stg.Reward)
		if err := h.State.SetReward(*stg.Reward); err != nil {
			return errs.NewTrusted(err, http.StatusBadRequest)
		}
	}

	return h.Settings(ctx, w, r)
}

// Validate scans the chain and reports any integrity violations.
func (h Handlers) Validate(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	resp := struct {
		Valid    bool   `json:"valid"`
		Failures string `json:"failures,omitempty"`
	}{
		Valid: true,
	}

	if err := h.State.Validate(); err != nil {
		resp.Valid = false
		resp.Failures = err.Error()
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}
