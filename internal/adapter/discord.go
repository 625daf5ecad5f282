// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hugolgst/rich-go/client"
	"github.com/hugolgst/rich-go/ipc"

	"github.com/MKhiriev/go-rich-presence/internal/logger"
	"github.com/MKhiriev/go-rich-presence/models"
)

const (
	opFrame            = 1
	cmdSetActivity     = "SET_ACTIVITY"
	evtError           = "ERROR"
	discordErrInvalid  = 4000
	discordErrNotFound = 4002
)

// rich-go keeps a single IPC socket per process.
var connectionOpen atomic.Bool

// richPresenceAPI is the subset of rich-go used by the publisher.
type richPresenceAPI struct {
	login       func(clientID string) error
	logout      func()
	setActivity func(activity client.Activity) error
	send        func(opcode int, payload string) string
}

func defaultRichPresenceAPI() richPresenceAPI {
	return richPresenceAPI{
		login:       client.Login,
		logout:      client.Logout,
		setActivity: client.SetActivity,
		send:        ipc.Send,
	}
}

type discordPublisher struct {
	api    richPresenceAPI
	logger *logger.Logger
}

// NewDiscordPublisher returns a [PresencePublisher] that talks to the local
// Discord client over its IPC socket.
func NewDiscordPublisher(logger *logger.Logger) PresencePublisher {
	return &discordPublisher{
		api:    defaultRichPresenceAPI(),
		logger: logger,
	}
}

func (p *discordPublisher) Open(appID int64) (PresenceConnection, error) {
	if appID <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAppID, appID)
	}
	if !connectionOpen.CompareAndSwap(false, true) {
		return nil, ErrConnectionBusy
	}

	if err := p.api.login(strconv.FormatInt(appID, 10)); err != nil {
		connectionOpen.Store(false)
		p.logger.Err(err).Str("func", "*discordPublisher.Open").Int64("app_id", appID).Msg("discord login failed")
		return nil, fmt.Errorf("%w: %w", ErrDiscordNotRunning, err)
	}
	p.logger.Debug().Str("func", "*discordPublisher.Open").Int64("app_id", appID).Msg("discord connection opened")

	c := &discordConnection{
		api:    p.api,
		logger: p.logger,
		done:   make(chan struct{}),
	}
	c.cond = sync.NewCond(&c.mu)
	go c.work()

	return c, nil
}

type discordRequest struct {
	name string
	run  func() models.Result
	cb   ResultCallback
}

type discordResult struct {
	name   string
	result models.Result
	cb     ResultCallback
}

// discordConnection executes requests in order on its own goroutine. Results
// wait in a queue until RunCallbacks picks them up.
type discordConnection struct {
	api    richPresenceAPI
	logger *logger.Logger

	mu      sync.Mutex
	cond    *sync.Cond
	pending []discordRequest
	results []discordResult
	closed  bool

	done chan struct{}
}

func (c *discordConnection) ClearActivity(cb ResultCallback) {
	c.enqueue(discordRequest{name: "clear", run: c.clear, cb: cb})
}

func (c *discordConnection) UpdateActivity(activity models.Activity, cb ResultCallback) {
	c.enqueue(discordRequest{
		name: "update",
		run:  func() models.Result { return c.update(activity) },
		cb:   cb,
	})
}

func (c *discordConnection) RunCallbacks() {
	c.mu.Lock()
	ready := c.results
	c.results = nil
	c.mu.Unlock()

	for _, r := range ready {
		if r.cb != nil {
			r.cb(r.result)
		}
	}
}

func (c *discordConnection) Close() (err error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.cond.Broadcast()
	c.mu.Unlock()

	<-c.done

	c.mu.Lock()
	dropped := c.results
	c.results = nil
	c.mu.Unlock()
	for _, r := range dropped {
		c.logger.Debug().Str("request", r.name).Stringer("result", r.result).Msg("dropping undelivered result")
	}

	defer connectionOpen.Store(false)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrDisconnect, r)
			c.logger.Err(err).Str("func", "*discordConnection.Close").Msg("discord logout failed")
		}
	}()
	c.api.logout()
	c.logger.Debug().Str("func", "*discordConnection.Close").Msg("discord connection closed")

	return nil
}

func (c *discordConnection) enqueue(req discordRequest) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		c.logger.Warn().Str("request", req.name).Msg("request on closed connection ignored")
		return
	}
	c.pending = append(c.pending, req)
	c.cond.Signal()
}

func (c *discordConnection) next() (discordRequest, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for len(c.pending) == 0 && !c.closed {
		c.cond.Wait()
	}
	if len(c.pending) == 0 {
		return discordRequest{}, false
	}
	req := c.pending[0]
	c.pending = c.pending[1:]
	return req, true
}

func (c *discordConnection) work() {
	defer close(c.done)

	for {
		req, ok := c.next()
		if !ok {
			return
		}

		result := c.execute(req)

		c.mu.Lock()
		c.results = append(c.results, discordResult{name: req.name, result: result, cb: req.cb})
		c.mu.Unlock()
	}
}

// execute turns panics from the IPC layer (e.g. a dropped socket) into a
// transport error.
func (c *discordConnection) execute(req discordRequest) (result models.Result) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error().Str("request", req.name).Interface("panic", r).Msg("discord request failed")
			result = models.ResultTransportError
		}
	}()
	return req.run()
}

func (c *discordConnection) update(activity models.Activity) models.Result {
	if err := c.api.setActivity(toClientActivity(activity)); err != nil {
		c.logger.Err(err).Str("func", "*discordConnection.update").Msg("error setting activity")
		return models.ResultInvalidPayload
	}
	return models.ResultOk
}

// clear sends SET_ACTIVITY without an activity, which rich-go cannot express
// through client.SetActivity.
func (c *discordConnection) clear() models.Result {
	payload, err := json.Marshal(client.Frame{
		Cmd:   cmdSetActivity,
		Args:  client.Args{Pid: os.Getpid()},
		Nonce: uuid.NewString(),
	})
	if err != nil {
		return models.ResultInvalidPayload
	}

	return parseFrameResponse(c.api.send(opFrame, string(payload)))
}

type frameResponse struct {
	Evt  *string `json:"evt"`
	Data struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"data"`
}

func parseFrameResponse(raw string) models.Result {
	if raw == "" {
		return models.ResultTransportError
	}

	var resp frameResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return models.ResultTransportError
	}
	if resp.Evt == nil || *resp.Evt != evtError {
		return models.ResultOk
	}

	switch resp.Data.Code {
	case discordErrInvalid:
		return models.ResultInvalidPayload
	case discordErrNotFound:
		return models.ResultNotRunning
	default:
		return models.ResultInternalError
	}
}

func toClientActivity(a models.Activity) client.Activity {
	out := client.Activity{
		State:      a.State,
		Details:    a.Details,
		LargeImage: a.Assets.LargeImage,
		LargeText:  a.Assets.LargeText,
		SmallImage: a.Assets.SmallImage,
		SmallText:  a.Assets.SmallText,
	}
	if a.Timestamps != nil {
		start := time.Unix(a.Timestamps.Start, 0)
		out.Timestamps = &client.Timestamps{Start: &start}
	}
	return out
}
