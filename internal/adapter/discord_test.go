// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hugolgst/rich-go/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-rich-presence/internal/logger"
	"github.com/MKhiriev/go-rich-presence/models"
)

// fakeRichPresence records what the publisher sends to rich-go.
type fakeRichPresence struct {
	mu         sync.Mutex
	loginErr   error
	logins     []string
	logouts    int
	activities []client.Activity
	frames     []string
	response   string
	block      chan struct{}
	panicOnOut bool
}

func (f *fakeRichPresence) api() richPresenceAPI {
	return richPresenceAPI{
		login: func(id string) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.logins = append(f.logins, id)
			return f.loginErr
		},
		logout: func() {
			f.mu.Lock()
			f.logouts++
			f.mu.Unlock()
			if f.panicOnOut {
				panic("socket already closed")
			}
		},
		setActivity: func(a client.Activity) error {
			if f.block != nil {
				<-f.block
			}
			f.mu.Lock()
			defer f.mu.Unlock()
			f.activities = append(f.activities, a)
			return nil
		},
		send: func(_ int, payload string) string {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.frames = append(f.frames, payload)
			return f.response
		},
	}
}

func newTestPublisher(f *fakeRichPresence) *discordPublisher {
	return &discordPublisher{api: f.api(), logger: logger.Nop()}
}

// waitResults polls RunCallbacks until n results were delivered.
func waitResults(t *testing.T, conn PresenceConnection, got *[]models.Result, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		conn.RunCallbacks()
		return len(*got) >= n
	}, time.Second, 5*time.Millisecond)
}

func TestDiscordPublisher_OpenUpdateClear(t *testing.T) {
	f := &fakeRichPresence{response: `{"cmd":"SET_ACTIVITY","evt":null,"nonce":"n"}`}
	conn, err := newTestPublisher(f).Open(123456789012345)
	require.NoError(t, err)
	defer conn.Close()

	var got []models.Result
	cb := func(r models.Result) { got = append(got, r) }

	conn.ClearActivity(cb)
	conn.UpdateActivity(models.Activity{
		State:      "Playing",
		Details:    "Ranked",
		Assets:     models.Assets{LargeImage: "logo", LargeText: "Logo"},
		Timestamps: &models.Timestamps{Start: 1700000000},
	}, cb)

	waitResults(t, conn, &got, 2)
	assert.Equal(t, []models.Result{models.ResultOk, models.ResultOk}, got)

	f.mu.Lock()
	defer f.mu.Unlock()
	assert.Equal(t, []string{"123456789012345"}, f.logins)
	require.Len(t, f.activities, 1)
	a := f.activities[0]
	assert.Equal(t, "Playing", a.State)
	assert.Equal(t, "Ranked", a.Details)
	assert.Equal(t, "logo", a.LargeImage)
	assert.Empty(t, a.SmallImage)
	require.NotNil(t, a.Timestamps)
	assert.Equal(t, int64(1700000000), a.Timestamps.Start.Unix())

	require.Len(t, f.frames, 1)
	var frame map[string]any
	require.NoError(t, json.Unmarshal([]byte(f.frames[0]), &frame))
	assert.Equal(t, "SET_ACTIVITY", frame["cmd"])
	assert.NotEmpty(t, frame["nonce"])
	args := frame["args"].(map[string]any)
	assert.Nil(t, args["activity"])
}

func TestDiscordPublisher_CallbacksWaitForPoll(t *testing.T) {
	f := &fakeRichPresence{block: make(chan struct{})}
	conn, err := newTestPublisher(f).Open(1)
	require.NoError(t, err)

	delivered := 0
	conn.UpdateActivity(models.Activity{State: "x"}, func(models.Result) { delivered++ })

	conn.RunCallbacks()
	assert.Equal(t, 0, delivered, "request still in flight")

	close(f.block)
	require.Eventually(t, func() bool {
		conn.RunCallbacks()
		return delivered == 1
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, conn.Close())
}

func TestDiscordPublisher_SecondOpenIsBusy(t *testing.T) {
	f := &fakeRichPresence{}
	p := newTestPublisher(f)

	conn, err := p.Open(1)
	require.NoError(t, err)

	_, err = p.Open(2)
	assert.ErrorIs(t, err, ErrConnectionBusy)

	require.NoError(t, conn.Close())

	conn, err = p.Open(2)
	require.NoError(t, err)
	require.NoError(t, conn.Close())
}

func TestDiscordPublisher_LoginFails(t *testing.T) {
	f := &fakeRichPresence{loginErr: errors.New("no socket")}
	p := newTestPublisher(f)

	_, err := p.Open(1)
	assert.ErrorIs(t, err, ErrDiscordNotRunning)

	// the slot is released again
	f.loginErr = nil
	conn, err := p.Open(1)
	require.NoError(t, err)
	require.NoError(t, conn.Close())
}

func TestDiscordPublisher_InvalidAppID(t *testing.T) {
	_, err := newTestPublisher(&fakeRichPresence{}).Open(0)
	assert.ErrorIs(t, err, ErrInvalidAppID)
}

func TestDiscordConnection_CloseDrainsAndDrops(t *testing.T) {
	f := &fakeRichPresence{}
	conn, err := newTestPublisher(f).Open(1)
	require.NoError(t, err)

	delivered := 0
	conn.UpdateActivity(models.Activity{State: "a"}, func(models.Result) { delivered++ })
	conn.UpdateActivity(models.Activity{State: "b"}, func(models.Result) { delivered++ })

	require.NoError(t, conn.Close())
	require.NoError(t, conn.Close())

	conn.RunCallbacks()
	assert.Equal(t, 0, delivered)

	f.mu.Lock()
	assert.Len(t, f.activities, 2, "queued requests still reach discord")
	assert.Equal(t, 1, f.logouts)
	f.mu.Unlock()

	// ignored after close
	conn.ClearActivity(func(models.Result) { delivered++ })
	conn.RunCallbacks()
	assert.Equal(t, 0, delivered)
}

func TestDiscordConnection_LogoutPanic(t *testing.T) {
	f := &fakeRichPresence{panicOnOut: true}
	p := newTestPublisher(f)
	conn, err := p.Open(1)
	require.NoError(t, err)

	err = conn.Close()
	assert.ErrorIs(t, err, ErrDisconnect)

	f.panicOnOut = false
	conn, err = p.Open(1)
	require.NoError(t, err, "slot released after a failed logout")
	require.NoError(t, conn.Close())
}

func TestDiscordConnection_SendPanicIsTransportError(t *testing.T) {
	f := &fakeRichPresence{}
	p := newTestPublisher(f)
	p.api.send = func(int, string) string { panic("nil socket") }

	conn, err := p.Open(1)
	require.NoError(t, err)
	defer conn.Close()

	var got []models.Result
	conn.ClearActivity(func(r models.Result) { got = append(got, r) })
	waitResults(t, conn, &got, 1)
	assert.Equal(t, []models.Result{models.ResultTransportError}, got)
}

func TestParseFrameResponse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want models.Result
	}{
		{"empty", "", models.ResultTransportError},
		{"garbage", "{", models.ResultTransportError},
		{"ok", `{"cmd":"SET_ACTIVITY","evt":null}`, models.ResultOk},
		{"invalid payload", `{"evt":"ERROR","data":{"code":4000,"message":"bad"}}`, models.ResultInvalidPayload},
		{"not found", `{"evt":"ERROR","data":{"code":4002}}`, models.ResultNotRunning},
		{"other", `{"evt":"ERROR","data":{"code":1000}}`, models.ResultInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseFrameResponse(tt.raw))
		})
	}
}

func TestToClientActivity_NoTimer(t *testing.T) {
	a := toClientActivity(models.Activity{State: "s", Assets: models.Assets{SmallImage: "k", SmallText: "t"}})
	assert.Nil(t, a.Timestamps)
	assert.Equal(t, "k", a.SmallImage)
	assert.Equal(t, "t", a.SmallText)
}
