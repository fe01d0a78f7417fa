package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMessage() Message {
	return Message{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "Nice editor.",
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Message)
		fields []string
	}{
		{"valid", func(*Message) {}, nil},
		{"no subject", func(m *Message) { m.Subject = "" }, nil},
		{"missing name", func(m *Message) { m.Name = "" }, []string{"name"}},
		{"bad email", func(m *Message) { m.Email = "not-an-email" }, []string{"email"}},
		{"display-name email", func(m *Message) { m.Email = "Ada <ada@example.com>" }, []string{"email"}},
		{"empty message", func(m *Message) { m.Message = "" }, []string{"message"}},
		{"long message", func(m *Message) { m.Message = strings.Repeat("x", MaxMessageLen+1) }, []string{"message"}},
		{"everything", func(m *Message) { *m = Message{} }, []string{"name", "email", "message"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := validMessage()
			c.mutate(&m)
			err := m.Validate()
			if c.fields == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			for _, f := range c.fields {
				assert.Contains(t, verr.Fields, f)
			}
			assert.Len(t, verr.Fields, len(c.fields))
		})
	}
}

func TestNormalizeTrims(t *testing.T) {
	m := Message{Name: "  Ada ", Email: " ada@example.com\n", Message: "\thi "}.Normalize()
	assert.Equal(t, "Ada", m.Name)
	assert.Equal(t, "ada@example.com", m.Email)
	assert.Equal(t, "hi", m.Message)
	assert.NoError(t, m.Validate())
}

func TestTemplateParams(t *testing.T) {
	params, err := TemplateParams(validMessage())
	require.NoError(t, err)
	assert.Equal(t, "Ada", params["from_name"])
	assert.Equal(t, "ada@example.com", params["reply_to"])
	assert.Equal(t, "Hello", params["subject"])
	assert.Equal(t, "Nice editor.", params["message"])

	m := validMessage()
	m.Subject = ""
	params, err = TemplateParams(m)
	require.NoError(t, err)
	assert.NotContains(t, params, "subject")
}

func TestRelayClientSend(t *testing.T) {
	var got relayRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte("OK"))
	}))
	defer srv.Close()

	c := NewRelayClient(RelayConfig{
		Endpoint:    srv.URL,
		ServiceID:   "svc",
		TemplateID:  "tpl",
		UserID:      "user",
		AccessToken: "secret",
	}, srv.Client())

	require.NoError(t, c.Send(context.Background(), validMessage()))
	assert.Equal(t, "svc", got.ServiceID)
	assert.Equal(t, "tpl", got.TemplateID)
	assert.Equal(t, "user", got.UserID)
	assert.Equal(t, "secret", got.AccessToken)
	assert.Equal(t, "Ada", got.TemplateParams["from_name"])
}

func TestRelayClientNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "The user ID is invalid", http.StatusBadRequest)
	}))
	defer srv.Close()

	err := NewRelayClient(RelayConfig{Endpoint: srv.URL}, srv.Client()).Send(context.Background(), validMessage())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRelay)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "user ID is invalid")
}

func TestRelayClientTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := NewRelayClient(RelayConfig{Endpoint: url}, nil).Send(context.Background(), validMessage())
	assert.ErrorIs(t, err, ErrRelay)
}

func newMiniredis(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisThrottle(t *testing.T) {
	mr, client := newMiniredis(t)
	th := NewRedisThrottle(client, "test:", 2, time.Minute)
	ctx := context.Background()

	for i := range 2 {
		ok, err := th.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok, "attempt %d", i+1)
	}
	ok, err := th.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, ok, "third attempt in the window")

	// Other clients have their own budget
	ok, _ = th.Allow(ctx, "5.6.7.8")
	assert.True(t, ok)

	assert.Equal(t, time.Minute, mr.TTL("test:contact:1.2.3.4"))
	mr.FastForward(time.Minute + time.Second)
	ok, err = th.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, ok, "window expired")
}

func TestRedisThrottleStoreDown(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	_, err = NewRedisThrottle(client, "", 1, time.Minute).Allow(context.Background(), "x")
	assert.Error(t, err)
}

// failExpire makes EXPIRE fail while on is set.
type failExpire struct {
	on atomic.Bool
}

func (h *failExpire) DialHook(next backend.DialHook) backend.DialHook {
	return next
}

func (h *failExpire) ProcessHook(next backend.ProcessHook) backend.ProcessHook {
	return func(ctx context.Context, cmd backend.Cmder) error {
		if h.on.Load() && cmd.Name() == "expire" {
			err := errors.New("expire unavailable")
			cmd.SetErr(err)
			return err
		}
		return next(ctx, cmd)
	}
}

func (h *failExpire) ProcessPipelineHook(next backend.ProcessPipelineHook) backend.ProcessPipelineHook {
	return next
}

func TestRedisThrottleRestoresLostExpiry(t *testing.T) {
	mr, client := newMiniredis(t)
	hook := &failExpire{}
	client.AddHook(hook)
	th := NewRedisThrottle(client, "test:", 2, time.Minute)
	ctx := context.Background()
	key := "test:contact:1.2.3.4"

	hook.on.Store(true)
	_, err := th.Allow(ctx, "1.2.3.4")
	require.Error(t, err)
	assert.Equal(t, time.Duration(0), mr.TTL(key), "counter left without expiry")

	hook.on.Store(false)
	ok, err := th.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, time.Minute, mr.TTL(key))

	ok, err = th.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, ok, "over the limit")
	assert.Equal(t, time.Minute, mr.TTL(key), "later attempts keep the window")

	mr.FastForward(time.Minute + time.Second)
	ok, err = th.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, ok, "client is not locked out")
}

type fakeSender struct {
	calls atomic.Int32
	err   error
	last  Message
}

func (f *fakeSender) Send(_ context.Context, msg Message) error {
	f.calls.Add(1)
	f.last = msg
	return f.err
}

type denyThrottle struct{}

func (denyThrottle) Allow(context.Context, string) (bool, error) { return false, nil }

type brokenThrottle struct{}

func (brokenThrottle) Allow(context.Context, string) (bool, error) {
	return false, errors.New("connection refused")
}

func TestServiceSubmit(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(sender, nil, 0, nil)

	msg := validMessage()
	msg.Name = "  Ada  "
	receipt, err := svc.Submit(context.Background(), "client", msg)
	require.NoError(t, err)

	_, perr := uuid.Parse(receipt.ID)
	assert.NoError(t, perr)
	assert.False(t, receipt.SentAt.IsZero())
	assert.Equal(t, "Ada", sender.last.Name, "message is normalized before sending")
}

func TestServiceSubmitInvalidSkipsRelay(t *testing.T) {
	sender := &fakeSender{}
	_, err := NewService(sender, nil, 0, nil).Submit(context.Background(), "client", Message{})
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, int32(0), sender.calls.Load())
}

func TestServiceSubmitThrottled(t *testing.T) {
	sender := &fakeSender{}
	_, err := NewService(sender, denyThrottle{}, 0, nil).Submit(context.Background(), "client", validMessage())
	assert.ErrorIs(t, err, ErrThrottled)
	assert.Equal(t, int32(0), sender.calls.Load())
}

func TestServiceSubmitThrottleDownFailsOpen(t *testing.T) {
	sender := &fakeSender{}
	_, err := NewService(sender, brokenThrottle{}, 0, nil).Submit(context.Background(), "client", validMessage())
	assert.NoError(t, err)
	assert.Equal(t, int32(1), sender.calls.Load())
}

func TestServiceSubmitRelayError(t *testing.T) {
	sender := &fakeSender{err: errors.Join(ErrRelay, errors.New("status 500"))}
	_, err := NewService(sender, nil, 0, nil).Submit(context.Background(), "client", validMessage())
	assert.ErrorIs(t, err, ErrRelay)
}

func TestServiceSubmitDelayHonoursCancel(t *testing.T) {
	svc := NewService(&fakeSender{}, nil, time.Hour, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := svc.Submit(ctx, "client", validMessage())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestServiceSubmitWaitsDelay(t *testing.T) {
	svc := NewService(&fakeSender{}, nil, 30*time.Millisecond, nil)
	start := time.Now()
	_, err := svc.Submit(context.Background(), "client", validMessage())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}
