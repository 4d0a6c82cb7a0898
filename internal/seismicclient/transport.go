// Package seismicclient implements the metadata builder, send pipeline, and
// signed-read pipeline (C9–C11) over a pluggable JSON-RPC transport.
package seismicclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/seismicsystems/seismic-go-sdk/internal/seismicerr"
)

const reconnectDelay = 2 * time.Second

// Transport is the RPC abstraction both C9–C11 and the precompile/directory
// clients dial through — one interface, two implementations (blocking HTTP
// and persistent-connection websocket), per the concurrency model's
// "share through an RPC-abstraction interface" rule.
type Transport interface {
	Call(ctx context.Context, result interface{}, method string, params ...interface{}) error
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      uint64        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

func decodeResult(resp rpcResponse, result interface{}) error {
	if resp.Error != nil {
		return fmt.Errorf("%w: %s (code %d)", seismicerr.ErrRPC, resp.Error.Message, resp.Error.Code)
	}
	if result == nil {
		return nil
	}
	if len(resp.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Result, result); err != nil {
		return fmt.Errorf("%w: %v", seismicerr.ErrResponseDecode, err)
	}
	return nil
}

// ── HTTP transport ───────────────────────────────────────────────────────

// HTTPTransport is a blocking request/response JSON-RPC 2.0 client over
// plain HTTP POST.
type HTTPTransport struct {
	url        string
	httpClient *http.Client
	nextID     uint64
}

// NewHTTPTransport builds an HTTPTransport targeting url.
func NewHTTPTransport(url string) *HTTPTransport {
	return &HTTPTransport{url: url, httpClient: &http.Client{Timeout: 30 * time.Second}}
}

// Call issues one JSON-RPC request and decodes its result into result.
func (t *HTTPTransport) Call(ctx context.Context, result interface{}, method string, params ...interface{}) error {
	if params == nil {
		params = []interface{}{}
	}
	id := atomic.AddUint64(&t.nextID, 1)
	body, err := json.Marshal(rpcRequest{JSONRPC: "2.0", ID: id, Method: method, Params: params})
	if err != nil {
		return fmt.Errorf("[seismicclient] marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: build request: %v", seismicerr.ErrRPC, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", seismicerr.ErrRPC, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", seismicerr.ErrRPC, err)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(raw, &rpcResp); err != nil {
		return fmt.Errorf("%w: %v", seismicerr.ErrResponseDecode, err)
	}
	return decodeResult(rpcResp, result)
}

// ── Websocket transport ──────────────────────────────────────────────────

// WSTransport is a request-correlated JSON-RPC 2.0 client over a persistent
// gorilla/websocket connection. Connection loss triggers an automatic
// reconnect loop.
type WSTransport struct {
	url string

	mu      sync.Mutex
	conn    *websocket.Conn
	nextID  uint64
	pending map[uint64]chan rpcResponse

	running int32
	stopCh  chan struct{}
}

// NewWSTransport dials url and starts the background read/reconnect loop.
func NewWSTransport(url string) (*WSTransport, error) {
	t := &WSTransport{
		url:     url,
		pending: make(map[uint64]chan rpcResponse),
		stopCh:  make(chan struct{}),
	}
	if err := t.dial(); err != nil {
		return nil, fmt.Errorf("[seismicclient] dial: %w", err)
	}
	atomic.StoreInt32(&t.running, 1)
	go t.connectForever()
	return t, nil
}

// Close stops the reconnect loop and closes the underlying connection.
func (t *WSTransport) Close() error {
	atomic.StoreInt32(&t.running, 0)
	close(t.stopCh)
	t.mu.Lock()
	conn := t.conn
	t.mu.Unlock()
	if conn != nil {
		return conn.Close()
	}
	return nil
}

func (t *WSTransport) dial() error {
	conn, _, err := websocket.DefaultDialer.Dial(t.url, nil)
	if err != nil {
		return err
	}
	t.mu.Lock()
	t.conn = conn
	t.mu.Unlock()
	go t.readLoop(conn)
	return nil
}

func (t *WSTransport) connectForever() {
	for atomic.LoadInt32(&t.running) == 1 {
		select {
		case <-t.stopCh:
			return
		default:
		}
		t.mu.Lock()
		conn := t.conn
		t.mu.Unlock()
		if conn == nil {
			if err := t.dial(); err != nil {
				log.Printf("[seismicclient] ws reconnect failed: %v — retrying in %s", err, reconnectDelay)
				time.Sleep(reconnectDelay)
			}
		}
		time.Sleep(reconnectDelay)
	}
}

func (t *WSTransport) readLoop(conn *websocket.Conn) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			t.mu.Lock()
			if t.conn == conn {
				t.conn = nil
			}
			t.mu.Unlock()
			return
		}
		var resp rpcResponse
		if err := json.Unmarshal(raw, &resp); err != nil {
			continue
		}
		t.mu.Lock()
		ch, ok := t.pending[resp.ID]
		if ok {
			delete(t.pending, resp.ID)
		}
		t.mu.Unlock()
		if ok {
			ch <- resp
		}
	}
}

// Call issues one JSON-RPC request over the persistent connection and waits
// for the correlated response (matched by request ID).
func (t *WSTransport) Call(ctx context.Context, result interface{}, method string, params ...interface{}) error {
	if params == nil {
		params = []interface{}{}
	}
	id := atomic.AddUint64(&t.nextID, 1)
	ch := make(chan rpcResponse, 1)

	t.mu.Lock()
	conn := t.conn
	if conn == nil {
		t.mu.Unlock()
		return fmt.Errorf("%w: websocket not connected", seismicerr.ErrRPC)
	}
	t.pending[id] = ch
	t.mu.Unlock()

	body, err := json.Marshal(rpcRequest{JSONRPC: "2.0", ID: id, Method: method, Params: params})
	if err != nil {
		return fmt.Errorf("[seismicclient] marshal request: %w", err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, body); err != nil {
		return fmt.Errorf("%w: write: %v", seismicerr.ErrRPC, err)
	}

	select {
	case resp := <-ch:
		return decodeResult(resp, result)
	case <-ctx.Done():
		t.mu.Lock()
		delete(t.pending, id)
		t.mu.Unlock()
		return ctx.Err()
	}
}
