package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/consensys/bn254-witness-oracle/internal/logger"
	"github.com/consensys/bn254-witness-oracle/internal/witness"
)

// jsonRPCRequest and jsonRPCResponse are the minimal JSON-RPC 2.0 envelope
// this server needs: one method ("resolve_foreign_call" or "say_hello"),
// no batching, no notifications.
type jsonRPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
	ID      json.RawMessage `json:"id"`
}

type jsonRPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *jsonRPCError   `json:"error,omitempty"`
	ID      json.RawMessage `json:"id"`
}

type jsonRPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server is the oracle's JSON-RPC 2.0 HTTP transport.
type Server struct {
	Sampler witness.Sampler
	http    *http.Server
}

// NewServer builds a Server bound to addr (the config package's default is
// "127.0.0.1:3000"; NewServer itself applies no default) using
// sampler as the RNG for every rejection-sampling routine the dispatcher
// reaches.
func NewServer(addr string, sampler witness.Sampler) *Server {
	s := &Server{Sampler: sampler}
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handle)
	s.http = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// ListenAndServe blocks serving requests until the server is shut down.
func (s *Server) ListenAndServe() error {
	log := logger.Logger().With().Str("addr", s.http.Addr).Logger()
	log.Info().Msg("oracle server listening")
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	log := logger.Logger().With().Str("remote", r.RemoteAddr).Logger()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error().Err(err).Msg("read request body")
		writeJSON(w, jsonRPCResponse{JSONRPC: "2.0", Error: &jsonRPCError{Code: -32700, Message: "parse error"}})
		return
	}

	var req jsonRPCRequest
	if err := json.Unmarshal(body, &req); err != nil {
		log.Error().Err(err).Msg("unmarshal jsonrpc request")
		writeJSON(w, jsonRPCResponse{JSONRPC: "2.0", Error: &jsonRPCError{Code: -32700, Message: "parse error"}})
		return
	}

	start := time.Now()
	result, rpcErr := s.dispatch(r.Context(), req)
	log.Debug().Str("method", req.Method).Dur("took", time.Since(start)).Msg("handled request")

	writeJSON(w, jsonRPCResponse{JSONRPC: "2.0", Result: result, Error: rpcErr, ID: req.ID})
}

func (s *Server) dispatch(ctx context.Context, req jsonRPCRequest) (interface{}, *jsonRPCError) {
	switch req.Method {
	case "say_hello":
		return "hello, world", nil

	case "resolve_foreign_call":
		return s.resolveForeignCall(req.Params)

	default:
		return []string{"oops"}, nil
	}
}

// resolveForeignCall expects params to be a JSON string which, when
// parsed, yields a non-empty array of request objects; only the first is
// processed. A missing/malformed outer value is a transport error,
// surfacing as the literal "Bad query" result rather than a JSON-RPC
// error. An unrecognized function name is a bare ["oops"] result, likewise
// not a JSON-RPC error. Decode and domain errors, by contrast, surface as
// real JSON-RPC errors.
func (s *Server) resolveForeignCall(params json.RawMessage) (interface{}, *jsonRPCError) {
	var jsonString string
	if err := json.Unmarshal(params, &jsonString); err != nil {
		return []string{"Bad query"}, nil
	}

	var requests []RequestData
	if err := json.Unmarshal([]byte(jsonString), &requests); err != nil || len(requests) == 0 {
		return []string{"Bad query"}, nil
	}

	req := requests[0]
	log := logger.Logger().With().Str("function", req.Function).Logger()

	result, err := Dispatch(s.Sampler, req.Function, req.Inputs)
	if err == nil {
		return result, nil
	}

	log.Warn().Err(err).Msg("dispatch error")
	if errors.Is(err, ErrUnknownFunction) {
		return result, nil
	}
	return nil, &jsonRPCError{Code: -32000, Message: err.Error()}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
