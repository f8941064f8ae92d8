// Package rpc implements the dispatcher and JSON-RPC 2.0 transport: a
// single "resolve_foreign_call" method whose string parameter decodes to a
// batch of requests, of which only the first is processed, plus the
// "say_hello" liveness probe.
package rpc

import (
	"encoding/json"
	"fmt"
)

// ForeignCallParam is a discriminated union encoded untagged in JSON:
// either a bare string (a scalar limb) or an array of strings (limbs of a
// composite value).
type ForeignCallParam struct {
	single *string
	array  []string
}

// Values returns the param's limbs as a flat slice: the single value
// wrapped in a one-element slice, or the array as-is.
func (p ForeignCallParam) Values() []string {
	if p.single != nil {
		return []string{*p.single}
	}
	return p.array
}

func (p *ForeignCallParam) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		p.single = &s
		p.array = nil
		return nil
	}
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		p.array = arr
		p.single = nil
		return nil
	}
	return fmt.Errorf("rpc: ForeignCallParam is neither a string nor an array of strings")
}

func (p ForeignCallParam) MarshalJSON() ([]byte, error) {
	if p.single != nil {
		return json.Marshal(*p.single)
	}
	return json.Marshal(p.array)
}

// RequestData is one element of the batch carried in resolve_foreign_call's
// string-encoded JSON parameter. session_id, root_path and package_name are
// accepted and decoded but not used by the core.
type RequestData struct {
	SessionID   uint64             `json:"session_id"`
	Function    string             `json:"function"`
	Inputs      []ForeignCallParam `json:"inputs"`
	RootPath    string             `json:"root_path"`
	PackageName string             `json:"package_name"`
}

// valuesResponse is the {"values": [...]} envelope used by third_root,
// is_third_root, random_third_root and get_pairing_witnesses.
type valuesResponse struct {
	Values interface{} `json:"values"`
}
