// Package api defines the Connect RPC surface of tabsplit: message types,
// procedure names, and handler and client constructors.
//
// Messages are plain Go structs serialized with a JSON codec, so the
// calculator's value records travel over the wire unchanged.
package api

import (
	"encoding/json"
	"fmt"

	"connectrpc.com/connect"
)

// Codec names for application/json and application/json; charset=utf-8.
// Both replace Connect's default protobuf JSON codecs.
const (
	codecName        = "json"
	codecNameCharset = codecName + "; charset=utf-8"
)

var (
	_ connect.Codec = jsonCodec{}
	_ connect.Codec = jsonCharsetCodec{}
)

// jsonCodec marshals messages with encoding/json.
type jsonCodec struct{}

func (jsonCodec) Name() string { return codecName }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", msg, err)
	}
	return data, nil
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("unmarshal %T: %w", msg, err)
	}
	return nil
}

// jsonCharsetCodec is jsonCodec registered under the charset content type.
type jsonCharsetCodec struct{ jsonCodec }

func (jsonCharsetCodec) Name() string { return codecNameCharset }

// handlerCodecs returns the handler options that install both JSON codecs.
func handlerCodecs(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{
		connect.WithCodec(jsonCodec{}),
		connect.WithCodec(jsonCharsetCodec{}),
	}, opts...)
}
