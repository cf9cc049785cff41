// Package api defines the wire contract of the GameZone catalog service:
// message types, the gRPC service descriptor and a typed client. Messages
// travel as protobuf-encoded google.protobuf.Struct values through a gRPC
// codec registered under CodecName; field names follow the json tags.
package api

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// CodecName is the gRPC content subtype of the catalog service.
const CodecName = "pbstruct"

type structCodec struct{}

// toStruct maps a message onto a protobuf Struct keyed by its json field names.
func toStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("message %T is not an object: %w", v, err)
	}
	return structpb.NewStruct(fields)
}

func (structCodec) Marshal(v any) ([]byte, error) {
	s, err := toStruct(v)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(s)
}

func (structCodec) Unmarshal(data []byte, v any) error {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return err
	}
	raw, err := protojson.Marshal(&s)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

func (structCodec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodec(structCodec{})
}
