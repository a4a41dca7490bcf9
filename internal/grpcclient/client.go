package grpcclient

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding"

	"nmea-svr/nmeadecode"
)

// codecName is registered under the grpc "content-subtype" extension
// point so calls can be made without a generated forwarder.pb.go: no
// .proto source for the forwarding service was retrieved alongside this
// repository's source tree, so the wire format is plain JSON over grpc's
// transport instead of protobuf-compiled messages.
const codecName = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v interface{}) error { return json.Unmarshal(data, v) }
func (jsonCodec) Name() string                               { return codecName }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// DataRequest is the wire shape sent to the downstream forwarder:
// the decoded message carried as its JSON encoding, keyed by source.
type DataRequest struct {
	SourceID string `json:"source_id"`
	Payload  string `json:"payload"`
}

type DataResponse struct {
	Success bool `json:"success"`
}

type GRPCClient struct {
	conn *grpc.ClientConn
}

func NewGRPCClient(addr string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &GRPCClient{conn: conn}, nil
}

func (g *GRPCClient) Close() {
	g.conn.Close()
}

// SendDecoded forwards one decoded NMEA/AIS message to the downstream
// consumer as a JSON payload, keyed by sourceID (the originating
// connection's remote address).
func (g *GRPCClient) SendDecoded(ctx context.Context, sourceID string, msg nmeadecode.ParsedMessage) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("grpcclient: marshal payload: %w", err)
	}

	req := &DataRequest{SourceID: sourceID, Payload: string(payload)}
	var res DataResponse

	err = g.conn.Invoke(ctx, "/forwarder.Forwarder/SendDecoded", req, &res, grpc.CallContentSubtype(codecName))
	if err != nil {
		return err
	}

	if !res.Success {
		log.Printf("Forwarder: failed to send data for source %s", sourceID)
	}
	return nil
}
