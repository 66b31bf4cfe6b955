package rpc

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/wiltonos/lemniscate/gen/lemniscatepb"
)

// #region types

// Measurement is a client-side view of one recorded measurement.
type Measurement struct {
	Value      float64
	Method     string
	Scale      string
	SampleSize int
	Confidence float64
	At         time.Time
}

// ScaleView is a client-side view of one scale's status.
type ScaleView struct {
	Mode               string
	TargetMode         string
	Coherence          float64
	TransitionProgress float64
	Trend              string
	Approaching        bool
}

// SnapshotView is a client-side view of the engine snapshot.
type SnapshotView struct {
	At           time.Time
	Cycle        int
	DominantMode string
	Coherence    float64
	QCTF         float64
	Scales       map[string]ScaleView
	HistoryLen   int
}

// #endregion types

// #region client

// Client wraps the gRPC connection to a running daemon.
type Client struct {
	conn   *grpc.ClientConn
	client pb.LemniscateServiceClient
}

// NewClient connects to the daemon's gRPC listener.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{conn: conn, client: pb.NewLemniscateServiceClient(conn)}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.LemniscateServiceClient) *Client {
	return &Client{client: svc}
}

// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion client

// #region observe

// ObserveVector sends a state vector observation. Returns nil when the
// server recorded no measurement.
func (c *Client) ObserveVector(ctx context.Context, source, scale string, vector []float64) (*Measurement, error) {
	resp, err := c.client.ObserveVector(ctx, &pb.ObserveVectorRequest{Source: source, Scale: scale, Vector: vector})
	if err != nil {
		return nil, fmt.Errorf("observe vector rpc: %w", err)
	}
	return fromObserveResponse(resp), nil
}

// ObservePhase sends a phase observation.
func (c *Client) ObservePhase(ctx context.Context, source, scale string, phase float64) (*Measurement, error) {
	resp, err := c.client.ObservePhase(ctx, &pb.ObservePhaseRequest{Source: source, Scale: scale, Phase: phase})
	if err != nil {
		return nil, fmt.Errorf("observe phase rpc: %w", err)
	}
	return fromObserveResponse(resp), nil
}

// ObserveOutput sends a text output observation.
func (c *Client) ObserveOutput(ctx context.Context, source, scale, output string) (*Measurement, error) {
	resp, err := c.client.ObserveOutput(ctx, &pb.ObserveOutputRequest{Source: source, Scale: scale, Output: output})
	if err != nil {
		return nil, fmt.Errorf("observe output rpc: %w", err)
	}
	return fromObserveResponse(resp), nil
}

func fromObserveResponse(resp *pb.ObserveResponse) *Measurement {
	if !resp.Measured || resp.Measurement == nil {
		return nil
	}
	m := resp.Measurement
	return &Measurement{
		Value:      m.Value,
		Method:     m.Method,
		Scale:      m.Scale,
		SampleSize: int(m.SampleSize),
		Confidence: m.Confidence,
		At:         m.At.AsTime(),
	}
}

// #endregion observe

// #region queries

// GetCoherence reads one scale's coherence and mode.
func (c *Client) GetCoherence(ctx context.Context, scale string) (float64, string, error) {
	resp, err := c.client.GetCoherence(ctx, &pb.GetCoherenceRequest{Scale: scale})
	if err != nil {
		return 0, "", fmt.Errorf("get coherence rpc: %w", err)
	}
	return resp.Value, resp.Mode, nil
}

// GetSnapshot reads the full engine view.
func (c *Client) GetSnapshot(ctx context.Context) (SnapshotView, error) {
	resp, err := c.client.GetSnapshot(ctx, &pb.GetSnapshotRequest{})
	if err != nil {
		return SnapshotView{}, fmt.Errorf("get snapshot rpc: %w", err)
	}
	scales := make(map[string]ScaleView, len(resp.Scales))
	for name, st := range resp.Scales {
		scales[name] = ScaleView{
			Mode:               st.Mode,
			TargetMode:         st.TargetMode,
			Coherence:          st.Coherence,
			TransitionProgress: st.TransitionProgress,
			Trend:              st.Trend,
			Approaching:        st.Approaching,
		}
	}
	return SnapshotView{
		At:           resp.At.AsTime(),
		Cycle:        int(resp.Cycle),
		DominantMode: resp.DominantMode,
		Coherence:    resp.Coherence,
		QCTF:         resp.Qctf,
		Scales:       scales,
		HistoryLen:   int(resp.HistoryLen),
	}, nil
}

// #endregion queries

// #region commands

// RequestTransition asks the daemon to move a scale to a definite mode.
func (c *Client) RequestTransition(ctx context.Context, scale, target string) error {
	_, err := c.client.RequestTransition(ctx, &pb.RequestTransitionRequest{Scale: scale, Target: target})
	if err != nil {
		return fmt.Errorf("request transition rpc: %w", err)
	}
	return nil
}

// SetGoal applies the two emphasis knobs on the daemon.
func (c *Client) SetGoal(ctx context.Context, innovation, stability float64) error {
	_, err := c.client.SetGoal(ctx, &pb.SetGoalRequest{Innovation: innovation, Stability: stability})
	if err != nil {
		return fmt.Errorf("set goal rpc: %w", err)
	}
	return nil
}

// Collapse forces all superposed scales to definite values.
func (c *Client) Collapse(ctx context.Context, trigger string) (map[string]float64, error) {
	resp, err := c.client.Collapse(ctx, &pb.CollapseRequest{Trigger: trigger})
	if err != nil {
		return nil, fmt.Errorf("collapse rpc: %w", err)
	}
	return resp.Values, nil
}

// #endregion commands
