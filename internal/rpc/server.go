// Package rpc exposes the engine over gRPC and provides a typed client.
package rpc

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/wiltonos/lemniscate/gen/lemniscatepb"
	"github.com/wiltonos/lemniscate/internal/engine"
	"github.com/wiltonos/lemniscate/internal/measure"
	"github.com/wiltonos/lemniscate/internal/temporal"
)

// #region server

// Server implements lemniscate.v1.LemniscateService over an engine.
type Server struct {
	pb.UnimplementedLemniscateServiceServer

	engine *engine.Engine
	log    *zap.Logger
}

// NewServer wraps an engine for gRPC exposure.
func NewServer(eng *engine.Engine, logger *zap.Logger) *Server {
	return &Server{engine: eng, log: logger}
}

// #endregion server

// #region observe

// ObserveVector feeds a state vector observation into the engine.
func (s *Server) ObserveVector(ctx context.Context, req *pb.ObserveVectorRequest) (*pb.ObserveResponse, error) {
	scale, err := temporal.ParseScale(req.Scale)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	m, err := s.engine.ObserveVector(measure.SourceID(req.Source), scale, req.Vector)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return observeResponse(m), nil
}

// ObservePhase feeds a phase observation into the engine.
func (s *Server) ObservePhase(ctx context.Context, req *pb.ObservePhaseRequest) (*pb.ObserveResponse, error) {
	scale, err := temporal.ParseScale(req.Scale)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	m, err := s.engine.ObservePhase(measure.SourceID(req.Source), scale, req.Phase)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return observeResponse(m), nil
}

// ObserveOutput feeds a text output observation into the engine.
func (s *Server) ObserveOutput(ctx context.Context, req *pb.ObserveOutputRequest) (*pb.ObserveResponse, error) {
	scale, err := temporal.ParseScale(req.Scale)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	m, err := s.engine.ObserveOutput(measure.SourceID(req.Source), scale, req.Output)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return observeResponse(m), nil
}

func observeResponse(m *measure.Measurement) *pb.ObserveResponse {
	if m == nil {
		return &pb.ObserveResponse{Measured: false}
	}
	return &pb.ObserveResponse{
		Measured: true,
		Measurement: &pb.Measurement{
			Value:      m.Value,
			Method:     string(m.Method),
			Scale:      string(m.Scale),
			SampleSize: int32(m.SampleSize),
			Confidence: m.Confidence,
			At:         timestamppb.New(m.At),
		},
	}
}

// #endregion observe

// #region queries

// GetCoherence reports one scale's current coherence and mode.
func (s *Server) GetCoherence(ctx context.Context, req *pb.GetCoherenceRequest) (*pb.GetCoherenceResponse, error) {
	scale, err := temporal.ParseScale(req.Scale)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	snap := s.engine.Snapshot()
	st := snap.Scales[scale]
	return &pb.GetCoherenceResponse{Value: st.Coherence, Mode: string(st.Mode)}, nil
}

// GetSnapshot reports the full engine view.
func (s *Server) GetSnapshot(ctx context.Context, req *pb.GetSnapshotRequest) (*pb.GetSnapshotResponse, error) {
	snap := s.engine.Snapshot()
	scales := make(map[string]*pb.ScaleStatus, len(snap.Scales))
	for scale, st := range snap.Scales {
		ps := &pb.ScaleStatus{
			Mode:               string(st.Mode),
			TargetMode:         string(st.TargetMode),
			Coherence:          st.Coherence,
			TransitionProgress: st.TransitionProgress,
		}
		if st.Attractor != nil {
			ps.Trend = string(st.Attractor.Trend)
			ps.Approaching = st.Attractor.Approaching
		}
		scales[string(scale)] = ps
	}
	return &pb.GetSnapshotResponse{
		At:           timestamppb.New(snap.At),
		Cycle:        int64(snap.Cycle),
		DominantMode: string(snap.DominantMode),
		Coherence:    snap.Coherence,
		Qctf:         snap.QCTF,
		Scales:       scales,
		HistoryLen:   int64(snap.HistoryLen),
	}, nil
}

// #endregion queries

// #region commands

// RequestTransition starts a mode transition for one scale.
func (s *Server) RequestTransition(ctx context.Context, req *pb.RequestTransitionRequest) (*pb.RequestTransitionResponse, error) {
	scale, err := temporal.ParseScale(req.Scale)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	target, err := temporal.ParseMode(req.Target)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := s.engine.RequestTransition(scale, target); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &pb.RequestTransitionResponse{}, nil
}

// SetGoal applies the two emphasis knobs.
func (s *Server) SetGoal(ctx context.Context, req *pb.SetGoalRequest) (*pb.SetGoalResponse, error) {
	if err := s.engine.SetGoal(req.Innovation, req.Stability); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &pb.SetGoalResponse{}, nil
}

// Collapse forces all superposed scales to definite values.
func (s *Server) Collapse(ctx context.Context, req *pb.CollapseRequest) (*pb.CollapseResponse, error) {
	ev := s.engine.Collapse(req.Trigger)
	values := make(map[string]float64, len(ev.Values))
	for scale, v := range ev.Values {
		values[string(scale)] = v
	}
	return &pb.CollapseResponse{
		Trigger: ev.Trigger,
		At:      timestamppb.New(ev.At),
		Values:  values,
	}, nil
}

// #endregion commands
