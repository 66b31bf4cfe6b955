// Generate with:
//   protoc --go_out=. --go_opt=module=github.com/wiltonos/lemniscate \
//          --go-grpc_out=. --go-grpc_opt=module=github.com/wiltonos/lemniscate \
//          proto/lemniscate.proto

// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: proto/lemniscate.proto

package lemniscatepb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	LemniscateService_ObserveVector_FullMethodName     = "/lemniscate.v1.LemniscateService/ObserveVector"
	LemniscateService_ObservePhase_FullMethodName      = "/lemniscate.v1.LemniscateService/ObservePhase"
	LemniscateService_ObserveOutput_FullMethodName     = "/lemniscate.v1.LemniscateService/ObserveOutput"
	LemniscateService_GetCoherence_FullMethodName      = "/lemniscate.v1.LemniscateService/GetCoherence"
	LemniscateService_GetSnapshot_FullMethodName       = "/lemniscate.v1.LemniscateService/GetSnapshot"
	LemniscateService_RequestTransition_FullMethodName = "/lemniscate.v1.LemniscateService/RequestTransition"
	LemniscateService_SetGoal_FullMethodName           = "/lemniscate.v1.LemniscateService/SetGoal"
	LemniscateService_Collapse_FullMethodName          = "/lemniscate.v1.LemniscateService/Collapse"
)

// LemniscateServiceClient is the client API for LemniscateService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type LemniscateServiceClient interface {
	ObserveVector(ctx context.Context, in *ObserveVectorRequest, opts ...grpc.CallOption) (*ObserveResponse, error)
	ObservePhase(ctx context.Context, in *ObservePhaseRequest, opts ...grpc.CallOption) (*ObserveResponse, error)
	ObserveOutput(ctx context.Context, in *ObserveOutputRequest, opts ...grpc.CallOption) (*ObserveResponse, error)
	GetCoherence(ctx context.Context, in *GetCoherenceRequest, opts ...grpc.CallOption) (*GetCoherenceResponse, error)
	GetSnapshot(ctx context.Context, in *GetSnapshotRequest, opts ...grpc.CallOption) (*GetSnapshotResponse, error)
	RequestTransition(ctx context.Context, in *RequestTransitionRequest, opts ...grpc.CallOption) (*RequestTransitionResponse, error)
	SetGoal(ctx context.Context, in *SetGoalRequest, opts ...grpc.CallOption) (*SetGoalResponse, error)
	Collapse(ctx context.Context, in *CollapseRequest, opts ...grpc.CallOption) (*CollapseResponse, error)
}

type lemniscateServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewLemniscateServiceClient(cc grpc.ClientConnInterface) LemniscateServiceClient {
	return &lemniscateServiceClient{cc}
}

func (c *lemniscateServiceClient) ObserveVector(ctx context.Context, in *ObserveVectorRequest, opts ...grpc.CallOption) (*ObserveResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ObserveResponse)
	err := c.cc.Invoke(ctx, LemniscateService_ObserveVector_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *lemniscateServiceClient) ObservePhase(ctx context.Context, in *ObservePhaseRequest, opts ...grpc.CallOption) (*ObserveResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ObserveResponse)
	err := c.cc.Invoke(ctx, LemniscateService_ObservePhase_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *lemniscateServiceClient) ObserveOutput(ctx context.Context, in *ObserveOutputRequest, opts ...grpc.CallOption) (*ObserveResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ObserveResponse)
	err := c.cc.Invoke(ctx, LemniscateService_ObserveOutput_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *lemniscateServiceClient) GetCoherence(ctx context.Context, in *GetCoherenceRequest, opts ...grpc.CallOption) (*GetCoherenceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetCoherenceResponse)
	err := c.cc.Invoke(ctx, LemniscateService_GetCoherence_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *lemniscateServiceClient) GetSnapshot(ctx context.Context, in *GetSnapshotRequest, opts ...grpc.CallOption) (*GetSnapshotResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetSnapshotResponse)
	err := c.cc.Invoke(ctx, LemniscateService_GetSnapshot_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *lemniscateServiceClient) RequestTransition(ctx context.Context, in *RequestTransitionRequest, opts ...grpc.CallOption) (*RequestTransitionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RequestTransitionResponse)
	err := c.cc.Invoke(ctx, LemniscateService_RequestTransition_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *lemniscateServiceClient) SetGoal(ctx context.Context, in *SetGoalRequest, opts ...grpc.CallOption) (*SetGoalResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetGoalResponse)
	err := c.cc.Invoke(ctx, LemniscateService_SetGoal_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *lemniscateServiceClient) Collapse(ctx context.Context, in *CollapseRequest, opts ...grpc.CallOption) (*CollapseResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CollapseResponse)
	err := c.cc.Invoke(ctx, LemniscateService_Collapse_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LemniscateServiceServer is the server API for LemniscateService service.
// All implementations must embed UnimplementedLemniscateServiceServer
// for forward compatibility.
type LemniscateServiceServer interface {
	ObserveVector(context.Context, *ObserveVectorRequest) (*ObserveResponse, error)
	ObservePhase(context.Context, *ObservePhaseRequest) (*ObserveResponse, error)
	ObserveOutput(context.Context, *ObserveOutputRequest) (*ObserveResponse, error)
	GetCoherence(context.Context, *GetCoherenceRequest) (*GetCoherenceResponse, error)
	GetSnapshot(context.Context, *GetSnapshotRequest) (*GetSnapshotResponse, error)
	RequestTransition(context.Context, *RequestTransitionRequest) (*RequestTransitionResponse, error)
	SetGoal(context.Context, *SetGoalRequest) (*SetGoalResponse, error)
	Collapse(context.Context, *CollapseRequest) (*CollapseResponse, error)
	mustEmbedUnimplementedLemniscateServiceServer()
}

// UnimplementedLemniscateServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedLemniscateServiceServer struct{}

func (UnimplementedLemniscateServiceServer) ObserveVector(context.Context, *ObserveVectorRequest) (*ObserveResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ObserveVector not implemented")
}
func (UnimplementedLemniscateServiceServer) ObservePhase(context.Context, *ObservePhaseRequest) (*ObserveResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ObservePhase not implemented")
}
func (UnimplementedLemniscateServiceServer) ObserveOutput(context.Context, *ObserveOutputRequest) (*ObserveResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ObserveOutput not implemented")
}
func (UnimplementedLemniscateServiceServer) GetCoherence(context.Context, *GetCoherenceRequest) (*GetCoherenceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCoherence not implemented")
}
func (UnimplementedLemniscateServiceServer) GetSnapshot(context.Context, *GetSnapshotRequest) (*GetSnapshotResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSnapshot not implemented")
}
func (UnimplementedLemniscateServiceServer) RequestTransition(context.Context, *RequestTransitionRequest) (*RequestTransitionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RequestTransition not implemented")
}
func (UnimplementedLemniscateServiceServer) SetGoal(context.Context, *SetGoalRequest) (*SetGoalResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetGoal not implemented")
}
func (UnimplementedLemniscateServiceServer) Collapse(context.Context, *CollapseRequest) (*CollapseResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Collapse not implemented")
}
func (UnimplementedLemniscateServiceServer) mustEmbedUnimplementedLemniscateServiceServer() {}
func (UnimplementedLemniscateServiceServer) testEmbeddedByValue()                           {}

// UnsafeLemniscateServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to LemniscateServiceServer will
// result in compilation errors.
type UnsafeLemniscateServiceServer interface {
	mustEmbedUnimplementedLemniscateServiceServer()
}

func RegisterLemniscateServiceServer(s grpc.ServiceRegistrar, srv LemniscateServiceServer) {
	// If the following call panics, it indicates UnimplementedLemniscateServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&LemniscateService_ServiceDesc, srv)
}

func _LemniscateService_ObserveVector_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ObserveVectorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LemniscateServiceServer).ObserveVector(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LemniscateService_ObserveVector_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LemniscateServiceServer).ObserveVector(ctx, req.(*ObserveVectorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LemniscateService_ObservePhase_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ObservePhaseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LemniscateServiceServer).ObservePhase(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LemniscateService_ObservePhase_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LemniscateServiceServer).ObservePhase(ctx, req.(*ObservePhaseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LemniscateService_ObserveOutput_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ObserveOutputRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LemniscateServiceServer).ObserveOutput(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LemniscateService_ObserveOutput_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LemniscateServiceServer).ObserveOutput(ctx, req.(*ObserveOutputRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LemniscateService_GetCoherence_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCoherenceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LemniscateServiceServer).GetCoherence(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LemniscateService_GetCoherence_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LemniscateServiceServer).GetCoherence(ctx, req.(*GetCoherenceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LemniscateService_GetSnapshot_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSnapshotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LemniscateServiceServer).GetSnapshot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LemniscateService_GetSnapshot_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LemniscateServiceServer).GetSnapshot(ctx, req.(*GetSnapshotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LemniscateService_RequestTransition_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RequestTransitionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LemniscateServiceServer).RequestTransition(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LemniscateService_RequestTransition_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LemniscateServiceServer).RequestTransition(ctx, req.(*RequestTransitionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LemniscateService_SetGoal_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetGoalRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LemniscateServiceServer).SetGoal(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LemniscateService_SetGoal_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LemniscateServiceServer).SetGoal(ctx, req.(*SetGoalRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LemniscateService_Collapse_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CollapseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LemniscateServiceServer).Collapse(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LemniscateService_Collapse_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LemniscateServiceServer).Collapse(ctx, req.(*CollapseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// LemniscateService_ServiceDesc is the grpc.ServiceDesc for LemniscateService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var LemniscateService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "lemniscate.v1.LemniscateService",
	HandlerType: (*LemniscateServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ObserveVector",
			Handler:    _LemniscateService_ObserveVector_Handler,
		},
		{
			MethodName: "ObservePhase",
			Handler:    _LemniscateService_ObservePhase_Handler,
		},
		{
			MethodName: "ObserveOutput",
			Handler:    _LemniscateService_ObserveOutput_Handler,
		},
		{
			MethodName: "GetCoherence",
			Handler:    _LemniscateService_GetCoherence_Handler,
		},
		{
			MethodName: "GetSnapshot",
			Handler:    _LemniscateService_GetSnapshot_Handler,
		},
		{
			MethodName: "RequestTransition",
			Handler:    _LemniscateService_RequestTransition_Handler,
		},
		{
			MethodName: "SetGoal",
			Handler:    _LemniscateService_SetGoal_Handler,
		},
		{
			MethodName: "Collapse",
			Handler:    _LemniscateService_Collapse_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/lemniscate.proto",
}
