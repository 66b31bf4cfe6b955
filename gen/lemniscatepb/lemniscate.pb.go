// Generate with:
//   protoc --go_out=. --go_opt=module=github.com/wiltonos/lemniscate \
//          --go-grpc_out=. --go-grpc_opt=module=github.com/wiltonos/lemniscate \
//          proto/lemniscate.proto

// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: proto/lemniscate.proto

package lemniscatepb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Measurement struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Value         float64                `protobuf:"fixed64,1,opt,name=value,proto3" json:"value,omitempty"`
	Method        string                 `protobuf:"bytes,2,opt,name=method,proto3" json:"method,omitempty"`
	Scale         string                 `protobuf:"bytes,3,opt,name=scale,proto3" json:"scale,omitempty"`
	SampleSize    int32                  `protobuf:"varint,4,opt,name=sample_size,json=sampleSize,proto3" json:"sample_size,omitempty"`
	Confidence    float64                `protobuf:"fixed64,5,opt,name=confidence,proto3" json:"confidence,omitempty"`
	At            *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=at,proto3" json:"at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Measurement) Reset() {
	*x = Measurement{}
	mi := &file_proto_lemniscate_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Measurement) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Measurement) ProtoMessage() {}

func (x *Measurement) ProtoReflect() protoreflect.Message {
	mi := &file_proto_lemniscate_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Measurement.ProtoReflect.Descriptor instead.
func (*Measurement) Descriptor() ([]byte, []int) {
	return file_proto_lemniscate_proto_rawDescGZIP(), []int{0}
}

func (x *Measurement) GetValue() float64 {
	if x != nil {
		return x.Value
	}
	return 0
}

func (x *Measurement) GetMethod() string {
	if x != nil {
		return x.Method
	}
	return ""
}

func (x *Measurement) GetScale() string {
	if x != nil {
		return x.Scale
	}
	return ""
}

func (x *Measurement) GetSampleSize() int32 {
	if x != nil {
		return x.SampleSize
	}
	return 0
}

func (x *Measurement) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Measurement) GetAt() *timestamppb.Timestamp {
	if x != nil {
		return x.At
	}
	return nil
}

type ObserveVectorRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Source        string                 `protobuf:"bytes,1,opt,name=source,proto3" json:"source,omitempty"`
	Scale         string                 `protobuf:"bytes,2,opt,name=scale,proto3" json:"scale,omitempty"`
	Vector        []float64              `protobuf:"fixed64,3,rep,packed,name=vector,proto3" json:"vector,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ObserveVectorRequest) Reset() {
	*x = ObserveVectorRequest{}
	mi := &file_proto_lemniscate_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ObserveVectorRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ObserveVectorRequest) ProtoMessage() {}

func (x *ObserveVectorRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_lemniscate_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ObserveVectorRequest.ProtoReflect.Descriptor instead.
func (*ObserveVectorRequest) Descriptor() ([]byte, []int) {
	return file_proto_lemniscate_proto_rawDescGZIP(), []int{1}
}

func (x *ObserveVectorRequest) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *ObserveVectorRequest) GetScale() string {
	if x != nil {
		return x.Scale
	}
	return ""
}

func (x *ObserveVectorRequest) GetVector() []float64 {
	if x != nil {
		return x.Vector
	}
	return nil
}

type ObservePhaseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Source        string                 `protobuf:"bytes,1,opt,name=source,proto3" json:"source,omitempty"`
	Scale         string                 `protobuf:"bytes,2,opt,name=scale,proto3" json:"scale,omitempty"`
	Phase         float64                `protobuf:"fixed64,3,opt,name=phase,proto3" json:"phase,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ObservePhaseRequest) Reset() {
	*x = ObservePhaseRequest{}
	mi := &file_proto_lemniscate_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ObservePhaseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ObservePhaseRequest) ProtoMessage() {}

func (x *ObservePhaseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_lemniscate_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ObservePhaseRequest.ProtoReflect.Descriptor instead.
func (*ObservePhaseRequest) Descriptor() ([]byte, []int) {
	return file_proto_lemniscate_proto_rawDescGZIP(), []int{2}
}

func (x *ObservePhaseRequest) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *ObservePhaseRequest) GetScale() string {
	if x != nil {
		return x.Scale
	}
	return ""
}

func (x *ObservePhaseRequest) GetPhase() float64 {
	if x != nil {
		return x.Phase
	}
	return 0
}

type ObserveOutputRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Source        string                 `protobuf:"bytes,1,opt,name=source,proto3" json:"source,omitempty"`
	Scale         string                 `protobuf:"bytes,2,opt,name=scale,proto3" json:"scale,omitempty"`
	Output        string                 `protobuf:"bytes,3,opt,name=output,proto3" json:"output,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ObserveOutputRequest) Reset() {
	*x = ObserveOutputRequest{}
	mi := &file_proto_lemniscate_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ObserveOutputRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ObserveOutputRequest) ProtoMessage() {}

func (x *ObserveOutputRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_lemniscate_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ObserveOutputRequest.ProtoReflect.Descriptor instead.
func (*ObserveOutputRequest) Descriptor() ([]byte, []int) {
	return file_proto_lemniscate_proto_rawDescGZIP(), []int{3}
}

func (x *ObserveOutputRequest) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *ObserveOutputRequest) GetScale() string {
	if x != nil {
		return x.Scale
	}
	return ""
}

func (x *ObserveOutputRequest) GetOutput() string {
	if x != nil {
		return x.Output
	}
	return ""
}

type ObserveResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Measured      bool                   `protobuf:"varint,1,opt,name=measured,proto3" json:"measured,omitempty"`
	Measurement   *Measurement           `protobuf:"bytes,2,opt,name=measurement,proto3" json:"measurement,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ObserveResponse) Reset() {
	*x = ObserveResponse{}
	mi := &file_proto_lemniscate_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ObserveResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ObserveResponse) ProtoMessage() {}

func (x *ObserveResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_lemniscate_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ObserveResponse.ProtoReflect.Descriptor instead.
func (*ObserveResponse) Descriptor() ([]byte, []int) {
	return file_proto_lemniscate_proto_rawDescGZIP(), []int{4}
}

func (x *ObserveResponse) GetMeasured() bool {
	if x != nil {
		return x.Measured
	}
	return false
}

func (x *ObserveResponse) GetMeasurement() *Measurement {
	if x != nil {
		return x.Measurement
	}
	return nil
}

type GetCoherenceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scale         string                 `protobuf:"bytes,1,opt,name=scale,proto3" json:"scale,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCoherenceRequest) Reset() {
	*x = GetCoherenceRequest{}
	mi := &file_proto_lemniscate_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCoherenceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCoherenceRequest) ProtoMessage() {}

func (x *GetCoherenceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_lemniscate_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCoherenceRequest.ProtoReflect.Descriptor instead.
func (*GetCoherenceRequest) Descriptor() ([]byte, []int) {
	return file_proto_lemniscate_proto_rawDescGZIP(), []int{5}
}

func (x *GetCoherenceRequest) GetScale() string {
	if x != nil {
		return x.Scale
	}
	return ""
}

type GetCoherenceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Value         float64                `protobuf:"fixed64,1,opt,name=value,proto3" json:"value,omitempty"`
	Mode          string                 `protobuf:"bytes,2,opt,name=mode,proto3" json:"mode,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCoherenceResponse) Reset() {
	*x = GetCoherenceResponse{}
	mi := &file_proto_lemniscate_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCoherenceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCoherenceResponse) ProtoMessage() {}

func (x *GetCoherenceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_lemniscate_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCoherenceResponse.ProtoReflect.Descriptor instead.
func (*GetCoherenceResponse) Descriptor() ([]byte, []int) {
	return file_proto_lemniscate_proto_rawDescGZIP(), []int{6}
}

func (x *GetCoherenceResponse) GetValue() float64 {
	if x != nil {
		return x.Value
	}
	return 0
}

func (x *GetCoherenceResponse) GetMode() string {
	if x != nil {
		return x.Mode
	}
	return ""
}

type ScaleStatus struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Mode               string                 `protobuf:"bytes,1,opt,name=mode,proto3" json:"mode,omitempty"`
	TargetMode         string                 `protobuf:"bytes,2,opt,name=target_mode,json=targetMode,proto3" json:"target_mode,omitempty"`
	Coherence          float64                `protobuf:"fixed64,3,opt,name=coherence,proto3" json:"coherence,omitempty"`
	TransitionProgress float64                `protobuf:"fixed64,4,opt,name=transition_progress,json=transitionProgress,proto3" json:"transition_progress,omitempty"`
	Trend              string                 `protobuf:"bytes,5,opt,name=trend,proto3" json:"trend,omitempty"`
	Approaching        bool                   `protobuf:"varint,6,opt,name=approaching,proto3" json:"approaching,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *ScaleStatus) Reset() {
	*x = ScaleStatus{}
	mi := &file_proto_lemniscate_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScaleStatus) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScaleStatus) ProtoMessage() {}

func (x *ScaleStatus) ProtoReflect() protoreflect.Message {
	mi := &file_proto_lemniscate_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScaleStatus.ProtoReflect.Descriptor instead.
func (*ScaleStatus) Descriptor() ([]byte, []int) {
	return file_proto_lemniscate_proto_rawDescGZIP(), []int{7}
}

func (x *ScaleStatus) GetMode() string {
	if x != nil {
		return x.Mode
	}
	return ""
}

func (x *ScaleStatus) GetTargetMode() string {
	if x != nil {
		return x.TargetMode
	}
	return ""
}

func (x *ScaleStatus) GetCoherence() float64 {
	if x != nil {
		return x.Coherence
	}
	return 0
}

func (x *ScaleStatus) GetTransitionProgress() float64 {
	if x != nil {
		return x.TransitionProgress
	}
	return 0
}

func (x *ScaleStatus) GetTrend() string {
	if x != nil {
		return x.Trend
	}
	return ""
}

func (x *ScaleStatus) GetApproaching() bool {
	if x != nil {
		return x.Approaching
	}
	return false
}

type GetSnapshotRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSnapshotRequest) Reset() {
	*x = GetSnapshotRequest{}
	mi := &file_proto_lemniscate_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSnapshotRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSnapshotRequest) ProtoMessage() {}

func (x *GetSnapshotRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_lemniscate_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSnapshotRequest.ProtoReflect.Descriptor instead.
func (*GetSnapshotRequest) Descriptor() ([]byte, []int) {
	return file_proto_lemniscate_proto_rawDescGZIP(), []int{8}
}

type GetSnapshotResponse struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	At            *timestamppb.Timestamp  `protobuf:"bytes,1,opt,name=at,proto3" json:"at,omitempty"`
	Cycle         int64                   `protobuf:"varint,2,opt,name=cycle,proto3" json:"cycle,omitempty"`
	DominantMode  string                  `protobuf:"bytes,3,opt,name=dominant_mode,json=dominantMode,proto3" json:"dominant_mode,omitempty"`
	Coherence     float64                 `protobuf:"fixed64,4,opt,name=coherence,proto3" json:"coherence,omitempty"`
	Qctf          float64                 `protobuf:"fixed64,5,opt,name=qctf,proto3" json:"qctf,omitempty"`
	Scales        map[string]*ScaleStatus `protobuf:"bytes,6,rep,name=scales,proto3" json:"scales,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	HistoryLen    int64                   `protobuf:"varint,7,opt,name=history_len,json=historyLen,proto3" json:"history_len,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSnapshotResponse) Reset() {
	*x = GetSnapshotResponse{}
	mi := &file_proto_lemniscate_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSnapshotResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSnapshotResponse) ProtoMessage() {}

func (x *GetSnapshotResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_lemniscate_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSnapshotResponse.ProtoReflect.Descriptor instead.
func (*GetSnapshotResponse) Descriptor() ([]byte, []int) {
	return file_proto_lemniscate_proto_rawDescGZIP(), []int{9}
}

func (x *GetSnapshotResponse) GetAt() *timestamppb.Timestamp {
	if x != nil {
		return x.At
	}
	return nil
}

func (x *GetSnapshotResponse) GetCycle() int64 {
	if x != nil {
		return x.Cycle
	}
	return 0
}

func (x *GetSnapshotResponse) GetDominantMode() string {
	if x != nil {
		return x.DominantMode
	}
	return ""
}

func (x *GetSnapshotResponse) GetCoherence() float64 {
	if x != nil {
		return x.Coherence
	}
	return 0
}

func (x *GetSnapshotResponse) GetQctf() float64 {
	if x != nil {
		return x.Qctf
	}
	return 0
}

func (x *GetSnapshotResponse) GetScales() map[string]*ScaleStatus {
	if x != nil {
		return x.Scales
	}
	return nil
}

func (x *GetSnapshotResponse) GetHistoryLen() int64 {
	if x != nil {
		return x.HistoryLen
	}
	return 0
}

type RequestTransitionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scale         string                 `protobuf:"bytes,1,opt,name=scale,proto3" json:"scale,omitempty"`
	Target        string                 `protobuf:"bytes,2,opt,name=target,proto3" json:"target,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RequestTransitionRequest) Reset() {
	*x = RequestTransitionRequest{}
	mi := &file_proto_lemniscate_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RequestTransitionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RequestTransitionRequest) ProtoMessage() {}

func (x *RequestTransitionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_lemniscate_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RequestTransitionRequest.ProtoReflect.Descriptor instead.
func (*RequestTransitionRequest) Descriptor() ([]byte, []int) {
	return file_proto_lemniscate_proto_rawDescGZIP(), []int{10}
}

func (x *RequestTransitionRequest) GetScale() string {
	if x != nil {
		return x.Scale
	}
	return ""
}

func (x *RequestTransitionRequest) GetTarget() string {
	if x != nil {
		return x.Target
	}
	return ""
}

type RequestTransitionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RequestTransitionResponse) Reset() {
	*x = RequestTransitionResponse{}
	mi := &file_proto_lemniscate_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RequestTransitionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RequestTransitionResponse) ProtoMessage() {}

func (x *RequestTransitionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_lemniscate_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RequestTransitionResponse.ProtoReflect.Descriptor instead.
func (*RequestTransitionResponse) Descriptor() ([]byte, []int) {
	return file_proto_lemniscate_proto_rawDescGZIP(), []int{11}
}

type SetGoalRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Innovation    float64                `protobuf:"fixed64,1,opt,name=innovation,proto3" json:"innovation,omitempty"`
	Stability     float64                `protobuf:"fixed64,2,opt,name=stability,proto3" json:"stability,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetGoalRequest) Reset() {
	*x = SetGoalRequest{}
	mi := &file_proto_lemniscate_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetGoalRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetGoalRequest) ProtoMessage() {}

func (x *SetGoalRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_lemniscate_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetGoalRequest.ProtoReflect.Descriptor instead.
func (*SetGoalRequest) Descriptor() ([]byte, []int) {
	return file_proto_lemniscate_proto_rawDescGZIP(), []int{12}
}

func (x *SetGoalRequest) GetInnovation() float64 {
	if x != nil {
		return x.Innovation
	}
	return 0
}

func (x *SetGoalRequest) GetStability() float64 {
	if x != nil {
		return x.Stability
	}
	return 0
}

type SetGoalResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetGoalResponse) Reset() {
	*x = SetGoalResponse{}
	mi := &file_proto_lemniscate_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetGoalResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetGoalResponse) ProtoMessage() {}

func (x *SetGoalResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_lemniscate_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetGoalResponse.ProtoReflect.Descriptor instead.
func (*SetGoalResponse) Descriptor() ([]byte, []int) {
	return file_proto_lemniscate_proto_rawDescGZIP(), []int{13}
}

type CollapseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Trigger       string                 `protobuf:"bytes,1,opt,name=trigger,proto3" json:"trigger,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CollapseRequest) Reset() {
	*x = CollapseRequest{}
	mi := &file_proto_lemniscate_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CollapseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CollapseRequest) ProtoMessage() {}

func (x *CollapseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_lemniscate_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CollapseRequest.ProtoReflect.Descriptor instead.
func (*CollapseRequest) Descriptor() ([]byte, []int) {
	return file_proto_lemniscate_proto_rawDescGZIP(), []int{14}
}

func (x *CollapseRequest) GetTrigger() string {
	if x != nil {
		return x.Trigger
	}
	return ""
}

type CollapseResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Trigger       string                 `protobuf:"bytes,1,opt,name=trigger,proto3" json:"trigger,omitempty"`
	At            *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=at,proto3" json:"at,omitempty"`
	Values        map[string]float64     `protobuf:"bytes,3,rep,name=values,proto3" json:"values,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"fixed64,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CollapseResponse) Reset() {
	*x = CollapseResponse{}
	mi := &file_proto_lemniscate_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CollapseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CollapseResponse) ProtoMessage() {}

func (x *CollapseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_lemniscate_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CollapseResponse.ProtoReflect.Descriptor instead.
func (*CollapseResponse) Descriptor() ([]byte, []int) {
	return file_proto_lemniscate_proto_rawDescGZIP(), []int{15}
}

func (x *CollapseResponse) GetTrigger() string {
	if x != nil {
		return x.Trigger
	}
	return ""
}

func (x *CollapseResponse) GetAt() *timestamppb.Timestamp {
	if x != nil {
		return x.At
	}
	return nil
}

func (x *CollapseResponse) GetValues() map[string]float64 {
	if x != nil {
		return x.Values
	}
	return nil
}

var File_proto_lemniscate_proto protoreflect.FileDescriptor

const file_proto_lemniscate_proto_rawDesc = "" +
	"\n" +
	"\x16proto/lemniscate.proto\x12\rlemniscate.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\xbe\x01\n" +
	"\vMeasurement\x12\x14\n" +
	"\x05value\x18\x01 \x01(\x01R\x05value\x12\x16\n" +
	"\x06method\x18\x02 \x01(\tR\x06method\x12\x14\n" +
	"\x05scale\x18\x03 \x01(\tR\x05scale\x12\x1f\n" +
	"\vsample_size\x18\x04 \x01(\x05R\n" +
	"sampleSize\x12\x1e\n" +
	"\n" +
	"confidence\x18\x05 \x01(\x01R\n" +
	"confidence\x12*\n" +
	"\x02at\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\x02at\"\\\n" +
	"\x14ObserveVectorRequest\x12\x16\n" +
	"\x06source\x18\x01 \x01(\tR\x06source\x12\x14\n" +
	"\x05scale\x18\x02 \x01(\tR\x05scale\x12\x16\n" +
	"\x06vector\x18\x03 \x03(\x01R\x06vector\"Y\n" +
	"\x13ObservePhaseRequest\x12\x16\n" +
	"\x06source\x18\x01 \x01(\tR\x06source\x12\x14\n" +
	"\x05scale\x18\x02 \x01(\tR\x05scale\x12\x14\n" +
	"\x05phase\x18\x03 \x01(\x01R\x05phase\"\\\n" +
	"\x14ObserveOutputRequest\x12\x16\n" +
	"\x06source\x18\x01 \x01(\tR\x06source\x12\x14\n" +
	"\x05scale\x18\x02 \x01(\tR\x05scale\x12\x16\n" +
	"\x06output\x18\x03 \x01(\tR\x06output\"k\n" +
	"\x0fObserveResponse\x12\x1a\n" +
	"\bmeasured\x18\x01 \x01(\bR\bmeasured\x12<\n" +
	"\vmeasurement\x18\x02 \x01(\v2\x1a.lemniscate.v1.MeasurementR\vmeasurement\"+\n" +
	"\x13GetCoherenceRequest\x12\x14\n" +
	"\x05scale\x18\x01 \x01(\tR\x05scale\"@\n" +
	"\x14GetCoherenceResponse\x12\x14\n" +
	"\x05value\x18\x01 \x01(\x01R\x05value\x12\x12\n" +
	"\x04mode\x18\x02 \x01(\tR\x04mode\"\xc9\x01\n" +
	"\vScaleStatus\x12\x12\n" +
	"\x04mode\x18\x01 \x01(\tR\x04mode\x12\x1f\n" +
	"\vtarget_mode\x18\x02 \x01(\tR\n" +
	"targetMode\x12\x1c\n" +
	"\tcoherence\x18\x03 \x01(\x01R\tcoherence\x12/\n" +
	"\x13transition_progress\x18\x04 \x01(\x01R\x12transitionProgress\x12\x14\n" +
	"\x05trend\x18\x05 \x01(\tR\x05trend\x12 \n" +
	"\vapproaching\x18\x06 \x01(\bR\vapproaching\"\x14\n" +
	"\x12GetSnapshotRequest\"\xee\x02\n" +
	"\x13GetSnapshotResponse\x12*\n" +
	"\x02at\x18\x01 \x01(\v2\x1a.google.protobuf.TimestampR\x02at\x12\x14\n" +
	"\x05cycle\x18\x02 \x01(\x03R\x05cycle\x12#\n" +
	"\rdominant_mode\x18\x03 \x01(\tR\fdominantMode\x12\x1c\n" +
	"\tcoherence\x18\x04 \x01(\x01R\tcoherence\x12\x12\n" +
	"\x04qctf\x18\x05 \x01(\x01R\x04qctf\x12F\n" +
	"\x06scales\x18\x06 \x03(\v2..lemniscate.v1.GetSnapshotResponse.ScalesEntryR\x06scales\x12\x1f\n" +
	"\vhistory_len\x18\a \x01(\x03R\n" +
	"historyLen\x1aU\n" +
	"\vScalesEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x120\n" +
	"\x05value\x18\x02 \x01(\v2\x1a.lemniscate.v1.ScaleStatusR\x05value:\x028\x01\"H\n" +
	"\x18RequestTransitionRequest\x12\x14\n" +
	"\x05scale\x18\x01 \x01(\tR\x05scale\x12\x16\n" +
	"\x06target\x18\x02 \x01(\tR\x06target\"\x1b\n" +
	"\x19RequestTransitionResponse\"N\n" +
	"\x0eSetGoalRequest\x12\x1e\n" +
	"\n" +
	"innovation\x18\x01 \x01(\x01R\n" +
	"innovation\x12\x1c\n" +
	"\tstability\x18\x02 \x01(\x01R\tstability\"\x11\n" +
	"\x0fSetGoalResponse\"+\n" +
	"\x0fCollapseRequest\x12\x18\n" +
	"\atrigger\x18\x01 \x01(\tR\atrigger\"\xd8\x01\n" +
	"\x10CollapseResponse\x12\x18\n" +
	"\atrigger\x18\x01 \x01(\tR\atrigger\x12*\n" +
	"\x02at\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\x02at\x12C\n" +
	"\x06values\x18\x03 \x03(\v2+.lemniscate.v1.CollapseResponse.ValuesEntryR\x06values\x1a9\n" +
	"\vValuesEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x01R\x05value:\x028\x012\xc1\x05\n" +
	"\x11LemniscateService\x12T\n" +
	"\rObserveVector\x12#.lemniscate.v1.ObserveVectorRequest\x1a\x1e.lemniscate.v1.ObserveResponse\x12R\n" +
	"\fObservePhase\x12\".lemniscate.v1.ObservePhaseRequest\x1a\x1e.lemniscate.v1.ObserveResponse\x12T\n" +
	"\rObserveOutput\x12#.lemniscate.v1.ObserveOutputRequest\x1a\x1e.lemniscate.v1.ObserveResponse\x12W\n" +
	"\fGetCoherence\x12\".lemniscate.v1.GetCoherenceRequest\x1a#.lemniscate.v1.GetCoherenceResponse\x12T\n" +
	"\vGetSnapshot\x12!.lemniscate.v1.GetSnapshotRequest\x1a\".lemniscate.v1.GetSnapshotResponse\x12f\n" +
	"\x11RequestTransition\x12'.lemniscate.v1.RequestTransitionRequest\x1a(.lemniscate.v1.RequestTransitionResponse\x12H\n" +
	"\aSetGoal\x12\x1d.lemniscate.v1.SetGoalRequest\x1a\x1e.lemniscate.v1.SetGoalResponse\x12K\n" +
	"\bCollapse\x12\x1e.lemniscate.v1.CollapseRequest\x1a\x1f.lemniscate.v1.CollapseResponseB1Z/github.com/wiltonos/lemniscate/gen/lemniscatepbb\x06proto3"

var (
	file_proto_lemniscate_proto_rawDescOnce sync.Once
	file_proto_lemniscate_proto_rawDescData []byte
)

func file_proto_lemniscate_proto_rawDescGZIP() []byte {
	file_proto_lemniscate_proto_rawDescOnce.Do(func() {
		file_proto_lemniscate_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_proto_lemniscate_proto_rawDesc), len(file_proto_lemniscate_proto_rawDesc)))
	})
	return file_proto_lemniscate_proto_rawDescData
}

var file_proto_lemniscate_proto_msgTypes = make([]protoimpl.MessageInfo, 18)
var file_proto_lemniscate_proto_goTypes = []any{
	(*Measurement)(nil),               // 0: lemniscate.v1.Measurement
	(*ObserveVectorRequest)(nil),      // 1: lemniscate.v1.ObserveVectorRequest
	(*ObservePhaseRequest)(nil),       // 2: lemniscate.v1.ObservePhaseRequest
	(*ObserveOutputRequest)(nil),      // 3: lemniscate.v1.ObserveOutputRequest
	(*ObserveResponse)(nil),           // 4: lemniscate.v1.ObserveResponse
	(*GetCoherenceRequest)(nil),       // 5: lemniscate.v1.GetCoherenceRequest
	(*GetCoherenceResponse)(nil),      // 6: lemniscate.v1.GetCoherenceResponse
	(*ScaleStatus)(nil),               // 7: lemniscate.v1.ScaleStatus
	(*GetSnapshotRequest)(nil),        // 8: lemniscate.v1.GetSnapshotRequest
	(*GetSnapshotResponse)(nil),       // 9: lemniscate.v1.GetSnapshotResponse
	(*RequestTransitionRequest)(nil),  // 10: lemniscate.v1.RequestTransitionRequest
	(*RequestTransitionResponse)(nil), // 11: lemniscate.v1.RequestTransitionResponse
	(*SetGoalRequest)(nil),            // 12: lemniscate.v1.SetGoalRequest
	(*SetGoalResponse)(nil),           // 13: lemniscate.v1.SetGoalResponse
	(*CollapseRequest)(nil),           // 14: lemniscate.v1.CollapseRequest
	(*CollapseResponse)(nil),          // 15: lemniscate.v1.CollapseResponse
	nil,                               // 16: lemniscate.v1.GetSnapshotResponse.ScalesEntry
	nil,                               // 17: lemniscate.v1.CollapseResponse.ValuesEntry
	(*timestamppb.Timestamp)(nil),     // 18: google.protobuf.Timestamp
}
var file_proto_lemniscate_proto_depIdxs = []int32{
	18, // 0: lemniscate.v1.Measurement.at:type_name -> google.protobuf.Timestamp
	0,  // 1: lemniscate.v1.ObserveResponse.measurement:type_name -> lemniscate.v1.Measurement
	18, // 2: lemniscate.v1.GetSnapshotResponse.at:type_name -> google.protobuf.Timestamp
	16, // 3: lemniscate.v1.GetSnapshotResponse.scales:type_name -> lemniscate.v1.GetSnapshotResponse.ScalesEntry
	18, // 4: lemniscate.v1.CollapseResponse.at:type_name -> google.protobuf.Timestamp
	17, // 5: lemniscate.v1.CollapseResponse.values:type_name -> lemniscate.v1.CollapseResponse.ValuesEntry
	7,  // 6: lemniscate.v1.GetSnapshotResponse.ScalesEntry.value:type_name -> lemniscate.v1.ScaleStatus
	1,  // 7: lemniscate.v1.LemniscateService.ObserveVector:input_type -> lemniscate.v1.ObserveVectorRequest
	2,  // 8: lemniscate.v1.LemniscateService.ObservePhase:input_type -> lemniscate.v1.ObservePhaseRequest
	3,  // 9: lemniscate.v1.LemniscateService.ObserveOutput:input_type -> lemniscate.v1.ObserveOutputRequest
	5,  // 10: lemniscate.v1.LemniscateService.GetCoherence:input_type -> lemniscate.v1.GetCoherenceRequest
	8,  // 11: lemniscate.v1.LemniscateService.GetSnapshot:input_type -> lemniscate.v1.GetSnapshotRequest
	10, // 12: lemniscate.v1.LemniscateService.RequestTransition:input_type -> lemniscate.v1.RequestTransitionRequest
	12, // 13: lemniscate.v1.LemniscateService.SetGoal:input_type -> lemniscate.v1.SetGoalRequest
	14, // 14: lemniscate.v1.LemniscateService.Collapse:input_type -> lemniscate.v1.CollapseRequest
	4,  // 15: lemniscate.v1.LemniscateService.ObserveVector:output_type -> lemniscate.v1.ObserveResponse
	4,  // 16: lemniscate.v1.LemniscateService.ObservePhase:output_type -> lemniscate.v1.ObserveResponse
	4,  // 17: lemniscate.v1.LemniscateService.ObserveOutput:output_type -> lemniscate.v1.ObserveResponse
	6,  // 18: lemniscate.v1.LemniscateService.GetCoherence:output_type -> lemniscate.v1.GetCoherenceResponse
	9,  // 19: lemniscate.v1.LemniscateService.GetSnapshot:output_type -> lemniscate.v1.GetSnapshotResponse
	11, // 20: lemniscate.v1.LemniscateService.RequestTransition:output_type -> lemniscate.v1.RequestTransitionResponse
	13, // 21: lemniscate.v1.LemniscateService.SetGoal:output_type -> lemniscate.v1.SetGoalResponse
	15, // 22: lemniscate.v1.LemniscateService.Collapse:output_type -> lemniscate.v1.CollapseResponse
	15, // [15:23] is the sub-list for method output_type
	7,  // [7:15] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_proto_lemniscate_proto_init() }
func file_proto_lemniscate_proto_init() {
	if File_proto_lemniscate_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_proto_lemniscate_proto_rawDesc), len(file_proto_lemniscate_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   18,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_proto_lemniscate_proto_goTypes,
		DependencyIndexes: file_proto_lemniscate_proto_depIdxs,
		MessageInfos:      file_proto_lemniscate_proto_msgTypes,
	}.Build()
	File_proto_lemniscate_proto = out.File
	file_proto_lemniscate_proto_goTypes = nil
	file_proto_lemniscate_proto_depIdxs = nil
}
