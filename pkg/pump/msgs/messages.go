// Package msgs defines the L1 message schemas of the pump controller.
package msgs

import (
	"github.com/golang/protobuf/proto"

	fx "github.com/robotalks/pump.go/pkg/framework"
	"github.com/robotalks/pump.go/pkg/l1/msgs"
)

// Buttons on the pump head unit.
const (
	ButtonStart  uint32 = 0
	ButtonSelect uint32 = 1
)

// PumpPress commands a press of one of the head unit buttons.
type PumpPress struct {
	Button uint32 `protobuf:"varint,1,opt,name=button,proto3" json:"button,omitempty"`
}

// NewMessage implements Message.
func (m *PumpPress) NewMessage() fx.Message { return &PumpPress{} }

// TypeID implements SerializableMessage.
func (m *PumpPress) TypeID() uint32 { return PumpPressTypeID }

// Serializable implements SerializableMessage.
func (m *PumpPress) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *PumpPress) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PumpPress) Reset() { *m = PumpPress{} }

// String implements proto.Message.
func (m *PumpPress) String() string { return proto.CompactTextString(m) }

// PumpTurn commands a single detent of the rotary knob.
type PumpTurn struct {
	Forward bool `protobuf:"varint,1,opt,name=forward,proto3" json:"forward,omitempty"`
}

// NewMessage implements Message.
func (m *PumpTurn) NewMessage() fx.Message { return &PumpTurn{} }

// TypeID implements SerializableMessage.
func (m *PumpTurn) TypeID() uint32 { return PumpTurnTypeID }

// Serializable implements SerializableMessage.
func (m *PumpTurn) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *PumpTurn) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PumpTurn) Reset() { *m = PumpTurn{} }

// String implements proto.Message.
func (m *PumpTurn) String() string { return proto.CompactTextString(m) }

// PumpStatusQuery queries the current status.
type PumpStatusQuery struct {
}

// NewMessage implements Message.
func (m *PumpStatusQuery) NewMessage() fx.Message { return &PumpStatusQuery{} }

// TypeID implements SerializableMessage.
func (m *PumpStatusQuery) TypeID() uint32 { return PumpStatusQueryTypeID }

// Serializable implements SerializableMessage.
func (m *PumpStatusQuery) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *PumpStatusQuery) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PumpStatusQuery) Reset() { *m = PumpStatusQuery{} }

// String implements proto.Message.
func (m *PumpStatusQuery) String() string { return proto.CompactTextString(m) }

// PumpStatusReply is the response for PumpStatusQuery.
type PumpStatusReply struct {
	Status *PumpStatus `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
}

// NewMessage implements Message.
func (m *PumpStatusReply) NewMessage() fx.Message { return &PumpStatusReply{} }

// TypeID implements SerializableMessage.
func (m *PumpStatusReply) TypeID() uint32 { return PumpStatusReplyTypeID }

// Serializable implements SerializableMessage.
func (m *PumpStatusReply) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *PumpStatusReply) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PumpStatusReply) Reset() { *m = PumpStatusReply{} }

// String implements proto.Message.
func (m *PumpStatusReply) String() string { return proto.CompactTextString(m) }

// PumpSettings carries the persisted operating parameters.
type PumpSettings struct {
	UnitsPerRev uint32 `protobuf:"varint,1,opt,name=units_per_rev,json=unitsPerRev,proto3" json:"units_per_rev,omitempty"`
	UlPerMin    uint32 `protobuf:"varint,2,opt,name=ul_per_min,json=ulPerMin,proto3" json:"ul_per_min,omitempty"`
	VolumeUl    uint32 `protobuf:"varint,3,opt,name=volume_ul,json=volumeUl,proto3" json:"volume_ul,omitempty"`
	Forward     bool   `protobuf:"varint,4,opt,name=forward,proto3" json:"forward,omitempty"`
}

// ProtoMessage implements proto.Message.
func (m *PumpSettings) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PumpSettings) Reset() { *m = PumpSettings{} }

// String implements proto.Message.
func (m *PumpSettings) String() string { return proto.CompactTextString(m) }

// PumpStatus is an Event message reflecting pump status.
type PumpStatus struct {
	Running      bool          `protobuf:"varint,1,opt,name=running,proto3" json:"running,omitempty"`
	DistanceMode bool          `protobuf:"varint,2,opt,name=distance_mode,json=distanceMode,proto3" json:"distance_mode,omitempty"`
	Page         uint32        `protobuf:"varint,3,opt,name=page,proto3" json:"page,omitempty"`
	Mode         uint32        `protobuf:"varint,4,opt,name=mode,proto3" json:"mode,omitempty"`
	Settings     *PumpSettings `protobuf:"bytes,5,opt,name=settings,proto3" json:"settings,omitempty"`
}

// NewMessage implements Message.
func (m *PumpStatus) NewMessage() fx.Message { return &PumpStatus{} }

// TypeID implements SerializableMessage.
func (m *PumpStatus) TypeID() uint32 { return PumpStatusEventTypeID }

// Serializable implements SerializableMessage.
func (m *PumpStatus) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *PumpStatus) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PumpStatus) Reset() { *m = PumpStatus{} }

// String implements proto.Message.
func (m *PumpStatus) String() string { return proto.CompactTextString(m) }

// DisplayUpdate is an Event message carrying the panel content.
type DisplayUpdate struct {
	Lines     []string `protobuf:"bytes,1,rep,name=lines,proto3" json:"lines,omitempty"`
	CursorRow uint32   `protobuf:"varint,2,opt,name=cursor_row,json=cursorRow,proto3" json:"cursor_row,omitempty"`
	CursorCol uint32   `protobuf:"varint,3,opt,name=cursor_col,json=cursorCol,proto3" json:"cursor_col,omitempty"`
	CursorOn  bool     `protobuf:"varint,4,opt,name=cursor_on,json=cursorOn,proto3" json:"cursor_on,omitempty"`
}

// NewMessage implements Message.
func (m *DisplayUpdate) NewMessage() fx.Message { return &DisplayUpdate{} }

// TypeID implements SerializableMessage.
func (m *DisplayUpdate) TypeID() uint32 { return DisplayUpdateEventTypeID }

// Serializable implements SerializableMessage.
func (m *DisplayUpdate) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *DisplayUpdate) ProtoMessage() {}

// Reset implements proto.Message.
func (m *DisplayUpdate) Reset() { *m = DisplayUpdate{} }

// String implements proto.Message.
func (m *DisplayUpdate) String() string { return proto.CompactTextString(m) }

// GroupPump defines the pump message group.
const GroupPump uint32 = 0x00030000

// TypeIDs
const (
	PumpPressTypeID          uint32 = GroupPump | 0x0000
	PumpTurnTypeID           uint32 = GroupPump | 0x0001
	PumpStatusQueryTypeID    uint32 = GroupPump | 0x0002
	PumpStatusReplyTypeID    uint32 = PumpStatusQueryTypeID | msgs.TypeIDMaskReply
	PumpStatusEventTypeID    uint32 = GroupPump | msgs.TypeIDKindEvent | 0x0000
	DisplayUpdateEventTypeID uint32 = GroupPump | msgs.TypeIDKindEvent | 0x0001
)

func init() {
	msgs.MessageTypes[PumpPressTypeID] = (*PumpPress)(nil)
	msgs.MessageTypes[PumpTurnTypeID] = (*PumpTurn)(nil)
	msgs.MessageTypes[PumpStatusQueryTypeID] = (*PumpStatusQuery)(nil)
	msgs.MessageTypes[PumpStatusReplyTypeID] = (*PumpStatusReply)(nil)
	msgs.MessageTypes[PumpStatusEventTypeID] = (*PumpStatus)(nil)
	msgs.MessageTypes[DisplayUpdateEventTypeID] = (*DisplayUpdate)(nil)
}
