// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rpc

import (
	"code.hybscloud.com/wireweaver/bitio"
	"code.hybscloud.com/wireweaver/wire"
)

// StreamSidebandCommand travels alongside stream data, in the same
// order, carrying open/close/frame-sync/rate/size/user-defined control
// messages a stream producer can send without its own channel.
type StreamSidebandCommand interface {
	isStreamSidebandCommand()
}

const (
	sidebandCmdOpen uint8 = iota
	sidebandCmdClose
	sidebandCmdFrameSync
	sidebandCmdChangeRate
	sidebandCmdSizeHint
	sidebandCmdUser
)

type SidebandOpen struct{}

func (SidebandOpen) isStreamSidebandCommand() {}

type SidebandClose struct{}

func (SidebandClose) isStreamSidebandCommand() {}

type SidebandFrameSync struct{}

func (SidebandFrameSync) isStreamSidebandCommand() {}

type SidebandChangeRate struct{ ShaperConfig ShaperConfig }

func (SidebandChangeRate) isStreamSidebandCommand() {}

type SidebandSizeHint struct{ Hint uint32 }

func (SidebandSizeHint) isStreamSidebandCommand() {}

type SidebandUser struct{ Value uint32 }

func (SidebandUser) isStreamSidebandCommand() {}

func MarshalStreamSidebandCommand(w *bitio.Writer, c StreamSidebandCommand) error {
	switch v := c.(type) {
	case SidebandOpen:
		return w.WriteU4(sidebandCmdOpen)
	case SidebandClose:
		return w.WriteU4(sidebandCmdClose)
	case SidebandFrameSync:
		return w.WriteU4(sidebandCmdFrameSync)
	case SidebandChangeRate:
		if err := w.WriteU4(sidebandCmdChangeRate); err != nil {
			return err
		}
		return MarshalShaperConfig(w, v.ShaperConfig)
	case SidebandSizeHint:
		if err := w.WriteU4(sidebandCmdSizeHint); err != nil {
			return err
		}
		return w.WriteU32(v.Hint)
	case SidebandUser:
		if err := w.WriteU4(sidebandCmdUser); err != nil {
			return err
		}
		return w.WriteU32(v.Value)
	default:
		return wire.ErrEnumFutureVersionOrMalformedData
	}
}

func UnmarshalStreamSidebandCommand(r *bitio.Reader) (StreamSidebandCommand, error) {
	disc, err := r.ReadU4()
	if err != nil {
		return nil, err
	}
	switch disc {
	case sidebandCmdOpen:
		return SidebandOpen{}, nil
	case sidebandCmdClose:
		return SidebandClose{}, nil
	case sidebandCmdFrameSync:
		return SidebandFrameSync{}, nil
	case sidebandCmdChangeRate:
		cfg, err := UnmarshalShaperConfig(r)
		if err != nil {
			return nil, err
		}
		return SidebandChangeRate{ShaperConfig: cfg}, nil
	case sidebandCmdSizeHint:
		v, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		return SidebandSizeHint{Hint: v}, nil
	case sidebandCmdUser:
		v, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		return SidebandUser{Value: v}, nil
	default:
		return nil, wire.ErrEnumFutureVersionOrMalformedData
	}
}

// StreamSidebandEvent is the server-to-client counterpart: acks for
// Open/Close/FrameSync plus size-hint and user-defined events.
type StreamSidebandEvent interface {
	isStreamSidebandEvent()
}

const (
	sidebandEvtOpened uint8 = iota
	sidebandEvtClosed
	sidebandEvtFrameSync
	sidebandEvtSizeHint
	sidebandEvtUser
)

type SidebandOpened struct{}

func (SidebandOpened) isStreamSidebandEvent() {}

type SidebandClosed struct{}

func (SidebandClosed) isStreamSidebandEvent() {}

type SidebandEventFrameSync struct{}

func (SidebandEventFrameSync) isStreamSidebandEvent() {}

type SidebandEventSizeHint struct{ Hint uint32 }

func (SidebandEventSizeHint) isStreamSidebandEvent() {}

type SidebandEventUser struct{ Value uint32 }

func (SidebandEventUser) isStreamSidebandEvent() {}

func MarshalStreamSidebandEvent(w *bitio.Writer, e StreamSidebandEvent) error {
	switch v := e.(type) {
	case SidebandOpened:
		return w.WriteU4(sidebandEvtOpened)
	case SidebandClosed:
		return w.WriteU4(sidebandEvtClosed)
	case SidebandEventFrameSync:
		return w.WriteU4(sidebandEvtFrameSync)
	case SidebandEventSizeHint:
		if err := w.WriteU4(sidebandEvtSizeHint); err != nil {
			return err
		}
		return w.WriteU32(v.Hint)
	case SidebandEventUser:
		if err := w.WriteU4(sidebandEvtUser); err != nil {
			return err
		}
		return w.WriteU32(v.Value)
	default:
		return wire.ErrEnumFutureVersionOrMalformedData
	}
}

func UnmarshalStreamSidebandEvent(r *bitio.Reader) (StreamSidebandEvent, error) {
	disc, err := r.ReadU4()
	if err != nil {
		return nil, err
	}
	switch disc {
	case sidebandEvtOpened:
		return SidebandOpened{}, nil
	case sidebandEvtClosed:
		return SidebandClosed{}, nil
	case sidebandEvtFrameSync:
		return SidebandEventFrameSync{}, nil
	case sidebandEvtSizeHint:
		v, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		return SidebandEventSizeHint{Hint: v}, nil
	case sidebandEvtUser:
		v, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		return SidebandEventUser{Value: v}, nil
	default:
		return nil, wire.ErrEnumFutureVersionOrMalformedData
	}
}
