// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rpc

import (
	"code.hybscloud.com/wireweaver/bitio"
	"code.hybscloud.com/wireweaver/wire"
)

// ErrorKind is the failure outcome of a dispatched Request, carried as
// the Err arm of an Event's wire.Result. Unlike the other enums in
// this package its discriminant is a UNib32, not a fixed u4: the
// taxonomy is open-ended (UserBytes lets a node graft its own
// application-specific error codes onto the end) so it is sized by
// how many variants actually exist rather than reserved to four bits.
type ErrorKind interface {
	isErrorKind()
}

const (
	errorKindOperationNotSupported uint32 = iota
	errorKindBadPath
	errorKindBadIndex
	errorKindExpectedArrayIndexGotNone
	errorKindArrayIndexDesFailed
	errorKindArgsDesFailed
	errorKindPathDesFailed
	errorKindPropertyDesFailed
	errorKindResponseSerFailed
	errorKindOperationNotImplemented
	errorKindReadPropertyWithSeqZero
	errorKindPathKindNotSupported
	errorKindUserBytes
)

type OperationNotSupported struct{}

func (OperationNotSupported) isErrorKind() {}

type BadPath struct{}

func (BadPath) isErrorKind() {}

type BadIndex struct{}

func (BadIndex) isErrorKind() {}

type ExpectedArrayIndexGotNone struct{}

func (ExpectedArrayIndexGotNone) isErrorKind() {}

type ArrayIndexDesFailed struct{}

func (ArrayIndexDesFailed) isErrorKind() {}

type ArgsDesFailed struct{}

func (ArgsDesFailed) isErrorKind() {}

type PathDesFailed struct{}

func (PathDesFailed) isErrorKind() {}

type PropertyDesFailed struct{}

func (PropertyDesFailed) isErrorKind() {}

type ResponseSerFailed struct{}

func (ResponseSerFailed) isErrorKind() {}

type OperationNotImplemented struct{}

func (OperationNotImplemented) isErrorKind() {}

type ReadPropertyWithSeqZero struct{}

func (ReadPropertyWithSeqZero) isErrorKind() {}

type PathKindNotSupported struct{}

func (PathKindNotSupported) isErrorKind() {}

// UserBytes lets a node surface an application-defined error payload
// that doesn't fit any of the built-in kinds.
type UserBytes struct{ Bytes []byte }

func (UserBytes) isErrorKind() {}

func MarshalErrorKind(w *bitio.Writer, k ErrorKind) error {
	switch v := k.(type) {
	case OperationNotSupported:
		return w.WriteUNib32(errorKindOperationNotSupported)
	case BadPath:
		return w.WriteUNib32(errorKindBadPath)
	case BadIndex:
		return w.WriteUNib32(errorKindBadIndex)
	case ExpectedArrayIndexGotNone:
		return w.WriteUNib32(errorKindExpectedArrayIndexGotNone)
	case ArrayIndexDesFailed:
		return w.WriteUNib32(errorKindArrayIndexDesFailed)
	case ArgsDesFailed:
		return w.WriteUNib32(errorKindArgsDesFailed)
	case PathDesFailed:
		return w.WriteUNib32(errorKindPathDesFailed)
	case PropertyDesFailed:
		return w.WriteUNib32(errorKindPropertyDesFailed)
	case ResponseSerFailed:
		return w.WriteUNib32(errorKindResponseSerFailed)
	case OperationNotImplemented:
		return w.WriteUNib32(errorKindOperationNotImplemented)
	case ReadPropertyWithSeqZero:
		return w.WriteUNib32(errorKindReadPropertyWithSeqZero)
	case PathKindNotSupported:
		return w.WriteUNib32(errorKindPathKindNotSupported)
	case UserBytes:
		if err := w.WriteUNib32(errorKindUserBytes); err != nil {
			return err
		}
		return wire.WriteBytes(w, v.Bytes)
	default:
		return wire.ErrEnumFutureVersionOrMalformedData
	}
}

func UnmarshalErrorKind(r *bitio.Reader) (ErrorKind, error) {
	disc, err := r.ReadUNib32()
	if err != nil {
		return nil, err
	}
	switch disc {
	case errorKindOperationNotSupported:
		return OperationNotSupported{}, nil
	case errorKindBadPath:
		return BadPath{}, nil
	case errorKindBadIndex:
		return BadIndex{}, nil
	case errorKindExpectedArrayIndexGotNone:
		return ExpectedArrayIndexGotNone{}, nil
	case errorKindArrayIndexDesFailed:
		return ArrayIndexDesFailed{}, nil
	case errorKindArgsDesFailed:
		return ArgsDesFailed{}, nil
	case errorKindPathDesFailed:
		return PathDesFailed{}, nil
	case errorKindPropertyDesFailed:
		return PropertyDesFailed{}, nil
	case errorKindResponseSerFailed:
		return ResponseSerFailed{}, nil
	case errorKindOperationNotImplemented:
		return OperationNotImplemented{}, nil
	case errorKindReadPropertyWithSeqZero:
		return ReadPropertyWithSeqZero{}, nil
	case errorKindPathKindNotSupported:
		return PathKindNotSupported{}, nil
	case errorKindUserBytes:
		b, err := wire.ReadBytes(r)
		if err != nil {
			return nil, err
		}
		return UserBytes{Bytes: b}, nil
	default:
		return nil, wire.ErrEnumFutureVersionOrMalformedData
	}
}
