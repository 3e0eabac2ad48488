// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rpc

import (
	"code.hybscloud.com/wireweaver/bitio"
	"code.hybscloud.com/wireweaver/wire"
)

// ShaperConfig limits how often a property or stream sends updates.
// It is UnsizedFinalStructure: a u4 discriminant followed by an
// at-most-one-u32 payload, flattened into whatever scope holds it.
type ShaperConfig interface {
	isShaperConfig()
}

const (
	shaperNoLimit uint8 = iota
	shaperMaxBitrate
	shaperMaxRate
)

type NoLimit struct{}

func (NoLimit) isShaperConfig() {}

type MaxBitrate struct{ BytesPerSecond uint32 }

func (MaxBitrate) isShaperConfig() {}

type MaxRate struct{ EventsPerSecond uint32 }

func (MaxRate) isShaperConfig() {}

func MarshalShaperConfig(w *bitio.Writer, s ShaperConfig) error {
	switch v := s.(type) {
	case NoLimit:
		return w.WriteU4(shaperNoLimit)
	case MaxBitrate:
		if err := w.WriteU4(shaperMaxBitrate); err != nil {
			return err
		}
		return w.WriteU32(v.BytesPerSecond)
	case MaxRate:
		if err := w.WriteU4(shaperMaxRate); err != nil {
			return err
		}
		return w.WriteU32(v.EventsPerSecond)
	default:
		return wire.ErrEnumFutureVersionOrMalformedData
	}
}

func UnmarshalShaperConfig(r *bitio.Reader) (ShaperConfig, error) {
	disc, err := r.ReadU4()
	if err != nil {
		return nil, err
	}
	switch disc {
	case shaperNoLimit:
		return NoLimit{}, nil
	case shaperMaxBitrate:
		v, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		return MaxBitrate{BytesPerSecond: v}, nil
	case shaperMaxRate:
		v, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		return MaxRate{EventsPerSecond: v}, nil
	default:
		return nil, wire.ErrEnumFutureVersionOrMalformedData
	}
}
