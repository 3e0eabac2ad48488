// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rpc

import (
	"code.hybscloud.com/wireweaver/bitio"
	"code.hybscloud.com/wireweaver/wire"
)

// PathKind selects how a Request's resource is addressed. It is
// UnsizedFinalStructure: a u4 discriminant followed by its payload,
// flattened into the Request's own scope.
type PathKind interface {
	isPathKind()
}

const (
	pathKindAbsolute uint8 = iota
	pathKindGlobalCompact
	pathKindGlobalFull
)

// Absolute addresses a resource by its numeric path from the API root.
type Absolute struct {
	Path []uint32 // UNib32 path segments
}

func (Absolute) isPathKind() {}

// GlobalCompact addresses a trait resource via a registered compact ID.
type GlobalCompact struct {
	GID           CompactVersion
	PathFromTrait []uint32
}

func (GlobalCompact) isPathKind() {}

// GlobalFull addresses a trait resource via crate name and version.
type GlobalFull struct {
	GID           FullVersion
	PathFromTrait []uint32
}

func (GlobalFull) isPathKind() {}

func writeUNib32Path(w *bitio.Writer, path []uint32) error {
	v := wire.NewRefVec(path)
	return v.EncodeTo(w, func(w *bitio.Writer, n uint32) error { return w.WriteUNib32(n) })
}

func readUNib32Path(r *bitio.Reader) ([]uint32, error) {
	v, err := wire.DecodeRefVec(r, func(r *bitio.Reader) (uint32, error) { return r.ReadUNib32() })
	if err != nil {
		return nil, err
	}
	return v.Owned()
}

func MarshalPathKind(w *bitio.Writer, p PathKind) error {
	switch v := p.(type) {
	case Absolute:
		if err := w.WriteU4(pathKindAbsolute); err != nil {
			return err
		}
		return writeUNib32Path(w, v.Path)
	case GlobalCompact:
		if err := w.WriteU4(pathKindGlobalCompact); err != nil {
			return err
		}
		if err := wire.Write(w, v.GID); err != nil {
			return err
		}
		return writeUNib32Path(w, v.PathFromTrait)
	case GlobalFull:
		if err := w.WriteU4(pathKindGlobalFull); err != nil {
			return err
		}
		if err := wire.Write(w, v.GID); err != nil {
			return err
		}
		return writeUNib32Path(w, v.PathFromTrait)
	default:
		return wire.ErrEnumFutureVersionOrMalformedData
	}
}

func UnmarshalPathKind(r *bitio.Reader) (PathKind, error) {
	disc, err := r.ReadU4()
	if err != nil {
		return nil, err
	}
	switch disc {
	case pathKindAbsolute:
		path, err := readUNib32Path(r)
		if err != nil {
			return nil, err
		}
		return Absolute{Path: path}, nil
	case pathKindGlobalCompact:
		gid, err := wire.Read(r, wire.SelfDescribing, UnmarshalCompactVersion)
		if err != nil {
			return nil, err
		}
		path, err := readUNib32Path(r)
		if err != nil {
			return nil, err
		}
		return GlobalCompact{GID: gid, PathFromTrait: path}, nil
	case pathKindGlobalFull:
		gid, err := wire.Read(r, wire.Unsized, UnmarshalFullVersion)
		if err != nil {
			return nil, err
		}
		path, err := readUNib32Path(r)
		if err != nil {
			return nil, err
		}
		return GlobalFull{GID: gid, PathFromTrait: path}, nil
	default:
		return nil, wire.ErrEnumFutureVersionOrMalformedData
	}
}
