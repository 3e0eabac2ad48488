// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package rpc implements the WireWeaver RPC envelope: Request/Event
// records, their closed-set path/operation/error kinds, and a
// tree-walking dispatcher, all built on wire and bitio.
package rpc

import (
	"code.hybscloud.com/wireweaver/bitio"
	"code.hybscloud.com/wireweaver/wire"
)

// CompactVersion is three UNib32 fields and nothing else: it is
// SelfDescribing, so it never opens a reverse scope of its own — the
// smallest possible encoding of a GlobalCompact trait ID is whatever
// the three UNib32s themselves take (one nibble each in the common
// case, so two bytes once nibble-aligned and padded to a byte).
type CompactVersion struct {
	Major, Minor, Patch uint32
}

func (v CompactVersion) MarshalWire(w *bitio.Writer) error {
	if err := w.WriteUNib32(v.Major); err != nil {
		return err
	}
	if err := w.WriteUNib32(v.Minor); err != nil {
		return err
	}
	return w.WriteUNib32(v.Patch)
}

// ElementSize reports CompactVersion as SelfDescribing, satisfying
// wire.Marshaler: its three UNib32 fields each carry their own
// continuation bit, so nothing wraps it in a reverse-size scope.
func (v CompactVersion) ElementSize() wire.ElementSize { return wire.SelfDescribing }

func UnmarshalCompactVersion(r *bitio.Reader) (CompactVersion, error) {
	var v CompactVersion
	var err error
	if v.Major, err = r.ReadUNib32(); err != nil {
		return CompactVersion{}, err
	}
	if v.Minor, err = r.ReadUNib32(); err != nil {
		return CompactVersion{}, err
	}
	if v.Patch, err = r.ReadUNib32(); err != nil {
		return CompactVersion{}, err
	}
	return v, nil
}

// Compatible reports whether two compact versions identify the same
// trait revision closely enough to interoperate: major and minor must
// match exactly, patch differences are tolerated.
func (v CompactVersion) Compatible(other CompactVersion) bool {
	return v.Major == other.Major && v.Minor == other.Minor
}

// FullVersion identifies a trait (or, as FULL_VERSION, the protocol
// itself) by crate name plus semantic version. Because it carries a
// string field it is Unsized: callers embedding it in a larger
// aggregate (PathKind.GlobalFull, the link-setup handshake) must wrap
// its encode/decode in wire.WriteUnsizedScope/wire.ReadUnsizedScope.
type FullVersion struct {
	CrateID             string
	Major, Minor, Patch uint32
}

func (v FullVersion) MarshalWire(w *bitio.Writer) error {
	if err := w.WriteString(v.CrateID); err != nil {
		return err
	}
	if err := w.WriteUNib32(v.Major); err != nil {
		return err
	}
	if err := w.WriteUNib32(v.Minor); err != nil {
		return err
	}
	return w.WriteUNib32(v.Patch)
}

// ElementSize reports FullVersion as Unsized, satisfying wire.Marshaler:
// its CrateID string field makes the aggregate's total width unknowable
// without reading it, so every embedder wraps it in a reverse-size
// scope (wire.Write/wire.Read do this automatically).
func (v FullVersion) ElementSize() wire.ElementSize { return wire.Unsized }

func UnmarshalFullVersion(r *bitio.Reader) (FullVersion, error) {
	var v FullVersion
	var err error
	if v.CrateID, err = r.ReadString(); err != nil {
		return FullVersion{}, err
	}
	if v.Major, err = r.ReadUNib32(); err != nil {
		return FullVersion{}, err
	}
	if v.Minor, err = r.ReadUNib32(); err != nil {
		return FullVersion{}, err
	}
	if v.Patch, err = r.ReadUNib32(); err != nil {
		return FullVersion{}, err
	}
	return v, nil
}

// Compatible reports whether two peers' full versions can interoperate:
// the same crate, with major and minor equal; patch is tolerated.
func (v FullVersion) Compatible(other FullVersion) bool {
	return v.CrateID == other.CrateID && v.Major == other.Major && v.Minor == other.Minor
}

// Owned returns v unchanged: FullVersion already owns its fields.
func (v FullVersion) Owned() FullVersion { return v }
