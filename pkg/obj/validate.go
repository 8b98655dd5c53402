package obj

import "fmt"

// IndexError reports a face that cannot be drawn safely.
type IndexError struct {
	Face   int    // 0-based face number
	Corner int    // 0-based corner number, -1 for whole-face errors
	Attr   string // position, texcoord or normal
	Index  int    // offending 1-based index, or sequence length for ragged faces
	Count  int    // size of the referenced array, or corner count for ragged faces
	Err    error
}

func (e *IndexError) Error() string {
	if e.Corner < 0 {
		return fmt.Sprintf("face %d: %s: %d entries for %d corners: %v",
			e.Face, e.Attr, e.Index, e.Count, e.Err)
	}
	return fmt.Sprintf("face %d corner %d: %s index %d not in [1, %d]: %v",
		e.Face, e.Corner, e.Attr, e.Index, e.Count, e.Err)
}

func (e *IndexError) Unwrap() error {
	return e.Err
}

// Validate checks that every face index resolves to a record and that
// non-empty attribute sequences cover every corner.
func (m *Mesh) Validate() error {
	for fi := range m.Faces {
		f := &m.Faces[fi]
		if err := checkSequence(fi, "position", f.Positions, len(m.Vertices)); err != nil {
			return err
		}
		if err := checkOptional(fi, "texcoord", f.TexCoords, f.Corners(), len(m.TexCoords)); err != nil {
			return err
		}
		if err := checkOptional(fi, "normal", f.Normals, f.Corners(), len(m.Normals)); err != nil {
			return err
		}
	}
	return nil
}

func checkOptional(face int, attr string, idx []int, corners, count int) error {
	if len(idx) == 0 {
		return nil
	}
	if len(idx) != corners {
		return &IndexError{Face: face, Corner: -1, Attr: attr, Index: len(idx), Count: corners, Err: ErrRaggedFace}
	}
	return checkSequence(face, attr, idx, count)
}

func checkSequence(face int, attr string, idx []int, count int) error {
	for ci, v := range idx {
		if v < 1 || v > count {
			return &IndexError{Face: face, Corner: ci, Attr: attr, Index: v, Count: count, Err: ErrIndexOutOfRange}
		}
	}
	return nil
}
