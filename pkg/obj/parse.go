package obj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// OBJ load errors.
var (
	ErrOpen            = errors.New("cannot open OBJ file")
	ErrMalformedRecord = errors.New("malformed OBJ record")
	ErrIndexOutOfRange = errors.New("face index out of range")
	ErrRaggedFace      = errors.New("face attribute count does not match corner count")

	errNotFinite = errors.New("value is not finite")
)

// maxLineSize bounds a single OBJ line.
const maxLineSize = 1 << 20

// ParseError reports a record that could not be converted.
type ParseError struct {
	Line  int    // 1-based line number
	Kind  string // record keyword: v, vn, vt or f
	Token string // offending token, empty if a component was missing
	Err   error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("line %d: %s record: %v", e.Line, e.Kind, e.Err)
	}
	return fmt.Sprintf("line %d: %s record: token %q: %v", e.Line, e.Kind, e.Token, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrMalformedRecord, e.Err}
}

// Parse reads an OBJ stream in a single pass. Unknown record kinds are
// ignored. Any malformed numeric token aborts the whole parse.
func Parse(r io.Reader) (*Mesh, error) {
	m := &Mesh{}
	m.reset()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		var err error
		switch kind, args := fields[0], fields[1:]; kind {
		case "v":
			err = m.parseVertex(args)
		case "vn":
			err = m.parseNormal(args)
		case "vt":
			err = m.parseTexCoord(args)
		case "f":
			err = m.parseFace(args)
		default:
			// Comments, object/group names, smoothing groups and material
			// directives are not part of the mesh.
		}
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Line = lineNo
				pe.Kind = fields[0]
			}
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ data: %w", err)
	}

	m.Center = m.Min.Midpoint(m.Max)
	return m, nil
}

// ParseFile opens, parses and validates an OBJ file.
func ParseFile(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	return m, nil
}

// Load replaces the mesh with the contents of path. On any error the
// receiver keeps its previous data.
func (m *Mesh) Load(path string) error {
	loaded, err := ParseFile(path)
	if err != nil {
		return err
	}
	*m = *loaded
	return nil
}

func (m *Mesh) parseVertex(args []string) error {
	c, err := parseFloats(args, 3)
	if err != nil {
		return err
	}
	m.addVertex(Vertex{X: c[0], Y: c[1], Z: c[2]})
	return nil
}

func (m *Mesh) parseNormal(args []string) error {
	c, err := parseFloats(args, 3)
	if err != nil {
		return err
	}
	m.Normals = append(m.Normals, Normal{X: c[0], Y: c[1], Z: c[2]})
	return nil
}

func (m *Mesh) parseTexCoord(args []string) error {
	c, err := parseFloats(args, 2)
	if err != nil {
		return err
	}
	m.TexCoords = append(m.TexCoords, TexCoord{U: c[0], V: c[1]})
	return nil
}

// parseFace reads corners of the form p, p/t, p//n or p/t/n.
func (m *Mesh) parseFace(args []string) error {
	var face Face
	for _, corner := range args {
		parts := strings.Split(corner, "/")

		pos, err := parseIndex(parts[0])
		if err != nil {
			return err
		}
		face.Positions = append(face.Positions, pos)

		if len(parts) > 1 && parts[1] != "" {
			tex, err := parseIndex(parts[1])
			if err != nil {
				return err
			}
			face.TexCoords = append(face.TexCoords, tex)
		}
		if len(parts) > 2 && parts[2] != "" {
			norm, err := parseIndex(parts[2])
			if err != nil {
				return err
			}
			face.Normals = append(face.Normals, norm)
		}
	}
	m.Faces = append(m.Faces, face)
	return nil
}

// parseFloats converts the first n tokens. Extra tokens are ignored.
// nan and inf spellings are rejected.
func parseFloats(args []string, n int) ([3]float32, error) {
	var out [3]float32
	if len(args) < n {
		return out, &ParseError{Err: fmt.Errorf("expected %d components, got %d", n, len(args))}
	}
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return out, &ParseError{Token: args[i], Err: err}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return out, &ParseError{Token: args[i], Err: errNotFinite}
		}
		out[i] = float32(v)
	}
	return out, nil
}

func parseIndex(tok string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &ParseError{Token: tok, Err: err}
	}
	return v, nil
}
