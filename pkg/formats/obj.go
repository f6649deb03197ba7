package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// OBJ format errors.
var (
	ErrInvalidOBJVector = errors.New("invalid OBJ vector line")
	ErrInvalidOBJFace   = errors.New("invalid OBJ face line")
	ErrInvalidOBJIndex  = errors.New("invalid OBJ face index")
)

// OBJVertexRef references vertex attributes by 1-based index into the
// mesh arrays. TexCoord and Normal are 0 when the face token omits them.
type OBJVertexRef struct {
	Position int
	TexCoord int
	Normal   int
}

// OBJFace is a triangle of vertex references. Winding order is
// significant: it determines the facing direction of the face normal.
type OBJFace [3]OBJVertexRef

// OBJ represents a parsed Wavefront OBJ mesh. Faces with more than
// three vertices are fan-triangulated during parsing, so Faces always
// holds triangles.
type OBJ struct {
	Positions [][3]float32
	TexCoords [][3]float32
	Normals   [][3]float32
	Faces     []OBJFace
}

// ParseOBJ parses OBJ mesh text from raw bytes.
//
// Lines are classified by their first token: "v" positions, "vt"
// texture coordinates, "vn" normals, "f" faces. All other lines,
// including comments, are ignored. An n-gon face is split into n-2
// triangles sharing the first vertex.
func ParseOBJ(data []byte) (*OBJ, error) {
	obj := &OBJ{}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			vec, err := parseVector(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			obj.Positions = append(obj.Positions, vec)
		case "vt":
			vec, err := parseTexCoord(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			obj.TexCoords = append(obj.TexCoords, vec)
		case "vn":
			vec, err := parseVector(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			obj.Normals = append(obj.Normals, vec)
		case "f":
			refs, err := parseFaceRefs(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			// Fan triangulation anchored at the first vertex
			for i := 2; i < len(refs); i++ {
				obj.Faces = append(obj.Faces, OBJFace{refs[0], refs[i-1], refs[i]})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ data: %w", err)
	}

	return obj, nil
}

// ParseOBJFile parses an OBJ mesh from disk.
func ParseOBJFile(path string) (*OBJ, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}
	return ParseOBJ(data)
}

// parseVector decodes exactly three numeric fields. Trailing fields
// (like the optional w on position lines) are ignored.
func parseVector(fields []string) ([3]float32, error) {
	if len(fields) < 3 {
		return [3]float32{}, fmt.Errorf("%w: expected 3 components, got %d", ErrInvalidOBJVector, len(fields))
	}
	var vec [3]float32
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return [3]float32{}, fmt.Errorf("%w: %q", ErrInvalidOBJVector, fields[i])
		}
		vec[i] = float32(f)
	}
	return vec, nil
}

// parseTexCoord decodes a texture coordinate with two or three fields;
// a missing third component defaults to zero.
func parseTexCoord(fields []string) ([3]float32, error) {
	if len(fields) < 2 {
		return [3]float32{}, fmt.Errorf("%w: expected at least 2 components, got %d", ErrInvalidOBJVector, len(fields))
	}
	var vec [3]float32
	n := len(fields)
	if n > 3 {
		n = 3
	}
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return [3]float32{}, fmt.Errorf("%w: %q", ErrInvalidOBJVector, fields[i])
		}
		vec[i] = float32(f)
	}
	return vec, nil
}

// parseFaceRefs decodes the index[/index[/index]] tokens of a face line.
func parseFaceRefs(tokens []string) ([]OBJVertexRef, error) {
	if len(tokens) < 3 {
		return nil, fmt.Errorf("%w: expected at least 3 vertices, got %d", ErrInvalidOBJFace, len(tokens))
	}

	refs := make([]OBJVertexRef, 0, len(tokens))
	for _, token := range tokens {
		ref, err := parseFaceToken(token)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// parseFaceToken decodes a single v, v/vt, v//vn or v/vt/vn token.
// Empty slots between slashes leave the corresponding index at zero.
func parseFaceToken(token string) (OBJVertexRef, error) {
	parts := strings.Split(token, "/")
	if len(parts) > 3 {
		return OBJVertexRef{}, fmt.Errorf("%w: %q", ErrInvalidOBJFace, token)
	}

	var ref OBJVertexRef
	for i, part := range parts {
		if part == "" {
			if i == 0 {
				return OBJVertexRef{}, fmt.Errorf("%w: missing position index in %q", ErrInvalidOBJIndex, token)
			}
			continue
		}
		idx, err := strconv.Atoi(part)
		if err != nil || idx < 1 {
			return OBJVertexRef{}, fmt.Errorf("%w: %q", ErrInvalidOBJIndex, part)
		}
		switch i {
		case 0:
			ref.Position = idx
		case 1:
			ref.TexCoord = idx
		case 2:
			ref.Normal = idx
		}
	}
	return ref, nil
}
