// Copyright (c) 2019, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The OBJ parsing is based on https://github.com/g3n/engine :
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/curvemesh/math32"
)

const blanks = "\r\n\t "

// WriteOBJ writes the mesh in the Wavefront OBJ format:
// one v line per vertex, one f line per face, and one l line
// per edge that does not bound a face.
func (ms *Mesh) WriteOBJ(w io.Writer, name string) error {
	bw := bufio.NewWriter(w)
	if name != "" {
		fmt.Fprintf(bw, "o %s\n", name)
	}
	for _, v := range ms.Vertices {
		fmt.Fprintf(bw, "v %s %s %s\n", formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z))
	}
	for _, e := range ms.LooseEdges() {
		fmt.Fprintf(bw, "l %d %d\n", e.A+1, e.B+1)
	}
	for _, f := range ms.Faces {
		bw.WriteString("f")
		for _, vi := range f {
			fmt.Fprintf(bw, " %d", vi+1)
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// SaveOBJ writes the mesh to the given OBJ file.
func (ms *Mesh) SaveOBJ(filename, name string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	err = ms.WriteOBJ(f, name)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// Decoder reads the geometry of a Wavefront OBJ file into a [Mesh].
// Only positions (v), polylines (l) and faces (f) are used;
// other statements are recorded in Warnings.
type Decoder struct {
	Mesh     *Mesh
	Warnings []string
	edges    EdgeSet
	line     int
}

// ReadOBJ decodes a mesh from the given OBJ data.
// Edges are rebuilt from the face loops and polylines.
func ReadOBJ(r io.Reader) (*Mesh, []string, error) {
	dec := &Decoder{Mesh: New()}
	if err := dec.parse(r, dec.parseObjLine); err != nil {
		return nil, dec.Warnings, err
	}
	dec.Mesh.Edges = dec.edges.Edges()
	return dec.Mesh, dec.Warnings, nil
}

func (dec *Decoder) parse(reader io.Reader, parseLine func(string) error) error {
	bufin := bufio.NewReader(reader)
	dec.line = 1
	for {
		// Reads next line and abort on errors (not EOF)
		line, err := bufin.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		line = strings.Trim(line, blanks)
		perr := parseLine(line)
		if perr != nil {
			return perr
		}
		if err == io.EOF {
			break
		}
		dec.line++
	}
	return nil
}

func (dec *Decoder) parseObjLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	ltype := fields[0]
	if strings.HasPrefix(ltype, "#") {
		return nil
	}
	switch ltype {
	case "o", "g", "s":
		return nil
	case "v":
		return dec.parseVertex(fields[1:])
	case "l":
		return dec.parseLine(fields[1:])
	case "f":
		return dec.parseFace(fields[1:])
	default:
		dec.appendWarn("field not supported: " + ltype)
	}
	return nil
}

func (dec *Decoder) parseVertex(fields []string) error {
	if len(fields) < 3 {
		return dec.formatError("Less than 3 coordinates in 'v' line")
	}
	var c [3]float32
	for i, f := range fields[:3] {
		val, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return err
		}
		c[i] = float32(val)
	}
	dec.Mesh.AddVertex(math32.Vector3FromArray(c))
	return nil
}

// vertexIndex returns the zero based vertex index of the given
// v/vt/vn face or line field.
func (dec *Decoder) vertexIndex(field string) (int, error) {
	vfields := strings.Split(field, "/")
	val, err := strconv.ParseInt(vfields[0], 10, 32)
	if err != nil {
		return 0, err
	}
	var idx int
	switch {
	// Positive index is an absolute vertex index
	case val > 0:
		idx = int(val - 1)
	// Negative vertex index is relative to the last parsed vertex
	case val < 0:
		idx = dec.Mesh.NumVertices() + int(val)
	default:
		return 0, dec.formatError("Vertex index value equal to 0")
	}
	if idx < 0 || idx >= dec.Mesh.NumVertices() {
		return 0, dec.formatError(fmt.Sprintf("Vertex index %d out of range", val))
	}
	return idx, nil
}

func (dec *Decoder) parseLine(fields []string) error {
	if len(fields) < 2 {
		return dec.formatError("Line with less than 2 fields")
	}
	prev := -1
	for _, f := range fields {
		vi, err := dec.vertexIndex(f)
		if err != nil {
			return err
		}
		if prev >= 0 {
			dec.edges.Add(prev, vi)
		}
		prev = vi
	}
	return nil
}

func (dec *Decoder) parseFace(fields []string) error {
	if len(fields) < 3 {
		return dec.formatError("Face line with less 3 fields")
	}
	face := make(Face, len(fields))
	for pos, f := range fields {
		vi, err := dec.vertexIndex(f)
		if err != nil {
			return err
		}
		face[pos] = vi
	}
	dec.edges.AddLoop(face)
	dec.Mesh.Faces = append(dec.Mesh.Faces, face)
	return nil
}

func (dec *Decoder) formatError(msg string) error {
	return fmt.Errorf("obj: %s in line:%d", msg, dec.line)
}

func (dec *Decoder) appendWarn(msg string) {
	dec.Warnings = append(dec.Warnings, fmt.Sprintf("obj: %s in line:%d", msg, dec.line))
}
