package rotd

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Vectors, normals and rotors are encoded as flat arrays of components, with
// rotors stored as torque vectors. Matrices are encoded as arrays of rows.

func (v Vect[D, S]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Components())
}

func (v *Vect[D, S]) UnmarshalJSON(data []byte) error {
	var comps []S
	if err := json.Unmarshal(data, &comps); err != nil {
		return errors.Wrap(err, "unmarshal vector")
	}
	res, err := vectFromSlice[D](comps)
	if err != nil {
		return errors.Wrap(err, "unmarshal vector")
	}
	*v = res
	return nil
}

func (v Vect[D, S]) MarshalYAML() (interface{}, error) {
	return v.Components(), nil
}

func (v *Vect[D, S]) UnmarshalYAML(node *yaml.Node) error {
	var comps []S
	if err := node.Decode(&comps); err != nil {
		return errors.Wrap(err, "unmarshal vector")
	}
	res, err := vectFromSlice[D](comps)
	if err != nil {
		return errors.Wrap(err, "unmarshal vector")
	}
	*v = res
	return nil
}

func (n Nrml[D, S]) MarshalJSON() ([]byte, error) {
	return n.v.MarshalJSON()
}

// UnmarshalJSON decodes a vector and normalizes it.
func (n *Nrml[D, S]) UnmarshalJSON(data []byte) error {
	var v Vect[D, S]
	if err := v.UnmarshalJSON(data); err != nil {
		return err
	}
	return n.setNormal(v)
}

func (n Nrml[D, S]) MarshalYAML() (interface{}, error) {
	return n.v.MarshalYAML()
}

// UnmarshalYAML decodes a vector and normalizes it.
func (n *Nrml[D, S]) UnmarshalYAML(node *yaml.Node) error {
	var v Vect[D, S]
	if err := v.UnmarshalYAML(node); err != nil {
		return err
	}
	return n.setNormal(v)
}

func (n *Nrml[D, S]) setNormal(v Vect[D, S]) error {
	res, ok := Normal(v)
	if !ok {
		return errors.Wrap(ErrDegenerate, "unmarshal normal")
	}
	*n = res
	return nil
}

func (m Mat[N, M, S]) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.rowSlices())
}

func (m *Mat[N, M, S]) UnmarshalJSON(data []byte) error {
	var rows [][]S
	if err := json.Unmarshal(data, &rows); err != nil {
		return errors.Wrap(err, "unmarshal matrix")
	}
	return m.setRows(rows)
}

func (m Mat[N, M, S]) MarshalYAML() (interface{}, error) {
	return m.rowSlices(), nil
}

func (m *Mat[N, M, S]) UnmarshalYAML(node *yaml.Node) error {
	var rows [][]S
	if err := node.Decode(&rows); err != nil {
		return errors.Wrap(err, "unmarshal matrix")
	}
	return m.setRows(rows)
}

func (m Mat[N, M, S]) rowSlices() [][]S {
	rows := make([][]S, m.Rows())
	for i := range rows {
		rows[i] = m.Row(i).Components()
	}
	return rows
}

func (m *Mat[N, M, S]) setRows(rows [][]S) error {
	var res Mat[N, M, S]
	if len(rows) != res.Rows() {
		return errors.Wrap(ErrComponentCount, "unmarshal matrix")
	}
	for i, row := range rows {
		if len(row) != res.Cols() {
			return errors.Wrap(ErrComponentCount, "unmarshal matrix")
		}
		copy(res.c[i][:], row)
	}
	*m = res
	return nil
}

func (r Rot2[S]) MarshalJSON() ([]byte, error) {
	return r.ToTorq().MarshalJSON()
}

func (r *Rot2[S]) UnmarshalJSON(data []byte) error {
	var torq Vect1[S]
	if err := torq.UnmarshalJSON(data); err != nil {
		return errors.Wrap(err, "unmarshal rotor")
	}
	*r = Rot2FromTorq(torq)
	return nil
}

func (r Rot2[S]) MarshalYAML() (interface{}, error) {
	return r.ToTorq().MarshalYAML()
}

func (r *Rot2[S]) UnmarshalYAML(node *yaml.Node) error {
	var torq Vect1[S]
	if err := torq.UnmarshalYAML(node); err != nil {
		return errors.Wrap(err, "unmarshal rotor")
	}
	*r = Rot2FromTorq(torq)
	return nil
}

func (r Rot3[S]) MarshalJSON() ([]byte, error) {
	return r.ToTorq().MarshalJSON()
}

func (r *Rot3[S]) UnmarshalJSON(data []byte) error {
	var torq Vect3[S]
	if err := torq.UnmarshalJSON(data); err != nil {
		return errors.Wrap(err, "unmarshal rotor")
	}
	*r = Rot3FromTorq(torq)
	return nil
}

func (r Rot3[S]) MarshalYAML() (interface{}, error) {
	return r.ToTorq().MarshalYAML()
}

func (r *Rot3[S]) UnmarshalYAML(node *yaml.Node) error {
	var torq Vect3[S]
	if err := torq.UnmarshalYAML(node); err != nil {
		return errors.Wrap(err, "unmarshal rotor")
	}
	*r = Rot3FromTorq(torq)
	return nil
}

// UnmarshalJSON decodes a rig, using the identity rotation if "rot" is
// missing.
func (r *Rig[R, D, S]) UnmarshalJSON(data []byte) error {
	var fields struct {
		Rot   *R         `json:"rot"`
		Trans Vect[D, S] `json:"trans"`
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return errors.Wrap(err, "unmarshal rig")
	}
	r.setFields(fields.Rot, fields.Trans)
	return nil
}

// UnmarshalYAML decodes a rig, using the identity rotation if "rot" is
// missing.
func (r *Rig[R, D, S]) UnmarshalYAML(node *yaml.Node) error {
	var fields struct {
		Rot   *R         `yaml:"rot"`
		Trans Vect[D, S] `yaml:"trans"`
	}
	if err := node.Decode(&fields); err != nil {
		return errors.Wrap(err, "unmarshal rig")
	}
	r.setFields(fields.Rot, fields.Trans)
	return nil
}

func (r *Rig[R, D, S]) setFields(rot *R, trans Vect[D, S]) {
	if rot == nil {
		r.Rot = r.Rot.ident()
	} else {
		r.Rot = *rot
	}
	r.Trans = trans
}

// WriteVect writes the components of v in little-endian order.
func WriteVect[D Dim, S Field](w io.Writer, v Vect[D, S]) error {
	if err := binary.Write(w, binary.LittleEndian, v.Components()); err != nil {
		return errors.Wrap(err, "write vector")
	}
	return nil
}

// ReadVect reads the output written by WriteVect.
func ReadVect[D Dim, S Field](r io.Reader) (Vect[D, S], error) {
	var res Vect[D, S]
	if err := binary.Read(r, binary.LittleEndian, res.c[:res.Len()]); err != nil {
		return res, errors.Wrap(err, "read vector")
	}
	return res, nil
}

// WriteRig writes the torque vector of the rotation followed by the
// translation.
func WriteRig[R Rotor[R, D, S], D Dim, S Field](w io.Writer, rig Rig[R, D, S]) error {
	torq := rig.Rot.torqArray()
	if err := binary.Write(w, binary.LittleEndian, torq[:torqLen[D]()]); err != nil {
		return errors.Wrap(err, "write rig")
	}
	if err := binary.Write(w, binary.LittleEndian, rig.Trans.Components()); err != nil {
		return errors.Wrap(err, "write rig")
	}
	return nil
}

// ReadRig2 reads a 2D rig written by WriteRig.
func ReadRig2[S Field](r io.Reader) (Rig2[S], error) {
	return readRig[Rot2[S], D2, S](r)
}

// ReadRig3 reads a 3D rig written by WriteRig.
func ReadRig3[S Field](r io.Reader) (Rig3[S], error) {
	return readRig[Rot3[S], D3, S](r)
}

func readRig[R Rotor[R, D, S], D Dim, S Field](r io.Reader) (Rig[R, D, S], error) {
	var res Rig[R, D, S]
	var torq [MaxDim]S
	if err := binary.Read(r, binary.LittleEndian, torq[:torqLen[D]()]); err != nil {
		return res, errors.Wrap(err, "read rig")
	}
	if err := binary.Read(r, binary.LittleEndian, res.Trans.c[:res.Trans.Len()]); err != nil {
		return res, errors.Wrap(err, "read rig")
	}
	res.Rot = res.Rot.fromTorqArray(torq)
	return res, nil
}

// torqLen is the number of bivector components of a rotor in D dimensions.
func torqLen[D Dim]() int {
	n := dimOf[D]()
	return n * (n - 1) / 2
}

// Load opens a file and decodes it with read.
func Load[T any](path string, read func(r io.Reader) (T, error)) (T, error) {
	f, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, errors.Wrap(err, "load")
	}
	defer f.Close()
	return read(bufio.NewReader(f))
}

// Save creates a file and encodes value into it with write.
func Save[T any](path string, value T, write func(w io.Writer, value T) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "save")
	}
	return writeAndClose(f, value, write)
}

func writeAndClose[T any](f io.WriteCloser, value T, write func(w io.Writer, value T) error) error {
	bw := bufio.NewWriter(f)
	if err := write(bw, value); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return errors.Wrap(err, "save")
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "save")
	}
	return nil
}

// ReadStructured decodes JSON or YAML into obj, depending on the extension
// of path (".yaml" and ".yml" select YAML).
func ReadStructured(path string, obj any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read structured")
	}
	if isYAMLPath(path) {
		err = yaml.Unmarshal(data, obj)
	} else {
		err = json.Unmarshal(data, obj)
	}
	if err != nil {
		return errors.Wrapf(err, "read structured %s", path)
	}
	return nil
}

// WriteStructured encodes obj as JSON or YAML, depending on the extension of
// path.
func WriteStructured(path string, obj any) error {
	var data []byte
	var err error
	if isYAMLPath(path) {
		data, err = yaml.Marshal(obj)
	} else {
		data, err = json.MarshalIndent(obj, "", "  ")
	}
	if err != nil {
		return errors.Wrap(err, "write structured")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "write structured")
	}
	return nil
}

func isYAMLPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func vectFromSlice[D Dim, S Ring](comps []S) (Vect[D, S], error) {
	var res Vect[D, S]
	if len(comps) != res.Len() {
		return res, errors.WithStack(ErrComponentCount)
	}
	copy(res.c[:], comps)
	return res, nil
}
