package rotd

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestVectJSON(t *testing.T) {
	data, err := json.Marshal(XYZ(1.0, -2.5, 3.0))
	require.NoError(t, err)
	require.Equal(t, "[1,-2.5,3]", string(data))

	var v Vect3[float64]
	require.NoError(t, json.Unmarshal(data, &v))
	require.Equal(t, XYZ(1.0, -2.5, 3.0), v)

	var v2 Vect2[float64]
	require.ErrorIs(t, json.Unmarshal(data, &v2), ErrComponentCount)

	var vi Vect2[int64]
	require.NoError(t, json.Unmarshal([]byte("[3, -7]"), &vi))
	require.Equal(t, XY[int64](3, -7), vi)
}

func TestNrmlJSON(t *testing.T) {
	var n Nrml2[float64]
	require.NoError(t, json.Unmarshal([]byte("[3, 4]"), &n))
	requireVectClose(t, XY(0.6, 0.8), n.Vect(), 1e-12)
	require.ErrorIs(t, json.Unmarshal([]byte("[0, 0]"), &n), ErrDegenerate)

	data, err := json.Marshal(NrmlAxis[D3, float64](1))
	require.NoError(t, err)
	require.Equal(t, "[0,1,0]", string(data))
}

func TestMatJSONYAML(t *testing.T) {
	m := NewMat[D2, D3]([]float64{1, 2, 3}, []float64{4, 5, 6})
	data, err := json.Marshal(m)
	require.NoError(t, err)
	require.Equal(t, "[[1,2,3],[4,5,6]]", string(data))

	var decoded Mat[D2, D3, float64]
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, m, decoded)

	var wrongShape Mat3[float64]
	require.ErrorIs(t, json.Unmarshal(data, &wrongShape), ErrComponentCount)

	yamlData, err := yaml.Marshal(m)
	require.NoError(t, err)
	var yamlDecoded Mat[D2, D3, float64]
	require.NoError(t, yaml.Unmarshal(yamlData, &yamlDecoded))
	require.Equal(t, m, yamlDecoded)
}

func TestRotJSON(t *testing.T) {
	r := rand.New(rand.NewSource(0))
	for i := 0; i < 10; i++ {
		rot := randRot3(r)
		data, err := json.Marshal(rot)
		require.NoError(t, err)
		var decoded Rot3[float64]
		require.NoError(t, json.Unmarshal(data, &decoded))
		requireRot3Close(t, rot, decoded, 1e-8)

		rot2 := randRot2(r)
		data, err = json.Marshal(rot2)
		require.NoError(t, err)
		var decoded2 Rot2[float64]
		require.NoError(t, json.Unmarshal(data, &decoded2))
		requireMatClose(t, rot2.Mat(), decoded2.Mat(), 1e-8)
	}

	var rot Rot3[float64]
	require.NoError(t, json.Unmarshal([]byte("[0, 0, 0]"), &rot))
	require.Equal(t, Rot3Ident[float64](), rot)
}

func TestRigJSON(t *testing.T) {
	rig := NewRig(XYZ(1.0, 2.0, 3.0), Rot3AngleAxis(math.Pi/2, NrmlAxis[D3, float64](2)))
	data, err := json.Marshal(rig)
	require.NoError(t, err)

	var decoded Rig3[float64]
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, rig.Trans, decoded.Trans)
	requireRot3Close(t, rig.Rot, decoded.Rot, 1e-8)

	var noRot Rig3[float64]
	require.NoError(t, json.Unmarshal([]byte(`{"trans": [1, 2, 3]}`), &noRot))
	require.Equal(t, Rig3Ident[float64]().Rot, noRot.Rot)
	require.Equal(t, XYZ(1.0, 2.0, 3.0), noRot.Trans)

	var list []Rig2[float64]
	require.NoError(t, json.Unmarshal([]byte(`[{"rot": [1.5], "trans": [0, 1]}, {}]`), &list))
	require.Len(t, list, 2)
	require.InDelta(t, 1.5, list[0].Rot.SignedAngle(), 1e-8)
	require.Equal(t, Rig2Ident[float64](), list[1])
}

func TestRigYAML(t *testing.T) {
	rig := NewRig(XY(-1.0, 0.5), Rot2Angle(-0.25))
	data, err := yaml.Marshal(rig)
	require.NoError(t, err)

	var decoded Rig2[float64]
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Equal(t, rig.Trans, decoded.Trans)
	require.InDelta(t, -0.25, decoded.Rot.SignedAngle(), 1e-8)

	var fromText Rig3[float64]
	require.NoError(t, yaml.Unmarshal([]byte("trans: [4, 5, 6]\n"), &fromText))
	require.Equal(t, Rig3Ident[float64]().Rot, fromText.Rot)
	require.Equal(t, XYZ(4.0, 5.0, 6.0), fromText.Trans)

	var bad Rig3[float64]
	require.ErrorIs(t, yaml.Unmarshal([]byte("trans: [4, 5]\n"), &bad), ErrComponentCount)
}

func TestReadWriteRig(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	rig := randRig3(r)

	var b bytes.Buffer
	if err := WriteRig(&b, rig); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 6*8 {
		t.Fatalf("unexpected encoded size: %d", b.Len())
	}
	decoded, err := ReadRig3[float64](&b)
	if err != nil {
		t.Fatal(err)
	}
	requireRot3Close(t, rig.Rot, decoded.Rot, 1e-8)
	if decoded.Trans != rig.Trans {
		t.Fatalf("expected %v but got %v", rig.Trans, decoded.Trans)
	}

	rig2 := NewRig(XY[float32](1, 2), Rot2Angle[float32](0.5))
	b.Reset()
	if err := WriteRig(&b, rig2); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 3*4 {
		t.Fatalf("unexpected encoded size: %d", b.Len())
	}
	decoded2, err := ReadRig2[float32](&b)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(float64(decoded2.Rot.SignedAngle()-0.5)) > 1e-5 || decoded2.Trans != rig2.Trans {
		t.Fatalf("expected %v but got %v", rig2, decoded2)
	}

	if _, err := ReadRig3[float64](bytes.NewReader(make([]byte, 10))); err == nil {
		t.Fatal("expected error for truncated input")
	}
}

func TestReadWriteVect(t *testing.T) {
	var b bytes.Buffer
	v := XYZW(1.0, 2.0, -3.0, 0.25)
	if err := WriteVect(&b, v); err != nil {
		t.Fatal(err)
	}
	decoded, err := ReadVect[D4, float64](&b)
	if err != nil {
		t.Fatal(err)
	}
	if decoded != v {
		t.Fatalf("expected %v but got %v", v, decoded)
	}
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	rig := NewRig(XYZ(1.0, 2.0, 3.0), Rot3AngleAxis(0.5, NrmlAxis[D3, float64](0)))

	path := filepath.Join(dir, "rig.bin")
	require.NoError(t, Save(path, rig, WriteRig[Rot3[float64], D3, float64]))
	loaded, err := Load(path, ReadRig3[float64])
	require.NoError(t, err)
	requireRot3Close(t, rig.Rot, loaded.Rot, 1e-8)
	require.Equal(t, rig.Trans, loaded.Trans)

	_, err = Load(filepath.Join(dir, "missing.bin"), ReadRig3[float64])
	require.Error(t, err)

	for _, name := range []string{"rigs.json", "rigs.yaml"} {
		path := filepath.Join(dir, name)
		rigs := []Rig3[float64]{rig, Rig3Ident[float64]()}
		require.NoError(t, WriteStructured(path, rigs))
		var decoded []Rig3[float64]
		require.NoError(t, ReadStructured(path, &decoded))
		require.Len(t, decoded, 2)
		require.Equal(t, rig.Trans, decoded[0].Trans)
		requireRot3Close(t, rig.Rot, decoded[0].Rot, 1e-8)
		require.Equal(t, Rig3Ident[float64](), decoded[1])
	}
}

type closeFailWriter struct {
	bytes.Buffer
	closed bool
}

func (c *closeFailWriter) Close() error {
	c.closed = true
	return errors.New("disk full")
}

func TestSaveCloseError(t *testing.T) {
	w := &closeFailWriter{}
	err := writeAndClose(w, XY(1.0, 2.0), WriteVect[D2, float64])
	require.ErrorContains(t, err, "disk full")
	require.True(t, w.closed)
	require.Equal(t, 16, w.Len())

	w = &closeFailWriter{}
	writeErr := errors.New("bad value")
	err = writeAndClose(w, 3, func(w io.Writer, x int) error {
		return writeErr
	})
	require.ErrorIs(t, err, writeErr)
	require.True(t, w.closed)

	err = Save(filepath.Join(t.TempDir(), "missing", "v.bin"), XY(1.0, 2.0), WriteVect[D2, float64])
	require.Error(t, err)
}

func TestString(t *testing.T) {
	require.Equal(t, "{1, 2.5}", XY(1.0, 2.5).String())
	require.Equal(t, "N{0, 1}", NrmlAxis[D2, float64](1).String())
	require.Equal(t, "[1, 0|0, 1]", MatIdent[D2, float64]().String())
	require.Equal(t, "0rad", Rot3Ident[float64]().String())
	require.Equal(t, "[{0, 0, 0} & 0rad]", Rig3Ident[float64]().String())
	require.Contains(t, Rot3AngleAxis(1, NrmlAxis[D3, float64](2)).String(), "π rad about N{0, 0, 1}")
	require.Contains(t, Rot2Angle(-1.0).String(), "π rad")
}
