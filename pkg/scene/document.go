package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// ErrNoPath is returned when a document is saved before it has a file path.
var ErrNoPath = errors.New("scene: document has no path")

// Document is a scene file: the models and cameras the viewer shows.
type Document struct {
	Path    string
	Models  []Model
	Cameras []Camera
}

// On-disk layout. Matrices are written row-major, 16 values; an empty
// matrix means identity.
type documentFile struct {
	Models  []modelFile  `yaml:"models"`
	Cameras []cameraFile `yaml:"cameras,omitempty"`
}

type modelFile struct {
	Name      string         `yaml:"name"`
	Path      string         `yaml:"path,omitempty"`
	Materials []materialFile `yaml:"materials,omitempty"`
	Meshes    []meshFile     `yaml:"meshes,omitempty"`
	Root      nodeFile       `yaml:"root"`
}

type materialFile struct {
	Name     string                   `yaml:"name"`
	Textures map[string][]textureFile `yaml:"textures,omitempty"`
	Meshes   []int                    `yaml:"meshes,omitempty"`
}

type textureFile struct {
	Path string `yaml:"path"`
}

type meshFile struct {
	ID        string      `yaml:"id"`
	Name      string      `yaml:"name,omitempty"`
	Vertices  int         `yaml:"vertices,omitempty"`
	Faces     int         `yaml:"faces,omitempty"`
	Material  int         `yaml:"material"`
	Instances [][]float32 `yaml:"instances,omitempty"`
	Bones     []boneFile  `yaml:"bones,omitempty"`
}

type boneFile struct {
	Name    string    `yaml:"name"`
	Offset  []float32 `yaml:"offset,omitempty"`
	Weights int       `yaml:"weights,omitempty"`
}

type nodeFile struct {
	Name      string         `yaml:"name"`
	Transform []float32      `yaml:"transform,omitempty"`
	Meshes    []meshRefFile  `yaml:"meshes,omitempty"`
	Metadata  []metadataFile `yaml:"metadata,omitempty"`
	Children  []nodeFile     `yaml:"children,omitempty"`
}

type meshRefFile struct {
	Mesh     int `yaml:"mesh"`
	Instance int `yaml:"instance"`
}

type metadataFile struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

type cameraFile struct {
	Name        string     `yaml:"name"`
	Position    [3]float32 `yaml:"position"`
	Pitch       float32    `yaml:"pitch"`
	Yaw         float32    `yaml:"yaw"`
	Roll        float32    `yaml:"roll"`
	FOV         float32    `yaml:"fov"`
	Sensitivity float32    `yaml:"sensitivity"`
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
}

// Load reads a scene document from a YAML file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}

// Parse decodes a scene document from YAML bytes.
func Parse(data []byte) (*Document, error) {
	var f documentFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	doc := &Document{}
	for i, mf := range f.Models {
		m, err := mf.model()
		if err != nil {
			return nil, fmt.Errorf("model %d (%s): %w", i, mf.Name, err)
		}
		doc.Models = append(doc.Models, *m)
	}
	for _, cf := range f.Cameras {
		doc.Cameras = append(doc.Cameras, *cf.camera())
	}
	return doc, nil
}

// Save writes the document back to its Path.
func (d *Document) Save() error {
	if d.Path == "" {
		return ErrNoPath
	}
	return d.SaveTo(d.Path)
}

// SaveTo writes the document to path and makes it the document's Path.
func (d *Document) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := d.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	d.Path = path
	return nil
}

// Marshal encodes the document as YAML.
func (d *Document) Marshal() ([]byte, error) {
	var f documentFile
	for i := range d.Models {
		f.Models = append(f.Models, modelToFile(&d.Models[i]))
	}
	for i := range d.Cameras {
		f.Cameras = append(f.Cameras, cameraToFile(&d.Cameras[i]))
	}
	return yaml.Marshal(&f)
}

func (mf *modelFile) model() (*Model, error) {
	m := NewModel(mf.Name)
	m.Path = mf.Path

	for _, matf := range mf.Materials {
		mat := Material{Name: matf.Name, MeshIndices: matf.Meshes}
		for slot, texs := range matf.Textures {
			kind, ok := ParseTextureKind(slot)
			if !ok {
				return nil, fmt.Errorf("material %s: unknown texture slot %q", matf.Name, slot)
			}
			for _, t := range texs {
				mat.Textures[kind] = append(mat.Textures[kind], Texture{Path: t.Path})
			}
		}
		m.Materials = append(m.Materials, mat)
	}

	for _, mshf := range mf.Meshes {
		mesh := Mesh{
			ID:            mshf.ID,
			Name:          mshf.Name,
			VertexCount:   mshf.Vertices,
			FaceCount:     mshf.Faces,
			MaterialIndex: mshf.Material,
		}
		for _, inst := range mshf.Instances {
			mat, err := matrixFromRows(inst)
			if err != nil {
				return nil, fmt.Errorf("mesh %s instance: %w", mshf.ID, err)
			}
			mesh.Instances = append(mesh.Instances, mat)
		}
		for _, bf := range mshf.Bones {
			off, err := matrixFromRows(bf.Offset)
			if err != nil {
				return nil, fmt.Errorf("mesh %s bone %s: %w", mshf.ID, bf.Name, err)
			}
			mesh.Bones = append(mesh.Bones, Bone{Name: bf.Name, Offset: off, Weights: bf.Weights})
		}
		m.Meshes = append(m.Meshes, mesh)
	}

	root, err := mf.Root.node()
	if err != nil {
		return nil, err
	}
	m.Root = root
	return m, nil
}

func (nf *nodeFile) node() (Node, error) {
	t, err := matrixFromRows(nf.Transform)
	if err != nil {
		return Node{}, fmt.Errorf("node %s: %w", nf.Name, err)
	}
	n := Node{Name: nf.Name, Transform: t}
	for _, r := range nf.Meshes {
		n.Meshes = append(n.Meshes, MeshRef{Mesh: r.Mesh, Instance: r.Instance})
	}
	for _, md := range nf.Metadata {
		n.Metadata = append(n.Metadata, Metadata{Key: md.Key, Value: md.Value})
	}
	for i := range nf.Children {
		child, err := nf.Children[i].node()
		if err != nil {
			return Node{}, err
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}

// camera builds a camera with a square aspect. Aspect is not stored in scene
// files; the host sets it from the window.
func (cf *cameraFile) camera() *Camera {
	c := NewCamera(cf.Name, mgl32.Vec3(cf.Position), 1)
	c.Pitch = cf.Pitch
	c.Yaw = cf.Yaw
	c.Roll = cf.Roll
	if cf.FOV != 0 {
		c.FOV = cf.FOV
	}
	if cf.Sensitivity != 0 {
		c.Sensitivity = cf.Sensitivity
	}
	if cf.Near != 0 {
		c.Near = cf.Near
	}
	if cf.Far != 0 {
		c.Far = cf.Far
	}
	c.Update()
	return c
}

func modelToFile(m *Model) modelFile {
	mf := modelFile{Name: m.Name, Path: m.Path, Root: nodeToFile(&m.Root)}
	for i := range m.Materials {
		mat := &m.Materials[i]
		matf := materialFile{Name: mat.Name, Meshes: mat.MeshIndices}
		for kind, texs := range mat.Textures {
			if len(texs) == 0 {
				continue
			}
			if matf.Textures == nil {
				matf.Textures = make(map[string][]textureFile)
			}
			name := TextureKind(kind).String()
			for _, t := range texs {
				matf.Textures[name] = append(matf.Textures[name], textureFile{Path: t.Path})
			}
		}
		mf.Materials = append(mf.Materials, matf)
	}
	for i := range m.Meshes {
		mesh := &m.Meshes[i]
		mshf := meshFile{
			ID:       mesh.ID,
			Name:     mesh.Name,
			Vertices: mesh.VertexCount,
			Faces:    mesh.FaceCount,
			Material: mesh.MaterialIndex,
		}
		for _, inst := range mesh.Instances {
			mshf.Instances = append(mshf.Instances, matrixToRows(inst))
		}
		for _, b := range mesh.Bones {
			mshf.Bones = append(mshf.Bones, boneFile{Name: b.Name, Offset: matrixToRows(b.Offset), Weights: b.Weights})
		}
		mf.Meshes = append(mf.Meshes, mshf)
	}
	return mf
}

func nodeToFile(n *Node) nodeFile {
	nf := nodeFile{Name: n.Name}
	if n.Transform != mgl32.Ident4() {
		nf.Transform = matrixToRows(n.Transform)
	}
	for _, r := range n.Meshes {
		nf.Meshes = append(nf.Meshes, meshRefFile{Mesh: r.Mesh, Instance: r.Instance})
	}
	for _, md := range n.Metadata {
		nf.Metadata = append(nf.Metadata, metadataFile{Key: md.Key, Value: md.Value})
	}
	for i := range n.Children {
		nf.Children = append(nf.Children, nodeToFile(&n.Children[i]))
	}
	return nf
}

func cameraToFile(c *Camera) cameraFile {
	return cameraFile{
		Name:        c.Name,
		Position:    [3]float32(c.Position),
		Pitch:       c.Pitch,
		Yaw:         c.Yaw,
		Roll:        c.Roll,
		FOV:         c.FOV,
		Sensitivity: c.Sensitivity,
		Near:        c.Near,
		Far:         c.Far,
	}
}

func matrixFromRows(rows []float32) (mgl32.Mat4, error) {
	if len(rows) == 0 {
		return mgl32.Ident4(), nil
	}
	if len(rows) != 16 {
		return mgl32.Mat4{}, fmt.Errorf("matrix needs 16 values, got %d", len(rows))
	}
	var m mgl32.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m.Set(r, c, rows[r*4+c])
		}
	}
	return m, nil
}

func matrixToRows(m mgl32.Mat4) []float32 {
	rows := make([]float32, 0, 16)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			rows = append(rows, m.At(r, c))
		}
	}
	return rows
}
