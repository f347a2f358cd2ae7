package gamedata

import (
	"fmt"
	"log/slog"

	"github.com/hubastard/gamedata/engine/assets"
)

const sep = ','

// Index is a line of the root file: terrains,units,shaders[,fonts]
type Index struct {
	Terrains assets.Ref[Terrain, *Terrain]
	Units    assets.Ref[Unit, *Unit]
	Shaders  assets.Ref[ShaderProgram, *ShaderProgram]
	// Fonts is only read when the index names a fonts file.
	Fonts assets.Ref[Font, *Font]
}

func (x *Index) Fill(line string) (int, bool) {
	f := assets.SplitFields(line, sep, 4)
	f.Require(3)
	x.Terrains = assets.NewRef[Terrain](f.NonEmpty(0))
	x.Units = assets.NewRef[Unit](f.NonEmpty(1))
	x.Shaders = assets.NewRef[ShaderProgram](f.NonEmpty(2))
	if f.Len() == 4 {
		x.Fonts = assets.NewRef[Font](f.NonEmpty(3))
	}
	return f.Err()
}

func (x *Index) HasFonts() bool { return x.Fonts.Filename != "" }

func (x *Index) Recurse(dir assets.Dir) error {
	if err := x.Terrains.Read(dir); err != nil {
		return fmt.Errorf("terrains: %w", err)
	}
	if err := x.Units.Read(dir); err != nil {
		return fmt.Errorf("units: %w", err)
	}
	if err := x.Shaders.Read(dir); err != nil {
		return fmt.Errorf("shaders: %w", err)
	}
	if x.HasFonts() {
		if err := x.Fonts.Read(dir); err != nil {
			return fmt.Errorf("fonts: %w", err)
		}
	}
	return nil
}

// Texture is an image file referenced by a record, validated on load.
type Texture struct {
	Name   string
	Path   string
	Format string
	W, H   int
}

func (t *Texture) resolve(dir assets.Dir) error {
	t.Path = dir.Join(t.Name)
	cfg, format, err := assets.DecodeImageConfig(t.Path)
	if err != nil {
		return err
	}
	t.Format, t.W, t.H = format, cfg.Width, cfg.Height
	return nil
}

// Terrain: id,name,texture
type Terrain struct {
	ID      int
	Name    string
	Texture Texture
}

func (t *Terrain) Fill(line string) (int, bool) {
	f := assets.SplitFields(line, sep, 3)
	f.Require(3)
	t.ID = f.Int(0)
	t.Name = f.NonEmpty(1)
	t.Texture.Name = f.NonEmpty(2)
	return f.Err()
}

func (t *Terrain) Recurse(dir assets.Dir) error { return t.Texture.resolve(dir) }

// Unit: id,name,hp,graphics
type Unit struct {
	ID       int
	Name     string
	HP       int
	Graphics assets.Ref[Graphic, *Graphic]
}

func (u *Unit) Fill(line string) (int, bool) {
	f := assets.SplitFields(line, sep, 4)
	f.Require(4)
	u.ID = f.Int(0)
	u.Name = f.NonEmpty(1)
	u.HP = f.Int(2)
	f.Check(2, u.HP > 0)
	u.Graphics = assets.NewRef[Graphic](f.NonEmpty(3))
	return f.Err()
}

func (u *Unit) Recurse(dir assets.Dir) error { return u.Graphics.Read(dir) }

// Graphic: id,name,texture,frames
type Graphic struct {
	ID      int
	Name    string
	Texture Texture
	Frames  int
}

func (g *Graphic) Fill(line string) (int, bool) {
	f := assets.SplitFields(line, sep, 4)
	f.Require(4)
	g.ID = f.Int(0)
	g.Name = f.NonEmpty(1)
	g.Texture.Name = f.NonEmpty(2)
	g.Frames = f.Int(3)
	f.Check(3, g.Frames > 0)
	return f.Err()
}

func (g *Graphic) Recurse(dir assets.Dir) error { return g.Texture.resolve(dir) }

// ShaderProgram: name,vertex,fragment[,geometry]
type ShaderProgram struct {
	Name    string
	Files   map[ShaderStage]string
	Sources map[ShaderStage]string
}

func (p *ShaderProgram) Fill(line string) (int, bool) {
	f := assets.SplitFields(line, sep, 4)
	f.Require(3)
	p.Name = f.NonEmpty(0)
	p.Files = map[ShaderStage]string{
		StageVertex:   f.NonEmpty(1),
		StageFragment: f.NonEmpty(2),
	}
	if f.Len() == 4 {
		p.Files[StageGeometry] = f.NonEmpty(3)
	}
	return f.Err()
}

func (p *ShaderProgram) Recurse(dir assets.Dir) error {
	p.Sources = make(map[ShaderStage]string, len(p.Files))
	for _, stage := range p.Stages() {
		src, err := assets.LoadShaderSource(dir.Join(p.Files[stage]))
		if err != nil {
			return fmt.Errorf("%s shader of %q: %w", stage, p.Name, err)
		}
		p.Sources[stage] = src
	}
	return nil
}

// Stages returns the stages present in the program in pipeline order.
func (p *ShaderProgram) Stages() []ShaderStage {
	var out []ShaderStage
	for _, s := range []ShaderStage{StageVertex, StageGeometry, StageFragment} {
		if _, ok := p.Files[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Font: name,file,size
type Font struct {
	Name    string
	File    string
	SizePx  float32
	Path    string
	Metrics assets.FontMetrics
}

func (ft *Font) Fill(line string) (int, bool) {
	f := assets.SplitFields(line, sep, 3)
	f.Require(3)
	ft.Name = f.NonEmpty(0)
	ft.File = f.NonEmpty(1)
	ft.SizePx = float32(f.Float(2))
	f.Check(2, ft.SizePx > 0)
	return f.Err()
}

func (ft *Font) Recurse(dir assets.Dir) error {
	ft.Path = dir.Join(ft.File)
	m, err := assets.LoadFontMetrics(ft.Path, ft.SizePx)
	if err != nil {
		return err
	}
	if len(m.MissingASCII) > 0 {
		slog.Warn("Font lacks printable ASCII glyphs.", "font", ft.Name, "path", ft.Path, "missing", string(m.MissingASCII))
	}
	ft.Metrics = m
	return nil
}
