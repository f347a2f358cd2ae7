package gamedata

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/hubastard/gamedata/engine/assets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/font/gofont/goregular"
)

func writeFile(t *testing.T, root, rel string, content []byte) string {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func encodeImage(t *testing.T, w, h int, enc func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, enc(&buf, img))
	return buf.Bytes()
}

func pngBytes(t *testing.T, w, h int) []byte {
	return encodeImage(t, w, h, func(b *bytes.Buffer, m image.Image) error { return png.Encode(b, m) })
}

func bmpBytes(t *testing.T, w, h int) []byte {
	return encodeImage(t, w, h, func(b *bytes.Buffer, m image.Image) error { return bmp.Encode(b, m) })
}

// writeTree lays out a small but complete data tree below root.
func writeTree(t *testing.T, root string) {
	t.Helper()
	writeFile(t, root, "gamedata.txt", []byte("# terrains,units,shaders,fonts\nterrain/terrains.txt,units/units.txt,shaders/programs.txt,ui/fonts.txt\n"))

	writeFile(t, root, "ui/fonts.txt", []byte("body,ttf/goregular.ttf,16\ntitle,ttf/goregular.ttf,32.5\n"))
	writeFile(t, root, "ui/ttf/goregular.ttf", goregular.TTF)

	writeFile(t, root, "terrain/terrains.txt", []byte("0,grass,tex/grass.png\n1,water,tex/water.bmp\n"))
	writeFile(t, root, "terrain/tex/grass.png", pngBytes(t, 4, 2))
	writeFile(t, root, "terrain/tex/water.bmp", bmpBytes(t, 8, 8))

	writeFile(t, root, "units/units.txt", []byte("# id,name,hp,graphics\n4,archer,30,archer/graphics.txt\n\n5,knight,100,knight/graphics.txt\n"))
	writeFile(t, root, "units/archer/graphics.txt", []byte("0,idle,idle.png,10\n1,walk,walk.png,8\n"))
	writeFile(t, root, "units/archer/idle.png", pngBytes(t, 16, 16))
	writeFile(t, root, "units/archer/walk.png", pngBytes(t, 32, 16))
	writeFile(t, root, "units/knight/graphics.txt", []byte("0,idle,sprites/idle.png,12\n"))
	writeFile(t, root, "units/knight/sprites/idle.png", pngBytes(t, 24, 24))

	writeFile(t, root, "shaders/programs.txt", []byte("sprite,glsl/sprite.vert,glsl/sprite.frag\noutline,glsl/sprite.vert,glsl/outline.frag,glsl/outline.geom\n"))
	writeFile(t, root, "shaders/glsl/sprite.vert", []byte("#version 330 core\nvoid main() {}\n"))
	writeFile(t, root, "shaders/glsl/sprite.frag", []byte("#version 330 core\nvoid main() {}\n"))
	writeFile(t, root, "shaders/glsl/outline.frag", []byte("#version 330 core\nvoid main() {}\n"))
	writeFile(t, root, "shaders/glsl/outline.geom", []byte("#version 330 core\nvoid main() {}\n"))
}

func TestLoad(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root)

	tree, err := Load(root, "")
	require.NoError(t, err)

	assert.Equal(t, Summary{Indexes: 1, Terrains: 2, Units: 2, Graphics: 3, Programs: 2, Fonts: 2}, tree.Summary())

	idx := tree.Index.At(0)
	water := idx.Terrains.At(1)
	assert.Equal(t, "water", water.Name)
	assert.Equal(t, filepath.Join(root, "terrain", "tex", "water.bmp"), water.Texture.Path)
	assert.Equal(t, "bmp", water.Texture.Format)
	assert.Equal(t, 8, water.Texture.W)

	knight := idx.Units.At(1)
	assert.Equal(t, 5, knight.ID)
	assert.Equal(t, 100, knight.HP)
	idle := knight.Graphics.At(0)
	assert.Equal(t, filepath.Join(root, "units", "knight", "sprites", "idle.png"), idle.Texture.Path)
	assert.Equal(t, "png", idle.Texture.Format)
	assert.Equal(t, 24, idle.Texture.H)
	assert.Equal(t, 12, idle.Frames)

	title := idx.Fonts.At(1)
	assert.Equal(t, filepath.Join(root, "ui", "ttf", "goregular.ttf"), title.Path)
	assert.InDelta(t, 32.5, title.SizePx, 1e-6)
	assert.Greater(t, title.Metrics.Ascent, float32(0))
	assert.Greater(t, title.Metrics.NumGlyphs, 95)
	assert.Empty(t, title.Metrics.MissingASCII)

	programs := tree.Programs()
	require.Len(t, programs, 2)
	assert.Equal(t, []ShaderStage{StageVertex, StageFragment}, programs[0].Stages())
	assert.Equal(t, []ShaderStage{StageVertex, StageGeometry, StageFragment}, programs[1].Stages())
	assert.Contains(t, programs[1].Sources[StageGeometry], "#version 330 core")
	assert.Equal(t, byte(0), programs[0].Sources[StageVertex][len(programs[0].Sources[StageVertex])-1])
}

func TestLoad_Failures(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(t *testing.T, root string)
		check  func(t *testing.T, root string, err error)
	}{
		{
			name:   "missing index",
			mutate: func(t *testing.T, root string) { require.NoError(t, os.Remove(filepath.Join(root, "gamedata.txt"))) },
			check: func(t *testing.T, root string, err error) {
				var nf *assets.FileNotFoundError
				require.ErrorAs(t, err, &nf)
				assert.Equal(t, filepath.Join(root, "gamedata.txt"), nf.Path)
			},
		},
		{
			name: "missing nested graphics file",
			mutate: func(t *testing.T, root string) {
				require.NoError(t, os.Remove(filepath.Join(root, "units", "knight", "graphics.txt")))
			},
			check: func(t *testing.T, root string, err error) {
				var nf *assets.FileNotFoundError
				require.ErrorAs(t, err, &nf)
				assert.Equal(t, filepath.Join(root, "units", "knight", "graphics.txt"), nf.Path)

				var re *assets.RecursionError
				require.ErrorAs(t, err, &re)
				assert.Equal(t, filepath.Join(root, "gamedata.txt"), re.Path)
				assert.Equal(t, 2, re.Line)
				assert.Contains(t, err.Error(), "units:")
			},
		},
		{
			name: "non positive hp",
			mutate: func(t *testing.T, root string) {
				writeFile(t, root, "units/units.txt", []byte("4,archer,0,archer/graphics.txt\n"))
			},
			check: func(t *testing.T, root string, err error) {
				var pe *assets.ParseError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, 1, pe.Line)
				assert.Equal(t, 9, pe.Column)
			},
		},
		{
			name: "missing texture",
			mutate: func(t *testing.T, root string) {
				require.NoError(t, os.Remove(filepath.Join(root, "units", "archer", "walk.png")))
			},
			check: func(t *testing.T, root string, err error) {
				assert.True(t, errors.Is(err, assets.ErrFileNotFound))
			},
		},
		{
			name: "texture is not an image",
			mutate: func(t *testing.T, root string) {
				writeFile(t, root, "terrain/tex/grass.png", []byte("not a png"))
			},
			check: func(t *testing.T, root string, err error) {
				assert.ErrorIs(t, err, assets.ErrRecursion)
				assert.NotErrorIs(t, err, assets.ErrFileNotFound)
				assert.Contains(t, err.Error(), "decode image header")
			},
		},
		{
			name: "missing shader source",
			mutate: func(t *testing.T, root string) {
				require.NoError(t, os.Remove(filepath.Join(root, "shaders", "glsl", "outline.geom")))
			},
			check: func(t *testing.T, root string, err error) {
				assert.ErrorIs(t, err, assets.ErrFileNotFound)
				assert.Contains(t, err.Error(), `geometry shader of "outline"`)
			},
		},
		{
			name: "font file is not a font",
			mutate: func(t *testing.T, root string) {
				writeFile(t, root, "ui/ttf/goregular.ttf", []byte("garbage"))
			},
			check: func(t *testing.T, root string, err error) {
				assert.ErrorIs(t, err, assets.ErrRecursion)
				assert.Contains(t, err.Error(), "parse font")
				assert.Contains(t, err.Error(), "fonts:")
			},
		},
		{
			name: "index cycles back to itself",
			mutate: func(t *testing.T, root string) {
				writeFile(t, root, "units/units.txt", []byte("4,archer,30,../gamedata.txt\n"))
			},
			check: func(t *testing.T, root string, err error) {
				var ce *assets.CycleError
				require.ErrorAs(t, err, &ce)
				assert.Equal(t, filepath.Join(root, "gamedata.txt"), ce.Path)
				assert.NotErrorIs(t, err, assets.ErrParse)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := t.TempDir()
			writeTree(t, root)
			tc.mutate(t, root)

			tree, err := Load(root, DefaultIndex)
			require.Error(t, err)
			assert.Nil(t, tree)
			tc.check(t, root, err)
		})
	}
}

func TestShaderStage(t *testing.T) {
	assert.Equal(t, "vertex", StageVertex.String())
	assert.Equal(t, "fragment", StageFragment.String())
	assert.Equal(t, "geometry", StageGeometry.String())
	assert.Equal(t, "unknown", StageUnknown.String())
	assert.Equal(t, "unknown", ShaderStage(99).String())

	assert.Equal(t, StageVertex, StageFromExt("a/b/sprite.vert"))
	assert.Equal(t, StageFragment, StageFromExt("x.FRAG"))
	assert.Equal(t, StageGeometry, StageFromExt("x.geom"))
	assert.Equal(t, StageUnknown, StageFromExt("x.glsl"))
}

func TestLoad_WithoutFonts(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root)
	writeFile(t, root, "gamedata.txt", []byte("terrain/terrains.txt,units/units.txt,shaders/programs.txt\n"))

	tree, err := Load(root, "")
	require.NoError(t, err)
	idx := tree.Index.At(0)
	assert.False(t, idx.HasFonts())
	assert.Equal(t, assets.RefUnloaded, idx.Fonts.State())
	assert.Equal(t, 0, tree.Summary().Fonts)
}
