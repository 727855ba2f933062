package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"

	"github.com/icza/mjpeg"

	"lifetrace/src/life"
)

var (
	deadColor = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	liveColor = color.RGBA{A: 255}
)

//Video streams grid frames into an MJPEG AVI file
//frame dimensions are fixed at construction, one frame per simulation step
type Video struct {
	aw       mjpeg.AviWriter
	rows     int
	cols     int
	cellSize int
	buf      bytes.Buffer
}

//NewVideo creates the writer, scaling every cell to cellSize x cellSize pixels
func NewVideo(path string, rows int, cols int, cellSize int, fps int32) (*Video, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %v x %v", life.ErrInvalidDimensions, rows, cols)
	}
	if cellSize < 1 {
		cellSize = 1
	}
	aw, err := mjpeg.New(path, int32(cols*cellSize), int32(rows*cellSize), fps)
	if err != nil {
		return nil, fmt.Errorf("create video writer: %w", err)
	}
	return &Video{aw: aw, rows: rows, cols: cols, cellSize: cellSize}, nil
}

//AddFrame rasterizes the grid and appends it to the video
func (v *Video) AddFrame(g life.Grid) error {
	if g.Rows != v.rows || g.Cols != v.cols {
		return fmt.Errorf("frame is %vx%v, video is %vx%v", g.Rows, g.Cols, v.rows, v.cols)
	}

	img := image.NewRGBA(image.Rect(0, 0, v.cols*v.cellSize, v.rows*v.cellSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: deadColor}, image.Point{}, draw.Src)
	for y := range g.Cells {
		for x := range g.Cells[y] {
			if !g.Cells[y][x] {
				continue
			}
			cell := image.Rect(x*v.cellSize, y*v.cellSize, (x+1)*v.cellSize, (y+1)*v.cellSize)
			draw.Draw(img, cell, &image.Uniform{C: liveColor}, image.Point{}, draw.Src)
		}
	}

	v.buf.Reset()
	if err := jpeg.Encode(&v.buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	if err := v.aw.AddFrame(v.buf.Bytes()); err != nil {
		return fmt.Errorf("append frame: %w", err)
	}
	return nil
}

//Close finalizes the AVI index, must be called once after the last frame
func (v *Video) Close() error {
	return v.aw.Close()
}
