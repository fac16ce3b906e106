package viz

import (
	"image"
	"image/color"
	"image/gif"
	"os"
)

func (m *Model) captureFrame() {
	charW, charH := 8, 16
	imgW, imgH := m.canvas.Width*charW, m.canvas.Height*charH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), color.Palette{color.Black, color.White})
	dotW, dotH := charW/2, charH/4
	for row := 0; row < m.canvas.Height; row++ {
		for col := 0; col < m.canvas.Width; col++ {
			pattern := int(m.canvas.Grid[row][col] - blank)
			if pattern <= 0 {
				continue
			}
			baseX, baseY := col*charW, row*charH
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, 1)
						}
					}
				}
			}
		}
	}
	m.frames = append(m.frames, img)
}

func (m *Model) saveGIF() {
	if len(m.frames) == 0 {
		return
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range m.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 2)
	}
	f, err := os.Create(m.opts.RecordPath)
	if err != nil {
		m.logger.Error("recording failed", "path", m.opts.RecordPath, "error", err)
		return
	}
	defer f.Close()
	if err := gif.EncodeAll(f, &anim); err != nil {
		m.logger.Error("recording failed", "path", m.opts.RecordPath, "error", err)
		return
	}
	m.logger.Info("recording saved", "path", m.opts.RecordPath, "frames", len(m.frames))
	m.message = "saved " + m.opts.RecordPath
}
