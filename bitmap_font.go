package fontengine

import (
	"strconv"
	"strings"

	"github.com/gogpu/fontengine/config"
)

// maxFontSizeOffset bounds the distance, in pixels, between a requested
// size and the bitmap size the search will accept.
const maxFontSizeOffset = 10

// bitmapExtensions lists bitmap font asset formats in preference order.
var bitmapExtensions = [...]string{".png", ".xml"}

// SizeOffsets returns the pixel offsets probed around the requested size,
// in order: 0, 0, +1, -1, +2, -2, ..., +9, -9. The low bit of the step
// counter gives the sign and the remaining bits the magnitude, so zero is
// probed twice.
func SizeOffsets() []int {
	offsets := make([]int, 0, 2*maxFontSizeOffset)
	for z := 0; z < 2*maxFontSizeOffset; z++ {
		sign := 1
		if z&1 == 1 {
			sign = -1
		}
		offsets = append(offsets, sign*(z>>1))
	}
	return offsets
}

// BitmapCandidates returns the asset names probed for stem at pixelSize,
// in probe order. Extensions vary fastest: both formats at one offset are
// tried before the next offset. Negative sizes are skipped.
func BitmapCandidates(stem string, pixelSize int) []string {
	names := make([]string, 0, 2*maxFontSizeOffset*len(bitmapExtensions))
	for _, off := range SizeOffsets() {
		size := pixelSize + off
		if size < 0 {
			continue
		}
		for _, ext := range bitmapExtensions {
			names = append(names, stem+"_"+strconv.Itoa(size)+ext)
		}
	}
	return names
}

// bitmapStem splits a configured bitmap font path into the stem used for
// sized asset names. ok is false for outline font files.
func bitmapStem(fontPath string) (stem string, ok bool) {
	dot := strings.LastIndexByte(fontPath, '.')
	if dot < 0 || strings.ContainsRune(fontPath[dot:], '/') {
		return fontPath, true
	}
	switch strings.ToLower(fontPath[dot:]) {
	case ".ttf", ".otf":
		return "", false
	case ".png", ".xml":
		return fontPath[:dot], true
	default:
		return fontPath, true
	}
}

// createBitmapFont finds the bitmap asset nearest to the requested size
// and caches it. Nothing is cached when no asset loads.
func (r *Resolver) createBitmapFont(size uint32, mode Mode) {
	key := config.KeyFontPath
	if mode == ModeSimpleMono {
		key = config.KeyMonoFontPath
	}
	fontPath := r.settings.Get(key)

	stem, ok := bitmapStem(fontPath)
	if !ok {
		r.log().Error("found an outline font but no outline backend is available",
			"path", fontPath, "mode", mode)
		return
	}

	px := r.pixelSize(size)
	for _, name := range BitmapCandidates(stem, px) {
		if !r.assets.Exists(name) {
			continue
		}
		f, err := r.assets.LoadFont(name)
		if err != nil || f == nil {
			r.log().Warn("cannot load bitmap font", "asset", name, "err", err)
			continue
		}
		r.storeBitmapFont(mode, size, px, f)
		return
	}

	// Last resort: the configured path itself.
	if r.assets.Exists(fontPath) {
		f, err := r.assets.LoadFont(fontPath)
		if err == nil && f != nil {
			r.storeBitmapFont(mode, size, px, f)
			return
		}
		r.log().Warn("cannot load bitmap font", "asset", fontPath, "err", err)
	}

	r.log().Warn("no bitmap font found", "stem", stem, "mode", mode, "size", size, "pixels", px)
}

func (r *Resolver) storeBitmapFont(mode Mode, size uint32, px int, f Font) {
	r.caches[mode].Set(size, f)
	r.log().Debug("found bitmap font", "font", f.Name(), "mode", mode, "size", size, "pixels", px)
}
