// Package keycolor turns every pixel of an image that does not match a key color
// into fully transparent black, or the reverse, and writes the result back out.
//
// The default key keeps pixels of exactly #03a9f4 and clears everything else. The
// key color, a per-channel tolerance and the match polarity can all be changed
// through Key. Images are decoded with the standard library codecs plus WebP, BMP,
// TIFF and PSD, normalized into a non-premultiplied NRGBA buffer and processed
// entirely in memory.
package keycolor
