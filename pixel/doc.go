// Package pixel implements the packed RGBA color and pixel storage used by framebuffers.
//
// Colors are compatible with Go's native [color.Color] interface and the storage satisfies
// [image.Image] / [draw.Image], so anything in the standard image ecosystem can draw onto it.
package pixel
