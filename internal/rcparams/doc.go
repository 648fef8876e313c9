// Package rcparams is the consumer side of a style document: it interprets
// raw setting values as typed renderer parameters and applies a document on
// top of a renderer's defaults.
//
// Interpretation follows matplotlib's rc validators: booleans accept
// "True"/"False" and friends, colors accept single-letter base colors,
// "C0".."C9", "tab:" names, CSS4 names, hex with or without '#', and
// grayscale levels; "axes.prop_cycle" accepts cycler expressions such as
//
//	cycler('color', ['k', 'b', 'g']) + cycler(linestyle=['-', '--', ':'])
//
// [Apply] walks a document against any [Target]; [Params] is the typed
// target used by this module and its tools.
package rcparams
