// Package style provides the style settings document: a flat, ordered
// mapping from dotted setting keys (e.g. "legend.fontsize") to opaque string
// values, read from and written to the line-oriented rc format used by
// matplotlib style sheets.
//
// The format is:
//
//	# comment line
//	axes.grid : True
//	axes.formatter.limits : -4, 4
//	axes.prop_cycle : cycler('color', ['k', 'b', 'g'])
//
// A [Document] is immutable once built by [Parse], [Load], [New] or [Merge]
// and may be shared by any number of goroutines. Interpreting values
// (booleans, numbers, colors, cyclers) is the consumer's job; see package
// rcparams.
package style
