// Package watcher keeps the active style composition loaded and reloads it
// when one of its files changes on disk.
//
// A [Holder] resolves its refs through a [Composer], applies the result to
// the renderer defaults and publishes a new [State] only when the whole
// composition loads and applies cleanly. A failed reload keeps the previous
// state.
package watcher
