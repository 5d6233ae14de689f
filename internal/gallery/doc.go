// Package gallery holds the session state of a sorting run: the ordered
// image set of the source directory, the cursor over it, and the file
// operations against destination directories.
package gallery
