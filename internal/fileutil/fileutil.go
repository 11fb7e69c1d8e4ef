// Package fileutil holds filesystem permission constants shared by
// packages that write generated output.
package fileutil

import "os"

// ReadableByAll is the permission mode for generated source files meant
// to be read by build tools and other users.
const ReadableByAll os.FileMode = 0o644
